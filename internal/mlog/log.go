package mlog

import (
	"fmt"
	"time"

	"github.com/dogmatiq/dodeca/logging"
)

// LogRaceStart logs a message indicating that a race is starting with n
// horses.
func LogRaceStart(
	log logging.Logger,
	n int,
) {
	logging.LogString(
		log,
		String(
			nil,
			[]Icon{
				StartIcon,
				"",
			},
			"race started",
			fmt.Sprintf("%d horse(s) entered", n),
		),
	)
}

// LogRaceEnd logs a message indicating that a race has completed and every
// horse has been confirmed at the finish line.
func LogRaceEnd(
	log logging.Logger,
	d time.Duration,
) {
	logging.LogString(
		log,
		String(
			nil,
			[]Icon{
				FinishIcon,
				"",
			},
			"race completed",
			fmt.Sprintf("took %s", d.Round(time.Millisecond)),
		),
	)
}

// LogFinish logs a message indicating that a horse has crossed the finish
// line in the given place.
func LogFinish(
	log logging.Logger,
	horseID int,
	place int,
) {
	logging.LogString(
		log,
		String(
			[]IconWithLabel{
				HorseIDIcon.WithLabel("%d", horseID),
			},
			[]Icon{
				FinishIcon,
				"",
			},
			fmt.Sprintf("finished in place %d", place),
		),
	)
}

// LogHorseResult logs a debug message when a horse stops running, either
// because it reached the finish line or because it was stopped short of it.
func LogHorseResult(
	log logging.Logger,
	horseID int,
	position int,
	finishLine int,
) {
	if !logging.IsDebug(log) {
		return
	}

	finished := position >= finishLine

	text := "withdrawn before the finish line"
	if finished {
		text = "crossed the finish line"
	}

	logging.DebugString(
		log,
		String(
			[]IconWithLabel{
				HorseIDIcon.WithLabel("%d", horseID),
			},
			[]Icon{
				outcomeIcon(finished),
				"",
			},
			text,
			fmt.Sprintf("position %d/%d", position, finishLine),
		),
	)
}

// RacePrefix returns the prefix used for every log message about the race
// with the given ID.
func RacePrefix(raceID string) string {
	return RaceIDIcon.WithID(raceID).String() + "  "
}

// LogWarning logs a message about a condition that does not stop the race.
func LogWarning(
	log logging.Logger,
	f string, v ...interface{},
) {
	logging.LogString(
		log,
		String(
			nil,
			[]Icon{
				WarningIcon,
				"",
			},
			fmt.Sprintf(f, v...),
		),
	)
}

// LogError logs a message about an unexpected failure.
func LogError(
	log logging.Logger,
	err error,
	f string, v ...interface{},
) {
	logging.LogString(
		log,
		String(
			nil,
			[]Icon{
				ErrorIcon,
				"",
			},
			fmt.Sprintf(f, v...),
			err.Error(),
		),
	)
}

// LogSystem logs a debug message about the internals of the simulator, such
// as the monitor starting or stopping.
func LogSystem(
	log logging.Logger,
	icon Icon,
	f string, v ...interface{},
) {
	logging.DebugString(
		log,
		String(
			nil,
			[]Icon{
				SystemIcon,
				icon,
			},
			fmt.Sprintf(f, v...),
		),
	)
}
