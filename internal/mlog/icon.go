package mlog

import (
	"fmt"
	"io"

	"github.com/dogmatiq/iago/must"
)

const (
	// RaceIDIcon is the icon shown directly before a race ID. It is a flag,
	// indicating the race that the line belongs to.
	RaceIDIcon Icon = "⚑"

	// HorseIDIcon is the icon shown directly before a horse ID. It is the
	// chess knight, the closest thing unicode has to a horse that remains
	// legible at small font sizes.
	HorseIDIcon Icon = "♞"

	// StartIcon is the icon shown when something is set in motion, such as the
	// race itself or an individual horse. It is a right-pointing triangle, the
	// universal "play" symbol.
	StartIcon Icon = "▶"

	// FinishIcon is the icon shown when a horse crosses the finish line. It is
	// a filled square, representing a line that has been "closed".
	FinishIcon Icon = "■"

	// WithdrawnIcon is a variant of FinishIcon used when a horse stopped
	// before reaching the finish line. It is a hollow version of the finish
	// icon, indicating that the race remains "unfinished".
	WithdrawnIcon Icon = "□"

	// MonitorIcon is the icon shown when a log message relates to the race
	// monitor. It is a square grid, representing the rendered track board.
	MonitorIcon Icon = "▦"

	// WarningIcon is the icon shown when logging about a condition that does
	// not stop the race, but that the operator should know about.
	WarningIcon Icon = "⚠"

	// ErrorIcon is the icon shown when logging information about an error.
	// It is a heavy cross, indicating a failure.
	ErrorIcon Icon = "✖"

	// SystemIcon is an icon shown when a log message relates to the internals of
	// the simulator. It is a sprocket, representing the inner workings of the
	// machine.
	SystemIcon Icon = "⚙"

	// SeparatorIcon is an icon used to separate strings of unrelated text inside a
	// log message. It is a large bullet, intended to have a large visual impact.
	SeparatorIcon Icon = "●"
)

// Icon is a unicode symbol used as an icon in log messages.
type Icon string

func (i Icon) String() string {
	return string(i)
}

// WriteTo writes a string representation of the icon to w.
// If i is the zero-value, a single space is rendered.
func (i Icon) WriteTo(w io.Writer) (int64, error) {
	s := i.String()
	if i == "" {
		s = " "
	}

	n, err := io.WriteString(w, s)
	return int64(n), err
}

// WithLabel return an IconWithLabel containing this icon and the given label.
func (i Icon) WithLabel(f string, v ...interface{}) IconWithLabel {
	return IconWithLabel{
		i,
		formatLabel(fmt.Sprintf(f, v...)),
	}
}

// WithID return an IconWithLabel containing this icon and an ID as its label.
//
// The id is formatted using FormatID().
func (i Icon) WithID(id string) IconWithLabel {
	return i.WithLabel("%s", FormatID(id))
}

// IconWithLabel is a container for an icon and its associated text label.
type IconWithLabel struct {
	Icon  Icon
	Label string
}

func (i IconWithLabel) String() string {
	return i.Icon.String() + " " + i.Label
}

// WriteTo writes a string representation of the icon and its label to w.
func (i IconWithLabel) WriteTo(w io.Writer) (_ int64, err error) {
	defer must.Recover(&err)

	n := must.WriteTo(w, i.Icon)
	n += must.WriteString(w, " ")
	n += must.WriteString(w, i.Label)

	return int64(n), err
}

// formatLabel formats a label for display.
func formatLabel(label string) string {
	if label == "" {
		return "-"
	}

	return label
}

// outcomeIcon returns the icon to use for a horse that has stopped running.
func outcomeIcon(finished bool) Icon {
	if finished {
		return FinishIcon
	}

	return WithdrawnIcon
}
