package derby

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/derby/horse"
	"github.com/dogmatiq/derby/internal/mlog"
	"github.com/dogmatiq/derby/internal/x/loggingx"
	"github.com/dogmatiq/derby/result"
	"github.com/dogmatiq/linger"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidParticipantCount is returned by Race.Run() when it is asked to run
// a race with fewer than one horse.
var ErrInvalidParticipantCount = errors.New("invalid participant count")

// Race runs horse races.
type Race struct {
	opts *raceOptions
}

// New returns a new race with the given options.
func New(options ...RaceOption) *Race {
	return &Race{
		opts: resolveRaceOptions(options...),
	}
}

// Run runs a race between n horses and returns the order in which they
// finished.
//
// The horses are numbered from 1 to n. Run() starts the monitor, starts every
// horse, waits for each of them to finish, stops the monitor and finally
// writes the ranking to the output.
//
// If ctx is canceled before the race is over, the horses are stopped where
// they are and ctx.Err() is returned.
//
// If the monitor or the final ranking can not be written to the output, the
// ranking is still returned, along with the error.
func (r *Race) Run(ctx context.Context, n int) (result.Ranking, error) {
	if n < 1 {
		return nil, fmt.Errorf(
			"%w: %d, a race needs at least 1 horse",
			ErrInvalidParticipantCount,
			n,
		)
	}

	logger := loggingx.WithPrefix(
		r.opts.Logger,
		mlog.RacePrefix(uuid.NewString()),
	)

	if n > r.opts.CautionThreshold {
		mlog.LogWarning(
			logger,
			"%d horses is more than the recommended maximum of %d, the race may perform poorly",
			n,
			r.opts.CautionThreshold,
		)
	}

	start := time.Now()
	mlog.LogRaceStart(logger, n)

	recorder := &result.Recorder{}
	roster := horse.NewRoster(r.newHorses(n, recorder, logger)...)
	mon := r.startMonitor(ctx, roster, logger)

	err := linger.Sleep(ctx, r.opts.StartDelay)
	if err == nil {
		err = r.runHorses(ctx, roster, recorder, logger)
	}

	if err != nil {
		_ = mon.stop(context.Background(), r.opts.MonitorTimeout)
		mlog.LogWarning(
			logger,
			"race abandoned with %d of %d horse(s) across the finish line",
			recorder.Len(),
			n,
		)
		return nil, err
	}

	if err := mon.stop(ctx, r.opts.MonitorTimeout); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranking := recorder.Ranking()
	mlog.LogRaceEnd(logger, time.Since(start))

	return ranking, multierr.Append(
		mon.err(),
		r.report(ranking),
	)
}

// newHorses returns n horses, numbered from 1 to n.
func (r *Race) newHorses(
	n int,
	recorder *result.Recorder,
	logger logging.Logger,
) []*horse.Horse {
	horses := make([]*horse.Horse, n)

	for i := range horses {
		horses[i] = &horse.Horse{
			ID:       i + 1,
			Stride:   r.opts.Stride,
			Interval: r.opts.StepInterval,
			Recorder: recorder,
			Logger:   logger,
		}

		logging.Debug(logger, "horse %d entered the race", i+1)
	}

	return horses
}

// runHorses starts every horse and blocks until each of them has stopped
// running, waiting for them in roster order.
//
// It returns ctx.Err() if ctx is canceled before every horse has finished.
func (r *Race) runHorses(
	ctx context.Context,
	roster *horse.Roster,
	recorder *result.Recorder,
	logger logging.Logger,
) error {
	horses := roster.Horses()

	var g errgroup.Group
	defer g.Wait()

	done := make([]chan struct{}, len(horses))

	for i, h := range horses {
		done[i] = make(chan struct{})

		g.Go(func() error {
			defer close(done[i])
			h.Run(ctx)
			return nil
		})
	}

	g.Go(func() error {
		announce(ctx, recorder, len(horses), logger)
		return nil
	})

	logging.Log(logger, "all %d horse(s) are running", len(horses))

	for i, h := range horses {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done[i]:
			logging.Debug(logger, "horse %d confirmed", h.ID)
		}
	}

	logging.Log(logger, "every horse has crossed the finish line")

	return nil
}

// announce logs each finish as it is recorded, until n horses have finished or
// ctx is canceled.
func announce(
	ctx context.Context,
	recorder *result.Recorder,
	n int,
	logger logging.Logger,
) {
	for offset := 0; offset < n; offset++ {
		e, err := recorder.Next(ctx, offset)
		if err != nil {
			return
		}

		mlog.LogFinish(logger, e.HorseID, e.Place)
	}
}

// report writes the final ranking to the output.
func (r *Race) report(ranking result.Ranking) error {
	if _, err := io.WriteString(r.opts.Output, "\n🏁 Final standings\n"); err != nil {
		return err
	}

	_, err := ranking.WriteTo(r.opts.Output)
	return err
}
