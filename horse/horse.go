package horse

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/derby/internal/mlog"
	"github.com/dogmatiq/linger"
)

// FinishLine is the position a horse must reach to finish the race.
const FinishLine = 50

// DefaultInterval is the default time a horse waits between strides.
var DefaultInterval = 200 * time.Millisecond

// Recorder is the destination for a horse's finish.
type Recorder interface {
	// RecordFinish records that the horse with the given ID crossed the
	// finish line.
	RecordFinish(horseID int)
}

// Horse is a race participant that advances towards the finish line at a
// random pace.
//
// Its position is written only by the goroutine executing Run(), and may be
// read from any goroutine via Position().
type Horse struct {
	// ID is the horse's identifier, unique within a race.
	ID int

	// Stride is the source of the distance covered by each stride.
	// If it is nil, DefaultStride is used.
	Stride Stride

	// Interval is the time the horse waits after each stride.
	// If it is non-positive, DefaultInterval is used.
	Interval time.Duration

	// Recorder is notified when the horse crosses the finish line.
	// It must not be nil.
	Recorder Recorder

	// Logger is the target for log messages about the horse.
	// If it is nil, logging.DefaultLogger is used.
	Logger logging.Logger

	running  atomic.Bool
	position atomic.Int32
}

// Position returns the horse's current position, between 0 and FinishLine.
func (h *Horse) Position() int {
	return int(h.position.Load())
}

// Finished returns true if the horse has reached the finish line.
func (h *Horse) Finished() bool {
	return h.Position() >= FinishLine
}

// Run advances the horse until it reaches the finish line or ctx is canceled.
//
// If the horse reaches the finish line it records its finish with h.Recorder
// exactly once. If ctx is canceled first the horse stops where it is and
// records nothing. Cancellation is not a failure, so Run() has no error
// result.
//
// It panics if called more than once, or if h.Recorder is nil.
func (h *Horse) Run(ctx context.Context) {
	if h.Recorder == nil {
		panic("horse has no recorder")
	}

	if !h.running.CompareAndSwap(false, true) {
		panic("horse is already running")
	}

	stride := h.Stride
	if stride == nil {
		stride = DefaultStride
	}

	interval := h.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	pos := h.Position()

	for pos < FinishLine {
		n := stride()
		if n < 0 {
			panic("stride must not be negative")
		}

		pos += n
		if pos > FinishLine {
			pos = FinishLine
		}

		h.position.Store(int32(pos))

		if err := linger.Sleep(ctx, interval); err != nil {
			break
		}
	}

	mlog.LogHorseResult(h.Logger, h.ID, pos, FinishLine)

	if pos >= FinishLine {
		h.Recorder.RecordFinish(h.ID)
	}
}
