package derby

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/derby/internal/mlog"
	"github.com/dogmatiq/derby/monitor"
)

// runningMonitor is a handle to a monitor running in its own goroutine.
type runningMonitor struct {
	cancel  context.CancelFunc
	done    chan struct{}
	output  *frameGate
	failure error
	logger  logging.Logger
}

// startMonitor starts a monitor for the given view in a new goroutine.
//
// The monitor stops when ctx is canceled, or when stop() is called.
func (r *Race) startMonitor(
	ctx context.Context,
	view monitor.View,
	logger logging.Logger,
) *runningMonitor {
	ctx, cancel := context.WithCancel(ctx)

	output := &frameGate{w: r.opts.Output}

	m := &monitor.Monitor{
		View:            view,
		Output:          output,
		Terminal:        r.opts.Terminal,
		RefreshInterval: r.opts.RefreshInterval,
		SettlePeriod:    r.opts.SettlePeriod,
		Logger:          logger,
	}

	rm := &runningMonitor{
		cancel: cancel,
		done:   make(chan struct{}),
		output: output,
		logger: logger,
	}

	go func() {
		defer close(rm.done)
		_, rm.failure = m.Run(ctx)
	}()

	return rm
}

// stop signals the monitor to stop and waits up to timeout for it to do so.
//
// If the monitor does not stop in time a warning is logged and stop() returns
// without waiting any longer. Any frame the monitor has not yet started to
// write is discarded, so it can not be drawn over the final standings. It
// returns ctx.Err() if ctx is canceled while waiting.
func (m *runningMonitor) stop(ctx context.Context, timeout time.Duration) error {
	m.cancel()
	defer m.output.close()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-m.done:
		return nil
	case <-timer.C:
		mlog.LogWarning(
			m.logger,
			"the monitor did not stop within %s, continuing without it",
			timeout,
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// err returns the error that caused the monitor to fail, if it has stopped.
func (m *runningMonitor) err() error {
	select {
	case <-m.done:
		return m.failure
	default:
		return nil
	}
}

// frameGate is an io.Writer that passes the monitor's frames to the race
// output until it is closed, after which frames are silently discarded.
//
// A write that is already in progress when the gate closes is not affected.
type frameGate struct {
	w      io.Writer
	closed atomic.Bool
}

func (g *frameGate) Write(data []byte) (int, error) {
	if g.closed.Load() {
		return len(data), nil
	}

	return g.w.Write(data)
}

func (g *frameGate) close() {
	g.closed.Store(true)
}
