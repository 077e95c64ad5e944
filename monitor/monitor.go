package monitor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/derby/console"
	"github.com/dogmatiq/derby/horse"
	"github.com/dogmatiq/derby/internal/mlog"
	"github.com/dogmatiq/derby/track"
	"github.com/dogmatiq/iago/must"
	"github.com/dogmatiq/linger"
)

var (
	// DefaultRefreshInterval is the default interval between frames.
	DefaultRefreshInterval = 300 * time.Millisecond

	// DefaultSettlePeriod is the default time the final frame is held on
	// screen after every horse has finished.
	DefaultSettlePeriod = 10 * time.Second
)

const (
	// Header is the first line of every frame.
	Header = "Race standings:"

	// Footer is the last line of a frame drawn while the race is in progress.
	Footer = "(race in progress, final standings follow once every horse finishes)"

	// Banner is the last line of the frame drawn once every horse has
	// finished.
	Banner = "🏁 Every horse has crossed the finish line!"
)

// View is a read-only view of the horses in a race.
type View interface {
	// Len returns the number of horses in the race. It never changes.
	Len() int

	// Snapshot returns the standing of every horse, in any order.
	Snapshot() []horse.Standing
}

// Monitor periodically draws the track board for a race.
type Monitor struct {
	// View is the source of the horses' positions.
	View View

	// Output is the destination for the rendered frames.
	// If it is nil, os.Stdout is used.
	Output io.Writer

	// Terminal is used to move the cursor so that each frame overwrites the
	// last. If it is nil, console.ANSI is used.
	Terminal console.Terminal

	// RefreshInterval is the time to wait between frames.
	// If it is non-positive, DefaultRefreshInterval is used.
	RefreshInterval time.Duration

	// SettlePeriod is the time to hold the final frame on screen.
	// If it is non-positive, DefaultSettlePeriod is used.
	SettlePeriod time.Duration

	// Logger is the target for log messages about the monitor.
	// If it is nil, logging.DefaultLogger is used.
	Logger logging.Logger

	state atomic.Int32

	// printed is the number of lines in the last frame written to the output.
	// It is only accessed by the goroutine executing Run().
	printed int
}

// State returns the monitor's current state.
func (m *Monitor) State() State {
	return State(m.state.Load())
}

// Run draws frames until every horse has finished and the settle period has
// elapsed, or until ctx is canceled.
//
// Cancellation is the designed way to stop the monitor early and is not
// reported as an error. The returned Termination describes which way the
// monitor stopped. An error is only returned if a frame can not be written to
// the output.
//
// It panics if called more than once.
func (m *Monitor) Run(ctx context.Context) (Termination, error) {
	if !m.state.CompareAndSwap(int32(Idle), int32(Rendering)) {
		panic("monitor is already running")
	}

	t, err := m.run(ctx)

	m.state.Store(int32(Stopped))

	if err != nil {
		mlog.LogError(m.Logger, err, "monitor failed")
	} else {
		mlog.LogSystem(m.Logger, mlog.MonitorIcon, "monitor stopped, %s", t)
	}

	return t, err
}

func (m *Monitor) run(ctx context.Context) (Termination, error) {
	mlog.LogSystem(
		m.Logger,
		mlog.MonitorIcon,
		"monitor started, watching %d horse(s)",
		m.View.Len(),
	)

	for {
		if ctx.Err() != nil {
			return Interrupted, nil
		}

		m.state.Store(int32(Rendering))

		completed, err := m.draw()
		if err != nil {
			return 0, err
		}

		if completed {
			m.state.Store(int32(Settling))

			if err := linger.Sleep(ctx, m.settlePeriod()); err != nil {
				return InterruptedWhileSettling, nil
			}

			return Settled, nil
		}

		m.state.Store(int32(AwaitingRefresh))

		if err := linger.Sleep(ctx, m.refreshInterval()); err != nil {
			return Interrupted, nil
		}
	}
}

// draw writes a single frame to the output.
//
// The frame, including the cursor movement that repositions it over the
// previous frame, is written with a single call to Write() so that a frame is
// never partially drawn.
//
// It returns true if every horse had finished when the frame was drawn.
func (m *Monitor) draw() (completed bool, err error) {
	standings := m.View.Snapshot()
	sort.Slice(standings, func(i, j int) bool {
		return standings[i].ID < standings[j].ID
	})

	buf := &bytes.Buffer{}

	if m.printed > 0 {
		if err := m.terminal().CursorUp(buf, m.printed); err != nil {
			return false, err
		}
	}

	lines, completed := m.mustRender(buf, standings)

	if _, err := m.output().Write(buf.Bytes()); err != nil {
		return false, err
	}

	m.printed = lines

	return completed, nil
}

// mustRender renders the frame for the given standings to buf. It returns the
// number of lines rendered, which is always 1 + len(standings) + 1.
func (m *Monitor) mustRender(
	buf *bytes.Buffer,
	standings []horse.Standing,
) (lines int, completed bool) {
	must.WriteString(buf, Header+"\n")
	lines++

	completed = true

	for _, s := range standings {
		must.WriteString(
			buf,
			fmt.Sprintf("Horse %2d: %s\n", s.ID, track.Render(s.Position)),
		)
		lines++

		if !s.Finished() {
			completed = false
		}
	}

	if completed {
		must.WriteString(buf, Banner+"\n")
	} else {
		must.WriteString(buf, Footer+"\n")
	}
	lines++

	return lines, completed
}

func (m *Monitor) output() io.Writer {
	if m.Output == nil {
		return os.Stdout
	}

	return m.Output
}

func (m *Monitor) terminal() console.Terminal {
	if m.Terminal == nil {
		return console.ANSI
	}

	return m.Terminal
}

func (m *Monitor) refreshInterval() time.Duration {
	if m.RefreshInterval <= 0 {
		return DefaultRefreshInterval
	}

	return m.RefreshInterval
}

func (m *Monitor) settlePeriod() time.Duration {
	if m.SettlePeriod <= 0 {
		return DefaultSettlePeriod
	}

	return m.SettlePeriod
}
