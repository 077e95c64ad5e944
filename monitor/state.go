package monitor

import "fmt"

// State is the state of a monitor.
type State int32

const (
	// Idle is the state of a monitor that has not been started.
	Idle State = iota

	// Rendering is the state of a monitor that is drawing a frame.
	Rendering

	// AwaitingRefresh is the state of a monitor that has drawn a frame of an
	// unfinished race and is waiting to draw the next one.
	AwaitingRefresh

	// Settling is the state of a monitor that has drawn the final frame and is
	// holding it on screen before stopping.
	Settling

	// Stopped is the state of a monitor that has returned from Run().
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case AwaitingRefresh:
		return "awaiting refresh"
	case Settling:
		return "settling"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("<unknown state %d>", s)
	}
}

// Termination describes how a monitor stopped.
type Termination int

const (
	// Settled means the monitor saw every horse finish and held the final
	// frame for the whole settle period.
	Settled Termination = iota + 1

	// Interrupted means the monitor was stopped while the race was still in
	// progress, without drawing a completion banner.
	Interrupted

	// InterruptedWhileSettling means the monitor saw every horse finish, but
	// was stopped before the settle period elapsed.
	InterruptedWhileSettling
)

func (t Termination) String() string {
	switch t {
	case Settled:
		return "settled"
	case Interrupted:
		return "interrupted"
	case InterruptedWhileSettling:
		return "interrupted while settling"
	default:
		return fmt.Sprintf("<unknown termination %d>", t)
	}
}
