package derby

import (
	"io"
	"os"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/derby/console"
	"github.com/dogmatiq/derby/horse"
	"github.com/dogmatiq/derby/monitor"
)

var (
	// DefaultStepInterval is the default time each horse waits between
	// strides.
	//
	// It is overridden by the WithStepInterval() option.
	DefaultStepInterval = horse.DefaultInterval

	// DefaultStride is the default source of the distance a horse covers in
	// each stride.
	//
	// It is overridden by the WithStride() option.
	DefaultStride = horse.DefaultStride

	// DefaultRefreshInterval is the default interval at which the monitor
	// redraws the track board.
	//
	// It is overridden by the WithRefreshInterval() option.
	DefaultRefreshInterval = monitor.DefaultRefreshInterval

	// DefaultSettlePeriod is the default time the monitor holds the final
	// track board on screen after every horse has finished.
	//
	// It is overridden by the WithSettlePeriod() option.
	DefaultSettlePeriod = monitor.DefaultSettlePeriod

	// DefaultStartDelay is the default time between starting the monitor and
	// starting the horses, giving the monitor a chance to draw the starting
	// line.
	//
	// It is overridden by the WithStartDelay() option.
	DefaultStartDelay = 100 * time.Millisecond

	// DefaultMonitorTimeout is the default time to wait for the monitor to
	// stop once every horse has finished.
	//
	// It is overridden by the WithMonitorTimeout() option.
	DefaultMonitorTimeout = 5 * time.Second

	// DefaultCautionThreshold is the default number of horses above which a
	// race logs a performance warning.
	//
	// It is overridden by the WithCautionThreshold() option.
	DefaultCautionThreshold = 20

	// DefaultOutput is the default destination for the track board and the
	// final standings.
	//
	// It is overridden by the WithOutput() option.
	DefaultOutput io.Writer = os.Stdout

	// DefaultTerminal is the default terminal used to redraw the track board
	// in place.
	//
	// It is overridden by the WithTerminal() option.
	DefaultTerminal = console.ANSI

	// DefaultLogger is the default target for log messages produced by the
	// race.
	//
	// It is overridden by the WithLogger() option.
	DefaultLogger = logging.DefaultLogger
)

// RaceOption configures the behavior of a race.
type RaceOption func(*raceOptions)

// WithStepInterval returns a race option that sets the time each horse waits
// between strides.
//
// If this option is omitted or d is zero DefaultStepInterval is used.
func WithStepInterval(d time.Duration) RaceOption {
	if d < 0 {
		panic("duration must not be negative")
	}

	return func(opts *raceOptions) {
		opts.StepInterval = d
	}
}

// WithStride returns a race option that sets the source of the distance a
// horse covers in each stride.
//
// If this option is omitted or s is nil DefaultStride is used.
func WithStride(s horse.Stride) RaceOption {
	return func(opts *raceOptions) {
		opts.Stride = s
	}
}

// WithRefreshInterval returns a race option that sets the interval at which
// the monitor redraws the track board.
//
// If this option is omitted or d is zero DefaultRefreshInterval is used.
func WithRefreshInterval(d time.Duration) RaceOption {
	if d < 0 {
		panic("duration must not be negative")
	}

	return func(opts *raceOptions) {
		opts.RefreshInterval = d
	}
}

// WithSettlePeriod returns a race option that sets the time the monitor holds
// the final track board on screen.
//
// If this option is omitted or d is zero DefaultSettlePeriod is used.
func WithSettlePeriod(d time.Duration) RaceOption {
	if d < 0 {
		panic("duration must not be negative")
	}

	return func(opts *raceOptions) {
		opts.SettlePeriod = d
	}
}

// WithStartDelay returns a race option that sets the time between starting the
// monitor and starting the horses.
//
// If this option is omitted or d is zero DefaultStartDelay is used.
func WithStartDelay(d time.Duration) RaceOption {
	if d < 0 {
		panic("duration must not be negative")
	}

	return func(opts *raceOptions) {
		opts.StartDelay = d
	}
}

// WithMonitorTimeout returns a race option that sets how long to wait for the
// monitor to stop once every horse has finished.
//
// If this option is omitted or d is zero DefaultMonitorTimeout is used.
func WithMonitorTimeout(d time.Duration) RaceOption {
	if d < 0 {
		panic("duration must not be negative")
	}

	return func(opts *raceOptions) {
		opts.MonitorTimeout = d
	}
}

// WithCautionThreshold returns a race option that sets the number of horses
// above which the race logs a performance warning.
//
// If this option is omitted or n is zero DefaultCautionThreshold is used.
func WithCautionThreshold(n int) RaceOption {
	if n < 0 {
		panic("threshold must not be negative")
	}

	return func(opts *raceOptions) {
		opts.CautionThreshold = n
	}
}

// WithOutput returns a race option that sets the destination for the track
// board and the final standings.
//
// If this option is omitted or w is nil DefaultOutput is used.
func WithOutput(w io.Writer) RaceOption {
	return func(opts *raceOptions) {
		opts.Output = w
	}
}

// WithTerminal returns a race option that sets the terminal used to redraw the
// track board in place.
//
// If this option is omitted or t is nil DefaultTerminal is used.
func WithTerminal(t console.Terminal) RaceOption {
	return func(opts *raceOptions) {
		opts.Terminal = t
	}
}

// WithLogger returns a race option that sets the target for log messages
// produced by the race.
//
// If this option is omitted or l is nil DefaultLogger is used.
func WithLogger(l logging.Logger) RaceOption {
	return func(opts *raceOptions) {
		opts.Logger = l
	}
}

// raceOptions is a container for a fully-resolved set of race options.
type raceOptions struct {
	StepInterval     time.Duration
	Stride           horse.Stride
	RefreshInterval  time.Duration
	SettlePeriod     time.Duration
	StartDelay       time.Duration
	MonitorTimeout   time.Duration
	CautionThreshold int
	Output           io.Writer
	Terminal         console.Terminal
	Logger           logging.Logger
}

// resolveRaceOptions returns a fully-populated set of race options built from
// the given set of option functions.
func resolveRaceOptions(options ...RaceOption) *raceOptions {
	opts := &raceOptions{}

	for _, o := range options {
		o(opts)
	}

	if opts.StepInterval == 0 {
		opts.StepInterval = DefaultStepInterval
	}

	if opts.Stride == nil {
		opts.Stride = DefaultStride
	}

	if opts.RefreshInterval == 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}

	if opts.SettlePeriod == 0 {
		opts.SettlePeriod = DefaultSettlePeriod
	}

	if opts.StartDelay == 0 {
		opts.StartDelay = DefaultStartDelay
	}

	if opts.MonitorTimeout == 0 {
		opts.MonitorTimeout = DefaultMonitorTimeout
	}

	if opts.CautionThreshold == 0 {
		opts.CautionThreshold = DefaultCautionThreshold
	}

	if opts.Output == nil {
		opts.Output = DefaultOutput
	}

	if opts.Terminal == nil {
		opts.Terminal = DefaultTerminal
	}

	if opts.Logger == nil {
		opts.Logger = DefaultLogger
	}

	return opts
}
