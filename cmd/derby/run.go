package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/dogmatiq/dodeca/config"
	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/derby"
	"github.com/dogmatiq/derby/console"
	"github.com/dogmatiq/derby/horse"
	"github.com/dogmatiq/derby/internal/mlog"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

// run runs a single race and returns the process exit code.
func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	env config.Bucket,
) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "the race failed: %v\n", r)
			code = exitFailure
		}
	}()

	flags := flag.NewFlagSet("derby", flag.ContinueOnError)
	flags.SetOutput(stderr)

	count := flags.Int("n", 0, "the number of horses in the race, prompted for if omitted")
	clearScreen := flags.Bool("clear", false, "clear the screen before the race starts")
	plain := flags.Bool("plain", false, "append each frame to the output instead of redrawing it in place")
	seed := flags.Int64("seed", 0, "seed the horses' strides so that the race can be replayed")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger, flush, err := newLogger(env, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer flush()

	options := raceOptionsFromEnv(env)
	options = append(
		options,
		derby.WithOutput(stdout),
		derby.WithLogger(logger),
	)

	terminal := console.ANSI
	if *plain {
		terminal = console.Discard
	}
	options = append(options, derby.WithTerminal(terminal))

	if isSet(flags, "seed") {
		options = append(
			options,
			derby.WithStride(
				horse.RandomStride(
					horse.MaxStride,
					rand.New(rand.NewSource(*seed)),
				),
			),
		)
	}

	n := *count
	if !isSet(flags, "n") {
		n, err = readCount(stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid input: %s\n", err)
			return exitUsage
		}
	}

	if *clearScreen {
		if err := terminal.Clear(stdout); err != nil {
			mlog.LogError(logger, err, "unable to clear the screen")
		}
	}

	logging.Log(logger, "derby started")
	defer logging.Log(logger, "derby stopped")

	ranking, err := derby.New(options...).Run(ctx, n)

	switch {
	case err == nil:
		logging.Log(logger, "horse %d won the race", ranking[0].HorseID)
		return exitOK

	case errors.Is(err, derby.ErrInvalidParticipantCount):
		fmt.Fprintln(stderr, "the number of horses must be at least 1")
		return exitUsage

	case errors.Is(err, context.Canceled):
		mlog.LogWarning(logger, "the race was abandoned")
		return exitInterrupted

	default:
		mlog.LogError(logger, err, "the race failed")
		fmt.Fprintf(stderr, "the race failed: %s\n", err)
		return exitFailure
	}
}

// isSet returns true if the flag with the given name was given on the command
// line.
func isSet(flags *flag.FlagSet, name string) bool {
	set := false

	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}
