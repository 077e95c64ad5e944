package main

import (
	"fmt"
	"io"
	"log"

	"github.com/dogmatiq/dodeca/config"
	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/derby"
	"github.com/dogmatiq/derby/internal/x/loggingx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// raceOptionsFromEnv returns the race options described by the environment.
//
// Any variable that is not set leaves the corresponding default in place.
func raceOptionsFromEnv(env config.Bucket) []derby.RaceOption {
	return []derby.RaceOption{
		derby.WithStepInterval(
			config.AsDurationDefault(env, "DERBY_STEP_INTERVAL", derby.DefaultStepInterval),
		),
		derby.WithRefreshInterval(
			config.AsDurationDefault(env, "DERBY_REFRESH_INTERVAL", derby.DefaultRefreshInterval),
		),
		derby.WithSettlePeriod(
			config.AsDurationDefault(env, "DERBY_SETTLE_PERIOD", derby.DefaultSettlePeriod),
		),
		derby.WithStartDelay(
			config.AsDurationDefault(env, "DERBY_START_DELAY", derby.DefaultStartDelay),
		),
		derby.WithMonitorTimeout(
			config.AsDurationDefault(env, "DERBY_MONITOR_TIMEOUT", derby.DefaultMonitorTimeout),
		),
	}
}

// newLogger returns the logger described by the environment, writing to w.
//
// The returned function flushes any buffered log messages.
func newLogger(env config.Bucket, w io.Writer) (logging.Logger, func(), error) {
	debug := config.AsBoolDefault(env, "DERBY_DEBUG", false)

	switch format := config.AsStringDefault(env, "DERBY_LOG_FORMAT", "text"); format {
	case "text":
		return &logging.StandardLogger{
			Target:       log.New(w, "", log.LstdFlags),
			CaptureDebug: debug,
		}, func() {}, nil

	case "json":
		level := zapcore.InfoLevel
		if debug {
			level = zapcore.DebugLevel
		}

		l := zap.New(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(w),
				level,
			),
		)

		return loggingx.Zap(l), func() { _ = l.Sync() }, nil

	default:
		return nil, nil, fmt.Errorf(
			"unrecognized log format %q, expected \"text\" or \"json\"",
			format,
		)
	}
}
