package loggingx

import (
	"fmt"

	"github.com/dogmatiq/dodeca/logging"
	"go.uber.org/zap"
)

// Zap returns a logger that writes to a zap logger.
//
// Messages logged via Log() and LogString() are written at the info level,
// messages logged via Debug() and DebugString() are written at the debug
// level. IsDebug() reports whether the zap logger has debug level enabled.
func Zap(target *zap.Logger) logging.Logger {
	return &zapLogger{
		target: target,
		debug:  target.Core().Enabled(zap.DebugLevel),
	}
}

type zapLogger struct {
	target *zap.Logger
	debug  bool
}

func (l *zapLogger) Log(f string, v ...interface{}) {
	l.target.Info(fmt.Sprintf(f, v...))
}

func (l *zapLogger) LogString(s string) {
	l.target.Info(s)
}

func (l *zapLogger) Debug(f string, v ...interface{}) {
	if l.debug {
		l.target.Debug(fmt.Sprintf(f, v...))
	}
}

func (l *zapLogger) DebugString(s string) {
	if l.debug {
		l.target.Debug(s)
	}
}

func (l *zapLogger) IsDebug() bool {
	return l.debug
}
