package loggingx

import (
	"fmt"

	"github.com/dogmatiq/dodeca/logging"
)

// WithPrefix returns a logger that adds a fixed prefix to every message
// written to target.
//
// If target is nil, logging.DefaultLogger is used. If target was itself
// returned by WithPrefix(), the prefixes are combined so that each message is
// formatted only once.
func WithPrefix(target logging.Logger, prefix string) logging.Logger {
	if target == nil {
		target = logging.DefaultLogger
	}

	if p, ok := target.(prefixer); ok {
		return prefixer{p.target, p.prefix + prefix}
	}

	return prefixer{target, prefix}
}

type prefixer struct {
	target logging.Logger
	prefix string
}

func (p prefixer) Log(f string, v ...interface{}) {
	p.target.LogString(p.prefix + fmt.Sprintf(f, v...))
}

func (p prefixer) LogString(s string) {
	p.target.LogString(p.prefix + s)
}

func (p prefixer) Debug(f string, v ...interface{}) {
	if p.target.IsDebug() {
		p.target.DebugString(p.prefix + fmt.Sprintf(f, v...))
	}
}

func (p prefixer) DebugString(s string) {
	p.target.DebugString(p.prefix + s)
}

func (p prefixer) IsDebug() bool {
	return p.target.IsDebug()
}
