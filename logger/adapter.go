package logger

import (
	"os"
	"time"
)

// DebugEnvKey enables default logger
const DebugEnvKey = "TYPEMIRROR_DEBUG"

type Adapter struct {
	resolved Resolved
	fallback Fallback
	log      Log
}

func (l *Adapter) Resolved(anchor, descriptor, node string, elapsed time.Duration) {
	if l == nil || l.resolved == nil {
		return
	}

	l.resolved(anchor, descriptor, node, elapsed)
}

func (l *Adapter) Fallback(anchor, descriptor string) {
	if l == nil || l.fallback == nil {
		return
	}

	l.fallback(anchor, descriptor)
}

func (l *Adapter) Log(message string, args ...interface{}) {
	if l == nil || l.log == nil {
		return
	}

	l.log(message, args...)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}

	return &Adapter{
		resolved: logger.Resolved(),
		fallback: logger.Fallback(),
		log:      logger.Log(),
	}
}

func Default() *Adapter {
	if os.Getenv(DebugEnvKey) == "" {
		return NewLogger(&nopLogger{})
	}
	return NewLogger(&defaultLogger{})
}

// Debug returns logger printing all events
func Debug() *Adapter {
	return NewLogger(&defaultLogger{})
}
