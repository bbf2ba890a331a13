package logger

import (
	"time"
)

// TimeLogger logs resolutions slower than threshold
type TimeLogger struct {
	threshold     time.Duration
	defaultLogger defaultLogger
}

func NewTimeLogger(threshold time.Duration) *TimeLogger {
	return &TimeLogger{
		threshold: threshold,
	}
}

func (t *TimeLogger) Resolved() Resolved {
	return func(anchor, descriptor, node string, elapsed time.Duration) {
		if elapsed < t.threshold {
			return
		}

		t.defaultLogger.logResolved(anchor, descriptor, node, elapsed)
	}
}

func (t *TimeLogger) Fallback() Fallback {
	return t.defaultLogger.Fallback()
}

func (t *TimeLogger) Log() Log {
	return nil
}
