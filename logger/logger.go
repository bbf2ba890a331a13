package logger

import (
	"time"
)

type Log func(message string, args ...interface{})
type Resolved func(anchor, descriptor, node string, elapsed time.Duration)
type Fallback func(anchor, descriptor string)

type Logger interface {
	Resolved() Resolved
	Fallback() Fallback
	Log() Log
}
