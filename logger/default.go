package logger

import (
	"fmt"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) Resolved() Resolved {
	return d.logResolved
}

func (d *defaultLogger) Fallback() Fallback {
	return func(anchor, descriptor string) {
		fmt.Printf("[LOGGER] unsupported type descriptor: %v, anchor: %v, resolved as void \n", descriptor, anchor)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[LOGGER] "+message+" \n", args...)
	}
}

func (d *defaultLogger) logResolved(anchor, descriptor, node string, elapsed time.Duration) {
	fmt.Printf("[LOGGER] resolving %v took %v, anchor: %v, node: %v \n", descriptor, elapsed, anchor, node)
}
