package logger

import (
	"strings"
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/provider"
)

type Counter interface {
	Begin(started time.Time) counter.OnDone
	IncrementValue(value interface{}) int64
}

// NewOperationCounter returns counter adapter for named operation, existing operation counter is reused
func NewOperationCounter(service *gmetric.Service, location, name string) *CounterAdapter {
	if service == nil {
		return NewCounter(nil)
	}
	name = strings.ReplaceAll(name, "/", ".")
	var cnt Counter
	if existing := service.LookupOperation(name); existing != nil {
		cnt = existing
	} else {
		cnt = service.MultiOperationCounter(location, name, name+" performance", time.Microsecond, time.Minute, 2, provider.NewBasic())
	}
	return NewCounter(cnt)
}

func NewCounter(counter Counter) *CounterAdapter {
	return &CounterAdapter{
		counter: counter,
	}
}

type CounterAdapter struct {
	counter Counter
}

func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if c == nil || c.counter == nil {
		return nopOnDone
	}

	return c.counter.Begin(started)
}

func (c *CounterAdapter) IncrementValue(value interface{}) int64 {
	if c == nil || c.counter == nil {
		return 0
	}
	return c.counter.IncrementValue(value)
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}
