package resolver

import (
	"github.com/viant/gmetric"
	"github.com/viant/typemirror/config"
	"github.com/viant/typemirror/generics"
	"github.com/viant/typemirror/logger"
	"github.com/viant/typemirror/mirror"
)

type (
	options struct {
		config  *config.Config
		logger  *logger.Adapter
		metrics *gmetric.Service
	}

	// Option represents a service option
	Option func(*options)

	request struct {
		anchor                 *mirror.Element
		bindings               generics.Bindings
		includeTypeAnnotations bool
		typeVariable           *bool
	}

	// ResolveOption represents a resolution option
	ResolveOption func(*request)
)

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.config == nil {
		ret.config = config.Default()
	}
	if ret.logger == nil {
		ret.logger = logger.Default()
		if threshold := ret.config.SlowThreshold(); threshold > 0 {
			ret.logger = logger.NewLogger(logger.NewTimeLogger(threshold))
		}
		if ret.config.Debug {
			ret.logger = logger.Debug()
		}
	}
	return ret
}

// WithConfig sets a config
func WithConfig(config *config.Config) Option {
	return func(o *options) {
		o.config = config
	}
}

// WithLogger sets a logger
func WithLogger(logger *logger.Adapter) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics service
func WithMetrics(metrics *gmetric.Service) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithBindings sets generic binding context
func WithBindings(bindings generics.Bindings) ResolveOption {
	return func(r *request) {
		r.bindings = bindings
	}
}

// WithTypeAnnotations controls whether declaration metadata is included
func WithTypeAnnotations(flag bool) ResolveOption {
	return func(r *request) {
		r.includeTypeAnnotations = flag
	}
}

// AsTypeVariable marks descriptor as reached by type variable substitution
func AsTypeVariable(flag bool) ResolveOption {
	return func(r *request) {
		r.typeVariable = &flag
	}
}
