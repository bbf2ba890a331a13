package typemirror

import (
	"github.com/viant/afs"
	"github.com/viant/gmetric"
	"github.com/viant/typemirror/catalog"
	"github.com/viant/typemirror/config"
	"github.com/viant/typemirror/logger"
)

type (
	options struct {
		config    *config.Config
		configURL string
		catalog   *catalog.Catalog
		metrics   *gmetric.Service
		logger    *logger.Adapter
		fs        afs.Service
	}

	//Option represents service option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// WithConfig sets config
func WithConfig(config *config.Config) Option {
	return func(o *options) {
		o.config = config
	}
}

// WithConfigURL sets config location, ignored when config was supplied
func WithConfigURL(URL string) Option {
	return func(o *options) {
		o.configURL = URL
	}
}

// WithCatalog sets declaration catalog
func WithCatalog(catalog *catalog.Catalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithMetrics sets metrics service
func WithMetrics(metrics *gmetric.Service) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithLogger sets logger
func WithLogger(logger *logger.Adapter) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFS sets file system service used to load config and catalog
func WithFS(fs afs.Service) Option {
	return func(o *options) {
		o.fs = fs
	}
}
