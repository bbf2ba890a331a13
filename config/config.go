package config

import (
	"time"
)

// DefaultRootType is the universal top type used for unbounded wildcards and variables
const DefaultRootType = "java.lang.Object"

// Config represents type resolution config
type Config struct {
	URL string `json:",omitempty" yaml:",omitempty"`
	//RootType is qualified name of the universal top type
	RootType string `json:",omitempty" yaml:",omitempty"`
	//ExcludeTypeAnnotations disables declaration metadata for resolved types
	ExcludeTypeAnnotations bool `json:",omitempty" yaml:",omitempty"`
	//SlowThresholdMs logs resolutions slower than the threshold, 0 disables it
	SlowThresholdMs int `json:",omitempty" yaml:",omitempty"`
	Debug           bool `json:",omitempty" yaml:",omitempty"`
	//CatalogURL is declaration catalog location
	CatalogURL string `json:",omitempty" yaml:",omitempty"`
}

// Init initialises defaults
func (c *Config) Init() {
	if c.RootType == "" {
		c.RootType = DefaultRootType
	}
}

// IncludeTypeAnnotations returns true if declaration metadata is included by default
func (c *Config) IncludeTypeAnnotations() bool {
	return c == nil || !c.ExcludeTypeAnnotations
}

// SlowThreshold returns slow resolution threshold
func (c *Config) SlowThreshold() time.Duration {
	if c == nil {
		return 0
	}
	return time.Duration(c.SlowThresholdMs) * time.Millisecond
}

// Default returns default config
func Default() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}
