package cmd

import (
	"strings"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Options represents command line options
type Options struct {
	CatalogURL        string            `short:"c" long:"catalog" description:"declaration catalog URL (yaml)"`
	ConfigURL         string            `short:"f" long:"config" description:"configuration URL (yaml or json)"`
	RootType          string            `short:"r" long:"root" description:"universal top type, i.e. java.lang.Object"`
	Type              string            `short:"t" long:"type" description:"type expression to resolve, i.e. Map<String, List<? extends Number>>"`
	Anchor            string            `short:"a" long:"anchor" description:"anchor type or Type.member scoping type variables"`
	Member            string            `short:"m" long:"member" description:"member of the resolved type to resolve"`
	Bindings          map[string]string `short:"b" long:"bind" key-value-delimiter:"=" description:"generic binding Type.Variable=expression"`
	NoTypeAnnotations bool              `short:"n" long:"noTypeAnnotations" description:"exclude declaration annotations"`
	Debug             bool              `short:"d" long:"debug" description:"log resolution events"`
	Version           bool              `short:"v" long:"version" description:"build version"`
}

// Init normalizes locations
func (o *Options) Init() {
	if o.CatalogURL != "" {
		o.CatalogURL = url.Normalize(o.CatalogURL, file.Scheme)
	}
	if o.ConfigURL != "" {
		o.ConfigURL = url.Normalize(o.ConfigURL, file.Scheme)
	}
	o.Type = strings.TrimSpace(o.Type)
	o.Anchor = strings.TrimSpace(o.Anchor)
}
