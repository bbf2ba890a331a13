package typemirror

import (
	"context"
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/typemirror/catalog"
	"github.com/viant/typemirror/config"
	"github.com/viant/typemirror/generics"
	"github.com/viant/typemirror/metadata"
	"github.com/viant/typemirror/mirror"
	"github.com/viant/typemirror/model"
	"github.com/viant/typemirror/resolver"
)

//go:embed Version
var Version string

// Service wires declaration catalog, metadata store and resolver
type Service struct {
	config   *config.Config
	catalog  *catalog.Catalog
	metadata *metadata.Service
	resolver *resolver.Service
}

// Config returns service config
func (s *Service) Config() *config.Config {
	return s.config
}

// Catalog returns declaration catalog
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Metadata returns metadata store
func (s *Service) Metadata() *metadata.Service {
	return s.metadata
}

// Resolver returns resolution service
func (s *Service) Resolver() *resolver.Service {
	return s.resolver
}

// Anchor returns type or member element, member is addressed with Type.member path
func (s *Service) Anchor(name string) (*mirror.Element, error) {
	if name == "" {
		return nil, nil
	}
	if element, ok := s.catalog.Element(name); ok {
		return element, nil
	}
	return s.catalog.Member(name)
}

// Bindings builds generic binding context from Type.Variable=expression pairs
func (s *Service) Bindings(values map[string]string) (generics.Bindings, error) {
	var ret = generics.Bindings{}
	for key, expr := range values {
		index := strings.LastIndex(key, ".")
		if index == -1 {
			return nil, errors.Errorf("invalid binding %v, expected Type.Variable", key)
		}
		owner, ok := s.catalog.Element(key[:index])
		if !ok {
			return nil, errors.Errorf("unknown binding type: %v", key[:index])
		}
		name := key[index+1:]
		if owner.TypeParameter(name) == nil {
			return nil, errors.Errorf("%v does not declare type parameter %v", owner.QualifiedName, name)
		}
		bound, err := s.catalog.Type(nil, expr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid binding %v", key)
		}
		variables, _ := ret.Lookup(owner.QualifiedName)
		merged := map[string]mirror.Type{name: bound}
		for k, v := range variables {
			merged[k] = v
		}
		ret = ret.With(owner.QualifiedName, merged)
	}
	return ret, nil
}

// ResolveExpr resolves textual type in the scope of anchor element type variables
func (s *Service) ResolveExpr(anchor string, expr string, bindings generics.Bindings, opts ...resolver.ResolveOption) (model.Node, error) {
	element, err := s.Anchor(anchor)
	if err != nil {
		return nil, err
	}
	aType, err := s.catalog.Type(element, expr)
	if err != nil {
		return nil, err
	}
	options := append([]resolver.ResolveOption{resolver.WithBindings(bindings)}, opts...)
	return s.resolver.Resolve(element, aType, options...)
}

// ResolveMember resolves member type of a parameterized owner, i.e. Repo<String>, items
func (s *Service) ResolveMember(ownerExpr string, member string, opts ...resolver.ResolveOption) (model.Node, error) {
	ownerType, err := s.catalog.Type(nil, ownerExpr)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolver.Resolve(nil, ownerType, opts...)
	if err != nil {
		return nil, err
	}
	class := resolver.ClassOf(owner)
	if class == nil {
		return nil, errors.Errorf("%v is not a declared type", ownerExpr)
	}
	element := class.Declaration.Member(member)
	if element == nil {
		return nil, errors.Errorf("unknown member %v of %v", member, class.Name())
	}
	return s.resolver.Member(owner, element, opts...)
}

// New creates a service
func New(ctx context.Context, opts ...Option) (*Service, error) {
	o := newOptions(opts)
	var cfg *config.Config
	if o.config != nil {
		aConfig := *o.config
		cfg = &aConfig
	}
	if cfg == nil && o.configURL != "" {
		var err error
		if cfg, err = config.NewFromURL(ctx, o.fs, o.configURL); err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Init()
	aCatalog := o.catalog
	if aCatalog == nil {
		var catalogOptions []catalog.Option
		if cfg.RootType != config.DefaultRootType {
			catalogOptions = append(catalogOptions, catalog.WithRoot(cfg.RootType))
		}
		var err error
		if cfg.CatalogURL != "" {
			if aCatalog, err = catalog.NewFromURL(ctx, o.fs, cfg.CatalogURL, catalogOptions...); err != nil {
				return nil, err
			}
		} else {
			aCatalog = catalog.Empty(catalogOptions...)
		}
	}
	store := metadata.New(aCatalog.Element)
	resolverOptions := []resolver.Option{resolver.WithConfig(cfg), resolver.WithMetrics(o.metrics)}
	if o.logger != nil {
		resolverOptions = append(resolverOptions, resolver.WithLogger(o.logger))
	}
	return &Service{
		config:   cfg,
		catalog:  aCatalog,
		metadata: store,
		resolver: resolver.New(store, aCatalog, resolverOptions...),
	}, nil
}
