package resolver

import (
	"reflect"
	"time"

	"github.com/viant/typemirror/config"
	"github.com/viant/typemirror/generics"
	"github.com/viant/typemirror/logger"
	"github.com/viant/typemirror/metadata"
	"github.com/viant/typemirror/mirror"
	"github.com/viant/typemirror/model"
)

type (
	//Elements represents declaration source collaborator
	Elements interface {
		//Root returns the universal top type
		Root() (mirror.Type, error)
	}

	//Service resolves raw type descriptors into abstract type nodes
	Service struct {
		store    metadata.Store
		elements Elements
		config   *config.Config
		logger   *logger.Adapter
		counter  *logger.CounterAdapter
		fallback *logger.CounterAdapter
	}

	//scope represents immutable state shared by a single resolution call
	scope struct {
		anchor   *mirror.Element
		bindings generics.Bindings
		//substituted holds variables being substituted on the current path
		substituted []*mirror.Variable
	}
)

type metricsLocation struct{}

// Resolve resolves type descriptor in the context of anchor element
func (s *Service) Resolve(anchor *mirror.Element, aType mirror.Type, opts ...ResolveOption) (model.Node, error) {
	req := &request{anchor: anchor, includeTypeAnnotations: s.config.IncludeTypeAnnotations()}
	for _, opt := range opts {
		opt(req)
	}
	typeVariable := isVariable(aType)
	if req.typeVariable != nil {
		typeVariable = *req.typeVariable
	}
	started := time.Now()
	onDone := s.counter.Begin(started)
	ctx := &scope{anchor: req.anchor, bindings: req.bindings}
	node, err := s.resolve(ctx, aType, req.includeTypeAnnotations, typeVariable)
	if err != nil {
		onDone(time.Now(), err)
		return nil, err
	}
	onDone(time.Now())
	s.logger.Resolved(anchorName(anchor), describe(aType), node.String(), time.Since(started))
	return node, nil
}

// Parameterized resolves type descriptor of a parameterized member with supplied bindings
func (s *Service) Parameterized(anchor *mirror.Element, aType mirror.Type, bindings generics.Bindings) (model.Node, error) {
	return s.Resolve(anchor, aType, WithBindings(bindings))
}

func (s *Service) resolve(ctx *scope, aType mirror.Type, includeTypeAnnotations, typeVariable bool) (model.Node, error) {
	if mirror.IsNone(aType) {
		return model.Void, nil
	}
	switch actual := aType.(type) {
	case *mirror.Declared:
		return s.resolveDeclared(ctx, actual, includeTypeAnnotations, typeVariable)
	case *mirror.Variable:
		return s.resolveVariable(ctx, actual, includeTypeAnnotations)
	case *mirror.Array:
		component, err := s.resolve(ctx, actual.Component, includeTypeAnnotations, isVariable(actual.Component))
		if err != nil {
			return nil, err
		}
		return model.ToArray(component), nil
	case *mirror.Primitive:
		if primitive, ok := model.PrimitiveOf(string(actual.Name)); ok {
			return primitive, nil
		}
	case *mirror.Wildcard:
		return s.resolveWildcard(ctx, actual, includeTypeAnnotations)
	case *mirror.Intersection, *mirror.Union:
	}
	return s.unsupported(ctx, aType), nil
}

func (s *Service) resolveDeclared(ctx *scope, declared *mirror.Declared, includeTypeAnnotations, typeVariable bool) (model.Node, error) {
	element := declared.Element
	if element == nil {
		return s.unsupported(ctx, declared), nil
	}
	if own := element.AsType(); own.Kind() != mirror.KindDeclared {
		//declared type wraps another type, i.e. a primitive
		return s.resolve(ctx, own, includeTypeAnnotations, isVariable(own))
	}
	if !element.IsType() {
		return s.unsupported(ctx, declared), nil
	}
	record, err := s.declaredMetadata(element, declared.Annotations, includeTypeAnnotations)
	if err != nil {
		return nil, err
	}
	bound := generics.BoundFor(ctx.anchor, ctx.bindings)
	class := model.Class{
		Declaration:   element,
		Metadata:      record,
		TypeArguments: declared.Arguments,
		Generics:      generics.Align(element, declared.Arguments, bound),
		TypeVariable:  typeVariable,
	}
	if element.IsEnum() {
		return &model.Enum{Class: class}, nil
	}
	return &class, nil
}

func (s *Service) declaredMetadata(element *mirror.Element, annotations []*mirror.Annotation, includeTypeAnnotations bool) (*metadata.Record, error) {
	if len(annotations) > 0 {
		return s.store.BuildDeclared(element, annotations, includeTypeAnnotations)
	}
	if !includeTypeAnnotations {
		return metadata.Empty, nil
	}
	return s.store.MetadataFor(element)
}

func (s *Service) resolveVariable(ctx *scope, variable *mirror.Variable, includeTypeAnnotations bool) (model.Node, error) {
	bound := generics.BoundFor(ctx.anchor, ctx.bindings)
	//a variable bound to itself is still free
	if target, ok := bound[variable.Name]; ok && target != nil && !mirror.Same(target, variable) && !ctx.substituting(variable) {
		return s.resolve(ctx.substitute(variable), target, includeTypeAnnotations, true)
	}
	unresolved := variable.Bounds()
	if len(unresolved) == 0 {
		root, err := s.elements.Root()
		if err != nil {
			return nil, err
		}
		unresolved = []mirror.Type{root}
	}
	bounds, err := s.resolveAll(ctx, unresolved, includeTypeAnnotations)
	if err != nil {
		return nil, err
	}
	return &model.Placeholder{Variable: variable, Bounds: bounds}, nil
}

func (s *Service) resolveWildcard(ctx *scope, wildcard *mirror.Wildcard, includeTypeAnnotations bool) (model.Node, error) {
	var lower []mirror.Type
	switch actual := wildcard.Super.(type) {
	case nil:
	case *mirror.Union:
		lower = actual.Alternatives
	default:
		lower = []mirror.Type{actual}
	}
	var upper []mirror.Type
	switch actual := wildcard.Extends.(type) {
	case nil:
		root, err := s.elements.Root()
		if err != nil {
			return nil, err
		}
		upper = []mirror.Type{root}
	case *mirror.Intersection:
		upper = actual.Bounds
	default:
		upper = []mirror.Type{actual}
	}
	upperBounds, err := s.resolveAll(ctx, upper, includeTypeAnnotations)
	if err != nil {
		return nil, err
	}
	lowerBounds, err := s.resolveAll(ctx, lower, includeTypeAnnotations)
	if err != nil {
		return nil, err
	}
	return &model.Wildcard{UpperBounds: upperBounds, LowerBounds: lowerBounds}, nil
}

func (s *Service) resolveAll(ctx *scope, types []mirror.Type, includeTypeAnnotations bool) ([]model.Node, error) {
	var ret = make([]model.Node, 0, len(types))
	for _, candidate := range types {
		node, err := s.resolve(ctx, candidate, includeTypeAnnotations, isVariable(candidate))
		if err != nil {
			return nil, err
		}
		ret = append(ret, node)
	}
	return ret, nil
}

// unsupported degrades unknown descriptor shapes to void so that callers aggregating many elements can proceed
func (s *Service) unsupported(ctx *scope, aType mirror.Type) model.Node {
	s.fallback.Begin(time.Now())(time.Now())
	s.logger.Fallback(anchorName(ctx.anchor), describe(aType))
	return model.Void
}

func (c *scope) substituting(variable *mirror.Variable) bool {
	for _, candidate := range c.substituted {
		if mirror.Same(candidate, variable) {
			return true
		}
	}
	return false
}

func (c *scope) substitute(variable *mirror.Variable) *scope {
	substituted := make([]*mirror.Variable, 0, len(c.substituted)+1)
	substituted = append(substituted, c.substituted...)
	return &scope{
		anchor:      c.anchor,
		bindings:    c.bindings,
		substituted: append(substituted, variable),
	}
}

func isVariable(aType mirror.Type) bool {
	_, ok := aType.(*mirror.Variable)
	return ok
}

func anchorName(anchor *mirror.Element) string {
	if anchor == nil {
		return ""
	}
	return anchor.Key()
}

func describe(aType mirror.Type) string {
	if mirror.IsNone(aType) {
		return string(mirror.Void)
	}
	return aType.String()
}

// New creates a resolution service
func New(store metadata.Store, elements Elements, opts ...Option) *Service {
	o := newOptions(opts)
	location := reflect.TypeOf(metricsLocation{}).PkgPath()
	return &Service{
		store:    store,
		elements: elements,
		config:   o.config,
		logger:   o.logger,
		counter:  logger.NewOperationCounter(o.metrics, location, "resolve"),
		fallback: logger.NewOperationCounter(o.metrics, location, "resolve.fallback"),
	}
}
