package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/typemirror/config"
	"github.com/viant/typemirror/mirror"
	"gopkg.in/yaml.v3"
)

type (
	//Catalog represents declaration source
	Catalog struct {
		root     string
		imports  []string
		elements map[string]*mirror.Element
		simple   map[string][]*mirror.Element
	}

	//Option represents catalog option
	Option func(c *Catalog)
)

// WithRoot sets universal top type name
func WithRoot(name string) Option {
	return func(c *Catalog) {
		if name != "" {
			c.root = name
		}
	}
}

// WithImports sets packages used to qualify simple names
func WithImports(packages ...string) Option {
	return func(c *Catalog) {
		c.imports = append(c.imports, packages...)
	}
}

// Register registers type element
func (c *Catalog) Register(element *mirror.Element) {
	if element == nil || element.QualifiedName == "" {
		return
	}
	if _, ok := c.elements[element.QualifiedName]; !ok {
		c.simple[element.Name] = append(c.simple[element.Name], element)
	}
	c.elements[element.QualifiedName] = element
}

// Element returns type element by qualified name, simple or imported names are resolved when unambiguous
func (c *Catalog) Element(name string) (*mirror.Element, bool) {
	if ret, ok := c.elements[name]; ok {
		return ret, true
	}
	for _, pkg := range c.imports {
		if ret, ok := c.elements[pkg+"."+name]; ok {
			return ret, true
		}
	}
	if candidates := c.simple[name]; len(candidates) == 1 {
		return candidates[0], true
	}
	return nil, false
}

// Elements returns registered qualified names in sorted order
func (c *Catalog) Elements() []string {
	var ret = make([]string, 0, len(c.elements))
	for name := range c.elements {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Member returns member element for Type.member path
func (c *Catalog) Member(path string) (*mirror.Element, error) {
	index := strings.LastIndex(path, ".")
	if index == -1 {
		return nil, errors.Errorf("invalid member path: %v, expected Type.member", path)
	}
	owner, ok := c.Element(path[:index])
	if !ok {
		return nil, errors.Errorf("unknown type: %v", path[:index])
	}
	member := owner.Member(path[index+1:])
	if member == nil {
		return nil, errors.Errorf("unknown member %v of %v", path[index+1:], owner.QualifiedName)
	}
	return member, nil
}

// Root returns universal top type
func (c *Catalog) Root() (mirror.Type, error) {
	element, ok := c.elements[c.root]
	if !ok {
		return nil, errors.Errorf("root type %v was not registered", c.root)
	}
	return element.AsType(), nil
}

// Type binds type expression in the scope of supplied element type variables
func (c *Catalog) Type(scope *mirror.Element, expr string) (mirror.Type, error) {
	return c.bindExpr(scope, expr)
}

// New creates a catalog from YAML document
func New(data []byte, opts ...Option) (*Catalog, error) {
	document := &Document{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}
	return NewFromDocument(document, opts...)
}

// NewFromURL loads catalog from URL
func NewFromURL(ctx context.Context, fs afs.Service, URL string, opts ...Option) (*Catalog, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog: %v", URL)
	}
	ret, err := New(data, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog: %v", URL)
	}
	return ret, nil
}

// NewFromDocument creates a catalog from decoded document
func NewFromDocument(document *Document, opts ...Option) (*Catalog, error) {
	ret := newCatalog(document.Root, document.Imports)
	for _, opt := range opts {
		opt(ret)
	}
	ret.registerRoot()
	if err := ret.load(document); err != nil {
		return nil, err
	}
	return ret, nil
}

// Empty creates a catalog with root type only
func Empty(opts ...Option) *Catalog {
	ret := newCatalog("", nil)
	for _, opt := range opts {
		opt(ret)
	}
	ret.registerRoot()
	return ret
}

func newCatalog(root string, imports []string) *Catalog {
	if root == "" {
		root = config.DefaultRootType
	}
	return &Catalog{
		root:     root,
		imports:  append([]string{}, imports...),
		elements: map[string]*mirror.Element{},
		simple:   map[string][]*mirror.Element{},
	}
}

func (c *Catalog) registerRoot() {
	if _, ok := c.elements[c.root]; ok {
		return
	}
	c.Register(&mirror.Element{
		Name:          simpleName(c.root),
		QualifiedName: c.root,
		Kind:          mirror.ElementClass,
		Modifiers:     mirror.Modifiers{mirror.Public},
	})
}

func simpleName(qualified string) string {
	if index := strings.LastIndex(qualified, "."); index != -1 {
		return qualified[index+1:]
	}
	return qualified
}
