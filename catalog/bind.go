package catalog

import (
	"github.com/pkg/errors"
	"github.com/viant/typemirror/mirror"
	"github.com/viant/typemirror/parser"
)

func (c *Catalog) bindExpr(scope *mirror.Element, expr string) (mirror.Type, error) {
	parsed, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return c.bind(scope, parsed)
}

func (c *Catalog) bind(scope *mirror.Element, expr *parser.Expr) (mirror.Type, error) {
	switch {
	case len(expr.Intersection) > 0:
		bounds, err := c.bindAll(scope, expr.Intersection)
		if err != nil {
			return nil, err
		}
		return &mirror.Intersection{Bounds: bounds}, nil
	case len(expr.Union) > 0:
		alternatives, err := c.bindAll(scope, expr.Union)
		if err != nil {
			return nil, err
		}
		return &mirror.Union{Alternatives: alternatives}, nil
	case expr.Wildcard:
		if expr.Dimensions > 0 {
			return nil, errors.Errorf("wildcard can not be an array: %v", expr)
		}
		return c.bindWildcard(scope, expr)
	}
	base, err := c.bindNamed(scope, expr)
	if err != nil {
		return nil, err
	}
	var ret = base
	for i := 0; i < expr.Dimensions; i++ {
		ret = &mirror.Array{Component: ret}
	}
	return ret, nil
}

func (c *Catalog) bindWildcard(scope *mirror.Element, expr *parser.Expr) (mirror.Type, error) {
	ret := &mirror.Wildcard{}
	var err error
	if expr.Extends != nil {
		if ret.Extends, err = c.bind(scope, expr.Extends); err != nil {
			return nil, err
		}
	}
	if expr.Super != nil {
		if ret.Super, err = c.bind(scope, expr.Super); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (c *Catalog) bindNamed(scope *mirror.Element, expr *parser.Expr) (mirror.Type, error) {
	if expr.Name == string(mirror.Void) {
		return mirror.NoType, nil
	}
	if len(expr.Arguments) == 0 {
		if isPrimitive(expr.Name) {
			return &mirror.Primitive{Name: mirror.PrimitiveKind(expr.Name)}, nil
		}
		if variable := lookupVariable(scope, expr.Name); variable != nil {
			return variable, nil
		}
	}
	element, ok := c.Element(expr.Name)
	if !ok {
		return nil, errors.Errorf("unknown type: %v", expr.Name)
	}
	arguments, err := c.bindAll(scope, expr.Arguments)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid type arguments of %v", expr.Name)
	}
	if len(arguments) > 0 && len(arguments) != len(element.TypeParameters) {
		return nil, errors.Errorf("%v expects %v type arguments, but had %v", element.QualifiedName, len(element.TypeParameters), len(arguments))
	}
	ret := &mirror.Declared{Element: element, Arguments: arguments}
	for _, annotation := range expr.Annotations {
		ret.Annotations = append(ret.Annotations, &mirror.Annotation{
			Name:   c.qualify(annotation.Name),
			Values: annotation.Values,
			Target: mirror.TargetTypeUse,
		})
	}
	return ret, nil
}

func (c *Catalog) bindAll(scope *mirror.Element, exprs []*parser.Expr) ([]mirror.Type, error) {
	var ret []mirror.Type
	for _, expr := range exprs {
		item, err := c.bind(scope, expr)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}

func (c *Catalog) qualify(name string) string {
	if element, ok := c.Element(name); ok {
		return element.QualifiedName
	}
	return name
}

// lookupVariable finds type variable visible in scope, inner declarations shadow outer ones
func lookupVariable(scope *mirror.Element, name string) *mirror.Variable {
	for candidate := scope; candidate != nil; candidate = candidate.Enclosing {
		if variable := candidate.TypeParameter(name); variable != nil {
			return variable
		}
		if candidate.IsType() && candidate.IsStatic() {
			return nil
		}
	}
	return nil
}

func isPrimitive(name string) bool {
	for _, kind := range mirror.PrimitiveKinds {
		if string(kind) == name {
			return true
		}
	}
	return false
}
