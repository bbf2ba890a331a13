package catalog

import (
	"github.com/pkg/errors"
	"github.com/viant/typemirror/mirror"
	"github.com/viant/typemirror/parser"
)

func (c *Catalog) load(document *Document) error {
	var elements = make([]*mirror.Element, len(document.Types))
	for i, def := range document.Types {
		if def.Name == "" {
			return errors.Errorf("type name was empty at position %v", i)
		}
		element, ok := c.elements[def.Name]
		if !ok {
			element = &mirror.Element{QualifiedName: def.Name, Name: simpleName(def.Name)}
		}
		kind, err := elementKind(def.Kind)
		if err != nil {
			return errors.Wrapf(err, "invalid type %v", def.Name)
		}
		element.Kind = kind
		element.Modifiers = modifiers(def.Modifiers)
		element.Annotations = annotations(def.Annotations)
		elements[i] = element
		c.Register(element)
	}
	for i, def := range document.Types {
		if def.Enclosing == "" {
			continue
		}
		enclosing, ok := c.Element(def.Enclosing)
		if !ok {
			return errors.Errorf("unknown enclosing type %v of %v", def.Enclosing, def.Name)
		}
		elements[i].Enclosing = enclosing
	}
	//type parameters are declared before any member or bound is bound, bounds may refer to any variable
	for i, def := range document.Types {
		element := elements[i]
		params, err := c.declareParameters(element, def.TypeParameters)
		if err != nil {
			return errors.Wrapf(err, "invalid type parameters of %v", def.Name)
		}
		element.TypeParameters = params
	}
	for i, def := range document.Types {
		element := elements[i]
		if err := c.bindParameters(element, def.TypeParameters); err != nil {
			return errors.Wrapf(err, "invalid type parameter bounds of %v", def.Name)
		}
		if def.Wraps != "" {
			wrapped, err := c.bindExpr(element, def.Wraps)
			if err != nil {
				return errors.Wrapf(err, "invalid wrapped type of %v", def.Name)
			}
			element.Type = wrapped
		}
		if err := c.loadMembers(element, def); err != nil {
			return errors.Wrapf(err, "invalid members of %v", def.Name)
		}
	}
	return nil
}

func (c *Catalog) loadMembers(owner *mirror.Element, def *TypeDef) error {
	for _, name := range def.Constants {
		owner.Members = append(owner.Members, &mirror.Element{
			Name:      name,
			Kind:      mirror.ElementConstant,
			Enclosing: owner,
			Modifiers: mirror.Modifiers{mirror.Public, mirror.Static, mirror.Final},
			Type:      &mirror.Declared{Element: owner},
		})
	}
	for _, field := range def.Fields {
		member, err := c.member(owner, field, mirror.ElementField)
		if err != nil {
			return err
		}
		owner.Members = append(owner.Members, member)
	}
	for _, method := range def.Methods {
		member, err := c.member(owner, method, mirror.ElementMethod)
		if err != nil {
			return err
		}
		owner.Members = append(owner.Members, member)
	}
	return nil
}

func (c *Catalog) member(owner *mirror.Element, def *MemberDef, kind mirror.ElementKind) (*mirror.Element, error) {
	if def.Name == "" {
		return nil, errors.Errorf("%v name was empty", kind)
	}
	ret := &mirror.Element{
		Name:        def.Name,
		Kind:        kind,
		Enclosing:   owner,
		Modifiers:   modifiers(def.Modifiers),
		Annotations: annotations(def.Annotations),
	}
	if kind == mirror.ElementMethod && def.Name == "<init>" {
		ret.Kind = mirror.ElementConstructor
	}
	params, err := c.declareParameters(ret, def.TypeParameters)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid type parameters of %v", def.Name)
	}
	ret.TypeParameters = params
	if err = c.bindParameters(ret, def.TypeParameters); err != nil {
		return nil, errors.Wrapf(err, "invalid type parameter bounds of %v", def.Name)
	}
	ret.Type = mirror.NoType
	if def.Type != "" {
		if ret.Type, err = c.bindExpr(ret, def.Type); err != nil {
			return nil, errors.Wrapf(err, "invalid type of %v", def.Name)
		}
	}
	for _, param := range def.Parameters {
		parameter, err := c.member(ret, param, mirror.ElementParameter)
		if err != nil {
			return nil, err
		}
		ret.Members = append(ret.Members, parameter)
	}
	return ret, nil
}

func (c *Catalog) declareParameters(owner *mirror.Element, expr string) ([]*mirror.Variable, error) {
	if expr == "" {
		return nil, nil
	}
	params, err := parser.ParseParameters(expr)
	if err != nil {
		return nil, err
	}
	var ret = make([]*mirror.Variable, 0, len(params))
	for _, param := range params {
		ret = append(ret, &mirror.Variable{Name: param.Name, Owner: owner.Key()})
	}
	return ret, nil
}

func (c *Catalog) bindParameters(owner *mirror.Element, expr string) error {
	if expr == "" {
		return nil
	}
	params, err := parser.ParseParameters(expr)
	if err != nil {
		return err
	}
	for i, param := range params {
		variable := owner.TypeParameters[i]
		var bounds []mirror.Type
		for _, bound := range param.Bounds {
			boundType, err := c.bind(owner, bound)
			if err != nil {
				return errors.Wrapf(err, "invalid bound of %v", param.Name)
			}
			bounds = append(bounds, boundType)
		}
		switch len(bounds) {
		case 0:
			if variable.UpperBound, err = c.Root(); err != nil {
				return err
			}
		case 1:
			variable.UpperBound = bounds[0]
		default:
			variable.UpperBound = &mirror.Intersection{Bounds: bounds}
		}
	}
	return nil
}

func elementKind(kind string) (mirror.ElementKind, error) {
	if kind == "" {
		return mirror.ElementClass, nil
	}
	ret := mirror.ElementKind(kind)
	if !ret.IsType() {
		return "", errors.Errorf("unsupported type kind: %v", kind)
	}
	return ret, nil
}

func modifiers(values []string) mirror.Modifiers {
	var ret mirror.Modifiers
	for _, value := range values {
		ret = append(ret, mirror.Modifier(value))
	}
	return ret
}

func annotations(defs []*AnnotationDef) []*mirror.Annotation {
	var ret []*mirror.Annotation
	for _, def := range defs {
		annotation := &mirror.Annotation{Name: def.Name, Values: def.Values}
		if def.TypeUse {
			annotation.Target = mirror.TargetTypeUse
		}
		ret = append(ret, annotation)
	}
	return ret
}
