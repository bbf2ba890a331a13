package mirror

import (
	"reflect"
	"strings"
)

type (
	//Type represents a raw type descriptor
	Type interface {
		Kind() TypeKind
		String() string
		mirror()
	}

	//Declared represents a use of a class, interface or enum
	Declared struct {
		Element     *Element
		Arguments   []Type
		Annotations []*Annotation
	}

	//Variable represents a type variable
	Variable struct {
		Name       string
		Owner      string
		UpperBound Type
		LowerBound Type
	}

	//Array represents an array type
	Array struct {
		Component Type
	}

	//Primitive represents a primitive type
	Primitive struct {
		Name PrimitiveKind
	}

	//Wildcard represents a wildcard type argument
	Wildcard struct {
		Extends Type
		Super   Type
	}

	//Intersection represents an intersection bound (A & B)
	Intersection struct {
		Bounds []Type
	}

	//Union represents an union type (A | B)
	Union struct {
		Alternatives []Type
	}

	noType struct{}
)

// NoType represents an absent type
var NoType Type = &noType{}

func (n *noType) Kind() TypeKind { return KindNone }
func (n *noType) String() string { return string(Void) }
func (n *noType) mirror()        {}

func (d *Declared) Kind() TypeKind { return KindDeclared }
func (d *Declared) mirror()        {}

func (d *Declared) String() string {
	name := ""
	if d.Element != nil {
		name = d.Element.QualifiedName
	}
	if len(d.Arguments) == 0 {
		return name
	}
	return name + "<" + join(d.Arguments, ",") + ">"
}

func (v *Variable) Kind() TypeKind { return KindVariable }
func (v *Variable) String() string { return v.Name }
func (v *Variable) mirror()        {}

// Bounds returns upper bound conjuncts
func (v *Variable) Bounds() []Type {
	if v.UpperBound == nil {
		return nil
	}
	if intersection, ok := v.UpperBound.(*Intersection); ok {
		return intersection.Bounds
	}
	return []Type{v.UpperBound}
}

func (a *Array) Kind() TypeKind { return KindArray }
func (a *Array) String() string { return a.Component.String() + "[]" }
func (a *Array) mirror()        {}

func (p *Primitive) Kind() TypeKind { return KindPrimitive }
func (p *Primitive) String() string { return string(p.Name) }
func (p *Primitive) mirror()        {}

func (w *Wildcard) Kind() TypeKind { return KindWildcard }
func (w *Wildcard) mirror()        {}

func (w *Wildcard) String() string {
	switch {
	case w.Extends != nil:
		return "? extends " + w.Extends.String()
	case w.Super != nil:
		return "? super " + w.Super.String()
	}
	return "?"
}

func (i *Intersection) Kind() TypeKind { return KindIntersection }
func (i *Intersection) String() string { return join(i.Bounds, " & ") }
func (i *Intersection) mirror()        {}

func (u *Union) Kind() TypeKind { return KindUnion }
func (u *Union) String() string { return join(u.Alternatives, " | ") }
func (u *Union) mirror()        {}

// Same returns true if both descriptors denote the same type occurrence.
// Variables are matched by name and owner, everything else by identity.
func Same(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	left, ok := a.(*Variable)
	if !ok {
		return false
	}
	right, ok := b.(*Variable)
	if !ok {
		return false
	}
	return left.Name == right.Name && left.Owner == right.Owner
}

// IsNone returns true for absent type
func IsNone(t Type) bool {
	if t == nil {
		return true
	}
	if value := reflect.ValueOf(t); value.Kind() == reflect.Ptr && value.IsNil() {
		return true
	}
	return t.Kind() == KindNone
}

func join(types []Type, sep string) string {
	var items = make([]string, 0, len(types))
	for _, item := range types {
		if item == nil {
			items = append(items, string(Void))
			continue
		}
		items = append(items, item.String())
	}
	return strings.Join(items, sep)
}
