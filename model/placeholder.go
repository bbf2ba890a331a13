package model

import (
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/viant/typemirror/mirror"
)

type (
	//Placeholder represents a free type variable
	Placeholder struct {
		Variable *mirror.Variable
		//Bounds holds resolved upper bounds in declaration order
		Bounds []Node
		//Arity holds array dimensions carried by the placeholder
		Arity int
	}

	//Wildcard represents a wildcard type argument
	Wildcard struct {
		UpperBounds []Node
		LowerBounds []Node
	}

	//Array represents an array type
	Array struct {
		Component Node
	}
)

func (p *Placeholder) Kind() Kind { return KindPlaceholder }
func (p *Placeholder) node()      {}

func (p *Placeholder) Name() string {
	if p.Variable == nil {
		return ""
	}
	return p.Variable.Name
}

func (p *Placeholder) String() string {
	if len(p.Bounds) == 0 {
		return p.Name()
	}
	return p.Name() + " extends " + joinNodes(p.Bounds, " & ")
}

func (p *Placeholder) IsNil() bool {
	return p == nil
}

func (p *Placeholder) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("kind", p.Kind().String())
	enc.StringKey("name", p.Name())
	enc.ArrayKeyOmitEmpty("bounds", nodes(p.Bounds))
	enc.IntKeyOmitEmpty("arity", p.Arity)
}

func (w *Wildcard) Kind() Kind   { return KindWildcard }
func (w *Wildcard) Name() string { return "?" }
func (w *Wildcard) node()        {}

func (w *Wildcard) String() string {
	ret := "?"
	if len(w.LowerBounds) > 0 {
		ret += " super " + joinNodes(w.LowerBounds, " | ")
	}
	if len(w.UpperBounds) > 0 {
		ret += " extends " + joinNodes(w.UpperBounds, " & ")
	}
	return ret
}

func (w *Wildcard) IsNil() bool {
	return w == nil
}

func (w *Wildcard) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("kind", w.Kind().String())
	enc.StringKey("name", w.Name())
	enc.ArrayKey("upperBounds", nodes(w.UpperBounds))
	enc.ArrayKey("lowerBounds", nodes(w.LowerBounds))
}

func (a *Array) Kind() Kind     { return KindArray }
func (a *Array) Name() string   { return a.Component.Name() + "[]" }
func (a *Array) String() string { return a.Component.String() + "[]" }
func (a *Array) node()          {}

func (a *Array) IsNil() bool {
	return a == nil
}

func (a *Array) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("kind", a.Kind().String())
	enc.StringKey("name", a.Name())
	enc.ObjectKey("component", a.Component)
}

func joinNodes(items []Node, sep string) string {
	var names = make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.String())
	}
	return strings.Join(names, sep)
}
