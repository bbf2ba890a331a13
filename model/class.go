package model

import (
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/viant/typemirror/generics"
	"github.com/viant/typemirror/metadata"
	"github.com/viant/typemirror/mirror"
)

type (
	//Class represents resolved class, interface or record type
	Class struct {
		Declaration   *mirror.Element
		Metadata      *metadata.Record
		TypeArguments []mirror.Type
		//Generics holds bindings used to resolve declaration members
		Generics generics.Bindings
		//TypeVariable is set when the class was reached by substituting a type variable
		TypeVariable bool
	}

	//Enum represents resolved enum type
	Enum struct {
		Class
	}
)

func (c *Class) Kind() Kind { return KindClass }
func (c *Class) node()      {}

func (c *Class) Name() string {
	if c.Declaration == nil {
		return ""
	}
	return c.Declaration.QualifiedName
}

// SimpleName returns declaration simple name
func (c *Class) SimpleName() string {
	if c.Declaration == nil {
		return ""
	}
	return c.Declaration.Name
}

func (c *Class) String() string {
	if len(c.TypeArguments) == 0 {
		return c.Name()
	}
	var args = make([]string, 0, len(c.TypeArguments))
	for _, arg := range c.TypeArguments {
		args = append(args, arg.String())
	}
	return c.Name() + "<" + strings.Join(args, ",") + ">"
}

// Bound returns type variable substitution bound for the declaration
func (c *Class) Bound(variable string) (mirror.Type, bool) {
	vars, ok := c.Generics.Lookup(c.Name())
	if !ok {
		return nil, false
	}
	ret, ok := vars[variable]
	return ret, ok
}

func (c *Class) IsNil() bool {
	return c == nil
}

func (c *Class) MarshalJSONObject(enc *gojay.Encoder) {
	c.marshal(enc, c.Kind())
}

func (c *Class) marshal(enc *gojay.Encoder, kind Kind) {
	enc.StringKey("kind", kind.String())
	enc.StringKey("name", c.Name())
	if len(c.TypeArguments) > 0 {
		var args = make(stringArray, 0, len(c.TypeArguments))
		for _, arg := range c.TypeArguments {
			args = append(args, arg.String())
		}
		enc.ArrayKey("typeArguments", args)
	}
	enc.ArrayKeyOmitEmpty("annotations", stringArray(c.Metadata.Names()))
	enc.ObjectKeyOmitEmpty("generics", bindingsJSON(c.Generics))
	enc.BoolKeyOmitEmpty("typeVariable", c.TypeVariable)
}

func (e *Enum) Kind() Kind { return KindEnum }

// Constants returns enum constant names
func (e *Enum) Constants() []string {
	if e.Declaration == nil {
		return nil
	}
	var ret []string
	for _, member := range e.Declaration.Members {
		if member.Kind == mirror.ElementConstant {
			ret = append(ret, member.Name)
		}
	}
	return ret
}

func (e *Enum) IsNil() bool {
	return e == nil
}

func (e *Enum) MarshalJSONObject(enc *gojay.Encoder) {
	e.marshal(enc, e.Kind())
	enc.ArrayKeyOmitEmpty("constants", stringArray(e.Constants()))
}
