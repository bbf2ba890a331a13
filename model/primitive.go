package model

import (
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/viant/typemirror/mirror"
)

// Primitive represents primitive or void type
type Primitive struct {
	Type mirror.PrimitiveKind
}

var (
	Void    = &Primitive{Type: mirror.Void}
	Boolean = &Primitive{Type: mirror.Boolean}
	Byte    = &Primitive{Type: mirror.Byte}
	Short   = &Primitive{Type: mirror.Short}
	Int     = &Primitive{Type: mirror.Int}
	Long    = &Primitive{Type: mirror.Long}
	Char    = &Primitive{Type: mirror.Char}
	Float   = &Primitive{Type: mirror.Float}
	Double  = &Primitive{Type: mirror.Double}
)

var primitives = map[string]*Primitive{
	string(mirror.Void):    Void,
	string(mirror.Boolean): Boolean,
	string(mirror.Byte):    Byte,
	string(mirror.Short):   Short,
	string(mirror.Int):     Int,
	string(mirror.Long):    Long,
	string(mirror.Char):    Char,
	string(mirror.Float):   Float,
	string(mirror.Double):  Double,
}

// PrimitiveOf returns primitive for native kind name, name is case insensitive
func PrimitiveOf(name string) (*Primitive, bool) {
	ret, ok := primitives[strings.ToLower(name)]
	return ret, ok
}

func (p *Primitive) Kind() Kind     { return KindPrimitive }
func (p *Primitive) Name() string   { return string(p.Type) }
func (p *Primitive) String() string { return string(p.Type) }
func (p *Primitive) node()          {}

// IsVoid returns true for void type
func (p *Primitive) IsVoid() bool {
	return p.Type == mirror.Void
}

func (p *Primitive) IsNil() bool {
	return p == nil
}

func (p *Primitive) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("kind", p.Kind().String())
	enc.StringKey("name", p.Name())
}
