package mirror

// TypeKind represents a raw type descriptor kind
type TypeKind int

const (
	KindNone TypeKind = iota
	KindDeclared
	KindVariable
	KindArray
	KindPrimitive
	KindWildcard
	KindIntersection
	KindUnion
)

func (k TypeKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDeclared:
		return "declared"
	case KindVariable:
		return "variable"
	case KindArray:
		return "array"
	case KindPrimitive:
		return "primitive"
	case KindWildcard:
		return "wildcard"
	case KindIntersection:
		return "intersection"
	case KindUnion:
		return "union"
	}
	return "unknown"
}

// PrimitiveKind represents native primitive kind name
type PrimitiveKind string

const (
	Boolean PrimitiveKind = "boolean"
	Byte    PrimitiveKind = "byte"
	Short   PrimitiveKind = "short"
	Int     PrimitiveKind = "int"
	Long    PrimitiveKind = "long"
	Char    PrimitiveKind = "char"
	Float   PrimitiveKind = "float"
	Double  PrimitiveKind = "double"
	Void    PrimitiveKind = "void"
)

// PrimitiveKinds lists all non void primitive kinds
var PrimitiveKinds = []PrimitiveKind{Boolean, Byte, Short, Int, Long, Char, Float, Double}

// ElementKind represents declaration kind
type ElementKind string

const (
	ElementClass       ElementKind = "class"
	ElementInterface   ElementKind = "interface"
	ElementEnum        ElementKind = "enum"
	ElementAnnotation  ElementKind = "annotation"
	ElementRecord      ElementKind = "record"
	ElementField       ElementKind = "field"
	ElementMethod      ElementKind = "method"
	ElementConstructor ElementKind = "constructor"
	ElementParameter   ElementKind = "parameter"
	ElementConstant    ElementKind = "constant"
)

// IsType returns true if kind declares a type
func (k ElementKind) IsType() bool {
	switch k {
	case ElementClass, ElementInterface, ElementEnum, ElementAnnotation, ElementRecord:
		return true
	}
	return false
}
