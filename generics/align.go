package generics

import (
	"github.com/viant/typemirror/mirror"
)

// Align zips element type parameters with use site type arguments, variables bound
// in outer substitutions are replaced at any nesting depth. The result is keyed by element qualified name.
func Align(element *mirror.Element, arguments []mirror.Type, outer map[string]mirror.Type) Bindings {
	resolved := AlignParameters(element.TypeParameters, arguments, outer)
	if len(resolved) == 0 {
		return Bindings{}
	}
	return Bindings{element.QualifiedName: resolved}
}

// AlignParameters zips type parameters with arguments, mismatched arity (raw type use) yields no substitutions
func AlignParameters(parameters []*mirror.Variable, arguments []mirror.Type, outer map[string]mirror.Type) map[string]mirror.Type {
	var ret = map[string]mirror.Type{}
	if len(parameters) == 0 || len(parameters) != len(arguments) {
		return ret
	}
	for i, parameter := range parameters {
		ret[parameter.Name] = Substitute(arguments[i], outer)
	}
	return ret
}

// Substitute replaces variables bound in outer, declared arguments, array components,
// wildcard bounds, intersection bounds and union alternatives are rebuilt. Input descriptors are never mutated,
// the input is returned as is when nothing was replaced.
func Substitute(aType mirror.Type, outer map[string]mirror.Type) mirror.Type {
	if len(outer) == 0 || aType == nil {
		return aType
	}
	switch actual := aType.(type) {
	case *mirror.Variable:
		if bound, ok := outer[actual.Name]; ok && bound != nil {
			return bound
		}
		return actual
	case *mirror.Declared:
		arguments, changed := substituteAll(actual.Arguments, outer)
		if !changed {
			return actual
		}
		return &mirror.Declared{Element: actual.Element, Arguments: arguments, Annotations: actual.Annotations}
	case *mirror.Array:
		component := Substitute(actual.Component, outer)
		if component == actual.Component {
			return actual
		}
		return &mirror.Array{Component: component}
	case *mirror.Wildcard:
		extends := Substitute(actual.Extends, outer)
		super := Substitute(actual.Super, outer)
		if extends == actual.Extends && super == actual.Super {
			return actual
		}
		return &mirror.Wildcard{Extends: extends, Super: super}
	case *mirror.Intersection:
		bounds, changed := substituteAll(actual.Bounds, outer)
		if !changed {
			return actual
		}
		return &mirror.Intersection{Bounds: bounds}
	case *mirror.Union:
		alternatives, changed := substituteAll(actual.Alternatives, outer)
		if !changed {
			return actual
		}
		return &mirror.Union{Alternatives: alternatives}
	}
	return aType
}

func substituteAll(types []mirror.Type, outer map[string]mirror.Type) ([]mirror.Type, bool) {
	var ret = make([]mirror.Type, len(types))
	changed := false
	for i, item := range types {
		ret[i] = Substitute(item, outer)
		if ret[i] != item {
			changed = true
		}
	}
	return ret, changed
}
