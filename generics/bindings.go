package generics

import (
	"github.com/viant/typemirror/mirror"
)

// Bindings maps declaring type qualified name to its type variable substitutions
type Bindings map[string]map[string]mirror.Type

// Lookup returns variable substitutions for supplied declaring type
func (b Bindings) Lookup(typeName string) (map[string]mirror.Type, bool) {
	if len(b) == 0 {
		return nil, false
	}
	ret, ok := b[typeName]
	return ret, ok
}

// With returns a copy of bindings with supplied declaring type substitutions, receiver is left intact
func (b Bindings) With(typeName string, variables map[string]mirror.Type) Bindings {
	ret := make(Bindings, len(b)+1)
	for k, v := range b {
		ret[k] = v
	}
	vars := make(map[string]mirror.Type, len(variables))
	for k, v := range variables {
		vars[k] = v
	}
	ret[typeName] = vars
	return ret
}

// BoundFor returns substitutions active for the type enclosing anchor element,
// the result is empty if anchor has no enclosing type or no substitutions were bound
func BoundFor(anchor *mirror.Element, bindings Bindings) map[string]mirror.Type {
	typeElement := mirror.TypeElementFor(anchor)
	if typeElement == nil {
		return map[string]mirror.Type{}
	}
	ret, ok := bindings.Lookup(typeElement.QualifiedName)
	if !ok || ret == nil {
		return map[string]mirror.Type{}
	}
	return ret
}
