package resolver

import (
	"fmt"

	"github.com/viant/typemirror/mirror"
	"github.com/viant/typemirror/model"
)

// Member resolves member type using generic bindings of the resolved owner
func (s *Service) Member(owner model.Node, member *mirror.Element, opts ...ResolveOption) (model.Node, error) {
	if member == nil {
		return nil, fmt.Errorf("failed to resolve member of %v: member was nil", owner)
	}
	class := ClassOf(owner)
	if class == nil {
		return nil, fmt.Errorf("failed to resolve member %v: owner %v is not a declared type", member.Name, owner)
	}
	options := append([]ResolveOption{WithBindings(class.Generics)}, opts...)
	return s.Resolve(member, member.Type, options...)
}

// TypeArguments resolves class type arguments, the result is aligned with declared type parameters
func (s *Service) TypeArguments(class *model.Class) ([]model.Node, error) {
	if class == nil || class.Declaration == nil {
		return nil, nil
	}
	var ret = make([]model.Node, 0, len(class.Declaration.TypeParameters))
	for _, parameter := range class.Declaration.TypeParameters {
		node, err := s.Resolve(class.Declaration, parameter, WithBindings(class.Generics))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %v type argument %v: %w", class.Name(), parameter.Name, err)
		}
		ret = append(ret, node)
	}
	return ret, nil
}

// ClassOf returns declared type of a node, arrays are unwrapped
func ClassOf(node model.Node) *model.Class {
	switch actual := model.Elem(node).(type) {
	case *model.Class:
		return actual
	case *model.Enum:
		return &actual.Class
	}
	return nil
}
