package model

import (
	"github.com/francoispqt/gojay"
)

// Kind represents abstract type node kind
type Kind int

const (
	KindPrimitive Kind = iota
	KindClass
	KindEnum
	KindPlaceholder
	KindWildcard
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindPlaceholder:
		return "placeholder"
	case KindWildcard:
		return "wildcard"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Node represents resolved abstract type node
type Node interface {
	Kind() Kind
	Name() string
	String() string
	gojay.MarshalerJSONObject
	node()
}

// Marshal encodes node as JSON
func Marshal(node Node) ([]byte, error) {
	return gojay.MarshalJSONObject(node)
}

// ToArray wraps node with an array
func ToArray(node Node) *Array {
	return &Array{Component: node}
}

// Dimensions returns array nesting depth
func Dimensions(node Node) int {
	ret := 0
	for {
		array, ok := node.(*Array)
		if !ok {
			return ret
		}
		ret++
		node = array.Component
	}
}

// Elem returns innermost array component or node itself
func Elem(node Node) Node {
	for {
		array, ok := node.(*Array)
		if !ok {
			return node
		}
		node = array.Component
	}
}
