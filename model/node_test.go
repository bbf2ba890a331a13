package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/assertly"
	"github.com/viant/typemirror/generics"
	"github.com/viant/typemirror/metadata"
	"github.com/viant/typemirror/mirror"
)

func TestMarshal(t *testing.T) {
	object := &mirror.Element{Name: "Object", QualifiedName: "java.lang.Object", Kind: mirror.ElementClass}
	user := &mirror.Element{Name: "User", QualifiedName: "com.acme.User", Kind: mirror.ElementClass}
	list := &mirror.Element{Name: "List", QualifiedName: "java.util.List", Kind: mirror.ElementInterface}
	list.TypeParameters = []*mirror.Variable{{Name: "E", Owner: list.QualifiedName}}
	status := &mirror.Element{Name: "Status", QualifiedName: "com.acme.Status", Kind: mirror.ElementEnum}
	status.Members = []*mirror.Element{
		{Name: "ACTIVE", Kind: mirror.ElementConstant, Enclosing: status},
		{Name: "INACTIVE", Kind: mirror.ElementConstant, Enclosing: status},
	}
	variable := &mirror.Variable{Name: "T", Owner: "com.acme.Repo"}

	testCases := []struct {
		description string
		node        Node
		expect      string
	}{
		{
			description: "primitive",
			node:        Int,
			expect:      `{"kind":"primitive","name":"int"}`,
		},
		{
			description: "nested array",
			node:        ToArray(ToArray(Int)),
			expect:      `{"kind":"array","name":"int[][]","component":{"kind":"array","name":"int[]","component":{"kind":"primitive","name":"int"}}}`,
		},
		{
			description: "class with bindings",
			node: &Class{
				Declaration:   list,
				Metadata:      metadata.NewRecord([]*mirror.Annotation{{Name: "com.acme.NotNull"}}),
				TypeArguments: []mirror.Type{user.AsType()},
				Generics:      generics.Bindings{"java.util.List": {"E": user.AsType()}},
				TypeVariable:  true,
			},
			expect: `{"kind":"class","name":"java.util.List","typeArguments":["com.acme.User"],"annotations":["com.acme.NotNull"],"generics":{"java.util.List":{"E":"com.acme.User"}},"typeVariable":true}`,
		},
		{
			description: "enum",
			node:        &Enum{Class: Class{Declaration: status, Metadata: metadata.Empty}},
			expect:      `{"kind":"enum","name":"com.acme.Status","constants":["ACTIVE","INACTIVE"]}`,
		},
		{
			description: "placeholder",
			node:        &Placeholder{Variable: variable, Bounds: []Node{&Class{Declaration: object}}},
			expect:      `{"kind":"placeholder","name":"T","bounds":[{"kind":"class","name":"java.lang.Object"}]}`,
		},
		{
			description: "wildcard",
			node:        &Wildcard{UpperBounds: []Node{&Class{Declaration: object}}, LowerBounds: []Node{&Class{Declaration: user}}},
			expect:      `{"kind":"wildcard","name":"?","upperBounds":[{"kind":"class","name":"java.lang.Object"}],"lowerBounds":[{"kind":"class","name":"com.acme.User"}]}`,
		},
	}
	for _, testCase := range testCases {
		data, err := Marshal(testCase.node)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assertly.AssertValues(t, testCase.expect, string(data), testCase.description)
	}
}

func TestNode_String(t *testing.T) {
	object := &mirror.Element{Name: "Object", QualifiedName: "java.lang.Object", Kind: mirror.ElementClass}
	number := &mirror.Element{Name: "Number", QualifiedName: "java.lang.Number", Kind: mirror.ElementClass}
	testCases := []struct {
		description string
		node        Node
		expect      string
	}{
		{description: "void", node: Void, expect: "void"},
		{description: "array", node: ToArray(Double), expect: "double[]"},
		{description: "placeholder", node: &Placeholder{Variable: &mirror.Variable{Name: "T"}, Bounds: []Node{&Class{Declaration: object}}}, expect: "T extends java.lang.Object"},
		{description: "wildcard", node: &Wildcard{UpperBounds: []Node{&Class{Declaration: object}}, LowerBounds: []Node{&Class{Declaration: number}}}, expect: "? super java.lang.Number extends java.lang.Object"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.node.String(), testCase.description)
	}
}

func TestPrimitiveOf(t *testing.T) {
	for _, kind := range mirror.PrimitiveKinds {
		primitive, ok := PrimitiveOf(string(kind))
		require.True(t, ok, kind)
		assert.Equal(t, kind, primitive.Type)
		assert.False(t, primitive.IsVoid())
	}
	primitive, ok := PrimitiveOf("VOID")
	require.True(t, ok)
	assert.True(t, primitive.IsVoid())
	_, ok = PrimitiveOf("string")
	assert.False(t, ok)
}

func TestDimensions(t *testing.T) {
	node := ToArray(ToArray(ToArray(Long)))
	assert.Equal(t, 3, Dimensions(node))
	assert.Equal(t, Long, Elem(node))
	assert.Equal(t, 0, Dimensions(Long))
}

func TestClass_Bound(t *testing.T) {
	list := &mirror.Element{Name: "List", QualifiedName: "java.util.List", Kind: mirror.ElementInterface}
	integer := &mirror.Primitive{Name: mirror.Int}
	class := &Class{Declaration: list, Generics: generics.Bindings{"java.util.List": {"E": integer}}}
	bound, ok := class.Bound("E")
	assert.True(t, ok)
	assert.Equal(t, integer, bound)
	_, ok = class.Bound("K")
	assert.False(t, ok)
}
