package generics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/typemirror/mirror"
)

func newType(name string, params ...string) *mirror.Element {
	ret := &mirror.Element{Name: name, QualifiedName: "com.acme." + name, Kind: mirror.ElementClass}
	for _, param := range params {
		ret.TypeParameters = append(ret.TypeParameters, &mirror.Variable{Name: param, Owner: ret.QualifiedName})
	}
	return ret
}

func TestBoundFor(t *testing.T) {
	repo := newType("Repo", "T")
	field := &mirror.Element{Name: "items", Kind: mirror.ElementField, Enclosing: repo}
	user := newType("User")
	bindings := Bindings{repo.QualifiedName: {"T": user.AsType()}}

	testCases := []struct {
		description string
		anchor      *mirror.Element
		bindings    Bindings
		expect      map[string]mirror.Type
	}{
		{description: "member anchor uses enclosing type", anchor: field, bindings: bindings, expect: map[string]mirror.Type{"T": user.AsType()}},
		{description: "type anchor", anchor: repo, bindings: bindings, expect: map[string]mirror.Type{"T": user.AsType()}},
		{description: "no enclosing type", anchor: &mirror.Element{Name: "orphan", Kind: mirror.ElementField}, bindings: bindings, expect: map[string]mirror.Type{}},
		{description: "nil anchor", anchor: nil, bindings: bindings, expect: map[string]mirror.Type{}},
		{description: "no entry", anchor: user, bindings: bindings, expect: map[string]mirror.Type{}},
		{description: "nil bindings", anchor: field, bindings: nil, expect: map[string]mirror.Type{}},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, BoundFor(testCase.anchor, testCase.bindings), testCase.description)
	}
}

func TestBindings_With(t *testing.T) {
	user := newType("User").AsType()
	source := Bindings{"com.acme.Repo": {"T": user}}
	variables := map[string]mirror.Type{"P": user}
	updated := source.With("com.acme.Page", variables)
	variables["Q"] = user

	assert.Len(t, source, 1)
	assert.Len(t, updated, 2)
	assert.Equal(t, map[string]mirror.Type{"P": user}, updated["com.acme.Page"])
	_, ok := source.Lookup("com.acme.Page")
	assert.False(t, ok)
}
