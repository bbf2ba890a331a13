package generics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/typemirror/mirror"
)

func TestAlign(t *testing.T) {
	mapType := newType("Map", "K", "V")
	user := newType("User").AsType()
	name := &mirror.Primitive{Name: mirror.Long}
	list := newType("List", "E")
	outerVariable := &mirror.Variable{Name: "T", Owner: "com.acme.Repo"}
	freeVariable := &mirror.Variable{Name: "X", Owner: "com.acme.Repo"}

	testCases := []struct {
		description string
		element     *mirror.Element
		arguments   []mirror.Type
		outer       map[string]mirror.Type
		expect      Bindings
	}{
		{
			description: "positional alignment",
			element:     mapType,
			arguments:   []mirror.Type{name, user},
			expect:      Bindings{"com.acme.Map": {"K": name, "V": user}},
		},
		{
			description: "variable argument replaced by outer binding",
			element:     mapType,
			arguments:   []mirror.Type{name, outerVariable},
			outer:       map[string]mirror.Type{"T": user},
			expect:      Bindings{"com.acme.Map": {"K": name, "V": user}},
		},
		{
			description: "unbound variable argument kept",
			element:     mapType,
			arguments:   []mirror.Type{freeVariable, outerVariable},
			outer:       map[string]mirror.Type{"T": user},
			expect:      Bindings{"com.acme.Map": {"K": freeVariable, "V": user}},
		},
		{
			description: "variable nested in declared argument replaced",
			element:     mapType,
			arguments:   []mirror.Type{name, &mirror.Declared{Element: list, Arguments: []mirror.Type{outerVariable}}},
			outer:       map[string]mirror.Type{"T": user},
			expect:      Bindings{"com.acme.Map": {"K": name, "V": &mirror.Declared{Element: list, Arguments: []mirror.Type{user}}}},
		},
		{
			description: "variable nested two levels deep replaced",
			element:     list,
			arguments:   []mirror.Type{&mirror.Declared{Element: list, Arguments: []mirror.Type{&mirror.Declared{Element: list, Arguments: []mirror.Type{outerVariable}}}}},
			outer:       map[string]mirror.Type{"T": user},
			expect:      Bindings{"com.acme.List": {"E": &mirror.Declared{Element: list, Arguments: []mirror.Type{&mirror.Declared{Element: list, Arguments: []mirror.Type{user}}}}}},
		},
		{
			description: "array component replaced",
			element:     mapType,
			arguments:   []mirror.Type{name, &mirror.Array{Component: outerVariable}},
			outer:       map[string]mirror.Type{"T": user},
			expect:      Bindings{"com.acme.Map": {"K": name, "V": &mirror.Array{Component: user}}},
		},
		{
			description: "wildcard bound replaced",
			element:     list,
			arguments:   []mirror.Type{&mirror.Wildcard{Extends: outerVariable}},
			outer:       map[string]mirror.Type{"T": user},
			expect:      Bindings{"com.acme.List": {"E": &mirror.Wildcard{Extends: user}}},
		},
		{
			description: "raw use yields no bindings",
			element:     mapType,
			arguments:   nil,
			expect:      Bindings{},
		},
		{
			description: "arity mismatch yields no bindings",
			element:     mapType,
			arguments:   []mirror.Type{user},
			expect:      Bindings{},
		},
		{
			description: "non generic type",
			element:     newType("User"),
			arguments:   nil,
			expect:      Bindings{},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Align(testCase.element, testCase.arguments, testCase.outer), testCase.description)
	}
}

func TestAlign_DoesNotMutateOuter(t *testing.T) {
	list := newType("List", "E")
	user := newType("User").AsType()
	outer := map[string]mirror.Type{"T": user}
	_ = Align(list, []mirror.Type{&mirror.Variable{Name: "T"}}, outer)
	assert.Equal(t, map[string]mirror.Type{"T": user}, outer)
}

func TestSubstitute_DoesNotMutateInput(t *testing.T) {
	list := newType("List", "E")
	user := newType("User").AsType()
	variable := &mirror.Variable{Name: "T", Owner: "com.acme.Repo"}
	inner := &mirror.Declared{Element: list, Arguments: []mirror.Type{variable}}
	source := &mirror.Declared{Element: list, Arguments: []mirror.Type{inner}}

	actual := Substitute(source, map[string]mirror.Type{"T": user})
	assert.Equal(t, &mirror.Declared{Element: list, Arguments: []mirror.Type{&mirror.Declared{Element: list, Arguments: []mirror.Type{user}}}}, actual)
	assert.Same(t, variable, inner.Arguments[0])
	assert.Same(t, inner, source.Arguments[0])

	unbound := Substitute(source, map[string]mirror.Type{"X": user})
	assert.Same(t, source, unbound)
}
