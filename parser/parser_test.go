package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		expr        string
		expect      string
		hasError    bool
	}{
		{description: "simple name", expr: "String", expect: "String"},
		{description: "qualified name", expr: "java.lang.String", expect: "java.lang.String"},
		{description: "primitive array", expr: "int [ ] []", expect: "int[][]"},
		{description: "nested arguments", expr: "Map<K,List<? extends V>>[]", expect: "Map<K, List<? extends V>>[]"},
		{description: "unbounded wildcard", expr: "List< ? >", expect: "List<?>"},
		{description: "super wildcard union", expr: "? super Integer|Number", expect: "? super Integer | Number"},
		{description: "intersection", expr: "Comparable<T> & Serializable", expect: "Comparable<T> & Serializable"},
		{description: "type use annotation", expr: "@NotNull String", expect: "@NotNull String"},
		{description: "annotated argument", expr: "List<@NotNull(message=\"empty\") String>", expect: "List<@NotNull String>"},
		{description: "mixed separators", expr: "A & B | C", hasError: true},
		{description: "unclosed arguments", expr: "List<String", hasError: true},
		{description: "unclosed dimension", expr: "int[", hasError: true},
		{description: "trailing input", expr: "List<String>>", hasError: true},
		{description: "invalid wildcard keyword", expr: "? implements Number", hasError: true},
		{description: "union extends bound", expr: "? extends A | B", hasError: true},
		{description: "intersection super bound", expr: "? super A & B", hasError: true},
		{description: "nested union extends bound", expr: "List<? extends A | B>", hasError: true},
		{description: "empty", expr: "", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := Parse(testCase.expr)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual.String(), testCase.description)
	}
}

func TestParse_Structure(t *testing.T) {
	expr, err := Parse("Map<String, List<? super Integer>[]>[][]")
	require.Nil(t, err)
	assert.Equal(t, "Map", expr.Name)
	assert.Equal(t, 2, expr.Dimensions)
	require.Len(t, expr.Arguments, 2)
	assert.True(t, expr.Arguments[0].IsSimple())
	list := expr.Arguments[1]
	assert.Equal(t, 1, list.Dimensions)
	require.Len(t, list.Arguments, 1)
	wildcard := list.Arguments[0]
	assert.True(t, wildcard.Wildcard)
	assert.Nil(t, wildcard.Extends)
	require.NotNil(t, wildcard.Super)
	assert.Equal(t, "Integer", wildcard.Super.Name)
}

func TestParse_AnnotationValues(t *testing.T) {
	expr, err := Parse(`@Size(min=1, max = 10, message="a, b") @Valid List<String>`)
	require.Nil(t, err)
	require.Len(t, expr.Annotations, 2)
	assert.Equal(t, "Size", expr.Annotations[0].Name)
	assert.Equal(t, map[string]interface{}{"min": 1, "max": 10, "message": "a, b"}, expr.Annotations[0].Values)
	assert.Equal(t, "Valid", expr.Annotations[1].Name)
	assert.Nil(t, expr.Annotations[1].Values)

	expr, err = Parse(`@Pattern("[a-z]+") @Flag(true) String`)
	require.Nil(t, err)
	assert.Equal(t, map[string]interface{}{"value": "[a-z]+"}, expr.Annotations[0].Values)
	assert.Equal(t, map[string]interface{}{"value": true}, expr.Annotations[1].Values)
}

func TestParseParameters(t *testing.T) {
	testCases := []struct {
		description string
		expr        string
		expect      []string
		bounds      []int
		hasError    bool
	}{
		{description: "single", expr: "T", expect: []string{"T"}, bounds: []int{0}},
		{description: "multiple", expr: "K, V", expect: []string{"K", "V"}, bounds: []int{0, 0}},
		{description: "intersection bound", expr: "T extends Comparable<T> & Serializable", expect: []string{"T extends Comparable<T> & Serializable"}, bounds: []int{2}},
		{description: "mixed", expr: "K extends Number, V extends List<K>", expect: []string{"K extends Number", "V extends List<K>"}, bounds: []int{1, 1}},
		{description: "empty", expr: "", expect: nil},
		{description: "super is not allowed", expr: "T super Number", hasError: true},
		{description: "trailing comma", expr: "T,", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseParameters(testCase.expr)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var names []string
		for i, param := range actual {
			names = append(names, param.String())
			assert.Len(t, param.Bounds, testCase.bounds[i], testCase.description)
		}
		assert.Equal(t, testCase.expect, names, testCase.description)
	}
}

func TestParseParameter(t *testing.T) {
	param, err := ParseParameter("N extends Node<N>")
	require.Nil(t, err)
	assert.Equal(t, "N", param.Name)
	require.Len(t, param.Bounds, 1)
	assert.Equal(t, "Node<N>", param.Bounds[0].String())

	_, err = ParseParameter("K, V")
	assert.NotNil(t, err)
}
