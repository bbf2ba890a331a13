package typemirror

import (
	"context"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/toolbox"
	"github.com/viant/typemirror/config"
	"github.com/viant/typemirror/model"
	"github.com/viant/typemirror/resolver"
)

func catalogURL() string {
	return path.Join(toolbox.CallerDirectory(3), "catalog", "testdata", "catalog.yaml")
}

func newTestService(t *testing.T) *Service {
	service, err := New(context.Background(), WithConfig(&config.Config{CatalogURL: catalogURL()}))
	require.Nil(t, err)
	return service
}

func TestService_ResolveExpr(t *testing.T) {
	service := newTestService(t)
	testCases := []struct {
		description string
		anchor      string
		expr        string
		bindings    map[string]string
		expect      string
		kind        model.Kind
		hasError    bool
	}{
		{description: "primitive", expr: "double", expect: "double", kind: model.KindPrimitive},
		{description: "class", expr: "List<String>", expect: "java.util.List<java.lang.String>", kind: model.KindClass},
		{description: "free variable in type scope", anchor: "com.acme.Repo", expr: "T", expect: "T extends java.lang.Object", kind: model.KindPlaceholder},
		{description: "bound variable in member scope", anchor: "com.acme.Repo.items", expr: "T[]", bindings: map[string]string{"com.acme.Repo.T": "com.acme.User"}, expect: "com.acme.User[]", kind: model.KindArray},
		{description: "unknown anchor", anchor: "com.acme.Missing", expr: "T", hasError: true},
		{description: "unknown binding type", expr: "int", bindings: map[string]string{"Missing.T": "String"}, hasError: true},
		{description: "unknown binding variable", expr: "int", bindings: map[string]string{"com.acme.Repo.X": "String"}, hasError: true},
		{description: "invalid binding", expr: "int", bindings: map[string]string{"T": "String"}, hasError: true},
		{description: "invalid expression", expr: "List<", hasError: true},
	}
	for _, testCase := range testCases {
		bindings, err := service.Bindings(testCase.bindings)
		if err == nil {
			var node model.Node
			node, err = service.ResolveExpr(testCase.anchor, testCase.expr, bindings)
			if err == nil {
				assert.False(t, testCase.hasError, testCase.description)
				assert.Equal(t, testCase.kind, node.Kind(), testCase.description)
				assert.Equal(t, testCase.expect, node.String(), testCase.description)
				continue
			}
		}
		assert.True(t, testCase.hasError, testCase.description)
	}
}

func TestService_ResolveMember(t *testing.T) {
	service := newTestService(t)
	testCases := []struct {
		description string
		owner       string
		member      string
		expect      string
		hasError    bool
	}{
		{description: "variable field", owner: "com.acme.Repo<com.acme.User>", member: "item", expect: "com.acme.User"},
		{description: "nested type variable", owner: "Map<String, Integer>", member: "get", expect: "java.lang.Integer"},
		{description: "raw owner", owner: "com.acme.Repo", member: "item", expect: "T extends java.lang.Object"},
		{description: "unknown member", owner: "com.acme.Repo<String>", member: "missing", hasError: true},
		{description: "primitive owner", owner: "int", member: "value", hasError: true},
	}
	for _, testCase := range testCases {
		node, err := service.ResolveMember(testCase.owner, testCase.member)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, node.String(), testCase.description)
	}

	node, err := service.ResolveMember("com.acme.User", "name", resolver.WithTypeAnnotations(false))
	require.Nil(t, err)
	assert.Equal(t, []string{"com.acme.NotNull"}, resolver.ClassOf(node).Metadata.Names())
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/typemirror/config.yaml"
	document := "RootType: java.lang.Object\nExcludeTypeAnnotations: true\nCatalogURL: " + catalogURL() + "\n"
	require.Nil(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(document)))

	service, err := New(ctx, WithConfigURL(URL), WithFS(fs))
	require.Nil(t, err)
	assert.True(t, service.Config().ExcludeTypeAnnotations)
	assert.Equal(t, URL, service.Config().URL)
	node, err := service.ResolveExpr("", "com.acme.User", nil)
	require.Nil(t, err)
	assert.True(t, resolver.ClassOf(node).Metadata.IsEmpty())

	empty, err := New(ctx)
	require.Nil(t, err)
	assert.Equal(t, []string{config.DefaultRootType}, empty.Catalog().Elements())
	assert.NotNil(t, empty.Metadata())
	assert.NotNil(t, empty.Resolver())

	_, err = New(ctx, WithConfigURL("mem://localhost/typemirror/missing.yaml"))
	assert.NotNil(t, err)
	_, err = New(ctx, WithConfig(&config.Config{CatalogURL: "mem://localhost/typemirror/missing.yaml"}))
	assert.NotNil(t, err)
}

func TestNew_SuppliedConfigUnchanged(t *testing.T) {
	supplied := &config.Config{CatalogURL: catalogURL()}
	service, err := New(context.Background(), WithConfig(supplied))
	require.Nil(t, err)
	assert.Equal(t, "", supplied.RootType)
	assert.Equal(t, config.DefaultRootType, service.Config().RootType)
	assert.NotSame(t, supplied, service.Config())
}
