package model

import (
	"sort"

	"github.com/francoispqt/gojay"
	"github.com/viant/typemirror/generics"
	"github.com/viant/typemirror/mirror"
)

type (
	nodes        []Node
	stringArray  []string
	bindingsJSON generics.Bindings
	variableJSON map[string]mirror.Type
)

func (n nodes) IsNil() bool {
	return n == nil
}

func (n nodes) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range n {
		enc.AddObject(item)
	}
}

func (s stringArray) IsNil() bool {
	return len(s) == 0
}

func (s stringArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range s {
		enc.AddString(item)
	}
}

func (b bindingsJSON) IsNil() bool {
	return len(b) == 0
}

func (b bindingsJSON) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range sortedKeys(b) {
		enc.ObjectKey(key, variableJSON(b[key]))
	}
}

func (v variableJSON) IsNil() bool {
	return len(v) == 0
}

func (v variableJSON) MarshalJSONObject(enc *gojay.Encoder) {
	var keys = make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := v[key]
		if value == nil {
			enc.StringKey(key, string(mirror.Void))
			continue
		}
		enc.StringKey(key, value.String())
	}
}

func sortedKeys(b bindingsJSON) []string {
	var keys = make([]string, 0, len(b))
	for key := range b {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
