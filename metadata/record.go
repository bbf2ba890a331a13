package metadata

import (
	"github.com/viant/toolbox"
	"github.com/viant/typemirror/mirror"
)

// Record represents resolved annotation metadata, records are immutable
type Record struct {
	annotations []*mirror.Annotation
	stereotypes []string
}

// Empty represents empty metadata
var Empty = &Record{}

// NewRecord creates a record, later annotations with the same name are ignored
func NewRecord(annotations []*mirror.Annotation, stereotypes ...string) *Record {
	if len(annotations) == 0 && len(stereotypes) == 0 {
		return Empty
	}
	ret := &Record{}
	var index = map[string]bool{}
	for _, annotation := range annotations {
		if annotation == nil || index[annotation.Name] {
			continue
		}
		index[annotation.Name] = true
		ret.annotations = append(ret.annotations, annotation)
	}
	for _, stereotype := range stereotypes {
		if index[stereotype] {
			continue
		}
		index[stereotype] = true
		ret.stereotypes = append(ret.stereotypes, stereotype)
	}
	return ret
}

// IsEmpty returns true if record has no annotations
func (r *Record) IsEmpty() bool {
	return r == nil || (len(r.annotations) == 0 && len(r.stereotypes) == 0)
}

// Annotations returns annotations in declaration order
func (r *Record) Annotations() []*mirror.Annotation {
	if r == nil {
		return nil
	}
	return r.annotations
}

// Names returns annotation names in declaration order
func (r *Record) Names() []string {
	if r == nil {
		return nil
	}
	var ret = make([]string, 0, len(r.annotations))
	for _, annotation := range r.annotations {
		ret = append(ret, annotation.Name)
	}
	return ret
}

// Stereotypes returns meta annotation names
func (r *Record) Stereotypes() []string {
	if r == nil {
		return nil
	}
	return r.stereotypes
}

// Has returns true if annotation is present, simple names are matched too
func (r *Record) Has(name string) bool {
	return r.Annotation(name) != nil
}

// HasStereotype returns true if annotation or meta annotation is present
func (r *Record) HasStereotype(name string) bool {
	if r.Has(name) {
		return true
	}
	for _, candidate := range r.Stereotypes() {
		if candidate == name {
			return true
		}
	}
	return false
}

// Annotation returns annotation by qualified or simple name
func (r *Record) Annotation(name string) *mirror.Annotation {
	if r == nil {
		return nil
	}
	for _, candidate := range r.annotations {
		if candidate.Name == name {
			return candidate
		}
	}
	for _, candidate := range r.annotations {
		if candidate.SimpleName() == name {
			return candidate
		}
	}
	return nil
}

// Value returns annotation member value
func (r *Record) Value(annotation, member string) (interface{}, bool) {
	candidate := r.Annotation(annotation)
	if candidate == nil || candidate.Values == nil {
		return nil, false
	}
	value, ok := candidate.Values[member]
	return value, ok
}

// StringValue returns annotation member value as string
func (r *Record) StringValue(annotation, member string) (string, bool) {
	value, ok := r.Value(annotation, member)
	if !ok || value == nil {
		return "", false
	}
	return toolbox.AsString(value), true
}

// IntValue returns annotation member value as int
func (r *Record) IntValue(annotation, member string) (int, bool) {
	value, ok := r.Value(annotation, member)
	if !ok || value == nil {
		return 0, false
	}
	return toolbox.AsInt(value), true
}

// without returns a copy of the record without named annotation
func (r *Record) without(name string) *Record {
	var annotations []*mirror.Annotation
	for _, candidate := range r.Annotations() {
		if candidate.Name == name {
			continue
		}
		annotations = append(annotations, candidate)
	}
	var stereotypes []string
	for _, candidate := range r.Stereotypes() {
		if candidate == name {
			continue
		}
		stereotypes = append(stereotypes, candidate)
	}
	return NewRecord(annotations, stereotypes...)
}

// with returns a copy of the record with annotation replacing any annotation of the same name
func (r *Record) with(annotation *mirror.Annotation) *Record {
	var annotations []*mirror.Annotation
	replaced := false
	for _, candidate := range r.Annotations() {
		if candidate.Name == annotation.Name {
			annotations = append(annotations, annotation)
			replaced = true
			continue
		}
		annotations = append(annotations, candidate)
	}
	if !replaced {
		annotations = append(annotations, annotation)
	}
	return NewRecord(annotations, r.Stereotypes()...)
}
