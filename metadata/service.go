package metadata

import (
	"fmt"
	"sync"

	"github.com/viant/typemirror/mirror"
)

type (
	//Store represents metadata store
	Store interface {
		//MetadataFor returns pre-resolved declaration metadata
		MetadataFor(element *mirror.Element) (*Record, error)
		//BuildDeclared builds metadata from use site annotation mirrors
		BuildDeclared(element *mirror.Element, annotations []*mirror.Annotation, includeTypeLevel bool) (*Record, error)
	}

	//Lookup returns an annotation declaration by name
	Lookup func(name string) (*mirror.Element, bool)

	//Service represents a caching metadata store
	Service struct {
		cache   sync.Map
		lookup  Lookup
		mux     sync.RWMutex
		mutated map[string]map[string]*Record
	}
)

// MetadataFor returns cached declaration metadata, mutated metadata takes precedence
func (s *Service) MetadataFor(element *mirror.Element) (*Record, error) {
	if element == nil {
		return nil, fmt.Errorf("failed to lookup metadata: element was nil")
	}
	if record, ok := s.Mutated(DeclaringTypeName(element), element); ok {
		return record, nil
	}
	key := element.Key()
	if value, ok := s.cache.Load(key); ok {
		return value.(*Record), nil
	}
	record, err := s.build(element.Annotations)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata for %v: %w", key, err)
	}
	actual, _ := s.cache.LoadOrStore(key, record)
	return actual.(*Record), nil
}

// BuildDeclared builds metadata from use site annotations, declaration annotations are appended when includeTypeLevel is set
func (s *Service) BuildDeclared(element *mirror.Element, annotations []*mirror.Annotation, includeTypeLevel bool) (*Record, error) {
	if element == nil {
		return nil, fmt.Errorf("failed to build declared metadata: element was nil")
	}
	var candidates = make([]*mirror.Annotation, 0, len(annotations)+len(element.Annotations))
	candidates = append(candidates, annotations...)
	if includeTypeLevel {
		candidates = append(candidates, element.Annotations...)
	}
	record, err := s.build(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to build declared metadata for %v: %w", element.Key(), err)
	}
	return record, nil
}

func (s *Service) build(annotations []*mirror.Annotation) (*Record, error) {
	var stereotypes []string
	for _, annotation := range annotations {
		if annotation == nil {
			continue
		}
		if annotation.Name == "" {
			return nil, fmt.Errorf("annotation name was empty")
		}
		stereotypes = append(stereotypes, s.stereotypes(annotation.Name, map[string]bool{})...)
	}
	return NewRecord(annotations, stereotypes...), nil
}

func (s *Service) stereotypes(name string, visited map[string]bool) []string {
	if s.lookup == nil || visited[name] {
		return nil
	}
	visited[name] = true
	declaration, ok := s.lookup(name)
	if !ok || declaration == nil {
		return nil
	}
	var ret []string
	for _, meta := range declaration.Annotations {
		if visited[meta.Name] {
			continue
		}
		ret = append(ret, meta.Name)
		ret = append(ret, s.stereotypes(meta.Name, visited)...)
	}
	return ret
}

// Annotate records element metadata mutation with supplied annotation
func (s *Service) Annotate(element *mirror.Element, annotation *mirror.Annotation) (*Record, error) {
	if annotation == nil || annotation.Name == "" {
		return nil, fmt.Errorf("failed to annotate %v: annotation name was empty", element)
	}
	current, err := s.MetadataFor(element)
	if err != nil {
		return nil, err
	}
	record := current.with(annotation)
	s.addMutated(DeclaringTypeName(element), element, record)
	return record, nil
}

// Remove records element metadata mutation removing named annotation or stereotype
func (s *Service) Remove(element *mirror.Element, name string) (*Record, error) {
	current, err := s.MetadataFor(element)
	if err != nil {
		return nil, err
	}
	record := current.without(name)
	s.addMutated(DeclaringTypeName(element), element, record)
	return record, nil
}

// Mutated returns mutated element metadata
func (s *Service) Mutated(owner string, element *mirror.Element) (*Record, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	elements, ok := s.mutated[owner]
	if !ok {
		return nil, false
	}
	record, ok := elements[element.Key()]
	return record, ok
}

// Invalidate removes cached and mutated element metadata
func (s *Service) Invalidate(element *mirror.Element) {
	if element == nil {
		return
	}
	key := element.Key()
	s.cache.Delete(key)
	s.mux.Lock()
	defer s.mux.Unlock()
	if elements, ok := s.mutated[DeclaringTypeName(element)]; ok {
		delete(elements, key)
	}
}

func (s *Service) addMutated(owner string, element *mirror.Element, record *Record) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.mutated == nil {
		s.mutated = map[string]map[string]*Record{}
	}
	elements, ok := s.mutated[owner]
	if !ok {
		elements = map[string]*Record{}
		s.mutated[owner] = elements
	}
	elements[element.Key()] = record
}

// DeclaringTypeName returns the qualified name of the type declaring element
func DeclaringTypeName(element *mirror.Element) string {
	if typeElement := mirror.TypeElementFor(element); typeElement != nil {
		return typeElement.QualifiedName
	}
	return element.Name
}

// New creates a metadata service
func New(lookup Lookup) *Service {
	return &Service{
		lookup:  lookup,
		mutated: map[string]map[string]*Record{},
	}
}
