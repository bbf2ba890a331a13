package mirror

// Element represents a declaration: a type or a type member
type Element struct {
	Name           string
	QualifiedName  string
	Kind           ElementKind
	Enclosing      *Element
	TypeParameters []*Variable
	Annotations    []*Annotation
	Modifiers      Modifiers
	Members        []*Element
	//Type is member type, for type elements it is optional wrapped type
	Type Type
}

// IsType returns true if element declares a type
func (e *Element) IsType() bool {
	return e != nil && e.Kind.IsType()
}

// IsEnum returns true if element declares an enum
func (e *Element) IsEnum() bool {
	return e != nil && e.Kind == ElementEnum
}

// AsType returns element own type, for type element without explicit type a declared type is created
func (e *Element) AsType() Type {
	if e.Type != nil {
		return e.Type
	}
	if !e.IsType() {
		return NoType
	}
	var args []Type
	for _, param := range e.TypeParameters {
		args = append(args, param)
	}
	return &Declared{Element: e, Arguments: args}
}

// TypeParameter returns type parameter by name
func (e *Element) TypeParameter(name string) *Variable {
	for _, candidate := range e.TypeParameters {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// Member returns member element by name
func (e *Element) Member(name string) *Element {
	for _, candidate := range e.Members {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// Annotation returns declared annotation by name
func (e *Element) Annotation(name string) *Annotation {
	for _, candidate := range e.Annotations {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

func (e *Element) IsPublic() bool    { return e.Modifiers.Has(Public) }
func (e *Element) IsPrivate() bool   { return e.Modifiers.Has(Private) }
func (e *Element) IsProtected() bool { return e.Modifiers.Has(Protected) }
func (e *Element) IsStatic() bool    { return e.Modifiers.Has(Static) }
func (e *Element) IsFinal() bool     { return e.Modifiers.Has(Final) }
func (e *Element) IsAbstract() bool  { return e.Modifiers.Has(Abstract) }

// IsPackagePrivate returns true if no access modifier was declared
func (e *Element) IsPackagePrivate() bool {
	return !(e.IsPublic() || e.IsProtected() || e.IsPrivate())
}

func (e *Element) String() string {
	if e.QualifiedName != "" {
		return e.QualifiedName
	}
	return e.Name
}

// TypeElementFor returns element itself if it declares a type or its closest enclosing type element
func TypeElementFor(element *Element) *Element {
	for candidate := element; candidate != nil; candidate = candidate.Enclosing {
		if candidate.IsType() {
			return candidate
		}
	}
	return nil
}

// Key returns element unique key
func (e *Element) Key() string {
	if e.QualifiedName != "" {
		return e.QualifiedName
	}
	if e.Enclosing != nil {
		return e.Enclosing.Key() + "." + e.Name
	}
	return e.Name
}
