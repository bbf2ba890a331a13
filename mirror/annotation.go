package mirror

import "strings"

// Target represents annotation placement
type Target int

const (
	TargetDeclaration Target = iota
	TargetTypeUse
)

// Annotation represents an annotation mirror
type Annotation struct {
	Name   string
	Values map[string]interface{}
	Target Target
}

// SimpleName returns annotation name without package
func (a *Annotation) SimpleName() string {
	if index := strings.LastIndex(a.Name, "."); index != -1 {
		return a.Name[index+1:]
	}
	return a.Name
}

// IsTypeUse returns true for type-use annotation
func (a *Annotation) IsTypeUse() bool {
	return a.Target == TargetTypeUse
}

// Modifier represents declaration modifier
type Modifier string

const (
	Public    Modifier = "public"
	Protected Modifier = "protected"
	Private   Modifier = "private"
	Static    Modifier = "static"
	Final     Modifier = "final"
	Abstract  Modifier = "abstract"
)

// Modifiers represents declaration modifiers
type Modifiers []Modifier

// Has returns true if modifier is present
func (m Modifiers) Has(modifier Modifier) bool {
	for _, candidate := range m {
		if strings.EqualFold(string(candidate), string(modifier)) {
			return true
		}
	}
	return false
}
