package catalog

type (
	//Document represents declaration catalog file
	Document struct {
		Root    string     `yaml:"root,omitempty"`
		Imports []string   `yaml:"imports,omitempty"`
		Types   []*TypeDef `yaml:"types,omitempty"`
	}

	//TypeDef represents type declaration
	TypeDef struct {
		Name           string           `yaml:"name"`
		Kind           string           `yaml:"kind,omitempty"`
		Enclosing      string           `yaml:"enclosing,omitempty"`
		Modifiers      []string         `yaml:"modifiers,omitempty"`
		TypeParameters string           `yaml:"typeParameters,omitempty"`
		Annotations    []*AnnotationDef `yaml:"annotations,omitempty"`
		//Wraps declares a non declared type wrapped by the type, i.e. a primitive
		Wraps     string       `yaml:"wraps,omitempty"`
		Constants []string     `yaml:"constants,omitempty"`
		Fields    []*MemberDef `yaml:"fields,omitempty"`
		Methods   []*MemberDef `yaml:"methods,omitempty"`
	}

	//MemberDef represents field, method or parameter declaration
	MemberDef struct {
		Name           string           `yaml:"name"`
		Type           string           `yaml:"type,omitempty"`
		TypeParameters string           `yaml:"typeParameters,omitempty"`
		Modifiers      []string         `yaml:"modifiers,omitempty"`
		Annotations    []*AnnotationDef `yaml:"annotations,omitempty"`
		Parameters     []*MemberDef     `yaml:"parameters,omitempty"`
	}

	//AnnotationDef represents annotation
	AnnotationDef struct {
		Name    string                 `yaml:"name"`
		Values  map[string]interface{} `yaml:"values,omitempty"`
		TypeUse bool                   `yaml:"typeUse,omitempty"`
	}
)
