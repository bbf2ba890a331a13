package parser

import (
	"strings"
)

type (
	//Expr represents parsed type expression
	Expr struct {
		Name        string
		Arguments   []*Expr
		Dimensions  int
		Annotations []*Annotation
		//Wildcard is set for '?' type argument
		Wildcard bool
		Extends  *Expr
		Super    *Expr
		//Intersection holds 'A & B' conjuncts
		Intersection []*Expr
		//Union holds 'A | B' alternatives
		Union []*Expr
	}

	//Annotation represents use site annotation
	Annotation struct {
		Name   string
		Values map[string]interface{}
	}

	//Parameter represents type parameter declaration
	Parameter struct {
		Name   string
		Bounds []*Expr
	}
)

// IsSimple returns true for plain named type without arguments and dimensions
func (e *Expr) IsSimple() bool {
	return e.Name != "" && len(e.Arguments) == 0 && e.Dimensions == 0 && !e.Wildcard
}

func (e *Expr) String() string {
	builder := strings.Builder{}
	e.write(&builder)
	return builder.String()
}

func (e *Expr) write(builder *strings.Builder) {
	for _, annotation := range e.Annotations {
		builder.WriteString("@")
		builder.WriteString(annotation.Name)
		builder.WriteString(" ")
	}
	switch {
	case len(e.Intersection) > 0:
		writeList(builder, e.Intersection, " & ")
		return
	case len(e.Union) > 0:
		writeList(builder, e.Union, " | ")
		return
	case e.Wildcard:
		builder.WriteString("?")
		if e.Extends != nil {
			builder.WriteString(" extends ")
			e.Extends.write(builder)
		}
		if e.Super != nil {
			builder.WriteString(" super ")
			e.Super.write(builder)
		}
		return
	}
	builder.WriteString(e.Name)
	if len(e.Arguments) > 0 {
		builder.WriteString("<")
		writeList(builder, e.Arguments, ", ")
		builder.WriteString(">")
	}
	for i := 0; i < e.Dimensions; i++ {
		builder.WriteString("[]")
	}
}

func (p *Parameter) String() string {
	if len(p.Bounds) == 0 {
		return p.Name
	}
	builder := strings.Builder{}
	builder.WriteString(p.Name)
	builder.WriteString(" extends ")
	writeList(&builder, p.Bounds, " & ")
	return builder.String()
}

func writeList(builder *strings.Builder, items []*Expr, sep string) {
	for i, item := range items {
		if i > 0 {
			builder.WriteString(sep)
		}
		item.write(builder)
	}
}
