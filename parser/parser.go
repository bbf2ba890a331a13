package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

const (
	extendsKeyword = "extends"
	superKeyword   = "super"
)

// Parse parses type expression, i.e. Map<K, List<? extends V>>[] or A & B
func Parse(expr string) (*Expr, error) {
	cursor := parsly.NewCursor("", []byte(expr), 0)
	ret, err := expectTypeList(cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid type expression %q: %w", expr, err)
	}
	if err = expectEOF(cursor); err != nil {
		return nil, fmt.Errorf("invalid type expression %q: %w", expr, err)
	}
	return ret, nil
}

// ParseParameters parses comma separated type parameter declarations, i.e. K, V extends Comparable<V> & Serializable
func ParseParameters(expr string) ([]*Parameter, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	cursor := parsly.NewCursor("", []byte(expr), 0)
	var ret []*Parameter
	for {
		matched := cursor.MatchAfterOptional(whitespaceMatcher, identifierMatcher)
		switch matched.Code {
		case identifierToken:
		case parsly.EOF:
			return nil, fmt.Errorf("invalid type parameters %q: unexpected eof", expr)
		default:
			return nil, fmt.Errorf("invalid type parameters %q: %w", expr, cursor.NewError(identifierMatcher))
		}
		parameter := &Parameter{Name: matched.Text(cursor)}
		pos := cursor.Pos
		keyword := cursor.MatchAfterOptional(whitespaceMatcher, identifierMatcher)
		if keyword.Code == identifierToken {
			if keyword.Text(cursor) != extendsKeyword {
				return nil, fmt.Errorf("invalid type parameters %q: expected %v at %v", expr, extendsKeyword, pos)
			}
			bound, err := expectTypeList(cursor)
			if err != nil {
				return nil, fmt.Errorf("invalid type parameter %v bound: %w", parameter.Name, err)
			}
			parameter.Bounds = bound.conjuncts()
		}
		ret = append(ret, parameter)
		next := cursor.MatchAfterOptional(whitespaceMatcher, commaMatcher)
		switch next.Code {
		case commaToken:
		case parsly.EOF:
			return ret, nil
		default:
			return nil, fmt.Errorf("invalid type parameters %q: %w", expr, cursor.NewError(commaMatcher))
		}
	}
}

// ParseParameter parses single type parameter declaration
func ParseParameter(expr string) (*Parameter, error) {
	params, err := ParseParameters(expr)
	if err != nil {
		return nil, err
	}
	if len(params) != 1 {
		return nil, fmt.Errorf("expected one type parameter in %q, but had %v", expr, len(params))
	}
	return params[0], nil
}

func (e *Expr) conjuncts() []*Expr {
	if len(e.Intersection) > 0 {
		return e.Intersection
	}
	return []*Expr{e}
}

func expectTypeList(cursor *parsly.Cursor) (*Expr, error) {
	first, err := expectType(cursor)
	if err != nil {
		return nil, err
	}
	var items = []*Expr{first}
	separator := -1
	for {
		matched := cursor.MatchAfterOptional(whitespaceMatcher, ampersandMatcher, pipeMatcher)
		if matched.Code != ampersandToken && matched.Code != pipeToken {
			break
		}
		if separator != -1 && separator != matched.Code {
			return nil, fmt.Errorf("mixed '&' and '|' at %v", cursor.Pos)
		}
		separator = matched.Code
		next, err := expectType(cursor)
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	switch separator {
	case ampersandToken:
		return &Expr{Intersection: items}, nil
	case pipeToken:
		return &Expr{Union: items}, nil
	}
	return first, nil
}

func expectType(cursor *parsly.Cursor) (*Expr, error) {
	annotations, err := matchAnnotations(cursor)
	if err != nil {
		return nil, err
	}
	matched := cursor.MatchAfterOptional(whitespaceMatcher, questionMatcher, identifierMatcher)
	var ret *Expr
	switch matched.Code {
	case questionToken:
		if ret, err = expectWildcard(cursor); err != nil {
			return nil, err
		}
	case identifierToken:
		ret = &Expr{Name: matched.Text(cursor)}
		if ret.Arguments, err = matchArguments(cursor); err != nil {
			return nil, err
		}
	case parsly.EOF:
		return nil, fmt.Errorf("unexpected eof")
	default:
		return nil, cursor.NewError(questionMatcher, identifierMatcher)
	}
	ret.Annotations = annotations
	if ret.Dimensions, err = matchDimensions(cursor); err != nil {
		return nil, err
	}
	return ret, nil
}

func expectWildcard(cursor *parsly.Cursor) (*Expr, error) {
	ret := &Expr{Wildcard: true}
	pos := cursor.Pos
	matched := cursor.MatchAfterOptional(whitespaceMatcher, identifierMatcher)
	if matched.Code != identifierToken {
		cursor.Pos = pos
		return ret, nil
	}
	keyword := matched.Text(cursor)
	bound, err := expectTypeList(cursor)
	if err != nil {
		return nil, err
	}
	switch keyword {
	case extendsKeyword:
		if len(bound.Union) > 0 {
			return nil, fmt.Errorf("union is not allowed in %v bound at %v", extendsKeyword, pos)
		}
		ret.Extends = bound
	case superKeyword:
		if len(bound.Intersection) > 0 {
			return nil, fmt.Errorf("intersection is not allowed in %v bound at %v", superKeyword, pos)
		}
		ret.Super = bound
	default:
		return nil, fmt.Errorf("expected %v or %v, but had %v at %v", extendsKeyword, superKeyword, keyword, pos)
	}
	return ret, nil
}

func matchArguments(cursor *parsly.Cursor) ([]*Expr, error) {
	matched := cursor.MatchAfterOptional(whitespaceMatcher, lessMatcher)
	if matched.Code != lessToken {
		return nil, nil
	}
	var ret []*Expr
	for {
		arg, err := expectTypeList(cursor)
		if err != nil {
			return nil, err
		}
		ret = append(ret, arg)
		next := cursor.MatchAfterOptional(whitespaceMatcher, commaMatcher, greaterMatcher)
		switch next.Code {
		case commaToken:
		case greaterToken:
			return ret, nil
		case parsly.EOF:
			return nil, fmt.Errorf("unexpected eof, expected >")
		default:
			return nil, cursor.NewError(commaMatcher, greaterMatcher)
		}
	}
}

func matchDimensions(cursor *parsly.Cursor) (int, error) {
	ret := 0
	for {
		matched := cursor.MatchAfterOptional(whitespaceMatcher, bracketOpenMatcher)
		if matched.Code != bracketOpenToken {
			return ret, nil
		}
		closing := cursor.MatchAfterOptional(whitespaceMatcher, bracketCloseMatcher)
		if closing.Code != bracketCloseToken {
			return 0, cursor.NewError(bracketCloseMatcher)
		}
		ret++
	}
}

func matchAnnotations(cursor *parsly.Cursor) ([]*Annotation, error) {
	var ret []*Annotation
	for {
		matched := cursor.MatchAfterOptional(whitespaceMatcher, annotationMatcher)
		if matched.Code != annotationToken {
			return ret, nil
		}
		name := cursor.MatchOne(identifierMatcher)
		if name.Code != identifierToken {
			return nil, cursor.NewError(identifierMatcher)
		}
		annotation := &Annotation{Name: name.Text(cursor)}
		block := cursor.MatchOne(parenthesesBlockMatcher)
		if block.Code == parenthesesBlockToken {
			text := block.Text(cursor)
			annotation.Values = parseValues(text[1 : len(text)-1])
		}
		ret = append(ret, annotation)
	}
}

// parseValues parses annotation members: value, or key=value pairs
func parseValues(text string) map[string]interface{} {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	ret := map[string]interface{}{}
	for _, pair := range splitTopLevel(text) {
		key, value := "value", pair
		if index := strings.Index(pair, "="); index != -1 {
			key, value = strings.TrimSpace(pair[:index]), pair[index+1:]
		}
		ret[key] = literal(strings.TrimSpace(value))
	}
	return ret
}

func literal(value string) interface{} {
	if unquoted, err := strconv.Unquote(value); err == nil {
		return unquoted
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}

func splitTopLevel(text string) []string {
	var ret []string
	depth := 0
	quoted := false
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			if i == 0 || text[i-1] != '\\' {
				quoted = !quoted
			}
		case '(', '{':
			if !quoted {
				depth++
			}
		case ')', '}':
			if !quoted && depth > 0 {
				depth--
			}
		case ',':
			if !quoted && depth == 0 {
				ret = append(ret, strings.TrimSpace(text[start:i]))
				start = i + 1
			}
		}
	}
	return append(ret, strings.TrimSpace(text[start:]))
}

func expectEOF(cursor *parsly.Cursor) error {
	cursor.MatchOne(whitespaceMatcher)
	if cursor.Pos < cursor.InputSize {
		return fmt.Errorf("unexpected %q at %v", string(cursor.Input[cursor.Pos:]), cursor.Pos)
	}
	return nil
}
