package parser

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	identifierToken
	lessToken
	greaterToken
	commaToken
	questionToken
	ampersandToken
	pipeToken
	bracketOpenToken
	bracketCloseToken
	annotationToken
	parenthesesBlockToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var identifierMatcher = parsly.NewToken(identifierToken, "Identifier", &identifierMatch{})
var lessMatcher = parsly.NewToken(lessToken, "<", matcher.NewByte('<'))
var greaterMatcher = parsly.NewToken(greaterToken, ">", matcher.NewByte('>'))
var commaMatcher = parsly.NewToken(commaToken, ",", matcher.NewByte(','))
var questionMatcher = parsly.NewToken(questionToken, "?", matcher.NewByte('?'))
var ampersandMatcher = parsly.NewToken(ampersandToken, "&", matcher.NewByte('&'))
var pipeMatcher = parsly.NewToken(pipeToken, "|", matcher.NewByte('|'))
var bracketOpenMatcher = parsly.NewToken(bracketOpenToken, "[", matcher.NewByte('['))
var bracketCloseMatcher = parsly.NewToken(bracketCloseToken, "]", matcher.NewByte(']'))
var annotationMatcher = parsly.NewToken(annotationToken, "@", matcher.NewByte('@'))
var parenthesesBlockMatcher = parsly.NewToken(parenthesesBlockToken, "Parentheses", matcher.NewBlock('(', ')', '\\'))

type identifierMatch struct{}

func (i *identifierMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	b := cursor.Input[cursor.Pos]
	if !isIdentifierStart(b) {
		return 0
	}
	pos := cursor.Pos + 1
	for pos < cursor.InputSize && isIdentifierPart(cursor.Input[pos]) {
		pos++
	}
	//qualified name can not end with a dot
	for pos > cursor.Pos+1 && cursor.Input[pos-1] == '.' {
		pos--
	}
	return pos - cursor.Pos
}

func isIdentifierStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '$'
}

func isIdentifierPart(b byte) bool {
	return isIdentifierStart(b) || (b >= '0' && b <= '9') || b == '.'
}
