// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"strconv"
	"strings"
)

type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	GARBAGE
	COMMENT

	// Identifiers + literals
	IDENTIFIER
	INTEGER
	FLOAT
	STRING

	// Keywords
	FUNC
	TRUE
	FALSE
	IF
	ELSE
	RETURN

	// Brackets
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_PAREN
	RIGHT_PAREN

	// Separators
	COMMA

	// Operators
	LESS
	GREATER
	PLUS
	MINUS
	STAR
	SLASH
	AMPERSAND
	PIPE
	PERCENT
	BANG
	EQUAL

	// Two-character operators
	LESS_EQUAL
	GREATER_EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	AND
	OR
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL
	SHIFT_LEFT
	SHIFT_RIGHT
)

var typeNames = [...]string{
	EOF:           "Eof",
	GARBAGE:       "Garbage",
	COMMENT:       "Comment",
	IDENTIFIER:    "Identifier",
	INTEGER:       "IntegerLiteral",
	FLOAT:         "FloatLiteral",
	STRING:        "StringLiteral",
	FUNC:          "KeywordFunc",
	TRUE:          "KeywordTrue",
	FALSE:         "KeywordFalse",
	IF:            "KeywordIf",
	ELSE:          "KeywordElse",
	RETURN:        "KeywordReturn",
	LEFT_BRACKET:  "OpenBracket",
	RIGHT_BRACKET: "CloseBracket",
	LEFT_BRACE:    "OpenScope",
	RIGHT_BRACE:   "CloseScope",
	LEFT_PAREN:    "OpenParenthesis",
	RIGHT_PAREN:   "CloseParenthesis",
	COMMA:         "Comma",
	LESS:          "LessThan",
	GREATER:       "GreaterThan",
	PLUS:          "Addition",
	MINUS:         "Subtraction",
	STAR:          "Multiplication",
	SLASH:         "Division",
	AMPERSAND:     "BitwiseAnd",
	PIPE:          "BitwiseOr",
	PERCENT:       "Modulo",
	BANG:          "LogicalNot",
	EQUAL:         "Assignment",
	LESS_EQUAL:    "LessThanEqual",
	GREATER_EQUAL: "GreaterThanEqual",
	EQUAL_EQUAL:   "EqualEqual",
	BANG_EQUAL:    "NotEqual",
	AND:           "LogicalAnd",
	OR:            "LogicalOr",
	PLUS_EQUAL:    "AdditionAssignment",
	MINUS_EQUAL:   "SubtractionAssignment",
	STAR_EQUAL:    "MultiplicationAssignment",
	SLASH_EQUAL:   "DivisionAssignment",
	PERCENT_EQUAL: "ModuloAssignment",
	SHIFT_LEFT:    "BitwiseShiftLeft",
	SHIFT_RIGHT:   "BitwiseShiftRight",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// IsKeyword reports whether t is one of the fixed keywords.
func (t TokenType) IsKeyword() bool {
	return t >= FUNC && t <= RETURN
}

// IsControlFlow reports whether t is a keyword that changes control flow.
func (t TokenType) IsControlFlow() bool {
	return t == IF || t == ELSE || t == RETURN
}

func (t TokenType) IsBracket() bool {
	return t >= LEFT_BRACKET && t <= RIGHT_PAREN
}

func (t TokenType) IsOperator() bool {
	return t >= LESS && t <= SHIFT_RIGHT
}

// Token is one lexical unit. Lexeme is the exact spelling consumed from the
// source, so keywords keep their original case.
type Token struct {
	Type   TokenType
	Lexeme string
	Span   Span
}

var keywords = map[string]TokenType{
	"func":   FUNC,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent classifies an identifier spelling. Keywords match case-insensitively.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENTIFIER
}

// Keywords returns the keyword spellings in declaration order.
func Keywords() []string {
	return []string{"func", "true", "false", "if", "else", "return"}
}
