package ast

import "strconv"

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_STMT
	BAD_EXPR

	// High-level constructs
	FILE
	IDENT

	// Functions
	FUNCTION_DECL
	PARAM

	// Statements
	BLOCK
	ASSIGN_STMT
	RETURN_STMT
	IF_STMT
	EXPR_STMT

	// Expressions
	IDENT_EXPR
	INT_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	CALL_EXPR
	BINARY_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:        "Illegal",
	BAD_STMT:       "BadStmt",
	BAD_EXPR:       "BadExpr",
	FILE:           "File",
	IDENT:          "Ident",
	FUNCTION_DECL:  "FunctionDecl",
	PARAM:          "Param",
	BLOCK:          "Block",
	ASSIGN_STMT:    "Assign",
	RETURN_STMT:    "Return",
	IF_STMT:        "If",
	EXPR_STMT:      "ExprStmt",
	IDENT_EXPR:     "Identifier",
	INT_LITERAL:    "IntLiteral",
	FLOAT_LITERAL:  "FloatLiteral",
	STRING_LITERAL: "StringLiteral",
	CALL_EXPR:      "Call",
	BINARY_EXPR:    "Binary",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}
