package ast

import "iblang/token"

// File is the root of every parse: the ordered function declarations of one
// source unit.
type File struct {
	Span      token.Span
	Name      string
	Functions []*FunctionDecl
}

// Ident represents any identifier like function, parameter or type names
// Example: "main", "int", "argc"
type Ident struct {
	Span  token.Span
	Value string
}

// FunctionDecl represents a function declaration
// Example: "func add(int a, int b) { return a + b }"
type FunctionDecl struct {
	Span   token.Span
	Name   Ident
	Params []*Param
	Body   *Block
}

// Param is one "type name" pair of a parameter list
// Example: "int a"
type Param struct {
	Span token.Span
	Type Ident
	Name Ident
}

// Block is a braced statement list
type Block struct {
	Span       token.Span
	Statements []Stmt
}

// AssignStmt represents "target = value"
type AssignStmt struct {
	Span   token.Span
	Target Ident
	Value  Expr
}

// ReturnStmt represents "return value". Value is nil for a bare return.
type ReturnStmt struct {
	Span  token.Span
	Value Expr
}

// IfStmt represents "if cond { ... } else { ... }". Else is nil when absent.
type IfStmt struct {
	Span      token.Span
	Condition Expr
	Then      *Block
	Else      *Block
}

// ExprStmt is a function call used as a statement
// Example: "print(x)"
type ExprStmt struct {
	Span token.Span
	Call *CallExpr
}

// BadStmt stands in for a statement that could not be parsed
type BadStmt struct {
	Bad BadNode
}

// IdentExpr is a variable reference
type IdentExpr struct {
	Span token.Span
	Name string
}

// IntLiteral keeps the spelling next to the parsed value
type IntLiteral struct {
	Span  token.Span
	Raw   string
	Value int64
}

type FloatLiteral struct {
	Span  token.Span
	Raw   string
	Value float64
}

// StringLiteral keeps the quoted spelling; Value has the quotes removed.
type StringLiteral struct {
	Span  token.Span
	Raw   string
	Value string
}

// CallExpr represents "callee(args...)"
type CallExpr struct {
	Span   token.Span
	Callee Ident
	Args   []Expr
}

// BinaryExpr is a single infix operator application
// Example: "a + 1", "x == 15"
type BinaryExpr struct {
	Span  token.Span
	Left  Expr
	Op    token.Token
	Right Expr
}

// BadExpr stands in for an expression that could not be parsed
type BadExpr struct {
	Bad BadNode
}

// BadNode carries the offending token of a recovery placeholder
type BadNode struct {
	Token   token.Token
	Message string
}
