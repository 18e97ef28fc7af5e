package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the strict form of a source file: nothing but well-formed
// function declarations.
type Program struct {
	Pos       lexer.Position
	Functions []*Function `@@*`
}

type Function struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string   `"func" @Ident`
	Params []*Param `"(" [ @@ { "," @@ } ] ")"`
	Body   *Block   `@@`
}

type Param struct {
	Pos  lexer.Position
	Type string `@Ident`
	Name string `@Ident`
}

type Block struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type Statement struct {
	Pos    lexer.Position
	If     *If     `  @@`
	Return *Return `| @@`
	Assign *Assign `| @@`
	Call   *Call   `| @@`
}

type If struct {
	Condition *Condition `"if" @@`
	Then      *Block     `@@`
	Else      *Block     `[ "else" @@ ]`
}

// Condition requires "==" between its operands.
type Condition struct {
	Left  *Operand `@@`
	Op    string   `@"=="`
	Right *Operand `@@`
}

type Return struct {
	Value *Expression `"return" @@?`
}

type Assign struct {
	Target string      `@Ident "="`
	Value  *Expression `@@`
}

type Call struct {
	Callee string        `@Ident "("`
	Args   []*Expression `[ @@ { "," @@ } ] ")"`
}

// Expression allows at most one infix operator.
type Expression struct {
	Left  *Operand    `@@`
	Infix *InfixRight `@@?`
}

type InfixRight struct {
	Op    string   `@("+" | "-" | "*" | "/" | "==")`
	Right *Operand `@@`
}

type Operand struct {
	Call   *Call    `  @@`
	Float  *float64 `| @Float`
	Int    *int64   `| @Integer`
	String *string  `| @String`
	Ident  *string  `| @Ident`
}

// FunctionNames lists the declared functions in source order.
func (p *Program) FunctionNames() []string {
	names := make([]string, 0, len(p.Functions))
	for _, fn := range p.Functions {
		names = append(names, fn.Name)
	}
	return names
}
