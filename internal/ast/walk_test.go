package ast

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"iblang/token"
)

func TestInspectVisitsInSourceOrder(t *testing.T) {
	var visited []NodeType
	Inspect(sampleFunction(), func(n Node) bool {
		if n != nil {
			visited = append(visited, n.NodeType())
		}
		return true
	})

	expected := []NodeType{
		FUNCTION_DECL, IDENT,
		PARAM, IDENT, IDENT,
		PARAM, IDENT, IDENT,
		BLOCK,
		IF_STMT, BINARY_EXPR, IDENT_EXPR, IDENT_EXPR,
		BLOCK, RETURN_STMT, IDENT_EXPR,
		BLOCK, EXPR_STMT, CALL_EXPR, IDENT, STRING_LITERAL, INT_LITERAL,
		ASSIGN_STMT, IDENT, FLOAT_LITERAL,
		RETURN_STMT,
	}
	assert.Equal(t, expected, visited)
}

func TestInspectPrunes(t *testing.T) {
	count := 0
	Inspect(sampleFunction(), func(n Node) bool {
		if n == nil {
			return false
		}
		count++
		_, isIf := n.(*IfStmt)
		return !isIf
	})

	// FunctionDecl, name, two params with two names each, block, if, assign,
	// target, float, return
	assert.Equal(t, 14, count)
}

type countingVisitor struct {
	enter, leave *int
}

func (v countingVisitor) Visit(n Node) Visitor {
	if n == nil {
		*v.leave++
		return nil
	}
	*v.enter++
	return v
}

func TestWalkBalancesEnterAndLeave(t *testing.T) {
	enter, leave := 0, 0
	Walk(countingVisitor{&enter, &leave}, &File{Functions: []*FunctionDecl{sampleFunction()}})

	assert.Positive(t, enter)
	assert.Equal(t, enter, leave)
}

func TestWalkNilIsNoop(t *testing.T) {
	enter, leave := 0, 0
	Walk(countingVisitor{&enter, &leave}, nil)
	assert.Zero(t, enter)
}

func TestDump(t *testing.T) {
	file := &File{Functions: []*FunctionDecl{sampleFunction()}}

	expected := `File
  FunctionDecl max
    Param int a
    Param int b
    Block
      If
        Binary ==
          Identifier a
          Identifier b
        Block
          Return
            Identifier a
        Block
          ExprStmt
            Call print
              StringLiteral "hi"
              IntLiteral 1
      Assign x
        FloatLiteral 1.5
      Return
`
	assert.Equal(t, expected, Dump(file))
}

func TestDumpBadNodes(t *testing.T) {
	block := &Block{Statements: []Stmt{
		&BadStmt{Bad: BadNode{Token: token.Token{Type: token.RIGHT_PAREN, Lexeme: ")"}}},
		&ReturnStmt{Value: &BadExpr{Bad: BadNode{Token: token.Token{Type: token.GARBAGE, Lexeme: "@"}}}},
	}}

	expected := "Block\n" +
		"  BadStmt CloseParenthesis \")\"\n" +
		"  Return\n" +
		"    BadExpr Garbage \"@\"\n"
	assert.Equal(t, expected, Dump(block))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDebugPrinterReportsWriteError(t *testing.T) {
	err := NewDebugPrinter(failingWriter{}).Print(sampleFunction())
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewDebugPrinter(&buf).Print(&Block{}))
	assert.Equal(t, "Block\n", buf.String())
}
