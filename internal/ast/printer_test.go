package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"iblang/token"
)

func op(lexeme string, tt token.TokenType) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme}
}

func sampleFunction() *FunctionDecl {
	return &FunctionDecl{
		Name: Ident{Value: "max"},
		Params: []*Param{
			{Type: Ident{Value: "int"}, Name: Ident{Value: "a"}},
			{Type: Ident{Value: "int"}, Name: Ident{Value: "b"}},
		},
		Body: &Block{Statements: []Stmt{
			&IfStmt{
				Condition: &BinaryExpr{Left: &IdentExpr{Name: "a"}, Op: op("==", token.EQUAL_EQUAL), Right: &IdentExpr{Name: "b"}},
				Then:      &Block{Statements: []Stmt{&ReturnStmt{Value: &IdentExpr{Name: "a"}}}},
				Else: &Block{Statements: []Stmt{
					&ExprStmt{Call: &CallExpr{Callee: Ident{Value: "print"}, Args: []Expr{
						&StringLiteral{Raw: `"hi"`, Value: "hi"},
						&IntLiteral{Raw: "1", Value: 1},
					}}},
				}},
			},
			&AssignStmt{Target: Ident{Value: "x"}, Value: &FloatLiteral{Raw: "1.5", Value: 1.5}},
			&ReturnStmt{},
		}},
	}
}

func TestFunctionDeclString(t *testing.T) {
	expected := "func max(int a, int b) {\n" +
		"  if a == b {\n" +
		"    return a\n" +
		"  } else {\n" +
		"    print(\"hi\", 1)\n" +
		"  }\n" +
		"  x = 1.5\n" +
		"  return\n" +
		"}"
	assert.Equal(t, expected, sampleFunction().String())
}

func TestFileString(t *testing.T) {
	file := &File{Functions: []*FunctionDecl{
		{Name: Ident{Value: "a"}, Body: &Block{}},
		{Name: Ident{Value: "b"}, Body: &Block{}},
	}}

	assert.Equal(t, "func a() {}\n\nfunc b() {}", file.String())
	assert.Equal(t, "", (&File{}).String())
}

func TestBadNodeString(t *testing.T) {
	bad := BadNode{Token: token.Token{Type: token.GARBAGE, Lexeme: "@"}, Message: `unrecognized input "@"`}

	assert.Equal(t, `BadStmt: unrecognized input "@"`, (&BadStmt{Bad: bad}).String())
	assert.Equal(t, `BadExpr: unrecognized input "@"`, (&BadExpr{Bad: bad}).String())
}

func TestIfWithoutElseString(t *testing.T) {
	stmt := &IfStmt{
		Condition: &IdentExpr{Name: "ok"},
		Then:      &Block{},
	}
	assert.Equal(t, "if ok {}", stmt.String())
}

func TestNodeTypes(t *testing.T) {
	var bad BadNode
	nodes := map[Node]NodeType{
		&File{}:          FILE,
		&Ident{}:         IDENT,
		&FunctionDecl{}:  FUNCTION_DECL,
		&Param{}:         PARAM,
		&Block{}:         BLOCK,
		&AssignStmt{}:    ASSIGN_STMT,
		&ReturnStmt{}:    RETURN_STMT,
		&IfStmt{}:        IF_STMT,
		&ExprStmt{}:      EXPR_STMT,
		&BadStmt{}:       BAD_STMT,
		&IdentExpr{}:     IDENT_EXPR,
		&IntLiteral{}:    INT_LITERAL,
		&FloatLiteral{}:  FLOAT_LITERAL,
		&StringLiteral{}: STRING_LITERAL,
		&CallExpr{}:      CALL_EXPR,
		&BinaryExpr{}:    BINARY_EXPR,
		&BadExpr{Bad: bad}: BAD_EXPR,
	}

	for node, expected := range nodes {
		assert.Equal(t, expected, node.NodeType())
	}
	assert.Equal(t, "FunctionDecl", FUNCTION_DECL.String())
	assert.Equal(t, "NodeType(99)", NodeType(99).String())
}

func TestBadNodeSpanComesFromToken(t *testing.T) {
	span := token.NewSpan("f.ib", 3, 4)
	bad := &BadExpr{Bad: BadNode{Token: token.Token{Type: token.GARBAGE, Lexeme: "@", Span: span}}}
	assert.Equal(t, span, bad.NodeSpan())
}
