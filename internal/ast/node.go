package ast

import "iblang/token"

type Node interface {
	NodeSpan() token.Span
	NodeType() NodeType
	String() string
}

func (f *File) NodeSpan() token.Span { return f.Span }
func (*File) NodeType() NodeType       { return FILE }

func (i *Ident) NodeSpan() token.Span { return i.Span }
func (*Ident) NodeType() NodeType       { return IDENT }

func (f *FunctionDecl) NodeSpan() token.Span { return f.Span }
func (*FunctionDecl) NodeType() NodeType       { return FUNCTION_DECL }

func (p *Param) NodeSpan() token.Span { return p.Span }
func (*Param) NodeType() NodeType       { return PARAM }

func (b *Block) NodeSpan() token.Span { return b.Span }
func (*Block) NodeType() NodeType       { return BLOCK }

func (a *AssignStmt) NodeSpan() token.Span { return a.Span }
func (*AssignStmt) NodeType() NodeType       { return ASSIGN_STMT }

func (r *ReturnStmt) NodeSpan() token.Span { return r.Span }
func (*ReturnStmt) NodeType() NodeType       { return RETURN_STMT }

func (i *IfStmt) NodeSpan() token.Span { return i.Span }
func (*IfStmt) NodeType() NodeType       { return IF_STMT }

func (e *ExprStmt) NodeSpan() token.Span { return e.Span }
func (*ExprStmt) NodeType() NodeType       { return EXPR_STMT }

func (bs *BadStmt) NodeSpan() token.Span { return bs.Bad.Token.Span }
func (*BadStmt) NodeType() NodeType        { return BAD_STMT }

func (i *IdentExpr) NodeSpan() token.Span { return i.Span }
func (*IdentExpr) NodeType() NodeType       { return IDENT_EXPR }

func (l *IntLiteral) NodeSpan() token.Span { return l.Span }
func (*IntLiteral) NodeType() NodeType       { return INT_LITERAL }

func (l *FloatLiteral) NodeSpan() token.Span { return l.Span }
func (*FloatLiteral) NodeType() NodeType       { return FLOAT_LITERAL }

func (l *StringLiteral) NodeSpan() token.Span { return l.Span }
func (*StringLiteral) NodeType() NodeType       { return STRING_LITERAL }

func (c *CallExpr) NodeSpan() token.Span { return c.Span }
func (*CallExpr) NodeType() NodeType       { return CALL_EXPR }

func (b *BinaryExpr) NodeSpan() token.Span { return b.Span }
func (*BinaryExpr) NodeType() NodeType       { return BINARY_EXPR }

func (be *BadExpr) NodeSpan() token.Span { return be.Bad.Token.Span }
func (*BadExpr) NodeType() NodeType        { return BAD_EXPR }
