package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in source order, dispatching on the node tag of
// every node it reaches. Names (function, parameter, callee and assignment
// target) are visited as *Ident nodes.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, fn := range n.Functions {
			Walk(v, fn)
		}

	case *FunctionDecl:
		Walk(v, &n.Name)
		for _, param := range n.Params {
			Walk(v, param)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *Param:
		Walk(v, &n.Type)
		Walk(v, &n.Name)

	case *Block:
		for _, stmt := range n.Statements {
			Walk(v, stmt)
		}

	case *AssignStmt:
		Walk(v, &n.Target)
		walkExpr(v, n.Value)

	case *ReturnStmt:
		walkExpr(v, n.Value)

	case *IfStmt:
		walkExpr(v, n.Condition)
		if n.Then != nil {
			Walk(v, n.Then)
		}
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *ExprStmt:
		if n.Call != nil {
			Walk(v, n.Call)
		}

	case *CallExpr:
		Walk(v, &n.Callee)
		for _, arg := range n.Args {
			walkExpr(v, arg)
		}

	case *BinaryExpr:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)

	case *Ident, *IdentExpr, *IntLiteral, *FloatLiteral, *StringLiteral, *BadExpr, *BadStmt:
		// leaves
	}

	v.Visit(nil)
}

func walkExpr(v Visitor, e Expr) {
	if e != nil {
		Walk(v, e)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in source order: it starts by calling f(node);
// node must not be nil. If f returns true, Inspect invokes f recursively for
// each of the non-nil children of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
