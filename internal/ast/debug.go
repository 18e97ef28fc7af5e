package ast

import (
	"fmt"
	"io"
	"strings"
)

// DebugPrinter writes an indented one-node-per-line dump of a tree. Names are
// folded into their owner's line, so *Ident nodes get no line of their own.
//
//	File
//	  FunctionDecl f
//	    Block
//	      Return
//	        IntLiteral 1
type DebugPrinter struct {
	w      io.Writer
	indent string
	err    error
}

func NewDebugPrinter(w io.Writer) *DebugPrinter {
	return &DebugPrinter{w: w, indent: "  "}
}

// Print dumps node and everything below it, returning the first write error.
func (p *DebugPrinter) Print(node Node) error {
	p.err = nil
	Walk(debugVisitor{p: p}, node)
	return p.err
}

// Dump returns the debug tree of node as a string.
func Dump(node Node) string {
	var b strings.Builder
	_ = NewDebugPrinter(&b).Print(node)
	return b.String()
}

type debugVisitor struct {
	p     *DebugPrinter
	depth int
}

func (v debugVisitor) Visit(node Node) Visitor {
	if node == nil {
		return nil
	}
	if _, ok := node.(*Ident); ok {
		return nil
	}
	v.p.writeLine(v.depth, describe(node))
	return debugVisitor{p: v.p, depth: v.depth + 1}
}

func (p *DebugPrinter) writeLine(depth int, text string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(p.indent, depth), text)
}

func describe(node Node) string {
	label := node.NodeType().String()

	switch n := node.(type) {
	case *FunctionDecl:
		return label + " " + n.Name.Value
	case *Param:
		return fmt.Sprintf("%s %s %s", label, n.Type.Value, n.Name.Value)
	case *AssignStmt:
		return label + " " + n.Target.Value
	case *IdentExpr:
		return label + " " + n.Name
	case *IntLiteral:
		return label + " " + n.Raw
	case *FloatLiteral:
		return label + " " + n.Raw
	case *StringLiteral:
		return fmt.Sprintf("%s %q", label, n.Value)
	case *CallExpr:
		return label + " " + n.Callee.Value
	case *BinaryExpr:
		return label + " " + n.Op.Lexeme
	case *BadStmt:
		return fmt.Sprintf("%s %s %q", label, n.Bad.Token.Type, n.Bad.Token.Lexeme)
	case *BadExpr:
		return fmt.Sprintf("%s %s %q", label, n.Bad.Token.Type, n.Bad.Token.Lexeme)
	default:
		return label
	}
}
