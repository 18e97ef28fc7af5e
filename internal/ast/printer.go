package ast

import (
	"fmt"
	"strings"
)

func (f *File) String() string {
	var b strings.Builder
	for i, fn := range f.Functions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fn.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (f *FunctionDecl) String() string {
	var b strings.Builder

	b.WriteString("func ")
	b.WriteString(f.Name.Value)
	b.WriteString("(")
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(") ")

	if f.Body != nil {
		b.WriteString(f.Body.String())
	} else {
		b.WriteString("{}")
	}
	return b.String()
}

func (p *Param) String() string {
	return fmt.Sprintf("%s %s", p.Type.Value, p.Name.Value)
}

func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}

	var out strings.Builder
	out.WriteString("{\n")
	for _, stmt := range b.Statements {
		out.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	out.WriteString("}")
	return out.String()
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s", a.Target.Value, exprString(a.Value))
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

func (i *IfStmt) String() string {
	var b strings.Builder
	b.WriteString("if ")
	b.WriteString(exprString(i.Condition))
	b.WriteString(" ")
	b.WriteString(blockString(i.Then))
	if i.Else != nil {
		b.WriteString(" else ")
		b.WriteString(i.Else.String())
	}
	return b.String()
}

func (e *ExprStmt) String() string {
	if e.Call == nil {
		return ""
	}
	return e.Call.String()
}

func (bs *BadStmt) String() string {
	return fmt.Sprintf("BadStmt: %s", bs.Bad.Message)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (l *IntLiteral) String() string {
	return l.Raw
}

func (l *FloatLiteral) String() string {
	return l.Raw
}

func (l *StringLiteral) String() string {
	return l.Raw
}

func (c *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(c.Callee.Value)
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(exprString(arg))
	}
	b.WriteString(")")
	return b.String()
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", exprString(b.Left), b.Op.Lexeme, exprString(b.Right))
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Bad.Message)
}

func exprString(e Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func blockString(b *Block) string {
	if b == nil {
		return "{}"
	}
	return b.String()
}
