package ast

type Expr interface {
	Node
	isExpr()
}

func (*IdentExpr) isExpr() {}

func (*IntLiteral) isExpr() {}

func (*FloatLiteral) isExpr() {}

func (*StringLiteral) isExpr() {}

func (*CallExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*BadExpr) isExpr() {}

type Stmt interface {
	Node
	isStmt()
}

func (*AssignStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*IfStmt) isStmt() {}

func (*ExprStmt) isStmt() {}

func (*BadStmt) isStmt() {}
