package ast

// ====================
// STATEMENTS
// ====================

// ExpressionStmt is an expression used as a statement.
type ExpressionStmt struct {
	Expr   Expr
	LineNo int
}

func (n *ExpressionStmt) Line() int { return n.LineNo }
func (n *ExpressionStmt) stmtNode() {}

// PrintStmt is `print expr (, expr)*;` — one or more expressions printed as
// a single call to the sink.
type PrintStmt struct {
	Exprs  []Expr
	LineNo int
}

func (n *PrintStmt) Line() int { return n.LineNo }
func (n *PrintStmt) stmtNode() {}

// VarStmt is `var name (= initializer)?;`.
type VarStmt struct {
	Name   string
	Init   Expr // nil if omitted
	LineNo int
}

func (n *VarStmt) Line() int { return n.LineNo }
func (n *VarStmt) stmtNode() {}

// FunctionStmt is a named function declaration, `fun name(params) { body }`,
// and is also used to represent a method inside a ClassStmt.
type FunctionStmt struct {
	Name   string
	Params []string
	Body   []Stmt
	LineNo int
}

func (n *FunctionStmt) Line() int { return n.LineNo }
func (n *FunctionStmt) stmtNode() {}

// ClassStmt is `class Name (< Superclass)? { method* }`.
type ClassStmt struct {
	Name       string
	Superclass *VariableExpr // nil if no superclass
	Methods    []*FunctionStmt
	LineNo     int
}

func (n *ClassStmt) Line() int { return n.LineNo }
func (n *ClassStmt) stmtNode() {}

// IfStmt is `if (cond) then (else else)?`.
type IfStmt struct {
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil if no else branch
	LineNo int
}

func (n *IfStmt) Line() int { return n.LineNo }
func (n *IfStmt) stmtNode() {}

// WhileStmt is `while (cond) body`. A desugared for-loop also produces one
// of these, wrapped in a synthetic Block (see the parser's forStmt).
type WhileStmt struct {
	Cond   Expr
	Body   Stmt
	LineNo int
}

func (n *WhileStmt) Line() int { return n.LineNo }
func (n *WhileStmt) stmtNode() {}

// ReturnStmt is `return expr?;`.
type ReturnStmt struct {
	Value  Expr // nil if the return has no expression
	LineNo int
}

func (n *ReturnStmt) Line() int { return n.LineNo }
func (n *ReturnStmt) stmtNode() {}
