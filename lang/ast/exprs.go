package ast

import "github.com/lumen-lang/lumen/lang/token"

// ====================
// EXPRESSIONS
// ====================

// LiteralExpr is a number, string, boolean or nil literal.
type LiteralExpr struct {
	Value  any // int64, float64, string, bool, or nil
	LineNo int
}

func (n *LiteralExpr) Line() int { return n.LineNo }
func (n *LiteralExpr) exprNode() {}

// GroupingExpr is a parenthesized expression, `( expr )`.
type GroupingExpr struct {
	Expr   Expr
	LineNo int
}

func (n *GroupingExpr) Line() int { return n.LineNo }
func (n *GroupingExpr) exprNode() {}

// UnaryExpr is `(- | !) expr`.
type UnaryExpr struct {
	Op     token.Token
	Right  Expr
	LineNo int
}

func (n *UnaryExpr) Line() int { return n.LineNo }
func (n *UnaryExpr) exprNode() {}

// BinaryExpr is `expr op expr` for arithmetic, comparison and equality
// operators.
type BinaryExpr struct {
	Left   Expr
	Op     token.Token
	Right  Expr
	LineNo int
}

func (n *BinaryExpr) Line() int { return n.LineNo }
func (n *BinaryExpr) exprNode() {}

// LogicalExpr is `expr (and | or) expr`, kept distinct from BinaryExpr
// because its operands short-circuit instead of both being evaluated.
type LogicalExpr struct {
	Left   Expr
	Op     token.Token
	Right  Expr
	LineNo int
}

func (n *LogicalExpr) Line() int { return n.LineNo }
func (n *LogicalExpr) exprNode() {}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	Cond   Expr
	Then   Expr
	Else   Expr
	LineNo int
}

func (n *TernaryExpr) Line() int { return n.LineNo }
func (n *TernaryExpr) exprNode() {}

// VariableExpr is a reference to a name. ID is filled in by the parser and
// consumed by the resolver, which uses it to key the bindings side-table
// (see Interpreter.bindings) instead of the variable's name, so that two
// lexically distinct uses of the same name resolve independently.
type VariableExpr struct {
	Name   string
	ID     NodeID
	LineNo int
}

func (n *VariableExpr) Line() int { return n.LineNo }
func (n *VariableExpr) exprNode() {}

// AssignExpr is `name = value`. Like VariableExpr, ID is the resolver
// binding key.
type AssignExpr struct {
	Name   string
	Value  Expr
	ID     NodeID
	LineNo int
}

func (n *AssignExpr) Line() int { return n.LineNo }
func (n *AssignExpr) exprNode() {}

// CallExpr is `callee ( args )`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	LineNo int
}

func (n *CallExpr) Line() int { return n.LineNo }
func (n *CallExpr) exprNode() {}

// GetExpr is a property read, `obj . name`.
type GetExpr struct {
	Obj    Expr
	Name   string
	LineNo int
}

func (n *GetExpr) Line() int { return n.LineNo }
func (n *GetExpr) exprNode() {}

// SetExpr is a property write, `obj . name = value`.
type SetExpr struct {
	Obj    Expr
	Name   string
	Value  Expr
	LineNo int
}

func (n *SetExpr) Line() int { return n.LineNo }
func (n *SetExpr) exprNode() {}

// FunctionExpr is an anonymous function literal, `fun (params) { body }`.
// A named function declaration parses to its own FunctionStmt, with the
// same Params/Body shape repeated rather than shared, since a declaration
// also carries a Name that an anonymous literal has no use for.
type FunctionExpr struct {
	Params []string
	Body   []Stmt
	LineNo int
}

func (n *FunctionExpr) Line() int { return n.LineNo }
func (n *FunctionExpr) exprNode() {}

// LambdaExpr is the arrow-bodied shorthand, `\params -> expr`, whose body
// is a single expression rather than a block; the interpreter runs it as
// if it were `return expr;`.
type LambdaExpr struct {
	Params []string
	Body   Expr
	LineNo int
}

func (n *LambdaExpr) Line() int { return n.LineNo }
func (n *LambdaExpr) exprNode() {}

// ThisExpr is a `this` reference inside a method body. ID is the resolver
// binding key, same as VariableExpr.
type ThisExpr struct {
	ID     NodeID
	LineNo int
}

func (n *ThisExpr) Line() int { return n.LineNo }
func (n *ThisExpr) exprNode() {}

// SuperExpr is `super . method` inside a subclass method body. ID is the
// resolver binding key.
type SuperExpr struct {
	Method string
	ID     NodeID
	LineNo int
}

func (n *SuperExpr) Line() int { return n.LineNo }
func (n *SuperExpr) exprNode() {}
