// Package resolver implements the static pass that binds every variable
// reference, `this` and `super` expression to the lexical scope depth at
// which it will be found at runtime, and enforces the handful of static
// rules that cannot be checked by the parser alone (duplicate
// declarations, self-initialization, illegal return/this/super).
//
// The scope-stack shape (a linked list of blocks, pushed on entry and
// popped on exit) mirrors the wider nenuphar lineage's own resolver, though
// the binding it produces is a plain scope depth rather than a
// local/cell/free-variable classification — this language has no notion of
// a variable shared across closures other than "found N frames up".
package resolver

import (
	"fmt"
	"go/scanner"
	gotoken "go/token"

	"github.com/lumen-lang/lumen/lang/ast"
)

type (
	// Error is a single positioned resolver error.
	Error = scanner.Error
	// ErrorList accumulates Error values across an entire resolve pass.
	ErrorList = scanner.ErrorList
)

// Bindings maps a variable-reference node (Variable, Assign, This or
// Super) to the number of enclosing frames to walk, from the frame active
// at the point of use, to reach the frame holding the name. Globals are
// deliberately absent: the interpreter falls back to the dedicated globals
// frame when a node has no entry here.
type Bindings map[ast.NodeID]int

// state tracks whether a declared name has been fully defined yet, to
// catch `var a = a;` style self-initialization inside a non-global scope.
type state uint8

const (
	declared state = iota
	defined
)

// scope is one lexical block: a map from name to declaration state, linked
// to its enclosing scope.
type scope struct {
	names  map[string]state
	parent *scope
}

type funcKind uint8

const (
	noFunc funcKind = iota
	inFunction
	inMethod
	inInitializer
)

type classKind uint8

const (
	noClass classKind = iota
	inClass
	inSubclass
)

// Resolver walks a parsed program once, building a Bindings side-table and
// accumulating any static errors it finds along the way.
type Resolver struct {
	filename string
	errs     ErrorList

	scope       *scope // nil means the global scope
	bindings    Bindings
	currentFunc funcKind
	currentCls  classKind
}

// New creates a Resolver that will report errors as if they came from
// filename (used only for error positions).
func New(filename string) *Resolver {
	return &Resolver{filename: filename, bindings: make(Bindings)}
}

// Resolve walks prog and returns the bindings side-table. The returned
// error, when non-nil, is guaranteed to be an ErrorList.
func (r *Resolver) Resolve(prog *ast.Program) (Bindings, error) {
	for _, stmt := range prog.Stmts {
		r.resolveStmt(stmt)
	}
	r.errs.Sort()
	return r.bindings, r.errs.Err()
}

func (r *Resolver) pushScope() {
	r.scope = &scope{names: make(map[string]state), parent: r.scope}
}

func (r *Resolver) popScope() {
	r.scope = r.scope.parent
}

func (r *Resolver) errorf(line int, format string, args ...any) {
	r.errs.Add(gotoken.Position{Filename: r.filename, Line: line}, fmt.Sprintf(format, args...))
}

// declare inserts name into the current scope as not-yet-defined. It is a
// no-op at global scope: a redeclared global is reported at runtime by the
// interpreter's environment instead, and globals are never subject to the
// self-initialization check.
func (r *Resolver) declare(line int, name string) {
	if r.scope == nil {
		return
	}
	if _, ok := r.scope.names[name]; ok {
		r.errorf(line, "Variable [%s] is already defined", name)
		return
	}
	r.scope.names[name] = declared
}

func (r *Resolver) define(name string) {
	if r.scope == nil {
		return
	}
	r.scope.names[name] = defined
}

// resolveLocal walks the scope chain outward from the current scope,
// counting the number of scopes crossed until it finds name, and records
// that depth for id. If name is never found, it is assumed global and no
// entry is recorded.
func (r *Resolver) resolveLocal(id ast.NodeID, name string) {
	depth := 0
	for s := r.scope; s != nil; s = s.parent {
		if _, ok := s.names[name]; ok {
			r.bindings[id] = depth
			return
		}
		depth++
	}
}

// ====================
// STATEMENTS
// ====================

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(stmt.Expr)

	case *ast.PrintStmt:
		for _, e := range stmt.Exprs {
			r.resolveExpr(e)
		}

	case *ast.VarStmt:
		r.declare(stmt.LineNo, stmt.Name)
		if stmt.Init != nil {
			r.resolveExpr(stmt.Init)
		}
		r.define(stmt.Name)

	case *ast.FunctionStmt:
		r.declare(stmt.LineNo, stmt.Name)
		r.define(stmt.Name)
		r.resolveFunction(stmt, inFunction)

	case *ast.ClassStmt:
		r.resolveClass(stmt)

	case *ast.Block:
		r.pushScope()
		for _, s := range stmt.Stmts {
			r.resolveStmt(s)
		}
		r.popScope()

	case *ast.IfStmt:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.Then)
		if stmt.Else != nil {
			r.resolveStmt(stmt.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.Body)

	case *ast.ReturnStmt:
		if r.currentFunc == noFunc {
			r.errorf(stmt.LineNo, "Cannot return from top-level code")
		}
		if stmt.Value != nil {
			if r.currentFunc == inInitializer {
				r.errorf(stmt.LineNo, "Cannot return a value from an initializer")
			}
			r.resolveExpr(stmt.Value)
		}

	default:
		panic(fmt.Sprintf("resolver: unexpected stmt %T", stmt))
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind funcKind) {
	r.resolveFunctionLike(fn.LineNo, fn.Params, fn.Body, kind)
}

func (r *Resolver) resolveFunctionLike(line int, params []string, body []ast.Stmt, kind funcKind) {
	enclosingFunc := r.currentFunc
	r.currentFunc = kind
	defer func() { r.currentFunc = enclosingFunc }()

	r.pushScope()
	defer r.popScope()
	for _, p := range params {
		r.declare(line, p)
		r.define(p)
	}
	for _, s := range body {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveClass(cls *ast.ClassStmt) {
	enclosingCls := r.currentCls
	r.currentCls = inClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(cls.LineNo, cls.Name)
	r.define(cls.Name)

	if cls.Superclass != nil {
		if cls.Superclass.Name == cls.Name {
			r.errorf(cls.LineNo, "A class cannot inherit from itself")
		}
		r.currentCls = inSubclass
		r.resolveExpr(cls.Superclass)

		r.pushScope()
		defer r.popScope()
		r.scope.names["super"] = defined
	}

	r.pushScope()
	defer r.popScope()
	r.scope.names["this"] = defined

	for _, m := range cls.Methods {
		kind := inMethod
		if m.Name == "init" {
			kind = inInitializer
		}
		r.resolveFunction(m, kind)
	}
}

// ====================
// EXPRESSIONS
// ====================

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.LiteralExpr:
		// nothing to do

	case *ast.GroupingExpr:
		r.resolveExpr(expr.Expr)

	case *ast.UnaryExpr:
		r.resolveExpr(expr.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.TernaryExpr:
		r.resolveExpr(expr.Cond)
		r.resolveExpr(expr.Then)
		r.resolveExpr(expr.Else)

	case *ast.VariableExpr:
		if r.scope != nil {
			if st, ok := r.scope.names[expr.Name]; ok && st == declared {
				r.errorf(expr.LineNo, "Variable [%s] accessed inside its own initializer", expr.Name)
			}
		}
		r.resolveLocal(expr.ID, expr.Name)

	case *ast.AssignExpr:
		r.resolveExpr(expr.Value)
		r.resolveLocal(expr.ID, expr.Name)

	case *ast.CallExpr:
		r.resolveExpr(expr.Callee)
		for _, a := range expr.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(expr.Obj)

	case *ast.SetExpr:
		r.resolveExpr(expr.Value)
		r.resolveExpr(expr.Obj)

	case *ast.FunctionExpr:
		r.resolveFunctionLike(expr.LineNo, expr.Params, expr.Body, inFunction)

	case *ast.LambdaExpr:
		enclosingFunc := r.currentFunc
		r.currentFunc = inFunction
		r.pushScope()
		for _, p := range expr.Params {
			r.declare(expr.LineNo, p)
			r.define(p)
		}
		r.resolveExpr(expr.Body)
		r.popScope()
		r.currentFunc = enclosingFunc

	case *ast.ThisExpr:
		if r.currentCls == noClass {
			r.errorf(expr.LineNo, "Cannot use 'this' outside of a class")
			return
		}
		r.resolveLocal(expr.ID, "this")

	case *ast.SuperExpr:
		switch r.currentCls {
		case noClass:
			r.errorf(expr.LineNo, "Cannot use 'super' outside of a class")
			return
		case inClass:
			r.errorf(expr.LineNo, "Cannot use 'super' in a class with no superclass")
			return
		}
		r.resolveLocal(expr.ID, "super")

	default:
		panic(fmt.Sprintf("resolver: unexpected expr %T", expr))
	}
}
