package interp

import (
	"fmt"
	"time"

	"github.com/lumen-lang/lumen/lang/ast"
	"github.com/lumen-lang/lumen/lang/resolver"
	"github.com/lumen-lang/lumen/lang/token"
)

// returnSignal is the non-local control-flow carrier for a return
// statement. It implements error so it can propagate through the same
// recursive call chain as a genuine failure, but Call is the only place
// that is allowed to catch it; it must never reach the caller of
// Interpret.
type returnSignal struct{ value Value }

func (r *returnSignal) Error() string { return "return" }

// Interpreter is a recursive statement walker and expression evaluator. It
// owns the globals frame, the current environment pointer, the resolver's
// bindings side-table, and the print sink.
type Interpreter struct {
	globals  *Environment
	env      *Environment
	bindings resolver.Bindings
	sink     Sink
}

// New creates an Interpreter with a fresh globals frame seeded with the
// clock and sleep native functions, printing through sink.
func New(sink Sink) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{globals: globals, env: globals, sink: sink}
	in.defineNatives()
	return in
}

// natives lists the host-implemented functions seeded into every fresh
// globals frame. Adding another native costs one table entry here, not a
// new branch in the call-dispatch code.
func (in *Interpreter) natives() []Native {
	return []Native{
		{
			NativeName: "clock",
			NativeAr:   0,
			Fn: func(*Interpreter, []Value) (Value, error) {
				return Float(float64(time.Now().UnixNano()) / 1e9), nil
			},
		},
		{
			NativeName: "sleep",
			NativeAr:   1,
			Fn: func(_ *Interpreter, args []Value) (Value, error) {
				secs, ok := args[0].(Float)
				if !ok {
					if i, ok := args[0].(Int); ok {
						secs = Float(i)
					} else {
						return nil, runtimeErrorf(0, "sleep expects a number, got %s", args[0].Type())
					}
				}
				time.Sleep(time.Duration(float64(secs) * float64(time.Second)))
				return Nil{}, nil
			},
		},
	}
}

func (in *Interpreter) defineNatives() {
	for _, n := range in.natives() {
		in.globals.Define(n.Name(), n) //nolint:errcheck // globals frame is fresh
	}
}

// Interpret executes prog's top-level statements using bindings as the
// resolver's depth side-table, writing print output to the interpreter's
// sink. It halts at the first RuntimeError or TypeError.
func (in *Interpreter) Interpret(prog *ast.Program, bindings resolver.Bindings) error {
	in.bindings = bindings
	for _, stmt := range prog.Stmts {
		if err := in.executeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ====================
// STATEMENTS
// ====================

func (in *Interpreter) executeStmt(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(stmt.Expr)
		return err

	case *ast.PrintStmt:
		values := make([]string, len(stmt.Exprs))
		for i, e := range stmt.Exprs {
			v, err := in.evaluate(e)
			if err != nil {
				return err
			}
			values[i] = v.String()
		}
		in.sink.Print(values)
		return nil

	case *ast.VarStmt:
		if stmt.Init == nil {
			return in.env.DefineUninitialized(stmt.Name)
		}
		v, err := in.evaluate(stmt.Init)
		if err != nil {
			return err
		}
		return in.env.Define(stmt.Name, v)

	case *ast.FunctionStmt:
		fn := &Function{FuncName: stmt.Name, Params: stmt.Params, Body: stmt.Body, Closure: in.env}
		return in.env.Define(stmt.Name, fn)

	case *ast.ClassStmt:
		return in.executeClassStmt(stmt)

	case *ast.Block:
		return in.executeBlock(stmt.Stmts, in.env.Child())

	case *ast.IfStmt:
		cond, err := in.evaluateBool(stmt.Cond, "if condition")
		if err != nil {
			return err
		}
		if cond {
			return in.executeStmt(stmt.Then)
		}
		if stmt.Else != nil {
			return in.executeStmt(stmt.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluateBool(stmt.Cond, "while condition")
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			if err := in.executeStmt(stmt.Body); err != nil {
				return err
			}
		}

	case *ast.ReturnStmt:
		var v Value = Nil{}
		if stmt.Value != nil {
			var err error
			v, err = in.evaluate(stmt.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: v}

	default:
		panic(fmt.Sprintf("interp: unexpected stmt %T", stmt))
	}
}

// evaluateBool evaluates expr and requires the result to be Bool, as the
// if/while conditions and the ternary and logical operators do; what
// controls them is never implicit truthiness.
func (in *Interpreter) evaluateBool(expr ast.Expr, what string) (bool, error) {
	v, err := in.evaluate(expr)
	if err != nil {
		return false, err
	}
	b, ok := truthOf(v)
	if !ok {
		return false, runtimeErrorf(expr.Line(), "%s must be a bool, got %s", what, v.Type())
	}
	return b, nil
}

// executeBlock runs stmts with env as the current environment, restoring
// the previous environment on every exit path, including a return signal
// unwinding through it.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.executeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeBlockCatchingReturn is executeBlock for a function call frame: it
// catches a returnSignal and turns it into a plain value, the only place
// that is allowed to do so.
func (in *Interpreter) executeBlockCatchingReturn(stmts []ast.Stmt, env *Environment) (Value, error) {
	err := in.executeBlock(stmts, env)
	if err == nil {
		return nil, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.value, nil
	}
	return nil, err
}

func (in *Interpreter) executeClassStmt(stmt *ast.ClassStmt) error {
	var super *Class
	if stmt.Superclass != nil {
		v, err := in.lookupVariable(stmt.Superclass.ID, stmt.Superclass.Name)
		if err != nil {
			return err
		}
		var ok bool
		super, ok = v.(*Class)
		if !ok {
			return runtimeErrorf(stmt.LineNo, "Superclass must be a class")
		}
	}

	methodEnv := in.env
	if super != nil {
		methodEnv = in.env.Child()
		methodEnv.Define("super", super) //nolint:errcheck // fresh frame
	}

	methods := make(map[string]*Function, len(stmt.Methods))
	for _, m := range stmt.Methods {
		methods[m.Name] = &Function{
			FuncName:      m.Name,
			Params:        m.Params,
			Body:          m.Body,
			Closure:       methodEnv,
			IsInitializer: m.Name == "init",
		}
	}

	cls := &Class{ClassName: stmt.Name, Superclass: super, Methods: methods}
	return in.env.Define(stmt.Name, cls)
}

// ====================
// EXPRESSIONS
// ====================

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch expr := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(expr.Value), nil

	case *ast.GroupingExpr:
		return in.evaluate(expr.Expr)

	case *ast.UnaryExpr:
		return in.evaluateUnary(expr)

	case *ast.BinaryExpr:
		return in.evaluateBinary(expr)

	case *ast.LogicalExpr:
		return in.evaluateLogical(expr)

	case *ast.TernaryExpr:
		cond, err := in.evaluateBool(expr.Cond, "ternary condition")
		if err != nil {
			return nil, err
		}
		if cond {
			return in.evaluate(expr.Then)
		}
		return in.evaluate(expr.Else)

	case *ast.VariableExpr:
		return in.lookupVariable(expr.ID, expr.Name)

	case *ast.AssignExpr:
		v, err := in.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		if err := in.assignVariable(expr.ID, expr.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.CallExpr:
		return in.evaluateCall(expr)

	case *ast.GetExpr:
		obj, err := in.evaluate(expr.Obj)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErrorf(expr.LineNo, "Only instances have properties")
		}
		v, err := instance.Get(expr.Name)
		if err != nil {
			return nil, runtimeErrorf(expr.LineNo, "%s", err.Error())
		}
		return v, nil

	case *ast.SetExpr:
		obj, err := in.evaluate(expr.Obj)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErrorf(expr.LineNo, "Only instances have fields")
		}
		v, err := in.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(expr.Name, v)
		return v, nil

	case *ast.FunctionExpr:
		return &Function{Params: expr.Params, Body: expr.Body, Closure: in.env}, nil

	case *ast.LambdaExpr:
		body := []ast.Stmt{&ast.ReturnStmt{Value: expr.Body, LineNo: expr.LineNo}}
		return &Function{Params: expr.Params, Body: body, Closure: in.env}, nil

	case *ast.ThisExpr:
		return in.lookupVariable(expr.ID, "this")

	case *ast.SuperExpr:
		return in.evaluateSuper(expr)

	default:
		panic(fmt.Sprintf("interp: unexpected expr %T", expr))
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(v)
	case int64:
		return Int(v)
	case float64:
		return Float(v)
	case string:
		return String(v)
	default:
		panic(fmt.Sprintf("interp: unexpected literal payload %T", v))
	}
}

func (in *Interpreter) lookupVariable(id ast.NodeID, name string) (Value, error) {
	if depth, ok := in.bindings[id]; ok {
		return in.env.GetAt(depth, name)
	}
	return in.globals.Get(name)
}

func (in *Interpreter) assignVariable(id ast.NodeID, name string, value Value) error {
	if depth, ok := in.bindings[id]; ok {
		in.env.AssignAt(depth, name, value)
		return nil
	}
	return in.globals.Assign(name, value)
}

func (in *Interpreter) evaluateLogical(expr *ast.LogicalExpr) (Value, error) {
	left, err := in.evaluateBool(expr.Left, "operand of "+expr.Op.String())
	if err != nil {
		return nil, err
	}
	if expr.Op == token.AND && !left {
		return Bool(false), nil
	}
	if expr.Op == token.OR && left {
		return Bool(true), nil
	}
	right, err := in.evaluateBool(expr.Right, "operand of "+expr.Op.String())
	if err != nil {
		return nil, err
	}
	return Bool(right), nil
}

func (in *Interpreter) evaluateCall(expr *ast.CallExpr) (Value, error) {
	callee, err := in.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}
	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(expr.LineNo, "Can only call functions or classes")
	}

	args := make([]Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(expr.LineNo, "Expected %d arguments but got %d", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evaluateSuper(expr *ast.SuperExpr) (Value, error) {
	depth := in.bindings[expr.ID]
	superVal, err := in.env.GetAt(depth, "super")
	if err != nil {
		return nil, err
	}
	super := superVal.(*Class)

	thisVal, err := in.env.GetAt(depth-1, "this")
	if err != nil {
		return nil, err
	}
	instance := thisVal.(*Instance)

	method := super.FindMethod(expr.Method)
	if method == nil {
		return nil, runtimeErrorf(expr.LineNo, "Undefined method '%s'", expr.Method)
	}
	return method.Bind(instance), nil
}
