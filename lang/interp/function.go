package interp

import (
	"fmt"

	"github.com/lumen-lang/lumen/lang/ast"
)

// Function is a user function: a declaration (parameters, body) closed
// over the environment active when the declaration was executed. A method
// additionally carries IsInitializer and, once bound to an instance, a
// fresh closure with `this` defined in it.
type Function struct {
	FuncName      string
	Params        []string
	Body          []ast.Stmt
	Closure       *Environment
	IsInitializer bool
}

func (fn *Function) String() string { return fmt.Sprintf("<fun %s>", fn.Name()) }

func (fn *Function) Type() string { return "function" }
func (fn *Function) Arity() int   { return len(fn.Params) }

// Name reports the function's declared name, or "anonymous" for an
// unnamed function or lambda expression.
func (fn *Function) Name() string {
	if fn.FuncName == "" {
		return "anonymous"
	}
	return fn.FuncName
}

// Bind returns a copy of fn whose closure is a fresh child of fn's own
// closure with `this` defined to instance, the mechanism that turns a
// class method lookup into a bound method value.
func (fn *Function) Bind(instance *Instance) *Function {
	env := fn.Closure.Child()
	env.Define("this", instance) //nolint:errcheck // fresh frame, cannot already hold "this"
	return &Function{
		FuncName:      fn.FuncName,
		Params:        fn.Params,
		Body:          fn.Body,
		Closure:       env,
		IsInitializer: fn.IsInitializer,
	}
}

// Call executes fn's body in a fresh frame parented at its closure, with
// parameters bound to args. A normal completion returns Nil; a return
// signal yields its value; an initializer always returns the instance
// bound as `this` regardless of what was returned.
func (fn *Function) Call(in *Interpreter, args []Value) (Value, error) {
	callEnv := fn.Closure.Child()
	for i, p := range fn.Params {
		callEnv.Define(p, args[i]) //nolint:errcheck // fresh frame, params are distinct names
	}

	result, err := in.executeBlockCatchingReturn(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this")
	}
	if result == nil {
		return Nil{}, nil
	}
	return result, nil
}
