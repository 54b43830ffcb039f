package interp

import "fmt"

// Native is a callable implemented by the interpreter host, such as clock
// or sleep, rather than by a user declaration.
type Native struct {
	NativeName string
	NativeAr   int
	Fn         func(in *Interpreter, args []Value) (Value, error)
}

func (n Native) String() string          { return fmt.Sprintf("<native fun %s>", n.Name()) }
func (n Native) Type() string            { return "native function" }
func (n Native) Arity() int              { return n.NativeAr }
func (n Native) Name() string            { return n.NativeName }
func (n Native) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}
