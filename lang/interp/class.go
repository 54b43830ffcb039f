package interp

import "fmt"

// Class is a callable that carries a name, an optional superclass, and a
// mapping from method name to user function. Calling a class constructs
// an instance.
type Class struct {
	ClassName  string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.ClassName) }
func (c *Class) Type() string   { return "class" }

// Arity is the arity of the class's init method, or zero if it defines
// none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// FindMethod walks the superclass chain looking for name, returning the
// unbound Function or nil.
func (c *Class) FindMethod(name string) *Function {
	if fn, ok := c.Methods[name]; ok {
		return fn
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Call constructs a new instance; if the class chain defines an init
// method, it is bound to the instance and called with args.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
