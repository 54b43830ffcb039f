package interp

import "github.com/dolthub/swiss"

// cell is a variable's storage slot. A cell with initialized == false is
// the "uninitialized" sentinel described for `var x;` without an
// initializer: get raises UninitializedVariable, assign succeeds and
// transitions the cell.
type cell struct {
	value       Value
	initialized bool
}

// Environment is a single scope frame: a name-to-value mapping plus an
// optional parent frame. Frames are shared; a closure holds a long-lived
// reference to the frame that was current when its declaration executed,
// and mutations through one reference are visible through every other
// reference to the same frame.
type Environment struct {
	values *swiss.Map[string, cell]
	parent *Environment
}

// NewEnvironment creates a root frame with no parent, used once for the
// interpreter's globals.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, cell](8)}
}

// Child allocates a new frame whose parent is env.
func (env *Environment) Child() *Environment {
	return &Environment{values: swiss.NewMap[string, cell](4), parent: env}
}

// Define inserts name into this frame, initialized with value. It returns
// a RedeclaringVariable error if name already exists in this exact frame.
func (env *Environment) Define(name string, value Value) error {
	if _, ok := env.values.Get(name); ok {
		return &RedeclaringVariableError{Name: name}
	}
	env.values.Put(name, cell{value: value, initialized: true})
	return nil
}

// DefineUninitialized inserts name into this frame without a value, for
// `var x;` with no initializer.
func (env *Environment) DefineUninitialized(name string) error {
	if _, ok := env.values.Get(name); ok {
		return &RedeclaringVariableError{Name: name}
	}
	env.values.Put(name, cell{})
	return nil
}

// Get finds the nearest enclosing frame holding name and returns its
// value, or an UndefinedVariable / UninitializedVariable error.
func (env *Environment) Get(name string) (Value, error) {
	for e := env; e != nil; e = e.parent {
		if c, ok := e.values.Get(name); ok {
			if !c.initialized {
				return nil, &UninitializedVariableError{Name: name}
			}
			return c.value, nil
		}
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign finds the nearest enclosing frame holding name and replaces its
// value, or returns an UndefinedVariable error if none holds it.
func (env *Environment) Assign(name string, value Value) error {
	for e := env; e != nil; e = e.parent {
		if _, ok := e.values.Get(name); ok {
			e.values.Put(name, cell{value: value, initialized: true})
			return nil
		}
	}
	return &UndefinedVariableError{Name: name}
}

// ancestor walks exactly depth parents outward from env.
func (env *Environment) ancestor(depth int) *Environment {
	e := env
	for i := 0; i < depth; i++ {
		e = e.parent
	}
	return e
}

// GetAt walks exactly depth parents, then reads name from that frame's own
// map with no further fallback. Used for every reference the resolver
// bound to a depth.
func (env *Environment) GetAt(depth int, name string) (Value, error) {
	e := env.ancestor(depth)
	c, ok := e.values.Get(name)
	if !ok {
		return nil, &UndefinedVariableError{Name: name}
	}
	if !c.initialized {
		return nil, &UninitializedVariableError{Name: name}
	}
	return c.value, nil
}

// AssignAt walks exactly depth parents, then writes name into that frame's
// own map.
func (env *Environment) AssignAt(depth int, name string, value Value) {
	e := env.ancestor(depth)
	e.values.Put(name, cell{value: value, initialized: true})
}
