// Package interp implements the runtime value model and the recursive
// tree-walking evaluator that executes a resolved program.
package interp

import "strconv"

// Value is any runtime value: Nil, Bool, Int, Float, String, or a Callable
// (Native, *Function, or *Class), plus *Instance.
type Value interface {
	// String renders the value the way the print statement and string
	// concatenation show it.
	String() string
	// Type is the type name used in error messages: "nil", "bool", "number"
	// or "string". Callables report their own descriptive type name.
	Type() string
}

// Nil is the sole value of nil type.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }

// Bool is a boolean value.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) Type() string { return "bool" }

// Int is an integer number value.
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (Int) Type() string     { return "number" }

// Float is a floating-point number value.
type Float float64

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (Float) Type() string     { return "number" }

// String is a string value.
type String string

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// truthOf reports the bool carried by v, requiring v to be a Bool; callers
// that need strict type checking (if/while conditions, ternary, logical)
// go through this rather than a permissive truthiness rule — this language
// has none.
func truthOf(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// isNumber reports whether v is Int or Float.
func isNumber(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	default:
		return false
	}
}
