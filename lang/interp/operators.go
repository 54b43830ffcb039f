package interp

import (
	"strings"

	"github.com/lumen-lang/lumen/lang/ast"
	"github.com/lumen-lang/lumen/lang/token"
)

// valueClass reports the coarse type-check class of v: "nil", "bool",
// "number" (both Int and Float), "string", or its own Type() for anything
// else (callables, instances). Arithmetic and comparison operators check
// mismatches at this granularity, not at the Int-vs-Float granularity.
func valueClass(v Value) string {
	switch v.(type) {
	case Nil:
		return "nil"
	case Bool:
		return "bool"
	case Int, Float:
		return "number"
	case String:
		return "string"
	default:
		return v.Type()
	}
}

func (in *Interpreter) evaluateUnary(expr *ast.UnaryExpr) (Value, error) {
	right, err := in.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case token.MINUS:
		switch v := right.(type) {
		case Int:
			return -v, nil
		case Float:
			return -v, nil
		default:
			return nil, invalidOperandError(expr.LineNo, expr.Op.String(), "number", v.Type())
		}
	case token.BANG:
		b, ok := right.(Bool)
		if !ok {
			return nil, invalidOperandError(expr.LineNo, expr.Op.String(), "bool", right.Type())
		}
		return !b, nil
	default:
		panic("interp: unexpected unary operator " + expr.Op.String())
	}
}

func (in *Interpreter) evaluateBinary(expr *ast.BinaryExpr) (Value, error) {
	left, err := in.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case token.EQ_EQ:
		return Bool(valuesEqual(left, right)), nil
	case token.BANG_EQ:
		return Bool(!valuesEqual(left, right)), nil
	case token.PLUS:
		return in.evaluateAdd(expr.LineNo, left, right)
	case token.MINUS:
		return in.evaluateSubtract(expr.LineNo, left, right)
	case token.STAR:
		return in.evaluateMultiply(expr.LineNo, left, right)
	case token.SLASH:
		return in.numericBinary(expr.LineNo, "/", left, right, func(a, b float64) float64 { return a / b })
	case token.LT:
		return in.comparisonBinary(expr.LineNo, "<", left, right, func(a, b float64) bool { return a < b })
	case token.LT_EQ:
		return in.comparisonBinary(expr.LineNo, "<=", left, right, func(a, b float64) bool { return a <= b })
	case token.GT:
		return in.comparisonBinary(expr.LineNo, ">", left, right, func(a, b float64) bool { return a > b })
	case token.GT_EQ:
		return in.comparisonBinary(expr.LineNo, ">=", left, right, func(a, b float64) bool { return a >= b })
	default:
		panic("interp: unexpected binary operator " + expr.Op.String())
	}
}

func (in *Interpreter) evaluateAdd(line int, left, right Value) (Value, error) {
	if lc, rc := valueClass(left), valueClass(right); lc == "number" && rc == "number" {
		return numericAdd(left, right), nil
	} else if ls, lok := left.(String); lok {
		if rs, rok := right.(String); rok {
			return ls + rs, nil
		}
		return nil, mismatchOrInvalid(line, "+", lc, rc)
	} else {
		return nil, mismatchOrInvalid(line, "+", lc, rc)
	}
}

// evaluateSubtract implements numeric subtraction, and for two strings the
// deliberate "string subtraction" operator: every occurrence of the right
// operand removed from the left, via strings.ReplaceAll.
func (in *Interpreter) evaluateSubtract(line int, left, right Value) (Value, error) {
	lc, rc := valueClass(left), valueClass(right)
	if lc == "number" && rc == "number" {
		return numericSub(left, right), nil
	}
	if ls, lok := left.(String); lok {
		if rs, rok := right.(String); rok {
			return String(strings.ReplaceAll(string(ls), string(rs), "")), nil
		}
	}
	return nil, mismatchOrInvalid(line, "-", lc, rc)
}

// evaluateMultiply implements *, defined only on numbers (never on
// strings, unlike + and -).
func (in *Interpreter) evaluateMultiply(line int, left, right Value) (Value, error) {
	lc, rc := valueClass(left), valueClass(right)
	if lc != "number" || rc != "number" {
		return nil, mismatchOrInvalid(line, "*", lc, rc)
	}
	if li, ok := left.(Int); ok {
		if ri, ok := right.(Int); ok {
			return li * ri, nil
		}
	}
	return Float(numberToFloat(left) * numberToFloat(right)), nil
}

func mismatchOrInvalid(line int, op, lc, rc string) error {
	if lc != rc {
		return operandMismatchError(line, op, lc, rc)
	}
	return invalidOperandsError(line, op, lc)
}

// numericAdd and numericSub promote to Float whenever either operand is a
// Float, matching the source language's own mixed-arithmetic promotion
// rule (see the design notes on mixed integer/float arithmetic); two Ints
// stay Int.
func numericAdd(left, right Value) Value {
	if li, ok := left.(Int); ok {
		if ri, ok := right.(Int); ok {
			return li + ri
		}
	}
	return Float(numberToFloat(left) + numberToFloat(right))
}

func numericSub(left, right Value) Value {
	if li, ok := left.(Int); ok {
		if ri, ok := right.(Int); ok {
			return li - ri
		}
	}
	return Float(numberToFloat(left) - numberToFloat(right))
}

func numberToFloat(v Value) float64 {
	switch v := v.(type) {
	case Int:
		return float64(v)
	case Float:
		return float64(v)
	default:
		panic("interp: numberToFloat of non-number")
	}
}

// numericBinary implements /, which this language always evaluates in
// floating point regardless of operand kind (true division, no truncation
// surprise for two Ints). * goes through evaluateMultiply instead.
func (in *Interpreter) numericBinary(line int, op string, left, right Value, fn func(a, b float64) float64) (Value, error) {
	lc, rc := valueClass(left), valueClass(right)
	if lc != "number" || rc != "number" {
		return nil, mismatchOrInvalid(line, op, lc, rc)
	}
	return Float(fn(numberToFloat(left), numberToFloat(right))), nil
}

func (in *Interpreter) comparisonBinary(line int, op string, left, right Value, fn func(a, b float64) bool) (Value, error) {
	lc, rc := valueClass(left), valueClass(right)
	if lc != "number" || rc != "number" {
		return nil, mismatchOrInvalid(line, op, lc, rc)
	}
	return Bool(fn(numberToFloat(left), numberToFloat(right))), nil
}

// valuesEqual implements == and !=, which never raise regardless of
// operand types: values of different types compare unequal, and nil
// equals nil only.
func valuesEqual(left, right Value) bool {
	switch l := left.(type) {
	case Nil:
		_, ok := right.(Nil)
		return ok
	case Bool:
		r, ok := right.(Bool)
		return ok && l == r
	case Int:
		switch r := right.(type) {
		case Int:
			return l == r
		case Float:
			return float64(l) == float64(r)
		default:
			return false
		}
	case Float:
		switch r := right.(type) {
		case Int:
			return float64(l) == float64(r)
		case Float:
			return l == r
		default:
			return false
		}
	case String:
		r, ok := right.(String)
		return ok && l == r
	default:
		return left == right
	}
}
