package interp

import "fmt"

// RuntimeError is any error raised by the interpreter while executing a
// resolved program: a failed operand check, a bad call, or an undefined
// property. Line is the source line of the operation that failed.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func runtimeErrorf(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// UndefinedVariableError is raised by the Environment when a name is
// looked up or assigned in no enclosing frame.
type UndefinedVariableError struct{ Name string }

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable [%s]", e.Name)
}

// RedeclaringVariableError is raised by the Environment when Define finds
// the name already present in the exact same frame.
type RedeclaringVariableError struct{ Name string }

func (e *RedeclaringVariableError) Error() string {
	return fmt.Sprintf("Variable [%s] is already defined", e.Name)
}

// UninitializedVariableError is raised when a cell still holds the
// uninitialized sentinel.
type UninitializedVariableError struct{ Name string }

func (e *UninitializedVariableError) Error() string {
	return fmt.Sprintf("Uninitialized variable [%s]", e.Name)
}

// TypeErrorKind distinguishes the three binary/unary operand-checking
// failure shapes described for the interpreter's arithmetic and
// comparison operators.
type TypeErrorKind uint8

const (
	// InvalidOperand: a unary operator's single operand is not of the
	// required type.
	InvalidOperand TypeErrorKind = iota
	// OperandMismatch: a binary operator's two operands are of different
	// types.
	OperandMismatch
	// InvalidOperands: a binary operator's two operands share a type, but
	// it is not one the operator supports.
	InvalidOperands
)

// TypeError is raised by unary and binary operator evaluation.
type TypeError struct {
	Kind    TypeErrorKind
	Line    int
	Message string
}

func (e *TypeError) Error() string { return e.Message }

func invalidOperandError(line int, op, requiredType, typ string) *TypeError {
	return &TypeError{
		Kind:    InvalidOperand,
		Line:    line,
		Message: fmt.Sprintf("Operand of (%s) must be of type %s, %s given", op, requiredType, typ),
	}
}

func operandMismatchError(line int, op, leftType, rightType string) *TypeError {
	return &TypeError{
		Kind: OperandMismatch,
		Line: line,
		Message: fmt.Sprintf("Operands of (%s) must be of the same type. %s and %s given",
			op, leftType, rightType),
	}
}

func invalidOperandsError(line int, op, typ string) *TypeError {
	return &TypeError{
		Kind:    InvalidOperands,
		Line:    line,
		Message: fmt.Sprintf("Operands of (%s) are not supported for type %s", op, typ),
	}
}
