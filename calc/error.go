package calc

import (
	"fmt"
)

// ErrorCode identifies a kind of evaluation error.
type ErrorCode int

// These constants are used to identify a specific EvalError.
const (
	// ErrUnknownOpcode indicates a request carried an opcode this server
	// does not implement.
	ErrUnknownOpcode ErrorCode = iota

	// ErrDivideByZero indicates a division or modulo with a zero divisor.
	ErrDivideByZero

	// ErrShiftRange indicates a shift count outside the width of the
	// operand type.
	ErrShiftRange
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownOpcode: "ErrUnknownOpcode",
	ErrDivideByZero:  "ErrDivideByZero",
	ErrShiftRange:    "ErrShiftRange",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// EvalError identifies an evaluation failure. The caller can use errors.As
// to determine if a failure was due to the calculation itself and access the
// ErrorCode field to ascertain the specific reason.
type EvalError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e EvalError) Error() string {
	return e.Description
}

// evalError creates an EvalError given a set of arguments.
func evalError(c ErrorCode, desc string) EvalError {
	return EvalError{ErrorCode: c, Description: desc}
}
