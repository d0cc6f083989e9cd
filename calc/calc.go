package calc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/csdt/netcalc/wire"
)

// maxShift is the largest shift count the shift opcodes accept. Operands are
// 64 bits wide, so anything past 63 either panics or has no defined meaning.
const maxShift = 63

// Evaluate performs the calculation selected by op on the two operands.
//
// Addition, subtraction and multiplication wrap around per two's complement.
// Division truncates toward zero, and dividing the most negative value by -1
// wraps back to the dividend. Right shifts of negative values are
// arithmetic, keeping the sign. For the shift opcodes operandA is the value
// and operandB is the shift count.
func Evaluate(op wire.Opcode, operandA, operandB int64) (int64, error) {
	switch op {
	case wire.OpAdd:
		return operandA + operandB, nil

	case wire.OpSubtract:
		return operandA - operandB, nil

	case wire.OpMultiply:
		return operandA * operandB, nil

	case wire.OpDivide:
		if operandB == 0 {
			return 0, evalError(ErrDivideByZero, "division by zero")
		}
		return operandA / operandB, nil

	case wire.OpModulo:
		if operandB == 0 {
			return 0, evalError(ErrDivideByZero, "modulo by zero")
		}
		return operandA % operandB, nil

	case wire.OpShiftLeft:
		if operandB < 0 || operandB > maxShift {
			return 0, evalError(ErrShiftRange, fmt.Sprintf(
				"shift count must be between 0 and %d -- got [%d]", maxShift, operandB))
		}
		return operandA << uint(operandB), nil

	case wire.OpShiftRight:
		if operandB < 0 || operandB > maxShift {
			return 0, evalError(ErrShiftRange, fmt.Sprintf(
				"shift count must be between 0 and %d -- got [%d]", maxShift, operandB))
		}
		return operandA >> uint(operandB), nil

	case wire.OpAnd:
		return operandA & operandB, nil

	case wire.OpOr:
		return operandA | operandB, nil

	case wire.OpXor:
		return operandA ^ operandB, nil
	}

	return 0, evalError(ErrUnknownOpcode, fmt.Sprintf(
		"opcode [%d] is not supported", uint8(op)))
}

// StatusOf maps an evaluation error to the wire status a response should
// carry. A nil error maps to StatusOK.
func StatusOf(err error) wire.Status {
	if err == nil {
		return wire.StatusOK
	}
	var evalErr EvalError
	if !errors.As(err, &evalErr) {
		return wire.StatusUnknownOpcode
	}
	switch evalErr.ErrorCode {
	case ErrDivideByZero:
		return wire.StatusDivideByZero
	case ErrShiftRange:
		return wire.StatusShiftRange
	default:
		return wire.StatusUnknownOpcode
	}
}
