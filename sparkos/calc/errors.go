package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedExpression reports a buffer that is not an alternating
	// operand/operator sequence ending in an operand.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrDivisionByZero reports a ÷ step whose right operand is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOutOfRange reports a result or operand that does not fit a float64.
	ErrOutOfRange = errors.New("result out of range")
)

// EvalError is returned by Evaluate.
//
// Pos is the index (in characters) into Expr where evaluation failed; it is
// len(Expr) for a missing trailing operand.
type EvalError struct {
	Expr string
	Pos  int
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %v at %d", e.Expr, e.Err, e.Pos)
}

func (e *EvalError) Unwrap() error { return e.Err }
