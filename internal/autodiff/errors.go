package autodiff

import "github.com/pkg/errors"

var (
	// ErrInvalidExponent is returned by Pow when the exponent is a graph node
	// instead of a real number.
	ErrInvalidExponent = errors.New("invalid exponent type: only real-number exponents are supported")

	// ErrNoTape reports an operation whose operands are all literals.
	ErrNoTape = errors.New("at least one operand must be a Value")
)
