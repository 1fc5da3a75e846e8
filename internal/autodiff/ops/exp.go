package ops

import (
	"math"
	"strconv"
)

// ExpOp represents exponentiation with a constant base: y = base^x.
//
// Backward pass:
//   - d(base^x)/dx = base^x * ln(base) = y * ln(base)
//   - grad_input = grad_output * output * ln(base)
//
// A base <= 0 is not guarded; ln yields NaN or -Inf.
type ExpOp struct {
	input NodeID
	base  float64
}

// NewExpOp creates a new ExpOp. Use math.E for the natural exponential.
func NewExpOp(input NodeID, base float64) *ExpOp {
	return &ExpOp{input: input, base: base}
}

// Base returns the constant base.
func (op *ExpOp) Base() float64 {
	return op.base
}

// Inputs returns the operand [x].
func (op *ExpOp) Inputs() []NodeID {
	return []NodeID{op.input}
}

// Forward returns base^x.
func (op *ExpOp) Forward(inputs []float64) float64 {
	if op.base == math.E {
		return math.Exp(inputs[0])
	}
	return math.Pow(op.base, inputs[0])
}

// Backward computes input gradient for base^x.
//
// The output already holds base^x, so only ln(base) is computed here.
func (op *ExpOp) Backward(outputGrad, output float64, _ []float64) []float64 {
	return []float64{output * math.Log(op.base) * outputGrad}
}

// Label returns "exp" for base e and "b^" otherwise.
func (op *ExpOp) Label() string {
	if op.base == math.E {
		return "exp"
	}
	return strconv.FormatFloat(op.base, 'g', -1, 64) + "^"
}
