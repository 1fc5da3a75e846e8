package ops

import (
	"math"
	"strconv"
)

// PowOp raises its operand to a constant power: output = a^p.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1)
//
// a == 0 with p < 1 is not guarded and yields Inf or NaN.
type PowOp struct {
	input    NodeID
	exponent float64
}

// NewPowOp creates a new PowOp.
func NewPowOp(a NodeID, exponent float64) *PowOp {
	return &PowOp{input: a, exponent: exponent}
}

// Exponent returns the constant exponent p.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}

// Inputs returns the operand [a].
func (op *PowOp) Inputs() []NodeID {
	return []NodeID{op.input}
}

// Forward returns a^p.
func (op *PowOp) Forward(inputs []float64) float64 {
	return math.Pow(inputs[0], op.exponent)
}

// Backward computes p * a^(p-1) * outputGrad.
func (op *PowOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	p := op.exponent
	return []float64{p * math.Pow(inputs[0], p-1) * outputGrad}
}

// Label returns "^p", e.g. "^2" or "^-1".
func (op *PowOp) Label() string {
	return "^" + strconv.FormatFloat(op.exponent, 'g', -1, 64)
}
