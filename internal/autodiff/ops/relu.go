package ops

import "math"

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if output > 0, else 0
//
// The mask keys on the output, so x == 0 passes no gradient.
type ReLUOp struct {
	input NodeID
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(input NodeID) *ReLUOp {
	return &ReLUOp{input: input}
}

// Inputs returns the operand [x].
func (op *ReLUOp) Inputs() []NodeID {
	return []NodeID{op.input}
}

// Forward returns max(0, x). NaN passes through.
func (op *ReLUOp) Forward(inputs []float64) float64 {
	return math.Max(0, inputs[0])
}

// Backward computes input gradient for ReLU.
func (op *ReLUOp) Backward(outputGrad, output float64, _ []float64) []float64 {
	if output > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}

// Label returns "ReLU".
func (op *ReLUOp) Label() string {
	return "ReLU"
}
