package ops

import "math"

// TanhOp represents the hyperbolic tangent activation: output = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x)
//   - grad_input = grad_output * (1 - output²)
type TanhOp struct {
	input NodeID
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(input NodeID) *TanhOp {
	return &TanhOp{input: input}
}

// Inputs returns the operand [x].
func (op *TanhOp) Inputs() []NodeID {
	return []NodeID{op.input}
}

// Forward returns tanh(x). It saturates to ±1 instead of overflowing.
func (op *TanhOp) Forward(inputs []float64) float64 {
	return math.Tanh(inputs[0])
}

// Backward computes the gradient from the output alone.
func (op *TanhOp) Backward(outputGrad, output float64, _ []float64) []float64 {
	return []float64{(1 - output*output) * outputGrad}
}

// Label returns "tanh".
func (op *TanhOp) Label() string {
	return "tanh"
}
