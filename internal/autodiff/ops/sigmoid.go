package ops

import "math"

// SigmoidOp represents the sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
//
// Backward pass:
//   - dσ/dx = σ(x) * (1 - σ(x))
//   - grad_input = grad_output * output * (1 - output)
type SigmoidOp struct {
	input NodeID
}

// NewSigmoidOp creates a new SigmoidOp.
func NewSigmoidOp(input NodeID) *SigmoidOp {
	return &SigmoidOp{input: input}
}

// Inputs returns the operand [x].
func (op *SigmoidOp) Inputs() []NodeID {
	return []NodeID{op.input}
}

// Forward returns σ(x).
//
// exp is only taken of a non-positive argument, so it never overflows.
func (op *SigmoidOp) Forward(inputs []float64) float64 {
	x := inputs[0]
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// Backward computes the gradient from the output alone.
func (op *SigmoidOp) Backward(outputGrad, output float64, _ []float64) []float64 {
	return []float64{output * (1 - output) * outputGrad}
}

// Label returns "sigmoid".
func (op *SigmoidOp) Label() string {
	return "sigmoid"
}
