package ops

// AddOp represents an addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	inputs [2]NodeID // [a, b]
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b NodeID) *AddOp {
	return &AddOp{inputs: [2]NodeID{a, b}}
}

// Inputs returns the operands [a, b].
func (op *AddOp) Inputs() []NodeID {
	return op.inputs[:]
}

// Forward returns a + b.
func (op *AddOp) Forward(inputs []float64) float64 {
	return inputs[0] + inputs[1]
}

// Backward passes the output gradient through unchanged to both operands.
func (op *AddOp) Backward(outputGrad, _ float64, _ []float64) []float64 {
	return []float64{outputGrad, outputGrad}
}

// Label returns "+".
func (op *AddOp) Label() string {
	return "+"
}
