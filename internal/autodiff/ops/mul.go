package ops

// MulOp represents a multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	inputs [2]NodeID // [a, b]
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b NodeID) *MulOp {
	return &MulOp{inputs: [2]NodeID{a, b}}
}

// Inputs returns the operands [a, b].
func (op *MulOp) Inputs() []NodeID {
	return op.inputs[:]
}

// Forward returns a * b.
func (op *MulOp) Forward(inputs []float64) float64 {
	return inputs[0] * inputs[1]
}

// Backward computes operand gradients for multiplication.
func (op *MulOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	a, b := inputs[0], inputs[1]
	return []float64{b * outputGrad, a * outputGrad}
}

// Label returns "*".
func (op *MulOp) Label() string {
	return "*"
}
