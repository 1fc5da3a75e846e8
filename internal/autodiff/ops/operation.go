// Package ops defines the differentiable scalar operations recorded on a tape.
//
// Each operation is a small value type carrying the IDs of its operands and
// any constant it needs (the exponent of PowOp, the base of ExpOp). The tape
// dispatches on the Operation interface during the backward pass instead of
// storing a closure per node.
//
// Supported operations:
//   - AddOp: a + b (d/da = 1, d/db = 1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - PowOp: a^p for a constant p (d/da = p * a^(p-1))
//   - ReLUOp: max(0, a) (d/da = 1 if output > 0, else 0)
//   - ExpOp: base^a for a constant base (d/da = output * ln(base))
package ops

// NodeID addresses a node in a tape's arena.
type NodeID int

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Inputs returns the operand of each slot, in order.
	//
	// The same node may fill several slots (x * x); the backward pass adds one
	// contribution per slot.
	Inputs() []NodeID

	// Forward computes the output value from the operand values, one per slot.
	Forward(inputs []float64) float64

	// Backward returns the gradient contribution for each input slot.
	//
	// Example for MulOp:
	//   inputs: [a, b]
	//   returns: [b * outputGrad, a * outputGrad]
	Backward(outputGrad, output float64, inputs []float64) []float64

	// Label is a short human-readable tag, used for display only.
	Label() string
}
