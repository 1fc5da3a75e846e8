// Package nn implements neural network modules on top of the scalar autodiff
// engine.
//
// This package provides building blocks for small multilayer perceptrons:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable scalar bound to a tape each forward pass
//   - Neuron, Layer, MLP: Fully connected building blocks
//   - Activations: ReLU, Linear, Sigmoid, Tanh
//   - Loss functions: MSE, Hinge, L2 regularization
package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{16, 16, 1}})
//	tape := autodiff.NewTape()
//	scores := model.Forward(tape, tape.Leaves(0.5, -1.0))
type Module interface {
	// Forward computes the outputs of the module for the given inputs.
	//
	// Parameters are bound to tape as leaves; inputs must live on tape too.
	Forward(tape *autodiff.Tape, inputs []autodiff.Value) []autodiff.Value

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules.
	Parameters() []*Parameter

	// ZeroGrad resets the gradient of every parameter.
	ZeroGrad()
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
