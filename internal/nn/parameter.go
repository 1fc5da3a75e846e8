package nn

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Parameter represents a trainable scalar in a neural network.
//
// Graph values are immutable, so a Parameter keeps its current data outside
// the graph and is bound to a tape as a fresh leaf on each forward pass. The
// gradient read after Backward is the gradient of that leaf.
//
// Example:
//
//	w := nn.NewParameter("w0", 0.3)
//	tape := autodiff.NewTape()
//	loss := w.Bind(tape).Mul(autodiff.Scalar(2))
//	loss.Backward()
//	w.Grad() // 2
type Parameter struct {
	name string         // Parameter name (e.g., "L0.N1.w0", "L0.N1.b")
	data float64        // Current value, updated by optimizers
	node autodiff.Value // Leaf from the latest Bind
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name: name,
		data: data,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current value.
func (p *Parameter) Data() float64 {
	return p.data
}

// SetData replaces the current value. The change is seen by the next Bind
// on a new or reset tape.
func (p *Parameter) SetData(data float64) {
	p.data = data
}

// Bind returns the leaf holding p on tape, creating it on first use.
//
// Repeated calls with the same tape return the same leaf, so gradients from
// every use within one forward pass accumulate into it.
func (p *Parameter) Bind(tape *autodiff.Tape) autodiff.Value {
	if p.node.IsValid() && p.node.Tape() == tape {
		return p.node
	}
	p.node = tape.NamedLeaf(p.name, p.data)
	return p.node
}

// Grad returns the gradient of the bound leaf.
//
// Returns 0 if p was never bound or its tape was reset.
func (p *Parameter) Grad() float64 {
	if !p.node.IsValid() {
		return 0
	}
	return p.node.Grad()
}

// ZeroGrad clears the gradient of the bound leaf.
func (p *Parameter) ZeroGrad() {
	if p.node.IsValid() {
		p.node.ZeroGrad()
	}
}

// String implements fmt.Stringer.
func (p *Parameter) String() string {
	return fmt.Sprintf("Parameter(%s, data=%g, grad=%g)", p.name, p.data, p.Grad())
}
