package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Layer is a fully connected layer of independent neurons sharing the same
// inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.N%d", name, i), nin, act, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(tape *autodiff.Tape, inputs []autodiff.Value) []autodiff.Value {
	outputs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Output(tape, inputs)
	}
	return outputs
}

// Parameters returns the parameters of every neuron, in order.
func (l *Layer) Parameters() []*Parameter {
	params := make([]*Parameter, 0)
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad implements Module.
func (l *Layer) ZeroGrad() {
	ZeroGrad(l)
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}
