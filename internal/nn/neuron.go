package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// Neuron computes act(Σ wᵢ·xᵢ + b).
//
// Weights are initialized from U(-1, 1) and the bias to 0.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
	act     Activation
}

// NewNeuron creates a neuron with nin inputs.
//
// Parameters are named "<name>.w<i>" and "<name>.b".
func NewNeuron(name string, nin int, act Activation, rng *rand.Rand) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), Uniform(rng, -1, 1))
	}
	return &Neuron{
		weights: weights,
		bias:    NewParameter(name+".b", 0),
		act:     act,
	}
}

// Output returns the activation of the neuron for inputs.
func (n *Neuron) Output(tape *autodiff.Tape, inputs []autodiff.Value) autodiff.Value {
	if len(inputs) != len(n.weights) {
		exceptions.Panicf("Neuron: got %d inputs, want %d", len(inputs), len(n.weights))
	}
	sum := n.bias.Bind(tape)
	for i, w := range n.weights {
		sum = sum.Add(w.Bind(tape).Mul(inputs[i]))
	}
	return n.act.Apply(sum)
}

// Forward implements Module; it returns a single output.
func (n *Neuron) Forward(tape *autodiff.Tape, inputs []autodiff.Value) []autodiff.Value {
	return []autodiff.Value{n.Output(tape, inputs)}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad implements Module.
func (n *Neuron) ZeroGrad() {
	ZeroGrad(n)
}

// Activation returns the activation applied by the neuron.
func (n *Neuron) Activation() Activation {
	return n.act
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(n_in=%d, activation=%s)", len(n.weights), n.act.Name)
}
