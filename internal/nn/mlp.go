package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// MLPConfig holds configuration for a multilayer perceptron.
type MLPConfig struct {
	Inputs     int        // Number of inputs
	Outputs    []int      // Neurons per layer; the last entry is the output size
	Activation Activation // Hidden-layer activation (default: ReLU)
	Seed       int64      // Seed for weight initialization (0 uses the global source)
}

// MLP is a stack of fully connected layers. Hidden layers apply the
// configured activation, the last layer is linear.
//
// Example:
//
//	model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{16, 16, 1}})
//	tape := autodiff.NewTape()
//	score := model.Forward(tape, tape.Leaves(0.5, -1.0))[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates a new multilayer perceptron.
func NewMLP(config MLPConfig) *MLP {
	if config.Inputs <= 0 || len(config.Outputs) == 0 {
		exceptions.Panicf("NewMLP: need at least one input and one layer, got %d inputs and layers %v",
			config.Inputs, config.Outputs)
	}
	if config.Activation.Apply == nil {
		config.Activation = ReLU
	}
	var rng *rand.Rand
	if config.Seed != 0 {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		rng = rand.New(rand.NewSource(config.Seed))
	}

	sizes := append([]int{config.Inputs}, config.Outputs...)
	layers := make([]*Layer, len(config.Outputs))
	for i := range layers {
		act := config.Activation
		if i == len(layers)-1 {
			act = Linear
		}
		layers[i] = NewLayer(fmt.Sprintf("L%d", i), sizes[i], sizes[i+1], act, rng)
	}
	return &MLP{layers: layers}
}

// Forward runs inputs through every layer.
func (m *MLP) Forward(tape *autodiff.Tape, inputs []autodiff.Value) []autodiff.Value {
	x := inputs
	for _, l := range m.layers {
		x = l.Forward(tape, x)
	}
	return x
}

// Parameters returns all trainable parameters of the network.
//
// This is used by optimizers to update weights and biases during training.
func (m *MLP) Parameters() []*Parameter {
	params := make([]*Parameter, 0)
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad implements Module.
func (m *MLP) ZeroGrad() {
	ZeroGrad(m)
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}
