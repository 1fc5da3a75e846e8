package nn

import (
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Activation is a named scalar non-linearity applied by neurons.
type Activation struct {
	Name  string
	Apply func(autodiff.Value) autodiff.Value
}

// ReLU applies max(0, x).
var ReLU = Activation{Name: "ReLU", Apply: autodiff.Value.ReLU}

// Linear leaves its input unchanged.
var Linear = Activation{Name: "Linear", Apply: func(x autodiff.Value) autodiff.Value { return x }}

// Sigmoid applies 1 / (1 + e^-x).
var Sigmoid = Activation{Name: "Sigmoid", Apply: autodiff.Value.Sigmoid}

// Tanh applies the hyperbolic tangent.
var Tanh = Activation{Name: "Tanh", Apply: autodiff.Value.Tanh}

// ActivationByName looks up one of the built-in activations, ignoring case.
func ActivationByName(name string) (Activation, bool) {
	for _, a := range []Activation{ReLU, Linear, Sigmoid, Tanh} {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Activation{}, false
}
