// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Parameter represents a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// Modules

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs and U(-1, 1) weights.
func NewNeuron(name string, nin int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(name, nin, act, rng)
}

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(name, nin, nout, act, rng)
}

// MLP is a multilayer perceptron with a linear output layer.
type MLP = nn.MLP

// MLPConfig holds configuration for NewMLP.
type MLPConfig = nn.MLPConfig

// NewMLP creates a multilayer perceptron.
//
// Example:
//
//	model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{16, 16, 1}, Seed: 1337})
func NewMLP(config MLPConfig) *MLP {
	return nn.NewMLP(config)
}

// Activations

// Activation is a named scalar non-linearity.
type Activation = nn.Activation

var (
	// ReLU applies max(0, x).
	ReLU = nn.ReLU
	// Linear is the identity.
	Linear = nn.Linear
	// Sigmoid applies 1 / (1 + e^-x).
	Sigmoid = nn.Sigmoid
	// Tanh applies the hyperbolic tangent.
	Tanh = nn.Tanh
)

// Losses

// LossFunc maps predictions and targets to a scalar loss.
type LossFunc = nn.LossFunc

// MSE returns the mean squared error.
func MSE(predictions []autodiff.Value, targets []float64) autodiff.Value {
	return nn.MSE(predictions, targets)
}

// Hinge returns the mean max-margin loss for ±1 targets.
func Hinge(scores []autodiff.Value, targets []float64) autodiff.Value {
	return nn.Hinge(scores, targets)
}

// L2 returns the sum of squared parameters bound to tape.
func L2(tape *autodiff.Tape, params []*Parameter) autodiff.Value {
	return nn.L2(tape, params)
}

// Accuracy returns the fraction of scores whose sign matches the target.
func Accuracy(scores []autodiff.Value, targets []float64) float64 {
	return nn.Accuracy(scores, targets)
}
