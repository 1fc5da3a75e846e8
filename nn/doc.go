// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar autodiff.
//
// # Overview
//
// This package contains:
//   - Modules: Neuron, Layer, MLP
//   - Activations: ReLU, Linear, Sigmoid, Tanh
//   - Loss functions: MSE, Hinge, L2 regularization
//   - Utilities: Module interface, Parameter
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/minigrad/autodiff"
//	    "github.com/born-ml/minigrad/nn"
//	)
//
//	func main() {
//	    model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{16, 16, 1}})
//
//	    tape := autodiff.NewTape()
//	    score := model.Forward(tape, tape.Leaves(0.5, -1.0))[0]
//	    loss := nn.Hinge([]autodiff.Value{score}, []float64{1})
//	    loss.Backward()
//	}
//
// # Parameters
//
// Values in a graph never change, so a Parameter keeps its data outside the
// graph and binds a fresh leaf to each tape. Optimizers read Grad() after
// Backward and write the new value with SetData.
package nn
