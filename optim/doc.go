// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum and linear LR decay
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/minigrad/autodiff"
//	    "github.com/born-ml/minigrad/nn"
//	    "github.com/born-ml/minigrad/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{16, 1}})
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    tape := autodiff.NewTape()
//	    for step := 0; step < 100; step++ {
//	        tape.Reset()
//	        scores := []autodiff.Value{model.Forward(tape, tape.Leaves(x...))[0]}
//	        loss := nn.Hinge(scores, []float64{y})
//	        loss.Backward()
//
//	        optimizer.Step()
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Gradients
//
// Optimizers read each parameter's gradient from the leaf it was bound to on
// the last tape, so Step must run after Backward and before the tape is reset.
package optim
