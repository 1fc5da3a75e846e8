// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"testing"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/nn"
	"github.com/born-ml/minigrad/optim"
	"github.com/stretchr/testify/assert"
)

func TestOptimizers(t *testing.T) {
	for name, build := range map[string]func([]*nn.Parameter) optim.Optimizer{
		"sgd":  func(p []*nn.Parameter) optim.Optimizer { return optim.NewSGD(p, optim.SGDConfig{LR: 0.1}) },
		"adam": func(p []*nn.Parameter) optim.Optimizer { return optim.NewAdam(p, optim.AdamConfig{LR: 0.1}) },
	} {
		t.Run(name, func(t *testing.T) {
			w := nn.NewParameter("w", 1)
			opt := build([]*nn.Parameter{w})

			tape := autodiff.NewTape()
			w.Bind(tape).Pow(2).Backward()
			opt.Step()
			opt.ZeroGrad()

			assert.Less(t, w.Data(), 1.0)
			assert.Equal(t, 0.0, w.Grad())
			assert.Equal(t, 0.1, opt.GetLR())
		})
	}
}
