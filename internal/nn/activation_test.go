package nn

import (
	"math"
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
)

// sigmoidRef computes sigmoid for testing.
func sigmoidRef(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func TestActivations(t *testing.T) {
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		tape := autodiff.NewTape()
		in := tape.Leaf(x)

		s := Sigmoid.Apply(in)
		assert.InDelta(t, sigmoidRef(x), s.Data(), 1e-12, "sigmoid(%g)", x)
		s.Backward()
		assert.InDelta(t, sigmoidRef(x)*(1-sigmoidRef(x)), in.Grad(), 1e-12)

		tape.ZeroGrad()
		th := Tanh.Apply(in)
		assert.InDelta(t, math.Tanh(x), th.Data(), 1e-12, "tanh(%g)", x)
		th.Backward()
		assert.InDelta(t, 1-math.Tanh(x)*math.Tanh(x), in.Grad(), 1e-12)

		assert.Equal(t, math.Max(0, x), ReLU.Apply(in).Data())
		assert.Equal(t, x, Linear.Apply(in).Data())
	}
}

func TestActivationByName(t *testing.T) {
	a, ok := ActivationByName("tanh")
	assert.True(t, ok)
	assert.Equal(t, "Tanh", a.Name)

	_, ok = ActivationByName("gelu")
	assert.False(t, ok)
}

func TestActivations_Saturation(t *testing.T) {
	for _, x := range []float64{-750, -400, 200, 354, 400} {
		tape := autodiff.NewTape()
		in := tape.Leaf(x)

		th := Tanh.Apply(in)
		assert.Equal(t, math.Tanh(x), th.Data(), "tanh(%g)", x)
		th.Backward()
		assert.InDelta(t, 0, in.Grad(), 1e-12, "tanh'(%g)", x)

		tape.ZeroGrad()
		s := Sigmoid.Apply(in)
		assert.False(t, math.IsNaN(s.Data()), "sigmoid(%g)", x)
		assert.InDelta(t, math.Max(0, math.Copysign(1, x)), s.Data(), 1e-12, "sigmoid(%g)", x)
		s.Backward()
		assert.InDelta(t, 0, in.Grad(), 1e-12, "sigmoid'(%g)", x)
	}
}

func TestActivations_SingleNode(t *testing.T) {
	tape := autodiff.NewTape()
	in := tape.Leaf(0.3)
	before := tape.Len()
	Tanh.Apply(in)
	Sigmoid.Apply(in)
	assert.Equal(t, before+2, tape.Len())
}
