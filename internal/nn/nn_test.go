package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParameter_Bind tests that a parameter binds once per tape.
func TestParameter_Bind(t *testing.T) {
	p := NewParameter("w", 0.5)
	assert.Equal(t, 0.0, p.Grad(), "unbound parameter has no gradient")

	tape := autodiff.NewTape()
	a := p.Bind(tape)
	b := p.Bind(tape)
	require.Equal(t, a.ID(), b.ID())
	assert.Equal(t, "w", a.Label())

	// Two uses accumulate into the same leaf.
	out := a.Mul(autodiff.Scalar(3)).Add(b.Mul(autodiff.Scalar(4)))
	out.Backward()
	assert.Equal(t, 7.0, p.Grad())

	p.ZeroGrad()
	assert.Equal(t, 0.0, p.Grad())

	p.SetData(2)
	tape.Reset()
	assert.Equal(t, 0.0, p.Grad(), "reset tape drops the binding")
	assert.Equal(t, 2.0, p.Bind(tape).Data())
}

// TestNeuron_Parameters tests that weights and bias are all returned.
func TestNeuron_Parameters(t *testing.T) {
	n := NewNeuron("N", 3, ReLU, rand.New(rand.NewSource(1)))
	params := n.Parameters()
	require.Len(t, params, 4)
	assert.Equal(t, "N.w0", params[0].Name())
	assert.Equal(t, "N.b", params[3].Name())
	assert.Equal(t, 0.0, params[3].Data())
	for _, p := range params[:3] {
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
	}
	assert.Equal(t, "Neuron(n_in=3, activation=ReLU)", n.String())
}

// TestNeuron_Output tests act(w·x + b) and its gradients.
func TestNeuron_Output(t *testing.T) {
	n := NewNeuron("N", 2, Linear, nil)
	params := n.Parameters()
	params[0].SetData(2)
	params[1].SetData(-1)
	params[2].SetData(0.5)

	tape := autodiff.NewTape()
	x := tape.Leaves(3, 4)
	out := n.Output(tape, x)
	assert.Equal(t, 2*3-4+0.5, out.Data())

	out.Backward()
	assert.Equal(t, 3.0, params[0].Grad())
	assert.Equal(t, 4.0, params[1].Grad())
	assert.Equal(t, 1.0, params[2].Grad())
	assert.Equal(t, 2.0, x[0].Grad())
	assert.Equal(t, -1.0, x[1].Grad())

	n.ZeroGrad()
	for _, p := range params {
		assert.Equal(t, 0.0, p.Grad())
	}
}

// TestNeuron_InputMismatch tests the input size check.
func TestNeuron_InputMismatch(t *testing.T) {
	n := NewNeuron("N", 2, ReLU, nil)
	tape := autodiff.NewTape()
	err := exceptions.TryCatch[error](func() { n.Output(tape, tape.Leaves(1)) })
	require.Error(t, err)
}

// TestLayer tests output size and parameter collection.
func TestLayer(t *testing.T) {
	l := NewLayer("L0", 3, 4, ReLU, rand.New(rand.NewSource(2)))
	require.Len(t, l.Neurons(), 4)
	assert.Len(t, l.Parameters(), 4*(3+1))

	tape := autodiff.NewTape()
	out := l.Forward(tape, tape.Leaves(1, 2, 3))
	require.Len(t, out, 4)
	for _, o := range out {
		assert.GreaterOrEqual(t, o.Data(), 0.0)
	}
	assert.Contains(t, l.String(), "Layer of [Neuron(n_in=3")
}

// TestMLP tests the layer structure of an MLP.
func TestMLP(t *testing.T) {
	m := NewMLP(MLPConfig{Inputs: 2, Outputs: []int{16, 16, 1}, Seed: 42})
	layers := m.Layers()
	require.Len(t, layers, 3)
	assert.Len(t, layers[0].Neurons(), 16)
	assert.Len(t, layers[2].Neurons(), 1)
	assert.Equal(t, "ReLU", layers[0].Neurons()[0].Activation().Name)
	assert.Equal(t, "Linear", layers[2].Neurons()[0].Activation().Name)
	assert.Len(t, m.Parameters(), (2+1)*16+(16+1)*16+(16+1)*1)

	tape := autodiff.NewTape()
	out := m.Forward(tape, tape.Leaves(0.5, -0.25))
	require.Len(t, out, 1)

	out[0].Backward()
	nonZero := 0
	for _, p := range m.Parameters() {
		if p.Grad() != 0 {
			nonZero++
		}
	}
	assert.Positive(t, nonZero)

	m.ZeroGrad()
	for _, p := range m.Parameters() {
		require.Equal(t, 0.0, p.Grad())
	}
}

// TestMLP_Deterministic tests that a seed reproduces the weights.
func TestMLP_Deterministic(t *testing.T) {
	a := NewMLP(MLPConfig{Inputs: 3, Outputs: []int{4, 1}, Seed: 7})
	b := NewMLP(MLPConfig{Inputs: 3, Outputs: []int{4, 1}, Seed: 7})
	pa, pb := a.Parameters(), b.Parameters()
	require.Equal(t, len(pa), len(pb))
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
		assert.Equal(t, pa[i].Name(), pb[i].Name())
	}
}

// TestMLP_InvalidConfig tests configuration validation.
func TestMLP_InvalidConfig(t *testing.T) {
	err := exceptions.TryCatch[error](func() { NewMLP(MLPConfig{Inputs: 2}) })
	require.Error(t, err)
}

// TestLosses tests MSE, Hinge and L2 values and gradients.
func TestLosses(t *testing.T) {
	tape := autodiff.NewTape()
	preds := tape.Leaves(1, -2)

	mse := MSE(preds, []float64{0, 0})
	assert.Equal(t, (1.0+4.0)/2, mse.Data())
	mse.Backward()
	assert.Equal(t, 1.0, preds[0].Grad()) // 2*1/2
	assert.Equal(t, -2.0, preds[1].Grad())

	tape.ZeroGrad()
	hinge := Hinge(preds, []float64{1, 1})
	// relu(1-1) = 0, relu(1+2) = 3
	assert.Equal(t, 1.5, hinge.Data())
	hinge.Backward()
	assert.Equal(t, 0.0, preds[0].Grad())
	assert.Equal(t, -0.5, preds[1].Grad())

	params := []*Parameter{NewParameter("a", 3), NewParameter("b", -1)}
	l2 := L2(tape, params)
	assert.Equal(t, 10.0, l2.Data())
	l2.Backward()
	assert.Equal(t, 6.0, params[0].Grad())
	assert.Equal(t, -2.0, params[1].Grad())

	assert.Equal(t, 0.0, L2(tape, nil).Data())
	assert.Equal(t, 0.5, Accuracy(preds, []float64{1, 1}))

	err := exceptions.TryCatch[error](func() { MSE(preds, []float64{1}) })
	require.Error(t, err)
}

// TestLossByName tests the loss lookup.
func TestLossByName(t *testing.T) {
	_, ok := LossByName("hinge")
	assert.True(t, ok)
	_, ok = LossByName("mse")
	assert.True(t, ok)
	_, ok = LossByName("huber")
	assert.False(t, ok)
}

// TestUniform tests the initialization range.
func TestUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 1000 {
		v := Uniform(rng, -2, 5)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 5.0)
	}
	assert.False(t, math.IsNaN(Uniform(nil, 0, 1)))
}
