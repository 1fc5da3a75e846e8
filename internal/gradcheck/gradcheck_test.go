package gradcheck

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/parallel"
	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polynomial(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
	// x0²·x1 + x1/x2 - relu(x0 - x2)
	return x[0].Pow(2).Mul(x[1]).Add(x[1].Div(x[2])).Sub(x[0].Sub(x[2]).ReLU())
}

func TestCheck_Passes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parallel = parallel.Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1}

	res := Check(polynomial, []float64{1.5, -2, 0.5}, cfg)
	require.True(t, res.Passed, res.String())
	assert.Len(t, res.Analytic, 3)
	assert.Len(t, res.Numeric, 3)

	// d/dx0 = 2·x0·x1 - 1 (relu active since x0 > x2)
	assert.InDelta(t, 2*1.5*-2-1, res.Analytic[0], 1e-12)
	// d/dx1 = x0² + 1/x2
	assert.InDelta(t, 1.5*1.5+2, res.Analytic[1], 1e-12)
	assert.Contains(t, res.String(), "ok")
}

func TestCheck_DetectsWrongGradient(t *testing.T) {
	// Rebuilding the graph from detached data hides the dependency on x[0]
	// from Backward while finite differences still see it.
	detached := func(tape *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		c := tape.Leaf(x[0].Data())
		return c.Mul(c).Add(x[1])
	}

	res := Check(detached, []float64{3, 1}, DefaultConfig())
	assert.False(t, res.Passed)
	assert.Equal(t, 0.0, res.Analytic[0])
	assert.InDelta(t, 6.0, res.Numeric[0], 1e-4)
	assert.Contains(t, res.String(), "FAILED")
}

func TestCheck_Sequential(t *testing.T) {
	cfg := Config{Parallel: parallel.Config{Enabled: false}}
	res := Check(func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return x[0].Exp()
	}, []float64{0.3}, cfg)
	assert.True(t, res.Passed, res.String())
}

func TestCheck_EmptyPoint(t *testing.T) {
	err := exceptions.TryCatch[error](func() { Check(polynomial, nil, DefaultConfig()) })
	require.Error(t, err)
}

func TestErrorAt(t *testing.T) {
	assert.InDelta(t, 0.1, errorAt(0.1, 0.2), 1e-12)
	assert.InDelta(t, 0.5, errorAt(10, 20), 1e-12)
}
