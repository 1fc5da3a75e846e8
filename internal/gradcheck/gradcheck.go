// Package gradcheck verifies autodiff gradients against central finite
// differences.
package gradcheck

import (
	"fmt"
	"math"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/parallel"
	"github.com/gomlx/exceptions"
)

// Func builds a scalar expression of its inputs on tape.
//
// It is called once per probe, possibly concurrently, each time with a fresh
// tape, so it must not share graph state between calls.
type Func func(tape *autodiff.Tape, inputs []autodiff.Value) autodiff.Value

// Config controls a gradient check.
type Config struct {
	Epsilon   float64         // Finite-difference step (default: 1e-6)
	Tolerance float64         // Allowed error, absolute or relative (default: 1e-4)
	Parallel  parallel.Config // How probes are spread over workers
}

// DefaultConfig returns the default check configuration.
func DefaultConfig() Config {
	return Config{
		Epsilon:   1e-6,
		Tolerance: 1e-4,
		Parallel:  parallel.DefaultConfig(),
	}
}

// Result holds the outcome of a check.
type Result struct {
	Value    float64   // f(point)
	Analytic []float64 // Gradients from Backward
	Numeric  []float64 // Central finite differences
	MaxError float64   // Largest per-coordinate error (see errorAt)
	Passed   bool      // MaxError <= Tolerance
}

// String implements fmt.Stringer.
func (r Result) String() string {
	status := "ok"
	if !r.Passed {
		status = "FAILED"
	}
	return fmt.Sprintf("f=%.6g max_err=%.3g %s", r.Value, r.MaxError, status)
}

// Check compares the gradients of f at point computed by Backward with
// central finite differences.
func Check(f Func, point []float64, config Config) Result {
	if len(point) == 0 {
		exceptions.Panicf("gradcheck: empty point")
	}
	if config.Epsilon == 0 {
		config.Epsilon = 1e-6
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-4
	}

	tape := autodiff.NewTape()
	inputs := tape.Leaves(point...)
	out := f(tape, inputs)
	out.Backward()

	result := Result{
		Value:    out.Data(),
		Analytic: make([]float64, len(point)),
	}
	for i, in := range inputs {
		result.Analytic[i] = in.Grad()
	}

	eps := config.Epsilon
	result.Numeric = parallel.Map(len(point), func(i int) float64 {
		return (evaluate(f, point, i, eps) - evaluate(f, point, i, -eps)) / (2 * eps)
	}, config.Parallel)

	for i := range point {
		result.MaxError = math.Max(result.MaxError, errorAt(result.Analytic[i], result.Numeric[i]))
	}
	result.Passed = result.MaxError <= config.Tolerance
	return result
}

// evaluate returns f at point with coordinate i shifted by delta.
func evaluate(f Func, point []float64, i int, delta float64) float64 {
	shifted := make([]float64, len(point))
	copy(shifted, point)
	shifted[i] += delta
	tape := autodiff.NewTape()
	return f(tape, tape.Leaves(shifted...)).Data()
}

// errorAt is the absolute error for small gradients and the relative error
// otherwise.
func errorAt(analytic, numeric float64) float64 {
	diff := math.Abs(analytic - numeric)
	scale := math.Max(math.Abs(analytic), math.Abs(numeric))
	if scale > 1 {
		return diff / scale
	}
	return diff
}
