package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// LossFunc maps predictions and ±1 (or real-valued) targets to a scalar loss.
type LossFunc func(predictions []autodiff.Value, targets []float64) autodiff.Value

// MSE returns mean((prediction - target)²).
func MSE(predictions []autodiff.Value, targets []float64) autodiff.Value {
	checkLossInputs("MSE", predictions, targets)
	terms := make([]autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = p.Sub(autodiff.Scalar(targets[i])).Pow(2)
	}
	return mean(terms)
}

// Hinge returns the max-margin loss mean(relu(1 - target·score)) for ±1
// targets.
func Hinge(scores []autodiff.Value, targets []float64) autodiff.Value {
	checkLossInputs("Hinge", scores, targets)
	terms := make([]autodiff.Value, len(scores))
	for i, s := range scores {
		terms[i] = s.Mul(autodiff.Scalar(-targets[i])).Add(autodiff.Scalar(1)).ReLU()
	}
	return mean(terms)
}

// L2 returns Σ p² over params, bound to tape.
func L2(tape *autodiff.Tape, params []*Parameter) autodiff.Value {
	if len(params) == 0 {
		return tape.Leaf(0)
	}
	terms := make([]autodiff.Value, len(params))
	for i, p := range params {
		w := p.Bind(tape)
		terms[i] = w.Mul(w)
	}
	return autodiff.Sum(terms...)
}

// Accuracy returns the fraction of scores whose sign matches the ±1 target.
func Accuracy(scores []autodiff.Value, targets []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	correct := 0
	for i, s := range scores {
		if (s.Data() > 0) == (targets[i] > 0) {
			correct++
		}
	}
	return float64(correct) / float64(len(scores))
}

// LossByName looks up one of the built-in losses.
func LossByName(name string) (LossFunc, bool) {
	switch name {
	case "hinge":
		return Hinge, true
	case "mse":
		return MSE, true
	}
	return nil, false
}

func mean(terms []autodiff.Value) autodiff.Value {
	return autodiff.Sum(terms...).Mul(autodiff.Scalar(1 / float64(len(terms))))
}

func checkLossInputs(name string, predictions []autodiff.Value, targets []float64) {
	if len(predictions) == 0 || len(predictions) != len(targets) {
		exceptions.Panicf("%s: got %d predictions and %d targets", name, len(predictions), len(targets))
	}
}
