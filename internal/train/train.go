// Package train runs full-batch gradient descent of an nn.Module over a
// dataset.
package train

import (
	"context"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/dataset"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config controls a training run.
type Config struct {
	Steps  int         // Number of optimization steps (default: 100)
	Alpha  float64     // L2 regularization strength (<= 0 disables)
	Loss   nn.LossFunc // Data loss (default: nn.Hinge)
	OnStep func(StepResult)
}

// StepResult reports the state after one step.
type StepResult struct {
	Step     int
	Loss     float64 // Total loss including regularization
	Accuracy float64 // Fraction of correctly signed scores
	LR       float64 // Learning rate used by the step
	Nodes    int     // Graph size of the step
}

// Result summarizes a finished run.
type Result struct {
	Steps      int
	Final      StepResult
	TotalNodes int // Nodes built over all steps
}

// Run trains model on data with opt.
//
// Each step rebuilds the graph on a reset tape: forward over every sample,
// loss = data loss + Alpha·L2, backward, optimizer step, zero gradients.
// Cancellation of ctx is checked between steps.
func Run(ctx context.Context, config Config, model nn.Module, data dataset.Dataset, opt optim.Optimizer) (Result, error) {
	if config.Steps <= 0 {
		config.Steps = 100
	}
	if config.Loss == nil {
		config.Loss = nn.Hinge
	}
	if data.Len() == 0 {
		return Result{}, errors.Errorf("dataset %q is empty", data.Name)
	}

	var result Result
	tape := autodiff.NewTape()
	labels := data.Labels()
	for step := range config.Steps {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, "training stopped at step %d", step)
		}

		tape.Reset()
		loss, scores := Loss(tape, config, model, data.Inputs(), labels)
		loss.Backward()

		stepResult := StepResult{
			Step:     step,
			Loss:     loss.Data(),
			Accuracy: nn.Accuracy(scores, labels),
			LR:       opt.GetLR(),
			Nodes:    tape.Len(),
		}
		opt.Step()
		opt.ZeroGrad()

		klog.V(1).Infof("step %d: loss=%.6f accuracy=%.1f%% lr=%.4f nodes=%d",
			step, stepResult.Loss, 100*stepResult.Accuracy, stepResult.LR, stepResult.Nodes)
		if config.OnStep != nil {
			config.OnStep(stepResult)
		}
		result.Steps = step + 1
		result.Final = stepResult
		result.TotalNodes += stepResult.Nodes
	}
	return result, nil
}

// Loss builds the regularized loss of model over inputs on tape and returns
// it with the model's first output for every input.
func Loss(tape *autodiff.Tape, config Config, model nn.Module, inputs [][]float64, labels []float64) (autodiff.Value, []autodiff.Value) {
	scores := make([]autodiff.Value, len(inputs))
	for i, x := range inputs {
		scores[i] = model.Forward(tape, tape.Leaves(x...))[0]
	}
	loss := config.Loss(scores, labels)
	if config.Alpha > 0 {
		loss = loss.Add(nn.L2(tape, model.Parameters()).Mul(autodiff.Scalar(config.Alpha)))
	}
	return loss, scores
}

// Evaluate returns the accuracy of model on data without building gradients
// into the model's parameters.
func Evaluate(model nn.Module, data dataset.Dataset) float64 {
	tape := autodiff.NewTape()
	scores := make([]autodiff.Value, data.Len())
	for i, s := range data.Samples {
		scores[i] = model.Forward(tape, tape.Leaves(s.X...))[0]
	}
	return nn.Accuracy(scores, data.Labels())
}
