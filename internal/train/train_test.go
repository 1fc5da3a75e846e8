package train

import (
	"context"
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/dataset"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_LearnsMoons(t *testing.T) {
	data := dataset.Moons(dataset.Config{Samples: 60, Noise: 0.1, Seed: 3})
	model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{16, 16, 1}, Seed: 1337})
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1.0, Decay: 0.9, Steps: 60})

	var history []StepResult
	result, err := Run(context.Background(), Config{
		Steps:  60,
		Alpha:  1e-4,
		OnStep: func(r StepResult) { history = append(history, r) },
	}, model, data, opt)
	require.NoError(t, err)

	require.Len(t, history, 60)
	assert.Equal(t, 60, result.Steps)
	assert.Equal(t, history[59], result.Final)
	assert.Less(t, result.Final.Loss, history[0].Loss)
	assert.GreaterOrEqual(t, result.Final.Accuracy, 0.75)
	assert.Equal(t, 1.0, history[0].LR)
	assert.Positive(t, result.TotalNodes)
	assert.GreaterOrEqual(t, Evaluate(model, data), 0.75)
}

func TestRun_Cancelled(t *testing.T) {
	data := dataset.XOR(dataset.Config{Samples: 10})
	model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{4, 1}, Seed: 1})
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	_, err := Run(ctx, Config{Steps: 10, OnStep: func(StepResult) {
		steps++
		if steps == 3 {
			cancel()
		}
	}}, model, data, opt)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, steps)
}

func TestRun_EmptyDataset(t *testing.T) {
	model := nn.NewMLP(nn.MLPConfig{Inputs: 2, Outputs: []int{1}})
	_, err := Run(context.Background(), Config{}, model, dataset.Dataset{Name: "none"}, optim.NewSGD(nil, optim.SGDConfig{}))
	require.Error(t, err)
}

func TestLoss_Regularization(t *testing.T) {
	model := nn.NewMLP(nn.MLPConfig{Inputs: 1, Outputs: []int{1}, Seed: 5})
	params := model.Parameters()
	params[0].SetData(2)
	params[1].SetData(1)

	tape := autodiff.NewTape()
	inputs := [][]float64{{1}}
	labels := []float64{1}

	plain, scores := Loss(tape, Config{Loss: nn.MSE, Alpha: -1}, model, inputs, labels)
	require.Len(t, scores, 1)
	assert.Equal(t, 3.0, scores[0].Data())
	assert.Equal(t, 4.0, plain.Data()) // (3 - 1)²

	tape.Reset()
	reg, _ := Loss(tape, Config{Loss: nn.MSE, Alpha: 0.5}, model, inputs, labels)
	assert.Equal(t, 4.0+0.5*(4+1), reg.Data())

	// A zero strength adds no penalty term at all.
	tape.Reset()
	off, _ := Loss(tape, Config{Loss: nn.MSE}, model, inputs, labels)
	assert.Equal(t, 4.0, off.Data())
}
