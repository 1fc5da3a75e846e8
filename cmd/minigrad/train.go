package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/minigrad/internal/dataset"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/born-ml/minigrad/internal/train"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

func runTrain(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	var (
		flagDataset    = fs.String("dataset", envString("DATASET", "moons"), fmt.Sprintf("Dataset to train on: %v", dataset.Names()))
		flagSamples    = fs.Int("samples", envInt("SAMPLES", 100), "Number of samples to generate.")
		flagNoise      = fs.Float64("noise", envFloat("NOISE", 0.1), "Standard deviation of the noise added to samples.")
		flagHidden     = fs.String("hidden", envString("HIDDEN", "16,16"), "Comma-separated hidden layer sizes.")
		flagActivation = fs.String("activation", envString("ACTIVATION", "relu"), "Hidden activation: relu, tanh, sigmoid or linear.")
		flagLoss       = fs.String("loss", envString("LOSS", "hinge"), "Loss function: hinge or mse.")
		flagOptimizer  = fs.String("optimizer", envString("OPTIMIZER", "sgd"), "Optimizer: sgd or adam.")
		flagSteps      = fs.Int("steps", envInt("STEPS", 100), "Number of gradient descent steps.")
		flagLR         = fs.Float64("lr", envFloat("LR", 1.0), "Initial learning rate.")
		flagDecay      = fs.Float64("decay", envFloat("DECAY", 0.9), "Fraction of the SGD learning rate removed linearly over the run.")
		flagMomentum   = fs.Float64("momentum", envFloat("MOMENTUM", 0), "SGD momentum.")
		flagAlpha      = fs.Float64("alpha", envFloat("ALPHA", 1e-4), "L2 regularization strength; 0 disables it.")
		flagSeed       = fs.Int64("seed", int64(envInt("SEED", 1337)), "Seed for data generation and weight initialization.")
		flagProgress   = fs.Bool("progress", true, "Show a progress bar.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := dataset.ByName(*flagDataset, dataset.Config{Samples: *flagSamples, Noise: *flagNoise, Seed: *flagSeed})
	if err != nil {
		return err
	}
	hidden, err := parseSizes(*flagHidden)
	if err != nil {
		return err
	}
	act, ok := nn.ActivationByName(*flagActivation)
	if !ok {
		return errors.Errorf("unknown activation %q", *flagActivation)
	}
	loss, ok := nn.LossByName(*flagLoss)
	if !ok {
		return errors.Errorf("unknown loss %q", *flagLoss)
	}

	model := nn.NewMLP(nn.MLPConfig{
		Inputs:     len(data.Samples[0].X),
		Outputs:    append(hidden, 1),
		Activation: act,
		Seed:       *flagSeed,
	})
	params := model.Parameters()

	var opt optim.Optimizer
	switch *flagOptimizer {
	case "sgd":
		opt = optim.NewSGD(params, optim.SGDConfig{LR: *flagLR, Momentum: *flagMomentum, Decay: *flagDecay, Steps: *flagSteps})
	case "adam":
		opt = optim.NewAdam(params, optim.AdamConfig{LR: *flagLR})
	default:
		return errors.Errorf("unknown optimizer %q", *flagOptimizer)
	}

	klog.Infof("training %s on %s (%s samples, %s parameters)",
		model, data.Name, humanize.Comma(int64(data.Len())), humanize.Comma(int64(len(params))))

	var bar *progressbar.ProgressBar
	if *flagProgress {
		bar = progressbar.NewOptions(*flagSteps,
			progressbar.OptionSetDescription("training"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("steps"),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
		)
	}

	result, err := train.Run(ctx, train.Config{
		Steps: *flagSteps,
		Alpha: *flagAlpha,
		Loss:  loss,
		OnStep: func(r train.StepResult) {
			if bar == nil {
				return
			}
			bar.Describe(fmt.Sprintf("loss %.4f acc %.0f%%", r.Loss, 100*r.Accuracy))
			_ = bar.Add(1)
		},
	}, model, data, opt)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "steps:      %s\n", humanize.Comma(int64(result.Steps)))
	fmt.Fprintf(out, "parameters: %s\n", humanize.Comma(int64(len(params))))
	fmt.Fprintf(out, "graph:      %s nodes per step, %s total\n",
		humanize.Comma(int64(result.Final.Nodes)), humanize.Comma(int64(result.TotalNodes)))
	fmt.Fprintf(out, "loss:       %.6f\n", result.Final.Loss)
	fmt.Fprintf(out, "accuracy:   %.1f%%\n", 100*train.Evaluate(model, data))
	return nil
}

// parseSizes parses a comma-separated list of layer sizes; "" means none.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, errors.Errorf("invalid layer size %q in %q", p, s)
		}
		sizes[i] = n
	}
	return sizes, nil
}
