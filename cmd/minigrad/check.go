package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/gradcheck"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

type expression struct {
	name  string
	f     gradcheck.Func
	point []float64
}

var expressions = []expression{
	{"a*b+c", func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return x[0].Mul(x[1]).Add(x[2])
	}, []float64{2, -3, 10}},
	{"a*a+b", func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return x[0].Mul(x[0]).Add(x[1])
	}, []float64{1.7, -0.4}},
	{"1/x", func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return x[0].RDiv(autodiff.Scalar(1))
	}, []float64{4}},
	{"x^3-relu(y)", func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return must.M1(autodiff.Pow(x[0], autodiff.Scalar(3))).Sub(x[1].ReLU())
	}, []float64{-1.2, 0.8}},
	{"2^x*e^y", func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return x[0].ExpBase(2).Mul(x[1].Exp())
	}, []float64{0.5, -1}},
	{"sigmoid", func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return nn.Sigmoid.Apply(x[0])
	}, []float64{0.3}},
	{"tanh(x/y)", func(_ *autodiff.Tape, x []autodiff.Value) autodiff.Value {
		return nn.Tanh.Apply(x[0].Div(x[1]))
	}, []float64{0.9, 1.5}},
}

func runCheck(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	cfg := gradcheck.DefaultConfig()
	fs.Float64Var(&cfg.Epsilon, "eps", cfg.Epsilon, "Finite-difference step.")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "Allowed absolute/relative error.")
	fs.IntVar(&cfg.Parallel.NumWorkers, "workers", cfg.Parallel.NumWorkers, "Worker goroutines for finite differences.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EXPRESSION\tPOINT\tRESULT")
	failed := 0
	for _, e := range expressions {
		res := gradcheck.Check(e.f, e.point, cfg)
		if !res.Passed {
			failed++
		}
		fmt.Fprintf(tw, "%s\t%v\t%s\n", e.name, e.point, res)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write results")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d gradient checks failed", failed, len(expressions))
	}
	return nil
}
