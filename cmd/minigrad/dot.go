package main

import (
	"flag"
	"io"
	"math/rand"
	"os"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/pkg/errors"
)

func runDot(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	flagExpr := fs.String("expr", "muladd", "Expression to render: muladd (a*b+c) or neuron.")
	flagOutput := fs.String("o", "", "Output file; stdout if empty.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tape := autodiff.NewTape()
	var root autodiff.Value
	switch *flagExpr {
	case "muladd":
		a := tape.NamedLeaf("a", 2)
		b := tape.NamedLeaf("b", -3)
		c := tape.NamedLeaf("c", 10)
		root = a.Mul(b).Add(c)
	case "neuron":
		n := nn.NewNeuron("n", 2, nn.Tanh, rand.New(rand.NewSource(1)))
		x := []autodiff.Value{tape.NamedLeaf("x0", 2), tape.NamedLeaf("x1", 0)}
		root = n.Output(tape, x)
	default:
		return errors.Errorf("unknown expression %q", *flagExpr)
	}
	root.Backward()

	if *flagOutput == "" {
		return autodiff.WriteDOT(out, root)
	}
	f, err := os.Create(*flagOutput)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", *flagOutput)
	}
	if err := autodiff.WriteDOT(f, root); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close %s", *flagOutput)
}
