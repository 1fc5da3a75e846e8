// Package main provides the minigrad CLI.
//
// Usage:
//
//	minigrad [-v=N] [-env=FILE] <command> [flags]
//
// Commands:
//
//	version    Show version
//	train      Train an MLP on a synthetic 2-D dataset
//	check      Compare autodiff gradients with finite differences
//	dot        Print the Graphviz graph of a sample expression
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var flagEnvFile = flag.String("env", "", "Optional .env file with MINIGRAD_* defaults. If empty, ./.env is used when present.")

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	if err := loadEnv(*flagEnvFile); err != nil {
		klog.Exitf("%+v", err)
	}
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, flag.Arg(0), flag.Args()[1:], os.Stdout)
	stop()
	if err != nil {
		klog.Errorf("%s: %v", flag.Arg(0), err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// run dispatches a subcommand.
func run(ctx context.Context, command string, args []string, out io.Writer) error {
	switch command {
	case "version":
		fmt.Fprintf(out, "minigrad %s\n", version)
		return nil
	case "train":
		return runTrain(ctx, args, out)
	case "check":
		return runCheck(args, out)
	case "dot":
		return runDot(args, out)
	default:
		return errors.Errorf("unknown command %q", command)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "minigrad %s - scalar autodiff and MLP training\n\n", version)
	fmt.Fprintf(w, "Usage: %s [flags] <command> [command flags]\n\n", os.Args[0])
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train an MLP on a synthetic 2-D dataset")
	fmt.Fprintln(w, "  check      Compare autodiff gradients with finite differences")
	fmt.Fprintln(w, "  dot        Print the Graphviz graph of a sample expression")
	fmt.Fprintln(w, "\nFlags:")
	flag.PrintDefaults()
}
