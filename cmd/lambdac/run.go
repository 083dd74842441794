package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/lambda/progspec"
	"github.com/nihei9/lambda/reducer"
	"github.com/spf13/cobra"
)

var runFlags = struct {
	output   *string
	steps    *bool
	maxSteps *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "run [compiled program]",
		Short:   "Reduce a compiled program to normal form",
		Example: `  lambdac run program.json -i`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRun,
	}
	runFlags.output = cmd.Flags().StringP("output", "o", "", "write the trace to this file instead of stdout")
	runFlags.steps = cmd.Flags().BoolP("steps", "i", false, "emit each reduction step in the trace")
	runFlags.maxSteps = cmd.Flags().Int("max-steps", 0, "abort after this many steps (0 = unbounded)")
	rootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open the compiled program %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	cp, err := progspec.Read(in)
	if err != nil {
		return err
	}
	body, err := progspec.FromWire(cp.Body)
	if err != nil {
		return err
	}
	syms, err := cp.ToSymbolTable()
	if err != nil {
		return err
	}

	r := reducer.New()
	for name, t := range syms {
		r.RegisterSymbol(name, t)
	}
	r.MaxSteps = *runFlags.maxSteps

	var out io.Writer = os.Stdout
	if *runFlags.output != "" {
		f, err := os.OpenFile(*runFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	_, err = r.Reduce(body, out, *runFlags.steps)
	if err != nil {
		return fmt.Errorf("reduction stopped: %w", err)
	}
	return nil
}
