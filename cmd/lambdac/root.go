package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lambdac",
	Short: "Compile and reduce untyped lambda calculus programs",
	Long: `lambdac provides:
- A compiler from the concrete lambda syntax into a portable, JSON-encoded program.
- A reducer that drives a compiled program to normal form and reports a trace.
- A fixture-based test runner for sets of input/expected-output pairs.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
