package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/nihei9/lambda/progspec"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile [source file]",
		Short:   "Compile a lambda program into a portable JSON artifact",
		Example: `  lambdac compile program.lambda -o program.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	var src []byte
	var err error
	if len(args) > 0 {
		src, err = ioutil.ReadFile(args[0])
	} else {
		src, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("cannot read the source: %w", err)
	}

	cp, err := progspec.Compile(string(src))
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if *compileFlags.output != "" {
		f, err := os.OpenFile(*compileFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return cp.Write(out)
}
