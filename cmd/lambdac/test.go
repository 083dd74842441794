package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nihei9/lambda/suite"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <fixture file path>|<fixture directory path>",
		Short:   "Run a set of input/expected-output fixtures",
		Example: `  lambdac test suite/testdata`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	cs := suite.ListCases(args[0])
	errOccurred := false
	for _, c := range cs {
		if c.Error != nil {
			fmt.Fprintf(os.Stderr, "Failed to read a fixture or a directory: %v\n%v\n", c.FilePath, c.Error)
			errOccurred = true
		}
	}
	if errOccurred {
		return errors.New("cannot run test")
	}

	s := &suite.Suite{Cases: cs}
	rs := s.Run()
	testFailed := false
	for _, r := range rs {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			testFailed = true
		}
	}
	if testFailed {
		return errors.New("test failed")
	}
	return nil
}
