package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/nihei9/lambda/progspec"
	"github.com/nihei9/lambda/term"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe [compiled program]",
		Short:   "Print a compiled program's symbols and body in readable form",
		Example: `  lambdac describe program.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open the compiled program %s: %w", args[0], err)
	}
	defer f.Close()

	cp, err := progspec.Read(f)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cp.Symbols))
	for name := range cp.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("# Symbols")
	fmt.Println()
	if len(names) == 0 {
		fmt.Println("(none)")
	}
	for _, name := range names {
		t, err := progspec.FromWire(cp.Symbols[name])
		if err != nil {
			return err
		}
		fmt.Printf("%v := %v\n", name, term.String(t))
	}

	fmt.Println()
	fmt.Println("# Body")
	fmt.Println()
	body, err := progspec.FromWire(cp.Body)
	if err != nil {
		return err
	}
	fmt.Printf("term:        %v\n", term.String(body))

	free := term.FreeVars(body).Slice()
	sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })
	fmt.Printf("free vars:   %v\n", free)
	fmt.Printf("has numeral sugar: %v\n", containsNumeral(body))

	return nil
}

func containsNumeral(t term.Term) bool {
	switch n := t.(type) {
	case *term.Var:
		return n.Name.IsNumeral()
	case *term.Abs:
		return containsNumeral(n.Body)
	case *term.App:
		return containsNumeral(n.Fun) || containsNumeral(n.Arg)
	default:
		return false
	}
}
