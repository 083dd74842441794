// Package reducer implements the driver described in spec.md §4.8: a
// symbol table plus the reduce-to-normal-form loop that wraps
// term.Step, producing the trace and summary format of §6.
package reducer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nihei9/lambda/term"
)

// ErrStepBudgetExceeded is returned by Reduce when MaxSteps is positive
// and the loop runs that many single steps without reaching a normal
// form. This bound is a host-level concern (spec.md §5, §7); the loop
// itself is unbounded when MaxSteps is 0.
var ErrStepBudgetExceeded = errors.New("reducer: step budget exceeded")

// Reducer owns the symbol table used to delta-expand free variables
// during reduction.
type Reducer struct {
	syms term.SymbolTable

	// MaxSteps bounds the number of single steps Reduce will perform
	// before giving up with ErrStepBudgetExceeded. Zero means unbounded.
	MaxSteps int
}

// New returns a Reducer with an empty symbol table.
func New() *Reducer {
	return &Reducer{syms: term.SymbolTable{}}
}

// RegisterSymbol takes ownership of t and binds it to name, overwriting
// any previous binding.
func (r *Reducer) RegisterSymbol(name term.Name, t term.Term) {
	r.syms[name] = t
}

// Reduce deep-clones root, then repeatedly steps it to a normal form,
// writing the trace and summary described in spec.md §6 to sink. When
// emitSteps is false, step lines are suppressed but the echo, summary,
// and timing are still written.
func (r *Reducer) Reduce(root term.Term, sink io.Writer, emitSteps bool) (term.Term, error) {
	original := term.String(root)
	cur := term.Clone(root)

	fmt.Fprintf(sink, "%s\n\n", original)

	start := time.Now()
	steps := 0
	charCount := 0
	for {
		next, kind := term.Step(cur, r.syms, nil)
		if kind == term.None {
			break
		}
		if r.MaxSteps > 0 && steps >= r.MaxSteps {
			return cur, ErrStepBudgetExceeded
		}
		cur = next
		steps++
		if emitSteps {
			line := kind.Header() + term.String(cur)
			fmt.Fprintf(sink, "%s\n", line)
			charCount += len(line)
		}
	}
	elapsed := time.Since(start)

	fmt.Fprintf(sink, "\n")
	fmt.Fprintf(sink, "to be sought:     %s\n", original)
	fmt.Fprintf(sink, "result:           %s\n", term.String(cur))
	fmt.Fprintf(sink, "step taken:       %d\n", steps)
	if emitSteps {
		fmt.Fprintf(sink, "character count:  %d\n", charCount)
	}
	fmt.Fprintf(sink, "time cost:        %dms\n", elapsed.Milliseconds())
	fmt.Fprintf(sink, "\n")

	return cur, nil
}
