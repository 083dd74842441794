// Package suite implements a fixture-based regression test runner for
// lambda programs, grounded in the teacher's tester package: JSON test
// cases, a Run that produces one Result per case, and a Passed/Failed
// reporting line format.
package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nihei9/lambda/reducer"
	"github.com/nihei9/lambda/syntax"
	"github.com/nihei9/lambda/term"
)

// Case is a single fixture: an optional symbol table, an input term,
// and the expected normal form (compared up to alpha-equivalence, per
// spec.md §8 property 5).
type Case struct {
	Name    string            `json:"name"`
	Symbols map[string]string `json:"symbols,omitempty"`
	Input   string            `json:"input"`
	Want    string            `json:"want"`
}

// Result reports the outcome of running one Case.
type Result struct {
	CasePath string
	CaseName string
	Error    error
}

func (r *Result) String() string {
	if r.Error != nil {
		return fmt.Sprintf("Failed %v (%v): %v", r.CaseName, r.CasePath, r.Error)
	}
	return fmt.Sprintf("Passed %v (%v)", r.CaseName, r.CasePath)
}

// CaseWithMetadata pairs a parsed Case with the file it came from, or
// the error encountered while loading it.
type CaseWithMetadata struct {
	Case     *Case
	FilePath string
	Error    error
}

// ListCases walks testPath (a file or a directory) and loads every
// *.json fixture it finds.
func ListCases(testPath string) []*CaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*CaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	if !fi.IsDir() {
		c, err := parseCase(testPath)
		return []*CaseWithMetadata{{Case: c, FilePath: testPath, Error: err}}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*CaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	var cases []*CaseWithMetadata
	for _, e := range es {
		p := filepath.Join(testPath, e.Name())
		if e.IsDir() {
			cases = append(cases, ListCases(p)...)
			continue
		}
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		c, err := parseCase(p)
		cases = append(cases, &CaseWithMetadata{Case: c, FilePath: p, Error: err})
	}
	return cases
}

func parseCase(path string) (*Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCase(f)
}

// ParseCase decodes a single JSON fixture from r.
func ParseCase(r io.Reader) (*Case, error) {
	var c Case
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Suite runs a list of loaded cases.
type Suite struct {
	Cases []*CaseWithMetadata
}

// Run reduces every case's input to normal form and compares it against
// Want up to alpha-equivalence.
func (s *Suite) Run() []*Result {
	var rs []*Result
	for _, c := range s.Cases {
		rs = append(rs, runCase(c))
	}
	return rs
}

func runCase(c *CaseWithMetadata) *Result {
	name := ""
	if c.Case != nil {
		name = c.Case.Name
	}
	if c.Error != nil {
		return &Result{CasePath: c.FilePath, CaseName: name, Error: c.Error}
	}

	r := reducer.New()
	for symName, symSrc := range c.Case.Symbols {
		symProg, err := syntax.Parse(symSrc)
		if err != nil {
			return &Result{CasePath: c.FilePath, CaseName: name, Error: fmt.Errorf("symbol %q: %w", symName, err)}
		}
		r.RegisterSymbol(term.Name(symName), symProg.Body)
	}

	inputProg, err := syntax.Parse(c.Case.Input)
	if err != nil {
		return &Result{CasePath: c.FilePath, CaseName: name, Error: fmt.Errorf("input: %w", err)}
	}
	wantProg, err := syntax.Parse(c.Case.Want)
	if err != nil {
		return &Result{CasePath: c.FilePath, CaseName: name, Error: fmt.Errorf("want: %w", err)}
	}

	got, err := r.Reduce(inputProg.Body, io.Discard, false)
	if err != nil {
		return &Result{CasePath: c.FilePath, CaseName: name, Error: err}
	}
	if !term.AlphaEqual(got, wantProg.Body) {
		return &Result{
			CasePath: c.FilePath,
			CaseName: name,
			Error:    fmt.Errorf("got %v, want %v (up to alpha-equivalence)", term.String(got), term.String(wantProg.Body)),
		}
	}
	return &Result{CasePath: c.FilePath, CaseName: name}
}
