// Package progspec defines the JSON-serializable artifact produced by
// "compile" and consumed by "run", mirroring the teacher's split between
// an in-memory grammar.Grammar and its on-disk spec.CompiledGrammar.
package progspec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nihei9/lambda/syntax"
	"github.com/nihei9/lambda/term"
)

// WireTerm is the JSON-tagged union mirroring term.Term. Only the
// shape-specific fields of the shape selected by Kind are populated.
type WireTerm struct {
	Kind string `json:"kind"`

	// Var
	Name string `json:"name,omitempty"`

	// Abs
	Binder string    `json:"binder,omitempty"`
	Body   *WireTerm `json:"body,omitempty"`

	// App
	Fun *WireTerm `json:"fun,omitempty"`
	Arg *WireTerm `json:"arg,omitempty"`

	// Priority is carried on every node ("neutral", "eager", "lazy").
	Priority string `json:"priority,omitempty"`
}

// CompiledProgram is the artifact written by "compile" and read by "run".
type CompiledProgram struct {
	Symbols map[string]*WireTerm `json:"symbols"`
	Body    *WireTerm            `json:"body"`
}

// Compile parses src and serializes the result into a CompiledProgram.
func Compile(src string) (*CompiledProgram, error) {
	prog, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}
	cp := &CompiledProgram{Symbols: map[string]*WireTerm{}}
	for _, def := range prog.Defs {
		cp.Symbols[string(def.Name)] = ToWire(def.Term)
	}
	cp.Body = ToWire(prog.Body)
	return cp, nil
}

// Write serializes cp as indented JSON to w.
func (cp *CompiledProgram) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cp)
}

// Read deserializes a CompiledProgram from r.
func Read(r io.Reader) (*CompiledProgram, error) {
	var cp CompiledProgram
	if err := json.NewDecoder(r).Decode(&cp); err != nil {
		return nil, fmt.Errorf("progspec: decode: %w", err)
	}
	return &cp, nil
}

// ToWire converts an in-memory term.Term into its wire representation.
func ToWire(t term.Term) *WireTerm {
	w := &WireTerm{Priority: term.PriorityOf(t).String()}
	switch n := t.(type) {
	case *term.Var:
		w.Kind = "var"
		w.Name = string(n.Name)
	case *term.Abs:
		w.Kind = "abs"
		w.Binder = string(n.Binder)
		w.Body = ToWire(n.Body)
	case *term.App:
		w.Kind = "app"
		w.Fun = ToWire(n.Fun)
		w.Arg = ToWire(n.Arg)
	default:
		panic("progspec: ToWire: unreachable term variant")
	}
	return w
}

// FromWire converts a wire representation back into an in-memory
// term.Term, restoring priority annotations.
func FromWire(w *WireTerm) (term.Term, error) {
	var t term.Term
	switch w.Kind {
	case "var":
		t = term.NewVar(term.Name(w.Name))
	case "abs":
		body, err := FromWire(w.Body)
		if err != nil {
			return nil, err
		}
		t = term.NewAbs(term.Name(w.Binder), body)
	case "app":
		fun, err := FromWire(w.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := FromWire(w.Arg)
		if err != nil {
			return nil, err
		}
		t = term.NewApp(fun, arg)
	default:
		return nil, fmt.Errorf("progspec: unknown term kind %q", w.Kind)
	}
	switch w.Priority {
	case "eager":
		term.SetPriority(t, term.Eager)
	case "lazy":
		term.SetPriority(t, term.Lazy)
	}
	return t, nil
}

// ToSymbolTable builds a term.SymbolTable from cp.Symbols.
func (cp *CompiledProgram) ToSymbolTable() (term.SymbolTable, error) {
	syms := term.SymbolTable{}
	for name, w := range cp.Symbols {
		t, err := FromWire(w)
		if err != nil {
			return nil, fmt.Errorf("progspec: symbol %q: %w", name, err)
		}
		syms[term.Name(name)] = t
	}
	return syms, nil
}
