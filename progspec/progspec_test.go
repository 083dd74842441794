package progspec

import (
	"bytes"
	"testing"

	"github.com/nihei9/lambda/term"
)

func TestCompileAndRoundTrip(t *testing.T) {
	cp, err := Compile(`id := \x. x; id (!y)`)
	if err != nil {
		t.Fatalf("Compile returned %v", err)
	}
	if _, ok := cp.Symbols["id"]; !ok {
		t.Fatalf("expected a symbol named id, got %v", cp.Symbols)
	}

	var buf bytes.Buffer
	if err := cp.Write(&buf); err != nil {
		t.Fatalf("Write returned %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read returned %v", err)
	}

	body, err := FromWire(got.Body)
	if err != nil {
		t.Fatalf("FromWire returned %v", err)
	}
	app, ok := body.(*term.App)
	if !ok {
		t.Fatalf("body is %T, want *term.App", body)
	}
	if term.PriorityOf(app.Arg) != term.Eager {
		t.Fatalf("Arg priority = %v, want Eager", term.PriorityOf(app.Arg))
	}

	syms, err := got.ToSymbolTable()
	if err != nil {
		t.Fatalf("ToSymbolTable returned %v", err)
	}
	idTerm, ok := syms["id"]
	if !ok {
		t.Fatalf("expected symbol id in table")
	}
	if term.String(idTerm) != "\\x. x" {
		t.Fatalf("id = %v, want \\x. x", term.String(idTerm))
	}
}

func TestFromWireRejectsUnknownKind(t *testing.T) {
	_, err := FromWire(&WireTerm{Kind: "bogus"})
	if err == nil {
		t.Fatalf("expected an error for an unknown term kind")
	}
}
