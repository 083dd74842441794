package syntax

import (
	"testing"

	"github.com/nihei9/lambda/term"
)

func TestParseSimpleTerm(t *testing.T) {
	prog, err := Parse(`\x. x`)
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if len(prog.Defs) != 0 {
		t.Fatalf("expected no definitions, got %d", len(prog.Defs))
	}
	if term.String(prog.Body) != "\\x. x" {
		t.Fatalf("Body = %v, want \\x. x", term.String(prog.Body))
	}
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	prog, err := Parse(`f x y`)
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if term.String(prog.Body) != "f x y" {
		t.Fatalf("Body = %v, want f x y", term.String(prog.Body))
	}
}

func TestParseParenthesizedAbsAsOperand(t *testing.T) {
	prog, err := Parse(`(\x. x) y`)
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if term.String(prog.Body) != "(\\x. x) y" {
		t.Fatalf("Body = %v, want (\\x. x) y", term.String(prog.Body))
	}
}

func TestParseDefinitions(t *testing.T) {
	prog, err := Parse(`id := \x. x; id id`)
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if len(prog.Defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(prog.Defs))
	}
	if prog.Defs[0].Name != "id" {
		t.Fatalf("definition name = %v, want id", prog.Defs[0].Name)
	}
	if term.String(prog.Defs[0].Term) != "\\x. x" {
		t.Fatalf("definition term = %v, want \\x. x", term.String(prog.Defs[0].Term))
	}
	if term.String(prog.Body) != "id id" {
		t.Fatalf("Body = %v, want id id", term.String(prog.Body))
	}
}

func TestParseEagerSigilBindsTighterThanApplication(t *testing.T) {
	prog, err := Parse(`!x y`)
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	app, ok := prog.Body.(*term.App)
	if !ok {
		t.Fatalf("Body is %T, want *term.App", prog.Body)
	}
	if term.PriorityOf(app.Fun) != term.Eager {
		t.Fatalf("Fun priority = %v, want Eager", term.PriorityOf(app.Fun))
	}
	if term.PriorityOf(app) == term.Eager {
		t.Fatalf("the outer application must not inherit the sigil meant for its left operand")
	}
}

func TestParseLazySigilOnParenthesizedArgument(t *testing.T) {
	prog, err := Parse(`(\x. y) (~((\z. z z) (\z. z z)))`)
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	app, ok := prog.Body.(*term.App)
	if !ok {
		t.Fatalf("Body is %T, want *term.App", prog.Body)
	}
	if term.PriorityOf(app.Arg) != term.Lazy {
		t.Fatalf("Arg priority = %v, want Lazy", term.PriorityOf(app.Arg))
	}
}

func TestParseNumeralLiteralIsAnOrdinaryVar(t *testing.T) {
	prog, err := Parse(`2`)
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	vr, ok := prog.Body.(*term.Var)
	if !ok {
		t.Fatalf("Body is %T, want *term.Var", prog.Body)
	}
	if !vr.Name.IsNumeral() {
		t.Fatalf("expected %v to be recognized as a numeral", vr.Name)
	}
}

func TestParseReportsRowAndColumn(t *testing.T) {
	_, err := Parse("\\x x")
	if err == nil {
		t.Fatalf("expected a syntax error for a missing '.'")
	}
	var synErr *SyntaxError
	if se, ok := err.(*SyntaxError); ok {
		synErr = se
	} else {
		t.Fatalf("err is %T, want *SyntaxError", err)
	}
	if synErr.Row != 1 {
		t.Fatalf("Row = %d, want 1", synErr.Row)
	}
	if synErr.Col != 4 {
		t.Fatalf("Col = %d, want 4", synErr.Col)
	}
}

func TestParseUnterminatedDefinitionIsASyntaxError(t *testing.T) {
	_, err := Parse(`id := \x. x`)
	if err == nil {
		t.Fatalf("expected a syntax error for a definition missing its terminating ';'")
	}
}

func TestParseRejectsBareColon(t *testing.T) {
	_, err := Parse(`x : y`)
	if err == nil {
		t.Fatalf("expected a syntax error for a bare ':'")
	}
}
