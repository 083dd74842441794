package suite

import "testing"

func TestTestdataFixturesAllPass(t *testing.T) {
	cases := ListCases("testdata")
	if len(cases) == 0 {
		t.Fatalf("expected at least one fixture under testdata")
	}
	s := &Suite{Cases: cases}
	for _, r := range s.Run() {
		if r.Error != nil {
			t.Errorf("%v", r)
		}
	}
}

func TestFailingCaseReportsMismatch(t *testing.T) {
	c := &CaseWithMetadata{
		Case:     &Case{Name: "deliberately wrong", Input: "(\\x. x) y", Want: "z"},
		FilePath: "<inline>",
	}
	s := &Suite{Cases: []*CaseWithMetadata{c}}
	results := s.Run()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Fatalf("expected a mismatch error")
	}
}

func TestResultStringFormat(t *testing.T) {
	pass := &Result{CasePath: "a.json", CaseName: "a"}
	if got, want := pass.String(), "Passed a (a.json)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
