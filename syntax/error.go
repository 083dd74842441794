package syntax

import (
	"fmt"

	"github.com/nihei9/lambda/lcerr"
)

// SyntaxError reports a lexical or grammatical error at a specific
// source position: a row and column plus a wrapped cause.
type SyntaxError = lcerr.Error

type simpleError string

func (e simpleError) Error() string { return string(e) }

var errUnexpectedColon = simpleError("unexpected ':' (expected ':=')")

func errUnexpectedToken(want string, got token) error {
	return fmt.Errorf("unexpected %s %q (expected %s)", got.kind, got.text, want)
}
