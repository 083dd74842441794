package syntax

import (
	"github.com/nihei9/lambda/term"
)

// Definition is a toplevel `name := term;` binding, destined for
// reducer.Reducer.RegisterSymbol.
type Definition struct {
	Name term.Name
	Term term.Term
}

// Program is the result of parsing a full script: zero or more
// definitions followed by the term to reduce.
type Program struct {
	Defs []Definition
	Body term.Term
}

type parser struct {
	toks []token
	pos  int
}

// Parse parses src (the `name := term;` definitions followed by a
// final term, per spec.md's glossary notation) into a Program.
func Parse(src string) (prog *Program, retErr error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				panic(r)
			}
			retErr = err
		}
	}()

	return p.parseProgram(), nil
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokenKindEOF {
		p.pos++
	}
	return t
}

func (p *parser) consume(k tokenKind) bool {
	if p.cur().kind == k {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(k tokenKind) token {
	if p.cur().kind != k {
		p.raiseParseError(errUnexpectedToken(k.String(), p.cur()))
	}
	return p.advance()
}

func (p *parser) raiseParseError(cause error) {
	panic(&SyntaxError{Row: p.cur().row, Col: p.cur().col, Cause: cause})
}

func (p *parser) parseProgram() *Program {
	var defs []Definition
	for p.cur().kind == tokenKindIdent && p.peekIsAssign() {
		defs = append(defs, p.parseDefinition())
	}
	body := p.parseTerm()
	p.expect(tokenKindEOF)
	return &Program{Defs: defs, Body: body}
}

// peekIsAssign reports whether the identifier at the current position
// is immediately followed by ":=", the only context that distinguishes
// a definition's name from the start of the final body term.
func (p *parser) peekIsAssign() bool {
	return p.toks[p.pos+1].kind == tokenKindAssign
}

func (p *parser) parseDefinition() Definition {
	name := p.expect(tokenKindIdent)
	p.expect(tokenKindAssign)
	body := p.parseTerm()
	p.expect(tokenKindSemi)
	return Definition{Name: term.Name(name.text), Term: body}
}

// parseTerm parses the widest production: an abstraction's body, or an
// application chain, extends as far right as the grammar allows.
func (p *parser) parseTerm() term.Term {
	if p.cur().kind == tokenKindBackslash {
		return p.parseAbs()
	}
	return p.parseApp()
}

func (p *parser) parseAbs() term.Term {
	p.expect(tokenKindBackslash)
	binder := p.expect(tokenKindIdent)
	p.expect(tokenKindDot)
	body := p.parseTerm()
	return term.NewAbs(term.Name(binder.text), body)
}

func (p *parser) parseApp() term.Term {
	left := p.parsePrefixed()
	for p.startsAtom() {
		right := p.parsePrefixed()
		left = term.NewApp(left, right)
	}
	return left
}

func (p *parser) startsAtom() bool {
	switch p.cur().kind {
	case tokenKindIdent, tokenKindLParen, tokenKindBang, tokenKindTilde:
		return true
	default:
		return false
	}
}

// parsePrefixed parses zero or more priority sigils followed by an
// atom. Sigils bind tighter than application, so "!x y" parses as
// "(!x) y". When more than one sigil precedes an atom, the one closest
// to the atom determines its final priority.
func (p *parser) parsePrefixed() term.Term {
	var priorities []term.Priority
	for {
		switch p.cur().kind {
		case tokenKindBang:
			p.advance()
			priorities = append(priorities, term.Eager)
			continue
		case tokenKindTilde:
			p.advance()
			priorities = append(priorities, term.Lazy)
			continue
		}
		break
	}
	atom := p.parseAtom()
	for _, pr := range priorities {
		term.SetPriority(atom, pr)
	}
	return atom
}

func (p *parser) parseAtom() term.Term {
	switch p.cur().kind {
	case tokenKindIdent:
		tok := p.advance()
		return term.NewVar(term.Name(tok.text))
	case tokenKindLParen:
		p.advance()
		inner := p.parseTerm()
		p.expect(tokenKindRParen)
		return inner
	case tokenKindBackslash:
		return p.parseAbs()
	default:
		p.raiseParseError(errUnexpectedToken("a name, '(', or '\\'", p.cur()))
		panic("unreachable")
	}
}
