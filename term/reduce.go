package term

import "strconv"

// SymbolTable maps names to the terms they expand to. Entries are never
// mutated by Step; every expansion clones.
type SymbolTable map[Name]Term

// Step performs one rewrite of t and reports what it did, per §4.7. It
// interleaves beta-reduction, delta-expansion (symbol lookup and numeral
// expansion), and the priority-modulated strategy that lets an Eager
// child fire ahead of its enclosing application and a Lazy operator have
// its argument reduced before itself.
//
// bound is the set of names currently bound by enclosing abstractions.
func Step(t Term, syms SymbolTable, bound Set) (Term, ReduceKind) {
	switch n := t.(type) {
	case *Var:
		return stepVar(n, syms, bound)
	case *Abs:
		return stepAbs(n, syms, bound)
	case *App:
		return stepApp(n, syms, bound)
	default:
		panic("term: Step: unreachable term variant")
	}
}

func stepVar(n *Var, syms SymbolTable, bound Set) (Term, ReduceKind) {
	if n.nf {
		return n, None
	}
	if n.priority == Lazy {
		n.priority = Neutral
	}
	if bound.Has(n.Name) {
		n.nf = true
		return n, None
	}
	if n.Name.IsNumeral() {
		if v, err := strconv.Atoi(string(n.Name)); err == nil && v >= 0 {
			result := Church(v)
			SetPriority(result, n.priority)
			return result, Delta
		}
		// A numeral literal too large to fit an int has no expansion; treat
		// it as an ordinary free variable rather than failing the reducer.
	}
	if sym, ok := syms[n.Name]; ok {
		result := CloneWithPriority(sym, n.priority)
		return result, Delta
	}
	n.priority = Neutral
	n.nf = true
	return n, None
}

func stepAbs(n *Abs, syms SymbolTable, bound Set) (Term, ReduceKind) {
	if n.nf {
		return n, None
	}
	if n.priority == Lazy {
		n.priority = Neutral
	}
	newBody, kind := Step(n.Body, syms, bound.WithAdded(n.Binder))
	if kind != None {
		result := NewAbs(n.Binder, newBody)
		result.priority = n.priority
		return result, kind
	}
	n.priority = Neutral
	n.nf = true
	return n, None
}

func stepApp(n *App, syms SymbolTable, bound Set) (Term, ReduceKind) {
	if n.nf {
		return n, None
	}
	if n.priority == Lazy {
		n.priority = Neutral
	}

	if IsEager(n.Fun, bound) {
		if newFun, kind := Step(n.Fun, syms, bound); kind != None {
			return rebuildApp(n, newFun, n.Arg, kind)
		}
	} else if IsEager(n.Arg, bound) {
		if newArg, kind := Step(n.Arg, syms, bound); kind != None {
			return rebuildApp(n, n.Fun, newArg, kind)
		}
	}

	if result, kind := Apply(n.Fun, n.Arg, bound); kind == Beta {
		SetPriority(result, n.priority)
		return result, Beta
	}

	if IsLazy(n.Fun) {
		if newArg, kind := Step(n.Arg, syms, bound); kind != None {
			return rebuildApp(n, n.Fun, newArg, kind)
		}
		if newFun, kind := Step(n.Fun, syms, bound); kind != None {
			return rebuildApp(n, newFun, n.Arg, kind)
		}
	} else {
		if newFun, kind := Step(n.Fun, syms, bound); kind != None {
			return rebuildApp(n, newFun, n.Arg, kind)
		}
		if newArg, kind := Step(n.Arg, syms, bound); kind != None {
			return rebuildApp(n, n.Fun, newArg, kind)
		}
	}

	n.priority = Neutral
	n.nf = true
	return n, None
}

func rebuildApp(n *App, fun, arg Term, kind ReduceKind) (Term, ReduceKind) {
	result := NewApp(fun, arg)
	result.priority = n.priority
	return result, kind
}
