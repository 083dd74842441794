package term

// combineKind implements the return-kind precedence of §4.4's App case:
// Alpha over Beta over None.
func combineKind(a, b ReduceKind) ReduceKind {
	if a == Alpha || b == Alpha {
		return Alpha
	}
	if a == Beta || b == Beta {
		return Beta
	}
	return None
}

// Replace returns the term obtained by replacing every free occurrence of
// x in t with a fresh clone of s, inserting alpha-renaming wherever a
// binder in t would otherwise capture a free variable of s. bound is the
// set of names bound by abstractions enclosing t; it is used only to pick
// fresh names that also avoid those outer binders.
//
// Replace never mutates t: every case below reconstructs the nodes on
// the path from the root to the affected leaves and returns the new
// tree, leaving t itself untouched.
func Replace(t Term, x Name, s Term, bound Set) (Term, ReduceKind) {
	switch n := t.(type) {
	case *Var:
		if n.Name == x {
			return CloneWithPriority(s, n.priority), Beta
		}
		return t, None

	case *Abs:
		if n.Binder == x {
			return t, None
		}

		sfv := FreeVars(s)
		if sfv.Has(n.Binder) {
			avoid := Union(Union(Union(bound, sfv), FreeVars(n.Body)), NewSet(n.Binder))
			z := FreshName(avoid)
			renamedBody, _ := Replace(n.Body, n.Binder, NewVar(z), NewSet())
			newBody, kind := Replace(renamedBody, x, s, bound.WithAdded(z))
			result := NewAbs(z, newBody)
			result.priority = n.priority
			if kind != None {
				kind = Alpha
			}
			return result, kind
		}

		newBody, kind := Replace(n.Body, x, s, bound.WithAdded(n.Binder))
		result := NewAbs(n.Binder, newBody)
		result.priority = n.priority
		return result, kind

	case *App:
		newFun, k1 := Replace(n.Fun, x, s, bound)
		newArg, k2 := Replace(n.Arg, x, s, bound)
		result := NewApp(newFun, newArg)
		result.priority = n.priority
		return result, combineKind(k1, k2)

	default:
		panic("term: Replace: unreachable term variant")
	}
}

// Apply performs one beta-firing: self applied to arg. Only an Abs can
// actually fire; a Var or App reports None.
func Apply(self Term, arg Term, bound Set) (Term, ReduceKind) {
	abs, ok := self.(*Abs)
	if !ok {
		return self, None
	}
	result, _ := Replace(abs.Body, abs.Binder, arg, bound.WithAdded(abs.Binder))
	SetPriority(result, abs.priority)
	return result, Beta
}
