package term

// IsEager reports whether t actively requests to be reduced before its
// sibling, per §4.6. An Eager node under a free-variable binder that has
// not yet been beta-satisfied cannot usefully reduce, because the
// relevant occurrence may disappear after substitution; bound lets the
// caller withhold eagerness in that case.
func IsEager(t Term, bound Set) bool {
	switch n := t.(type) {
	case *Var:
		return n.priority == Eager && !bound.Has(n.Name) && !n.Name.IsNumeral()
	case *Abs:
		if n.priority != Eager {
			return false
		}
		for name := range FreeVars(n) {
			if bound.Has(name) {
				return false
			}
		}
		return true
	case *App:
		return n.priority == Eager || IsEager(n.Fun, bound) || IsEager(n.Arg, bound)
	default:
		panic("term: IsEager: unreachable term variant")
	}
}

// IsLazy reports whether t's own priority is Lazy. Unlike IsEager, this
// is not propagated from children.
func IsLazy(t Term) bool {
	return PriorityOf(t) == Lazy
}
