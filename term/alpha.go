package term

// AlphaEqual reports whether a and b are equal up to renaming of bound
// variables, ignoring priority annotations (per §8 property 5: the
// normal form's alpha-equivalence class is independent of priority).
func AlphaEqual(a, b Term) bool {
	return alphaEqual(a, b, nil, nil)
}

func alphaEqual(a, b Term, aBound, bBound []Name) bool {
	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		if !ok {
			return false
		}
		ai := lastIndex(aBound, x.Name)
		bi := lastIndex(bBound, y.Name)
		if ai < 0 || bi < 0 {
			return ai < 0 && bi < 0 && x.Name == y.Name
		}
		return ai == bi

	case *Abs:
		y, ok := b.(*Abs)
		if !ok {
			return false
		}
		return alphaEqual(x.Body, y.Body, append(aBound, x.Binder), append(bBound, y.Binder))

	case *App:
		y, ok := b.(*App)
		if !ok {
			return false
		}
		return alphaEqual(x.Fun, y.Fun, aBound, bBound) && alphaEqual(x.Arg, y.Arg, aBound, bBound)

	default:
		panic("term: AlphaEqual: unreachable term variant")
	}
}

// lastIndex returns the distance from the end of names to the most
// recent occurrence of n (so inner binders correctly shadow outer ones
// with the same spelling), or -1 if n is absent.
func lastIndex(names []Name, n Name) int {
	for i := len(names) - 1; i >= 0; i-- {
		if names[i] == n {
			return len(names) - 1 - i
		}
	}
	return -1
}
