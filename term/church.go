package term

// Church builds the Church numeral for n: \f. \x. f (f … (f x) …) with n
// applications of f. For n == 0 the body is bare x. Fresh names used are
// literally f and x; any capture against surrounding free variables is
// prevented by the ordinary alpha-conversion rule of Replace, not by this
// constructor.
func Church(n int) Term {
	return NewAbs("f", NewAbs("x", churchBody(n)))
}

func churchBody(n int) Term {
	if n <= 0 {
		return NewVar("x")
	}
	return NewApp(NewVar("f"), churchBody(n-1))
}
