package term

// PriorityOf returns t's computational priority annotation.
func PriorityOf(t Term) Priority {
	switch n := t.(type) {
	case *Var:
		return n.priority
	case *Abs:
		return n.priority
	case *App:
		return n.priority
	default:
		panic("term: Priority: unreachable term variant")
	}
}

// SetPriority overrides t's priority annotation in place. Setting a
// different value clears the normal-form memo on that node, since
// eager/lazy status controls which redexes are considered.
func SetPriority(t Term, p Priority) {
	switch n := t.(type) {
	case *Var:
		if n.priority != p {
			n.priority = p
			n.nf = false
		}
	case *Abs:
		if n.priority != p {
			n.priority = p
			n.nf = false
		}
	case *App:
		if n.priority != p {
			n.priority = p
			n.nf = false
		}
	default:
		panic("term: SetPriority: unreachable term variant")
	}
}

// Clone deep-copies t, preserving priority and the free-variable cache
// (nf is reset: a clone may end up embedded somewhere the symbol table
// makes a difference, so normal-form status is not assumed to travel).
func Clone(t Term) Term {
	return cloneWith(t, nil)
}

// CloneWithPriority deep-copies t like Clone, but overrides the root
// node's priority with p.
func CloneWithPriority(t Term, p Priority) Term {
	return cloneWith(t, &p)
}

func cloneWith(t Term, override *Priority) Term {
	switch n := t.(type) {
	case *Var:
		c := NewVar(n.Name)
		c.priority = n.priority
		if !n.freeVarsDirty {
			c.freeVars = n.freeVars.Clone()
			c.freeVarsDirty = false
		}
		if override != nil {
			c.priority = *override
		}
		return c
	case *Abs:
		c := NewAbs(n.Binder, Clone(n.Body))
		c.priority = n.priority
		if !n.freeVarsDirty {
			c.freeVars = n.freeVars.Clone()
			c.freeVarsDirty = false
		}
		if override != nil {
			c.priority = *override
		}
		return c
	case *App:
		c := NewApp(Clone(n.Fun), Clone(n.Arg))
		c.priority = n.priority
		if !n.freeVarsDirty {
			c.freeVars = n.freeVars.Clone()
			c.freeVarsDirty = false
		}
		if override != nil {
			c.priority = *override
		}
		return c
	default:
		panic("term: Clone: unreachable term variant")
	}
}
