package core

// Substitution. Both variants are non-destructive: the tree is rebuilt
// through the smart constructors, so children re-fold after replacement.
// Applying a map twice yields the same tree as once, provided no mapped
// image contains a symbol in the map's domain.

// Bind replaces symbols with numeric values.
func Bind(e Expr, binds map[string]Value) Expr {
	switch t := e.(type) {
	case Symbol:
		if v, ok := binds[t.Name]; ok {
			return v
		}
		return t
	case *Unary:
		return applyUnary(t.Op, Bind(t.X, binds))
	case *Binary:
		return applyBinary(t.Op, Bind(t.L, binds), Bind(t.R, binds))
	}
	return e
}

// Subs replaces symbols with arbitrary expressions, which may themselves
// contain free symbols.
func Subs(e Expr, subs map[string]Expr) Expr {
	switch t := e.(type) {
	case Symbol:
		if x, ok := subs[t.Name]; ok {
			return x
		}
		return t
	case *Unary:
		return applyUnary(t.Op, Subs(t.X, subs))
	case *Binary:
		return applyBinary(t.Op, Subs(t.L, subs), Subs(t.R, subs))
	}
	return e
}
