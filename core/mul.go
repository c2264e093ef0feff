package core

// Mul, Div and Pow smart constructors. Multiplication and division fold
// constants, eliminate identities, fuse value coefficients, and cancel
// matching subtrees across products and quotients.

// Mul builds l * r.
func Mul(l, r Expr) Expr {
	if lv, lok := l.(Value); lok {
		if rv, rok := r.(Value); rok {
			return lv.Mul(rv)
		}
		if lv.IsZero() {
			return lv
		}
		if lv.IsOne() {
			return r
		}
		if lv.IsMinusOne() {
			return Neg(r)
		}
	}
	if rv, ok := r.(Value); ok {
		if rv.IsZero() {
			return rv
		}
		if rv.IsOne() {
			return l
		}
		if rv.IsMinusOne() {
			return Neg(l)
		}
		// fuse a value into an existing coefficient: (c*x)*d -> (c*d)*x
		if lb, ok := l.(*Binary); ok && lb.Op == OpMul {
			if c, base := splitCoef(l); base != nil && !c.IsOne() {
				return Mul(c.Mul(rv), base)
			}
		}
	}
	if lv, ok := l.(Value); ok {
		if rb, ok := r.(*Binary); ok && rb.Op == OpMul {
			if c, base := splitCoef(r); base != nil && !c.IsOne() {
				return Mul(lv.Mul(c), base)
			}
		}
	}
	if res, ok := cancelMul(l, r); ok {
		return res
	}
	if res, ok := cancelMul(r, l); ok {
		return res
	}
	if rb, ok := r.(*Binary); ok && rb.Op == OpMul {
		return Mul(Mul(l, rb.L), rb.R)
	}
	return mulInsert(l, r)
}

// mulInsert appends the factor t to the product chain c in canonical
// position. Rewrites between t and the chain have already been tried, so
// nodes are built raw.
func mulInsert(c, t Expr) Expr {
	if b, ok := c.(*Binary); ok && b.Op == OpMul {
		if canonicalLess(t, b.R) {
			return &Binary{Op: OpMul, L: mulInsert(b.L, t), R: b.R}
		}
		return &Binary{Op: OpMul, L: c, R: t}
	}
	if canonicalLess(t, c) {
		return &Binary{Op: OpMul, L: t, R: c}
	}
	return &Binary{Op: OpMul, L: c, R: t}
}

// Div builds l / r. A zero numerator wins, a zero denominator yields real
// +Inf, and matching operands collapse to one.
func Div(l, r Expr) Expr {
	if lv, lok := l.(Value); lok {
		if rv, rok := r.(Value); rok {
			return lv.Div(rv)
		}
		if lv.IsZero() {
			return lv
		}
	}
	if rv, ok := r.(Value); ok {
		if rv.IsZero() {
			return NewReal(inf())
		}
		if rv.IsOne() {
			return l
		}
		if rv.IsMinusOne() {
			return Neg(l)
		}
		if lb, ok := l.(*Binary); ok && lb.Op == OpMul {
			if c, base := splitCoef(l); base != nil && !c.IsOne() {
				return Mul(c.Div(rv), base)
			}
		}
	}
	if Equivalent(l, r) {
		if intTyped(l) || intTyped(r) {
			return NewInt(1)
		}
		return NewReal(1)
	}
	if res, ok := cancelDiv(l, r); ok {
		return res
	}
	return &Binary{Op: OpDiv, L: l, R: r}
}

// Pow builds l ** r. Power simplification is intentionally limited to
// constant folding; exponent algebra is not rewritten.
func Pow(l, r Expr) Expr {
	if lv, lok := l.(Value); lok {
		if rv, rok := r.(Value); rok {
			return lv.Pow(rv)
		}
	}
	return &Binary{Op: OpPow, L: l, R: r}
}

// cancelMul looks for a divisor inside l that cancels against r or a
// factor of r, covering every positional pairing of products and
// quotients.
func cancelMul(l, r Expr) (Expr, bool) {
	lb, ok := l.(*Binary)
	if !ok {
		return nil, false
	}
	switch lb.Op {
	case OpDiv:
		// (a/b)*b -> a
		if Equivalent(lb.R, r) {
			return lb.L, true
		}
		if rb, ok := r.(*Binary); ok {
			switch rb.Op {
			case OpMul:
				// (a/b)*(b*c) -> a*c
				if Equivalent(lb.R, rb.L) {
					return Mul(lb.L, rb.R), true
				}
				if Equivalent(lb.R, rb.R) {
					return Mul(lb.L, rb.L), true
				}
			case OpDiv:
				// (a/b)*(b/d) -> a/d
				if Equivalent(lb.R, rb.L) {
					return Div(lb.L, rb.R), true
				}
				// (a/b)*(c/a) -> c/b
				if Equivalent(lb.L, rb.R) {
					return Div(rb.L, lb.R), true
				}
			}
		}
	case OpMul:
		if rb, ok := r.(*Binary); ok && rb.Op == OpDiv {
			// (a*b)*(c/a) -> b*c
			if Equivalent(lb.L, rb.R) {
				return Mul(lb.R, rb.L), true
			}
			// (a*b)*(c/b) -> a*c
			if Equivalent(lb.R, rb.R) {
				return Mul(lb.L, rb.L), true
			}
		}
	}
	return nil, false
}

// cancelDiv looks for matching subtrees between numerator and
// denominator.
func cancelDiv(num, den Expr) (Expr, bool) {
	if nb, ok := num.(*Binary); ok {
		switch nb.Op {
		case OpMul:
			// (a*b)/a -> b
			if Equivalent(nb.L, den) {
				return nb.R, true
			}
			if Equivalent(nb.R, den) {
				return nb.L, true
			}
		case OpDiv:
			// (a/b)/a -> 1/b
			if Equivalent(nb.L, den) {
				return Div(NewInt(1), nb.R), true
			}
		}
	}
	if db, ok := den.(*Binary); ok {
		switch db.Op {
		case OpMul:
			// a/(a*b) -> 1/b
			if Equivalent(num, db.L) {
				return Div(NewInt(1), db.R), true
			}
			if Equivalent(num, db.R) {
				return Div(NewInt(1), db.L), true
			}
		case OpDiv:
			// a/(a/b) -> b
			if Equivalent(num, db.L) {
				return db.R, true
			}
		}
	}
	nb, nok := num.(*Binary)
	db, dok := den.(*Binary)
	if !nok || !dok {
		return nil, false
	}
	switch {
	case nb.Op == OpMul && db.Op == OpMul:
		if Equivalent(nb.L, db.L) {
			return Div(nb.R, db.R), true
		}
		if Equivalent(nb.L, db.R) {
			return Div(nb.R, db.L), true
		}
		if Equivalent(nb.R, db.L) {
			return Div(nb.L, db.R), true
		}
		if Equivalent(nb.R, db.R) {
			return Div(nb.L, db.L), true
		}
	case nb.Op == OpMul && db.Op == OpDiv:
		// (a*b)/(a/d) -> b*d
		if Equivalent(nb.L, db.L) {
			return Mul(nb.R, db.R), true
		}
		if Equivalent(nb.R, db.L) {
			return Mul(nb.L, db.R), true
		}
	case nb.Op == OpDiv && db.Op == OpMul:
		// (a/b)/(a*d) -> 1/(b*d)
		if Equivalent(nb.L, db.L) {
			return Div(NewInt(1), Mul(nb.R, db.R)), true
		}
		if Equivalent(nb.L, db.R) {
			return Div(NewInt(1), Mul(nb.R, db.L)), true
		}
	case nb.Op == OpDiv && db.Op == OpDiv:
		// (a/b)/(a/d) -> d/b
		if Equivalent(nb.L, db.L) {
			return Div(db.R, nb.R), true
		}
		// (a/b)/(c/b) -> a/c
		if Equivalent(nb.R, db.R) {
			return Div(nb.L, db.L), true
		}
	}
	return nil, false
}

// intTyped reports whether e evaluates to an integer-kind value.
func intTyped(e Expr) bool {
	v, ok := Eval(e, true)
	return ok && v.Kind() == IntKind
}
