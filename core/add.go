package core

// Add and Sub smart constructors with like-term collection. Sums are kept
// as left-leaning chains; appending a term that cannot combine inserts it
// in canonical position so commutativity and associativity normalize to
// the same shape.

// Add builds l + r after folding, identity elimination, sign
// normalization and like-term collection.
func Add(l, r Expr) Expr {
	if lv, lok := l.(Value); lok {
		if rv, rok := r.(Value); rok {
			return lv.Add(rv)
		}
		if lv.IsZero() {
			return r
		}
	}
	if rv, ok := r.(Value); ok && rv.IsZero() {
		return l
	}
	if pos, ok := isNegated(r); ok {
		return Sub(l, pos)
	}
	if pos, ok := isNegated(l); ok {
		return Sub(r, pos)
	}
	if rb, ok := r.(*Binary); ok {
		switch rb.Op {
		case OpAdd:
			return Add(Add(l, rb.L), rb.R)
		case OpSub:
			return Sub(Add(l, rb.L), rb.R)
		}
	}
	if res, ok := mergeAdd(l, r); ok {
		return res
	}
	return addInsert(l, r)
}

// Sub builds l - r. Matching operands collapse to integer zero, a
// negated right operand flips to addition, and like terms across either
// chain combine.
func Sub(l, r Expr) Expr {
	if lv, lok := l.(Value); lok {
		if rv, rok := r.(Value); rok {
			return lv.Sub(rv)
		}
		if lv.IsZero() {
			return Neg(r)
		}
	}
	if rv, ok := r.(Value); ok && rv.IsZero() {
		return l
	}
	if pos, ok := isNegated(r); ok {
		return Add(l, pos)
	}
	if Equivalent(l, r) {
		return NewInt(0)
	}
	if rb, ok := r.(*Binary); ok {
		switch rb.Op {
		case OpAdd:
			return Sub(Sub(l, rb.L), rb.R)
		case OpSub:
			return Add(Sub(l, rb.L), rb.R)
		}
	}
	if res, ok := mergeSub(l, r); ok {
		return res
	}
	return &Binary{Op: OpSub, L: l, R: r}
}

// mergeAdd computes c + t when t combines with some term of the chain c,
// descending sums and differences on either branch.
func mergeAdd(c, t Expr) (Expr, bool) {
	if b, ok := c.(*Binary); ok {
		switch b.Op {
		case OpAdd:
			if res, ok := mergeAdd(b.L, t); ok {
				return Add(res, b.R), true
			}
			if res, ok := mergeAdd(b.R, t); ok {
				return Add(b.L, res), true
			}
			return nil, false
		case OpSub:
			if res, ok := mergeAdd(b.L, t); ok {
				return Sub(res, b.R), true
			}
			if res, ok := mergeSub(t, b.R); ok {
				return Add(b.L, res), true
			}
			return nil, false
		}
	}
	return addCombine(c, t)
}

// mergeSub computes c - t when t combines with some term of the chain c.
func mergeSub(c, t Expr) (Expr, bool) {
	if b, ok := c.(*Binary); ok {
		switch b.Op {
		case OpAdd:
			if res, ok := mergeSub(b.L, t); ok {
				return Add(res, b.R), true
			}
			if res, ok := mergeSub(b.R, t); ok {
				return Add(b.L, res), true
			}
			return nil, false
		case OpSub:
			if res, ok := mergeSub(b.L, t); ok {
				return Sub(res, b.R), true
			}
			if res, ok := mergeAdd(b.R, t); ok {
				return Sub(b.L, res), true
			}
			return nil, false
		}
	}
	return subCombine(c, t)
}

func addCombine(a, b Expr) (Expr, bool) { return combineTerms(a, b, false) }
func subCombine(a, b Expr) (Expr, bool) { return combineTerms(a, b, true) }

// combineTerms recognizes like terms: two values fold, c/x and d/x share
// a denominator, and any pair whose coefficient-stripped bases agree
// (structurally or after expansion) combines coefficients. x - x falls
// out as a zero coefficient, which Mul folds to integer zero.
func combineTerms(a, b Expr, subtract bool) (Expr, bool) {
	if av, ok := a.(Value); ok {
		if bv, ok := b.(Value); ok {
			if subtract {
				return av.Sub(bv), true
			}
			return av.Add(bv), true
		}
	}
	if ab, ok := a.(*Binary); ok && ab.Op == OpDiv {
		if bb, ok := b.(*Binary); ok && bb.Op == OpDiv {
			ac, aok := ab.L.(Value)
			bc, bok := bb.L.(Value)
			if aok && bok && Equivalent(ab.R, bb.R) {
				c := ac.Add(bc)
				if subtract {
					c = ac.Sub(bc)
				}
				return Div(c, ab.R), true
			}
		}
	}
	ca, baseA := splitCoef(a)
	cb, baseB := splitCoef(b)
	if baseA == nil || baseB == nil {
		return nil, false
	}
	if !Equivalent(baseA, baseB) {
		return nil, false
	}
	c := ca.Add(cb)
	if subtract {
		c = ca.Sub(cb)
	}
	return Mul(c, baseA), true
}

// splitCoef factors a term into a value coefficient and a base. A bare
// value has a nil base; a term without a leading value has coefficient
// one.
func splitCoef(e Expr) (Value, Expr) {
	switch t := e.(type) {
	case Value:
		return t, nil
	case *Binary:
		if t.Op == OpMul {
			if v, ok := t.L.(Value); ok {
				return v, t.R
			}
			if v, ok := t.R.(Value); ok {
				return v, t.L
			}
		}
	case *Unary:
		if t.Op == OpNeg {
			c, base := splitCoef(t.X)
			return c.Neg(), base
		}
	}
	return NewInt(1), e
}

// addInsert appends t to the chain c in canonical position. Callers have
// already ruled out like-term combination, so nodes are built raw.
func addInsert(c, t Expr) Expr {
	if b, ok := c.(*Binary); ok {
		switch b.Op {
		case OpAdd:
			if canonicalLess(t, b.R) {
				return &Binary{Op: OpAdd, L: addInsert(b.L, t), R: b.R}
			}
			return &Binary{Op: OpAdd, L: c, R: t}
		case OpSub:
			// subtracted terms stay trailing
			return &Binary{Op: OpSub, L: addInsert(b.L, t), R: b.R}
		}
	}
	if canonicalLess(t, c) {
		return &Binary{Op: OpAdd, L: t, R: c}
	}
	return &Binary{Op: OpAdd, L: c, R: t}
}
