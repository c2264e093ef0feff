package core

// Unary smart constructors. A constant operand folds immediately; the
// remaining rewrites are the negation and absolute-value identities.

// Neg negates an expression. The result avoids a unary-neg wrapper
// whenever negOpt can push the sign into the tree.
func Neg(e Expr) Expr {
	if n, ok := negOpt(e); ok {
		return n
	}
	return &Unary{Op: OpNeg, X: e}
}

// negOpt computes a negated form without wrapping when possible: a value
// flips its sign, a negation unwraps, an add or sub rewrites to its
// mirror, and a product or quotient pushes the sign into one side.
func negOpt(e Expr) (Expr, bool) {
	switch t := e.(type) {
	case Value:
		return t.Neg(), true
	case *Unary:
		if t.Op == OpNeg {
			return t.X, true
		}
	case *Binary:
		switch t.Op {
		case OpAdd:
			return Sub(Neg(t.L), t.R), true
		case OpSub:
			return Sub(t.R, t.L), true
		case OpMul, OpDiv:
			if nl, ok := negOpt(t.L); ok {
				return &Binary{Op: t.Op, L: nl, R: t.R}, true
			}
			if nr, ok := negOpt(t.R); ok {
				return &Binary{Op: t.Op, L: t.L, R: nr}, true
			}
		}
	}
	return nil, false
}

// isNegated recognizes operands that carry a leading sign: a negative
// value, a unary negation, or a product/quotient led by a negative
// value. It returns the positive counterpart.
func isNegated(e Expr) (Expr, bool) {
	switch t := e.(type) {
	case Value:
		if t.IsNegative() {
			return t.Neg(), true
		}
	case *Unary:
		if t.Op == OpNeg {
			return t.X, true
		}
	case *Binary:
		if t.Op == OpMul || t.Op == OpDiv {
			if v, ok := t.L.(Value); ok && v.IsNegative() {
				return &Binary{Op: t.Op, L: v.Neg(), R: t.R}, true
			}
		}
	}
	return nil, false
}

// Abs builds an absolute value. abs(-e) and abs(abs(e)) collapse to
// abs(e); a constant folds, with the absolute value of a complex
// becoming real.
func Abs(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Abs()
	}
	if u, ok := e.(*Unary); ok && (u.Op == OpNeg || u.Op == OpAbs) {
		return Abs(u.X)
	}
	return &Unary{Op: OpAbs, X: e}
}

func Sin(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Sin()
	}
	return &Unary{Op: OpSin, X: e}
}

func Cos(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Cos()
	}
	return &Unary{Op: OpCos, X: e}
}

func Tan(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Tan()
	}
	return &Unary{Op: OpTan, X: e}
}

func Asin(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Asin()
	}
	return &Unary{Op: OpAsin, X: e}
}

func Acos(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Acos()
	}
	return &Unary{Op: OpAcos, X: e}
}

func Atan(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Atan()
	}
	return &Unary{Op: OpAtan, X: e}
}

func Exp(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Exp()
	}
	return &Unary{Op: OpExp, X: e}
}

func Log(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Log()
	}
	return &Unary{Op: OpLog, X: e}
}

// SignExpr builds the sign function node; a constant folds to +1, 0, -1,
// or to itself when complex.
func SignExpr(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Sign()
	}
	return &Unary{Op: OpSign, X: e}
}

// Sqrt lowers to pow(e, 0.5) on expressions and is exact on values, so
// sqrt of a perfect-square integer stays integer.
func Sqrt(e Expr) Expr {
	if v, ok := e.(Value); ok {
		return v.Sqrt()
	}
	return Pow(e, NewReal(0.5))
}

// Conjugate maps complex value leaves to their conjugates. Symbols stand
// for real parameters, so the structure is otherwise preserved.
func Conjugate(e Expr) Expr {
	switch t := e.(type) {
	case Value:
		return t.Conj()
	case Symbol:
		return t
	case *Unary:
		return applyUnary(t.Op, Conjugate(t.X))
	case *Binary:
		return applyBinary(t.Op, Conjugate(t.L), Conjugate(t.R))
	}
	return e
}

// applyUnary dispatches an operator tag to its smart constructor.
func applyUnary(op UnaryOp, x Expr) Expr {
	switch op {
	case OpAbs:
		return Abs(x)
	case OpNeg:
		return Neg(x)
	case OpSin:
		return Sin(x)
	case OpCos:
		return Cos(x)
	case OpTan:
		return Tan(x)
	case OpAsin:
		return Asin(x)
	case OpAcos:
		return Acos(x)
	case OpAtan:
		return Atan(x)
	case OpExp:
		return Exp(x)
	case OpLog:
		return Log(x)
	default:
		return SignExpr(x)
	}
}

// applyBinary dispatches an operator tag to its smart constructor.
func applyBinary(op BinaryOp, l, r Expr) Expr {
	switch op {
	case OpAdd:
		return Add(l, r)
	case OpSub:
		return Sub(l, r)
	case OpMul:
		return Mul(l, r)
	case OpDiv:
		return Div(l, r)
	default:
		return Pow(l, r)
	}
}
