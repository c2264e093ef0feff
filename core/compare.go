package core

// Canonical operand ordering for the commutative operators. The order is
// value < symbol < unary < binary; within a class, values compare
// numerically, symbols by name, unaries by operator then operand, and
// binaries by their rendering with any leading value coefficient
// stripped, shorter strings first.

func classRank(e Expr) int {
	switch e.(type) {
	case Value:
		return 0
	case Symbol:
		return 1
	case *Unary:
		return 2
	default:
		return 3
	}
}

// canonicalLess reports whether a sorts before b.
func canonicalLess(a, b Expr) bool {
	return compareExpr(a, b) < 0
}

func compareExpr(a, b Expr) int {
	ra, rb := classRank(a), classRank(b)
	if ra != rb {
		return ra - rb
	}
	switch ta := a.(type) {
	case Value:
		return compareValue(ta, b.(Value))
	case Symbol:
		return compareString(ta.Name, b.(Symbol).Name)
	case *Unary:
		tb := b.(*Unary)
		if ta.Op != tb.Op {
			return int(ta.Op) - int(tb.Op)
		}
		return compareExpr(ta.X, tb.X)
	default:
		return compareTermKey(termKey(a), termKey(b))
	}
}

func compareValue(a, b Value) int {
	if a.EqualValue(b) {
		return 0
	}
	ar, br := a.Float64(), b.Float64()
	if ar != br {
		if ar < br {
			return -1
		}
		return 1
	}
	ai, bi := imag(a.Complex128()), imag(b.Complex128())
	if ai < bi {
		return -1
	}
	return 1
}

func compareString(a, b string) int {
	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// termKey is the rendering used to order binary nodes: a product or
// quotient led by a value coefficient is keyed by the rest, so 2*x and
// 3*x sort next to x.
func termKey(e Expr) string {
	if b, ok := e.(*Binary); ok && (b.Op == OpMul || b.Op == OpDiv) {
		if _, isVal := b.L.(Value); isVal {
			return b.R.String()
		}
	}
	return e.String()
}

// compareTermKey orders binary nodes by key length only; equal lengths
// compare as equal so operands already in place are left alone. The
// heuristic keeps simple terms ahead of compound ones without reordering
// unrelated products.
func compareTermKey(a, b string) int {
	return len(a) - len(b)
}
