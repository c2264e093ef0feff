package core

import (
	"math"
)

// Eval folds a tree to a numeric value. With recurse false only a
// leaf-level fold is attempted: operands must already be value nodes.
// With recurse true both sides are evaluated; the result is absent when
// unresolved symbols remain anywhere below.
func Eval(e Expr, recurse bool) (Value, bool) {
	switch t := e.(type) {
	case Value:
		return t, true
	case Symbol:
		return Value{}, false
	case *Unary:
		x, ok := operandValue(t.X, recurse)
		if !ok {
			return Value{}, false
		}
		return foldUnary(t.Op, x), true
	case *Binary:
		l, ok := operandValue(t.L, recurse)
		if !ok {
			return Value{}, false
		}
		r, ok := operandValue(t.R, recurse)
		if !ok {
			return Value{}, false
		}
		return foldBinary(t.Op, l, r), true
	}
	return Value{}, false
}

func operandValue(e Expr, recurse bool) (Value, bool) {
	if v, ok := e.(Value); ok {
		return v, true
	}
	if !recurse {
		return Value{}, false
	}
	return Eval(e, true)
}

func foldUnary(op UnaryOp, x Value) Value {
	switch op {
	case OpAbs:
		return x.Abs()
	case OpNeg:
		return x.Neg()
	case OpSin:
		return x.Sin()
	case OpCos:
		return x.Cos()
	case OpTan:
		return x.Tan()
	case OpAsin:
		return x.Asin()
	case OpAcos:
		return x.Acos()
	case OpAtan:
		return x.Atan()
	case OpExp:
		return x.Exp()
	case OpLog:
		return x.Log()
	default:
		return x.Sign()
	}
}

func foldBinary(op BinaryOp, l, r Value) Value {
	switch op {
	case OpAdd:
		return l.Add(r)
	case OpSub:
		return l.Sub(r)
	case OpMul:
		return l.Mul(r)
	case OpDiv:
		return l.Div(r)
	default:
		return l.Pow(r)
	}
}

// Derived queries. Each evaluates with recursion and inspects the
// resulting value; the second result is false when evaluation is absent.

// RealPart returns the real part of the evaluated expression.
func RealPart(e Expr) (float64, bool) {
	v, ok := Eval(e, true)
	if !ok {
		return 0, false
	}
	return real(v.Complex128()), true
}

// ImagPart returns the imaginary part of the evaluated expression.
func ImagPart(e Expr) (float64, bool) {
	v, ok := Eval(e, true)
	if !ok {
		return 0, false
	}
	return imag(v.Complex128()), true
}

// ComplexVal returns the evaluated expression as a complex128.
func ComplexVal(e Expr) (complex128, bool) {
	v, ok := Eval(e, true)
	if !ok {
		return 0, false
	}
	return v.Complex128(), true
}

// IsReal reports whether the expression evaluates to a non-complex value.
func IsReal(e Expr) (bool, bool) {
	v, ok := Eval(e, true)
	if !ok {
		return false, false
	}
	return v.Kind() != ComplexKind, true
}

// IsComplex reports whether the expression evaluates to a complex value.
func IsComplex(e Expr) (bool, bool) {
	v, ok := Eval(e, true)
	if !ok {
		return false, false
	}
	return v.Kind() == ComplexKind, true
}

// IsInteger reports whether the expression evaluates to an integer-valued
// result within eps.
func IsInteger(e Expr) (bool, bool) {
	v, ok := Eval(e, true)
	if !ok {
		return false, false
	}
	return v.IsInteger(), true
}

// Sign determines the sign of an expression: +1, 0 or -1. When the tree
// does not evaluate, the sign is computed structurally: negation flips,
// absolute value is positive, products and quotients multiply signs, and
// an integer exponent decides a negative base by parity.
func Sign(e Expr) (int, bool) {
	if v, ok := Eval(e, true); ok {
		if v.Kind() == ComplexKind {
			return 0, false
		}
		s := v.Sign()
		return int(s.Int64()), true
	}
	return structuralSign(e)
}

func structuralSign(e Expr) (int, bool) {
	switch t := e.(type) {
	case Value:
		if t.Kind() == ComplexKind {
			return 0, false
		}
		return int(t.Sign().Int64()), true
	case *Unary:
		switch t.Op {
		case OpNeg:
			s, ok := structuralSign(t.X)
			return -s, ok
		case OpAbs, OpExp:
			return 1, true
		case OpSign:
			return structuralSign(t.X)
		}
	case *Binary:
		switch t.Op {
		case OpMul, OpDiv:
			ls, lok := structuralSign(t.L)
			rs, rok := structuralSign(t.R)
			if lok && rok {
				return ls * rs, true
			}
		case OpAdd:
			ls, lok := structuralSign(t.L)
			rs, rok := structuralSign(t.R)
			if lok && rok && ls == rs {
				return ls, true
			}
		case OpPow:
			return powSign(t.L, t.R)
		}
	}
	return 0, false
}

// powSign handles the integer-exponent special case: a negative base
// raised to an even exponent is positive, to an odd exponent negative.
func powSign(base, exp Expr) (int, bool) {
	bs, ok := structuralSign(base)
	if !ok {
		return 0, false
	}
	if bs >= 0 {
		return bs, true
	}
	ev, ok := Eval(exp, true)
	if !ok || !ev.IsInteger() {
		return 0, false
	}
	n := int64(math.Round(ev.Float64()))
	if n%2 == 0 {
		return 1, true
	}
	return -1, true
}
