package core

import (
	"fmt"
)

// Derivative computes the structural derivative of e with respect to the
// symbol s. Every rule funnels through the smart constructors, so the
// result comes back simplified.
func Derivative(e Expr, s Symbol) Expr {
	switch t := e.(type) {
	case Symbol:
		if t.Name == s.Name {
			return NewReal(1)
		}
		return NewReal(0)
	case Value:
		return NewReal(0)
	case *Unary:
		return deriveUnary(t, s)
	case *Binary:
		return deriveBinary(t, s)
	}
	return NewReal(0)
}

// DeriveBy differentiates with respect to a target expression, which must
// be a symbol.
func DeriveBy(e Expr, target Expr) (Expr, error) {
	s, ok := target.(Symbol)
	if !ok {
		return nil, fmt.Errorf("derivative target must be a symbol, got %s", target)
	}
	return Derivative(e, s), nil
}

func deriveUnary(u *Unary, s Symbol) Expr {
	dx := Derivative(u.X, s)
	switch u.Op {
	case OpNeg:
		return Neg(dx)
	case OpAbs:
		// x*dx/|x|
		return Div(Mul(u.X, dx), Abs(u.X))
	case OpSin:
		return Mul(Cos(u.X), dx)
	case OpCos:
		return Neg(Mul(Sin(u.X), dx))
	case OpTan:
		return Div(dx, Pow(Cos(u.X), NewInt(2)))
	case OpAsin:
		return Div(dx, Sqrt(Sub(NewInt(1), Pow(u.X, NewInt(2)))))
	case OpAcos:
		return Neg(Div(dx, Sqrt(Sub(NewInt(1), Pow(u.X, NewInt(2))))))
	case OpAtan:
		return Div(dx, Add(NewInt(1), Pow(u.X, NewInt(2))))
	case OpExp:
		return Mul(Exp(u.X), dx)
	case OpLog:
		return Div(dx, u.X)
	default: // sign
		return SignExpr(dx)
	}
}

func deriveBinary(b *Binary, s Symbol) Expr {
	switch b.Op {
	case OpAdd:
		return Add(Derivative(b.L, s), Derivative(b.R, s))
	case OpSub:
		return Sub(Derivative(b.L, s), Derivative(b.R, s))
	case OpMul:
		dl := Derivative(b.L, s)
		dr := Derivative(b.R, s)
		return Add(Mul(dl, b.R), Mul(b.L, dr))
	case OpDiv:
		dl := Derivative(b.L, s)
		dr := Derivative(b.R, s)
		return Div(Sub(Mul(dl, b.R), Mul(b.L, dr)), Mul(b.R, b.R))
	default:
		return derivePow(b, s)
	}
}

// derivePow: with the target only in the base, v*u**(v-1)*du; with the
// target in the exponent, rewrite u**v as exp(v*log(u)) and recurse.
func derivePow(b *Binary, s Symbol) Expr {
	inBase := HasSymbol(b.L, s.Name)
	inExp := HasSymbol(b.R, s.Name)
	switch {
	case !inBase && !inExp:
		return NewReal(0)
	case inBase && !inExp:
		du := Derivative(b.L, s)
		return Mul(Mul(b.R, Pow(b.L, Sub(b.R, NewInt(1)))), du)
	default:
		return Derivative(Exp(Mul(b.R, Log(b.L))), s)
	}
}
