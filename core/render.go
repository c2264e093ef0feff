package core

import (
	"strings"
)

// Infix rendering. Output is fully determined by the tree shape:
// additions print with spaced operators, a subtrahend that is itself a
// sum or difference is parenthesized, products and quotients
// parenthesize sum operands, and power parenthesizes any compound or
// negative operand other than a function application.

func (s Symbol) String() string {
	return s.Name
}

func (u *Unary) String() string {
	if u.Op == OpNeg {
		switch x := u.X.(type) {
		case Value:
			return x.Neg().String()
		case *Binary:
			if x.Op == OpAdd || x.Op == OpSub {
				return "-(" + x.String() + ")"
			}
		}
		return "-" + u.X.String()
	}
	return u.Op.String() + "(" + u.X.String() + ")"
}

func (b *Binary) String() string {
	var sb strings.Builder
	switch b.Op {
	case OpAdd:
		sb.WriteString(b.L.String())
		rhs := b.R.String()
		if strings.HasPrefix(rhs, "-") {
			sb.WriteString(" - ")
			sb.WriteString(rhs[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(rhs)
		}
	case OpSub:
		sb.WriteString(b.L.String())
		sb.WriteString(" - ")
		if rb, ok := b.R.(*Binary); ok && (rb.Op == OpAdd || rb.Op == OpSub) {
			sb.WriteString("(" + rb.String() + ")")
		} else {
			sb.WriteString(b.R.String())
		}
	case OpMul, OpDiv:
		sb.WriteString(factorString(b.L))
		sb.WriteString(b.Op.String())
		sb.WriteString(factorString(b.R))
	case OpPow:
		sb.WriteString(powOperand(b.L))
		sb.WriteString("**")
		sb.WriteString(powOperand(b.R))
	}
	return sb.String()
}

// factorString parenthesizes sum and difference operands of * and /.
func factorString(e Expr) string {
	if b, ok := e.(*Binary); ok && (b.Op == OpAdd || b.Op == OpSub) {
		return "(" + b.String() + ")"
	}
	return e.String()
}

// powOperand parenthesizes compound operands and negative values. A
// function application such as sin(x) is already delimited and prints
// bare; a unary negation is parenthesized.
func powOperand(e Expr) string {
	switch t := e.(type) {
	case Value:
		if t.IsNegative() {
			return "(" + t.String() + ")"
		}
		return t.String()
	case Symbol:
		return t.Name
	case *Unary:
		if t.Op != OpNeg {
			return t.String()
		}
		return "(" + t.String() + ")"
	default:
		return "(" + e.String() + ")"
	}
}
