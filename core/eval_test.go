package core

import (
	"math"
	"testing"
)

func TestEval_LeafFold(t *testing.T) {
	// recurse=false folds only when operands are already values
	raw := &Binary{Op: OpAdd, L: NewInt(1), R: NewInt(2)}
	v, ok := Eval(raw, false)
	if !ok || !v.EqualValue(NewInt(3)) {
		t.Errorf("leaf fold: got %v, %v", v, ok)
	}

	nested := &Binary{Op: OpMul, L: raw, R: NewInt(2)}
	if _, ok := Eval(nested, false); ok {
		t.Errorf("nested fold without recursion should be absent")
	}
	if v, ok := Eval(nested, true); !ok || !v.EqualValue(NewInt(6)) {
		t.Errorf("nested fold with recursion: got %v, %v", v, ok)
	}
}

func TestEval_AbsentOnSymbols(t *testing.T) {
	e := Add(Mul(symX, symX), NewInt(1))
	if _, ok := Eval(e, true); ok {
		t.Errorf("expression with free symbols must not evaluate")
	}
}

func TestEval_Queries(t *testing.T) {
	c := NewComplex(3 + 4i)

	if re, ok := RealPart(c); !ok || re != 3 {
		t.Errorf("RealPart: got %v, %v", re, ok)
	}
	if im, ok := ImagPart(c); !ok || im != 4 {
		t.Errorf("ImagPart: got %v, %v", im, ok)
	}
	if z, ok := ComplexVal(c); !ok || z != 3+4i {
		t.Errorf("ComplexVal: got %v, %v", z, ok)
	}

	if isReal, ok := IsReal(NewReal(2.5)); !ok || !isReal {
		t.Errorf("2.5 should be real")
	}
	if isComplex, ok := IsComplex(c); !ok || !isComplex {
		t.Errorf("3+4i should be complex")
	}
	if isInt, ok := IsInteger(NewReal(3)); !ok || !isInt {
		t.Errorf("3.0 should be integer-valued")
	}
	if _, ok := IsReal(symX); ok {
		t.Errorf("a free symbol has no real/complex verdict")
	}
}

func TestEval_UnaryFolds(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected float64
	}{
		{"sin", Sin(NewReal(math.Pi / 2)), 1},
		{"cos", Cos(NewReal(0)), 1},
		{"exp of log", Exp(Log(NewReal(2.5))), 2.5},
		{"atan", Atan(NewReal(1)), math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Eval(tt.expr, true)
			if !ok {
				t.Fatalf("constant should evaluate")
			}
			if math.Abs(v.Float64()-tt.expected) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.expected, v.Float64())
			}
		})
	}
}

func TestSign_Structural(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		sign int
		ok   bool
	}{
		{"value", NewInt(-5), -1, true},
		{"abs is positive", Abs(symX), 1, true},
		{"exp is positive", Exp(symX), 1, true},
		{"neg of abs", Neg(Abs(symX)), -1, true},
		{"product of known signs", Mul(Neg(Abs(symX)), Neg(Abs(symY))), 1, true},
		{"free symbol is unknown", symX, 0, false},
		{"negative base even exponent", &Binary{Op: OpPow, L: Neg(Exp(symX)), R: NewInt(2)}, 1, true},
		{"negative base odd exponent", &Binary{Op: OpPow, L: Neg(Exp(symX)), R: NewInt(3)}, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Sign(tt.expr)
			if ok != tt.ok {
				t.Fatalf("ok: expected %v, got %v", tt.ok, ok)
			}
			if ok && s != tt.sign {
				t.Errorf("expected sign %d, got %d", tt.sign, s)
			}
		})
	}
}
