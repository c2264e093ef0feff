package core

import (
	"math"
	"testing"
)

func TestDerivative_Basics(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"of the target", symX, "1"},
		{"of another symbol", symY, "0"},
		{"of a constant", NewReal(3.5), "0"},
		{"of sin", Sin(symX), "cos(x)"},
		{"of cos", Cos(symX), "-sin(x)"},
		{"of exp", Exp(symX), "exp(x)"},
		{"of log", Log(symX), "1/x"},
		{"of tan", Tan(symX), "1/cos(x)**2"},
		{"of neg", Neg(symX), "-1"},
		{"of x times x", Mul(symX, symX), "2*x"},
		{"of cube", Pow(symX, NewInt(3)), "3*x**2"},
		{"of symbolic power", Pow(symX, symY), "y*x**(y - 1)"},
		{"linearity", Add(Mul(NewInt(2), symX), symY), "2"},
		{"chain rule", Sin(Mul(symX, symX)), "2*x*cos(x*x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Derivative(tt.expr, symX).String()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDerivative_PowerRule(t *testing.T) {
	// n*x**(n-1) for integer n > 0
	for n := int64(2); n <= 5; n++ {
		e := Pow(symX, NewInt(n))
		got := Derivative(e, symX)
		want := Mul(NewInt(n), Pow(symX, NewInt(n-1)))
		if got.String() != want.String() {
			t.Errorf("d/dx x**%d: expected %q, got %q", n, want, got)
		}
	}
}

func TestDerivative_Quotient(t *testing.T) {
	// d/dx (x/y) with y free of x is 1/y
	got := Derivative(Div(symX, symY), symX)
	if got.String() != "y/(y*y)" && got.String() != "1/y" {
		t.Errorf("quotient rule: got %q", got)
	}
	// numerically: the derivative of x/y at y=2 is 0.5
	bound := Bind(got, map[string]Value{"y": NewReal(2)})
	v, ok := Eval(bound, true)
	if !ok || !v.EqualValue(NewReal(0.5)) {
		t.Errorf("quotient rule at y=2: got %s", bound)
	}
}

func TestDerivative_ExponentTarget(t *testing.T) {
	// with the target only in the exponent, u**v rewrites via exp(v*log(u))
	e := Pow(symY, symX)
	got := Derivative(e, symX)
	// d/dx y**x = y**x * log(y); check numerically at y=2, x=3
	bound := Bind(got, map[string]Value{"y": NewReal(2), "x": NewReal(3)})
	v, ok := Eval(bound, true)
	if !ok {
		t.Fatalf("derivative should evaluate when bound: %s", got)
	}
	want := 8 * math.Log(2)
	if math.Abs(v.Float64()-want) > 1e-9 {
		t.Errorf("d/dx 2**x at 3: expected %v, got %s", want, v)
	}
}

func TestDerivative_NoTarget(t *testing.T) {
	e := Pow(symY, symZ)
	if got := Derivative(e, symX); !got.Equal(NewReal(0)) {
		t.Errorf("derivative without the target: expected 0, got %s", got)
	}
}

func TestDeriveBy_RejectsNonSymbol(t *testing.T) {
	if _, err := DeriveBy(symX, NewInt(2)); err == nil {
		t.Errorf("expected error for a non-symbol target")
	}
}

func TestDerivative_Abs(t *testing.T) {
	got := Derivative(Abs(symX), symX)
	// x/|x|: sign of x
	bound := Bind(got, map[string]Value{"x": NewReal(-3)})
	v, ok := Eval(bound, true)
	if !ok || !v.EqualValue(NewReal(-1)) {
		t.Errorf("d/dx |x| at -3: expected -1, got %s", bound)
	}
}
