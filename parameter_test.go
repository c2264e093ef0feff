package symexpr

import (
	"errors"
	"math"
	"testing"

	"github.com/symatic/symexpr/core"
)

func TestParameter_ZeroValue(t *testing.T) {
	var p Parameter
	if got := p.String(); got != "0" {
		t.Errorf("zero Parameter: expected %q, got %q", "0", got)
	}
	f, err := p.Real()
	if err != nil || f != 0 {
		t.Errorf("zero Parameter Real(): got %v, %v", f, err)
	}
}

func TestParameter_Arithmetic(t *testing.T) {
	x := NewParameter("x")
	y := NewParameter("y")

	tests := []struct {
		name     string
		param    Parameter
		expected string
	}{
		{"add", x.Add(y), "x + y"},
		{"sub cancels", x.Add(y).Sub(y), "x"},
		{"mul", x.Mul(FromInt(2)), "2*x"},
		{"div cancels", x.Div(y).Mul(y), "x"},
		{"pow", x.Pow(FromInt(3)), "x**3"},
		{"neg", x.Neg(), "-x"},
		{"sqrt lowers to pow", x.Sqrt(), "x**0.5"},
		{"unary call", x.Sin(), "sin(x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.param.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParameter_Equal(t *testing.T) {
	x := NewParameter("x")
	y := NewParameter("y")
	z := NewParameter("z")

	if !x.Add(y).Equal(y.Add(x)) {
		t.Errorf("x+y should equal y+x")
	}
	// equality modulo expansion
	factored := x.Mul(y.Add(z))
	distributed := x.Mul(y).Add(x.Mul(z))
	if !factored.Equal(distributed) {
		t.Errorf("x*(y+z) should equal x*y + x*z")
	}
	if x.Equal(y) {
		t.Errorf("x should not equal y")
	}
}

func TestParameter_Symbols(t *testing.T) {
	p := MustParse("theta[1]*x + sin(y)")
	got := p.Symbols()
	want := []string{"theta[1]", "x", "y"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
	if p.NumSymbols() != 3 {
		t.Errorf("NumSymbols: expected 3, got %d", p.NumSymbols())
	}
	if !p.HasSymbol("theta[1]") || p.HasSymbol("theta[0]") {
		t.Errorf("HasSymbol misreported")
	}
}

func TestParameter_Bind(t *testing.T) {
	p := MustParse("x*x + 1")
	bound := p.BindFloat(map[string]float64{"x": 2.0})
	f, err := bound.Real()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 5 {
		t.Errorf("expected 5, got %v", f)
	}
	if !bound.IsReal() || bound.IsComplex() {
		t.Errorf("bound value should be real")
	}
}

func TestParameter_UnresolvedErrors(t *testing.T) {
	p := MustParse("x + y")
	if _, err := p.Real(); !errors.Is(err, ErrUnresolved) {
		t.Errorf("Real: expected ErrUnresolved, got %v", err)
	}
	if _, err := p.Complex(); !errors.Is(err, ErrUnresolved) {
		t.Errorf("Complex: expected ErrUnresolved, got %v", err)
	}
	if _, err := p.Int(); !errors.Is(err, ErrUnresolved) {
		t.Errorf("Int: expected ErrUnresolved, got %v", err)
	}
	// binding every symbol clears the condition
	bound := p.Bind(map[string]core.Value{"x": core.NewInt(1), "y": core.NewInt(2)})
	n, err := bound.Int()
	if err != nil || n != 3 {
		t.Errorf("bound Int: got %v, %v", n, err)
	}
}

func TestParameter_IntRejectsFractions(t *testing.T) {
	p := MustParse("7/2")
	if _, err := p.Int(); err == nil {
		t.Errorf("3.5 should not convert to integer")
	}
}

func TestParameter_Subs(t *testing.T) {
	p := MustParse("x*x")
	q := p.Subs(map[string]Parameter{"x": MustParse("y + 1")})
	if got := q.String(); got != "(1 + y)*(1 + y)" {
		t.Errorf("expected %q, got %q", "(1 + y)*(1 + y)", got)
	}
	// substitution then binding agrees with direct evaluation
	f, err := q.BindFloat(map[string]float64{"y": 2}).Real()
	if err != nil || f != 9 {
		t.Errorf("(y+1)^2 at y=2: got %v, %v", f, err)
	}
}

func TestParameter_Derivative(t *testing.T) {
	p := MustParse("x**3")
	if got := p.Derivative("x").String(); got != "3*x**2" {
		t.Errorf("expected %q, got %q", "3*x**2", got)
	}
	if got := MustParse("sin(x)").Derivative("x").String(); got != "cos(x)" {
		t.Errorf("expected %q, got %q", "cos(x)", got)
	}
}

func TestParameter_Conjugate(t *testing.T) {
	p := FromComplex(1 + 2i)
	c, err := p.Conjugate().Complex()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 1-2i {
		t.Errorf("expected (1-2i), got %v", c)
	}
}

func TestParameter_Sign(t *testing.T) {
	if s, err := MustParse("abs(x)").Sign(); err != nil || s != 1 {
		t.Errorf("sign(abs(x)): got %v, %v", s, err)
	}
	if s, err := FromFloat(-2.5).Sign(); err != nil || s != -1 {
		t.Errorf("sign(-2.5): got %v, %v", s, err)
	}
	if _, err := NewParameter("x").Sign(); err == nil {
		t.Errorf("sign(x) should be undetermined")
	}
}

func TestParameter_ImagOfReal(t *testing.T) {
	p := FromFloat(2.5)
	im, err := p.Imag()
	if err != nil || math.Abs(im) > 0 {
		t.Errorf("imag(2.5): got %v, %v", im, err)
	}
}
