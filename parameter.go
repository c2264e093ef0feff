package symexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/symatic/symexpr/core"
)

// ErrUnresolved is returned by the numeric accessors when the expression
// still contains unbound symbols.
var ErrUnresolved = errors.New("expression contains unbound symbols")

// Parameter is the value-like wrapper around an expression tree. The
// zero Parameter is the real value 0. All operations return fresh
// Parameters; the underlying trees are immutable and safely shared.
type Parameter struct {
	expr core.Expr
}

// NewParameter creates a symbolic parameter with the given name. An
// index suffix such as "theta[3]" is part of the name.
func NewParameter(name string) Parameter {
	return Parameter{expr: core.NewSymbol(name)}
}

// FromExpr wraps an existing expression tree.
func FromExpr(e core.Expr) Parameter {
	return Parameter{expr: e}
}

func FromInt(i int64) Parameter {
	return Parameter{expr: core.NewInt(i)}
}

func FromFloat(f float64) Parameter {
	return Parameter{expr: core.NewReal(f)}
}

func FromComplex(c complex128) Parameter {
	return Parameter{expr: core.NewComplex(c)}
}

// Expr returns the underlying expression tree.
func (p Parameter) Expr() core.Expr {
	return p.root()
}

func (p Parameter) root() core.Expr {
	if p.expr == nil {
		return core.NewReal(0)
	}
	return p.expr
}

func (p Parameter) String() string {
	return p.root().String()
}

// Equal reports equality modulo the simplifier's normalizations.
func (p Parameter) Equal(rhs Parameter) bool {
	return core.Equivalent(p.root(), rhs.root())
}

// Arithmetic. Every operation funnels through the smart constructors and
// returns a simplified tree.

func (p Parameter) Add(rhs Parameter) Parameter {
	return Parameter{expr: core.Add(p.root(), rhs.root())}
}

func (p Parameter) Sub(rhs Parameter) Parameter {
	return Parameter{expr: core.Sub(p.root(), rhs.root())}
}

func (p Parameter) Mul(rhs Parameter) Parameter {
	return Parameter{expr: core.Mul(p.root(), rhs.root())}
}

func (p Parameter) Div(rhs Parameter) Parameter {
	return Parameter{expr: core.Div(p.root(), rhs.root())}
}

func (p Parameter) Pow(rhs Parameter) Parameter {
	return Parameter{expr: core.Pow(p.root(), rhs.root())}
}

func (p Parameter) Neg() Parameter  { return Parameter{expr: core.Neg(p.root())} }
func (p Parameter) Abs() Parameter  { return Parameter{expr: core.Abs(p.root())} }
func (p Parameter) Sin() Parameter  { return Parameter{expr: core.Sin(p.root())} }
func (p Parameter) Cos() Parameter  { return Parameter{expr: core.Cos(p.root())} }
func (p Parameter) Tan() Parameter  { return Parameter{expr: core.Tan(p.root())} }
func (p Parameter) Asin() Parameter { return Parameter{expr: core.Asin(p.root())} }
func (p Parameter) Acos() Parameter { return Parameter{expr: core.Acos(p.root())} }
func (p Parameter) Atan() Parameter { return Parameter{expr: core.Atan(p.root())} }
func (p Parameter) Exp() Parameter  { return Parameter{expr: core.Exp(p.root())} }
func (p Parameter) Log() Parameter  { return Parameter{expr: core.Log(p.root())} }
func (p Parameter) Sqrt() Parameter { return Parameter{expr: core.Sqrt(p.root())} }

// SignExpr applies the sign function symbolically; see Sign for the
// numeric query.
func (p Parameter) SignExpr() Parameter {
	return Parameter{expr: core.SignExpr(p.root())}
}

// Conjugate conjugates every value leaf; symbols stand for real
// parameters.
func (p Parameter) Conjugate() Parameter {
	return Parameter{expr: core.Conjugate(p.root())}
}

// Symbols returns the sorted names of the free symbols.
func (p Parameter) Symbols() []string {
	return core.Symbols(p.root())
}

func (p Parameter) NumSymbols() int {
	return len(core.Symbols(p.root()))
}

func (p Parameter) HasSymbol(name string) bool {
	return core.HasSymbol(p.root(), name)
}

// Bind substitutes symbols with numeric values and returns the freshly
// simplified result.
func (p Parameter) Bind(binds map[string]core.Value) Parameter {
	return Parameter{expr: core.Bind(p.root(), binds)}
}

// BindFloat is a convenience for binding real values.
func (p Parameter) BindFloat(binds map[string]float64) Parameter {
	m := make(map[string]core.Value, len(binds))
	for name, f := range binds {
		m[name] = core.NewReal(f)
	}
	return p.Bind(m)
}

// Subs substitutes symbols with expressions, which may themselves
// contain free symbols.
func (p Parameter) Subs(subs map[string]Parameter) Parameter {
	m := make(map[string]core.Expr, len(subs))
	for name, sp := range subs {
		m[name] = sp.root()
	}
	return Parameter{expr: core.Subs(p.root(), m)}
}

// Derivative differentiates with respect to the named symbol.
func (p Parameter) Derivative(name string) Parameter {
	return Parameter{expr: core.Derivative(p.root(), core.NewSymbol(name))}
}

func (p Parameter) unresolved() error {
	return fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(p.Symbols(), ", "))
}

// Real returns the real part of the fully bound expression.
func (p Parameter) Real() (float64, error) {
	f, ok := core.RealPart(p.root())
	if !ok {
		return 0, p.unresolved()
	}
	return f, nil
}

// Imag returns the imaginary part of the fully bound expression.
func (p Parameter) Imag() (float64, error) {
	f, ok := core.ImagPart(p.root())
	if !ok {
		return 0, p.unresolved()
	}
	return f, nil
}

// Complex returns the fully bound expression as a complex128.
func (p Parameter) Complex() (complex128, error) {
	c, ok := core.ComplexVal(p.root())
	if !ok {
		return 0, p.unresolved()
	}
	return c, nil
}

// Int returns the fully bound expression as an int64. It fails when
// symbols remain or the value is not integer-valued within tolerance.
func (p Parameter) Int() (int64, error) {
	v, ok := core.Eval(p.root(), true)
	if !ok {
		return 0, p.unresolved()
	}
	if !v.IsInteger() {
		return 0, fmt.Errorf("value %s is not an integer", v)
	}
	return v.Int64(), nil
}

// IsReal reports whether the expression evaluates to a non-complex
// value. Unbound expressions report false.
func (p Parameter) IsReal() bool {
	v, ok := core.IsReal(p.root())
	return ok && v
}

// IsComplex reports whether the expression evaluates to a complex value.
func (p Parameter) IsComplex() bool {
	v, ok := core.IsComplex(p.root())
	return ok && v
}

// IsInteger reports whether the expression evaluates to an
// integer-valued result.
func (p Parameter) IsInteger() bool {
	v, ok := core.IsInteger(p.root())
	return ok && v
}

// Sign returns the sign of the expression, evaluating when possible and
// falling back to structural sign propagation.
func (p Parameter) Sign() (int, error) {
	s, ok := core.Sign(p.root())
	if !ok {
		return 0, fmt.Errorf("sign of %s is undetermined", p)
	}
	return s, nil
}
