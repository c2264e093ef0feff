// Package symexpr is a symbolic scalar expression engine: a small
// computer-algebra kernel for scalar arithmetic over named symbols.
//
// Expressions are immutable trees built exclusively through smart
// constructors that simplify eagerly: constants fold across the integer,
// real and complex kinds, identities vanish, commutative operands take a
// canonical order, like terms collect, and matching factors cancel. The
// kernel supports numeric binding, symbolic substitution,
// differentiation, conjugation, evaluation and infix rendering.
//
// The engine is purely functional: no operation mutates an existing
// node, so trees may be shared freely across goroutines.
package symexpr

// Parse converts text into a Parameter. The grammar covers decimal
// literals (with a trailing i for imaginary values), symbol names with
// optional bracketed indices, the binary operators + - * / **, unary
// minus, parentheses, and function-call syntax for the named unaries.
func Parse(input string) (Parameter, error) {
	expr, err := ParseExpr(input)
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{expr: expr}, nil
}

// MustParse is Parse for known-good input; it panics on error.
func MustParse(input string) Parameter {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}
