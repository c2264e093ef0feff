package core

import (
	"sort"
)

// Expr is the interface shared by the four node shapes: Symbol, Value,
// Unary and Binary. Nodes are immutable and structurally shared; every
// rewrite produces a new root and references existing children.
//
// Expressions are only ever combined through the smart constructors
// (Add, Sub, Mul, Div, Pow and the unary constructors), which apply the
// engine's identity and structural rewrites before emitting a node.
type Expr interface {
	String() string

	// Equal reports structural equality. Use Equivalent for equality
	// modulo distributive expansion.
	Equal(rhs Expr) bool
}

// UnaryOp tags the unary operators.
type UnaryOp int

const (
	OpAbs UnaryOp = iota
	OpNeg
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpExp
	OpLog
	OpSign
)

var unaryNames = [...]string{
	OpAbs:  "abs",
	OpNeg:  "-",
	OpSin:  "sin",
	OpCos:  "cos",
	OpTan:  "tan",
	OpAsin: "asin",
	OpAcos: "acos",
	OpAtan: "atan",
	OpExp:  "exp",
	OpLog:  "log",
	OpSign: "sign",
}

func (op UnaryOp) String() string {
	return unaryNames[op]
}

// BinaryOp tags the binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

var binaryNames = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "**",
}

func (op BinaryOp) String() string {
	return binaryNames[op]
}

// Symbol is a named leaf. A bracketed index suffix, as in "theta[2]", is
// part of the name. Two independently-built symbols with the same name
// are equal and interchangeable.
type Symbol struct {
	Name string
}

func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

func (s Symbol) Equal(rhs Expr) bool {
	other, ok := rhs.(Symbol)
	return ok && other.Name == s.Name
}

// Value implements Expr directly: a value leaf is the value itself.
func (v Value) Equal(rhs Expr) bool {
	other, ok := rhs.(Value)
	return ok && v.EqualValue(other)
}

// Unary is an operator applied to one child.
type Unary struct {
	Op UnaryOp
	X  Expr
}

func (u *Unary) Equal(rhs Expr) bool {
	other, ok := rhs.(*Unary)
	return ok && u.Op == other.Op && u.X.Equal(other.X)
}

// Binary is an operator applied to two children. For the commutative
// operators the constructors keep operands in canonical order.
type Binary struct {
	Op BinaryOp
	L  Expr
	R  Expr
}

func (b *Binary) Equal(rhs Expr) bool {
	other, ok := rhs.(*Binary)
	return ok && b.Op == other.Op && b.L.Equal(other.L) && b.R.Equal(other.R)
}

// Equivalent reports equality modulo the simplifier's normalizations:
// structural equality first, then comparison of the distributively
// expanded renderings. Reference identity is never relied on.
func Equivalent(a, b Expr) bool {
	if a.Equal(b) {
		return true
	}
	return Expand(a).String() == Expand(b).String()
}

// Symbols returns the sorted set of free symbol names in e.
func Symbols(e Expr) []string {
	set := map[string]struct{}{}
	collectSymbols(e, set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectSymbols(e Expr, set map[string]struct{}) {
	switch t := e.(type) {
	case Symbol:
		set[t.Name] = struct{}{}
	case *Unary:
		collectSymbols(t.X, set)
	case *Binary:
		collectSymbols(t.L, set)
		collectSymbols(t.R, set)
	}
}

// HasSymbol reports whether the symbol name occurs free in e.
func HasSymbol(e Expr, name string) bool {
	switch t := e.(type) {
	case Symbol:
		return t.Name == name
	case *Unary:
		return HasSymbol(t.X, name)
	case *Binary:
		return HasSymbol(t.L, name) || HasSymbol(t.R, name)
	}
	return false
}
