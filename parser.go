package symexpr

import (
	"fmt"
	"strconv"

	"github.com/symatic/symexpr/core"
)

// Parser converts text into an expression tree. It only ever builds
// through the core smart constructors, so a parsed tree arrives
// simplified. Malformed input is a fatal error; there is no partial
// parse.
//
// Precedence, low to high: add/sub, mul/div, pow (left-associative),
// unary minus, function application.
type Parser struct {
	lexer        *Lexer
	currentToken Token
	peekToken    Token
	errors       []string
}

func NewParser(lexer *Lexer) *Parser {
	p := &Parser{lexer: lexer}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, fmt.Sprintf("position %d: %s", p.currentToken.Position, msg))
}

// Parse consumes the whole input and returns the expression.
func (p *Parser) Parse() (core.Expr, error) {
	expr := p.parseAddSub()
	if len(p.errors) == 0 && p.currentToken.Type != EOF {
		p.addError(fmt.Sprintf("unexpected token %s", p.currentToken))
	}
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("parse error at %s", p.errors[0])
	}
	return expr, nil
}

func (p *Parser) parseAddSub() core.Expr {
	left := p.parseMulDiv()
	for len(p.errors) == 0 {
		switch p.currentToken.Type {
		case PLUS:
			p.nextToken()
			left = core.Add(left, p.parseMulDiv())
		case MINUS:
			p.nextToken()
			left = core.Sub(left, p.parseMulDiv())
		default:
			return left
		}
	}
	return left
}

func (p *Parser) parseMulDiv() core.Expr {
	left := p.parsePow()
	for len(p.errors) == 0 {
		switch p.currentToken.Type {
		case MULTIPLY:
			p.nextToken()
			left = core.Mul(left, p.parsePow())
		case DIVIDE:
			p.nextToken()
			left = core.Div(left, p.parsePow())
		default:
			return left
		}
	}
	return left
}

func (p *Parser) parsePow() core.Expr {
	left := p.parseUnary()
	for len(p.errors) == 0 && p.currentToken.Type == POWER {
		p.nextToken()
		left = core.Pow(left, p.parseUnary())
	}
	return left
}

func (p *Parser) parseUnary() core.Expr {
	if p.currentToken.Type == MINUS {
		p.nextToken()
		return core.Neg(p.parseUnary())
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() core.Expr {
	switch p.currentToken.Type {
	case INTEGER:
		return p.parseInteger()
	case FLOAT:
		return p.parseFloat()
	case IMAGINARY:
		return p.parseImaginary()
	case SYMBOL:
		return p.parseSymbolOrCall()
	case LPAREN:
		return p.parseGrouped()
	default:
		p.addError(fmt.Sprintf("unexpected token %s", p.currentToken))
		return core.NewReal(0)
	}
}

func (p *Parser) parseInteger() core.Expr {
	n, err := strconv.ParseInt(p.currentToken.Value, 10, 64)
	if err != nil {
		// out of int64 range; fall back to real
		f, ferr := strconv.ParseFloat(p.currentToken.Value, 64)
		if ferr != nil {
			p.addError(fmt.Sprintf("invalid number %q", p.currentToken.Value))
			return core.NewReal(0)
		}
		p.nextToken()
		return core.NewReal(f)
	}
	p.nextToken()
	return core.NewInt(n)
}

func (p *Parser) parseFloat() core.Expr {
	f, err := strconv.ParseFloat(p.currentToken.Value, 64)
	if err != nil {
		p.addError(fmt.Sprintf("invalid number %q", p.currentToken.Value))
		return core.NewReal(0)
	}
	p.nextToken()
	return core.NewReal(f)
}

func (p *Parser) parseImaginary() core.Expr {
	f, err := strconv.ParseFloat(p.currentToken.Value, 64)
	if err != nil {
		p.addError(fmt.Sprintf("invalid imaginary literal %q", p.currentToken.Value))
		return core.NewReal(0)
	}
	p.nextToken()
	return core.NewComplex(complex(0, f))
}

// unaryBuilders maps the function names the grammar accepts to their
// smart constructors.
var unaryBuilders = map[string]func(core.Expr) core.Expr{
	"abs":  core.Abs,
	"sin":  core.Sin,
	"cos":  core.Cos,
	"tan":  core.Tan,
	"asin": core.Asin,
	"acos": core.Acos,
	"atan": core.Atan,
	"exp":  core.Exp,
	"log":  core.Log,
	"sign": core.SignExpr,
	"sqrt": core.Sqrt,
}

func (p *Parser) parseSymbolOrCall() core.Expr {
	name := p.currentToken.Value
	if p.peekToken.Type != LPAREN {
		p.nextToken()
		return core.NewSymbol(name)
	}
	build, ok := unaryBuilders[name]
	if !ok {
		p.addError(fmt.Sprintf("unsupported unary operation %q", name))
		return core.NewReal(0)
	}
	p.nextToken() // onto (
	p.nextToken() // past (
	arg := p.parseAddSub()
	if p.currentToken.Type != RPAREN {
		p.addError(fmt.Sprintf("expected ')' closing %s, got %s", name, p.currentToken))
		return core.NewReal(0)
	}
	p.nextToken()
	return build(arg)
}

func (p *Parser) parseGrouped() core.Expr {
	p.nextToken() // past (
	expr := p.parseAddSub()
	if p.currentToken.Type != RPAREN {
		p.addError(fmt.Sprintf("expected ')', got %s", p.currentToken))
		return core.NewReal(0)
	}
	p.nextToken()
	return expr
}

// ParseExpr parses input into a core expression.
func ParseExpr(input string) (core.Expr, error) {
	return NewParser(NewLexer(input)).Parse()
}
