package parser

import (
	"github.com/takoeight0821/lox/ast"
	"github.com/takoeight0821/lox/token"
)

type Parser struct {
	tokens  []token.Token
	current int
	build   ast.Repr[ast.Node]
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, current: 0, build: ast.Builder{}}
}

// ParseExpr parses a single expression that must span the whole token sequence.
// The first syntax error aborts the parse.
func (p *Parser) ParseExpr() (ast.Node, error) {
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.IsAtEnd() {
		return nil, unexpectedToken(p.peek(), "end of input")
	}

	return node, nil
}

// expr = equality ;
func (p *Parser) expr() (ast.Node, error) {
	return p.equality()
}

// equality = comparison (("==" | "!=") comparison)* ;
func (p *Parser) equality() (ast.Node, error) {
	return p.binary(p.comparison, token.EQUALEQUAL, token.BANGEQUAL)
}

// comparison = term ((">" | ">=" | "<" | "<=") term)* ;
func (p *Parser) comparison() (ast.Node, error) {
	return p.binary(p.term, token.GREATER, token.GREATEREQUAL, token.LESS, token.LESSEQUAL)
}

// term = factor (("+" | "-") factor)* ;
func (p *Parser) term() (ast.Node, error) {
	return p.binary(p.factor, token.PLUS, token.MINUS)
}

// factor = unary (("/" | "*") unary)* ;
func (p *Parser) factor() (ast.Node, error) {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

// binary folds operand (op operand)* to the left.
func (p *Parser) binary(operand func() (ast.Node, error), ops ...token.Kind) (ast.Node, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = p.build.Binary(expr, op, right)
	}

	return expr, nil
}

// unary = ("!" | "-") unary | primary ;
func (p *Parser) unary() (ast.Node, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return p.build.Unary(op, operand), nil
	}

	return p.primary()
}

// primary = "false" | "true" | "nil" | NUMBER | STRING | "(" expr ")" ;
func (p *Parser) primary() (ast.Node, error) {
	if p.IsAtEnd() {
		return nil, unexpectedToken(p.peek(), "expression")
	}

	//exhaustive:ignore
	switch tok := p.advance(); tok.Kind {
	case token.FALSE, token.TRUE, token.NIL, token.NUMBER, token.STRING:
		return p.build.Literal(tok), nil
	case token.LEFTPAREN:
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.match(token.RIGHTPAREN) {
			return nil, unclosedGrouping(p.peek(), tok)
		}
		p.advance()

		return p.build.Grouping(expr), nil
	default:
		return nil, unexpectedToken(tok, "expression")
	}
}

func (p Parser) peek() token.Token {
	if p.current >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.current]
}

// eof stands in for a missing EOF token at the end of the sequence.
func (p Parser) eof() token.Token {
	if len(p.tokens) == 0 {
		return token.Token{Kind: token.EOF, Line: 1, Column: 1}
	}
	last := p.tokens[len(p.tokens)-1]
	return token.Token{Kind: token.EOF, Line: last.Line, Column: last.Column + len([]rune(last.Lexeme))}
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// IsAtEnd reports whether the cursor is past the last token or on EOF.
func (p Parser) IsAtEnd() bool {
	return p.current >= len(p.tokens) || p.peek().Kind == token.EOF
}

func (p Parser) match(kinds ...token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}
	for _, kind := range kinds {
		if p.peek().Is(kind) {
			return true
		}
	}

	return false
}
