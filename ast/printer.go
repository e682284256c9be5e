package ast

import "github.com/takoeight0821/lox/token"

// Printer renders an expression as infix source text.
// Only groupings written in the source are parenthesized.
type Printer struct{}

var _ Repr[string] = Printer{}

func Print(n Node) string {
	return Fold[string](Printer{}, n)
}

func (Printer) Binary(left string, op token.Token, right string) string {
	return left + " " + op.Kind.Symbol() + " " + right
}

func (Printer) Unary(op token.Token, operand string) string {
	return op.Kind.Symbol() + operand
}

func (Printer) Grouping(expr string) string {
	return "(" + expr + ")"
}

func (Printer) Literal(value token.Token) string {
	return Literal{Token: value}.Text()
}
