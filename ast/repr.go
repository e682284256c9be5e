package ast

import (
	"fmt"

	"github.com/takoeight0821/lox/token"
)

// Repr is an interpretation of the expression tree with one method per node variant.
// Children are interpreted before their parent is.
type Repr[T any] interface {
	Binary(left T, op token.Token, right T) T
	Unary(op token.Token, operand T) T
	Grouping(expr T) T
	Literal(value token.Token) T
}

// Fold interprets n bottom-up with r.
func Fold[T any](r Repr[T], n Node) T {
	switch n := n.(type) {
	case *Binary:
		return r.Binary(Fold(r, n.Left), n.Op, Fold(r, n.Right))
	case *Unary:
		return r.Unary(n.Op, Fold(r, n.Operand))
	case *Grouping:
		return r.Grouping(Fold(r, n.Expr))
	case *Literal:
		return r.Literal(n.Token)
	default:
		panic(fmt.Sprintf("unexpected node %T", n))
	}
}

// Builder constructs Nodes.
type Builder struct{}

var _ Repr[Node] = Builder{}

func (b Builder) Binary(left Node, op token.Token, right Node) Node {
	return &Binary{Left: left, Op: op, Right: right}
}

func (b Builder) Unary(op token.Token, operand Node) Node {
	return &Unary{Op: op, Operand: operand}
}

func (b Builder) Grouping(expr Node) Node {
	return &Grouping{Expr: expr}
}

func (b Builder) Literal(value token.Token) Node {
	return &Literal{Token: value}
}
