package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/lox/token"
)

// AST

type Node interface {
	fmt.Stringer
	Base() token.Token
	// Plate applies the given function to each child node.
	// If f returns an error, f also must return the original argument n.
	// It is similar to Visitor pattern.
	// FYI: https://hackage.haskell.org/package/lens-5.2.3/docs/Control-Lens-Plated.html
	Plate(error, func(Node, error) (Node, error)) (Node, error)
}

type Binary struct {
	Left  Node
	Op    token.Token
	Right Node
}

func (b Binary) String() string {
	return parenthesize("binary", b.Left, stringer(b.Op.Kind.Symbol()), b.Right).String()
}

func (b *Binary) Base() token.Token {
	return b.Op
}

func (b *Binary) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	b.Left, err = f(b.Left, err)
	b.Right, err = f(b.Right, err)
	return b, err
}

var _ Node = &Binary{}

type Unary struct {
	Op      token.Token
	Operand Node
}

func (u Unary) String() string {
	return parenthesize("unary", stringer(u.Op.Kind.Symbol()), u.Operand).String()
}

func (u *Unary) Base() token.Token {
	return u.Op
}

func (u *Unary) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	u.Operand, err = f(u.Operand, err)
	return u, err
}

var _ Node = &Unary{}

type Grouping struct {
	Expr Node
}

func (g Grouping) String() string {
	return parenthesize("grouping", g.Expr).String()
}

func (g *Grouping) Base() token.Token {
	return g.Expr.Base()
}

func (g *Grouping) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	g.Expr, err = f(g.Expr, err)
	return g, err
}

var _ Node = &Grouping{}

// Literal is a number, string, true, false or nil.
type Literal struct {
	token.Token
}

func (l Literal) String() string {
	if l.Kind == token.STRING {
		return parenthesize("literal", stringer(strconv.Quote(l.Text()))).String()
	}
	return parenthesize("literal", stringer(l.Text())).String()
}

func (l *Literal) Base() token.Token {
	return l.Token
}

func (l *Literal) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return l, err
}

// Value returns the runtime form of the literal:
// float64 for numbers, string for strings, bool for true and false, nil for nil.
func (l Literal) Value() any {
	//exhaustive:ignore
	switch l.Kind {
	case token.TRUE:
		return true
	case token.FALSE:
		return false
	case token.NIL:
		return nil
	default:
		return l.Literal
	}
}

// Text returns the canonical text form of the literal.
// Strings are returned without quotes.
func (l Literal) Text() string {
	switch v := l.Value().(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

var _ Node = &Literal{}

type stringer string

func (s stringer) String() string {
	return string(s)
}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for i, elem := range elems {
		// ignore empty string
		// e.g. concat({}) == ""
		str := elem.String()
		if str == "" {
			continue
		}
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}

// Traverse the [Node] in depth-first order.
// f is called for each node.
// If f returns an error, f also must return the original argument n.
// Traverse modifies each child before n.
func Traverse(n Node, f func(Node, error) (Node, error)) (Node, error) {
	n, err := n.Plate(nil, func(n Node, err error) (Node, error) {
		return Traverse(n, f)
	})
	return f(n, err)
}

func Children(n Node) []Node {
	var children []Node
	_, err := n.Plate(nil, func(n Node, _ error) (Node, error) {
		children = append(children, n)
		return n, nil
	})
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}
	return children
}

// Universe returns n and all of its descendants, children first.
func Universe(n Node) []Node {
	var nodes []Node
	_, err := Traverse(n, func(n Node, _ error) (Node, error) {
		nodes = append(nodes, n)
		return n, nil
	})
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}
	return nodes
}
