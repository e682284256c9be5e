package ast_test

import (
	"testing"

	"github.com/takoeight0821/lox/ast"
	"github.com/takoeight0821/lox/token"
)

func number(v float64) *ast.Literal {
	return &ast.Literal{Token: token.Token{Kind: token.NUMBER, Literal: v}}
}

func str(s string) *ast.Literal {
	return &ast.Literal{Token: token.Token{Kind: token.STRING, Literal: s}}
}

func keyword(kind token.Kind) *ast.Literal {
	return &ast.Literal{Token: token.Token{Kind: kind, Lexeme: kind.Symbol()}}
}

func op(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Lexeme: kind.Symbol()}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		node     ast.Node
		expected string
	}{
		{&ast.Binary{Left: number(1.5), Op: op(token.PLUS), Right: number(1.5)}, "1.5 + 1.5"},
		{&ast.Grouping{Expr: &ast.Binary{Left: number(5), Op: op(token.STAR), Right: number(4)}}, "(5 * 4)"},
		{str("hello"), "hello"},
		{&ast.Unary{Op: op(token.MINUS), Operand: number(1)}, "-1"},
		{&ast.Unary{Op: op(token.BANG), Operand: keyword(token.NIL)}, "!nil"},
		{&ast.Binary{Left: keyword(token.TRUE), Op: op(token.BANGEQUAL), Right: keyword(token.FALSE)}, "true != false"},
		{number(0.1), "0.1"},
		{number(1e21), "1000000000000000000000"},
	}

	for _, tc := range testcases {
		if actual := ast.Print(tc.node); actual != tc.expected {
			t.Errorf("Print(%v) returned %q, expected %q", tc.node, actual, tc.expected)
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	node := &ast.Binary{
		Left:  &ast.Unary{Op: op(token.MINUS), Operand: number(123)},
		Op:    op(token.STAR),
		Right: &ast.Grouping{Expr: str("45.67")},
	}
	expected := `(binary (unary - (literal 123)) * (grouping (literal "45.67")))`
	if actual := node.String(); actual != expected {
		t.Errorf("String() returned %q, expected %q", actual, expected)
	}
}

func TestLiteralValue(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		literal  *ast.Literal
		expected any
	}{
		{number(2), 2.0},
		{str("s"), "s"},
		{keyword(token.TRUE), true},
		{keyword(token.FALSE), false},
		{keyword(token.NIL), nil},
	}
	for _, tc := range testcases {
		if actual := tc.literal.Value(); actual != tc.expected {
			t.Errorf("%v.Value() returned %v, expected %v", tc.literal, actual, tc.expected)
		}
	}
}

// depth counts the nesting of a tree through a Repr.
type depth struct{}

func (depth) Binary(left int, _ token.Token, right int) int { return max(left, right) + 1 }
func (depth) Unary(_ token.Token, operand int) int { return operand + 1 }
func (depth) Grouping(expr int) int { return expr + 1 }
func (depth) Literal(token.Token) int { return 1 }

func TestFold(t *testing.T) {
	t.Parallel()

	node := &ast.Binary{
		Left:  number(1),
		Op:    op(token.PLUS),
		Right: &ast.Grouping{Expr: &ast.Unary{Op: op(token.MINUS), Operand: number(2)}},
	}
	if d := ast.Fold[int](depth{}, node); d != 4 {
		t.Errorf("Fold(depth) returned %d, expected 4", d)
	}

	rebuilt := ast.Fold[ast.Node](ast.Builder{}, node)
	if rebuilt == ast.Node(node) {
		t.Errorf("Fold(Builder) returned the same tree")
	}
	if rebuilt.String() != node.String() {
		t.Errorf("Fold(Builder) returned %v, expected %v", rebuilt, node)
	}
}

func TestTraversal(t *testing.T) {
	t.Parallel()

	one, two := number(1), number(2)
	neg := &ast.Unary{Op: op(token.MINUS), Operand: two}
	sum := &ast.Binary{Left: one, Op: op(token.PLUS), Right: neg}

	children := ast.Children(sum)
	if len(children) != 2 || children[0] != ast.Node(one) || children[1] != ast.Node(neg) {
		t.Errorf("Children returned %v", children)
	}
	if len(ast.Children(one)) != 0 {
		t.Errorf("literal has children")
	}

	universe := ast.Universe(sum)
	expected := []ast.Node{one, two, neg, sum}
	if len(universe) != len(expected) {
		t.Fatalf("Universe returned %v, expected %v", universe, expected)
	}
	for i := range expected {
		if universe[i] != expected[i] {
			t.Errorf("Universe()[%d] = %v, expected %v", i, universe[i], expected[i])
		}
	}
}

func TestBase(t *testing.T) {
	t.Parallel()

	one := &ast.Literal{Token: token.Token{Kind: token.NUMBER, Lexeme: "1", Line: 2, Column: 4, Literal: 1.0}}
	minus := token.Token{Kind: token.MINUS, Lexeme: "-", Line: 2, Column: 3}
	plus := token.Token{Kind: token.PLUS, Lexeme: "+", Line: 2, Column: 7}

	testcases := []struct {
		node     ast.Node
		expected token.Token
	}{
		{one, one.Token},
		{&ast.Unary{Op: minus, Operand: one}, minus},
		{&ast.Binary{Left: one, Op: plus, Right: one}, plus},
		{&ast.Grouping{Expr: &ast.Unary{Op: minus, Operand: one}}, minus},
		{&ast.Grouping{Expr: &ast.Grouping{Expr: one}}, one.Token},
	}

	for _, tc := range testcases {
		if actual := tc.node.Base(); actual != tc.expected {
			t.Errorf("%v.Base() = %v, expected %v", tc.node, actual, tc.expected)
		}
	}
}
