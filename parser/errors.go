package parser

import (
	"strings"

	"github.com/takoeight0821/lox/token"
	"github.com/takoeight0821/lox/utils"
)

type UnexpectedTokenError struct {
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	return "unexpected token: expected " + strings.Join(e.Expected, ", ")
}

// UnclosedGroupingError is raised when a "(" has no matching ")".
type UnclosedGroupingError struct {
	Open token.Token
}

func (e UnclosedGroupingError) Error() string {
	return "expected `)` to close `(`"
}

func unexpectedToken(t token.Token, expected ...string) error {
	return utils.PosError{Where: t, Err: UnexpectedTokenError{Expected: expected}}
}

func unclosedGrouping(t token.Token, open token.Token) error {
	return utils.PosError{Where: t, Err: UnclosedGroupingError{Open: open}}
}
