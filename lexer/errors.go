package lexer

import "fmt"

type UnterminatedStringError struct{}

func (e UnterminatedStringError) Error() string {
	return "unclosed quotation"
}

// IllegalCharacterError is raised when an identifier run hits a character
// that is neither alphanumeric, whitespace, nor an operator start.
type IllegalCharacterError struct {
	Char rune
}

func (e IllegalCharacterError) Error() string {
	return fmt.Sprintf("illegal character %q in identifier", e.Char)
}

type UnexpectedOperatorError struct {
	Char rune
}

func (e UnexpectedOperatorError) Error() string {
	return fmt.Sprintf("unexpected operator character %q", e.Char)
}

// MalformedNumberError is raised for digit runs that are not a valid number,
// such as "1.2.3".
type MalformedNumberError struct {
	Text string
	Err  error
}

func (e MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number %q", e.Text)
}

func (e MalformedNumberError) Unwrap() error {
	return e.Err
}
