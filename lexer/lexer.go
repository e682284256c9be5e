package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/takoeight0821/lox/token"
	"github.com/takoeight0821/lox/utils"
)

// Result is either a scanned token or the error raised while scanning it.
type Result struct {
	Token token.Token
	Err   error
}

// Scan converts one source line into tokens and errors in source order.
// An error on one token does not stop the scan of the following ones.
// The sequence always ends with exactly one EOF token.
func Scan(line string, lineNo int) []Result {
	l := lexer{
		source: line,
		line:   lineNo,
		column: 1,
	}

	results := []Result{}
	for {
		l.skipWhitespace()
		if l.isAtEnd() {
			break
		}

		tok, err := l.scanToken()
		if err != nil {
			results = append(results, Result{Err: err})
			continue
		}
		if tok.Kind == token.COMMENT {
			continue
		}
		results = append(results, Result{Token: tok})
	}

	eof := token.Token{Kind: token.EOF, Lexeme: "", Line: l.line, Column: l.column, Literal: nil}

	return append(results, Result{Token: eof})
}

// Lex returns the tokens of line and all lexical errors joined together.
func Lex(line string, lineNo int) ([]token.Token, error) {
	results := Scan(line, lineNo)
	tokens := make([]token.Token, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		tokens = append(tokens, r.Token)
	}

	return tokens, errors.Join(errs...)
}

type lexer struct {
	source string

	start       int // start of current lexeme
	startColumn int // column of start
	current     int // current position in source
	line        int // line number given by the caller
	column      int // 1-based rune column of current
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width
	l.column++

	return runeValue
}

func (l *lexer) skipWhitespace() {
	for !l.isAtEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l lexer) lexeme() string {
	return l.source[l.start:l.current]
}

func (l lexer) token(kind token.Kind, literal any) token.Token {
	return token.Token{Kind: kind, Lexeme: l.lexeme(), Line: l.line, Column: l.startColumn, Literal: literal}
}

func (l lexer) errorAt(err error) error {
	where := token.Token{Kind: token.ILLEGAL, Lexeme: l.lexeme(), Line: l.line, Column: l.startColumn}

	return utils.PosError{Where: where, Err: err}
}

func (l *lexer) scanToken() (token.Token, error) {
	l.start = l.current
	l.startColumn = l.column

	char := l.peek()
	switch {
	case isOperatorStart(char):
		return l.operator()
	case isDigit(char):
		return l.number()
	case char == '"':
		return l.string()
	default:
		return l.identifier()
	}
}

const operatorStarts = "(){},.-+;/*!=><"

func isOperatorStart(c rune) bool {
	return strings.ContainsRune(operatorStarts, c)
}

var singleOperators = map[rune]token.Kind{
	'(': token.LEFTPAREN,
	')': token.RIGHTPAREN,
	'{': token.LEFTBRACE,
	'}': token.RIGHTBRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.MINUS,
	'+': token.PLUS,
	';': token.SEMICOLON,
	'*': token.STAR,
}

// These operators become a two-character operator when followed by '='.
var equalOperators = map[rune][2]token.Kind{
	'!': {token.BANG, token.BANGEQUAL},
	'=': {token.EQUAL, token.EQUALEQUAL},
	'>': {token.GREATER, token.GREATEREQUAL},
	'<': {token.LESS, token.LESSEQUAL},
}

func (l *lexer) operator() (token.Token, error) {
	char := l.advance()

	if k, ok := singleOperators[char]; ok {
		return l.token(k, nil), nil
	}

	if ks, ok := equalOperators[char]; ok {
		if l.peek() == '=' {
			l.advance()
			return l.token(ks[1], nil), nil
		}
		return l.token(ks[0], nil), nil
	}

	if char == '/' {
		if l.peek() == '/' {
			// the rest of the line is a comment
			for !l.isAtEnd() {
				l.advance()
			}
			return l.token(token.COMMENT, nil), nil
		}
		return l.token(token.SLASH, nil), nil
	}

	// Unreachable while every rune in operatorStarts has an entry above.
	// Guards against a new operator start being added without a rule.
	return token.Token{}, l.errorAt(UnexpectedOperatorError{Char: char})
}

// isDigit accepts any Unicode decimal digit so that numbers and identifiers
// agree on what a digit is. Only ASCII digits form a valid number.
func isDigit(c rune) bool {
	return unicode.IsDigit(c)
}

func (l *lexer) number() (token.Token, error) {
	for isDigit(l.peek()) || l.peek() == '.' {
		l.advance()
	}

	text := l.lexeme()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, l.errorAt(MalformedNumberError{Text: text, Err: err})
	}

	return l.token(token.NUMBER, value), nil
}

func (l *lexer) string() (token.Token, error) {
	l.advance() // opening quote

	for l.peek() != '"' && !l.isAtEnd() {
		l.advance()
	}

	if l.isAtEnd() {
		return token.Token{}, l.errorAt(UnterminatedStringError{})
	}

	l.advance() // closing quote

	value := l.source[l.start+1 : l.current-1]

	return l.token(token.STRING, value), nil
}

func isAlphaNumeric(c rune) bool {
	return unicode.IsLetter(c) || isDigit(c)
}

func (l *lexer) identifier() (token.Token, error) {
	for !l.isAtEnd() {
		c := l.peek()
		if isAlphaNumeric(c) {
			l.advance()
			continue
		}
		if unicode.IsSpace(c) || isOperatorStart(c) {
			break
		}

		// report the offending character, dropping the partial identifier
		l.start = l.current
		l.startColumn = l.column
		l.advance()

		return token.Token{}, l.errorAt(IllegalCharacterError{Char: c})
	}

	text := l.lexeme()
	if k, ok := token.LookupKeyword(text); ok {
		return l.token(k, nil), nil
	}

	return l.token(token.IDENT, text), nil
}
