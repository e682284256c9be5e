package token

import "fmt"

type Kind int

const (
	EOF Kind = iota

	// ILLEGAL marks the position of a lexical error. The lexer never emits it.
	ILLEGAL

	// Single-character tokens.
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	BANG
	BANGEQUAL
	EQUAL
	EQUALEQUAL
	GREATER
	GREATEREQUAL
	LESS
	LESSEQUAL

	// COMMENT marks a consumed line comment. The lexer never emits it.
	COMMENT

	// Literals and identifiers.
	IDENT
	STRING
	NUMBER

	// Keywords.
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

var kindNames = [...]string{
	EOF:          "EOF",
	ILLEGAL:      "ILLEGAL",
	LEFTPAREN:    "LEFTPAREN",
	RIGHTPAREN:   "RIGHTPAREN",
	LEFTBRACE:    "LEFTBRACE",
	RIGHTBRACE:   "RIGHTBRACE",
	COMMA:        "COMMA",
	DOT:          "DOT",
	MINUS:        "MINUS",
	PLUS:         "PLUS",
	SEMICOLON:    "SEMICOLON",
	SLASH:        "SLASH",
	STAR:         "STAR",
	BANG:         "BANG",
	BANGEQUAL:    "BANGEQUAL",
	EQUAL:        "EQUAL",
	EQUALEQUAL:   "EQUALEQUAL",
	GREATER:      "GREATER",
	GREATEREQUAL: "GREATEREQUAL",
	LESS:         "LESS",
	LESSEQUAL:    "LESSEQUAL",
	COMMENT:      "COMMENT",
	IDENT:        "IDENT",
	STRING:       "STRING",
	NUMBER:       "NUMBER",
	AND:          "AND",
	CLASS:        "CLASS",
	ELSE:         "ELSE",
	FALSE:        "FALSE",
	FUN:          "FUN",
	FOR:          "FOR",
	IF:           "IF",
	NIL:          "NIL",
	OR:           "OR",
	PRINT:        "PRINT",
	RETURN:       "RETURN",
	SUPER:        "SUPER",
	THIS:         "THIS",
	TRUE:         "TRUE",
	VAR:          "VAR",
	WHILE:        "WHILE",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Class is the coarse category of a Kind.
type Class int

const (
	End Class = iota
	Invalid
	Operator
	Literal
	Keyword
)

func (c Class) String() string {
	switch c {
	case End:
		return "end"
	case Invalid:
		return "invalid"
	case Operator:
		return "operator"
	case Literal:
		return "literal"
	case Keyword:
		return "keyword"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

func (k Kind) Class() Class {
	switch {
	case k == EOF:
		return End
	case k == ILLEGAL:
		return Invalid
	case k >= LEFTPAREN && k <= COMMENT:
		return Operator
	case k >= IDENT && k <= NUMBER:
		return Literal
	default:
		return Keyword
	}
}

// Symbol returns the source spelling of an operator or keyword kind.
// Literal kinds and EOF have no fixed spelling and return "".
func (k Kind) Symbol() string {
	if s, ok := symbols[k]; ok {
		return s
	}
	for word, kind := range keywords {
		if kind == k {
			return word
		}
	}
	return ""
}

var symbols = map[Kind]string{
	LEFTPAREN:    "(",
	RIGHTPAREN:   ")",
	LEFTBRACE:    "{",
	RIGHTBRACE:   "}",
	COMMA:        ",",
	DOT:          ".",
	MINUS:        "-",
	PLUS:         "+",
	SEMICOLON:    ";",
	SLASH:        "/",
	STAR:         "*",
	BANG:         "!",
	BANGEQUAL:    "!=",
	EQUAL:        "=",
	EQUALEQUAL:   "==",
	GREATER:      ">",
	GREATEREQUAL: ">=",
	LESS:         "<",
	LESSEQUAL:    "<=",
	COMMENT:      "//",
}

var keywords = map[string]Kind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupKeyword reports the keyword kind spelled exactly as word.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Column  int
	Literal any
}

// Is reports whether t has the given kind. The literal payload is not compared.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d:%d, %v}", t.Kind, t.Lexeme, t.Line, t.Column, t.Literal)
}
