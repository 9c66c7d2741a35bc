package token

import "fmt"

//go:generate go tool stringer -type=TokenType
type TokenType byte

// Token is one classified lexeme. Literal holds the parsed value for
// STRING (string) and NUMBER (float64) tokens and is nil for everything
// else. Tokens are never mutated after creation.
type Token struct {
	Kind    TokenType
	Lexeme  string
	Literal any
	Line    int
}

func NewToken(kind TokenType, lexeme string, literal any, line int) Token {
	return Token{kind, lexeme, literal, line}
}

func (t Token) String() string {
	return fmt.Sprintf("%s: '%s' %v %d", t.Kind, t.Lexeme, t.Literal, t.Line)
}

const (
	// Single character tokens.
	LPAREN TokenType = iota
	RPAREN
	LBRACE
	RBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR
	// One or two character tokens.
	BANG
	NEQ
	EQ
	EQ_EQ
	GT
	GT_EQ
	LT
	LT_EQ
	// Literals.
	IDENTIFIER
	STRING
	NUMBER
	// Keywords.
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	TRUE
	VAR
	WHILE

	EOF

	NUM_TOKENS
)
