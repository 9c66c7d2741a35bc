package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "LPAREN", LPAREN.String())
	assert.Equal(t, "NEQ", NEQ.String())
	assert.Equal(t, "IDENTIFIER", IDENTIFIER.String())
	assert.Equal(t, "WHILE", WHILE.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "TokenType(200)", TokenType(200).String())
}

func TestTokenString(t *testing.T) {
	tok := NewToken(NUMBER, "3.14", 3.14, 7)
	assert.Equal(t, "NUMBER: '3.14' 3.14 7", tok.String())

	eof := NewToken(EOF, "", nil, 1)
	assert.Equal(t, "EOF: '' <nil> 1", eof.String())
}
