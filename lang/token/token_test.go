package token_test

import (
	"testing"

	"github.com/lumen-lang/lumen/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		lit  string
		want token.Token
	}{
		{"and", token.AND},
		{"while", token.WHILE},
		{"this", token.THIS},
		{"super", token.SUPER},
		{"foo", token.IDENT},
		{"", token.IDENT},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, token.Lookup(c.lit), "lookup(%q)", c.lit)
	}
}

func TestSynchronizing(t *testing.T) {
	assert.True(t, token.Synchronizing(token.CLASS))
	assert.True(t, token.Synchronizing(token.RETURN))
	assert.False(t, token.Synchronizing(token.PLUS))
	assert.False(t, token.Synchronizing(token.IDENT))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "'+'", token.PLUS.GoString())
	assert.Equal(t, "identifier", token.IDENT.GoString())
}
