package scanner_test

import (
	"go/scanner"
	"testing"

	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
	"github.com/lumen-lang/lumen/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []lumscanner.Token {
	t.Helper()
	var errs scanner.ErrorList
	toks := lumscanner.New("", []byte(src), &errs).Scan()
	require.NoError(t, errs.Err())
	return toks
}

func kinds(toks []lumscanner.Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, `( ) { } , . - + ; * / ? : \ ! != = == < <= > >= ->`)
	assert.Equal(t, []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.SLASH, token.QUESTION, token.COLON, token.BACKSLASH,
		token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ, token.LT, token.LT_EQ,
		token.GT, token.GT_EQ, token.ARROW, token.EOF,
	}, kinds(toks))
}

func TestScanKeywordsAndIdent(t *testing.T) {
	toks := scanAll(t, "and class else false for fun if nil or print return super this true var while foo")
	want := []token.Token{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.IDENT, token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, "foo", toks[len(toks)-2].Str)
}

func TestScanIntAndFloat(t *testing.T) {
	toks := scanAll(t, "123 1.5")
	require.Len(t, toks, 3)
	assert.False(t, toks[0].IsFloat)
	assert.Equal(t, int64(123), toks[0].Int)
	assert.True(t, toks[1].IsFloat)
	assert.Equal(t, 1.5, toks[1].Float)
}

func TestScanString(t *testing.T) {
	toks := scanAll(t, `"hello" 'world'`)
	require.Len(t, toks, 3)
	assert.Equal(t, "hello", toks[0].Str)
	assert.Equal(t, "world", toks[1].Str)
}

func TestScanMultilineStringTracksLine(t *testing.T) {
	toks := scanAll(t, "\"a\nb\" 1")
	require.Len(t, toks, 3)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanLineComment(t *testing.T) {
	toks := scanAll(t, "1 // comment\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, int64(1), toks[0].Int)
	assert.Equal(t, int64(2), toks[1].Int)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	var errs scanner.ErrorList
	lumscanner.New("", []byte(`"abc`), &errs).Scan()
	require.Error(t, errs.Err())
	assert.Contains(t, errs.Err().Error(), "Unterminated string")
}

func TestScanUnrecognizedCharacter(t *testing.T) {
	var errs scanner.ErrorList
	lumscanner.New("", []byte("@"), &errs).Scan()
	require.Error(t, errs.Err())
	assert.Contains(t, errs.Err().Error(), "Unrecognized character")
}
