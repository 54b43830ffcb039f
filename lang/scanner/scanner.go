// Package scanner tokenizes lumen source text into a stream of tokens for
// the parser to consume.
//
// Error accumulation reuses the standard library's go/scanner.ErrorList
// rather than a hand-rolled equivalent, the same trick the wider nenuphar
// lineage of this scanner uses for its own Error/ErrorList aliases.
package scanner

import (
	"fmt"
	"go/scanner"
	gotoken "go/token"
	"strconv"

	"github.com/lumen-lang/lumen/lang/token"
)

type (
	// Error is a single positioned scan, parse or resolve error.
	Error = scanner.Error
	// ErrorList is a sortable, position-ordered list of Error. Its Err method
	// returns nil if the list is empty, and otherwise the list itself as an
	// error.
	ErrorList = scanner.ErrorList
)

// Token is a single lexical token: its kind, the exact source slice it was
// scanned from, its optional literal payload, and its source line.
type Token struct {
	Kind   token.Token
	Lexeme string
	Line   int

	// Literal payload: at most one of these is meaningful, selected by Kind.
	// For IDENT, Str holds the lexeme again so the parser can use either
	// field interchangeably.
	Str     string
	Int     int64
	Float   float64
	IsFloat bool // distinguishes an integer NUMBER from a float NUMBER
}

func position(filename string, line int) gotoken.Position {
	return gotoken.Position{Filename: filename, Line: line}
}

// Scanner tokenizes a single source file.
type Scanner struct {
	filename string
	src      []byte
	errs     *ErrorList

	start, cur int
	line       int
}

// New creates a Scanner over src. filename is used only for error positions
// and may be empty.
func New(filename string, src []byte, errs *ErrorList) *Scanner {
	return &Scanner{filename: filename, src: src, errs: errs, line: 1}
}

// Scan tokenizes the entire source and returns the resulting tokens,
// terminated by a single EOF token. Errors are accumulated into the
// ErrorList passed to New; Scan never stops early because of them.
func (s *Scanner) Scan() []Token {
	var toks []Token
	for {
		tok := s.next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (s *Scanner) next() Token {
	s.skipWhitespaceAndComments()
	s.start = s.cur

	if s.atEnd() {
		return Token{Kind: token.EOF, Line: s.line}
	}

	c := s.advance()
	switch {
	case c == '(':
		return s.make(token.LPAREN)
	case c == ')':
		return s.make(token.RPAREN)
	case c == '{':
		return s.make(token.LBRACE)
	case c == '}':
		return s.make(token.RBRACE)
	case c == ',':
		return s.make(token.COMMA)
	case c == '.':
		return s.make(token.DOT)
	case c == '+':
		return s.make(token.PLUS)
	case c == ';':
		return s.make(token.SEMICOLON)
	case c == '*':
		return s.make(token.STAR)
	case c == '?':
		return s.make(token.QUESTION)
	case c == ':':
		return s.make(token.COLON)
	case c == '\\':
		return s.make(token.BACKSLASH)
	case c == '!':
		if s.match('=') {
			return s.make(token.BANG_EQ)
		}
		return s.make(token.BANG)
	case c == '=':
		if s.match('=') {
			return s.make(token.EQ_EQ)
		}
		return s.make(token.EQ)
	case c == '<':
		if s.match('=') {
			return s.make(token.LT_EQ)
		}
		return s.make(token.LT)
	case c == '>':
		if s.match('=') {
			return s.make(token.GT_EQ)
		}
		return s.make(token.GT)
	case c == '-':
		if s.match('>') {
			return s.make(token.ARROW)
		}
		return s.make(token.MINUS)
	case c == '/':
		return s.make(token.SLASH)
	case c == '"' || c == '\'':
		return s.stringLit(c)
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		return s.identifier()
	default:
		s.errorf("Unrecognized character [%c]", c)
		return s.make(token.ILLEGAL)
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch c := s.peek(); {
		case c == ' ' || c == '\r' || c == '\t':
			s.cur++
		case c == '\n':
			s.cur++
			s.line++
		case c == '/' && s.peekAt(1) == '/':
			for !s.atEnd() && s.peek() != '\n' {
				s.cur++
			}
		default:
			return
		}
	}
}

func (s *Scanner) stringLit(quote byte) Token {
	for !s.atEnd() && s.peek() != quote {
		if s.peek() == '\n' {
			s.line++
		}
		s.cur++
	}

	if s.atEnd() {
		s.errorf("Unterminated string")
		return s.make(token.STRING)
	}
	s.cur++ // closing quote

	tok := s.make(token.STRING)
	tok.Str = string(s.src[s.start+1 : s.cur-1])
	return tok
}

func (s *Scanner) number() Token {
	isFloat := false
	for isDigit(s.peek()) {
		s.cur++
	}
	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		isFloat = true
		s.cur++
		for isDigit(s.peek()) {
			s.cur++
		}
	}

	lit := string(s.src[s.start:s.cur])
	tok := s.make(token.NUMBER)
	tok.IsFloat = isFloat
	if isFloat {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			s.errorf("Invalid float literal [%s]", lit)
		}
		tok.Float = v
	} else {
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			s.errorf("Invalid integer literal [%s]", lit)
		}
		tok.Int = v
	}
	return tok
}

func (s *Scanner) identifier() Token {
	for isAlphaNumeric(s.peek()) {
		s.cur++
	}
	lit := string(s.src[s.start:s.cur])
	tok := s.make(token.Lookup(lit))
	tok.Str = lit
	return tok
}

func (s *Scanner) make(kind token.Token) Token {
	return Token{Kind: kind, Lexeme: string(s.src[s.start:s.cur]), Line: s.line}
}

func (s *Scanner) advance() byte {
	c := s.src[s.cur]
	s.cur++
	return c
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekAt(off int) byte {
	if s.cur+off >= len(s.src) {
		return 0
	}
	return s.src[s.cur+off]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.cur] != expected {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) errorf(format string, args ...any) {
	s.errs.Add(position(s.filename, s.line), fmt.Sprintf(format, args...))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
func isAlphaNumeric(c byte) bool { return isDigit(c) || isAlpha(c) }
