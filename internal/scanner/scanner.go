// Package scanner implements golox's lexical scanner: source string in,
// ordered Token sequence out, terminated by exactly one EOF token.
//
// A single forward pass walks a rune slice tracking line position, built
// with a functional-options constructor. The scanner never aborts on bad
// input: it records an error and keeps going so a whole file's lexical
// errors are reported in one pass.
package scanner

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/token"
)

// Scanner turns golox source text into a stream of Tokens.
type Scanner struct {
	source   []rune
	rawRunes []rune // pre-normalization source, kept for WithoutNormalization
	start    int
	current  int
	line     int

	tokens []token.Token
	errors []*diag.LexError
}

// Option configures a Scanner at construction time.
type Option func(*Scanner)

// WithoutNormalization scans the source exactly as given, skipping the
// default Unicode NFC normalization pass. Useful for tests that assert on
// raw rune offsets.
func WithoutNormalization() Option {
	return func(s *Scanner) {
		s.source = s.rawRunes
	}
}

// New creates a Scanner for the given source, NFC-normalized by default so
// that string literal contents built from combining-character sequences
// compare consistently regardless of how the source file happened to
// encode them. Identifiers are ASCII-only, so normalization never changes
// an identifier or keyword.
func New(source string, opts ...Option) *Scanner {
	s := &Scanner{
		line:     1,
		rawRunes: []rune(source),
	}
	s.source = []rune(norm.NFC.String(source))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanTokens runs the scanner to completion and returns the full token
// sequence (always ending in exactly one EOF token) plus any lexical
// errors encountered. Errors do not stop scanning: every lexical error in
// the input is reported in one pass.
func (s *Scanner) ScanTokens() ([]token.Token, []*diag.LexError) {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", nil, s.line))
	return s.tokens, s.errors
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	ch := s.source[s.current]
	s.current++
	return ch
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) match(expected rune) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) addToken(kind token.Kind, literal any) {
	lexeme := string(s.source[s.start:s.current])
	s.tokens = append(s.tokens, token.New(kind, lexeme, literal, s.line))
}

func (s *Scanner) errorf(line int, format string, args ...any) {
	s.errors = append(s.errors, &diag.LexError{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.addToken(token.LEFT_PAREN, nil)
	case ')':
		s.addToken(token.RIGHT_PAREN, nil)
	case '{':
		s.addToken(token.LEFT_BRACE, nil)
	case '}':
		s.addToken(token.RIGHT_BRACE, nil)
	case ',':
		s.addToken(token.COMMA, nil)
	case '.':
		s.addToken(token.DOT, nil)
	case '-':
		s.addToken(token.MINUS, nil)
	case '+':
		s.addToken(token.PLUS, nil)
	case ';':
		s.addToken(token.SEMICOLON, nil)
	case '*':
		s.addToken(token.STAR, nil)
	case '!':
		s.addToken(twoCharKind(s.match('='), token.BANG_EQUAL, token.BANG), nil)
	case '=':
		s.addToken(twoCharKind(s.match('='), token.EQUAL_EQUAL, token.EQUAL), nil)
	case '<':
		s.addToken(twoCharKind(s.match('='), token.LESS_EQUAL, token.LESS), nil)
	case '>':
		s.addToken(twoCharKind(s.match('='), token.GREATER_EQUAL, token.GREATER), nil)
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.SLASH, nil)
		}
	case ' ', '\r', '\t':
		// whitespace
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isAlpha(ch):
			s.scanIdentifier()
		default:
			s.errorf(s.line, "Unexpected character: %c", ch)
		}
	}
}

func twoCharKind(matched bool, two, one token.Kind) token.Kind {
	if matched {
		return two
	}
	return one
}

func (s *Scanner) scanString() {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		s.errorf(startLine, "Unterminated string.")
		return
	}

	// consume the closing quote
	s.advance()

	value := string(s.source[s.start+1 : s.current-1])
	s.addToken(token.STRING, value)
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := string(s.source[s.start:s.current])
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// Unreachable for any lexeme this scanner's digit grammar can
		// produce, but kept defensive since ParseFloat has a richer error
		// surface than that grammar does.
		s.errorf(s.line, "Malformed number: %s", lexeme)
		return
	}
	s.addToken(token.NUMBER, value)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := string(s.source[s.start:s.current])
	if kind, ok := token.Keywords[text]; ok {
		s.addToken(kind, nil)
		return
	}
	s.addToken(token.IDENTIFIER, nil)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlphaNumeric(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
