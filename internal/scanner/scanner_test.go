package scanner

import (
	"testing"

	"github.com/cwbudde/golox/internal/token"
)

func TestScanTokensPunctuation(t *testing.T) {
	tokens, errs := New("(()").ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}

	want := []token.Kind{
		token.LEFT_PAREN, token.LEFT_PAREN, token.RIGHT_PAREN, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("tokens[%d] = %s, want %s", i, tokens[i].Kind, kind)
		}
	}
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	tokens, errs := New("@").ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("got %d lex errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Error() != "[line 1] Error: Unexpected character: @" {
		t.Errorf("error = %q", errs[0].Error())
	}
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Errorf("tokens after a bad char = %+v, want just EOF", tokens)
	}
}

func TestScanTokensUnterminatedStringStopsScanning(t *testing.T) {
	tokens, errs := New(`"abc`).ScanTokens()
	if len(errs) != 1 || errs[0].Message != "Unterminated string." {
		t.Fatalf("errs = %+v", errs)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Errorf("tokens after an unterminated string = %+v, want just EOF", tokens)
	}
}

func TestScanTokensNumberAndString(t *testing.T) {
	tokens, errs := New(`42 3.14 "hi"`).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	if tokens[0].Kind != token.NUMBER || tokens[0].Literal.(float64) != 42 {
		t.Errorf("tokens[0] = %+v", tokens[0])
	}
	if tokens[1].Kind != token.NUMBER || tokens[1].Literal.(float64) != 3.14 {
		t.Errorf("tokens[1] = %+v", tokens[1])
	}
	if tokens[2].Kind != token.STRING || tokens[2].Literal.(string) != "hi" {
		t.Errorf("tokens[2] = %+v", tokens[2])
	}
}

func TestScanTokensKeywordBoundary(t *testing.T) {
	tokens, _ := New("orchid or").ScanTokens()
	if tokens[0].Kind != token.IDENTIFIER || tokens[0].Lexeme != "orchid" {
		t.Errorf("tokens[0] = %+v, want IDENTIFIER orchid", tokens[0])
	}
	if tokens[1].Kind != token.OR {
		t.Errorf("tokens[1] = %+v, want OR", tokens[1])
	}
}

func TestScanTokensLineTracking(t *testing.T) {
	tokens, _ := New("1\n2\n3").ScanTokens()
	var lines []int
	for _, tok := range tokens {
		lines = append(lines, tok.Line)
	}
	want := []int{1, 2, 3, 3}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("tokens[%d].Line = %d, want %d", i, lines[i], want[i])
		}
	}
}

func TestWithoutNormalization(t *testing.T) {
	// A string literal holding "e" followed by a combining acute accent
	// (U+0301); NFC folds this decomposed sequence into the single
	// precomposed codepoint, so the STRING token's lexeme is shorter.
	src := `"e` + "\u0301" + `"`
	normalized, _ := New(src).ScanTokens()
	raw, _ := New(src, WithoutNormalization()).ScanTokens()

	if len(normalized[0].Lexeme) >= len(raw[0].Lexeme) {
		t.Errorf("NFC normalization did not shorten the decomposed sequence: normalized=%q raw=%q",
			normalized[0].Lexeme, raw[0].Lexeme)
	}
}
