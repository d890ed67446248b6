package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/scanner"
	"github.com/cwbudde/golox/internal/token"
)

var tokenizeFormat string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Scan a script and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		code, err := runTokenize(source, tokenizeFormat, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		os.Exit(code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVar(&tokenizeFormat, "format", "text", `output format: "text" or "json"`)
}

// runTokenize scans source and writes its tokens to stdout in the
// requested format, diagnostics to stderr, returning the process exit
// code the caller should use. Split from RunE so it can run in-process
// under a test without exiting the test binary.
func runTokenize(source, format string, stdout, stderr io.Writer) (int, error) {
	s := scanner.New(source)
	tokens, lexErrors := s.ScanTokens()

	for _, e := range lexErrors {
		fmt.Fprintln(stderr, e.Error())
	}

	if format == "json" {
		doc, err := tokensToJSON(tokens)
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(stdout, doc)
	} else {
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tokenLine(tok))
		}
	}

	if len(lexErrors) > 0 {
		return diag.ExitStatic, nil
	}
	return diag.ExitOK, nil
}

// tokenLine renders one token the way the default (non-JSON) tokenize
// output requires: "<KIND> <lexeme> <literal-or-null>".
func tokenLine(tok token.Token) string {
	return fmt.Sprintf("%s %s %s", tok.Kind, tok.Lexeme, tokenLiteral(tok))
}

func tokenLiteral(tok token.Token) string {
	switch v := tok.Literal.(type) {
	case float64:
		return ast.FormatNumber(v)
	case string:
		return v
	default:
		return "null"
	}
}

// tokensToJSON builds a JSON array document, one object per token, using
// sjson to set each field rather than hand-building a struct tree.
func tokensToJSON(tokens []token.Token) (string, error) {
	doc := "[]"
	var err error
	for i, tok := range tokens {
		prefix := fmt.Sprintf("%d.", i)
		doc, err = sjson.Set(doc, prefix+"kind", tok.Kind.String())
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+"lexeme", tok.Lexeme)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+"line", tok.Line)
		if err != nil {
			return "", err
		}
		switch v := tok.Literal.(type) {
		case float64:
			doc, err = sjson.Set(doc, prefix+"literal", v)
		case string:
			doc, err = sjson.Set(doc, prefix+"literal", v)
		default:
			doc, err = sjson.SetRaw(doc, prefix+"literal", "null")
		}
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
