package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/scanner"
)

var parseDumpAST string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Scan and parse a single expression, printing its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		code, err := runParse(source, parseDumpAST, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		os.Exit(code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseDumpAST, "dump-ast", "text", `AST output format: "text" or "json"`)
}

// runParse scans and parses source as a single expression, writing the
// resulting AST to stdout and any diagnostics to stderr.
func runParse(source, format string, stdout, stderr io.Writer) (int, error) {
	s := scanner.New(source)
	tokens, lexErrors := s.ScanTokens()
	for _, e := range lexErrors {
		fmt.Fprintln(stderr, e.Error())
	}

	p := parser.New(tokens)
	expr := p.ParseExpression()
	for _, e := range p.Errors() {
		fmt.Fprintln(stderr, e.Error())
	}

	if len(lexErrors) > 0 || len(p.Errors()) > 0 || expr == nil {
		return diag.ExitStatic, nil
	}

	pretty := ast.Print(expr)
	if format == "json" {
		doc, err := sjson.Set("{}", "pretty", pretty)
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(stdout, doc)
	} else {
		fmt.Fprintln(stdout, pretty)
	}

	return diag.ExitOK, nil
}
