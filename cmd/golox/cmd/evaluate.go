package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/golox/internal/config"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/interpreter"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/scanner"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file>",
	Short: "Scan, parse, and evaluate a single expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		code, err := runEvaluate(source, cfg, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		os.Exit(code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

// runEvaluate scans, parses, and evaluates source as a single expression,
// printing its value to stdout.
func runEvaluate(source string, cfg *config.Config, stdout, stderr io.Writer) (int, error) {
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

	interp := interpreter.New(stdout, cfg.MaxCallDepth)
	value, err := interp.EvaluateExpression(expr)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return diag.ExitRuntime, nil
	}

	fmt.Fprintln(stdout, interpreter.Stringify(value))
	return diag.ExitOK, nil
}
