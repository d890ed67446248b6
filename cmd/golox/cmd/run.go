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

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Scan, parse, and execute a full program",
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
		code, err := runProgram(source, cfg, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		os.Exit(code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runProgram scans, parses, and executes a full program, writing `print`
// effects to stdout and diagnostics to stderr.
func runProgram(source string, cfg *config.Config, stdout, stderr io.Writer) (int, error) {
	s := scanner.New(source)
	tokens, lexErrors := s.ScanTokens()
	for _, e := range lexErrors {
		fmt.Fprintln(stderr, e.Error())
	}

	p := parser.New(tokens)
	program := p.ParseProgram()
	for _, e := range p.Errors() {
		fmt.Fprintln(stderr, e.Error())
	}

	if len(lexErrors) > 0 || len(p.Errors()) > 0 {
		return diag.ExitStatic, nil
	}

	interp := interpreter.New(stdout, cfg.MaxCallDepth)
	if err := interp.Interpret(program); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return diag.ExitRuntime, nil
	}

	return diag.ExitOK, nil
}
