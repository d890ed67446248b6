package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// configPath is shared by every subcommand's --config flag.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "A tree-walking interpreter for Lox",
	Long: `golox is a Go implementation of the Lox scripting language described
in Crafting Interpreters: dynamically typed, with closures, first-class
functions, and C-like control flow.

Subcommands expose each stage of the pipeline independently:
  tokenize  scan a script and print its tokens
  parse     scan and parse a single expression, printing its AST
  evaluate  scan, parse, and evaluate a single expression
  run       scan, parse, and execute a full program`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It returns an error only for invocation
// mistakes (unknown command, wrong arg count) — subcommands report
// lexical/parse/runtime diagnostics themselves and exit directly with the
// matching exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (accepted, but no command reads it)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}
