// Command golox is a tree-walking interpreter for the Lox scripting
// language.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/cmd/golox/cmd"
	"github.com/cwbudde/golox/internal/diag"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(diag.ExitUsage)
	}
}
