// Package interpreter implements golox's evaluator: it walks the AST
// against a chained-scope Environment, producing print effects and
// runtime errors.
//
// Split into one file per expression/statement category
// (eval_expressions.go, eval_operators.go, eval_statements.go), with a
// fresh environment plus global natives wired at construction time. The
// active Environment is threaded explicitly as a parameter through every
// eval/execute call rather than held as a mutated field, so there is no
// hidden singleton and no re-entrancy hazard.
package interpreter

import (
	"io"

	"github.com/cwbudde/golox/internal/ast"
)

// Interpreter walks a program's statements against a chain of
// Environment frames, writing `print` output to Stdout. MaxCallDepth
// bounds nested Function.Call invocations so a runaway recursive script
// reports a runtime error instead of faulting Go's own goroutine stack.
type Interpreter struct {
	Globals      *Environment
	Stdout       io.Writer
	MaxCallDepth int
	callDepth    int
}

// New creates an Interpreter with a fresh global environment pre-populated
// with the native `clock` binding and the given call-depth ceiling.
func New(stdout io.Writer, maxCallDepth int) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", nativeClock{})
	return &Interpreter{Globals: globals, Stdout: stdout, MaxCallDepth: maxCallDepth}
}

// Interpret executes a full program (a `run`-mode statement sequence).
// A runtime error aborts the remaining statements and is returned as-is
// (a *diag.RuntimeError); a top-level `return` simply ends the program.
func (interp *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := interp.execute(stmt, interp.Globals); err != nil {
			if _, ok := err.(*returnSignal); ok {
				return nil
			}
			return err
		}
	}
	return nil
}

// EvaluateExpression evaluates a single expression in the global
// environment (the `evaluate` command's entry point).
func (interp *Interpreter) EvaluateExpression(expr ast.Expr) (Value, error) {
	return interp.eval(expr, interp.Globals)
}

// ExecuteBlock runs stmts against env (a fresh child frame the caller
// already created), propagating any error — including a *returnSignal —
// unchanged. Used both by Block statements and by Function.Call.
func (interp *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *Environment) error {
	for _, stmt := range stmts {
		if err := interp.execute(stmt, env); err != nil {
			return err
		}
	}
	return nil
}
