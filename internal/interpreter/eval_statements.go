package interpreter

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
)

// execute dispatches a single statement by concrete type against env.
func (interp *Interpreter) execute(stmt ast.Stmt, env *Environment) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := interp.eval(s.Expression, env)
		return err
	case *ast.PrintStmt:
		return interp.executePrint(s, env)
	case *ast.VarDecl:
		return interp.executeVarDecl(s, env)
	case *ast.Block:
		return interp.ExecuteBlock(s.Statements, NewEnclosed(env))
	case *ast.If:
		return interp.executeIf(s, env)
	case *ast.While:
		return interp.executeWhile(s, env)
	case *ast.Function:
		env.Define(s.Name.Lexeme, NewFunction(s, env))
		return nil
	case *ast.Return:
		return interp.executeReturn(s, env)
	default:
		return &diag.RuntimeError{Line: stmt.Pos(), Message: fmt.Sprintf("unhandled statement %T", stmt)}
	}
}

func (interp *Interpreter) executePrint(s *ast.PrintStmt, env *Environment) error {
	value, err := interp.eval(s.Expression, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(interp.Stdout, Stringify(value))
	return nil
}

// executeVarDecl evaluates the initializer against env before the name
// becomes visible, so `var x = x;` reads any outer `x` rather than the
// not-yet-defined one.
func (interp *Interpreter) executeVarDecl(s *ast.VarDecl, env *Environment) error {
	var value Value
	if s.Initializer != nil {
		v, err := interp.eval(s.Initializer, env)
		if err != nil {
			return err
		}
		value = v
	}
	env.Define(s.Name.Lexeme, value)
	return nil
}

func (interp *Interpreter) executeIf(s *ast.If, env *Environment) error {
	cond, err := interp.eval(s.Condition, env)
	if err != nil {
		return err
	}
	switch {
	case IsTruthy(cond):
		return interp.execute(s.Then, env)
	case s.Else != nil:
		return interp.execute(s.Else, env)
	default:
		return nil
	}
}

func (interp *Interpreter) executeWhile(s *ast.While, env *Environment) error {
	for {
		cond, err := interp.eval(s.Condition, env)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return nil
		}
		if err := interp.execute(s.Body, env); err != nil {
			return err
		}
	}
}

func (interp *Interpreter) executeReturn(s *ast.Return, env *Environment) error {
	var value Value
	if s.Value != nil {
		v, err := interp.eval(s.Value, env)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{value: value}
}
