package interpreter

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
)

// eval dispatches a single expression by concrete type against env,
// returning its Value.
func (interp *Interpreter) eval(expr ast.Expr, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return interp.eval(e.Inner, env)
	case *ast.Variable:
		return interp.evalVariable(e, env)
	case *ast.Assign:
		return interp.evalAssign(e, env)
	case *ast.Unary:
		return interp.evalUnary(e, env)
	case *ast.Binary:
		return interp.evalBinary(e, env)
	case *ast.Logical:
		return interp.evalLogical(e, env)
	case *ast.Call:
		return interp.evalCall(e, env)
	default:
		return nil, &diag.RuntimeError{Line: expr.Pos(), Message: fmt.Sprintf("unhandled expression %T", expr)}
	}
}

func (interp *Interpreter) evalVariable(e *ast.Variable, env *Environment) (Value, error) {
	v, err := env.Get(e.Name.Lexeme)
	if err != nil {
		return nil, &diag.RuntimeError{Line: e.Name.Line, Message: err.Error()}
	}
	return v, nil
}

func (interp *Interpreter) evalAssign(e *ast.Assign, env *Environment) (Value, error) {
	value, err := interp.eval(e.Value, env)
	if err != nil {
		return nil, err
	}
	result, err := env.Assign(e.Name.Lexeme, value)
	if err != nil {
		return nil, &diag.RuntimeError{Line: e.Name.Line, Message: err.Error()}
	}
	return result, nil
}
