package interpreter

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/token"
)

func (interp *Interpreter) evalUnary(e *ast.Unary, env *Environment) (Value, error) {
	right, err := interp.eval(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.BANG:
		return !IsTruthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, &diag.RuntimeError{Line: e.Operator.Line, Message: "Operand must be a number."}
		}
		return -n, nil
	default:
		return nil, &diag.RuntimeError{Line: e.Operator.Line, Message: fmt.Sprintf("unknown unary operator %s", e.Operator.Lexeme)}
	}
}

// evalLogical implements short-circuiting `and`/`or`: the returned value
// retains its original tag, never normalized to a boolean.
func (interp *Interpreter) evalLogical(e *ast.Logical, env *Environment) (Value, error) {
	left, err := interp.eval(e.Left, env)
	if err != nil {
		return nil, err
	}

	if e.Operator.Kind == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !IsTruthy(left) {
			return left, nil
		}
	}

	return interp.eval(e.Right, env)
}

func (interp *Interpreter) evalBinary(e *ast.Binary, env *Environment) (Value, error) {
	left, err := interp.eval(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := interp.eval(e.Right, env)
	if err != nil {
		return nil, err
	}

	line := e.Operator.Line
	switch e.Operator.Kind {
	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil
	case token.PLUS:
		return evalPlus(left, right, line)
	case token.MINUS:
		return numericBinary(left, right, line, func(a, b float64) Value { return a - b })
	case token.STAR:
		return numericBinary(left, right, line, func(a, b float64) Value { return a * b })
	case token.SLASH:
		return numericBinary(left, right, line, func(a, b float64) Value { return a / b })
	case token.GREATER:
		return numericBinary(left, right, line, func(a, b float64) Value { return a > b })
	case token.GREATER_EQUAL:
		return numericBinary(left, right, line, func(a, b float64) Value { return a >= b })
	case token.LESS:
		return numericBinary(left, right, line, func(a, b float64) Value { return a < b })
	case token.LESS_EQUAL:
		return numericBinary(left, right, line, func(a, b float64) Value { return a <= b })
	default:
		return nil, &diag.RuntimeError{Line: line, Message: fmt.Sprintf("unknown binary operator %s", e.Operator.Lexeme)}
	}
}

// evalPlus implements `+` overloaded for number+number and
// string+string, else the "two numbers or two strings" error.
func evalPlus(left, right Value, line int) (Value, error) {
	if ln, ok := left.(float64); ok {
		if rn, ok := right.(float64); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs, nil
		}
	}
	return nil, &diag.RuntimeError{Line: line, Message: "Operands must be two numbers or two strings."}
}

// numericBinary requires both operands to be numbers, the
// "Operands must be numbers." rule shared by -, *, /, and the comparisons.
func numericBinary(left, right Value, line int, op func(a, b float64) Value) (Value, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return nil, &diag.RuntimeError{Line: line, Message: "Operands must be numbers."}
	}
	return op(ln, rn), nil
}

// evalCall requires the callee to be Callable and the argument count to
// match its arity.
func (interp *Interpreter) evalCall(e *ast.Call, env *Environment) (Value, error) {
	callee, err := interp.eval(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := interp.eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &diag.RuntimeError{Line: e.Paren.Line, Message: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, arityError(e.Paren.Line, fn.Arity(), len(args))
	}
	return fn.Call(interp, args)
}
