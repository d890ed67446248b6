package interpreter

import (
	"fmt"
	"time"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
)

// Function is a user-defined callable: a parameter list, a body block, and
// the environment captured at the point the `fun` declaration was
// evaluated — its closure.
type Function struct {
	decl    *ast.Function
	closure *Environment
}

// NewFunction wraps decl with the environment active when it was declared.
func NewFunction(decl *ast.Function, closure *Environment) *Function {
	return &Function{decl: decl, closure: closure}
}

// Arity returns the declared parameter count.
func (f *Function) Arity() int { return len(f.decl.Params) }

// String names the function for diagnostic/print output.
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme)
}

// Call creates a new frame enclosing the closure's frame, binds each
// parameter to its argument, then evaluates the body. A function that
// completes without hitting `return` yields nil. Each nested call bumps
// interp's call depth and reports a runtime error rather than recursing
// past MaxCallDepth.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	interp.callDepth++
	defer func() { interp.callDepth-- }()
	if interp.MaxCallDepth > 0 && interp.callDepth > interp.MaxCallDepth {
		return nil, &diag.RuntimeError{Line: f.decl.Pos(), Message: "Stack overflow."}
	}

	frame := NewEnclosed(f.closure)
	for i, param := range f.decl.Params {
		frame.Define(param.Lexeme, args[i])
	}

	if err := interp.ExecuteBlock(f.decl.Body.Statements, frame); err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return nil, nil
}

// returnSignal is the control-flow signal `return` uses to unwind out of
// the current function call. It implements `error` only so it can ride
// the same propagation path Go gives ordinary statement execution, but it
// is carried and caught entirely within this package (by Function.Call
// above, and by Interpret for a top-level `return`) and is never surfaced
// to a caller as a runtime error: it is a distinct control-flow signal,
// not an error type.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return" }

// nativeClock is the zero-argument native callable: wall-clock seconds
// since the Unix epoch as a float64, with sub-second resolution.
type nativeClock struct{}

func (nativeClock) Arity() int     { return 0 }
func (nativeClock) String() string { return "<native fn clock>" }
func (nativeClock) Call(_ *Interpreter, _ []Value) (Value, error) {
	return float64(time.Now().UnixNano()) / 1e9, nil
}

// arityError builds the diag.RuntimeError raised when a Call's argument
// count doesn't match the callee's arity.
func arityError(line, want, got int) error {
	return &diag.RuntimeError{Line: line, Message: fmt.Sprintf("Expected %d arguments but got %d.", want, got)}
}
