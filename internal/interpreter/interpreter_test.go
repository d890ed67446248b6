package interpreter

import (
	"bytes"
	"testing"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/scanner"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, lexErrs := scanner.New(src).ScanTokens()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	p := parser.New(tokens)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	var out bytes.Buffer
	interp := New(&out, 1000)
	err := interp.Interpret(program)
	return out.String(), err
}

func TestRunBlockScoping(t *testing.T) {
	out, err := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "2\n1\n" {
		t.Errorf("output = %q, want %q", out, "2\n1\n")
	}
}

func TestRunClosures(t *testing.T) {
	src := `fun makeCounter(){
		var i = 0;
		fun c(){ i = i + 1; return i; }
		return c;
	}
	var c = makeCounter();
	print c();
	print c();`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("output = %q, want %q", out, "1\n2\n")
	}
}

func TestRunTopLevelReturnEndsCleanly(t *testing.T) {
	out, err := run(t, `print 1; return; print 2;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n" {
		t.Errorf("output = %q, want %q (return should stop execution)", out, "1\n")
	}
}

func TestEvaluateStringConcat(t *testing.T) {
	tokens, _ := scanner.New(`"foo" + "bar"`).ScanTokens()
	p := parser.New(tokens)
	expr := p.ParseExpression()

	interp := New(&bytes.Buffer{}, 1000)
	value, err := interp.EvaluateExpression(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Stringify(value) != "foobar" {
		t.Errorf("value = %q, want %q", Stringify(value), "foobar")
	}
}

func TestEvaluateTypeMismatch(t *testing.T) {
	tokens, _ := scanner.New(`"foo" + 1`).ScanTokens()
	p := parser.New(tokens)
	expr := p.ParseExpression()

	interp := New(&bytes.Buffer{}, 1000)
	_, err := interp.EvaluateExpression(expr)
	if err == nil {
		t.Fatal("expected a runtime error, got nil")
	}
	if err.Error() != "Operands must be two numbers or two strings.\n[line 1]" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	tokens, _ := scanner.New(`nope`).ScanTokens()
	p := parser.New(tokens)
	expr := p.ParseExpression()

	interp := New(&bytes.Buffer{}, 1000)
	_, err := interp.EvaluateExpression(expr)
	if err == nil {
		t.Fatal("expected a runtime error, got nil")
	}
}

func TestArityMismatch(t *testing.T) {
	out, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	_ = out
	if err == nil {
		t.Fatal("expected a runtime error for arity mismatch")
	}
	if err.Error() != "Expected 2 arguments but got 1.\n[line 1]" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestLogicalShortCircuitPreservesOperandValue(t *testing.T) {
	tokens, _ := scanner.New(`"hi" or false`).ScanTokens()
	p := parser.New(tokens)
	expr := p.ParseExpression()

	interp := New(&bytes.Buffer{}, 1000)
	value, err := interp.EvaluateExpression(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "hi" {
		t.Errorf("value = %#v, want the original left operand %q", value, "hi")
	}
}

func TestClockIsCallable(t *testing.T) {
	tokens, _ := scanner.New(`clock()`).ScanTokens()
	p := parser.New(tokens)
	expr := p.ParseExpression()

	interp := New(&bytes.Buffer{}, 1000)
	value, err := interp.EvaluateExpression(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := value.(float64); !ok {
		t.Errorf("clock() = %#v, want a float64", value)
	}
}

func TestExpressionStatementPos(t *testing.T) {
	tokens, _ := scanner.New("1;").ScanTokens()
	p := parser.New(tokens)
	program := p.ParseProgram()
	if len(program) != 1 {
		t.Fatalf("got %d statements, want 1", len(program))
	}
	if _, ok := program[0].(*ast.ExpressionStmt); !ok {
		t.Fatalf("program[0] = %T, want *ast.ExpressionStmt", program[0])
	}
	if got := program[0].Pos(); got != 1 {
		t.Errorf("program[0].Pos() = %d, want 1", got)
	}
}
