package interpreter

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is golox's runtime tagged union: nil, bool, float64,
// string, or Callable. Represented as `any` holding one of those concrete
// Go types, the common idiom for a dynamically-typed tree-walker.
type Value any

// Callable is anything invocable from a Call expression: a native
// function (like clock) or a user-defined Function closure.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// IsTruthy reports Lox truthiness: only nil and false are falsy;
// everything else (including 0, 0.0, "") is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual compares by value within the same tag; cross-tag comparisons
// are false, never errors; nil==nil is true.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	return a == b
}

// Stringify renders a Value the way `print`/`evaluate` render it:
// nil -> "nil", bools -> "true"/"false", strings -> raw
// text, numbers -> decimal with integer-valued doubles printed without a
// fractional part. This deliberately differs from ast.FormatNumber, which
// `tokenize` uses to always show a fractional digit.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return stringifyNumber(val)
	case string:
		return val
	case Callable:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func stringifyNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// strconv's 'g' format may emit exponents Lox's reference printer
	// never would for everyday script output; fall back to plain decimal.
	if strings.ContainsAny(s, "eE") {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}
