package interpreter

import "fmt"

// Environment is a chained name→value scope, the unit of lexical scope for
// blocks, function calls, and closures.
//
// A store plus an *outer pointer; Get/Assign walk the chain outward on a
// miss in the local frame. Lox is case-sensitive, so the store is a plain
// map rather than a case-folding one.
type Environment struct {
	values map[string]Value
	outer  *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosed creates a new scope nested inside outer — used on block
// entry and function call.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{values: make(map[string]Value), outer: outer}
}

// Define unconditionally inserts or overwrites name in this frame. Used by
// `var` declarations and function parameter binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get returns the binding for name from the nearest enclosing frame that
// defines it, or an "Undefined variable" error if none does.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates the binding for name in the nearest enclosing frame that
// defines it, returning the assigned value (so "a = b = 1" works). Fails
// with the same "Undefined variable" error as Get if no frame defines the
// name — assignment never creates a new binding.
func (e *Environment) Assign(name string, value Value) (Value, error) {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return value, nil
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}
