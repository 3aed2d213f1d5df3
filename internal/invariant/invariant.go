// Package invariant provides contract assertions for the interpreter runtime.
//
// This package implements Tiger Style safety principles: assertions are a
// force multiplier for discovering bugs. Use Precondition/Postcondition to
// express function contracts, and Invariant for internal consistency checks
// against the data-model invariants of the atom/pair/environment model.
//
// All functions panic on violation - these are programming errors in the
// interpreter itself, never user-facing input errors (those are reported
// through package diag instead).
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Use this to validate function arguments and caller expectations.
//
// Example:
//
//	func Car(p *Pair) Atom {
//	    invariant.Precondition(p != nil, "Car requires a non-nil pair")
//	    return p.Head
//	}
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
//
// Use this to validate function results and guarantees to caller.
//
// Example:
//
//	func Intern(name string) Atom {
//	    sym := lookupOrAllocate(name)
//	    invariant.Postcondition(sym.Tag == TagSymbol, "Intern must return a Symbol atom")
//	    return sym
//	}
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks an internal invariant during function execution.
// Panics with INVARIANT VIOLATION if condition is false.
//
// Use this for mark/sweep progress checks and frame-stack consistency.
//
// Example:
//
//	for f := stack; f != nil; f = f.Parent {
//	    invariant.Invariant(f != f.Parent, "frame stack must not cycle on itself")
//	}
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotNil panics if value is nil.
// This is a precondition check for pointer/interface arguments.
//
// Example:
//
//	func Mark(cell *Cell) {
//	    invariant.NotNil(cell, "cell")
//	    // ... work ...
//	}
func NotNil(value interface{}, name string) {
	if value == nil {
		fail("PRECONDITION", "%s must not be nil", name)
	}
	// Check for typed nil (e.g., (*T)(nil))
	// This uses reflection to detect nil pointers/interfaces
	if isNilValue(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

// isNilValue checks if a value is a typed nil using reflection
func isNilValue(value interface{}) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	kind := v.Kind()

	// Check if the type can be nil
	switch kind {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// InRange panics if value is outside [min, max].
// This is a precondition check for numeric arguments.
//
// Example:
//
//	func bindingAt(bindings []Binding, index int) Binding {
//	    invariant.InRange(index, 0, len(bindings)-1, "index")
//	    return bindings[index]
//	}
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("PRECONDITION", "%s must be in range [%d, %d], got %d",
			name, minVal, maxVal, value)
	}
}

// Positive panics if value <= 0.
// This is typically a postcondition check for generated counters.
//
// Example:
//
//	gen := nextRegistryGeneration()
//	invariant.Positive(int(gen), "registry generation")
func Positive(value int, name string) {
	if value <= 0 {
		fail("POSTCONDITION", "%s must be positive, got %d", name, value)
	}
}

// ExpectNoError panics if error is not nil.
// This is a postcondition check for operations that should never fail.
//
// Example:
//
//	err := rootEnv.Define(sym, val)
//	invariant.ExpectNoError(err, "defining into a frame's own bindings cannot fail")
func ExpectNoError(err error, msg string) {
	if err != nil {
		fail("POSTCONDITION", "%s must not fail: %v", msg, err)
	}
}

// fail panics with a formatted message including call stack context.
func fail(kind, format string, args ...interface{}) {
	// Capture call stack (skip fail() and wrapper function)
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	// Build violation message
	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	// Add first frame for context (file:line where violation occurred)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
