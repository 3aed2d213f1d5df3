package builtins

import (
	"github.com/aledsdavies/golisp/atom"
	"github.com/aledsdavies/golisp/diag"
)

// isNumeric reports whether a is Integer or Float.
func isNumeric(a atom.Atom) bool {
	return a.Tag == atom.TagInteger || a.Tag == atom.TagFloat
}

// asFloat widens a to float64. Caller must have already checked isNumeric.
func asFloat(a atom.Atom) float64 {
	if a.Tag == atom.TagFloat {
		return a.Float
	}
	return float64(a.Int)
}

// allInteger reports whether every arg is an Integer - arithmetic stays
// Integer only when every operand is; mixed integer/float promotes to
// Float.
func allInteger(args []atom.Atom) bool {
	for _, a := range args {
		if a.Tag != atom.TagInteger {
			return false
		}
	}
	return true
}

func checkNumericArgs(name string, args []atom.Atom) error {
	if len(args) < 2 {
		return diag.New(diag.Arguments, "%s requires at least 2 arguments", name)
	}
	for _, a := range args {
		if !isNumeric(a) {
			return diag.New(diag.WrongType, "%s requires numeric arguments, got %s", name, atom.Render(a))
		}
	}
	return nil
}

// add implements +: left-fold sum, integer unless any argument is Float.
func add(args []atom.Atom) (atom.Atom, error) {
	if err := checkNumericArgs("+", args); err != nil {
		return atom.Nil, err
	}
	if allInteger(args) {
		var sum int64
		for _, a := range args {
			sum += a.Int
		}
		return atom.NewInteger(sum), nil
	}
	var sum float64
	for _, a := range args {
		sum += asFloat(a)
	}
	return atom.NewFloat(sum), nil
}

// sub implements -: left-fold difference, (- a b c) = ((a - b) - c).
func sub(args []atom.Atom) (atom.Atom, error) {
	if err := checkNumericArgs("-", args); err != nil {
		return atom.Nil, err
	}
	if allInteger(args) {
		result := args[0].Int
		for _, a := range args[1:] {
			result -= a.Int
		}
		return atom.NewInteger(result), nil
	}
	result := asFloat(args[0])
	for _, a := range args[1:] {
		result -= asFloat(a)
	}
	return atom.NewFloat(result), nil
}

// mul implements *: left-fold product, integer unless any argument is Float.
func mul(args []atom.Atom) (atom.Atom, error) {
	if err := checkNumericArgs("*", args); err != nil {
		return atom.Nil, err
	}
	if allInteger(args) {
		result := int64(1)
		for _, a := range args {
			result *= a.Int
		}
		return atom.NewInteger(result), nil
	}
	result := float64(1)
	for _, a := range args {
		result *= asFloat(a)
	}
	return atom.NewFloat(result), nil
}

// div implements /: always yields Float, left-fold quotient.
func div(args []atom.Atom) (atom.Atom, error) {
	if err := checkNumericArgs("/", args); err != nil {
		return atom.Nil, err
	}
	result := asFloat(args[0])
	for _, a := range args[1:] {
		result /= asFloat(a)
	}
	return atom.NewFloat(result), nil
}
