package resolver

// The resolver decides what an expression string means. It tries each of the Strategies in
// order and the first one to claim the string wins; if none does, the string is just text.

import (
	"strconv"

	"github.com/espira-lang/espira/source/evaluator"
	"github.com/espira-lang/espira/source/values"
)

// A Strategy either claims an expression, returning its value, or declines it.
type Strategy struct {
	Name    string
	Resolve func(expr string, vars evaluator.Bindings, line int) (values.Value, bool)
}

// The order of this list is the contract: a later strategy only sees strings that every
// earlier one has declined.
var Strategies = []Strategy{
	{"quoted", resolveQuoted},
	{"variable", resolveVariable},
	{"boolean", resolveBoolean},
	{"arithmetic", resolveArithmetic},
	{"integer", resolveInteger},
	{"float", resolveFloat},
}

// Resolve returns the value of an already-trimmed expression, together with the name of the
// strategy that produced it ("text" if none of them did).
func Resolve(expr string, vars evaluator.Bindings, line int) (values.Value, string) {
	for _, s := range Strategies {
		if v, ok := s.Resolve(expr, vars, line); ok {
			return v, s.Name
		}
	}
	return values.Text(expr), "text"
}

func resolveQuoted(expr string, vars evaluator.Bindings, line int) (values.Value, bool) {
	if IsQuoted(expr) {
		return values.Text(expr[1 : len(expr)-1]), true
	}
	return values.NONE, false
}

func resolveVariable(expr string, vars evaluator.Bindings, line int) (values.Value, bool) {
	return vars.Lookup(expr)
}

func resolveBoolean(expr string, vars evaluator.Bindings, line int) (values.Value, bool) {
	switch expr {
	case "true":
		return values.TRUE, true
	case "false":
		return values.FALSE, true
	}
	return values.NONE, false
}

// Anything containing an arithmetic character is claimed by this strategy. If the arithmetic
// then fails for any reason, the string is taken as literal text: the error is not reported.
func resolveArithmetic(expr string, vars evaluator.Bindings, line int) (values.Value, bool) {
	if !LooksArithmetic(expr) {
		return values.NONE, false
	}
	f, e := evaluator.EvaluateExpression(expr, vars, line)
	if e != nil {
		return values.Text(expr), true
	}
	return values.Float(f), true
}

func resolveInteger(expr string, vars evaluator.Bindings, line int) (values.Value, bool) {
	if i, e := strconv.ParseInt(expr, 10, 64); e == nil {
		return values.Int(i), true
	}
	return values.NONE, false
}

func resolveFloat(expr string, vars evaluator.Bindings, line int) (values.Value, bool) {
	if f, e := strconv.ParseFloat(expr, 64); e == nil {
		return values.Float(f), true
	}
	return values.NONE, false
}
