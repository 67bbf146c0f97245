package evaluator

// This is a stack machine over postfix tokens. It reads variables but never writes them, and it
// works entirely in float64: integer-ness isn't preserved through arithmetic.

import (
	"strconv"
	"strings"

	"github.com/espira-lang/espira/source/dtypes"
	"github.com/espira-lang/espira/source/err"
	"github.com/espira-lang/espira/source/lexer"
	"github.com/espira-lang/espira/source/parser"
	"github.com/espira-lang/espira/source/token"
	"github.com/espira-lang/espira/source/values"
)

// Bindings is what the evaluator needs to know about variables.
type Bindings interface {
	Lookup(name string) (values.Value, bool)
}

// EvaluateExpression runs the whole pipeline on an expression: tokenize, convert to postfix,
// evaluate. The line number is only used for error messages.
func EvaluateExpression(expr string, vars Bindings, line int) (float64, error) {
	return Evaluate(parser.ToPostfix(lexer.Tokenize(expr)), vars, line)
}

func Evaluate(postfix parser.Postfix, vars Bindings, line int) (float64, error) {
	stack := dtypes.NewStack[float64]()
	for it := postfix.Iterator(); it.HasElem(); it.Next() {
		tok := it.Elem().(token.Token)
		switch {
		case tok.IsOperand():
			f, e := operand(tok, vars, line)
			if e != nil {
				return 0, e
			}
			stack.Push(f)
		case tok.IsOperator():
			right, okRight := stack.Pop()
			left, okLeft := stack.Pop()
			if !(okLeft && okRight) {
				return 0, err.CreateErr("eval/invalid/a", line, tok.Literal)
			}
			f, e := apply(tok, left, right, line)
			if e != nil {
				return 0, e
			}
			stack.Push(f)
		}
		// Stray parentheses are skipped.
	}
	if stack.Len() != 1 {
		return 0, err.CreateErr("eval/invalid/b", line, stack.Len())
	}
	result, _ := stack.Pop()
	return result, nil
}

func operand(tok token.Token, vars Bindings, line int) (float64, error) {
	if v, ok := vars.Lookup(tok.Literal); ok {
		if f, isNumeric := v.Numeric(); isNumeric {
			return f, nil
		}
		return 0, err.CreateErr("eval/operand/type", line, tok.Literal, v.Type().String())
	}
	if tok.Type == token.NUMBER && isNumeral(tok.Literal) {
		if f, e := strconv.ParseFloat(tok.Literal, 64); e == nil {
			return f, nil
		}
	}
	return 0, err.CreateErr("eval/operand/number", line, tok.Literal)
}

// A numeral is digits with at most one point, perhaps negated. A minus glued onto anything
// else makes a NUMBER token too, so this keeps things like -inf from being read.
func isNumeral(lit string) bool {
	lit = strings.TrimPrefix(lit, "-")
	if lit == "" || lit == "." {
		return false
	}
	for _, ch := range lit {
		if !lexer.IsNumberStart(ch) {
			return false
		}
	}
	return true
}

func apply(tok token.Token, left, right float64, line int) (float64, error) {
	switch tok.Type {
	case token.PLUS:
		return left + right, nil
	case token.MINUS:
		return left - right, nil
	case token.ASTERISK:
		return left * right, nil
	case token.SLASH:
		if right == 0 {
			return 0, err.CreateErr("eval/div/zero", line)
		}
		return left / right, nil
	}
	panic("evaluator: unknown operator " + tok.Literal)
}
