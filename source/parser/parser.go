package parser

import (
	"strings"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/espira-lang/espira/source/dtypes"
	"github.com/espira-lang/espira/source/token"
)

// Postfix is a sequence of tokens in reverse Polish order. It's backed by a persistent vector,
// so once the parser has handed it over it can't be changed.
type Postfix struct {
	toks vector.Vector
}

func (p Postfix) Len() int {
	if p.toks == nil {
		return 0
	}
	return p.toks.Len()
}

func (p Postfix) Iterator() vector.Iterator {
	if p.toks == nil {
		return vector.Empty.Iterator()
	}
	return p.toks.Iterator()
}

func (p Postfix) Tokens() []token.Token {
	result := make([]token.Token, 0, p.Len())
	for it := p.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(token.Token))
	}
	return result
}

// String gives the literals separated by spaces, e.g. "2 3 4 * +".
func (p Postfix) String() string {
	lits := []string{}
	for _, tok := range p.Tokens() {
		lits = append(lits, tok.Literal)
	}
	return strings.Join(lits, " ")
}

// ToPostfix rearranges infix tokens into postfix order by the shunting-yard algorithm.
//
// Operands go straight to the output whether or not they name a variable: an unknown name
// is only an error when the postfix is evaluated. A closing parenthesis with no opening
// parenthesis to match it is dropped. Whatever is left on the operator stack at the end,
// including unmatched opening parentheses, is popped onto the output; the evaluator skips
// parentheses.
func ToPostfix(toks []token.Token) Postfix {
	output := vector.Empty
	operators := dtypes.NewStack[token.Token]()
	for _, tok := range toks {
		switch {
		case tok.IsOperand():
			output = output.Conj(tok)
		case tok.Type == token.LPAREN:
			operators.Push(tok)
		case tok.Type == token.RPAREN:
			for {
				top, ok := operators.Pop()
				if !ok || top.Type == token.LPAREN {
					break
				}
				output = output.Conj(top)
			}
		case tok.IsOperator():
			for {
				top, ok := operators.HeadValue()
				if !ok || top.Type == token.LPAREN || precedence(top) < precedence(tok) {
					break
				}
				operators.Pop()
				output = output.Conj(top)
			}
			operators.Push(tok)
		}
	}
	for top, ok := operators.Pop(); ok; top, ok = operators.Pop() {
		output = output.Conj(top)
	}
	return Postfix{toks: output}
}
