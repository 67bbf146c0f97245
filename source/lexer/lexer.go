package lexer

import (
	"unicode"

	"github.com/espira-lang/espira/source/token"
)

type lexer struct {
	runes  *RuneSupplier
	tokens []token.Token
	tstart int // the position at the start of the current token
}

func NewLexer(input string) *lexer {
	return &lexer{runes: NewRuneSupplier([]rune(input))}
}

// Tokenize splits an expression into tokens. It never fails: anything it can't make sense
// of ends up as an identifier for the later stages to reject.
func Tokenize(input string) []token.Token {
	return NewLexer(input).Tokens()
}

func (l *lexer) Tokens() []token.Token {
	for !l.runes.Finished() {
		l.getToken()
	}
	return l.tokens
}

func (l *lexer) getToken() {
	ch := l.runes.CurrentRune()
	if unicode.IsSpace(ch) {
		l.runes.Next()
		return
	}
	l.tstart = l.runes.Position()

	if tType, ok := token.LookupOperator(ch); ok {
		l.runes.Next()
		// A minus which can't be binary is glued onto whatever follows it.
		if tType == token.MINUS && l.unaryContext() && !l.runes.Finished() && !IsSeparator(l.runes.CurrentRune()) {
			l.emit(token.NUMBER, "-"+l.readRun())
			return
		}
		l.emit(tType, string(ch))
		return
	}

	if IsNumberStart(ch) {
		l.emit(token.NUMBER, l.runes.ReadNumber())
		return
	}
	l.emit(token.IDENT, l.runes.ReadIdentifier())
}

func (l *lexer) readRun() string {
	if IsNumberStart(l.runes.CurrentRune()) {
		return l.runes.ReadNumber()
	}
	return l.runes.ReadIdentifier()
}

// We're in unary context at the start of the expression, after an opening parenthesis, or
// after another operator.
func (l *lexer) unaryContext() bool {
	if len(l.tokens) == 0 {
		return true
	}
	last := l.tokens[len(l.tokens)-1]
	return last.Type == token.LPAREN || last.IsOperator()
}

func (l *lexer) emit(tType token.TokenType, lit string) {
	l.tokens = append(l.tokens, token.Token{Type: tType, Literal: lit, ChStart: l.tstart, ChEnd: l.runes.Position()})
}
