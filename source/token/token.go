package token

type TokenType string

const (
	// Operands
	NUMBER = "NUMBER" // 42, 3.14, -5
	IDENT  = "IDENT"  // x, total, anything else that isn't an operator

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"

	LPAREN = "("
	RPAREN = ")"
)

type Token struct {
	Type    TokenType
	Literal string
	ChStart int // Offsets are in runes from the start of the expression.
	ChEnd   int
}

var operators = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': ASTERISK,
	'/': SLASH,
	'(': LPAREN,
	')': RPAREN,
}

// LookupOperator returns the token type of a single-character operator or parenthesis.
func LookupOperator(ch rune) (TokenType, bool) {
	tok, ok := operators[ch]
	return tok, ok
}

func (t Token) IsOperand() bool {
	return t.Type == NUMBER || t.Type == IDENT
}

func (t Token) IsOperator() bool {
	return t.Type == PLUS || t.Type == MINUS || t.Type == ASTERISK || t.Type == SLASH
}
