package lexer

import (
	"strings"
	"unicode"

	"github.com/espira-lang/espira/source/token"
)

// The RuneSupplier walks over an expression one rune at a time. Unlike a full lexer it knows
// nothing about what came before, so it can be used for slurping up the runs of characters
// that make up a single token.
type RuneSupplier struct {
	code []rune
	pos  int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code}
}

func (rs *RuneSupplier) Finished() bool {
	return rs.pos >= len(rs.code)
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) Next() {
	if rs.pos < len(rs.code) {
		rs.pos++
	}
}

func (rs *RuneSupplier) Position() int {
	return rs.pos
}

// Reads digits and at most one decimal point.
func (rs *RuneSupplier) ReadNumber() string {
	var result strings.Builder
	seenPoint := false
	for !rs.Finished() {
		ch := rs.CurrentRune()
		if ch == '.' {
			if seenPoint {
				break
			}
			seenPoint = true
		} else if !IsDigit(ch) {
			break
		}
		result.WriteRune(ch)
		rs.Next()
	}
	return result.String()
}

// Reads everything up to the next whitespace, operator or parenthesis.
func (rs *RuneSupplier) ReadIdentifier() string {
	var result strings.Builder
	for !rs.Finished() && !IsSeparator(rs.CurrentRune()) {
		result.WriteRune(rs.CurrentRune())
		rs.Next()
	}
	return result.String()
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsNumberStart(ch rune) bool {
	return IsDigit(ch) || ch == '.'
}

func IsSeparator(ch rune) bool {
	if unicode.IsSpace(ch) {
		return true
	}
	_, ok := token.LookupOperator(ch)
	return ok
}
