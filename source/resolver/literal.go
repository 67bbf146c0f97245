package resolver

import "strings"

// IsQuoted says whether s starts and ends with the same quote character, either " or '.
func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '"' || first == '\'')
}

// RemoveQuotes trims s and then strips one pair of matching surrounding quotes, if there is one.
func RemoveQuotes(s string) string {
	s = strings.TrimSpace(s)
	if IsQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

func LooksArithmetic(s string) bool {
	return strings.ContainsAny(s, "+-*/()")
}
