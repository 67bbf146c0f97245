package interpolate

import (
	"strings"

	"github.com/espira-lang/espira/source/err"
	"github.com/espira-lang/espira/source/values"
)

// Interpolate replaces each {expression} in s with the value resolve gives for it. The text
// between the braces is handed over exactly as written. Outside of an expression, \{ and \}
// stand for literal braces and \\ for a backslash; inside one, \} does not close it.
//
// If a { has no closing }, nothing is returned but the error.
func Interpolate(s string, resolve func(expr string) values.Value, line int) (string, error) {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && (s[i+1] == '{' || s[i+1] == '}' || s[i+1] == '\\'):
			out.WriteByte(s[i+1])
			i++
		case s[i] == '{':
			end := closingBrace(s, i+1)
			if end == -1 {
				return "", err.CreateErr("echo/brace", line)
			}
			out.WriteString(resolve(s[i+1 : end]).String())
			i = end
		default:
			out.WriteByte(s[i])
		}
	}
	return out.String(), nil
}

func closingBrace(s string, from int) int {
	for j := from; j < len(s); j++ {
		if s[j] == '}' && s[j-1] != '\\' {
			return j
		}
	}
	return -1
}
