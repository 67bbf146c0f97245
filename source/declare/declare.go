package declare

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/espira-lang/espira/source/err"
	"github.com/espira-lang/espira/source/evaluator"
	"github.com/espira-lang/espira/source/resolver"
	"github.com/espira-lang/espira/source/store"
	"github.com/espira-lang/espira/source/values"
)

// The keywords that introduce a declaration. They all mean the same thing.
var Keywords = []string{"let", "var", "const"}

// A Declaration is a line of the form '<keyword> <type> <identifier> = <value>' broken into
// its parts. The parts are trimmed but otherwise untouched.
type Declaration struct {
	Keyword   string
	TypeName  string
	Ident     string
	ValueText string
}

// Store is the part of the variable store a declaration needs.
type Store interface {
	evaluator.Bindings
	Set(name string, v store.Variable)
}

func IsDeclaration(line string) bool {
	for _, k := range Keywords {
		if strings.HasPrefix(line, k) {
			return true
		}
	}
	return false
}

func Split(line string, lineNo int) (Declaration, error) {
	keywordEnd := strings.IndexAny(line, " \t")
	if keywordEnd == -1 {
		return Declaration{}, err.CreateErr("decl/keyword", lineNo, line)
	}
	keyword := line[:keywordEnd]
	rest := strings.TrimSpace(line[keywordEnd+1:])

	typeEnd := strings.IndexAny(rest, " \t")
	if typeEnd == -1 {
		return Declaration{}, err.CreateErr("decl/type/missing", lineNo, keyword)
	}
	typeName := rest[:typeEnd]
	rest = strings.TrimSpace(rest[typeEnd+1:])

	equals := strings.IndexByte(rest, '=')
	if equals == -1 {
		return Declaration{}, err.CreateErr("decl/assign", lineNo)
	}
	return Declaration{
		Keyword:   keyword,
		TypeName:  typeName,
		Ident:     strings.TrimSpace(rest[:equals]),
		ValueText: strings.TrimSpace(rest[equals+1:]),
	}, nil
}

// Declare checks the declaration and, if all is well, binds the variable, replacing anything
// already bound to the same name. On failure the store is left as it was.
func Declare(vars Store, d Declaration, line int) (store.Variable, error) {
	if !ValidIdentifier(d.Ident) {
		return store.Variable{}, err.CreateErr("decl/ident", line, d.Ident)
	}
	dt, ok := values.LookupDeclaredType(d.TypeName)
	if !ok {
		return store.Variable{}, err.CreateErr("decl/type/unknown", line, d.Ident, d.TypeName)
	}
	v, e := Coerce(dt, d.Ident, d.ValueText, vars, line)
	if e != nil {
		return store.Variable{}, e
	}
	result := store.Variable{Value: v, Declared: dt}
	vars.Set(d.Ident, result)
	return result, nil
}

// Coerce works out the value to be stored under a declared type. Strings are taken literally,
// with any surrounding quotes removed; everything else goes through the resolver and must
// come out as the declared type or as a number that can be converted to it.
func Coerce(dt values.DeclaredType, ident, valueText string, vars evaluator.Bindings, line int) (values.Value, error) {
	if dt == values.STRING_TYPE {
		return values.Text(resolver.RemoveQuotes(valueText)), nil
	}
	resolved, _ := resolver.Resolve(valueText, vars, line)
	switch dt {
	case values.INT_TYPE:
		switch resolved.Type() {
		case values.INT:
			return resolved, nil
		case values.FLOAT:
			if i, ok := truncate(resolved.AsFloat()); ok {
				return values.Int(i), nil
			}
		}
	case values.FLOAT_TYPE:
		if f, ok := resolved.Numeric(); ok {
			return values.Float(f), nil
		}
	case values.BOOL_TYPE:
		if resolved.Type() == values.BOOL {
			return resolved, nil
		}
	}
	return values.NONE, err.CreateErr("decl/mismatch", line, ident, dt.String(), valueText, resolved.Type().String())
}

// Truncates toward zero. Floats with no int64 equivalent (NaN, infinities, anything out of
// range) can't be converted.
func truncate(f float64) (int64, bool) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}

// ValidIdentifier says whether a name is non-empty and starts with a letter.
func ValidIdentifier(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return name != "" && unicode.IsLetter(r)
}
