package err

import (
	"fmt"
	"strconv"
	"strings"
)

// A map from error identifiers to functions that supply the corresponding error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifers.
//
// Major categories are decl, echo, and eval.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.

var ErrorCreatorMap = map[string]ErrorCreator{

	"decl/assign": {
		Kind: MissingAssign,
		Message: func(line int, args ...any) string {
			return "Missing assignment operator at line " + strconv.Itoa(line)
		},
		Explanation: func(args ...any) string {
			return "A declaration has the form " + emph("let <type> <name> = <value>") + ", and Espira " +
				"couldn't find the " + emph("=") + " separating the name from the value."
		},
	},

	"decl/ident": {
		Kind: InvalidIdentifier,
		Message: func(line int, args ...any) string {
			return "Invalid identifier " + emph(args[0]) + " at line " + strconv.Itoa(line)
		},
		Explanation: func(args ...any) string {
			return "The name of a variable must be non-empty and must begin with a letter."
		},
	},

	"decl/keyword": {
		Kind: MissingType,
		Message: func(line int, args ...any) string {
			return "Invalid variable declaration at line " + strconv.Itoa(line)
		},
		Explanation: func(args ...any) string {
			return "The keyword " + emph(args[0]) + " should be followed by a type, a name, " + emph("=") +
				" and a value, all on the same line."
		},
	},

	"decl/mismatch": {
		Kind: TypeMismatch,
		Message: func(line int, args ...any) string {
			return "Error assigning variable " + emph(args[0]) + ": Cannot convert to " + fmt.Sprint(args[1])
		},
		Explanation: func(args ...any) string {
			return "The value " + emph(args[2]) + " resolved to a value of type " + emph(args[3]) +
				", which can't be stored in a variable declared as " + emph(args[1]) + ". An " + emph("int") +
				" accepts ints and floats (which are truncated), a " + emph("float") + " accepts floats and ints, and a " +
				emph("bool") + " accepts only " + emph("true") + " or " + emph("false") + "."
		},
	},

	"decl/type/missing": {
		Kind: MissingType,
		Message: func(line int, args ...any) string {
			return "Missing type declaration at line " + strconv.Itoa(line)
		},
		Explanation: func(args ...any) string {
			return "After the keyword " + emph(args[0]) + " Espira expects one of the types " + emph("int") + ", " +
				emph("float") + ", " + emph("string") + " or " + emph("bool") + ", followed by the name of the variable."
		},
	},

	"decl/type/unknown": {
		Kind: UnknownType,
		Message: func(line int, args ...any) string {
			return "Error assigning variable " + emph(args[0]) + ": Unknown type " + emph(args[1])
		},
		Explanation: func(args ...any) string {
			return "The only types a variable can be declared with are " + emph("int") + ", " + emph("float") + ", " +
				emph("string") + " and " + emph("bool") + " (which may also be spelled " + emph("boolean") + ")."
		},
	},

	"echo/brace": {
		Kind: MalformedInterpolation,
		Message: func(line int, args ...any) string {
			return "Malformed expression - missing closing brace"
		},
		Explanation: func(args ...any) string {
			return "An opening " + emph("{") + " in an echoed string starts an embedded expression, which must be " +
				"closed by a " + emph("}") + " on the same line. If you want a literal brace, write " + emph(`\{`) + "."
		},
	},

	"eval/div/zero": {
		Kind: DivisionByZero,
		Message: func(line int, args ...any) string {
			return "Division by zero at line " + strconv.Itoa(line)
		},
		Explanation: func(args ...any) string {
			return "The right-hand side of " + emph("/") + " evaluated to zero."
		},
	},

	"eval/invalid/a": {
		Kind: InvalidExpression,
		Message: func(line int, args ...any) string {
			return "Invalid expression"
		},
		Explanation: func(args ...any) string {
			return "The operator " + emph(args[0]) + " needs a value on each side of it."
		},
	},

	"eval/invalid/b": {
		Kind: InvalidExpression,
		Message: func(line int, args ...any) string {
			return "Invalid expression"
		},
		Explanation: func(args ...any) string {
			return "The expression should boil down to exactly one value, but it left " + fmt.Sprint(args[0]) +
				". Perhaps there is an operator missing between two values?"
		},
	},

	"eval/operand/number": {
		Kind: ParseError,
		Message: func(line int, args ...any) string {
			return "Cannot read " + emph(args[0]) + " as a number"
		},
		Explanation: func(args ...any) string {
			return emph(args[0]) + " isn't the name of a variable, and it isn't a number either."
		},
	},

	"eval/operand/type": {
		Kind: TypeError,
		Message: func(line int, args ...any) string {
			return "Variable " + emph(args[0]) + " is not numeric"
		},
		Explanation: func(args ...any) string {
			return "Only variables of type " + emph("int") + " or " + emph("float") + " can be used in arithmetic; " +
				emph(args[0]) + " is of type " + emph(args[1]) + "."
		},
	},
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}
