package err

import (
	"errors"
)

// A Kind says what sort of thing went wrong. Kinds satisfy the error interface so they can be
// used as targets for errors.Is.
type Kind int

const (
	LexError Kind = iota + 1 // Never produced at present: the tokenizer accepts anything.
	ParseError
	TypeError
	DivisionByZero
	InvalidExpression
	TypeMismatch
	UnknownType
	MalformedInterpolation
	InvalidIdentifier
	MissingType
	MissingAssign
)

var kindNames = map[Kind]string{
	LexError:               "lex error",
	ParseError:             "parse error",
	TypeError:              "type error",
	DivisionByZero:         "division by zero",
	InvalidExpression:      "invalid expression",
	TypeMismatch:           "type mismatch",
	UnknownType:            "unknown type",
	MalformedInterpolation: "malformed interpolation",
	InvalidIdentifier:      "invalid identifier",
	MissingType:            "missing type",
	MissingAssign:          "missing assignment",
}

func (k Kind) Error() string {
	return kindNames[k]
}

func (k Kind) String() string {
	return kindNames[k]
}

type ErrorCreator struct {
	Kind        Kind
	Message     func(line int, args ...any) string
	Explanation func(args ...any) string
}

// The 'error' type.
type Error struct {
	ErrorId string
	Kind    Kind
	Message string
	Args    []any
	Line    int
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func (e *Error) Explain() string {
	return ErrorCreatorMap[e.ErrorId].Explanation(e.Args...)
}

// CreateErr makes the error with the given identifier. The arguments are whatever the
// creator in the ErrorCreatorMap expects.
func CreateErr(errorId string, line int, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorId]
	if !ok {
		panic("err: no error with id " + errorId)
	}
	return &Error{
		ErrorId: errorId,
		Kind:    creator.Kind,
		Message: creator.Message(line, args...),
		Args:    args,
		Line:    line,
	}
}

// KindOf returns the Kind of an error made by CreateErr, or 0 if it is some other error.
func KindOf(e error) Kind {
	var ours *Error
	if errors.As(e, &ours) {
		return ours.Kind
	}
	return 0
}
