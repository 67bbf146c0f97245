package values

import (
	"math"
	"strconv"
	"strings"
)

type ValueType uint8

const (
	ABSENT ValueType = iota // The zero value, so an uninitialized Value is a legitimate absent value.
	INT
	FLOAT
	BOOL
	STRING
)

var typeNames = map[ValueType]string{
	ABSENT: "absent",
	INT:    "int",
	FLOAT:  "float",
	BOOL:   "bool",
	STRING: "string",
}

func (t ValueType) String() string {
	return typeNames[t]
}

// A Value holds exactly one of an int64, a float64, a bool, a string, or nothing. The fields
// are unexported so that the only way to make one is through the constructors below, which
// keep the tag and the payload in step.
type Value struct {
	t ValueType
	v any
}

var (
	FALSE = Value{t: BOOL, v: false}
	TRUE  = Value{t: BOOL, v: true}
	NONE  = Value{t: ABSENT}
)

func Int(i int64) Value { return Value{t: INT, v: i} }
func Float(f float64) Value { return Value{t: FLOAT, v: f} }
func Text(s string) Value { return Value{t: STRING, v: s} }
func Bool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

func (v Value) Type() ValueType {
	return v.t
}

// The As* accessors panic if the value has a different tag: asking for the wrong variant is
// a bug in the caller, not a runtime condition.

func (v Value) AsInt() int64 {
	v.mustBe(INT)
	return v.v.(int64)
}

func (v Value) AsFloat() float64 {
	v.mustBe(FLOAT)
	return v.v.(float64)
}

func (v Value) AsBool() bool {
	v.mustBe(BOOL)
	return v.v.(bool)
}

func (v Value) AsText() string {
	v.mustBe(STRING)
	return v.v.(string)
}

func (v Value) mustBe(t ValueType) {
	if v.t != t {
		panic("values: " + t.String() + " accessor called on " + v.t.String() + " value")
	}
}

// Numeric returns the value widened to a float64, if it is an int or a float.
func (v Value) Numeric() (float64, bool) {
	switch v.t {
	case INT:
		return float64(v.AsInt()), true
	case FLOAT:
		return v.AsFloat(), true
	case ABSENT, BOOL, STRING:
		return 0, false
	}
	panic("values: unknown value type")
}

func (v Value) Equal(w Value) bool {
	if v.t != w.t {
		return false
	}
	switch v.t {
	case ABSENT:
		return true
	case INT:
		return v.AsInt() == w.AsInt()
	case FLOAT:
		return v.AsFloat() == w.AsFloat()
	case BOOL:
		return v.AsBool() == w.AsBool()
	case STRING:
		return v.AsText() == w.AsText()
	}
	panic("values: unknown value type")
}

// String renders the value the way it appears when interpolated.
func (v Value) String() string {
	switch v.t {
	case ABSENT:
		return ""
	case INT:
		return strconv.FormatInt(v.AsInt(), 10)
	case FLOAT:
		return FormatFloat(v.AsFloat())
	case BOOL:
		return strconv.FormatBool(v.AsBool())
	case STRING:
		return v.AsText()
	}
	panic("values: unknown value type")
}

// Describe renders the value together with its type, e.g. float(3.0), for listings and
// debugging. Unlike String, floats always show a fractional part.
func (v Value) Describe() string {
	switch v.t {
	case ABSENT:
		return "absent"
	case FLOAT:
		s := FormatFloat(v.AsFloat())
		if !strings.ContainsAny(s, ".eIN") {
			s = s + ".0"
		}
		return "float(" + s + ")"
	case STRING:
		return "string(" + strconv.Quote(v.AsText()) + ")"
	case INT, BOOL:
		return v.t.String() + "(" + v.String() + ")"
	}
	panic("values: unknown value type")
}

// FormatFloat gives the shortest decimal form that reads back as the same float, using an
// exponent only for very large or very small magnitudes.
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && !math.IsInf(f, 0) && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
