package values

import (
	"math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{Int(42), "42"},
		{Int(-7), "-7"},
		{Float(3), "3"},
		{Float(2.5), "2.5"},
		{Float(-0.125), "-0.125"},
		{Float(1234567), "1234567"},
		{Float(1e21), "1e+21"},
		{Float(1e-7), "1e-07"},
		{Float(math.Inf(1)), "+Inf"},
		{TRUE, "true"},
		{FALSE, "false"},
		{Text("hello {world}"), "hello {world}"},
		{NONE, ""},
	}
	for i, tt := range tests {
		if got := tt.val.String(); got != tt.want {
			t.Fatalf("tests[%d] - expected %q, got %q", i, tt.want, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{Int(7), "int(7)"},
		{Float(3), "float(3.0)"},
		{Float(0.5), "float(0.5)"},
		{Bool(true), "bool(true)"},
		{Text(`say "hi"`), `string("say \"hi\"")`},
		{Value{}, "absent"},
	}
	for i, tt := range tests {
		if got := tt.val.Describe(); got != tt.want {
			t.Fatalf("tests[%d] - expected %q, got %q", i, tt.want, got)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Int(3).Equal(Int(3)) {
		t.Fatalf("equal ints should be equal")
	}
	if Int(3).Equal(Float(3)) {
		t.Fatalf("values with different tags should never be equal")
	}
	if !NONE.Equal(Value{}) {
		t.Fatalf("the zero value should be absent")
	}
	if Text("a").Equal(Text("b")) {
		t.Fatalf("different strings should not be equal")
	}
}

func TestNumeric(t *testing.T) {
	if f, ok := Int(4).Numeric(); !ok || f != 4 {
		t.Fatalf("int should widen to float, got %v %v", f, ok)
	}
	if f, ok := Float(1.5).Numeric(); !ok || f != 1.5 {
		t.Fatalf("float should be numeric, got %v %v", f, ok)
	}
	for _, v := range []Value{TRUE, Text("1"), NONE} {
		if _, ok := v.Numeric(); ok {
			t.Fatalf("%s should not be numeric", v.Describe())
		}
	}
}

func TestWrongAccessorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	Text("x").AsInt()
}

func TestLookupDeclaredType(t *testing.T) {
	tests := []struct {
		name string
		want DeclaredType
		ok   bool
	}{
		{"int", INT_TYPE, true},
		{"float", FLOAT_TYPE, true},
		{"string", STRING_TYPE, true},
		{"bool", BOOL_TYPE, true},
		{"boolean", BOOL_TYPE, true},
		{"double", 0, false},
	}
	for _, tt := range tests {
		got, ok := LookupDeclaredType(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("LookupDeclaredType(%q) = %v, %v", tt.name, got, ok)
		}
	}
	if BOOL_TYPE.ValueType() != BOOL || INT_TYPE.String() != "int" {
		t.Fatalf("declared type metadata wrong")
	}
}
