package declare

import (
	"errors"
	"testing"

	"github.com/espira-lang/espira/source/err"
	"github.com/espira-lang/espira/source/store"
	"github.com/espira-lang/espira/source/values"
)

func declareLine(t *testing.T, vars *store.Store, line string) (store.Variable, error) {
	t.Helper()
	d, e := Split(line, 1)
	if e != nil {
		return store.Variable{}, e
	}
	return Declare(vars, d, 1)
}

func TestSplit(t *testing.T) {
	d, e := Split("let  int   total = 2 + 3 = 5 ", 1)
	if e != nil {
		t.Fatalf("unexpected error %v", e)
	}
	want := Declaration{Keyword: "let", TypeName: "int", Ident: "total", ValueText: "2 + 3 = 5"}
	if d != want {
		t.Fatalf("wanted %+v, got %+v", want, d)
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		line string
		id   string
	}{
		{"let", "decl/keyword"},
		{"let int", "decl/type/missing"},
		{"let int x 5", "decl/assign"},
	}
	for _, tt := range tests {
		_, e := Split(tt.line, 9)
		var ours *err.Error
		if !errors.As(e, &ours) || ours.ErrorId != tt.id {
			t.Fatalf("Test failed with input %s | Wanted : %s | Got : %v.", tt.line, tt.id, e)
		}
		if ours.Line != 9 {
			t.Fatalf("error should carry the line number, got %d", ours.Line)
		}
	}
}

func TestCoercionMatrix(t *testing.T) {
	vars := store.New()
	vars.Set("i", store.Variable{Value: values.Int(3), Declared: values.INT_TYPE})
	vars.Set("s", store.Variable{Value: values.Text("str"), Declared: values.STRING_TYPE})
	tests := []struct {
		line     string
		want     values.Value
		declared values.DeclaredType
	}{
		{"let int a = 7", values.Int(7), values.INT_TYPE},
		{"let int a = 7.9", values.Int(7), values.INT_TYPE},
		{"let int a = -7.9", values.Int(-7), values.INT_TYPE},
		{"var int a = 10 / 4", values.Int(2), values.INT_TYPE},
		{"let int a = i", values.Int(3), values.INT_TYPE},
		{"let float a = 2.5", values.Float(2.5), values.FLOAT_TYPE},
		{"let float a = 2", values.Float(2), values.FLOAT_TYPE},
		{"let float a = i * 2", values.Float(6), values.FLOAT_TYPE},
		{"const float a = i", values.Float(3), values.FLOAT_TYPE},
		{`let string a = "hello world"`, values.Text("hello world"), values.STRING_TYPE},
		{`let string a = 'single'`, values.Text("single"), values.STRING_TYPE},
		{"let string a = 1 + 2", values.Text("1 + 2"), values.STRING_TYPE},
		{"let string a = i", values.Text("i"), values.STRING_TYPE},
		{"let bool a = true", values.TRUE, values.BOOL_TYPE},
		{"let boolean a = false", values.FALSE, values.BOOL_TYPE},
	}
	for _, tt := range tests {
		got, e := declareLine(t, vars, tt.line)
		if e != nil {
			t.Fatalf("Test failed with input %s | unexpected error : %v", tt.line, e)
		}
		if !got.Value.Equal(tt.want) || got.Declared != tt.declared {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, tt.line, tt.want.Describe(), got.Value.Describe())
		}
		stored, _ := vars.Get("a")
		if stored != got {
			t.Fatalf("Test failed with input %s | stored value differs from returned value", tt.line)
		}
	}
}

func TestRejections(t *testing.T) {
	vars := store.New()
	vars.Set("s", store.Variable{Value: values.Text("str"), Declared: values.STRING_TYPE})
	tests := []struct {
		line string
		kind err.Kind
	}{
		{"let bool b = 5", err.TypeMismatch},
		{"let bool b = yes", err.TypeMismatch},
		{`let int b = "7"`, err.TypeMismatch},
		{"let int b = true", err.TypeMismatch},
		{"let int b = s", err.TypeMismatch},
		{"let int b = 10 / 0", err.TypeMismatch},
		{"let int b = 99999999999999999999999", err.TypeMismatch},
		{"let float b = hello", err.TypeMismatch},
		{"let float b = false", err.TypeMismatch},
		{"let double b = 1", err.UnknownType},
		{"let int 9b = 1", err.InvalidIdentifier},
		{"let int _b = 1", err.InvalidIdentifier},
		{"let int = 1", err.InvalidIdentifier},
	}
	for _, tt := range tests {
		_, e := declareLine(t, vars, tt.line)
		if !errors.Is(e, tt.kind) {
			t.Fatalf("Test failed with input %s | Wanted : %v | Got : %v.", tt.line, tt.kind, e)
		}
		if _, ok := vars.Get("b"); ok {
			t.Fatalf("Test failed with input %s | failed declaration was stored", tt.line)
		}
	}
}

func TestMismatchMessage(t *testing.T) {
	_, e := declareLine(t, store.New(), "let bool b = 5")
	if e == nil || e.Error() != "Error assigning variable 'b': Cannot convert to bool" {
		t.Fatalf("unexpected error %v", e)
	}
}

func TestRedeclarationReplacesType(t *testing.T) {
	vars := store.New()
	if _, e := declareLine(t, vars, "let int x = 1"); e != nil {
		t.Fatalf("unexpected error %v", e)
	}
	if _, e := declareLine(t, vars, "var string x = one"); e != nil {
		t.Fatalf("unexpected error %v", e)
	}
	got, _ := vars.Get("x")
	if got.Declared != values.STRING_TYPE || !got.Value.Equal(values.Text("one")) {
		t.Fatalf("redeclaration left residual state: %v %s", got.Declared, got.Value.Describe())
	}
}

func TestIsDeclaration(t *testing.T) {
	for _, line := range []string{"let int x = 1", "var bool b = true", "const float f = 1"} {
		if !IsDeclaration(line) {
			t.Fatalf("%q should be a declaration", line)
		}
	}
	if IsDeclaration("echo hi") {
		t.Fatalf("echo is not a declaration")
	}
}

func TestValidIdentifier(t *testing.T) {
	tests := map[string]bool{"x": true, "été": true, "x1": true, "": false, "1x": false, "-x": false}
	for name, want := range tests {
		if ValidIdentifier(name) != want {
			t.Fatalf("ValidIdentifier(%q) should be %v", name, want)
		}
	}
}
