package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lmorg/readline"

	"github.com/espira-lang/espira/source/service"
	"github.com/espira-lang/espira/source/text"
)

func newTestRepl() (*Repl, *bytes.Buffer) {
	text.SetColor(false)
	out := &bytes.Buffer{}
	sv := service.New(out, out)
	return New(sv, out, ""), out
}

func TestDo(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`echo "hello"`, "hello\n"},
		{`echo {2 + 3 * 4}`, "14\n"},
		{`let bool b = 3`, "Error: Error assigning variable 'b': Cannot convert to bool\n"},
		{`echo {1 / 0}`, "1 / 0\n"},
		{`:nonsense`, "Error: unknown REPL command ':nonsense'. Try ':help'.\n"},
		{`   `, ""},
	}
	for _, test := range tests {
		r, out := newTestRepl()
		if r.Do(test.input) {
			t.Errorf("Input %q: did not expect to quit", test.input)
		}
		if got := out.String(); got != test.want {
			t.Errorf("Input %q: expected %q, got %q", test.input, test.want, got)
		}
	}
}

func TestHelp(t *testing.T) {
	r, out := newTestRepl()
	r.Do(":help")
	for _, command := range metaCommands {
		if !strings.Contains(out.String(), command) {
			t.Errorf("Expected :help to list %s, got %q", command, out.String())
		}
	}
}

func TestQuit(t *testing.T) {
	r, _ := newTestRepl()
	if !r.Do(":quit") {
		t.Errorf("Expected :quit to quit")
	}
}

func TestVarsAndClear(t *testing.T) {
	r, out := newTestRepl()
	r.Do(":vars")
	if got := out.String(); got != "No variables have been declared.\n" {
		t.Errorf("Expected no variables, got %q", got)
	}
	r.Do("let int b = 2")
	r.Do(`var string a = "x"`)
	out.Reset()
	r.Do(":vars")
	want := text.BULLET + `string a = string("x")` + "\n" + text.BULLET + "int b = int(2)\n"
	if got := out.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	out.Reset()
	r.Do(":clear")
	r.Do(":vars")
	if got := out.String(); got != "OK\nNo variables have been declared.\n" {
		t.Errorf("Expected the variables to be cleared, got %q", got)
	}
}

func TestWhy(t *testing.T) {
	r, out := newTestRepl()
	r.Do(":why")
	if got := out.String(); got != "There are no errors to explain.\n" {
		t.Errorf("Expected nothing to explain, got %q", got)
	}
	r.Do("let color c = 1")
	out.Reset()
	r.Do(":why")
	if got := out.String(); !strings.Contains(got, "Unknown type 'color'") || !strings.Contains(got, "'boolean'") {
		t.Errorf("Expected an explanation of the unknown type, got %q", got)
	}
}

func TestPrompt(t *testing.T) {
	r, _ := newTestRepl()
	if got := r.makePrompt(); got != text.PROMPT {
		t.Errorf("Expected the default prompt, got %q", got)
	}
	custom := New(service.New(&bytes.Buffer{}, &bytes.Buffer{}), &bytes.Buffer{}, "> ")
	if got := custom.makePrompt(); got != "> " {
		t.Errorf("Expected the custom prompt, got %q", got)
	}
}

func TestTab(t *testing.T) {
	r, _ := newTestRepl()
	r.Do("let int total = 1")
	r.Do("let int tally = 2")
	r.Do("let int count = 3")
	tests := []struct {
		line   string
		prefix string
		want   []string
	}{
		{":v", ":v", []string{"ars"}},
		{":q", ":q", []string{"uit"}},
		{"echo {t", "t", []string{"ally", "otal"}},
		{"echo {1 + co", "co", []string{"unt"}},
		{"echo ", "", nil},
	}
	for _, test := range tests {
		line := []rune(test.line)
		prefix, got, _, _ := r.tab(line, len(line), readline.DelayedTabContext{})
		if prefix != test.prefix || strings.Join(got, ",") != strings.Join(test.want, ",") {
			t.Errorf("Line %q: expected (%q, %v), got (%q, %v)", test.line, test.prefix, test.want, prefix, got)
		}
	}
}
