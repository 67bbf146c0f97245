package test_helper

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/espira-lang/espira/source/declare"
	"github.com/espira-lang/espira/source/err"
	"github.com/espira-lang/espira/source/service"
	"github.com/espira-lang/espira/source/settings"
	"github.com/espira-lang/espira/source/text"
)

// Auxiliary types and functions for testing the interpreter a line at a time.

type TestItem struct {
	Input string
	Want  string
}

// A TestService is a service whose output is captured.
type TestService struct {
	*service.Service
	Out    bytes.Buffer
	ErrOut bytes.Buffer
}

func NewTestService() *TestService {
	ts := &TestService{}
	ts.Service = service.New(&ts.Out, &ts.ErrOut)
	return ts
}

// RunTest gives each test a fresh service, first running the named script from the test-files
// directory of the package being tested to set it up, if a filename is given.
func RunTest(t *testing.T, filename string, tests []TestItem, F func(ts *TestService, s string) (string, error)) {
	text.SetColor(false)
	defer text.SetColor(true)
	wd, _ := os.Getwd() // The working directory is the directory containing the package being tested.
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		ts := NewTestService()
		if filename != "" {
			file, e := os.Open(wd + "/test-files/" + filename)
			if e != nil {
				t.Fatalf("Couldn't open test file : %v", e)
			}
			failures, e := ts.Run(file)
			file.Close()
			if e != nil || failures > 0 {
				t.Fatalf("There were errors initializing the service : \n%s", ts.ErrOut.String())
			}
			ts.Out.Reset()
			ts.ErrOut.Reset()
		}
		got, e := F(ts, test.Input)
		if e != nil {
			println(text.Red(test.Input))
			println("There were errors running the line: \n" + e.Error() + "\n")
		}
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// EchoOutput echoes the input and returns what was printed, without the final newline.
func EchoOutput(ts *TestService, s string) (string, error) {
	e := ts.ExecuteLine("echo " + s)
	return strings.TrimSuffix(ts.Out.String(), "\n"), e
}

// ValueOf describes the value the input resolves to.
func ValueOf(ts *TestService, s string) (string, error) {
	return ts.Evaluate(s).Describe(), nil
}

// Declared runs a declaration line and describes the variable it declares.
func Declared(ts *TestService, s string) (string, error) {
	if e := ts.ExecuteLine(s); e != nil {
		return "unexpected error " + text.Emph(e.Error()), e
	}
	d, e := declare.Split(s, ts.Line())
	if e != nil {
		return "not a declaration", e
	}
	v, ok := ts.Lookup(d.Ident)
	if !ok {
		return "nothing declared", nil
	}
	return v.Declared.String() + " " + d.Ident + " = " + v.Value.Describe(), nil
}

// ErrorId runs a line which should fail and returns the identifier of the error.
func ErrorId(ts *TestService, s string) (string, error) {
	e := ts.ExecuteLine(s)
	if e == nil {
		return "unexpected success", nil
	}
	var ours *err.Error
	if !errors.As(e, &ours) {
		return "foreign error " + text.Emph(e.Error()), nil
	}
	return ours.ErrorId, nil
}
