package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/espira-lang/espira/source/declare"
	"github.com/espira-lang/espira/source/err"
	"github.com/espira-lang/espira/source/interpolate"
	"github.com/espira-lang/espira/source/lexer"
	"github.com/espira-lang/espira/source/parser"
	"github.com/espira-lang/espira/source/resolver"
	"github.com/espira-lang/espira/source/settings"
	"github.com/espira-lang/espira/source/store"
	"github.com/espira-lang/espira/source/text"
	"github.com/espira-lang/espira/source/values"
)

// A Service is one interpreter: its variables, where its output goes, and how far through
// the script it has got. Services share nothing, so you can have as many as you like, but
// any one of them must only be used from one goroutine at a time.
type Service struct {
	vars      *store.Store
	out       io.Writer
	errOut    io.Writer
	line      int
	lastError *err.Error
	log       *logrus.Logger
}

type Option func(*Service)

// WithLogger sends the trace of what the service is doing to the given logger.
func WithLogger(log *logrus.Logger) Option {
	return func(sv *Service) { sv.log = log }
}

func New(out, errOut io.Writer, opts ...Option) *Service {
	sv := &Service{vars: store.New(), out: out, errOut: errOut}
	for _, opt := range opts {
		opt(sv)
	}
	if sv.log == nil {
		sv.log = NewLogger(errOut, false)
	}
	return sv
}

// NewLogger makes a logger which is silent except for warnings and worse unless trace is set.
func NewLogger(w io.Writer, trace bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if trace {
		log.SetLevel(logrus.TraceLevel)
	}
	return log
}

// Run executes the script a line at a time. A line that fails is reported to the error writer
// and then we carry on with the next one. It returns the number of lines that failed.
func (sv *Service) Run(r io.Reader) (int, error) {
	failures := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if e := sv.ExecuteLine(scanner.Text()); e != nil {
			failures++
			fmt.Fprintln(sv.errOut, text.ERROR+text.DescribeLine(sv.line)+": "+e.Error())
		}
	}
	if e := scanner.Err(); e != nil {
		return failures, fmt.Errorf("reading script: %w", e)
	}
	return failures, nil
}

// ExecuteLine does whatever one line of script says to do. The line counter goes up by one
// whether or not the line does anything.
func (sv *Service) ExecuteLine(line string) error {
	sv.line++
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//"):
		return nil
	case strings.HasPrefix(trimmed, "echo"):
		return sv.record(sv.Echo(strings.TrimSpace(trimmed[len("echo"):])))
	case declare.IsDeclaration(trimmed):
		d, e := declare.Split(trimmed, sv.line)
		if e != nil {
			return sv.record(e)
		}
		return sv.record(sv.Declare(d.Keyword, d.TypeName, d.Ident, d.ValueText))
	}
	fmt.Fprintln(sv.errOut, text.WARNING+text.DescribeLine(sv.line)+": Unknown command "+text.Emph(trimmed))
	return nil
}

// Echo prints its content with any {expressions} filled in. Quotes around the whole content
// are removed first.
func (sv *Service) Echo(content string) error {
	content = resolver.RemoveQuotes(content)
	result, e := interpolate.Interpolate(content, sv.Evaluate, sv.line)
	if e != nil {
		return e
	}
	fmt.Fprintln(sv.out, result)
	return nil
}

// Evaluate gives the value of an expression in the light of the variables declared so far.
func (sv *Service) Evaluate(expr string) values.Value {
	expr = strings.TrimSpace(expr)
	lexLevel := showLevel(settings.SHOW_LEXER, logrus.TraceLevel)
	parseLevel := showLevel(settings.SHOW_PARSER, logrus.TraceLevel)
	if resolver.LooksArithmetic(expr) && (sv.log.IsLevelEnabled(lexLevel) || sv.log.IsLevelEnabled(parseLevel)) {
		toks := lexer.Tokenize(expr)
		lits := make([]string, 0, len(toks))
		for _, tok := range toks {
			lits = append(lits, tok.Literal)
		}
		sv.log.WithFields(logrus.Fields{
			"line":   sv.line,
			"tokens": strings.Join(lits, " "),
		}).Log(lexLevel, "lexed")
		sv.log.WithFields(logrus.Fields{
			"line":    sv.line,
			"postfix": parser.ToPostfix(toks).String(),
		}).Log(parseLevel, "parsed")
	}
	v, strategy := resolver.Resolve(expr, sv.vars, sv.line)
	sv.log.WithFields(logrus.Fields{
		"line":     sv.line,
		"expr":     expr,
		"strategy": strategy,
		"value":    v.Describe(),
	}).Log(showLevel(settings.SHOW_RESOLVER, logrus.DebugLevel), "resolved")
	return v
}

// A debug switch in settings lifts its messages to warning level so they show whatever the
// logger is set to.
func showLevel(switchedOn bool, level logrus.Level) logrus.Level {
	if switchedOn {
		return logrus.WarnLevel
	}
	return level
}

func (sv *Service) Declare(keyword, typeName, ident, valueText string) error {
	d := declare.Declaration{Keyword: keyword, TypeName: typeName, Ident: ident, ValueText: valueText}
	v, e := declare.Declare(sv.vars, d, sv.line)
	if e != nil {
		return e
	}
	sv.log.WithFields(logrus.Fields{
		"line":  sv.line,
		"name":  ident,
		"type":  v.Declared.String(),
		"value": v.Value.Describe(),
	}).Debug("declared")
	return nil
}

func (sv *Service) record(e error) error {
	if e == nil {
		return nil
	}
	var ours *err.Error
	if errors.As(e, &ours) {
		sv.lastError = ours
	}
	return e
}

// LastError is the most recent error any line produced, or nil.
func (sv *Service) LastError() *err.Error {
	return sv.lastError
}

func (sv *Service) Line() int {
	return sv.line
}

func (sv *Service) Variables() []store.Entry {
	return sv.vars.Entries()
}

func (sv *Service) Lookup(name string) (store.Variable, bool) {
	return sv.vars.Get(name)
}

// Clear forgets every variable.
func (sv *Service) Clear() {
	sv.vars.Clear()
}

// Close ends the run. The service can still be used afterwards, but it starts again with no variables.
func (sv *Service) Close() {
	sv.vars.Clear()
	sv.lastError = nil
}
