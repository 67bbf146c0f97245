package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lmorg/readline"

	"github.com/espira-lang/espira/source/service"
	"github.com/espira-lang/espira/source/text"
)

// The Repl feeds lines typed at the console to a service one at a time. Lines beginning with
// a colon are meta commands and are dealt with here instead.
type Repl struct {
	sv     *service.Service
	out    io.Writer
	prompt string
}

func New(sv *service.Service, out io.Writer, prompt string) *Repl {
	if prompt == "" {
		prompt = text.PROMPT
	}
	return &Repl{sv: sv, out: out, prompt: prompt}
}

var metaCommands = []string{":clear", ":help", ":quit", ":vars", ":why"}

func (r *Repl) Start() {
	rline := readline.NewInstance()
	rline.TabCompleter = r.tab
	fmt.Fprint(r.out, text.Logo())
	for {
		rline.SetPrompt(r.makePrompt())
		line, e := rline.Readline()
		if e != nil {
			return
		}
		if r.Do(line) {
			return
		}
	}
}

// Do handles one line of input, returning true if the user has asked to leave.
func (r *Repl) Do(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ":") {
		return r.meta(line)
	}
	if e := r.sv.ExecuteLine(line); e != nil {
		fmt.Fprintln(r.out, text.ERROR+": "+e.Error())
	}
	return false
}

func (r *Repl) meta(line string) bool {
	switch line {
	case ":quit":
		return true
	case ":help":
		fmt.Fprint(r.out, text.REPL_HELP)
	case ":vars":
		entries := r.sv.Variables()
		if len(entries) == 0 {
			fmt.Fprintln(r.out, "No variables have been declared.")
		}
		for _, entry := range entries {
			fmt.Fprintln(r.out, text.BULLET+entry.Declared.String()+" "+entry.Name+" = "+entry.Value.Describe())
		}
	case ":why":
		e := r.sv.LastError()
		if e == nil {
			fmt.Fprintln(r.out, "There are no errors to explain.")
			return false
		}
		fmt.Fprintln(r.out, "\n"+text.ERROR+": "+e.Message+"\n\n"+e.Explain()+"\n")
	case ":clear":
		r.sv.Clear()
		fmt.Fprintln(r.out, text.OK)
	default:
		fmt.Fprintln(r.out, text.ERROR+": unknown REPL command "+text.Emph(line)+". Try "+text.Emph(":help")+".")
	}
	return false
}

func (r *Repl) makePrompt() string {
	if r.sv.LastError() != nil && r.sv.LastError().Line == r.sv.Line() {
		return text.Red(r.prompt)
	}
	return r.prompt
}

// Suggests meta commands at the start of a line and variable names anywhere else.
func (r *Repl) tab(line []rune, pos int, dtx readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	word := currentWord(line[:pos])
	var candidates []string
	if strings.HasPrefix(word, ":") && len(word) == len(strings.TrimLeft(string(line[:pos]), " ")) {
		candidates = metaCommands
	} else {
		for _, entry := range r.sv.Variables() {
			candidates = append(candidates, entry.Name)
		}
	}
	var suggestions []string
	for _, c := range candidates {
		if word != "" && strings.HasPrefix(c, word) {
			suggestions = append(suggestions, c[len(word):])
		}
	}
	sort.Strings(suggestions)
	return word, suggestions, nil, readline.TabDisplayGrid
}

func currentWord(line []rune) string {
	i := len(line)
	for i > 0 && !strings.ContainsRune(" {}+-*/()=", line[i-1]) {
		i--
	}
	return string(line[i:])
}
