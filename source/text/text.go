package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// messages for the console.

import (
	"strconv"
	"strings"
)

const (
	VERSION = "0.1.0"
	BULLET  = "  ▪ "
	PROMPT  = "→ "
)

func Emph(s string) string {
	return "'" + s + "'"
}

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Logo() string {
	titleText := " Espira version " + VERSION + " "
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText))
	logoString := "\n" +
		leftMargin + "╔" + bar + "╗\n" +
		leftMargin + "║" + Cyan(titleText) + "║\n" +
		leftMargin + "╚" + bar + "╝\n\n"
	return logoString
}

const HELP = "\nUsage: espira [-v | --version] [-h | --help]\n" +
	"              [--config <file.yaml>] [--snapshot <driver:dsn>] [--trace] [--no-color]\n" +
	"              <command> [args]\n\n" +
	"Commands are:\n\n" +
	"  run <file>    Runs an Espira script one line at a time. 'espira <file>' does the same.\n" +
	"  repl          Starts an interactive session.\n\n"

const REPL_HELP = "\nREPL commands are:\n\n" +
	"  :vars     Lists the variables declared so far.\n" +
	"  :why      Explains the last error.\n" +
	"  :clear    Forgets all the variables.\n" +
	"  :help     Shows this list.\n" +
	"  :quit     Leaves the REPL.\n\n"

// DescribeLine gives the prefix for a message about a line of a script.
func DescribeLine(line int) string {
	if line > 0 {
		return " at line " + strconv.Itoa(line)
	}
	return ""
}

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	ERROR   = Red("Error")
	WARNING = Yellow("Warning")
	OK      = Green("OK")
)

// SetColor turns the ANSI colour codes on or off for everything made after the call.
func SetColor(on bool) {
	if on {
		RESET, RED, GREEN, YELLOW, CYAN = "\033[0m", "\033[31m", "\033[32m", "\033[33m", "\033[36m"
	} else {
		RESET, RED, GREEN, YELLOW, CYAN = "", "", "", "", ""
	}
	ERROR, WARNING, OK = Red("Error"), Yellow("Warning"), Green("OK")
}
