/*
Package repl implements Helium's interactive Read-Eval-Print Loop.

It keeps the teacher's shape (github.com/chzyer/readline for line
editing and history, github.com/fatih/color for feedback coloring) but
trades the teacher's Go-Mix banner/prompt for Helium's own, recovered
from original_source/src/repl.rs since spec.md never pinned down exact
wording (SPEC_FULL.md §5).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/helium-lang/helium/environment"
	"github.com/helium-lang/helium/evaluator"
	"github.com/helium-lang/helium/lexer"
	"github.com/helium-lang/helium/object"
	"github.com/helium-lang/helium/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `+-------------------+
|    _    _         |
|   | |  | |        |
|   | |__| | ___    |
|   |  __  |/ _ \   |
|   | |  | |  __/   |
|   |_|  |_|\___|   |
|                   |
+-------------------+`

// Repl is a configurable interactive session: banner, version, and
// prompt text can be overridden by the CLI layer (cmd/helium) without
// touching the loop itself.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl with Helium's default banner and prompt.
func New(version string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: ">> "}
}

func (r *Repl) printWelcome(writer io.Writer) {
	greenColor.Fprintln(writer, r.Banner)
	yellowColor.Fprintf(writer, "Version: %s\n", r.Version)
	cyanColor.Fprintln(writer, "Welcome to the Helium repl!")
	cyanColor.Fprintln(writer, "Feel free to type in commands. Type '.exit' to quit.")
}

// Start runs the loop until EOF (Ctrl+D) or the user types .exit.
// Each line shares one environment and one Evaluator across the whole
// session, so `let`/`fn` bindings from earlier lines stay visible —
// the same persistent-evaluator design as the teacher's repl.Start,
// which keeps a single eval.Evaluator alive across ReadLine calls.
func (r *Repl) Start(writer io.Writer) {
	r.printWelcome(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := evaluator.NewWithWriter(writer)
	env := evaluator.NewGlobalEnvironment(ev)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, ev, env, line)
	}
}

func (r *Repl) evalLine(writer io.Writer, ev *evaluator.Evaluator, env *environment.Environment, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, err := range p.Errors() {
			redColor.Fprintln(writer, err)
		}
		return
	}

	result := ev.Eval(program, env)
	if result == nil {
		return
	}

	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintln(writer, errObj.Error())
		return
	}

	yellowColor.Fprintln(writer, displayResult(result))
}

// displayResult renders a REPL result for auto-display. It differs
// from Object.Inspect only for strings: the REPL quotes a string
// result in single quotes so an empty or whitespace-only string is
// visible, while print (builtinPrint) still emits a string's raw
// contents verbatim — the distinction SPEC_FULL.md §6 draws.
func displayResult(obj object.Object) string {
	if s, ok := obj.(*object.String); ok {
		return "'" + s.Value + "'"
	}
	return obj.Inspect()
}
