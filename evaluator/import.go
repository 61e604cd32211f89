package evaluator

import (
	"fmt"
	"os"

	"github.com/helium-lang/helium/environment"
	"github.com/helium-lang/helium/lexer"
	"github.com/helium-lang/helium/object"
	"github.com/helium-lang/helium/parser"
)

// Import reads the Helium source at path, parses it, and evaluates it
// directly into env — so names it defines become visible to whatever
// called Import, the same contract as original_source's
// `import(env, filename)` (SPEC_FULL.md §5). A parse failure returns
// the accumulated parser errors without touching env; a runtime
// failure returns the resulting *object.Error as a single-element
// slice so both failure modes share one return shape.
func Import(e *Evaluator, env *environment.Environment, path string) []error {
	src, err := os.ReadFile(path)
	if err != nil {
		return []error{fmt.Errorf("could not read %q: %w", path, err)}
	}

	p := parser.New(lexer.New(string(src)))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		return p.Errors()
	}

	result := e.Eval(program, env)
	if errObj, ok := result.(*object.Error); ok {
		return []error{errObj}
	}
	return nil
}

// Run parses and evaluates a standalone Helium program in a fresh
// global environment, the entry point `cmd/helium run` and the test
// harness use (mirrors original_source's `run(input)`).
func Run(e *Evaluator, src string) (object.Object, []error) {
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		return nil, p.Errors()
	}

	env := NewGlobalEnvironment(e)
	result := e.Eval(program, env)
	if errObj, ok := result.(*object.Error); ok {
		return nil, []error{errObj}
	}
	return result, nil
}
