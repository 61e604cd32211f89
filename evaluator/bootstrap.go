package evaluator

import (
	"github.com/helium-lang/helium/environment"
	"github.com/helium-lang/helium/lexer"
	"github.com/helium-lang/helium/object"
	"github.com/helium-lang/helium/parser"
)

// bootstrapSource holds map/reduce, written in Helium itself and loaded
// into every fresh global environment before user code runs. The
// original_source registers these the same way (helium::import loading
// builtin/helium/map.he and reduce.he from src/builtin/helium/mod.rs);
// the Helium source itself wasn't preserved there (filtered as
// non-code data), so this is freshly written in the same idiom: plain
// recursion over first/rest/push/len, the classic Monkey-book bootstrap
// shape.
const bootstrapSource = `
let map = fn(arr, f) {
	let iter = fn(arr, acc) {
		if (len(arr) == 0) {
			return acc;
		}
		return iter(rest(arr), push(acc, f(first(arr))));
	};
	return iter(arr, []);
};

let reduce = fn(arr, initial, f) {
	let iter = fn(arr, result) {
		if (len(arr) == 0) {
			return result;
		}
		return iter(rest(arr), f(result, first(arr)));
	};
	return iter(arr, initial);
};
`

// NewGlobalEnvironment builds a fresh environment with the Helium
// bootstrap library (map/reduce) already loaded, the shape
// original_source's `global()` construction takes (SPEC_FULL.md §5).
// A bootstrap parse/eval failure is a programming error in this file,
// not a user-facing one, so it panics rather than threading an error
// return through every caller.
func NewGlobalEnvironment(e *Evaluator) *environment.Environment {
	env := environment.New()

	p := parser.New(lexer.New(bootstrapSource))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		panic("evaluator: bootstrap library failed to parse: " + p.Errors()[0].Error())
	}

	result := e.Eval(program, env)
	if errObj, ok := result.(*object.Error); ok {
		panic("evaluator: bootstrap library failed to evaluate: " + errObj.Error())
	}

	return env
}
