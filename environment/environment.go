/*
Package environment implements Helium's lexical scope chain: a
parent-linked chain of variable frames.

Each frame is a live, mutable map shared by reference — a function
literal closes over the *Environment pointer active at its definition,
not a snapshot of it, so later mutations of an outer variable are
visible inside the closure (spec.md §4.3), and two closures created
from the same enclosing call share the same captured frame (spec.md
§8 "adder" scenario). This drops the teacher's scope.Scope.Copy(),
which snapshotted bindings for closure capture — Copy gives the wrong
semantics here, since Helium closures must observe later writes to
their captured scope, not a frozen view of it.
*/
package environment

import "github.com/helium-lang/helium/object"

// Environment is one frame in the scope chain.
type Environment struct {
	store  map[string]object.Object
	parent *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a child frame nested inside parent, used for
// function calls and every block (spec.md §4.5).
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), parent: parent}
}

// Get looks up name in this frame, then walks up the parent chain.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.parent != nil {
		return e.parent.Get(name)
	}
	return obj, ok
}

// Set binds name in this frame only. `let` always creates a new
// binding here, shadowing any outer binding of the same name
// (spec.md §3 Invariants).
func (e *Environment) Set(name string, val object.Object) {
	e.store[name] = val
}

// Assign updates name in the frame where it was originally bound,
// walking outward until it finds one. It reports whether an existing
// binding was found; the evaluator turns a false into an
// UndefinedVariable error rather than silently creating a global.
func (e *Environment) Assign(name string, val object.Object) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return false
}
