// Package runtime catalogs the names of the runtime helper functions the
// generated JavaScript relies on (spec.md §6's "Runtime helpers"
// collaborator): the Fn/An curried-function family, list/cons, record
// update, structural equality/comparison, effect descriptors, port
// wiring, program entry, and the crash helper.
//
// It is modeled on the teacher's environment package, which registered
// every built-in function the scripting language could call by name in
// one place (environment.New's block of env.SetFunction calls). Here
// there is no dynamic registration — the helper set is fixed by the
// target runtime's calling convention — so the catalog is a set of
// typed constructors instead of a map, but the "one name, one place"
// organizing idea is the same.
package runtime

import (
	"github.com/pkg/errors"

	"github.com/elm-js/codegen/jsast"
)

// MinCurryArity and MaxCurryArity bound the arity-curry convention's
// Fn/An family (spec.md §4.3, §4.5, and design note "the arity-9 cap is
// a runtime-library convention"). Generating a call outside this range
// via Fn/An would silently miscompile against the real runtime.
const (
	MinCurryArity = 2
	MaxCurryArity = 9
)

// Ident returns a bare reference to one of the fixed runtime helper
// names (list, cons, recordUpdate, eq, cmp, crash, ...).
func Ident(name string) *jsast.Ident {
	return &jsast.Ident{Name: name}
}

// FuncTag wraps a native function literal with the Fn helper that tags
// it as an n-ary curried value, per §4.3. arity must be in
// [MinCurryArity, MaxCurryArity]; arity 1 needs no wrapper (the bare
// function literal already has 1-argument JS calling convention) and is
// rejected here so callers don't accidentally ask for a no-op wrap.
func FuncTag(arity int, fn jsast.Expr) (jsast.Expr, error) {
	if arity < MinCurryArity || arity > MaxCurryArity {
		return nil, errors.Errorf("runtime: FuncTag: arity %d outside supported range [%d,%d]", arity, MinCurryArity, MaxCurryArity)
	}
	return &jsast.CallExpr{
		Func: Ident(curryHelperName(arity)),
		Args: []jsast.Expr{fn},
	}, nil
}

// Apply wraps a saturated application with the An helper that applies a
// curried value to n arguments, per §4.5. arity must be in
// [MinCurryArity, MaxCurryArity].
func Apply(arity int, fn jsast.Expr, args []jsast.Expr) (jsast.Expr, error) {
	if arity < MinCurryArity || arity > MaxCurryArity {
		return nil, errors.Errorf("runtime: Apply: arity %d outside supported range [%d,%d]", arity, MinCurryArity, MaxCurryArity)
	}
	return &jsast.CallExpr{
		Func: Ident(applyHelperName(arity)),
		Args: append([]jsast.Expr{fn}, args...),
	}, nil
}

func curryHelperName(arity int) string {
	return "F" + itoa(arity)
}

func applyHelperName(arity int) string {
	return "A" + itoa(arity)
}

func itoa(n int) string {
	// n is always a small single-digit arity (2..9); avoid importing
	// strconv for a one-digit conversion.
	return string([]byte{byte('0' + n)})
}

// List wraps a set of already-compiled element expressions with the
// runtime's list constructor.
func List(elems []jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("list"), Args: []jsast.Expr{&jsast.ArrayLit{Elems: elems}}}
}

// Cons emits the runtime's list-cons helper, used for the `::` operator
// (§4.6).
func Cons(head, tail jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("cons"), Args: []jsast.Expr{head, tail}}
}

// RecordUpdate emits the runtime's functional record-update helper
// (§4.2's Update case).
func RecordUpdate(record jsast.Expr, fields []jsast.Prop) jsast.Expr {
	return &jsast.CallExpr{
		Func: Ident("recordUpdate"),
		Args: []jsast.Expr{record, &jsast.ObjectLit{Props: fields}},
	}
}

// Eq emits the runtime's structural-equality helper (§4.6's `==` row).
func Eq(l, r jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("eq"), Args: []jsast.Expr{l, r}}
}

// Cmp emits the runtime's structural-comparison helper (§4.6's
// `<`/`>`/`<=`/`>=` rows).
func Cmp(l, r jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("cmp"), Args: []jsast.Expr{l, r}}
}

// Effect emits the runtime's effect-manager descriptor for a Cmd/Sub
// placeholder (§4.2).
func Effect(module string) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("effect"), Args: []jsast.Expr{&jsast.Str{Value: module}}}
}

// OutgoingPort emits the runtime's outgoing-port wiring call (§4.2).
func OutgoingPort(name string, encoder jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("outgoingPort"), Args: []jsast.Expr{&jsast.Str{Value: name}, encoder}}
}

// IncomingPort emits the runtime's incoming-port wiring call (§4.2).
func IncomingPort(name string, decoder jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("incomingPort"), Args: []jsast.Expr{&jsast.Str{Value: name}, decoder}}
}

// StaticProgram emits the runtime's static VDOM program wrapper (§4.9).
func StaticProgram(html jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("staticProgram"), Args: []jsast.Expr{html}}
}

// Program emits the runtime's program-initialization entry point (§4.9).
// flagsDecoder is nil for a no-flags program, in which case the call
// omits the second argument entirely rather than passing an explicit
// no-op decoder.
func Program(body jsast.Expr, flagsDecoder jsast.Expr) jsast.Expr {
	args := []jsast.Expr{body}
	if flagsDecoder != nil {
		args = append(args, flagsDecoder)
	}
	return &jsast.CallExpr{Func: Ident("programInit"), Args: args}
}

// Crash emits the runtime's crash helper (§4.2's Crash case).
func Crash(module, region string, branchProblem jsast.Expr) jsast.Expr {
	args := []jsast.Expr{&jsast.Str{Value: module}, &jsast.Str{Value: region}}
	if branchProblem != nil {
		args = append(args, branchProblem)
	}
	return &jsast.CallExpr{Func: Ident("crash"), Args: args}
}

// CharWrap boxes a single-character string so it compares by identity
// under `===` and exposes `.valueOf()`, per the design note "Strict
// equality and characters".
func CharWrap(ch jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{Func: Ident("chr"), Args: []jsast.Expr{ch}}
}
