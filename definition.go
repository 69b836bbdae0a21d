// This file implements the top-level definition boundary spec.md §6
// names: compiling one module-qualified binding, and a Module helper
// that compiles a whole set of them while sharing a single Context (and
// therefore a single fresh-name counter, per §3's determinism contract).
package codegen

import (
	"github.com/elm-js/codegen/check"
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
)

// CompileDef compiles one top-level binding and returns the `var`
// declaration statement that defines it, mangled and module-qualified.
// A *ir.TailDef additionally gets the self-tail-call loop wrapping of
// §4.4; a *ir.Def compiles its Body the ordinary way, which already
// covers the arity-curry convention when Body is a *ir.Function.
func (c *Context) CompileDef(module, name string, def ir.Definition) (jsast.Stmt, error) {
	var code Code
	var err error

	switch d := def.(type) {
	case *ir.Def:
		code, err = c.Expr(d.Body)
	case *ir.TailDef:
		code, err = c.compileTailDef(name, d)
	default:
		return nil, icErrorf("codegen: unhandled ir.Definition type %T", def)
	}
	if err != nil {
		return nil, err
	}

	c.trace("compiled definition %s.%s", module, name)
	return c.mangler.DefineGlobal(module, name, code.ToExpr()), nil
}

// ModuleDef is one named binding passed to Module.
type ModuleDef struct {
	Module string
	Name   string
	Def    ir.Definition
}

// Module compiles an ordered set of top-level definitions with one
// shared Context, so fresh names stay globally unique across the whole
// module rather than resetting per definition (§3, §5: one counter,
// deterministic left-to-right traversal).
//
// Before returning, the assembled output is run through check.Verify, so
// an out-of-range curry helper surfaces as a detected structural
// violation rather than as JavaScript that merely fails to run, per §7's
// "producing wrong code is a worse failure mode than aborting". Every
// definition is a `var` statement whose labels sit inside its
// initializer expression, which check.VerifyLabels does not enter, so
// label/break balance inside definitions is not verified here.
func (c *Context) Module(defs []ModuleDef) ([]jsast.Stmt, error) {
	out := make([]jsast.Stmt, len(defs))
	for i, d := range defs {
		stmt, err := c.CompileDef(d.Module, d.Name, d.Def)
		if err != nil {
			return nil, err
		}
		out[i] = stmt
	}
	if err := check.Verify(&jsast.Program{Statements: out}); err != nil {
		return nil, &ICError{cause: err}
	}
	return out, nil
}
