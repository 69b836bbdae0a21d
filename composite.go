// This file implements the remaining simple §4.2 expression cases that
// don't warrant their own file: record literals and updates, let
// bindings, constructor application, and crash emission.
package codegen

import (
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/runtime"
)

// compileRecord lowers a Record literal to an object literal.
func (c *Context) compileRecord(n *ir.Record) (Code, error) {
	props := make([]jsast.Prop, len(n.Fields))
	for i, f := range n.Fields {
		v, err := c.Expr(f.Value)
		if err != nil {
			return Code{}, err
		}
		props[i] = jsast.Prop{Key: c.mangler.Field(f.Name), Value: v.ToExpr()}
	}
	return Expr(&jsast.ObjectLit{Props: props}), nil
}

// compileUpdate lowers a functional record update via the runtime's
// recordUpdate helper, which shallow-copies Record and overwrites Fields.
func (c *Context) compileUpdate(n *ir.Update) (Code, error) {
	rec, err := c.Expr(n.Record)
	if err != nil {
		return Code{}, err
	}
	props := make([]jsast.Prop, len(n.Fields))
	for i, f := range n.Fields {
		v, err := c.Expr(f.Value)
		if err != nil {
			return Code{}, err
		}
		props[i] = jsast.Prop{Key: c.mangler.Field(f.Field), Value: v.ToExpr()}
	}
	return Expr(runtime.RecordUpdate(rec.ToExpr(), props)), nil
}

// compileLet lowers an ordered sequence of bindings followed by a body
// into a statement block: one `var` declaration per binding, in order,
// followed by the body's own statement form.
func (c *Context) compileLet(n *ir.Let) (Code, error) {
	stmts := make([]jsast.Stmt, 0, len(n.Defs)+1)
	for _, def := range n.Defs {
		v, err := c.Expr(def.Def)
		if err != nil {
			return Code{}, err
		}
		stmts = append(stmts, &jsast.VarDecl{Decls: []jsast.Declarator{
			{Name: c.mangler.Local(def.Name), Init: v.ToExpr()},
		}})
	}
	body, err := c.Expr(n.Body)
	if err != nil {
		return Code{}, err
	}
	stmts = append(stmts, body.ToStmts()...)
	return Block(stmts), nil
}

// compileCtor lowers a data-constructor application to an object literal
// tagged with a "$" discriminant field and positional "_0".."_N-1"
// members, the same convention the decision-tree emitter's constructor
// tests and CtorAccess rely on.
func (c *Context) compileCtor(n *ir.Ctor) (Code, error) {
	props := make([]jsast.Prop, 0, len(n.Members)+1)
	props = append(props, jsast.Prop{Key: "$", Value: &jsast.Str{Value: n.Tag}})
	for i, m := range n.Members {
		v, err := c.Expr(m)
		if err != nil {
			return Code{}, err
		}
		props = append(props, jsast.Prop{Key: positionField(i), Value: v.ToExpr()})
	}
	return Expr(&jsast.ObjectLit{Props: props}), nil
}

// compileCrash lowers a runtime error emission to the runtime's crash
// helper call. BranchProblem carries detail only for the non-exhaustive-
// pattern-match variant of a crash (§4.2).
func (c *Context) compileCrash(n *ir.Crash) (Code, error) {
	var branchProblem jsast.Expr
	if n.HasBranchProblem {
		branchProblem = &jsast.Str{Value: n.BranchProblem}
	}
	return Expr(runtime.Crash(n.Module, n.Region, branchProblem)), nil
}
