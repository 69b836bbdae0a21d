// This file implements function lowering (spec.md §4.3) and self-tail-
// call compilation (spec.md §4.4): the arity-curry convention that
// reconciles curried source semantics with JavaScript's n-ary call
// convention, and the labeled while(true) loop a TailDef compiles into.
package codegen

import (
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/runtime"
)

// compileFunction lowers a curried lambda via the arity-curry convention
// (§4.3): arity 1 is a bare function literal; 2..9 is wrapped in Fn;
// arity above 9 right-associates into nested single-argument closures.
func (c *Context) compileFunction(n *ir.Function) (Code, error) {
	if len(n.Args) == 0 {
		return Code{}, icErrorf("codegen: Function has zero arguments; the arity-curry lowering requires at least one")
	}

	body, err := c.Expr(n.Body)
	if err != nil {
		return Code{}, err
	}
	return c.wrapArityCurry(n.Args, body.ToStmts())
}

// wrapArityCurry applies the §4.3 arity-curry convention to an
// already-compiled function body.
func (c *Context) wrapArityCurry(args []string, bodyStmts []jsast.Stmt) (Code, error) {
	if len(args) > runtime.MaxCurryArity {
		return Expr(c.curryOverflow(args, bodyStmts)), nil
	}

	params := c.localParams(args)
	fn := &jsast.FuncLit{Params: params, Body: bodyStmts}

	if len(args) == 1 {
		return Expr(fn), nil
	}

	tagged, err := runtime.FuncTag(len(args), fn)
	if err != nil {
		return Code{}, err
	}
	return Expr(tagged), nil
}

// curryOverflow right-associates a chain of nested single-argument
// function literals for arities above the Fn family's cap (§4.3: "If
// arity > 9: emit a chain of nested single-argument native functions,
// right-associated (innermost function holds the body)").
func (c *Context) curryOverflow(args []string, bodyStmts []jsast.Stmt) jsast.Expr {
	params := c.localParams(args)
	var inner jsast.Expr = &jsast.FuncLit{Params: []string{params[len(params)-1]}, Body: bodyStmts}
	for i := len(params) - 2; i >= 0; i-- {
		inner = &jsast.FuncLit{
			Params: []string{params[i]},
			Body:   []jsast.Stmt{&jsast.ReturnStmt{Value: inner}},
		}
	}
	return inner
}

func (c *Context) localParams(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = c.mangler.Local(n)
	}
	return out
}

// tailLoop tracks the enclosing TailDef's identity while compiling its
// body, so a nested TailCall can validate it targets the innermost loop
// and knows its formal-parameter names.
type tailLoop struct {
	name     string
	argNames []string
}

// compileTailDef lowers a self-tail-recursive definition (§4.4): compile
// the body with this TailDef pushed as the active loop, wrap the result
// in `label <name>: while (true) { <body> }`, then apply the normal
// arity-curry lowering to that wrapped body.
func (c *Context) compileTailDef(name string, def *ir.TailDef) (Code, error) {
	if len(def.Args) == 0 {
		return Code{}, icErrorf("codegen: TailDef %q has zero arguments", name)
	}

	prev := c.activeTailLoop
	c.activeTailLoop = &tailLoop{name: name, argNames: def.Args}
	defer func() { c.activeTailLoop = prev }()

	body, err := c.Expr(def.Body)
	if err != nil {
		return Code{}, err
	}

	labeled := &jsast.Labeled{
		Label: name,
		Body:  &jsast.While{Cond: &jsast.Bool{Value: true}, Body: body.ToStmts()},
	}

	return c.wrapArityCurry(def.Args, []jsast.Stmt{labeled})
}

// compileTailCall lowers a self-recursive call in tail position (§4.4):
// evaluate every argument, stash each in a fresh temporary (avoiding
// aliasing when reassigning formal parameters that later arguments might
// still read), reassign the formals in order, then `continue` the
// enclosing loop's label.
func (c *Context) compileTailCall(n *ir.TailCall) (Code, error) {
	loop := c.activeTailLoop
	if loop == nil || loop.name != n.Name {
		return Code{}, icErrorf("codegen: TailCall %q outside its own TailDef's loop body", n.Name)
	}
	if len(n.Args) != len(n.ArgNames) || len(n.ArgNames) != len(loop.argNames) {
		return Code{}, icErrorf("codegen: TailCall %q argument count mismatch with enclosing TailDef", n.Name)
	}

	argExprs, err := c.exprList(n.Args)
	if err != nil {
		return Code{}, err
	}

	temps := make([]string, len(argExprs))
	decls := make([]jsast.Declarator, len(argExprs))
	for i, e := range argExprs {
		temps[i] = c.mangler.Fresh()
		decls[i] = jsast.Declarator{Name: temps[i], Init: e}
	}

	stmts := make([]jsast.Stmt, 0, len(decls)+len(n.ArgNames)+1)
	stmts = append(stmts, &jsast.VarDecl{Decls: decls})
	for i, formal := range n.ArgNames {
		stmts = append(stmts, &jsast.ExprStmt{Expr: &jsast.Assign{
			Target: &jsast.Ident{Name: c.mangler.Local(formal)},
			Value:  &jsast.Ident{Name: temps[i]},
		}})
	}
	stmts = append(stmts, &jsast.Continue{Label: n.Name})

	return Block(stmts), nil
}
