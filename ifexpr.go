// This file implements the if/else crusher (spec.md §4.7): a guarded
// If with N branches plus a mandatory else flattens into N nested
// `if (cond) { ... } else if (cond) { ... } else { ... }` statements,
// or a single ternary when every branch and the else compile to a bare
// expression and none needs statement form.
package codegen

import (
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
)

// compileIf lowers an If node (§4.7).
func (c *Context) compileIf(n *ir.If) (Code, error) {
	// Crush: an If in the else position merges into this branch list, and
	// the first branch whose condition is literal true ends the list and
	// becomes the else.
	irBranches, irElse := append([]ir.Branch(nil), n.Branches...), n.Else
	for nested, ok := irElse.(*ir.If); ok; nested, ok = irElse.(*ir.If) {
		irBranches, irElse = append(irBranches, nested.Branches...), nested.Else
	}
	for i, b := range irBranches {
		if l, ok := b.Cond.(*ir.Literal); ok && l.Value.Kind == ir.LitBool && l.Value.BoolValue {
			irBranches, irElse = irBranches[:i], b.Expr
			break
		}
	}

	branches := make([]compiledBranch, len(irBranches))
	allExprs := true
	for i, b := range irBranches {
		cond, err := c.Expr(b.Cond)
		if err != nil {
			return Code{}, err
		}
		body, err := c.Expr(b.Expr)
		if err != nil {
			return Code{}, err
		}
		branches[i] = compiledBranch{cond: cond.ToExpr(), body: body}
		if body.IsBlock() {
			allExprs = false
		}
	}
	elseBody, err := c.Expr(irElse)
	if err != nil {
		return Code{}, err
	}
	if elseBody.IsBlock() {
		allExprs = false
	}

	if allExprs {
		return Expr(crushTernary(branches, elseBody.ToExpr())), nil
	}
	return Block([]jsast.Stmt{crushIfChain(branches, elseBody)}), nil
}

type compiledBranch struct {
	cond jsast.Expr
	body Code
}

// crushTernary builds the nested-ternary form `c0 ? e0 : (c1 ? e1 : ...)`,
// used only when every branch is already a bare expression (§8 invariant
// 7: avoid unnecessary statement-form wraps).
func crushTernary(branches []compiledBranch, elseExpr jsast.Expr) jsast.Expr {
	if len(branches) == 0 {
		return elseExpr
	}
	last := branches[len(branches)-1]
	acc := &jsast.Cond{Test: last.cond, Cons: last.body.ToExpr(), Alt: elseExpr}
	for i := len(branches) - 2; i >= 0; i-- {
		b := branches[i]
		acc = &jsast.Cond{Test: b.cond, Cons: b.body.ToExpr(), Alt: acc}
	}
	return acc
}

// crushIfChain builds the nested if/else-if/else statement form, used
// when any branch or the else needs statement form.
func crushIfChain(branches []compiledBranch, elseBody Code) *jsast.If {
	if len(branches) == 0 {
		// compileIf gets here when no branch is left (the If had none, or
		// its first condition was literal true) and the else needs
		// statement form: render the else block under `if (true)`.
		return &jsast.If{Cond: &jsast.Bool{Value: true}, Then: elseBody.ToStmts()}
	}
	first := branches[0]
	node := &jsast.If{Cond: first.cond, Then: first.body.ToStmts()}
	tail := node
	for _, b := range branches[1:] {
		next := &jsast.If{Cond: b.cond, Then: b.body.ToStmts()}
		tail.Else = []jsast.Stmt{next}
		tail = next
	}
	tail.Else = elseBody.ToStmts()
	return node
}
