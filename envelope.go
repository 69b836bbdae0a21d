// This file implements the Code envelope (spec.md §4.1): the two-shape
// sum type that lets every compile routine return either "I am already
// an expression" or "I need statements", deferring the decision of how
// to reconcile the two to whichever caller actually needs one or the
// other.
package codegen

import "github.com/elm-js/codegen/jsast"

// Code is either a single expression or a block of statements. Compile
// routines return whichever shape they produced without forcing a
// coercion; the three ToX methods below perform the coercion only when
// a containing context actually requires it, which is what keeps
// unnecessary IIFE wraps out of the output (spec.md §8 invariant 7, and
// the design note "unnecessary IIFE wraps degrade output quality").
type Code struct {
	expr  jsast.Expr
	block []jsast.Stmt
}

// Expr wraps a Code around a bare expression.
func Expr(e jsast.Expr) Code {
	return Code{expr: e}
}

// Block wraps a Code around a statement list.
func Block(stmts []jsast.Stmt) Code {
	return Code{block: stmts}
}

// IsBlock reports whether this Code holds a statement block rather than
// a bare expression.
func (c Code) IsBlock() bool {
	return c.block != nil
}

// ToStmts coerces to a statement list: Expr(e) becomes `return e;`;
// Block(s) is returned unchanged.
func (c Code) ToStmts() []jsast.Stmt {
	if c.IsBlock() {
		return c.block
	}
	return []jsast.Stmt{&jsast.ReturnStmt{Value: c.expr}}
}

// ToStmt coerces to a single statement: Expr(e) becomes `return e;`;
// Block([s]) becomes that single statement; any other Block becomes a
// brace-delimited block statement.
func (c Code) ToStmt() jsast.Stmt {
	if !c.IsBlock() {
		return &jsast.ReturnStmt{Value: c.expr}
	}
	if len(c.block) == 1 {
		return c.block[0]
	}
	return &jsast.Block{Body: c.block}
}

// ToExpr coerces to a single expression: Expr(e) is returned unchanged;
// Block(s) becomes an IIFE, `(function(){ s })()`. Callers should prefer
// producing Block only when a containing statement context accepts it,
// precisely to avoid reaching this branch.
func (c Code) ToExpr() jsast.Expr {
	if !c.IsBlock() {
		return c.expr
	}
	return &jsast.IIFE{Body: c.block}
}
