// This file implements binary-operator lowering (spec.md §4.6): the
// fixed Basics-module table, the `::` list-cons special case, and the
// default fallback to a plain A2(moduleRef, l, r) application for any
// operator module the fixed tables don't cover.
package codegen

import (
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/runtime"
)

// compileBinop lowers a Binop node (§4.6).
func (c *Context) compileBinop(n *ir.Binop) (Code, error) {
	l, err := c.Expr(n.LHS)
	if err != nil {
		return Code{}, err
	}
	r, err := c.Expr(n.RHS)
	if err != nil {
		return Code{}, err
	}
	lx, rx := l.ToExpr(), r.ToExpr()

	if n.Module == "List" && n.Op == "::" {
		return Expr(runtime.Cons(lx, rx)), nil
	}

	if n.Module == "Basics" {
		if op, ok := runtime.LookupBasics(n.Op); ok && !op.Fallthrough {
			return Expr(op.Lower(lx, rx)), nil
		}
	}

	return Expr(c.defaultBinopCall(n.Module, n.Op, lx, rx)), nil
}

// defaultBinopCall renders the fallback form for an operator with no
// fixed lowering: a plain 2-argument application of the operator's
// defining module-qualified global, the same convention a saturated
// Call to that global would use (§4.5).
func (c *Context) defaultBinopCall(module, op string, l, r jsast.Expr) jsast.Expr {
	fn := &jsast.Ident{Name: c.mangler.Global(module, op)}
	applied, err := runtime.Apply(2, fn, []jsast.Expr{l, r})
	if err != nil {
		// unreachable: 2 is always within [MinCurryArity, MaxCurryArity]
		panic(err)
	}
	return applied
}
