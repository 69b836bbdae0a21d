// This file implements call lowering (spec.md §4.5): the special-cased
// Bitwise/Basics global calls, the An application-helper convention for
// 2..9 arguments, the bare native call for arity 1, and the left-folded
// single-argument chain for arities above 9.
package codegen

import (
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/runtime"
)

// compileCall lowers a saturated application (§4.5).
func (c *Context) compileCall(n *ir.Call) (Code, error) {
	if g, ok := n.Func.(*ir.VarGlobal); ok {
		if special, err := c.trySpecialCall(g, n.Args); err != nil {
			return Code{}, err
		} else if special != nil {
			return Expr(special), nil
		}
	}

	fnCode, err := c.Expr(n.Func)
	if err != nil {
		return Code{}, err
	}
	fn := fnCode.ToExpr()

	args, err := c.exprList(n.Args)
	if err != nil {
		return Code{}, err
	}

	switch {
	case len(args) == 1:
		return Expr(&jsast.CallExpr{Func: fn, Args: args}), nil

	case len(args) >= runtime.MinCurryArity && len(args) <= runtime.MaxCurryArity:
		applied, err := runtime.Apply(len(args), fn, args)
		if err != nil {
			return Code{}, err
		}
		return Expr(applied), nil

	case len(args) > runtime.MaxCurryArity:
		return Expr(foldA1(fn, args)), nil

	default:
		return Code{}, icErrorf("codegen: Call with zero arguments")
	}
}

// trySpecialCall matches the §4.5 special-case tables for known
// Bitwise/Basics globals. It returns a nil expression (and nil error)
// when no special case applies, so the caller falls through to the
// general An/native-call lowering.
func (c *Context) trySpecialCall(g *ir.VarGlobal, args []ir.Expr) (jsast.Expr, error) {
	switch len(args) {
	case 1:
		op, ok := runtime.LookupUnary(g.Module, g.Name)
		if !ok {
			return nil, nil
		}
		x, err := c.Expr(args[0])
		if err != nil {
			return nil, err
		}
		return op.Lower(x.ToExpr()), nil

	case 2:
		op, ok := runtime.LookupBinaryCall(g.Module, g.Name)
		if !ok {
			return nil, nil
		}
		a, err := c.Expr(args[0])
		if err != nil {
			return nil, err
		}
		b, err := c.Expr(args[1])
		if err != nil {
			return nil, err
		}
		if op.Swap {
			return op.Lower(b.ToExpr(), a.ToExpr()), nil
		}
		return op.Lower(a.ToExpr(), b.ToExpr()), nil

	default:
		return nil, nil
	}
}

// foldA1 left-associates a chain of single-argument native calls for
// arities above the An family's cap (§4.5: "If n > 9: left-associate as
// A1(...A1(A1(func, a1), a2)..., an)").
func foldA1(fn jsast.Expr, args []jsast.Expr) jsast.Expr {
	acc := &jsast.CallExpr{Func: runtime.Ident("A1"), Args: []jsast.Expr{fn, args[0]}}
	for _, a := range args[1:] {
		acc = &jsast.CallExpr{Func: runtime.Ident("A1"), Args: []jsast.Expr{acc, a}}
	}
	return acc
}
