// This file implements the top-level program wrapper (spec.md §4.9): a
// Program expression is either a static VDOM document with no runtime
// loop, or a live program initialized with (and optionally decoding)
// startup flags.
package codegen

import (
	"github.com/elm-js/codegen/foreign"
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/runtime"
)

// compileProgram lowers a Program node (§4.9).
func (c *Context) compileProgram(n *ir.Program) (Code, error) {
	body, err := c.Expr(n.Body)
	if err != nil {
		return Code{}, err
	}

	switch n.Kind {
	case ir.ProgramVDom:
		return Expr(runtime.StaticProgram(body.ToExpr())), nil

	case ir.ProgramNoFlags:
		return Expr(runtime.Program(body.ToExpr(), nil)), nil

	case ir.ProgramFlags:
		decoder, err := foreign.Decode(n.FlagType)
		if err != nil {
			return Code{}, err
		}
		return Expr(runtime.Program(body.ToExpr(), decoder)), nil

	default:
		return Code{}, icErrorf("codegen: unknown ir.ProgramKind %d", n.Kind)
	}
}
