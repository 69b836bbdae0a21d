package literal

import "github.com/elm-js/codegen/jsast"

// encodeBool renders a boolean literal.
func encodeBool(v bool) jsast.Expr {
	return &jsast.Bool{Value: v}
}
