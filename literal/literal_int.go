package literal

import "github.com/elm-js/codegen/jsast"

// encodeInt renders an integer literal.
func encodeInt(v int64) jsast.Expr {
	return &jsast.Int{Value: v}
}
