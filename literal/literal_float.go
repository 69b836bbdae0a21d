package literal

import "github.com/elm-js/codegen/jsast"

// encodeFloat renders a floating-point literal.
func encodeFloat(v float64) jsast.Expr {
	return &jsast.Float{Value: v}
}
