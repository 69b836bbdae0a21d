package literal

import "github.com/elm-js/codegen/jsast"

// encodeString renders a string literal.
func encodeString(s string) jsast.Expr {
	return &jsast.Str{Value: s}
}
