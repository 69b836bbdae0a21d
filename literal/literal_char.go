package literal

import (
	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/runtime"
)

// encodeChar renders a character literal as a boxed single-character
// string (see the design note "Strict equality and characters").
func encodeChar(ch rune) jsast.Expr {
	return runtime.CharWrap(&jsast.Str{Value: string(ch)})
}
