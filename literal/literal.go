// Package literal is the literal encoder collaborator named in spec.md
// §6: it maps source literals (int/float/bool/char/string) to target
// expressions. It is modeled directly on the teacher's object package,
// which used one small file per wrapped value type (object_int.go,
// object_float.go, object_bool.go, object_string.go) each implementing a
// shared interface; here each file holds one unexported encoder function
// that renders a jsast.Expr, and Encode dispatches to them by kind.
package literal

import (
	"github.com/pkg/errors"

	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
)

// Encode renders an ir.Lit as the jsast.Expr the generator should splice
// in at the literal's use site.
//
// Characters (ir.LitChar) are encoded as single-character strings: §4.8
// relies on this to make `.valueOf()` work for constructor/character
// tests, and this function is the single place that decision is made.
func Encode(lit ir.Lit) (jsast.Expr, error) {
	switch lit.Kind {
	case ir.LitInt:
		return encodeInt(lit.IntValue), nil
	case ir.LitFloat:
		return encodeFloat(lit.FloatValue), nil
	case ir.LitBool:
		return encodeBool(lit.BoolValue), nil
	case ir.LitChar:
		return encodeChar(lit.CharValue), nil
	case ir.LitString:
		return encodeString(lit.StringValue), nil
	default:
		return nil, errors.Errorf("literal: unknown literal kind %d", lit.Kind)
	}
}
