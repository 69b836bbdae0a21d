// Package foreign is the foreign encoder/decoder collaborator named in
// spec.md §6: given a port's type descriptor (ir.PortType), it produces
// the target expressions that serialize/deserialize values at the FFI
// boundary (spec.md §4.2's OutgoingPort/IncomingPort cases).
//
// It is grounded on the same idea as the teacher's reflection package —
// recursively walking a typed description of a value to produce a
// handler per shape — but reflection walked a live Go value at runtime
// to read field contents, whereas this package walks a static type
// descriptor at compile time to produce code. The recursive,
// kind-dispatched structure (a switch over the descriptor's Kind, one
// case per shape, recursing into Elem/Elems/Fields) is the part carried
// over.
package foreign

import (
	"github.com/pkg/errors"

	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
)

// jsonHelper is the shared runtime namespace the generated encode/decode
// expressions call into (`_Json.encodeInt`, `_Json.decodeList`, ...). The
// real runtime owns this object; this package only needs to know its
// name and the leaf/combinator method names it exposes.
var jsonHelper = &jsast.Ident{Name: "_Json"}

func jsonCall(method string, args ...jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{
		Func: &jsast.Member{Object: jsonHelper, Prop: method},
		Args: args,
	}
}

// Encode renders the encoder expression for values flowing out through an
// OutgoingPort of the given type.
func Encode(t ir.PortType) (jsast.Expr, error) {
	switch t.Kind {
	case ir.TInt:
		return jsonCall("encodeInt"), nil
	case ir.TFloat:
		return jsonCall("encodeFloat"), nil
	case ir.TBool:
		return jsonCall("encodeBool"), nil
	case ir.TString:
		return jsonCall("encodeString"), nil
	case ir.TList:
		inner, err := encodeElem(t)
		if err != nil {
			return nil, err
		}
		return jsonCall("encodeList", inner), nil
	case ir.TMaybe:
		inner, err := encodeElem(t)
		if err != nil {
			return nil, err
		}
		return jsonCall("encodeMaybe", inner), nil
	case ir.TTuple:
		elems, err := encodeEach(t.Elems)
		if err != nil {
			return nil, err
		}
		return jsonCall("encodeTuple", &jsast.ArrayLit{Elems: elems}), nil
	case ir.TRecord:
		fields, err := encodeFields(t.Fields)
		if err != nil {
			return nil, err
		}
		return jsonCall("encodeObject", &jsast.ObjectLit{Props: fields}), nil
	case ir.TCustom:
		return jsonCall("encodeCustom", &jsast.Str{Value: t.CustomName}), nil
	default:
		return nil, errors.Errorf("foreign: unknown port type kind %d", t.Kind)
	}
}

// Decode renders the decoder expression for values flowing in through an
// IncomingPort of the given type.
func Decode(t ir.PortType) (jsast.Expr, error) {
	switch t.Kind {
	case ir.TInt:
		return jsonCall("decodeInt"), nil
	case ir.TFloat:
		return jsonCall("decodeFloat"), nil
	case ir.TBool:
		return jsonCall("decodeBool"), nil
	case ir.TString:
		return jsonCall("decodeString"), nil
	case ir.TList:
		inner, err := decodeElem(t)
		if err != nil {
			return nil, err
		}
		return jsonCall("decodeList", inner), nil
	case ir.TMaybe:
		inner, err := decodeElem(t)
		if err != nil {
			return nil, err
		}
		return jsonCall("decodeMaybe", inner), nil
	case ir.TTuple:
		elems, err := decodeEach(t.Elems)
		if err != nil {
			return nil, err
		}
		return jsonCall("decodeTuple", &jsast.ArrayLit{Elems: elems}), nil
	case ir.TRecord:
		fields, err := decodeFields(t.Fields)
		if err != nil {
			return nil, err
		}
		return jsonCall("decodeObject", &jsast.ObjectLit{Props: fields}), nil
	case ir.TCustom:
		return jsonCall("decodeCustom", &jsast.Str{Value: t.CustomName}), nil
	default:
		return nil, errors.Errorf("foreign: unknown port type kind %d", t.Kind)
	}
}

func encodeElem(t ir.PortType) (jsast.Expr, error) {
	if t.Elem == nil {
		return nil, errors.Errorf("foreign: %v has no element type", t.Kind)
	}
	return Encode(*t.Elem)
}

func decodeElem(t ir.PortType) (jsast.Expr, error) {
	if t.Elem == nil {
		return nil, errors.Errorf("foreign: %v has no element type", t.Kind)
	}
	return Decode(*t.Elem)
}

func encodeEach(elems []ir.PortType) ([]jsast.Expr, error) {
	out := make([]jsast.Expr, len(elems))
	for i, e := range elems {
		enc, err := Encode(e)
		if err != nil {
			return nil, err
		}
		out[i] = enc
	}
	return out, nil
}

func decodeEach(elems []ir.PortType) ([]jsast.Expr, error) {
	out := make([]jsast.Expr, len(elems))
	for i, e := range elems {
		dec, err := Decode(e)
		if err != nil {
			return nil, err
		}
		out[i] = dec
	}
	return out, nil
}

func encodeFields(fields []ir.PortTypeField) ([]jsast.Prop, error) {
	out := make([]jsast.Prop, len(fields))
	for i, f := range fields {
		enc, err := Encode(f.Type)
		if err != nil {
			return nil, err
		}
		out[i] = jsast.Prop{Key: f.Name, Value: enc}
	}
	return out, nil
}

func decodeFields(fields []ir.PortTypeField) ([]jsast.Prop, error) {
	out := make([]jsast.Prop, len(fields))
	for i, f := range fields {
		dec, err := Decode(f.Type)
		if err != nil {
			return nil, err
		}
		out[i] = jsast.Prop{Key: f.Name, Value: dec}
	}
	return out, nil
}
