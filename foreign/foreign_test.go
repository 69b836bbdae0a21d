package foreign

import (
	"testing"

	"github.com/elm-js/codegen/ir"
)

func TestEncodeScalarKinds(t *testing.T) {
	tests := []struct {
		kind ir.PortTypeKind
		want string
	}{
		{ir.TInt, "_Json.encodeInt()"},
		{ir.TFloat, "_Json.encodeFloat()"},
		{ir.TBool, "_Json.encodeBool()"},
		{ir.TString, "_Json.encodeString()"},
	}
	for _, tt := range tests {
		got, err := Encode(ir.PortType{Kind: tt.kind})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if got.String() != tt.want {
			t.Errorf("Encode(%d) = %q, want %q", tt.kind, got.String(), tt.want)
		}
	}
}

func TestEncodeRecordWalksFields(t *testing.T) {
	typ := ir.PortType{Kind: ir.TRecord, Fields: []ir.PortTypeField{
		{Name: "x", Type: ir.PortType{Kind: ir.TInt}},
	}}
	got, err := Encode(typ)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `_Json.encodeObject({x: _Json.encodeInt()})`
	if got.String() != want {
		t.Errorf("Encode(record) = %q, want %q", got.String(), want)
	}
}

func TestDecodeTupleWalksElems(t *testing.T) {
	typ := ir.PortType{Kind: ir.TTuple, Elems: []ir.PortType{
		{Kind: ir.TInt}, {Kind: ir.TString},
	}}
	got, err := Decode(typ)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := `_Json.decodeTuple([_Json.decodeInt(), _Json.decodeString()])`
	if got.String() != want {
		t.Errorf("Decode(tuple) = %q, want %q", got.String(), want)
	}
}

func TestEncodeListWithoutElemIsError(t *testing.T) {
	_, err := Encode(ir.PortType{Kind: ir.TList})
	if err == nil {
		t.Error("Encode(TList with nil Elem): want error, got nil")
	}
}

func TestEncodeCustomNamesTheType(t *testing.T) {
	got, err := Encode(ir.PortType{Kind: ir.TCustom, CustomName: "Color"})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `_Json.encodeCustom("Color")`
	if got.String() != want {
		t.Errorf("Encode(custom) = %q, want %q", got.String(), want)
	}
}
