package codegen

import (
	"testing"

	"github.com/elm-js/codegen/ir"
)

func TestCompileProgramVDom(t *testing.T) {
	c := New(Options{})
	code, err := c.compileProgram(&ir.Program{Kind: ir.ProgramVDom, Body: lit(1)})
	if err != nil {
		t.Fatalf("compileProgram() error = %v", err)
	}
	want := "staticProgram(1)"
	if got := code.ToExpr().String(); got != want {
		t.Errorf("compileProgram(VDom) = %q, want %q", got, want)
	}
}

func TestCompileProgramNoFlagsOmitsDecoderArg(t *testing.T) {
	c := New(Options{})
	code, err := c.compileProgram(&ir.Program{Kind: ir.ProgramNoFlags, Body: lit(1)})
	if err != nil {
		t.Fatalf("compileProgram() error = %v", err)
	}
	want := "programInit(1)"
	if got := code.ToExpr().String(); got != want {
		t.Errorf("compileProgram(NoFlags) = %q, want %q", got, want)
	}
}

func TestCompileProgramFlagsDecodesFlagType(t *testing.T) {
	c := New(Options{})
	code, err := c.compileProgram(&ir.Program{Kind: ir.ProgramFlags, FlagType: ir.PortType{Kind: ir.TString}, Body: lit(1)})
	if err != nil {
		t.Fatalf("compileProgram() error = %v", err)
	}
	want := "programInit(1, _Json.decodeString())"
	if got := code.ToExpr().String(); got != want {
		t.Errorf("compileProgram(Flags) = %q, want %q", got, want)
	}
}
