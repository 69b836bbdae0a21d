package codegen

import (
	"testing"

	"github.com/elm-js/codegen/ir"
)

func TestCompileCallArityOneIsBareCall(t *testing.T) {
	c := New(Options{})
	code, err := c.compileCall(&ir.Call{Func: &ir.VarLocal{Name: "f"}, Args: []ir.Expr{lit(1)}})
	if err != nil {
		t.Fatalf("compileCall() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "f(1)" {
		t.Errorf("compileCall() = %q, want %q", got, "f(1)")
	}
}

func TestCompileCallArityInRangeUsesAn(t *testing.T) {
	c := New(Options{})
	code, err := c.compileCall(&ir.Call{Func: &ir.VarLocal{Name: "f"}, Args: []ir.Expr{lit(1), lit(2), lit(3)}})
	if err != nil {
		t.Fatalf("compileCall() error = %v", err)
	}
	want := "A3(f, 1, 2, 3)"
	if got := code.ToExpr().String(); got != want {
		t.Errorf("compileCall() = %q, want %q", got, want)
	}
}

func TestCompileCallAboveMaxArityFoldsA1(t *testing.T) {
	c := New(Options{})
	args := make([]ir.Expr, 10)
	for i := range args {
		args[i] = lit(int64(i))
	}
	code, err := c.compileCall(&ir.Call{Func: &ir.VarLocal{Name: "f"}, Args: args})
	if err != nil {
		t.Fatalf("compileCall() error = %v", err)
	}
	got := code.ToExpr().String()

	// Build the expected left-associated A1(...A1(A1(f, 0), 1)..., 9)
	// chain the same way the implementation does, rather than hand-typing
	// ten levels of nested parens.
	want := "f"
	for i := 0; i < 10; i++ {
		want = "A1(" + want + ", " + itoaTest(i) + ")"
	}
	if got != want {
		t.Errorf("compileCall() above max arity = %q, want %q", got, want)
	}
}

func itoaTest(n int) string {
	if n == 0 {
		return "0"
	}
	return string([]byte{byte('0' + n)})
}

func TestCompileCallSpecialCasesBitwiseAnd(t *testing.T) {
	c := New(Options{})
	code, err := c.compileCall(&ir.Call{
		Func: &ir.VarGlobal{Module: "Bitwise", Name: "and"},
		Args: []ir.Expr{lit(1), lit(2)},
	})
	if err != nil {
		t.Fatalf("compileCall() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "1 & 2" {
		t.Errorf("compileCall(Bitwise.and) = %q, want %q", got, "1 & 2")
	}
}

func TestCompileCallSpecialCasesSwapArguments(t *testing.T) {
	c := New(Options{})
	// Bitwise.shiftLeftBy n x: the source puts the shift amount first,
	// but JS's `<<` operator puts the operand first (§4.5 Swap).
	code, err := c.compileCall(&ir.Call{
		Func: &ir.VarGlobal{Module: "Bitwise", Name: "shiftLeftBy"},
		Args: []ir.Expr{lit(1), lit(8)},
	})
	if err != nil {
		t.Fatalf("compileCall() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "8 << 1" {
		t.Errorf("compileCall(Bitwise.shiftLeftBy) = %q, want %q", got, "8 << 1")
	}
}

func TestCompileCallSpecialCasesUnaryNot(t *testing.T) {
	c := New(Options{})
	code, err := c.compileCall(&ir.Call{
		Func: &ir.VarGlobal{Module: "Basics", Name: "not"},
		Args: []ir.Expr{lit(1)},
	})
	if err != nil {
		t.Fatalf("compileCall() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "!1" {
		t.Errorf("compileCall(Basics.not) = %q, want %q", got, "!1")
	}
}

func TestCompileCallRejectsZeroArguments(t *testing.T) {
	c := New(Options{})
	if _, err := c.compileCall(&ir.Call{Func: &ir.VarLocal{Name: "f"}, Args: nil}); err == nil {
		t.Error("compileCall() with zero args: want error, got nil")
	}
}
