package codegen

import (
	"testing"

	"github.com/elm-js/codegen/ir"
)

func TestExprVarLocalMangles(t *testing.T) {
	c := New(Options{})
	code, err := c.Expr(&ir.VarLocal{Name: "delete"})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "delete_" {
		t.Errorf("Expr(VarLocal) = %q, want %q", got, "delete_")
	}
}

func TestExprVarGlobalQualifies(t *testing.T) {
	c := New(Options{})
	code, err := c.Expr(&ir.VarGlobal{Module: "List", Name: "map"})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "List$map" {
		t.Errorf("Expr(VarGlobal) = %q, want %q", got, "List$map")
	}
}

func TestExprLiteral(t *testing.T) {
	c := New(Options{})
	code, err := c.Expr(&ir.Literal{Value: ir.Lit{Kind: ir.LitInt, IntValue: 7}})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "7" {
		t.Errorf("Expr(Literal) = %q, want %q", got, "7")
	}
}

func TestExprAccess(t *testing.T) {
	c := New(Options{})
	code, err := c.Expr(&ir.Access{Record: &ir.VarLocal{Name: "r"}, Field: "x"})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "r.x" {
		t.Errorf("Expr(Access) = %q, want %q", got, "r.x")
	}
}

func TestExprCtorAccess(t *testing.T) {
	c := New(Options{})
	code, err := c.Expr(&ir.CtorAccess{Expr: &ir.VarLocal{Name: "v"}, Index: 2})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "v._2" {
		t.Errorf("Expr(CtorAccess) = %q, want %q", got, "v._2")
	}
}

func TestExprListBuildsRuntimeList(t *testing.T) {
	c := New(Options{})
	code, err := c.Expr(&ir.List{Elems: []ir.Expr{
		&ir.Literal{Value: ir.Lit{Kind: ir.LitInt, IntValue: 1}},
		&ir.Literal{Value: ir.Lit{Kind: ir.LitInt, IntValue: 2}},
	}})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := code.ToExpr().String(); got != "list([1, 2])" {
		t.Errorf("Expr(List) = %q, want %q", got, "list([1, 2])")
	}
}

func TestICErrorWrapsAndUnwraps(t *testing.T) {
	err := icErrorf("boom %d", 1)
	ic, ok := err.(*ICError)
	if !ok {
		t.Fatalf("icErrorf() returned %T, want *ICError", err)
	}
	if ic.Error() != "boom 1" {
		t.Errorf("Error() = %q, want %q", ic.Error(), "boom 1")
	}
	if ic.Unwrap() == nil {
		t.Error("Unwrap() = nil, want the wrapped cause")
	}
}
