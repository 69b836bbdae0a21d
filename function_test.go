package codegen

import (
	"testing"

	"github.com/elm-js/codegen/ir"
)

func TestCompileFunctionArityOneIsBare(t *testing.T) {
	c := New(Options{})
	code, err := c.compileFunction(&ir.Function{Args: []string{"x"}, Body: &ir.VarLocal{Name: "x"}})
	if err != nil {
		t.Fatalf("compileFunction() error = %v", err)
	}
	want := "function (x){return x;}"
	if got := code.ToExpr().String(); got != want {
		t.Errorf("compileFunction() = %q, want %q", got, want)
	}
}

func TestCompileFunctionArityTwoWrapsInF2(t *testing.T) {
	c := New(Options{})
	code, err := c.compileFunction(&ir.Function{Args: []string{"a", "b"}, Body: &ir.VarLocal{Name: "a"}})
	if err != nil {
		t.Fatalf("compileFunction() error = %v", err)
	}
	want := "F2(function (a,b){return a;})"
	if got := code.ToExpr().String(); got != want {
		t.Errorf("compileFunction() = %q, want %q", got, want)
	}
}

func TestCompileFunctionAboveMaxArityRightAssociates(t *testing.T) {
	c := New(Options{})
	args := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} // arity 10
	code, err := c.compileFunction(&ir.Function{Args: args, Body: &ir.VarLocal{Name: "a"}})
	if err != nil {
		t.Fatalf("compileFunction() error = %v", err)
	}
	got := code.ToExpr().String()
	want := "function (a){return function (b){return function (c){return function (d){return function (e){" +
		"return function (f){return function (g){return function (h){return function (i){" +
		"return function (j){return a;};};};};};};};};};}"
	if got != want {
		t.Errorf("compileFunction() above max arity = %q, want %q", got, want)
	}
}

func TestCompileFunctionRejectsZeroArity(t *testing.T) {
	c := New(Options{})
	if _, err := c.compileFunction(&ir.Function{Args: nil, Body: &ir.VarLocal{Name: "x"}}); err == nil {
		t.Error("compileFunction() with zero args: want error, got nil")
	}
}

func TestCompileTailCallOutsideLoopIsError(t *testing.T) {
	c := New(Options{})
	_, err := c.compileTailCall(&ir.TailCall{Name: "loop", ArgNames: []string{"x"}, Args: []ir.Expr{&ir.VarLocal{Name: "x"}}})
	if err == nil {
		t.Error("compileTailCall() outside a TailDef: want error, got nil")
	}
}

func TestCompileTailDefBuildsLabeledLoop(t *testing.T) {
	c := New(Options{})
	def := &ir.TailDef{
		Args: []string{"n", "acc"},
		Body: &ir.If{
			Branches: []ir.Branch{{
				Cond: &ir.VarLocal{Name: "n"},
				Expr: &ir.TailCall{
					Name:     "loop",
					ArgNames: []string{"n", "acc"},
					Args:     []ir.Expr{&ir.VarLocal{Name: "n"}, &ir.VarLocal{Name: "acc"}},
				},
			}},
			Else: &ir.VarLocal{Name: "acc"},
		},
	}
	code, err := c.compileTailDef("loop", def)
	if err != nil {
		t.Fatalf("compileTailDef() error = %v", err)
	}
	got := code.ToExpr().String()
	if !containsAll(got, "F2(", "loop:", "while (true)", "continue loop;") {
		t.Errorf("compileTailDef() = %q, missing expected loop structure", got)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !stringsContains(s, sub) {
			return false
		}
	}
	return true
}

func stringsContains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
