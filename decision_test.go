package codegen

import (
	"testing"

	"github.com/elm-js/codegen/ir"
)

func TestCompileCaseChainBranchesToLeaves(t *testing.T) {
	c := New(Options{})
	code, err := c.compileCase(&ir.Case{
		ScrutineeName: "x",
		Decider: &ir.Chain{
			Tests: []ir.PathTest{{
				Path: ir.Empty(),
				Test: ir.Test{Kind: ir.TestLiteral, Literal: ir.Lit{Kind: ir.LitInt, IntValue: 1}},
			}},
			Success: &ir.Leaf{Kind: ir.LeafInline, Inline: lit(100)},
			Failure: &ir.Leaf{Kind: ir.LeafInline, Inline: lit(200)},
		},
	})
	if err != nil {
		t.Fatalf("compileCase() error = %v", err)
	}
	got := code.ToExpr().String()
	for _, want := range []string{"x === 1", "100", "200", "do {", "while (false)"} {
		if !stringsContains(got, want) {
			t.Errorf("compileCase() = %q, missing %q", got, want)
		}
	}
}

func TestCompileCaseFanOutSwitchesOnConstructorTag(t *testing.T) {
	c := New(Options{})
	decider := &ir.FanOut{
		Path: ir.Empty(),
		Edges: []ir.Edge{
			{Test: ir.Test{Kind: ir.TestConstructor, Tag: "Just"}, Subtree: &ir.Leaf{Kind: ir.LeafJump, Target: 0}},
			{Test: ir.Test{Kind: ir.TestConstructor, Tag: "Nothing"}, Subtree: &ir.Leaf{Kind: ir.LeafJump, Target: 1}},
		},
		Fallback: &ir.Leaf{Kind: ir.LeafInline, Inline: lit(-1)},
	}
	code, err := c.compileCase(&ir.Case{
		ScrutineeName: "x",
		Decider:       decider,
		Jumps: []ir.Jump{
			{Target: 0, Expr: lit(1)},
			{Target: 1, Expr: lit(2)},
		},
	})
	if err != nil {
		t.Fatalf("compileCase() error = %v", err)
	}
	got := code.ToExpr().String()
	for _, want := range []string{`switch (x.$)`, `case "Just"`, `case "Nothing"`, "default:"} {
		if !stringsContains(got, want) {
			t.Errorf("compileCase() = %q, missing %q", got, want)
		}
	}
}

func TestCompileCasePositionPathAddressesCtorMember(t *testing.T) {
	c := New(Options{})
	code, err := c.compileCase(&ir.Case{
		ScrutineeName: "x",
		Decider: &ir.Chain{
			Tests: []ir.PathTest{{
				Path: ir.Position(0, ir.Empty()),
				Test: ir.Test{Kind: ir.TestLiteral, Literal: ir.Lit{Kind: ir.LitInt, IntValue: 1}},
			}},
			Success: &ir.Leaf{Kind: ir.LeafInline, Inline: lit(1)},
			Failure: &ir.Leaf{Kind: ir.LeafInline, Inline: lit(0)},
		},
	})
	if err != nil {
		t.Fatalf("compileCase() error = %v", err)
	}
	got := code.ToExpr().String()
	if !stringsContains(got, "x._0 === 1") {
		t.Errorf("compileCase() = %q, want a x._0 === 1 test", got)
	}
}
