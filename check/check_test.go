package check

import (
	"testing"

	"github.com/elm-js/codegen/jsast"
)

func TestVerifyLabelsAcceptsMatchingBreak(t *testing.T) {
	stmts := []jsast.Stmt{
		&jsast.Labeled{
			Label: "L",
			Body:  &jsast.DoWhile{Body: []jsast.Stmt{&jsast.Break{Label: "L"}}, Cond: &jsast.Bool{Value: false}},
		},
	}
	if err := VerifyLabels(stmts); err != nil {
		t.Errorf("VerifyLabels() = %v, want nil", err)
	}
}

func TestVerifyLabelsRejectsUnmatchedBreak(t *testing.T) {
	stmts := []jsast.Stmt{&jsast.ExprStmt{Expr: &jsast.Ident{Name: "x"}}, &jsast.Break{Label: "ghost"}}
	if err := VerifyLabels(stmts); err == nil {
		t.Error("VerifyLabels(): want error for a break with no enclosing label, got nil")
	}
}

func TestVerifyLabelsFindsBreakInsideNestedSwitch(t *testing.T) {
	stmts := []jsast.Stmt{
		&jsast.Labeled{
			Label: "L",
			Body: &jsast.DoWhile{
				Body: []jsast.Stmt{&jsast.Switch{
					Disc: &jsast.Ident{Name: "x"},
					Cases: []jsast.SwitchCase{
						{Test: &jsast.Str{Value: "A"}, Body: []jsast.Stmt{&jsast.Break{Label: "L"}}},
					},
				}},
				Cond: &jsast.Bool{Value: false},
			},
		},
	}
	if err := VerifyLabels(stmts); err != nil {
		t.Errorf("VerifyLabels() = %v, want nil", err)
	}
}

func TestVerifyCurryArityAcceptsInRangeHelpers(t *testing.T) {
	stmts := []jsast.Stmt{&jsast.ExprStmt{Expr: &jsast.CallExpr{
		Func: &jsast.Ident{Name: "F3"},
		Args: []jsast.Expr{&jsast.Ident{Name: "fn"}},
	}}}
	if err := VerifyCurryArity(stmts); err != nil {
		t.Errorf("VerifyCurryArity() = %v, want nil", err)
	}
}

func TestVerifyCurryArityRejectsOutOfRangeHelper(t *testing.T) {
	stmts := []jsast.Stmt{&jsast.ExprStmt{Expr: &jsast.CallExpr{
		Func: &jsast.Ident{Name: "A10"},
		Args: []jsast.Expr{&jsast.Ident{Name: "fn"}},
	}}}
	if err := VerifyCurryArity(stmts); err == nil {
		t.Error("VerifyCurryArity(): want error for A10, got nil")
	}
}

func TestVerifyCurryArityIgnoresUnrelatedCalls(t *testing.T) {
	stmts := []jsast.Stmt{&jsast.ExprStmt{Expr: &jsast.CallExpr{
		Func: &jsast.Ident{Name: "Array"},
		Args: nil,
	}}}
	if err := VerifyCurryArity(stmts); err != nil {
		t.Errorf("VerifyCurryArity() = %v, want nil for a non-helper call", err)
	}
}
