// Package check is a post-generation structural verifier. It walks the
// jsast.Program the generator produced and confirms a handful of the
// invariants spec.md §8 calls out as testable properties: every
// statement-level break or continue names a label declared by an
// enclosing labeled statement (one direction of §8 invariant 6; a label
// that no break targets is not reported), and no curry-helper call with
// an arity outside 1..9 escaped into the output (the "arity-9 cap"
// design note).
//
// It is adapted from the teacher's vm package: where the VM walked
// bytecode and a stack to execute a program, this package walks a
// jsast.Program and a set to verify one. Both are "single forward pass
// over the generated artifact, matching structure against expectation"
// — the teacher's Run loop became this package's Verify function.
package check

import (
	"github.com/pkg/errors"

	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/runtime"
)

// Verify runs every structural check against prog and returns the first
// violation found, or nil if none.
func Verify(prog *jsast.Program) error {
	if err := VerifyLabels(prog.Statements); err != nil {
		return err
	}
	if err := VerifyCurryArity(prog.Statements); err != nil {
		return err
	}
	return nil
}

// VerifyLabels confirms that every `break <label>` and `continue <label>`
// reachable from stmts targets a label actually introduced by an
// enclosing jsast.Labeled in the same statement list. It follows
// statement nesting only: it does not enter expressions, so statements
// inside function literals and IIFEs (such as a compiled definition's
// `var` initializer) are not examined.
func VerifyLabels(stmts []jsast.Stmt) error {
	return walkLabels(stmts, map[string]bool{})
}

func walkLabels(stmts []jsast.Stmt, active map[string]bool) error {
	for _, s := range stmts {
		if err := walkLabelsOne(s, active); err != nil {
			return err
		}
	}
	return nil
}

func walkLabelsOne(s jsast.Stmt, active map[string]bool) error {
	switch n := s.(type) {
	case *jsast.Labeled:
		inner := cloneSet(active)
		inner[n.Label] = true
		return walkLabelsOne(n.Body, inner)
	case *jsast.Block:
		return walkLabels(n.Body, active)
	case *jsast.If:
		if err := walkLabels(n.Then, active); err != nil {
			return err
		}
		return walkLabels(n.Else, active)
	case *jsast.While:
		return walkLabels(n.Body, active)
	case *jsast.DoWhile:
		return walkLabels(n.Body, active)
	case *jsast.Switch:
		for _, c := range n.Cases {
			if err := walkLabels(c.Body, active); err != nil {
				return err
			}
		}
	case *jsast.Break:
		if n.Label != "" && !active[n.Label] {
			return errors.Errorf("check: break targets undeclared label %q", n.Label)
		}
	case *jsast.Continue:
		if n.Label != "" && !active[n.Label] {
			return errors.Errorf("check: continue targets undeclared label %q", n.Label)
		}
	}
	return nil
}

func cloneSet(s map[string]bool) map[string]bool {
	out := make(map[string]bool, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// VerifyCurryArity confirms that no call to the Fn/An curry-helper family
// uses an arity outside [1, runtime.MaxCurryArity]. Arity 1 is accepted
// because call lowering emits A1 chains for calls above the cap.
// It is a defense-in-depth check: package runtime's own FuncTag/Apply
// constructors already reject out-of-range arities, so this only fires
// if some other code path spliced a raw "F10"/"A10" identifier in by
// hand.
func VerifyCurryArity(stmts []jsast.Stmt) error {
	var err error
	Walk(stmts, func(e jsast.Expr) {
		if err != nil {
			return
		}
		call, ok := e.(*jsast.CallExpr)
		if !ok {
			return
		}
		ident, ok := call.Func.(*jsast.Ident)
		if !ok {
			return
		}
		kind, arity, ok := parseHelperName(ident.Name)
		if !ok {
			return
		}
		if arity < 1 || arity > runtime.MaxCurryArity {
			err = errors.Errorf("check: %s%d exceeds the supported curry-helper range", kind, arity)
		}
	})
	return err
}

func parseHelperName(name string) (kind string, arity int, ok bool) {
	if len(name) < 2 {
		return "", 0, false
	}
	head := name[:1]
	if head != "F" && head != "A" {
		return "", 0, false
	}
	digits := name[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", 0, false
		}
	}
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	return head, n, true
}
