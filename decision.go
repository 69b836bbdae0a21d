// This file implements the decision-tree emitter (spec.md §4.8): Leaf,
// Chain, and FanOut nodes lower to nested conditionals and switches, with
// Jump leaves dispatching to shared continuations via the classic
// "labeled do-while plus break" single-exit construct, since JavaScript
// has no computed goto.
package codegen

import (
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/literal"
)

// compileCase lowers a Case node (§4.8). The scrutinee is already bound
// under ScrutineeName (per ir.Case's contract); this routine only
// addresses into it along the decision tree's paths.
//
// The whole Case compiles to a statement block ending in `return
// <result>;`, so it is always returned as Block — a containing
// expression context coerces it to an IIFE via Code.ToExpr, same as any
// other statement-shaped construct.
//
// The root label is pushed onto c.caseLabels for the duration of the
// tree walk, rather than threaded through every compileTree call: a
// nested Case reached through a Leaf(Inline)'s carried expression pushes
// its own label on top and pops it before this call returns, so
// Top() always names the innermost enclosing Case while a deeper one is
// being compiled.
func (c *Context) compileCase(n *ir.Case) (Code, error) {
	root := &jsast.Ident{Name: c.mangler.Local(n.ScrutineeName)}
	rootLabel := c.mangler.Fresh()
	resultVar := c.mangler.Fresh()

	c.caseLabels.Push(rootLabel)
	treeStmts, err := c.compileTree(n.Decider, root, resultVar)
	if _, popErr := c.caseLabels.Pop(); popErr != nil && err == nil {
		err = popErr
	}
	if err != nil {
		return Code{}, err
	}

	inner := treeStmts
	for _, jump := range n.Jumps {
		jumpBody, err := c.compileTerminalExpr(jump.Expr, resultVar, rootLabel)
		if err != nil {
			return Code{}, err
		}
		wrap := &jsast.Labeled{
			Label: jumpLabel(rootLabel, jump.Target),
			Body:  &jsast.DoWhile{Body: inner, Cond: &jsast.Bool{Value: false}},
		}
		inner = append([]jsast.Stmt{wrap}, jumpBody...)
	}

	final := []jsast.Stmt{
		&jsast.VarDecl{Decls: []jsast.Declarator{{Name: resultVar}}},
		&jsast.Labeled{
			Label: rootLabel,
			Body:  &jsast.DoWhile{Body: inner, Cond: &jsast.Bool{Value: false}},
		},
		&jsast.ReturnStmt{Value: &jsast.Ident{Name: resultVar}},
	}
	return Block(final), nil
}

func jumpLabel(rootLabel string, target int) string {
	return rootLabel + "_" + itoa(target)
}

// currentCaseLabel reports the innermost enclosing Case's root label.
// It is an internal-compiler-error for compileTree/compileTerminalExpr
// to run with no Case on the stack, since compileCase always pushes one
// before walking the tree.
func (c *Context) currentCaseLabel() (string, error) {
	label, ok := c.caseLabels.Top()
	if !ok {
		return "", icErrorf("codegen: decision-tree node compiled outside any enclosing Case")
	}
	return label, nil
}

// compileTerminalExpr compiles a value-producing leaf of the decision
// tree (a LeafInline's carried expression, or a Jump's shared
// continuation): assign the result into resultVar, then break out of the
// whole Case via rootLabel so later sibling branches never execute.
func (c *Context) compileTerminalExpr(e ir.Expr, resultVar, rootLabel string) ([]jsast.Stmt, error) {
	code, err := c.Expr(e)
	if err != nil {
		return nil, err
	}
	return []jsast.Stmt{
		&jsast.ExprStmt{Expr: &jsast.Assign{
			Target: &jsast.Ident{Name: resultVar},
			Value:  code.ToExpr(),
		}},
		&jsast.Break{Label: rootLabel},
	}, nil
}

// compileTree lowers one decision-tree node.
func (c *Context) compileTree(t ir.Tree, root jsast.Expr, resultVar string) ([]jsast.Stmt, error) {
	switch n := t.(type) {

	case *ir.Leaf:
		rootLabel, err := c.currentCaseLabel()
		if err != nil {
			return nil, err
		}
		if n.Kind == ir.LeafJump {
			return []jsast.Stmt{&jsast.Break{Label: jumpLabel(rootLabel, n.Target)}}, nil
		}
		return c.compileTerminalExpr(n.Inline, resultVar, rootLabel)

	case *ir.Chain:
		cond, err := c.compilePathTests(n.Tests, root)
		if err != nil {
			return nil, err
		}
		thenStmts, err := c.compileTree(n.Success, root, resultVar)
		if err != nil {
			return nil, err
		}
		elseStmts, err := c.compileTree(n.Failure, root, resultVar)
		if err != nil {
			return nil, err
		}
		return []jsast.Stmt{&jsast.If{Cond: cond, Then: thenStmts, Else: elseStmts}}, nil

	case *ir.FanOut:
		return c.compileFanOut(n, root, resultVar)

	default:
		return nil, icErrorf("codegen: unhandled ir.Tree type %T", t)
	}
}

// compilePathTests conjoins a Chain's path/test pairs with &&, in order.
func (c *Context) compilePathTests(tests []ir.PathTest, root jsast.Expr) (jsast.Expr, error) {
	if len(tests) == 0 {
		return nil, icErrorf("codegen: Chain with zero tests")
	}
	acc, err := c.testCond(tests[0].Test, c.resolvePath(tests[0].Path, root))
	if err != nil {
		return nil, err
	}
	for _, pt := range tests[1:] {
		cond, err := c.testCond(pt.Test, c.resolvePath(pt.Path, root))
		if err != nil {
			return nil, err
		}
		acc = &jsast.Binary{Op: "&&", Left: acc, Right: cond}
	}
	return acc, nil
}

// testCond renders a single path/test pair as a boolean expression.
func (c *Context) testCond(test ir.Test, pathExpr jsast.Expr) (jsast.Expr, error) {
	switch test.Kind {
	case ir.TestConstructor:
		return &jsast.Binary{
			Op:    "===",
			Left:  &jsast.Member{Object: pathExpr, Prop: "$"},
			Right: &jsast.Str{Value: test.Tag},
		}, nil
	case ir.TestLiteral:
		lit, err := literal.Encode(test.Literal)
		if err != nil {
			return nil, err
		}
		return &jsast.Binary{Op: "===", Left: pathExpr, Right: lit}, nil
	default:
		return nil, icErrorf("codegen: unknown ir.TestKind %d", test.Kind)
	}
}

// compileFanOut lowers a multi-way branch to a switch statement, keyed
// on the constructor-tag field for constructor edges or the raw value
// for literal edges. Every switch-case body already ends in a break (via
// compileTree's leaves), so no explicit fallthrough guard is needed.
func (c *Context) compileFanOut(n *ir.FanOut, root jsast.Expr, resultVar string) ([]jsast.Stmt, error) {
	if len(n.Edges) == 0 {
		return nil, icErrorf("codegen: FanOut with zero edges")
	}

	pathExpr := c.resolvePath(n.Path, root)
	disc := pathExpr
	if n.Edges[0].Test.Kind == ir.TestConstructor {
		disc = &jsast.Member{Object: pathExpr, Prop: "$"}
	}

	cases := make([]jsast.SwitchCase, 0, len(n.Edges)+1)
	for _, edge := range n.Edges {
		var testExpr jsast.Expr
		switch edge.Test.Kind {
		case ir.TestConstructor:
			testExpr = &jsast.Str{Value: edge.Test.Tag}
		case ir.TestLiteral:
			lit, err := literal.Encode(edge.Test.Literal)
			if err != nil {
				return nil, err
			}
			testExpr = lit
		default:
			return nil, icErrorf("codegen: unknown ir.TestKind %d", edge.Test.Kind)
		}
		body, err := c.compileTree(edge.Subtree, root, resultVar)
		if err != nil {
			return nil, err
		}
		cases = append(cases, jsast.SwitchCase{Test: testExpr, Body: body})
	}

	fallback, err := c.compileTree(n.Fallback, root, resultVar)
	if err != nil {
		return nil, err
	}
	cases = append(cases, jsast.SwitchCase{Test: nil, Body: fallback})

	return []jsast.Stmt{&jsast.Switch{Disc: disc, Cases: cases}}, nil
}

// resolvePath addresses from the Case's scrutinee root along a decision
// tree zipper path (§4.8): Position indexes a constructor member,
// Field projects a record field, Empty/Alias are both the root itself.
func (c *Context) resolvePath(p ir.Path, root jsast.Expr) jsast.Expr {
	switch p.Kind {
	case ir.PathEmpty, ir.PathAlias:
		return root
	case ir.PathPosition:
		return &jsast.Member{Object: c.resolvePath(*p.Rest, root), Prop: positionField(p.Index)}
	case ir.PathField:
		return &jsast.Member{Object: c.resolvePath(*p.Rest, root), Prop: c.mangler.Field(p.Name)}
	default:
		return root
	}
}
