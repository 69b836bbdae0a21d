package check

import "github.com/elm-js/codegen/jsast"

// Walk visits every expression reachable from stmts, depth-first,
// left-to-right, calling visit on each one (including visit's own
// sub-expressions, which Walk recurses into itself rather than relying
// on visit to do so).
func Walk(stmts []jsast.Stmt, visit func(jsast.Expr)) {
	for _, s := range stmts {
		walkStmt(s, visit)
	}
}

func walkStmt(s jsast.Stmt, visit func(jsast.Expr)) {
	switch n := s.(type) {
	case *jsast.ExprStmt:
		walkExpr(n.Expr, visit)
	case *jsast.ReturnStmt:
		if n.Value != nil {
			walkExpr(n.Value, visit)
		}
	case *jsast.VarDecl:
		for _, d := range n.Decls {
			if d.Init != nil {
				walkExpr(d.Init, visit)
			}
		}
	case *jsast.Block:
		Walk(n.Body, visit)
	case *jsast.If:
		walkExpr(n.Cond, visit)
		Walk(n.Then, visit)
		Walk(n.Else, visit)
	case *jsast.While:
		walkExpr(n.Cond, visit)
		Walk(n.Body, visit)
	case *jsast.DoWhile:
		Walk(n.Body, visit)
		walkExpr(n.Cond, visit)
	case *jsast.Switch:
		walkExpr(n.Disc, visit)
		for _, c := range n.Cases {
			if c.Test != nil {
				walkExpr(c.Test, visit)
			}
			Walk(c.Body, visit)
		}
	case *jsast.Labeled:
		walkStmt(n.Body, visit)
	}
}

func walkExpr(e jsast.Expr, visit func(jsast.Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *jsast.ObjectLit:
		for _, p := range n.Props {
			walkExpr(p.Value, visit)
		}
	case *jsast.ArrayLit:
		for _, el := range n.Elems {
			walkExpr(el, visit)
		}
	case *jsast.Member:
		walkExpr(n.Object, visit)
	case *jsast.CallExpr:
		walkExpr(n.Func, visit)
		for _, a := range n.Args {
			walkExpr(a, visit)
		}
	case *jsast.NewExpr:
		walkExpr(n.Ctor, visit)
		for _, a := range n.Args {
			walkExpr(a, visit)
		}
	case *jsast.Unary:
		walkExpr(n.Operand, visit)
	case *jsast.Binary:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)
	case *jsast.Cond:
		walkExpr(n.Test, visit)
		walkExpr(n.Cons, visit)
		walkExpr(n.Alt, visit)
	case *jsast.Assign:
		walkExpr(n.Target, visit)
		walkExpr(n.Value, visit)
	case *jsast.FuncLit:
		Walk(n.Body, visit)
	case *jsast.IIFE:
		Walk(n.Body, visit)
	}
}
