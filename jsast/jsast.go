// Package jsast builds a small structured JavaScript AST and renders it to
// source text. It exists to stand in for the real target AST builder that
// the production compiler owns (see spec.md §6's "Target AST builder"
// collaborator interface) so that package codegen has something concrete
// to emit into and this repository is self-contained and testable.
//
// Every node implements Node, and every node knows how to render itself;
// there is no separate visitor/printer pass, matching the way the
// teacher's ast package renders itself via String() on each node.
package jsast

import "bytes"

// Node is any node in the target AST.
type Node interface {
	// String renders this node as JavaScript source text.
	String() string
}

// Expr is any node usable as a JavaScript expression.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node usable as a JavaScript statement.
type Stmt interface {
	Node
	stmtNode()
}

// Program is an ordered list of top-level statements.
type Program struct {
	Statements []Stmt
}

// String renders every statement in order, one per line.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func writeJoined(out *bytes.Buffer, items []string, sep string) {
	for i, it := range items {
		if i > 0 {
			out.WriteString(sep)
		}
		out.WriteString(it)
	}
}

func exprStrings(exprs []Expr) []string {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		out[i] = e.String()
	}
	return out
}

func stmtStrings(stmts []Stmt) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = s.String()
	}
	return out
}
