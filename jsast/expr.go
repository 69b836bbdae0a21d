package jsast

import (
	"bytes"
	"fmt"
	"strconv"
)

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// String renders the identifier.
func (i *Ident) String() string { return i.Name }

// Int is an integer literal.
type Int struct {
	Value int64
}

func (*Int) exprNode() {}

// String renders the integer literal.
func (n *Int) String() string { return strconv.FormatInt(n.Value, 10) }

// Float is a floating-point literal.
type Float struct {
	Value float64
}

func (*Float) exprNode() {}

// String renders the float literal.
func (n *Float) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

func (*Bool) exprNode() {}

// String renders the boolean literal.
func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Str is a double-quoted string literal. Value is the raw (unescaped)
// string content; String() applies Go's quoting, which is a safe
// superset of JavaScript's for our ASCII-biased literal set.
type Str struct {
	Value string
}

func (*Str) exprNode() {}

// String renders the quoted string literal.
func (s *Str) String() string { return strconv.Quote(s.Value) }

// Null is the `null` literal.
type Null struct{}

func (*Null) exprNode() {}

// String renders `null`.
func (*Null) String() string { return "null" }

// Raw is an escape hatch for a pre-rendered expression fragment; used
// sparingly, e.g. by the literal encoder for already-formatted numerics.
type Raw struct {
	Text string
}

func (*Raw) exprNode() {}

// String renders the raw text verbatim.
func (r *Raw) String() string { return r.Text }

// Prop is one (key, value) entry of an ObjectLit.
type Prop struct {
	Key   string
	Value Expr
}

// ObjectLit is an object literal `{k1: v1, k2: v2, ...}`.
type ObjectLit struct {
	Props []Prop
}

func (*ObjectLit) exprNode() {}

// String renders the object literal.
func (o *ObjectLit) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, p := range o.Props {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Key)
		out.WriteString(": ")
		out.WriteString(p.Value.String())
	}
	out.WriteString("}")
	return out.String()
}

// ArrayLit is an array literal `[e1, e2, ...]`.
type ArrayLit struct {
	Elems []Expr
}

func (*ArrayLit) exprNode() {}

// String renders the array literal.
func (a *ArrayLit) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	writeJoined(&out, exprStrings(a.Elems), ", ")
	out.WriteString("]")
	return out.String()
}

// Member is a member access `obj.prop` or, when Computed is set,
// `obj[prop]`.
type Member struct {
	Object   Expr
	Prop     string
	Computed bool
}

func (*Member) exprNode() {}

// String renders the member access.
func (m *Member) String() string {
	if m.Computed {
		return fmt.Sprintf("%s[%s]", m.Object.String(), m.Prop)
	}
	return fmt.Sprintf("%s.%s", m.Object.String(), m.Prop)
}

// CallExpr is a function call `fn(a1, a2, ...)`.
type CallExpr struct {
	Func Expr
	Args []Expr
}

func (*CallExpr) exprNode() {}

// String renders the call.
func (c *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(c.Func.String())
	out.WriteString("(")
	writeJoined(&out, exprStrings(c.Args), ", ")
	out.WriteString(")")
	return out.String()
}

// NewExpr is a `new Ctor(a1, a2, ...)` expression.
type NewExpr struct {
	Ctor Expr
	Args []Expr
}

func (*NewExpr) exprNode() {}

// String renders the `new` expression.
func (n *NewExpr) String() string {
	var out bytes.Buffer
	out.WriteString("new ")
	out.WriteString(n.Ctor.String())
	out.WriteString("(")
	writeJoined(&out, exprStrings(n.Args), ", ")
	out.WriteString(")")
	return out.String()
}

// Unary is a prefix unary operator expression, e.g. `!x`, `-x`, `~x`.
type Unary struct {
	Op      string
	Operand Expr
}

func (*Unary) exprNode() {}

// String renders the unary expression.
func (u *Unary) String() string {
	return fmt.Sprintf("%s%s", u.Op, parenIfBinary(u.Operand))
}

// Binary is an infix binary operator expression.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

// String renders the binary expression.
func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s", parenIfBinary(b.Left), b.Op, parenIfBinary(b.Right))
}

// parenIfBinary wraps nested binary expressions in parens so the printed
// output's precedence matches the AST's structure rather than JS's
// default operator precedence.
func parenIfBinary(e Expr) string {
	if _, ok := e.(*Binary); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// Cond is a ternary conditional expression `cond ? cons : alt`.
type Cond struct {
	Test Expr
	Cons Expr
	Alt  Expr
}

func (*Cond) exprNode() {}

// String renders the ternary expression. A nested ternary in the Alt
// position is wrapped in parens.
func (c *Cond) String() string {
	alt := c.Alt.String()
	if _, ok := c.Alt.(*Cond); ok {
		alt = "(" + alt + ")"
	}
	return fmt.Sprintf("%s ? %s : %s", c.Test.String(), c.Cons.String(), alt)
}

// Assign is an assignment expression `target = value`.
type Assign struct {
	Target Expr
	Value  Expr
}

func (*Assign) exprNode() {}

// String renders the assignment.
func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Target.String(), a.Value.String())
}

// FuncLit is a function literal, optionally named. Body is the function's
// statement list.
type FuncLit struct {
	Name   string // empty for an anonymous function literal
	Params []string
	Body   []Stmt
}

func (*FuncLit) exprNode() {}

// String renders the function literal.
func (f *FuncLit) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(f.Name)
	out.WriteString("(")
	writeJoined(&out, f.Params, ",")
	out.WriteString("){")
	writeBlockBody(&out, f.Body)
	out.WriteString("}")
	return out.String()
}

// IIFE wraps a zero-argument function literal in an immediately-invoked
// call: `(function(){ ... })()`.
type IIFE struct {
	Body []Stmt
}

func (*IIFE) exprNode() {}

// String renders the IIFE.
func (i *IIFE) String() string {
	fn := &FuncLit{Body: i.Body}
	return "(" + fn.String() + ")()"
}

func writeBlockBody(out *bytes.Buffer, stmts []Stmt) {
	for _, s := range stmts {
		out.WriteString(s.String())
	}
}
