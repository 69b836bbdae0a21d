package runtime

import "github.com/elm-js/codegen/jsast"

// BasicsOp is one entry of the Basics operator table (§4.6). Lower
// renders l and r (already-compiled operand expressions) into the
// lowered form; Fallthrough marks operators that have no special
// lowering and must fall through to the default `A2(moduleRef(...), l,
// r)` form. No entry of the current table sets it; an operator missing
// from the table falls through the same way.
type BasicsOp struct {
	Lower       func(l, r jsast.Expr) jsast.Expr
	Fallthrough bool
}

// basicsTable is the fixed §4.6 table for Binop nodes whose Module is
// "Basics". It is expressed as a flat map keyed by operator spelling,
// matching the design note "best expressed as compile-time-known
// mappings ... use a flat match on a small closed set rather than a hash
// lookup — there are fewer than twenty entries": the map here *is* that
// flat match, just written as data instead of a chain of `case`
// branches, because every entry needs the same two-argument shape.
var basicsTable = map[string]BasicsOp{
	"+":  {Lower: infix("+")},
	"-":  {Lower: infix("-")},
	"*":  {Lower: infix("*")},
	"/":  {Lower: infix("/")},
	"&&": {Lower: infix("&&")},
	"||": {Lower: infix("||")},
	"^":  {Lower: mathPow},
	"==": {Lower: Eq},
	"/=": {Lower: notEq},
	"<":  {Lower: cmpLess},
	">":  {Lower: cmpGreater},
	"<=": {Lower: cmpLessEq},
	">=": {Lower: cmpGreaterEq},
	"//": {Lower: intDiv},
}

// LookupBasics returns the §4.6 lowering for a Basics-module operator, if
// one exists. ok is false for an operator not in the fixed table (the
// caller falls through to the default A2(...) form).
func LookupBasics(op string) (BasicsOp, bool) {
	entry, ok := basicsTable[op]
	return entry, ok
}

func infix(op string) func(l, r jsast.Expr) jsast.Expr {
	return func(l, r jsast.Expr) jsast.Expr {
		return &jsast.Binary{Op: op, Left: l, Right: r}
	}
}

func mathPow(l, r jsast.Expr) jsast.Expr {
	return &jsast.CallExpr{
		Func: &jsast.Member{Object: Ident("Math"), Prop: "pow"},
		Args: []jsast.Expr{l, r},
	}
}

func notEq(l, r jsast.Expr) jsast.Expr {
	return &jsast.Unary{Op: "!", Operand: Eq(l, r)}
}

func cmpLess(l, r jsast.Expr) jsast.Expr {
	return &jsast.Binary{Op: "<", Left: Cmp(l, r), Right: &jsast.Int{Value: 0}}
}

func cmpGreater(l, r jsast.Expr) jsast.Expr {
	return &jsast.Binary{Op: ">", Left: Cmp(l, r), Right: &jsast.Int{Value: 0}}
}

func cmpLessEq(l, r jsast.Expr) jsast.Expr {
	return &jsast.Binary{Op: "<", Left: Cmp(l, r), Right: &jsast.Int{Value: 1}}
}

func cmpGreaterEq(l, r jsast.Expr) jsast.Expr {
	return &jsast.Binary{Op: ">", Left: Cmp(l, r), Right: &jsast.Int{Value: -1}}
}

func intDiv(l, r jsast.Expr) jsast.Expr {
	return &jsast.Binary{
		Op:    "|",
		Left:  &jsast.Binary{Op: "/", Left: l, Right: r},
		Right: &jsast.Int{Value: 0},
	}
}

// UnaryOp is one entry of the Basics/Bitwise unary special-case table
// (§4.5's `Bitwise.complement` / `Basics.not`).
type UnaryOp struct {
	Lower func(x jsast.Expr) jsast.Expr
}

var unaryTable = map[[2]string]UnaryOp{
	{"Bitwise", "complement"}: {Lower: func(x jsast.Expr) jsast.Expr { return &jsast.Unary{Op: "~", Operand: x} }},
	{"Basics", "not"}:         {Lower: func(x jsast.Expr) jsast.Expr { return &jsast.Unary{Op: "!", Operand: x} }},
}

// LookupUnary returns the §4.5 special-case lowering for a 1-argument
// global call, if one exists.
func LookupUnary(module, name string) (UnaryOp, bool) {
	entry, ok := unaryTable[[2]string{module, name}]
	return entry, ok
}

// BinaryCallOp is one entry of the Bitwise binary-call special-case table
// (§4.5's `Bitwise.and/or/xor/shiftLeftBy/...`). Swap marks the entries
// whose argument order is swapped relative to the source call (the shift
// amount comes first in the source, but JS puts the operand first).
type BinaryCallOp struct {
	Lower func(a, b jsast.Expr) jsast.Expr
	Swap  bool
}

var binaryCallTable = map[[2]string]BinaryCallOp{
	{"Bitwise", "and"}: {Lower: infixCall("&")},
	{"Bitwise", "or"}:  {Lower: infixCall("|")},
	{"Bitwise", "xor"}: {Lower: infixCall("^")},
	{"Bitwise", "shiftLeftBy"}:      {Lower: infixCall("<<"), Swap: true},
	{"Bitwise", "shiftRightBy"}:     {Lower: infixCall(">>"), Swap: true},
	{"Bitwise", "shiftRightZfBy"}:   {Lower: infixCall(">>>"), Swap: true},
}

func infixCall(op string) func(a, b jsast.Expr) jsast.Expr {
	return func(a, b jsast.Expr) jsast.Expr {
		return &jsast.Binary{Op: op, Left: a, Right: b}
	}
}

// LookupBinaryCall returns the §4.5 special-case lowering for a
// 2-argument global call, if one exists.
func LookupBinaryCall(module, name string) (BinaryCallOp, bool) {
	entry, ok := binaryCallTable[[2]string{module, name}]
	return entry, ok
}
