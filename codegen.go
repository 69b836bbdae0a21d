// Package codegen is the expression code generator described by
// spec.md: a pure recursive translator from an optimized functional IR
// (package ir) to a JavaScript target AST (package jsast).
//
// It is grounded on the teacher's own compile method in compiler.go,
// which pattern-matched on ast.Node and emitted bytecode via e.emit;
// here the dispatch pattern-matches on ir.Expr and returns a Code
// envelope instead of mutating a shared instruction buffer, because the
// target is a tree the caller assembles, not a linear bytecode stream
// the compiler appends to in place. The switch-per-variant shape, one
// case per node kind with the simple cases inlined and the complex ones
// delegated to their own file, carries over unchanged.
package codegen

import (
	"io"

	"github.com/pkg/errors"

	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/jsast"
	"github.com/elm-js/codegen/labelstack"
	"github.com/elm-js/codegen/literal"
	"github.com/elm-js/codegen/mangle"
	"github.com/elm-js/codegen/runtime"
)

// Options configures a Context. There is no configuration surface in
// the sense of environment variables or files (spec.md §6: "no
// environment variables"); this is a plain value struct passed at
// construction, the same shape the teacher uses for its NoOptimize flag
// in evalfilter.go.
type Options struct {
	// Trace, when non-nil, receives one diagnostic line per compiled
	// top-level definition. It exists for the same reason as the
	// teacher's Eval.Debug field in op_if.go: ad hoc tracing gated by
	// a field, not a logging package the teacher itself never
	// imports (see DESIGN.md's stdlib-justification entry for this
	// field).
	Trace io.Writer
}

// Context carries the one piece of threaded state spec.md §3 names: a
// monotonically increasing fresh-name counter, owned here by the
// mangler (§6: "fresh names (counter-based)" is the mangler's job).
// Context also owns the label stack used by nested Case compilation
// (§4.8) and the pointer to the enclosing tail loop (§4.4).
type Context struct {
	mangler *mangle.Mangler
	opts    Options

	// activeTailLoop is the innermost enclosing TailDef being compiled,
	// or nil outside one. A TailCall validates against it (§4.4).
	activeTailLoop *tailLoop

	// caseLabels tracks the root label of every Case currently being
	// compiled, innermost last, so a nested decision tree's Leaf(Jump)
	// and Leaf(Inline) sites know which enclosing Case's single-exit
	// label to break to without threading it through every recursive
	// compileTree call (§4.8).
	caseLabels *labelstack.Stack
}

// New creates a fresh compilation context with its counter at zero.
func New(opts Options) *Context {
	return &Context{mangler: mangle.New(), opts: opts, caseLabels: labelstack.New()}
}

// ICError is an internal-compiler-error: spec.md §7 treats every
// detected invariant violation as fatal and unretried, "producing wrong
// code is a worse failure mode than aborting". The invariant checks in
// this package, and Module's check.Verify failure, return this type, so
// a caller can tell "the IR was malformed" from other errors via
// errors.As, while the message itself keeps the pkg/errors stack trace
// for whoever has to debug the upstream optimizer that produced the bad
// IR. Errors reported by the collaborator packages (literal, foreign,
// runtime, labelstack) are passed up as they are, not wrapped in ICError.
type ICError struct {
	cause error
}

// Error renders the wrapped cause.
func (e *ICError) Error() string { return e.cause.Error() }

// Cause exposes the wrapped error for github.com/pkg/errors' Cause
// chain, and for anyone calling errors.Unwrap.
func (e *ICError) Cause() error { return e.cause }

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *ICError) Unwrap() error { return e.cause }

func icErrorf(format string, args ...interface{}) error {
	return &ICError{cause: errors.Errorf(format, args...)}
}

// trace writes one diagnostic line, if a Trace writer was configured.
func (c *Context) trace(format string, args ...interface{}) {
	if c.opts.Trace == nil {
		return
	}
	_, _ = io.WriteString(c.opts.Trace, sprintf(format, args...)+"\n")
}

// Expr is the top-level expression dispatcher (spec.md §4.2 plus the
// delegated §4.3–§4.9 routines). It is total over every ir.Expr variant;
// an unrecognized concrete type is itself an internal-compiler-error,
// since the ir package's Expr interface is closed by construction.
func (c *Context) Expr(node ir.Expr) (Code, error) {
	switch n := node.(type) {

	case *ir.VarLocal:
		return Expr(&jsast.Ident{Name: c.mangler.Local(n.Name)}), nil

	case *ir.VarGlobal:
		return Expr(&jsast.Ident{Name: c.mangler.Global(n.Module, n.Name)}), nil

	case *ir.Literal:
		e, err := literal.Encode(n.Value)
		if err != nil {
			return Code{}, err
		}
		return Expr(e), nil

	case *ir.Access:
		recv, err := c.Expr(n.Record)
		if err != nil {
			return Code{}, err
		}
		return Expr(&jsast.Member{Object: recv.ToExpr(), Prop: c.mangler.Field(n.Field)}), nil

	case *ir.Update:
		return c.compileUpdate(n)

	case *ir.Record:
		return c.compileRecord(n)

	case *ir.Binop:
		return c.compileBinop(n)

	case *ir.Function:
		return c.compileFunction(n)

	case *ir.Call:
		return c.compileCall(n)

	case *ir.TailCall:
		return c.compileTailCall(n)

	case *ir.Let:
		return c.compileLet(n)

	case *ir.If:
		return c.compileIf(n)

	case *ir.Case:
		return c.compileCase(n)

	case *ir.List:
		elems, err := c.exprList(n.Elems)
		if err != nil {
			return Code{}, err
		}
		return Expr(runtime.List(elems)), nil

	case *ir.Ctor:
		return c.compileCtor(n)

	case *ir.CtorAccess:
		recv, err := c.Expr(n.Expr)
		if err != nil {
			return Code{}, err
		}
		return Expr(&jsast.Member{Object: recv.ToExpr(), Prop: positionField(n.Index)}), nil

	case *ir.Cmd:
		return Expr(runtime.Effect(n.Module)), nil

	case *ir.Sub:
		return Expr(runtime.Effect(n.Module)), nil

	case *ir.OutgoingPort:
		return c.compileOutgoingPort(n)

	case *ir.IncomingPort:
		return c.compileIncomingPort(n)

	case *ir.Program:
		return c.compileProgram(n)

	case *ir.GLShader:
		return Expr(&jsast.ObjectLit{Props: []jsast.Prop{{Key: "src", Value: &jsast.Str{Value: n.Source}}}}), nil

	case *ir.Crash:
		return c.compileCrash(n)

	default:
		return Code{}, icErrorf("codegen: unhandled ir.Expr type %T", node)
	}
}

// exprList compiles an ordered list of expressions left-to-right,
// coercing each to expression form; spec.md §5 requires this order to
// be observable and stable.
func (c *Context) exprList(exprs []ir.Expr) ([]jsast.Expr, error) {
	out := make([]jsast.Expr, len(exprs))
	for i, e := range exprs {
		code, err := c.Expr(e)
		if err != nil {
			return nil, err
		}
		out[i] = code.ToExpr()
	}
	return out, nil
}

func positionField(i int) string {
	return "_" + itoa(i)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func sprintf(format string, args ...interface{}) string {
	return errors.Errorf(format, args...).Error()
}
