// Package ir contains the tagged unions the code generator consumes:
// optimized expressions, definitions, and decision trees produced by the
// (out of scope) type-checker and optimizer stages upstream of this
// package.
//
// Every node is a closed struct implementing a marker interface so that
// the generator's dispatch can exhaustively switch over concrete types.
// There is no open inheritance hierarchy here, deliberately: the set of
// variants is fixed by the language's IR and is not meant to be extended
// by callers.
package ir

// Expr is any optimized expression node.
type Expr interface {
	exprNode()
}

// VarLocal is a reference to a locally scoped identifier.
type VarLocal struct {
	Name string
}

func (*VarLocal) exprNode() {}

// VarGlobal is a qualified reference to a top-level binding in some module.
type VarGlobal struct {
	Module string
	Name   string
}

func (*VarGlobal) exprNode() {}

// LitKind distinguishes the literal shapes a Literal expression can carry.
type LitKind int

// The literal kinds a Literal expression may wrap.
const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitChar
	LitString
)

// Lit is a literal value: integer, float, boolean, character, or string.
type Lit struct {
	Kind LitKind

	IntValue    int64
	FloatValue  float64
	BoolValue   bool
	CharValue   rune
	StringValue string
}

// Literal wraps a single literal value.
type Literal struct {
	Value Lit
}

func (*Literal) exprNode() {}

// Access is a record projection: record.Field.
type Access struct {
	Record Expr
	Field  string
}

func (*Access) exprNode() {}

// UpdateField is one (field, value) pair of a functional record update.
type UpdateField struct {
	Field string
	Value Expr
}

// Update is a functional record update producing a fresh record.
type Update struct {
	Record Expr
	Fields []UpdateField
}

func (*Update) exprNode() {}

// RecordField is one field of a record literal.
type RecordField struct {
	Name  string
	Value Expr
}

// Record is a record literal.
type Record struct {
	Fields []RecordField
}

func (*Record) exprNode() {}

// Binop is a binary operator call, with the operator's defining module
// already resolved by the type checker.
type Binop struct {
	Module string
	Op     string
	LHS    Expr
	RHS    Expr
}

func (*Binop) exprNode() {}

// Function is a curried lambda. Args is the ordered list of parameter
// names; arity is len(Args).
type Function struct {
	Args []string
	Body Expr
}

func (*Function) exprNode() {}

// Call is a saturated application of Func to an ordered argument list.
type Call struct {
	Func Expr
	Args []Expr
}

func (*Call) exprNode() {}

// TailCall is a self-recursive call in tail position. ArgNames names the
// enclosing TailDef's formal parameters (same order, same length as Args);
// Args are the replacement values for the next iteration.
type TailCall struct {
	Name     string
	ArgNames []string
	Args     []Expr
}

func (*TailCall) exprNode() {}

// LetDef is one (name, def) binding of a Let.
type LetDef struct {
	Name string
	Def  Expr
}

// Let is an ordered sequence of bindings followed by a body.
type Let struct {
	Defs []LetDef
	Body Expr
}

func (*Let) exprNode() {}

// Branch is one (cond, expr) guarded branch of an If.
type Branch struct {
	Cond Expr
	Expr Expr
}

// If is an ordered list of guarded branches plus a mandatory default.
type If struct {
	Branches []Branch
	Else     Expr
}

func (*If) exprNode() {}

// Jump is a shared continuation expression inside a Case, addressable by
// an integer label from the decision tree.
type Jump struct {
	Target int
	Expr   Expr
}

// Case is a pattern match: Scrutinee is pre-bound under ScrutineeName,
// Decider is the decision tree over it, and Jumps holds the shared
// continuations the decider's Leaf(Jump) nodes may target.
type Case struct {
	ScrutineeName string
	Decider       Tree
	Jumps         []Jump
}

func (*Case) exprNode() {}

// List is a list literal.
type List struct {
	Elems []Expr
}

func (*List) exprNode() {}

// Ctor is a data constructor application. Members map 1:1 to fields
// _0, _1, ..., _N-1.
type Ctor struct {
	Tag     string
	Members []Expr
}

func (*Ctor) exprNode() {}

// CtorAccess is positional field access on a constructor value.
type CtorAccess struct {
	Expr  Expr
	Index int
}

func (*CtorAccess) exprNode() {}

// Cmd is an effect-manager command placeholder for the named module.
type Cmd struct {
	Module string
}

func (*Cmd) exprNode() {}

// Sub is an effect-manager subscription placeholder for the named module.
type Sub struct {
	Module string
}

func (*Sub) exprNode() {}

// OutgoingPort is an FFI port declaration for values flowing out to JS.
type OutgoingPort struct {
	Name string
	Type PortType
}

func (*OutgoingPort) exprNode() {}

// IncomingPort is an FFI port declaration for values flowing in from JS.
type IncomingPort struct {
	Name string
	Type PortType
}

func (*IncomingPort) exprNode() {}

// ProgramKind distinguishes the three shapes a Program entry point can take.
type ProgramKind int

// The program entry-point kinds.
const (
	// ProgramVDom is a virtual-DOM program with no flags.
	ProgramVDom ProgramKind = iota
	// ProgramNoFlags takes no startup flags.
	ProgramNoFlags
	// ProgramFlags decodes startup flags of the given PortType.
	ProgramFlags
)

// Program is the top-level program entry point.
type Program struct {
	Kind     ProgramKind
	FlagType PortType // only meaningful when Kind == ProgramFlags
	Body     Expr
}

func (*Program) exprNode() {}

// GLShader is an opaque shader-source literal.
type GLShader struct {
	Source string
}

func (*GLShader) exprNode() {}

// Crash is a runtime error emission.
type Crash struct {
	Module          string
	Region          string
	BranchProblem   string // empty when there is no branch-problem detail
	HasBranchProblem bool
}

func (*Crash) exprNode() {}
