package ir

// Def is an ordinary top-level definition: compile its Body as an
// expression (or, if Body is a Function, via the arity-curry convention).
type Def struct {
	Body Expr
}

// TailDef is a self-tail-recursive function definition. Every TailCall in
// Body must have Name equal to this definition's binding name, and
// ArgNames of the same length as this TailDef's Args (invariant #2).
type TailDef struct {
	Args []string
	Body Expr
}

// Definition is either a Def or a TailDef.
type Definition interface {
	definitionNode()
}

func (*Def) definitionNode()     {}
func (*TailDef) definitionNode() {}
