// This file implements the FFI port boundary cases (spec.md §4.2's
// OutgoingPort/IncomingPort), delegating the recursive type-descriptor
// walk to package foreign and wiring the resulting encoder/decoder
// expression into the runtime's port-registration helper.
package codegen

import (
	"github.com/elm-js/codegen/foreign"
	"github.com/elm-js/codegen/ir"
	"github.com/elm-js/codegen/runtime"
)

// compileOutgoingPort lowers a port declaration for values flowing out
// to JavaScript.
func (c *Context) compileOutgoingPort(n *ir.OutgoingPort) (Code, error) {
	encoder, err := foreign.Encode(n.Type)
	if err != nil {
		return Code{}, err
	}
	return Expr(runtime.OutgoingPort(n.Name, encoder)), nil
}

// compileIncomingPort lowers a port declaration for values flowing in
// from JavaScript.
func (c *Context) compileIncomingPort(n *ir.IncomingPort) (Code, error) {
	decoder, err := foreign.Decode(n.Type)
	if err != nil {
		return Code{}, err
	}
	return Expr(runtime.IncomingPort(n.Name, decoder)), nil
}
