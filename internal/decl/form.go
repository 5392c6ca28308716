// Package decl defines the declaration forms the symbol table is
// built from, and the transformation from parsed files to forms.
package decl

import (
	"github.com/funvibe/tyck/internal/token"
	"github.com/funvibe/tyck/internal/typesystem"
)

// Form is one module-level declaration relevant to symbol
// resolution. The variant set is closed: FunctionSpec, TypeDecl and
// Other, matched exhaustively wherever forms are consumed.
type Form interface {
	formNode()
	Pos() token.Position
}

// FunctionSpec declares a function's signature.
type FunctionSpec struct {
	Name   string
	Arity  int
	Scheme typesystem.Scheme
	Loc    token.Position
}

func (f FunctionSpec) formNode()           {}
func (f FunctionSpec) Pos() token.Position { return f.Loc }

// TypeDecl declares a named type; its arity is the scheme's bound
// variable count.
type TypeDecl struct {
	Name   string
	Scheme typesystem.Scheme
	Loc    token.Position
}

func (t TypeDecl) formNode()           {}
func (t TypeDecl) Pos() token.Position { return t.Loc }

// Other is any form the resolver ignores.
type Other struct {
	Loc token.Position
}

func (o Other) formNode()           {}
func (o Other) Pos() token.Position { return o.Loc }
