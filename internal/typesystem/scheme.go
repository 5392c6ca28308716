package typesystem

import "strings"

// Scheme is a type possibly quantified over bound type variables.
// The symbol table stores Schemes as opaque values; only the number
// of bound variables is inspected (it is the arity of a type
// declaration).
type Scheme struct {
	Vars []string
	Body Type
}

// NewScheme builds a scheme; a nil var list means a monomorphic type.
func NewScheme(vars []string, body Type) Scheme {
	return Scheme{Vars: vars, Body: body}
}

// Arity returns the number of bound type variables.
func (s Scheme) Arity() int { return len(s.Vars) }

func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		if s.Body == nil {
			return "<none>"
		}
		return s.Body.String()
	}
	return "forall " + strings.Join(s.Vars, " ") + " . " + s.Body.String()
}
