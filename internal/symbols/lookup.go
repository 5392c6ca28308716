package symbols

import (
	"fmt"

	"github.com/funvibe/tyck/internal/token"
	"github.com/funvibe/tyck/internal/typesystem"
)

// NameError reports an undefined symbol at a use site. It is raised
// only at lookup time; a table may legitimately contain gaps until
// something asks for a missing entry.
type NameError struct {
	Loc     token.Position
	Subject string // rendered reference or operator key
	Kind    string // "function", "operator" or "type"
}

func (e *NameError) Error() string {
	if e.Loc.File != "" {
		return fmt.Sprintf("%s:%d:%d: undefined %s %s", e.Loc.File, e.Loc.Line, e.Loc.Column, e.Kind, e.Subject)
	}
	return fmt.Sprintf("%d:%d: undefined %s %s", e.Loc.Line, e.Loc.Column, e.Kind, e.Subject)
}

// LookupFunction returns the signature bound to ref or a NameError
// carrying the use-site position.
func (t SymbolTable) LookupFunction(ref Reference, loc token.Position) (typesystem.Scheme, error) {
	if s, ok := t.FindFunction(ref); ok {
		return s, nil
	}
	return typesystem.Scheme{}, &NameError{Loc: loc, Subject: ref.String(), Kind: "function"}
}

// LookupOperator returns the signature bound to key or a NameError.
func (t SymbolTable) LookupOperator(key OperatorKey, loc token.Position) (typesystem.Scheme, error) {
	if s, ok := t.FindOperator(key); ok {
		return s, nil
	}
	return typesystem.Scheme{}, &NameError{Loc: loc, Subject: key.String(), Kind: "operator"}
}

// LookupType returns the declaration bound to ref or a NameError.
func (t SymbolTable) LookupType(ref Reference, loc token.Position) (typesystem.Scheme, error) {
	if s, ok := t.FindType(ref); ok {
		return s, nil
	}
	return typesystem.Scheme{}, &NameError{Loc: loc, Subject: ref.String(), Kind: "type"}
}
