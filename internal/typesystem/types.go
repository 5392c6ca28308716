package typesystem

import "strings"

// Type is the interface for all types in our system.
// The symbol-resolution core treats types as opaque payloads;
// String is only used when rendering diagnostics.
type Type interface {
	String() string
}

// TCon represents a ground type constructor (e.g. int, float, atom).
type TCon struct {
	Name string
}

func (t TCon) String() string { return t.Name }

// TVar represents a type variable (e.g. 'a', 'b').
type TVar struct {
	Name string
}

func (t TVar) String() string { return t.Name }

// TApp represents a type constructor application (e.g. list(a)).
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return t.Constructor.String() + "(" + strings.Join(args, ", ") + ")"
}

// TFunc represents a function type (e.g. (int, int) -> int).
type TFunc struct {
	Params     []Type
	ReturnType Type
}

func (t TFunc) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> " + t.ReturnType.String()
}

// TTuple represents a tuple type (e.g. {a, b}).
type TTuple struct {
	Elements []Type
}

func (t TTuple) String() string {
	elems := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		elems[i] = e.String()
	}
	return "{" + strings.Join(elems, ", ") + "}"
}
