// Package catalog holds the fixed list of built-in function and
// operator signatures that seed the standard symbol table.
package catalog

import (
	"github.com/funvibe/tyck/internal/typesystem"
)

// Builtin is one (name, arity, scheme) entry of the catalog.
type Builtin struct {
	Name   string
	Arity  int
	Scheme typesystem.Scheme
}

// Catalog is the explicit, immutable builtin table. It is built once
// at process start (Default) and passed by reference into the
// bootstrapper; there is no hidden global state.
type Catalog struct {
	Functions []Builtin
	Operators []Builtin
}

var (
	intT   = typesystem.TCon{Name: "int"}
	floatT = typesystem.TCon{Name: "float"}
	boolT  = typesystem.TCon{Name: "bool"}
	atomT  = typesystem.TCon{Name: "atom"}
	strT   = typesystem.TCon{Name: "string"}
	varA   = typesystem.TVar{Name: "a"}
	varB   = typesystem.TVar{Name: "b"}
)

func listOf(elem typesystem.Type) typesystem.Type {
	return typesystem.TApp{Constructor: typesystem.TCon{Name: "list"}, Args: []typesystem.Type{elem}}
}

func mono(params []typesystem.Type, ret typesystem.Type) typesystem.Scheme {
	return typesystem.NewScheme(nil, typesystem.TFunc{Params: params, ReturnType: ret})
}

func poly(vars []string, params []typesystem.Type, ret typesystem.Type) typesystem.Scheme {
	return typesystem.NewScheme(vars, typesystem.TFunc{Params: params, ReturnType: ret})
}

// Default builds the builtin catalog. The order below is the
// insertion order used by the bootstrapper.
func Default() *Catalog {
	return &Catalog{
		Functions: []Builtin{
			{"abs", 1, mono([]typesystem.Type{intT}, intT)},
			{"trunc", 1, mono([]typesystem.Type{floatT}, intT)},
			{"round", 1, mono([]typesystem.Type{floatT}, intT)},
			{"float", 1, mono([]typesystem.Type{intT}, floatT)},
			{"hd", 1, poly([]string{"a"}, []typesystem.Type{listOf(varA)}, varA)},
			{"tl", 1, poly([]string{"a"}, []typesystem.Type{listOf(varA)}, listOf(varA))},
			{"length", 1, poly([]string{"a"}, []typesystem.Type{listOf(varA)}, intT)},
			{"element", 2, poly([]string{"a", "b"}, []typesystem.Type{intT, varA}, varB)},
			{"atom_to_list", 1, mono([]typesystem.Type{atomT}, strT)},
			{"list_to_atom", 1, mono([]typesystem.Type{strT}, atomT)},
			{"integer_to_list", 1, mono([]typesystem.Type{intT}, strT)},
			{"not", 1, mono([]typesystem.Type{boolT}, boolT)},
			{"print", 1, poly([]string{"a"}, []typesystem.Type{varA}, atomT)},
			{"error", 1, poly([]string{"a", "b"}, []typesystem.Type{varA}, varB)},
		},
		Operators: []Builtin{
			{"+", 2, mono([]typesystem.Type{intT, intT}, intT)},
			{"-", 2, mono([]typesystem.Type{intT, intT}, intT)},
			{"*", 2, mono([]typesystem.Type{intT, intT}, intT)},
			{"/", 2, mono([]typesystem.Type{floatT, floatT}, floatT)},
			{"div", 2, mono([]typesystem.Type{intT, intT}, intT)},
			{"rem", 2, mono([]typesystem.Type{intT, intT}, intT)},
			{"-", 1, mono([]typesystem.Type{intT}, intT)},
			{"==", 2, poly([]string{"a"}, []typesystem.Type{varA, varA}, boolT)},
			{"/=", 2, poly([]string{"a"}, []typesystem.Type{varA, varA}, boolT)},
			{"<", 2, poly([]string{"a"}, []typesystem.Type{varA, varA}, boolT)},
			{">", 2, poly([]string{"a"}, []typesystem.Type{varA, varA}, boolT)},
			{"=<", 2, poly([]string{"a"}, []typesystem.Type{varA, varA}, boolT)},
			{">=", 2, poly([]string{"a"}, []typesystem.Type{varA, varA}, boolT)},
			{"++", 2, poly([]string{"a"}, []typesystem.Type{listOf(varA), listOf(varA)}, listOf(varA))},
			{"andalso", 2, mono([]typesystem.Type{boolT, boolT}, boolT)},
			{"orelse", 2, mono([]typesystem.Type{boolT, boolT}, boolT)},
		},
	}
}
