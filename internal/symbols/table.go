// Package symbols implements the cross-module symbol table the type
// checker reads function, operator and type signatures from.
//
// A SymbolTable is a persistent value: every extension returns a new
// table and leaves the old one intact, so tables handed to one
// consumer are never invalidated by another consumer extending a
// different copy. No synchronization is needed to share them.
package symbols

import (
	"github.com/funvibe/tyck/internal/typesystem"
)

// SymbolTable holds three independent namespaces keyed by reference.
// A function and a type may share the same Reference without
// conflict; within one namespace, inserting an existing key replaces
// its value.
type SymbolTable struct {
	functions *persistentMap
	operators *persistentMap
	types     *persistentMap
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() SymbolTable {
	return SymbolTable{
		functions: emptyMap(),
		operators: emptyMap(),
		types:     emptyMap(),
	}
}

// FindFunction looks up a function signature. Pure; absence is not
// an error.
func (t SymbolTable) FindFunction(ref Reference) (typesystem.Scheme, bool) {
	return t.functions.Get(ref)
}

// FindOperator looks up an operator signature by name and arity.
func (t SymbolTable) FindOperator(key OperatorKey) (typesystem.Scheme, bool) {
	return t.operators.Get(key)
}

// FindType looks up a type declaration.
func (t SymbolTable) FindType(ref Reference) (typesystem.Scheme, bool) {
	return t.types.Get(ref)
}

// WithFunction returns a table with the function signature bound.
func (t SymbolTable) WithFunction(ref Reference, s typesystem.Scheme) SymbolTable {
	return SymbolTable{
		functions: t.functions.Put(ref, s),
		operators: t.operators,
		types:     t.types,
	}
}

// WithOperator returns a table with the operator signature bound.
func (t SymbolTable) WithOperator(key OperatorKey, s typesystem.Scheme) SymbolTable {
	return SymbolTable{
		functions: t.functions,
		operators: t.operators.Put(key, s),
		types:     t.types,
	}
}

// WithType returns a table with the type declaration bound.
func (t SymbolTable) WithType(ref Reference, s typesystem.Scheme) SymbolTable {
	return SymbolTable{
		functions: t.functions,
		operators: t.operators,
		types:     t.types.Put(ref, s),
	}
}

// FunctionCount returns the number of function signatures.
func (t SymbolTable) FunctionCount() int { return t.functions.Len() }

// OperatorCount returns the number of operator signatures.
func (t SymbolTable) OperatorCount() int { return t.operators.Len() }

// TypeCount returns the number of type declarations.
func (t SymbolTable) TypeCount() int { return t.types.Len() }
