package symbols

import (
	"github.com/funvibe/tyck/internal/catalog"
	"github.com/funvibe/tyck/internal/config"
)

// StandardTable bootstraps a table from the builtin catalog.
// Builtin functions are inserted qualified under the core module;
// operators under their name and arity. The types namespace starts
// empty. Insertion follows catalog order, so a duplicate catalog
// entry would silently overwrite the earlier one.
func StandardTable(cat *catalog.Catalog) SymbolTable {
	tab := NewSymbolTable()
	for _, b := range cat.Functions {
		tab = tab.WithFunction(QualifiedRef(config.CoreModuleName, b.Name, b.Arity), b.Scheme)
	}
	for _, b := range cat.Operators {
		tab = tab.WithOperator(OperatorKey{Name: b.Name, Arity: b.Arity}, b.Scheme)
	}
	return tab
}
