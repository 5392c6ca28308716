package symbols

import (
	"github.com/funvibe/tyck/internal/decl"
)

// Extend folds one module's declaration forms into the table.
// module tags the inserted keys: empty means local (unqualified)
// references, anything else yields qualified references. The fold is
// pure and strictly in form order, so a later declaration of the
// same key wins.
func Extend(forms []decl.Form, module string, tab SymbolTable) SymbolTable {
	for _, form := range forms {
		switch f := form.(type) {
		case decl.FunctionSpec:
			tab = tab.WithFunction(ref(module, f.Name, f.Arity), f.Scheme)
		case decl.TypeDecl:
			tab = tab.WithType(ref(module, f.Name, f.Scheme.Arity()), f.Scheme)
		case decl.Other:
			// ignored
		}
	}
	return tab
}

func ref(module, name string, arity int) Reference {
	if module == "" {
		return LocalRef(name, arity)
	}
	return QualifiedRef(module, name, arity)
}
