package modules

import (
	"fmt"
	"os"

	"github.com/funvibe/tyck/internal/decl"
	"github.com/funvibe/tyck/internal/symbols"
)

// Resolver folds the declarations of dependency modules into a
// symbol table. Resolution is strictly sequential: module order is
// observable, since a later module's declarations overwrite earlier
// ones sharing a key.
type Resolver struct {
	Verbose bool
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve builds the search paths once, then processes moduleNames
// left to right: locate, parse, transform, extend. Any failure
// aborts the whole call; a partial table is never returned. An empty
// module list returns tab unchanged.
func (r *Resolver) Resolve(tab symbols.SymbolTable, sourceDir string, moduleNames []string) (symbols.SymbolTable, error) {
	if len(moduleNames) == 0 {
		return tab, nil
	}

	searchPaths, err := BuildSearchPaths(sourceDir)
	if err != nil {
		return symbols.SymbolTable{}, err
	}

	for _, name := range moduleNames {
		srcPath, includeDir, err := Locate(searchPaths, name)
		if err != nil {
			return symbols.SymbolTable{}, err
		}
		if r.Verbose {
			fmt.Fprintf(os.Stderr, "tyck: resolving module %s from %s\n", name, srcPath)
		}

		program, err := ParseFile(srcPath, ParseOptions{Verbose: r.Verbose, IncludeDirs: []string{includeDir}})
		if err != nil {
			return symbols.SymbolTable{}, err
		}

		forms := decl.Transform(srcPath, program)
		tab = symbols.Extend(forms, name, tab)
	}
	return tab, nil
}
