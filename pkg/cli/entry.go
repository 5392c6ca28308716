// Package cli implements the tyck command line entry point.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/funvibe/tyck/internal/catalog"
	"github.com/funvibe/tyck/internal/diagnostics"
	"github.com/funvibe/tyck/internal/modules"
	"github.com/funvibe/tyck/internal/symbols"
)

const usage = `usage: tyck check [-v] <source-dir> <module>...

Resolves the declarations of the listed dependency modules, in
order, into the standard symbol table and reports the result.
`

// Run executes the CLI and returns the process exit code.
func Run(args []string) int {
	if len(args) < 1 || args[0] != "check" {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "verbose resolution trace")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	sourceDir := fs.Arg(0)
	moduleNames := fs.Args()[1:]

	tab := symbols.StandardTable(catalog.Default())

	resolver := modules.NewResolver()
	resolver.Verbose = *verbose

	tab, err := resolver.Resolve(tab, sourceDir, moduleNames)
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnostics.Render(err))
		return 1
	}

	fmt.Printf("resolved %d module(s): %d functions, %d operators, %d types\n",
		len(moduleNames), tab.FunctionCount(), tab.OperatorCount(), tab.TypeCount())
	return 0
}
