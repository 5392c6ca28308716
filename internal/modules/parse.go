package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/tyck/internal/ast"
	"github.com/funvibe/tyck/internal/config"
	"github.com/funvibe/tyck/internal/lexer"
	"github.com/funvibe/tyck/internal/parser"
	"github.com/funvibe/tyck/internal/pipeline"
)

// ParseOptions configure ParseFile.
type ParseOptions struct {
	Verbose     bool
	IncludeDirs []string
}

// ParseFile lexes and parses one source file and splices the
// declarations of included headers in place of their include
// statements. Unreadable or malformed input aborts with the first
// diagnostic.
func ParseFile(path string, opts ParseOptions) (*ast.Program, error) {
	return parseFile(path, opts, map[string]bool{})
}

func parseFile(path string, opts ParseOptions, including map[string]bool) (*ast.Program, error) {
	if including[path] {
		return nil, fmt.Errorf("include cycle through %s", path)
	}
	including[path] = true
	defer delete(including, path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "tyck: parsing %s\n", path)
	}

	ctx := pipeline.NewPipelineContext(string(content))
	ctx.FilePath = path
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if err := ctx.FirstError(); err != nil {
		return nil, err
	}

	program := ctx.AstRoot
	var statements []ast.Statement
	for _, stmt := range program.Statements {
		inc, ok := stmt.(*ast.IncludeStatement)
		if !ok {
			statements = append(statements, stmt)
			continue
		}
		header, err := locateHeader(inc.Path, opts.IncludeDirs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		included, err := parseFile(header, opts, including)
		if err != nil {
			return nil, err
		}
		statements = append(statements, included.Statements...)
	}
	program.Statements = statements
	return program, nil
}

func locateHeader(name string, includeDirs []string) (string, error) {
	for _, dir := range includeDirs {
		candidate := filepath.Join(dir, name+config.HeaderFileExt)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("header %q not found in include dirs %v", name, includeDirs)
}
