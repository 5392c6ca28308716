package parser_test

import (
	"testing"

	"github.com/funvibe/tyck/internal/ast"
	"github.com/funvibe/tyck/internal/lexer"
	"github.com/funvibe/tyck/internal/parser"
	"github.com/funvibe/tyck/internal/pipeline"
)

func parse(t *testing.T, input string) *pipeline.PipelineContext {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	return ctx
}

func parseOK(t *testing.T, input string) *ast.Program {
	t.Helper()
	ctx := parse(t, input)
	if len(ctx.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	return ctx.AstRoot
}

func TestParseSpec(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		specName string
		arity    int
		vars     []string
		typeRepr string
	}{
		{"monomorphic", "spec add/2 :: (int, int) -> int", "add", 2, nil, "*ast.FuncType"},
		{"zero_arity", "spec now/0 :: () -> int", "now", 0, nil, "*ast.FuncType"},
		{"forall", "spec id/1 :: forall a . (a) -> a", "id", 1, []string{"a"}, "*ast.FuncType"},
		{"forall_multi", "spec map/2 :: forall a b . (fn(a) -> b, list(a)) -> list(b)", "map", 2, []string{"a", "b"}, "*ast.FuncType"},
		{"bare_arrow", "spec inc/1 :: int -> int", "inc", 1, nil, "*ast.FuncType"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			program := parseOK(t, tc.input)
			if len(program.Statements) != 1 {
				t.Fatalf("statements = %d, want 1", len(program.Statements))
			}
			spec, ok := program.Statements[0].(*ast.SpecStatement)
			if !ok {
				t.Fatalf("statement is %T, want *ast.SpecStatement", program.Statements[0])
			}
			if spec.Name != tc.specName || spec.Arity != tc.arity {
				t.Errorf("spec = %s/%d, want %s/%d", spec.Name, spec.Arity, tc.specName, tc.arity)
			}
			if len(spec.Vars) != len(tc.vars) {
				t.Errorf("vars = %v, want %v", spec.Vars, tc.vars)
			}
			if _, ok := spec.Type.(*ast.FuncType); !ok {
				t.Errorf("type is %T, want %s", spec.Type, tc.typeRepr)
			}
		})
	}
}

func TestParseTypeDecl(t *testing.T) {
	program := parseOK(t, "type pair(a, b) :: {a, b}")
	td, ok := program.Statements[0].(*ast.TypeDeclStatement)
	if !ok {
		t.Fatalf("statement is %T", program.Statements[0])
	}
	if td.Name != "pair" {
		t.Errorf("name = %s", td.Name)
	}
	if len(td.Params) != 2 || td.Params[0] != "a" || td.Params[1] != "b" {
		t.Errorf("params = %v", td.Params)
	}
	tuple, ok := td.Type.(*ast.TupleType)
	if !ok {
		t.Fatalf("type is %T, want *ast.TupleType", td.Type)
	}
	if len(tuple.Elements) != 2 {
		t.Errorf("tuple elements = %d", len(tuple.Elements))
	}
}

func TestParseNullaryTypeDecl(t *testing.T) {
	program := parseOK(t, "type counter :: int")
	td := program.Statements[0].(*ast.TypeDeclStatement)
	if len(td.Params) != 0 {
		t.Errorf("params = %v, want none", td.Params)
	}
	if named, ok := td.Type.(*ast.NamedType); !ok || named.Name != "int" {
		t.Errorf("type = %v", td.Type)
	}
}

func TestParseModuleAndInclude(t *testing.T) {
	program := parseOK(t, "module math\ninclude \"records\"\nspec f/1 :: int -> int")
	if program.Module == nil || program.Module.Name != "math" {
		t.Fatalf("module = %v", program.Module)
	}
	if len(program.Statements) != 3 {
		t.Fatalf("statements = %d, want 3", len(program.Statements))
	}
	inc, ok := program.Statements[1].(*ast.IncludeStatement)
	if !ok || inc.Path != "records" {
		t.Errorf("include = %v", program.Statements[1])
	}
}

func TestRawStatementsIgnored(t *testing.T) {
	input := "module m\nfun add(x, y) { x + y }\nspec add/2 :: (int, int) -> int"
	program := parseOK(t, input)
	if len(program.Statements) != 3 {
		t.Fatalf("statements = %d, want 3", len(program.Statements))
	}
	if _, ok := program.Statements[1].(*ast.RawStatement); !ok {
		t.Errorf("statement 1 is %T, want *ast.RawStatement", program.Statements[1])
	}
	if _, ok := program.Statements[2].(*ast.SpecStatement); !ok {
		t.Errorf("statement 2 is %T, want *ast.SpecStatement", program.Statements[2])
	}
}

func TestParseNestedTypes(t *testing.T) {
	program := parseOK(t, "spec choose/1 :: forall a . (list({a, int})) -> a")
	spec := program.Statements[0].(*ast.SpecStatement)
	fn := spec.Type.(*ast.FuncType)
	if len(fn.Params) != 1 {
		t.Fatalf("params = %d", len(fn.Params))
	}
	app, ok := fn.Params[0].(*ast.AppType)
	if !ok || app.Name != "list" {
		t.Fatalf("param = %v", fn.Params[0])
	}
	if _, ok := app.Args[0].(*ast.TupleType); !ok {
		t.Errorf("arg = %T, want *ast.TupleType", app.Args[0])
	}
}

func TestArrowRightAssociative(t *testing.T) {
	program := parseOK(t, "spec curry/1 :: int -> int -> int")
	spec := program.Statements[0].(*ast.SpecStatement)
	outer := spec.Type.(*ast.FuncType)
	if _, ok := outer.Return.(*ast.FuncType); !ok {
		t.Errorf("return = %T, want *ast.FuncType", outer.Return)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"spec_missing_arity", "spec f :: int -> int"},
		{"spec_bad_type", "spec f/1 :: ->"},
		{"type_unclosed_tuple", "type t :: {int, "},
		{"include_no_string", "include records"},
		{"paren_list_no_arrow", "spec f/1 :: (int, int)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := parse(t, tc.input)
			if len(ctx.Errors) == 0 {
				t.Errorf("expected a diagnostic for %q", tc.input)
			}
		})
	}
}
