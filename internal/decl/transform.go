package decl

import (
	"github.com/funvibe/tyck/internal/ast"
	"github.com/funvibe/tyck/internal/typesystem"
)

// Transform maps a parsed program to declaration forms. It is a
// deterministic, pure function of its inputs: statements map
// one-to-one, in source order.
func Transform(sourcePath string, program *ast.Program) []Form {
	forms := make([]Form, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.SpecStatement:
			forms = append(forms, FunctionSpec{
				Name:   s.Name,
				Arity:  s.Arity,
				Scheme: typesystem.NewScheme(s.Vars, buildType(s.Type, varSet(s.Vars))),
				Loc:    s.GetToken().Pos(sourcePath),
			})
		case *ast.TypeDeclStatement:
			forms = append(forms, TypeDecl{
				Name:   s.Name,
				Scheme: typesystem.NewScheme(s.Params, buildType(s.Type, varSet(s.Params))),
				Loc:    s.GetToken().Pos(sourcePath),
			})
		default:
			forms = append(forms, Other{Loc: stmt.GetToken().Pos(sourcePath)})
		}
	}
	return forms
}

func varSet(vars []string) map[string]bool {
	set := make(map[string]bool, len(vars))
	for _, v := range vars {
		set[v] = true
	}
	return set
}

// buildType converts a type expression to the typesystem
// representation. A bare name is a variable iff it is bound by the
// enclosing declaration; everything else is a constructor.
func buildType(t ast.Type, bound map[string]bool) typesystem.Type {
	switch tt := t.(type) {
	case *ast.NamedType:
		if bound[tt.Name] {
			return typesystem.TVar{Name: tt.Name}
		}
		return typesystem.TCon{Name: tt.Name}
	case *ast.AppType:
		args := make([]typesystem.Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = buildType(a, bound)
		}
		return typesystem.TApp{Constructor: typesystem.TCon{Name: tt.Name}, Args: args}
	case *ast.FuncType:
		params := make([]typesystem.Type, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = buildType(p, bound)
		}
		return typesystem.TFunc{Params: params, ReturnType: buildType(tt.Return, bound)}
	case *ast.TupleType:
		elems := make([]typesystem.Type, len(tt.Elements))
		for i, e := range tt.Elements {
			elems[i] = buildType(e, bound)
		}
		return typesystem.TTuple{Elements: elems}
	default:
		return nil
	}
}
