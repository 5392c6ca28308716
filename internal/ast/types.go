package ast

import (
	"github.com/funvibe/tyck/internal/token"
)

// NamedType is a bare type name: int, a, atom.
// Whether it denotes a constructor or a bound variable is decided
// during transformation, against the enclosing declaration's
// variable list.
type NamedType struct {
	Token token.Token
	Name  string
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// AppType is a type constructor application: list(a), map(k, v).
type AppType struct {
	Token token.Token // The constructor identifier token
	Name  string
	Args  []Type
}

func (at *AppType) typeNode()             {}
func (at *AppType) TokenLiteral() string  { return at.Token.Lexeme }
func (at *AppType) GetToken() token.Token { return at.Token }

// FuncType is a function type: (int, int) -> int, fn(a) -> b.
type FuncType struct {
	Token  token.Token
	Params []Type
	Return Type
}

func (ft *FuncType) typeNode()             {}
func (ft *FuncType) TokenLiteral() string  { return ft.Token.Lexeme }
func (ft *FuncType) GetToken() token.Token { return ft.Token }

// TupleType is a tuple type: {a, b}.
type TupleType struct {
	Token    token.Token
	Elements []Type
}

func (tt *TupleType) typeNode()             {}
func (tt *TupleType) TokenLiteral() string  { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token { return tt.Token }
