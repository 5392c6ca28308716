package ast

import (
	"github.com/funvibe/tyck/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents one top-level form.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Type is a Node that represents a type expression.
type Type interface {
	Node
	typeNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Module     *ModuleDeclaration
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ModuleDeclaration names the module a file belongs to.
// module math
type ModuleDeclaration struct {
	Token token.Token // The 'module' token
	Name  string
}

func (md *ModuleDeclaration) statementNode()        {}
func (md *ModuleDeclaration) TokenLiteral() string  { return md.Token.Lexeme }
func (md *ModuleDeclaration) GetToken() token.Token { return md.Token }

// IncludeStatement pulls a header's declarations into the file.
// include "records"
type IncludeStatement struct {
	Token token.Token // The 'include' token
	Path  string
}

func (is *IncludeStatement) statementNode()        {}
func (is *IncludeStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IncludeStatement) GetToken() token.Token { return is.Token }

// SpecStatement declares a function signature.
// spec map/2 :: forall a b . (fn(a) -> b, list(a)) -> list(b)
type SpecStatement struct {
	Token token.Token // The 'spec' token
	Name  string
	Arity int
	Vars  []string // bound type variables from the forall prefix
	Type  Type
}

func (ss *SpecStatement) statementNode()        {}
func (ss *SpecStatement) TokenLiteral() string  { return ss.Token.Lexeme }
func (ss *SpecStatement) GetToken() token.Token { return ss.Token }

// TypeDeclStatement declares a named type.
// type pair(a, b) :: {a, b}
type TypeDeclStatement struct {
	Token  token.Token // The 'type' token
	Name   string
	Params []string // bound type variables, also the declaration's arity
	Type   Type
}

func (td *TypeDeclStatement) statementNode()        {}
func (td *TypeDeclStatement) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TypeDeclStatement) GetToken() token.Token { return td.Token }

// RawStatement is any top-level form the resolver does not care
// about (function bodies, attributes). The parser keeps only its
// first token.
type RawStatement struct {
	Token token.Token
}

func (rs *RawStatement) statementNode()        {}
func (rs *RawStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *RawStatement) GetToken() token.Token { return rs.Token }
