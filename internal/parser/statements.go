package parser

import (
	"strconv"

	"github.com/funvibe/tyck/internal/ast"
	"github.com/funvibe/tyck/internal/diagnostics"
	"github.com/funvibe/tyck/internal/token"
)

// spec name/arity :: [forall a b .] typeexpr
func (p *Parser) parseSpecStatement() ast.Statement {
	stmt := &ast.SpecStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Lexeme

	if !p.expectPeek(token.SLASH) {
		return nil
	}
	if !p.expectPeek(token.INT) {
		return nil
	}
	arity, err := strconv.Atoi(p.curToken.Lexeme)
	if err != nil || arity < 0 {
		p.errorf(diagnostics.ErrP002, p.curToken, "invalid arity %q", p.curToken.Lexeme)
		return nil
	}
	stmt.Arity = arity

	if !p.expectPeek(token.DCOLON) {
		return nil
	}

	if p.peekTokenIs(token.FORALL) {
		p.nextToken()
		for p.peekTokenIs(token.IDENT) {
			p.nextToken()
			stmt.Vars = append(stmt.Vars, p.curToken.Lexeme)
		}
		if len(stmt.Vars) == 0 {
			p.errorf(diagnostics.ErrP002, p.curToken, "forall needs at least one type variable")
			return nil
		}
		if !p.expectPeek(token.DOT) {
			return nil
		}
	}

	p.nextToken()
	stmt.Type = p.parseTypeExpr()
	if stmt.Type == nil {
		return nil
	}
	return stmt
}

// type name(a, b) :: typeexpr
func (p *Parser) parseTypeDeclStatement() ast.Statement {
	stmt := &ast.TypeDeclStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Lexeme

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		for p.peekTokenIs(token.IDENT) {
			p.nextToken()
			stmt.Params = append(stmt.Params, p.curToken.Lexeme)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		if len(stmt.Params) == 0 {
			p.errorf(diagnostics.ErrP003, p.curToken, "empty type parameter list")
			return nil
		}
	}

	if !p.expectPeek(token.DCOLON) {
		return nil
	}

	p.nextToken()
	stmt.Type = p.parseTypeExpr()
	if stmt.Type == nil {
		return nil
	}
	return stmt
}
