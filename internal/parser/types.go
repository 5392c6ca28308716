package parser

import (
	"github.com/funvibe/tyck/internal/ast"
	"github.com/funvibe/tyck/internal/diagnostics"
	"github.com/funvibe/tyck/internal/token"
)

// parseTypeExpr parses a full type expression with curToken on its
// first token, leaving curToken on its last token. Arrows are
// right-associative: a -> b -> c parses as a -> (b -> c).
func (p *Parser) parseTypeExpr() ast.Type {
	if p.curTokenIs(token.LPAREN) {
		tok := p.curToken
		params := p.parseParenTypeList()
		if params == nil {
			return nil
		}
		if p.peekTokenIs(token.ARROW) {
			p.nextToken()
			p.nextToken()
			ret := p.parseTypeExpr()
			if ret == nil {
				return nil
			}
			return &ast.FuncType{Token: tok, Params: params, Return: ret}
		}
		if len(params) == 1 {
			// Plain grouping: (int)
			return params[0]
		}
		p.errorf(diagnostics.ErrP001, p.peekToken, "expected '->' after parameter list")
		return nil
	}

	left := p.parseTypePrimary()
	if left == nil {
		return nil
	}
	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ret := p.parseTypeExpr()
		if ret == nil {
			return nil
		}
		return &ast.FuncType{Token: left.GetToken(), Params: []ast.Type{left}, Return: ret}
	}
	return left
}

func (p *Parser) parseTypePrimary() ast.Type {
	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseTupleType()
	case token.FN:
		return p.parseFnType()
	case token.IDENT:
		tok := p.curToken
		name := p.curToken.Lexeme
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			args := p.parseParenTypeList()
			if args == nil {
				return nil
			}
			return &ast.AppType{Token: tok, Name: name, Args: args}
		}
		return &ast.NamedType{Token: tok, Name: name}
	default:
		p.errorf(diagnostics.ErrP001, p.curToken, "expected a type, got %s", p.curToken.Type)
		return nil
	}
}

// parseParenTypeList parses "(t1, t2, ...)" with curToken on the
// opening paren, leaving curToken on the closing paren. An empty
// list "()" is allowed (nullary functions).
func (p *Parser) parseParenTypeList() []ast.Type {
	types := []ast.Type{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return types
	}
	p.nextToken()
	for {
		t := p.parseTypeExpr()
		if t == nil {
			return nil
		}
		types = append(types, t)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return types
}

// {t1, t2, ...}
func (p *Parser) parseTupleType() ast.Type {
	tuple := &ast.TupleType{Token: p.curToken}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return tuple
	}
	p.nextToken()
	for {
		t := p.parseTypeExpr()
		if t == nil {
			return nil
		}
		tuple.Elements = append(tuple.Elements, t)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return tuple
}

// fn(t1, t2) -> ret
func (p *Parser) parseFnType() ast.Type {
	tok := p.curToken
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParenTypeList()
	if params == nil {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	ret := p.parseTypeExpr()
	if ret == nil {
		return nil
	}
	return &ast.FuncType{Token: tok, Params: params, Return: ret}
}
