package parser

import (
	"github.com/funvibe/tyck/internal/ast"
	"github.com/funvibe/tyck/internal/diagnostics"
	"github.com/funvibe/tyck/internal/pipeline"
	"github.com/funvibe/tyck/internal/token"
)

// Parser consumes the buffered token stream and produces the
// declaration-level AST. Anything that is not a module header,
// include, spec or type declaration is kept as a raw statement.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	ctx *pipeline.PipelineContext
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{tokens: tokens, ctx: ctx}
	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances when the next token has the wanted type and
// reports a diagnostic otherwise.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		"expected %s, got %s", t, p.peekToken.Type,
	))
	return false
}

func (p *Parser) errorf(code string, tok token.Token, format string, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, format, args...))
}

// skipToLineEnd consumes tokens up to (not including) the next
// newline or EOF. Used for raw statements and error recovery.
func (p *Parser) skipToLineEnd() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			if md, ok := stmt.(*ast.ModuleDeclaration); ok && program.Module == nil {
				program.Module = md
			}
			program.Statements = append(program.Statements, stmt)
		}

		// Every declaration ends at the line boundary.
		p.skipToLineEnd()
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
		}
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.MODULE:
		return p.parseModuleDeclaration()
	case token.INCLUDE:
		return p.parseIncludeStatement()
	case token.SPEC:
		return p.parseSpecStatement()
	case token.TYPE:
		return p.parseTypeDeclStatement()
	default:
		return &ast.RawStatement{Token: p.curToken}
	}
}

func (p *Parser) parseModuleDeclaration() ast.Statement {
	stmt := &ast.ModuleDeclaration{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Lexeme
	return stmt
}

func (p *Parser) parseIncludeStatement() ast.Statement {
	stmt := &ast.IncludeStatement{Token: p.curToken}
	if !p.peekTokenIs(token.STRING) {
		p.errorf(diagnostics.ErrP004, p.peekToken, "include expects a quoted header name")
		return nil
	}
	p.nextToken()
	stmt.Path = p.curToken.Lexeme
	return stmt
}
