package lexer

import (
	"github.com/funvibe/tyck/internal/pipeline"
	"github.com/funvibe/tyck/internal/token"
)

// LexerProcessor runs the lexer over the context's source code and
// buffers the full token stream.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	for {
		tok := l.NextToken()
		ctx.Tokens = append(ctx.Tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return ctx
}
