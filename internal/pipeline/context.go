package pipeline

import (
	"github.com/funvibe/tyck/internal/ast"
	"github.com/funvibe/tyck/internal/diagnostics"
	"github.com/funvibe/tyck/internal/token"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext is the state threaded through the stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string
	Tokens     []token.Token
	AstRoot    *ast.Program
	Errors     []*diagnostics.Diagnostic
}

// NewPipelineContext creates a context for a source string.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// FirstError returns the first collected diagnostic, with the file
// path filled in, or nil when the run was clean.
func (ctx *PipelineContext) FirstError() error {
	if len(ctx.Errors) == 0 {
		return nil
	}
	err := ctx.Errors[0]
	if err.File == "" {
		err.File = ctx.FilePath
	}
	return err
}
