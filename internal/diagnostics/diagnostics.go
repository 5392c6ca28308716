// Package diagnostics carries positioned, coded errors produced by
// the lexer, the parser and the resolver.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/tyck/internal/token"
)

// Error codes. Stable identifiers so tooling can match on them.
const (
	ErrL001 = "L001" // illegal character
	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // malformed spec declaration
	ErrP003 = "P003" // malformed type declaration
	ErrP004 = "P004" // malformed include
)

// Diagnostic is one positioned error.
type Diagnostic struct {
	Code    string
	Message string
	File    string
	Line    int
	Column  int
}

func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", d.File, d.Line, d.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("%d:%d: [%s] %s", d.Line, d.Column, d.Code, d.Message)
}

// NewError builds a diagnostic positioned at the given token.
func NewError(code string, tok token.Token, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}
