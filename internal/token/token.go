package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE"

	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	STRING TokenType = "STRING"

	// Keywords
	MODULE  TokenType = "MODULE"
	INCLUDE TokenType = "INCLUDE"
	SPEC    TokenType = "SPEC"
	TYPE    TokenType = "TYPE"
	FORALL  TokenType = "FORALL"
	FN      TokenType = "FN"

	// Punctuation
	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	LBRACE TokenType = "{"
	RBRACE TokenType = "}"
	COMMA  TokenType = ","
	DOT    TokenType = "."
	SLASH  TokenType = "/"
	ARROW  TokenType = "->"
	DCOLON TokenType = "::"
	COLON  TokenType = ":"
)

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

var keywords = map[string]TokenType{
	"module":  MODULE,
	"include": INCLUDE,
	"spec":    SPEC,
	"type":    TYPE,
	"forall":  FORALL,
	"fn":      FN,
}

// LookupIdent returns the keyword token type for an identifier,
// or IDENT if it is not a keyword.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Position is a use-site location attached to diagnostics.
type Position struct {
	File   string
	Line   int
	Column int
}

func (t Token) Pos(file string) Position {
	return Position{File: file, Line: t.Line, Column: t.Column}
}
