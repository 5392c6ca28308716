package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/tyck/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	// Comments run to end of line; the newline itself is a token.
	for l.ch == '#' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		l.skipWhitespace()
	}

	var tok token.Token

	switch l.ch {
	case '\n':
		tok = l.newToken(token.NEWLINE, "\\n")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '.':
		tok = l.newToken(token.DOT, ".")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = l.newToken(token.ARROW, "->")
		} else {
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = l.newToken(token.DCOLON, "::")
		} else {
			tok = l.newToken(token.COLON, ":")
		}
	case '"':
		line, col := l.line, l.column
		tok = token.Token{Type: token.STRING, Lexeme: l.readString(), Line: line, Column: col}
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
	default:
		if isIdentStart(l.ch) {
			line, col := l.line, l.column
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Lexeme: ident, Line: line, Column: col}
		}
		if unicode.IsDigit(l.ch) {
			line, col := l.line, l.column
			return token.Token{Type: token.INT, Lexeme: l.readNumber(), Line: line, Column: col}
		}
		tok = l.newToken(token.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(tokenType token.TokenType, lexeme string) token.Token {
	return token.Token{Type: tokenType, Lexeme: lexeme, Line: l.line, Column: l.column}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString consumes a double-quoted string and returns its
// contents. There are no escapes in include paths.
func (l *Lexer) readString() string {
	l.readChar() // consume opening quote
	start := l.position
	for l.ch != '"' && l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}
