package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/nslint/internal/token"
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

func (l *Lexer) peekCharAt(offset int) rune {
	pos := l.readPosition
	for i := 0; i < offset; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, w := utf8.DecodeRuneInString(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			if l.peekCharAt(1) == '=' {
				tok = l.makeToken(token.STRICT_EQ, "===")
				l.readChar()
				l.readChar()
			} else {
				tok = l.makeToken(token.EQ, "==")
				l.readChar()
			}
		} else if l.peekChar() == '>' {
			tok = l.makeToken(token.ARROW, "=>")
			l.readChar()
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '!':
		if l.peekChar() == '=' {
			if l.peekCharAt(1) == '=' {
				tok = l.makeToken(token.STRICT_NEQ, "!==")
				l.readChar()
				l.readChar()
			} else {
				tok = l.makeToken(token.NEQ, "!=")
				l.readChar()
			}
		} else {
			tok = newToken(token.BANG, l.ch, l.line, l.column)
		}
	case '+':
		if l.peekChar() == '=' {
			tok = l.makeToken(token.PLUS_ASSIGN, "+=")
			l.readChar()
		} else {
			tok = newToken(token.PLUS, l.ch, l.line, l.column)
		}
	case '-':
		if l.peekChar() == '=' {
			tok = l.makeToken(token.MINUS_ASSIGN, "-=")
			l.readChar()
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case '*':
		tok = newToken(token.STAR, l.ch, l.line, l.column)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.line, l.column)
	case '<':
		if l.peekChar() == '=' {
			tok = l.makeToken(token.LE, "<=")
			l.readChar()
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.makeToken(token.GE, ">=")
			l.readChar()
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case '&':
		if l.peekChar() == '&' {
			tok = l.makeToken(token.AND, "&&")
			l.readChar()
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	case '|':
		if l.peekChar() == '|' {
			tok = l.makeToken(token.OR, "||")
			l.readChar()
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	case '?':
		if l.peekChar() == '?' {
			tok = l.makeToken(token.NULLISH, "??")
			l.readChar()
		} else {
			tok = newToken(token.QUESTION, l.ch, l.line, l.column)
		}
	case '.':
		if l.peekChar() == '.' && l.peekCharAt(1) == '.' {
			tok = l.makeToken(token.SPREAD, "...")
			l.readChar()
			l.readChar()
		} else {
			tok = newToken(token.DOT, l.ch, l.line, l.column)
		}
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '\'', '"':
		return l.readString(l.ch)
	case '`':
		return l.readTemplate()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Literal: "", Line: l.line, Column: l.column}
	default:
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar() // '*'
				l.readChar() // '/'
			}
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{
		Type:    token.LookupIdent(lexeme),
		Lexeme:  lexeme,
		Literal: lexeme,
		Line:    line,
		Column:  col,
	}
}

func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	start := l.position
	for unicode.IsDigit(l.ch) || l.ch == '.' || l.ch == 'x' || l.ch == 'X' ||
		(l.ch >= 'a' && l.ch <= 'f') || (l.ch >= 'A' && l.ch <= 'F') {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.NUMBER, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col}
}

// readString scans a single- or double-quoted string literal. The returned
// token's Literal holds the decoded characters without the quotes.
func (l *Lexer) readString(quote rune) token.Token {
	line, col := l.line, l.column
	start := l.position
	var out []rune
	l.readChar() // opening quote
	for l.ch != quote {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:l.position], Literal: "unterminated string", Line: line, Column: col}
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 0:
				return token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:l.position], Literal: "unterminated string", Line: line, Column: col}
			default:
				out = append(out, l.ch)
			}
			l.readChar()
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}
	l.readChar() // closing quote
	return token.Token{Type: token.STRING, Lexeme: l.input[start:l.position], Literal: string(out), Line: line, Column: col}
}

// readTemplate scans a backtick template literal. Interpolations are kept
// as raw text; the linter does not look inside templates.
func (l *Lexer) readTemplate() token.Token {
	line, col := l.line, l.column
	start := l.position
	l.readChar() // opening backtick
	for l.ch != '`' {
		if l.ch == 0 {
			return token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:l.position], Literal: "unterminated template", Line: line, Column: col}
		}
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	l.readChar() // closing backtick
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.TEMPLATE, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col}
}

func newToken(tokenType token.Type, ch rune, line, column int) token.Token {
	return token.Token{Type: tokenType, Lexeme: string(ch), Literal: string(ch), Line: line, Column: column}
}

func (l *Lexer) makeToken(tokenType token.Type, lexeme string) token.Token {
	return token.Token{Type: tokenType, Lexeme: lexeme, Literal: lexeme, Line: l.line, Column: l.column}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}
