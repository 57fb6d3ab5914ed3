package token

// Type identifies the lexical class of a token.
type Type string

// Token is a single lexical unit with its source position.
// Lexeme is the raw source text; Literal is the decoded value
// (identical to Lexeme except for string literals).
type Token struct {
	Type    Type
	Lexeme  string
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	IDENT    Type = "IDENT"
	NUMBER   Type = "NUMBER"
	STRING   Type = "STRING"
	TEMPLATE Type = "TEMPLATE"
	REGEX    Type = "REGEX"

	// Operators
	ASSIGN       Type = "="
	PLUS         Type = "+"
	MINUS        Type = "-"
	STAR         Type = "*"
	SLASH        Type = "/"
	PERCENT      Type = "%"
	BANG         Type = "!"
	LT           Type = "<"
	GT           Type = ">"
	LE           Type = "<="
	GE           Type = ">="
	EQ           Type = "=="
	NEQ          Type = "!="
	STRICT_EQ    Type = "==="
	STRICT_NEQ   Type = "!=="
	AND          Type = "&&"
	OR           Type = "||"
	NULLISH      Type = "??"
	ARROW        Type = "=>"
	PLUS_ASSIGN  Type = "+="
	MINUS_ASSIGN Type = "-="
	QUESTION     Type = "?"
	SPREAD       Type = "..."

	// Delimiters
	DOT       Type = "."
	COMMA     Type = ","
	SEMICOLON Type = ";"
	COLON     Type = ":"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"

	// Keywords
	IMPORT   Type = "IMPORT"
	EXPORT   Type = "EXPORT"
	FROM     Type = "FROM"
	AS       Type = "AS"
	DEFAULT  Type = "DEFAULT"
	VAR      Type = "VAR"
	LET      Type = "LET"
	CONST    Type = "CONST"
	FUNCTION Type = "FUNCTION"
	RETURN   Type = "RETURN"
	IF       Type = "IF"
	ELSE     Type = "ELSE"
	FOR      Type = "FOR"
	WHILE    Type = "WHILE"
	CLASS    Type = "CLASS"
	NEW      Type = "NEW"
	TYPEOF   Type = "TYPEOF"
	TRUE     Type = "TRUE"
	FALSE    Type = "FALSE"
	NULL     Type = "NULL"
	THIS     Type = "THIS"
)

var keywords = map[string]Type{
	"import":   IMPORT,
	"export":   EXPORT,
	"from":     FROM,
	"as":       AS,
	"default":  DEFAULT,
	"var":      VAR,
	"let":      LET,
	"const":    CONST,
	"function": FUNCTION,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"class":    CLASS,
	"new":      NEW,
	"typeof":   TYPEOF,
	"true":     TRUE,
	"false":    FALSE,
	"null":     NULL,
	"this":     THIS,
}

// LookupIdent maps an identifier to its keyword type, or IDENT.
// "from", "as" and "default" double as ordinary identifiers in most
// positions; the parser treats them contextually.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

// IsIdentLike reports whether a token can serve as an identifier name,
// covering contextual keywords that are valid variable names.
func IsIdentLike(t Type) bool {
	switch t {
	case IDENT, FROM, AS, DEFAULT:
		return true
	}
	return false
}
