package parser

import (
	"fmt"

	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/pipeline"
	"github.com/funvibe/nslint/internal/token"
)

// MaxRecursionDepth bounds nested expression parsing so pathological
// inputs degrade to a diagnostic instead of a stack overflow.
const MaxRecursionDepth = 200

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Operator precedence levels, lowest binds weakest.
const (
	LOWEST int = iota
	ASSIGNMENT
	CONDITIONAL
	NULLISH
	LOGIC_OR
	LOGIC_AND
	EQUALITY
	COMPARISON
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.Type]int{
	token.ASSIGN:       ASSIGNMENT,
	token.PLUS_ASSIGN:  ASSIGNMENT,
	token.MINUS_ASSIGN: ASSIGNMENT,
	token.ARROW:        ASSIGNMENT,
	token.QUESTION:     CONDITIONAL,
	token.NULLISH:      NULLISH,
	token.OR:           LOGIC_OR,
	token.AND:          LOGIC_AND,
	token.EQ:           EQUALITY,
	token.NEQ:          EQUALITY,
	token.STRICT_EQ:    EQUALITY,
	token.STRICT_NEQ:   EQUALITY,
	token.LT:           COMPARISON,
	token.GT:           COMPARISON,
	token.LE:           COMPARISON,
	token.GE:           COMPARISON,
	token.PLUS:         SUM,
	token.MINUS:        SUM,
	token.STAR:         PRODUCT,
	token.SLASH:        PRODUCT,
	token.PERCENT:      PRODUCT,
	token.DOT:          CALL,
	token.LBRACKET:     CALL,
	token.LPAREN:       CALL,
}

type Parser struct {
	ctx    *pipeline.PipelineContext
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	depth               int
	inRecursionRecovery bool
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{ctx: ctx, tokens: tokens}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.FROM:     p.parseIdentifier,
		token.AS:       p.parseIdentifier,
		token.DEFAULT:  p.parseIdentifier,
		token.THIS:     p.parseIdentifier,
		token.NUMBER:   p.parseNumberLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TEMPLATE: p.parseTemplateLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.NULL:     p.parseNullLiteral,
		token.BANG:     p.parseUnaryExpression,
		token.MINUS:    p.parseUnaryExpression,
		token.PLUS:     p.parseUnaryExpression,
		token.TYPEOF:   p.parseUnaryExpression,
		token.NEW:      p.parseUnaryExpression,
		token.LPAREN:   p.parseGroupedOrArrow,
		token.LBRACKET: p.parseArrayExpression,
		token.LBRACE:   p.parseObjectExpression,
		token.FUNCTION: p.parseFunctionExpression,
		token.LT:       p.parseJSXElement,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:         p.parseBinaryExpression,
		token.MINUS:        p.parseBinaryExpression,
		token.STAR:         p.parseBinaryExpression,
		token.SLASH:        p.parseBinaryExpression,
		token.PERCENT:      p.parseBinaryExpression,
		token.EQ:           p.parseBinaryExpression,
		token.NEQ:          p.parseBinaryExpression,
		token.STRICT_EQ:    p.parseBinaryExpression,
		token.STRICT_NEQ:   p.parseBinaryExpression,
		token.LT:           p.parseBinaryExpression,
		token.GT:           p.parseBinaryExpression,
		token.LE:           p.parseBinaryExpression,
		token.GE:           p.parseBinaryExpression,
		token.AND:          p.parseBinaryExpression,
		token.OR:           p.parseBinaryExpression,
		token.NULLISH:      p.parseBinaryExpression,
		token.DOT:          p.parseMemberExpression,
		token.LBRACKET:     p.parseComputedMemberExpression,
		token.LPAREN:       p.parseCallExpression,
		token.QUESTION:     p.parseConditionalExpression,
		token.ASSIGN:       p.parseAssignmentExpression,
		token.PLUS_ASSIGN:  p.parseAssignmentExpression,
		token.MINUS_ASSIGN: p.parseAssignmentExpression,
		token.ARROW:        p.parseSingleParamArrow,
	}

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

// tokenAt peeks an arbitrary distance ahead of peekToken without
// consuming anything. Offset 0 is the token after peekToken.
func (p *Parser) tokenAt(offset int) token.Token {
	idx := p.pos + offset
	if idx < len(p.tokens) {
		return p.tokens[idx]
	}
	return token.Token{Type: token.EOF}
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) addError(code diagnostics.ErrorCode, tok token.Token, msg string) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, msg))
}

func (p *Parser) peekError(t token.Type) {
	p.addError(diagnostics.ErrP001, p.peekToken,
		fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	if tok.Type == token.ILLEGAL && (tok.Literal == "unterminated string" || tok.Literal == "unterminated template") {
		p.addError(diagnostics.ErrP003, tok, tok.Literal)
		return
	}
	p.addError(diagnostics.ErrP001, tok, fmt.Sprintf("unexpected token %q", tok.Lexeme))
}

// skipToStatementBoundary advances past the current statement to avoid a
// cascade of follow-on errors.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.SEMICOLON) &&
		!p.curTokenIs(token.RBRACE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// ParseProgram parses the whole token stream into a Program node.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{File: p.ctx.File}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// ParserProcessor adapts the parser to the pipeline.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.TokenStream, ctx)
	ctx.AstRoot = p.ParseProgram()
	return ctx
}
