package parser

import (
	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/token"
)

// parseJSXElement parses a JSX element in expression position. Raw text
// children are skipped; nested elements and {expr} containers are kept so
// namespace references inside them are still validated.
func (p *Parser) parseJSXElement() ast.Expression {
	el := &ast.JSXElement{Token: p.curToken}

	if !p.peekIsName() {
		p.peekError(token.IDENT)
		return nil
	}
	p.nextToken()
	el.Name = p.parseJSXName()
	if el.Name == nil {
		return nil
	}

	// Attributes, up to '/>' or '>'.
	for {
		if p.peekTokenIs(token.SLASH) {
			p.nextToken()
			if !p.expectPeek(token.GT) {
				return nil
			}
			return el
		}
		if p.peekTokenIs(token.GT) {
			p.nextToken()
			break
		}
		if p.peekTokenIs(token.EOF) {
			p.addError(diagnostics.ErrP001, el.Token, "unterminated JSX element")
			return el
		}
		p.nextToken()
		if attr := p.parseJSXAttribute(); attr != nil {
			el.Attributes = append(el.Attributes, attr)
		}
	}

	// Children, up to the closing tag.
	for {
		p.nextToken()
		switch {
		case p.curTokenIs(token.EOF):
			p.addError(diagnostics.ErrP001, el.Token, "unterminated JSX element")
			return el
		case p.curTokenIs(token.LT) && p.peekTokenIs(token.SLASH):
			for !p.curTokenIs(token.GT) && !p.curTokenIs(token.EOF) {
				p.nextToken()
			}
			return el
		case p.curTokenIs(token.LT):
			if child := p.parseJSXElement(); child != nil {
				el.Children = append(el.Children, child)
			}
		case p.curTokenIs(token.LBRACE):
			p.nextToken()
			if p.curTokenIs(token.RBRACE) {
				continue
			}
			expr := p.parseExpression(LOWEST)
			if expr != nil {
				el.Children = append(el.Children, expr)
			}
			if !p.expectPeek(token.RBRACE) {
				return el
			}
		default:
			// Raw text token; not meaningful to the linter.
		}
	}
}

// parseJSXName parses Tag or Ns.Member[.More], starting at the first
// name token.
func (p *Parser) parseJSXName() ast.Expression {
	var name ast.Expression = &ast.JSXIdentifier{Token: p.curToken, Value: p.curToken.Lexeme}
	for p.peekTokenIs(token.DOT) {
		p.nextToken() // '.'
		dotTok := p.curToken
		if !p.peekIsName() {
			p.peekError(token.IDENT)
			return nil
		}
		p.nextToken()
		name = &ast.JSXMemberExpression{
			Token:    dotTok,
			Object:   name,
			Property: &ast.JSXIdentifier{Token: p.curToken, Value: p.curToken.Lexeme},
		}
	}
	return name
}

// parseJSXAttribute parses one attribute starting at its first token.
// Supported forms: name, name="str", name={expr}, {...spread}. Anything
// else is skipped without a diagnostic; attribute syntax outside these
// forms carries nothing the linter validates.
func (p *Parser) parseJSXAttribute() *ast.JSXAttribute {
	if p.curTokenIs(token.LBRACE) {
		attr := &ast.JSXAttribute{Token: p.curToken}
		p.nextToken()
		if p.curTokenIs(token.SPREAD) {
			p.nextToken()
		}
		attr.Value = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
		return attr
	}

	if !isNameToken(p.curToken) {
		return nil
	}
	attr := &ast.JSXAttribute{Token: p.curToken, Name: p.curToken.Lexeme}
	if !p.peekTokenIs(token.ASSIGN) {
		return attr
	}
	p.nextToken() // '='
	switch p.peekToken.Type {
	case token.STRING:
		p.nextToken()
		attr.Value = &ast.Literal{Token: p.curToken, Kind: ast.LiteralString, Value: p.curToken.Literal}
	case token.LBRACE:
		p.nextToken() // '{'
		p.nextToken()
		attr.Value = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
	default:
		p.peekError(token.STRING)
		return nil
	}
	return attr
}
