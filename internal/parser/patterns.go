package parser

import (
	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/token"
)

// parseBindingTarget parses a destructuring target starting at the
// current token: an identifier, object pattern or array pattern.
func (p *Parser) parseBindingTarget() ast.Node {
	switch {
	case token.IsIdentLike(p.curToken.Type):
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	case p.curTokenIs(token.LBRACE):
		return p.parseObjectPattern()
	case p.curTokenIs(token.LBRACKET):
		return p.parseArrayPattern()
	default:
		p.addError(diagnostics.ErrP001, p.curToken, "invalid binding target")
		return nil
	}
}

// parseBindingTargetWithDefault parses a binding target with an optional
// "= default" initializer.
func (p *Parser) parseBindingTargetWithDefault() ast.Node {
	target := p.parseBindingTarget()
	if target == nil {
		return nil
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken() // '='
		pat := &ast.AssignmentPattern{Token: p.curToken, Left: target}
		p.nextToken()
		pat.Right = p.parseExpression(LOWEST)
		return pat
	}
	return target
}

// parseObjectPattern parses { a, b: c, d: { e }, [k]: v, ...rest },
// leaving the parser on the closing '}'.
func (p *Parser) parseObjectPattern() ast.Node {
	pattern := &ast.ObjectPattern{Token: p.curToken}

	for {
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			return pattern
		}
		p.nextToken()

		if p.curTokenIs(token.SPREAD) {
			rest := &ast.RestElement{Token: p.curToken}
			p.nextToken()
			rest.Argument = p.parseBindingTarget()
			pattern.Rest = rest
			if !p.expectPeek(token.RBRACE) {
				return nil
			}
			return pattern
		}

		prop := &ast.Property{Token: p.curToken}
		switch {
		case p.curTokenIs(token.LBRACKET):
			prop.Computed = true
			p.nextToken()
			prop.Key = p.parseExpression(LOWEST)
			if !p.expectPeek(token.RBRACKET) {
				return nil
			}
		case p.curTokenIs(token.STRING):
			prop.Key = &ast.Literal{Token: p.curToken, Kind: ast.LiteralString, Value: p.curToken.Literal}
		case p.curTokenIs(token.NUMBER):
			prop.Key = &ast.Literal{Token: p.curToken, Kind: ast.LiteralNumber, Value: p.curToken.Lexeme}
		case isNameToken(p.curToken):
			prop.Key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		default:
			p.addError(diagnostics.ErrP001, p.curToken, "invalid destructuring key")
			return nil
		}

		if p.peekTokenIs(token.COLON) {
			p.nextToken() // ':'
			p.nextToken()
			prop.Value = p.parseBindingTarget()
			if prop.Value == nil {
				return nil
			}
		} else {
			prop.Shorthand = true
			prop.Value = prop.Key
		}

		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken() // '='
			def := &ast.AssignmentPattern{Token: p.curToken, Left: prop.Value}
			p.nextToken()
			def.Right = p.parseExpression(LOWEST)
			prop.Value = def
		}

		pattern.Properties = append(pattern.Properties, prop)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

// parseArrayPattern parses [a, , b = 1, ...rest], leaving the parser on
// the closing ']'.
func (p *Parser) parseArrayPattern() ast.Node {
	pattern := &ast.ArrayPattern{Token: p.curToken}

	for {
		if p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			return pattern
		}
		p.nextToken()

		switch {
		case p.curTokenIs(token.COMMA):
			// Hole; stay on the comma so the shared comma handling below
			// is skipped.
			pattern.Elements = append(pattern.Elements, nil)
			continue
		case p.curTokenIs(token.SPREAD):
			rest := &ast.RestElement{Token: p.curToken}
			p.nextToken()
			rest.Argument = p.parseBindingTarget()
			pattern.Elements = append(pattern.Elements, rest)
		default:
			el := p.parseBindingTargetWithDefault()
			if el == nil {
				return nil
			}
			pattern.Elements = append(pattern.Elements, el)
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}
