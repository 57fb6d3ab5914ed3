package parser

import (
	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.IMPORT:
		return p.parseImportDeclaration()
	case token.EXPORT:
		return p.parseExportDeclaration()
	case token.VAR, token.LET, token.CONST:
		return p.parseVariableDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseImportDeclaration handles all import forms:
//
//	import "m"
//	import d from "m"
//	import * as ns from "m"
//	import { a, b as c } from "m"
//	import d, * as ns from "m"
//	import d, { a } from "m"
func (p *Parser) parseImportDeclaration() ast.Statement {
	decl := &ast.ImportDeclaration{Token: p.curToken}

	// Side-effect import: no specifiers.
	if p.peekTokenIs(token.STRING) {
		p.nextToken()
		decl.Source = &ast.Literal{Token: p.curToken, Kind: ast.LiteralString, Value: p.curToken.Literal}
		return decl
	}

	// Default specifier.
	if token.IsIdentLike(p.peekToken.Type) && p.peekToken.Type != token.DEFAULT {
		p.nextToken()
		local := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		decl.Specifiers = append(decl.Specifiers, &ast.ImportSpecifier{
			Token: p.curToken,
			Kind:  ast.ImportDefault,
			Local: local,
		})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	switch p.peekToken.Type {
	case token.STAR:
		p.nextToken() // '*'
		starTok := p.curToken
		if !p.expectPeek(token.AS) {
			p.skipToStatementBoundary()
			return nil
		}
		if !p.peekIdentLike() {
			p.peekError(token.IDENT)
			p.skipToStatementBoundary()
			return nil
		}
		p.nextToken()
		decl.Specifiers = append(decl.Specifiers, &ast.ImportSpecifier{
			Token: starTok,
			Kind:  ast.ImportNamespace,
			Local: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		})
	case token.LBRACE:
		p.nextToken() // '{'
		specs, ok := p.parseNamedImportSpecifiers()
		if !ok {
			return nil
		}
		decl.Specifiers = append(decl.Specifiers, specs...)
	}

	if len(decl.Specifiers) == 0 {
		p.addError(diagnostics.ErrP001, p.peekToken, "expected import specifiers or module string")
		p.skipToStatementBoundary()
		return nil
	}

	if !p.expectPeek(token.FROM) || !p.expectPeek(token.STRING) {
		p.skipToStatementBoundary()
		return nil
	}
	decl.Source = &ast.Literal{Token: p.curToken, Kind: ast.LiteralString, Value: p.curToken.Literal}
	return decl
}

// parseNamedImportSpecifiers parses the body of an import clause starting
// at '{', leaving the parser on the closing '}'.
func (p *Parser) parseNamedImportSpecifiers() ([]*ast.ImportSpecifier, bool) {
	var specs []*ast.ImportSpecifier
	for {
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			return specs, true
		}
		if !p.peekIsName() {
			p.peekError(token.IDENT)
			p.skipToStatementBoundary()
			return nil, false
		}
		p.nextToken()
		imported := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		local := imported
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			if !p.peekIdentLike() {
				p.peekError(token.IDENT)
				p.skipToStatementBoundary()
				return nil, false
			}
			p.nextToken()
			local = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		}
		specs = append(specs, &ast.ImportSpecifier{
			Token:    imported.Token,
			Kind:     ast.ImportNamed,
			Local:    local,
			Imported: imported,
		})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

// parseExportDeclaration handles:
//
//	export * from "m"
//	export * as ns from "m"
//	export { a, b as c } [from "m"]
//	export default <expr|function|class>
//	export <var|let|const|function|class> ...
func (p *Parser) parseExportDeclaration() ast.Statement {
	exportTok := p.curToken

	switch p.peekToken.Type {
	case token.STAR:
		p.nextToken() // '*'
		decl := &ast.ExportAllDeclaration{Token: exportTok}
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			if !p.peekIdentLike() {
				p.peekError(token.IDENT)
				p.skipToStatementBoundary()
				return nil
			}
			p.nextToken()
			decl.Exported = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		}
		if !p.expectPeek(token.FROM) || !p.expectPeek(token.STRING) {
			p.skipToStatementBoundary()
			return nil
		}
		decl.Source = &ast.Literal{Token: p.curToken, Kind: ast.LiteralString, Value: p.curToken.Literal}
		return decl

	case token.LBRACE:
		p.nextToken() // '{'
		decl := &ast.ExportNamedDeclaration{Token: exportTok}
		for {
			if p.peekTokenIs(token.RBRACE) {
				p.nextToken()
				break
			}
			if !p.peekIsName() {
				p.peekError(token.IDENT)
				p.skipToStatementBoundary()
				return nil
			}
			p.nextToken()
			local := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
			exported := local
			if p.peekTokenIs(token.AS) {
				p.nextToken()
				if !p.peekIsName() {
					p.peekError(token.IDENT)
					p.skipToStatementBoundary()
					return nil
				}
				p.nextToken()
				exported = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
			}
			decl.Specifiers = append(decl.Specifiers, &ast.ExportSpecifier{
				Token:    local.Token,
				Local:    local,
				Exported: exported,
			})
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		if p.peekTokenIs(token.FROM) {
			p.nextToken()
			if !p.expectPeek(token.STRING) {
				p.skipToStatementBoundary()
				return nil
			}
			decl.Source = &ast.Literal{Token: p.curToken, Kind: ast.LiteralString, Value: p.curToken.Literal}
		}
		return decl

	case token.DEFAULT:
		p.nextToken() // 'default'
		p.nextToken()
		decl := &ast.ExportDefaultDeclaration{Token: exportTok}
		switch p.curToken.Type {
		case token.FUNCTION:
			decl.Declaration = p.parseFunctionExpression()
		case token.CLASS:
			decl.Declaration = p.parseClassDeclaration()
		default:
			decl.Declaration = p.parseExpression(LOWEST)
		}
		return decl

	case token.VAR, token.LET, token.CONST, token.FUNCTION, token.CLASS:
		p.nextToken()
		inner := p.parseStatement()
		if inner == nil {
			return nil
		}
		return &ast.ExportNamedDeclaration{Token: exportTok, Declaration: inner}

	default:
		p.addError(diagnostics.ErrP001, p.peekToken, "unexpected token after export")
		p.skipToStatementBoundary()
		return nil
	}
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	decl := &ast.VariableDeclaration{Token: p.curToken, Kind: p.curToken.Lexeme}

	for {
		p.nextToken()
		target := p.parseBindingTarget()
		if target == nil {
			p.skipToStatementBoundary()
			return nil
		}
		declarator := &ast.VariableDeclarator{Token: p.curToken, ID: target}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken() // '='
			p.nextToken()
			declarator.Init = p.parseExpression(LOWEST)
		}
		decl.Declarations = append(decl.Declarations, declarator)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // ','
	}

	return decl
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	fd := &ast.FunctionDeclaration{Token: p.curToken}
	if !p.peekIdentLike() {
		p.peekError(token.IDENT)
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	fd.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	fd.Params = p.parseFunctionParams()
	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return nil
	}
	fd.Body = p.parseBlockStatement().(*ast.BlockStatement)
	return fd
}

// parseClassDeclaration records the class name binding and skips the
// body; class internals are opaque to the linter.
func (p *Parser) parseClassDeclaration() ast.Statement {
	cd := &ast.ClassDeclaration{Token: p.curToken}
	if p.peekIdentLike() {
		p.nextToken()
		cd.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	}
	for !p.curTokenIs(token.LBRACE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
	depth := 1
	for depth > 0 && !p.curTokenIs(token.EOF) {
		p.nextToken()
		switch p.curToken.Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
		}
	}
	return cd
}

func (p *Parser) parseReturnStatement() ast.Statement {
	rs := &ast.ReturnStatement{Token: p.curToken}
	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		return rs
	}
	p.nextToken()
	rs.Argument = p.parseExpression(LOWEST)
	return rs
}

func (p *Parser) parseIfStatement() ast.Statement {
	is := &ast.IfStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	is.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	is.Consequent = p.parseStatement()
	if p.peekTokenIs(token.ELSE) {
		p.nextToken() // 'else'
		p.nextToken()
		is.Alternate = p.parseStatement()
	}
	return is
}

func (p *Parser) parseBlockStatement() ast.Statement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// peekIdentLike reports whether the next token can bind a local name.
func (p *Parser) peekIdentLike() bool {
	return token.IsIdentLike(p.peekToken.Type)
}

// peekIsName reports whether the next token is a valid export/property
// name; keywords are legal there (import { default as d }).
func (p *Parser) peekIsName() bool {
	return isNameToken(p.peekToken)
}

func isNameToken(tok token.Token) bool {
	if token.IsIdentLike(tok.Type) {
		return true
	}
	switch tok.Type {
	case token.IMPORT, token.EXPORT, token.VAR, token.LET, token.CONST,
		token.FUNCTION, token.RETURN, token.IF, token.ELSE, token.FOR,
		token.WHILE, token.CLASS, token.NEW, token.TYPEOF, token.TRUE,
		token.FALSE, token.NULL, token.THIS:
		return true
	}
	return false
}
