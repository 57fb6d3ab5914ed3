package parser

import (
	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		if !p.inRecursionRecovery {
			p.addError(diagnostics.ErrP002, p.curToken,
				"expression too complex: recursion depth limit exceeded")
			p.inRecursionRecovery = true
		}
		// Skip the rest of the statement to avoid a cascade of errors.
		p.skipToStatementBoundary()
		p.inRecursionRecovery = false
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Kind: ast.LiteralNumber, Value: p.curToken.Lexeme}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Kind: ast.LiteralString, Value: p.curToken.Literal}
}

func (p *Parser) parseTemplateLiteral() ast.Expression {
	return &ast.TemplateLiteral{Token: p.curToken}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Kind: ast.LiteralBool, Value: p.curToken.Lexeme}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Kind: ast.LiteralNull, Value: p.curToken.Lexeme}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	expr.Operand = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseMemberExpression(left ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Object: left}
	if !p.peekIsName() {
		p.peekError(token.IDENT)
		return nil
	}
	p.nextToken()
	expr.Property = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	return expr
}

func (p *Parser) parseComputedMemberExpression(left ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Object: left, Computed: true}
	p.nextToken()
	expr.Property = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Callee: left}
	for {
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			return call
		}
		p.nextToken()
		var arg ast.Expression
		if p.curTokenIs(token.SPREAD) {
			spread := &ast.SpreadElement{Token: p.curToken}
			p.nextToken()
			spread.Argument = p.parseExpression(LOWEST)
			arg = spread
		} else {
			arg = p.parseExpression(LOWEST)
		}
		if arg == nil {
			return nil
		}
		call.Arguments = append(call.Arguments, arg)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

func (p *Parser) parseConditionalExpression(left ast.Expression) ast.Expression {
	expr := &ast.ConditionalExpression{Token: p.curToken, Test: left}
	p.nextToken()
	expr.Consequent = p.parseExpression(CONDITIONAL)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	expr.Alternate = p.parseExpression(CONDITIONAL)
	return expr
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	expr := &ast.AssignmentExpression{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	p.nextToken()
	// Right-associative: parse at one level below the operator.
	expr.Right = p.parseExpression(ASSIGNMENT - 1)
	return expr
}

// parseSingleParamArrow handles x => body, where the single parameter was
// already parsed as an identifier.
func (p *Parser) parseSingleParamArrow(left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.addError(diagnostics.ErrP001, p.curToken, "invalid arrow function parameter")
		return nil
	}
	arrow := &ast.ArrowFunctionExpression{Token: p.curToken, Params: []ast.Node{ident}}
	p.nextToken()
	arrow.Body = p.parseArrowBody()
	return arrow
}

func (p *Parser) parseArrowBody() ast.Node {
	if p.curTokenIs(token.LBRACE) {
		return p.parseBlockStatement()
	}
	return p.parseExpression(ASSIGNMENT - 1)
}

// parseGroupedOrArrow disambiguates "(expr)" from "(params) => body" by
// scanning ahead to the matching ')'.
func (p *Parser) parseGroupedOrArrow() ast.Expression {
	if p.isArrowParamList() {
		return p.parseParenArrow()
	}
	p.nextToken()
	if p.curTokenIs(token.RPAREN) {
		p.addError(diagnostics.ErrP001, p.curToken, "unexpected empty parentheses")
		return nil
	}
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// isArrowParamList reports whether the current '(' opens an arrow
// function parameter list, i.e. the matching ')' is followed by '=>'.
func (p *Parser) isArrowParamList() bool {
	depth := 1
	// peekToken is the token right after '('; scan from there.
	if p.peekTokenIs(token.RPAREN) {
		return p.tokenAt(0).Type == token.ARROW
	}
	offset := 0
	tok := p.peekToken
	for {
		switch tok.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return p.tokenAt(offset).Type == token.ARROW
			}
		case token.EOF:
			return false
		}
		tok = p.tokenAt(offset)
		offset++
	}
}

func (p *Parser) parseParenArrow() ast.Expression {
	arrow := &ast.ArrowFunctionExpression{Token: p.curToken}
	arrow.Params = p.parseFunctionParams()
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	arrow.Body = p.parseArrowBody()
	return arrow
}

// parseFunctionParams parses a parameter list starting at '(' and leaves
// the parser on the closing ')'.
func (p *Parser) parseFunctionParams() []ast.Node {
	var params []ast.Node
	for {
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			return params
		}
		p.nextToken()
		var param ast.Node
		if p.curTokenIs(token.SPREAD) {
			rest := &ast.RestElement{Token: p.curToken}
			p.nextToken()
			rest.Argument = p.parseBindingTarget()
			param = rest
		} else {
			param = p.parseBindingTargetWithDefault()
		}
		if param == nil {
			p.skipToStatementBoundary()
			return params
		}
		params = append(params, param)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	fe := &ast.FunctionExpression{Token: p.curToken}
	if p.peekIdentLike() {
		p.nextToken()
		fe.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fe.Params = p.parseFunctionParams()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fe.Body = p.parseBlockStatement().(*ast.BlockStatement)
	return fe
}

func (p *Parser) parseArrayExpression() ast.Expression {
	arr := &ast.ArrayExpression{Token: p.curToken}
	for {
		if p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			return arr
		}
		p.nextToken()
		var el ast.Expression
		if p.curTokenIs(token.SPREAD) {
			spread := &ast.SpreadElement{Token: p.curToken}
			p.nextToken()
			spread.Argument = p.parseExpression(LOWEST)
			el = spread
		} else {
			el = p.parseExpression(LOWEST)
		}
		if el == nil {
			return nil
		}
		arr.Elements = append(arr.Elements, el)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

func (p *Parser) parseObjectExpression() ast.Expression {
	obj := &ast.ObjectExpression{Token: p.curToken}
	for {
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			return obj
		}
		p.nextToken()
		if p.curTokenIs(token.SPREAD) {
			// Spread properties carry no key; record as computed value.
			prop := &ast.Property{Token: p.curToken, Computed: true}
			p.nextToken()
			prop.Value = p.parseExpression(LOWEST)
			obj.Properties = append(obj.Properties, prop)
		} else {
			prop := p.parseObjectLiteralProperty()
			if prop == nil {
				return nil
			}
			obj.Properties = append(obj.Properties, prop)
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

func (p *Parser) parseObjectLiteralProperty() *ast.Property {
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
		p.addError(diagnostics.ErrP001, p.curToken, "invalid object literal key")
		return nil
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		prop.Value = p.parseExpression(LOWEST)
	} else {
		prop.Shorthand = true
		prop.Value = prop.Key
	}
	return prop
}
