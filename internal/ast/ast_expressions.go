package ast

import (
	"github.com/funvibe/nslint/internal/token"
)

// Identifier is a plain name reference. It doubles as a binding pattern.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// LiteralKind distinguishes literal flavors where the walker cares.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralNull
)

// Literal is a string/number/bool/null literal. Value holds the decoded
// string for string literals and the raw lexeme otherwise.
type Literal struct {
	Token token.Token
	Kind  LiteralKind
	Value string
}

func (l *Literal) Accept(v Visitor)     { v.VisitLiteral(l) }
func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// TemplateLiteral is an opaque backtick literal.
type TemplateLiteral struct {
	Token token.Token
}

func (t *TemplateLiteral) Accept(v Visitor)     { v.VisitTemplateLiteral(t) }
func (t *TemplateLiteral) expressionNode()      {}
func (t *TemplateLiteral) TokenLiteral() string { return t.Token.Lexeme }
func (t *TemplateLiteral) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

// MemberExpression represents obj.prop and obj[expr].
// Property is an *Identifier when Computed is false.
type MemberExpression struct {
	Token    token.Token // The '.' or '[' token
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpression) Accept(v Visitor)     { v.VisitMemberExpression(m) }
func (m *MemberExpression) expressionNode()      {}
func (m *MemberExpression) TokenLiteral() string { return m.Token.Lexeme }
func (m *MemberExpression) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}

// CallExpression represents callee(args).
type CallExpression struct {
	Token     token.Token // The '(' token
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) Accept(v Visitor)     { v.VisitCallExpression(c) }
func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Lexeme }
func (c *CallExpression) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// UnaryExpression covers prefix operators: ! - + typeof new.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) Accept(v Visitor)     { v.VisitUnaryExpression(u) }
func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Token.Lexeme }
func (u *UnaryExpression) GetToken() token.Token {
	if u == nil {
		return token.Token{}
	}
	return u.Token
}

// BinaryExpression covers arithmetic, comparison and logical operators.
type BinaryExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) Accept(v Visitor)     { v.VisitBinaryExpression(b) }
func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Token.Lexeme }
func (b *BinaryExpression) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// ConditionalExpression represents test ? consequent : alternate.
type ConditionalExpression struct {
	Token      token.Token // The '?' token
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) Accept(v Visitor)     { v.VisitConditionalExpression(c) }
func (c *ConditionalExpression) expressionNode()      {}
func (c *ConditionalExpression) TokenLiteral() string { return c.Token.Lexeme }
func (c *ConditionalExpression) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// AssignmentExpression represents lhs = rhs (and compound forms).
type AssignmentExpression struct {
	Token    token.Token // The operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (a *AssignmentExpression) Accept(v Visitor)     { v.VisitAssignmentExpression(a) }
func (a *AssignmentExpression) expressionNode()      {}
func (a *AssignmentExpression) TokenLiteral() string { return a.Token.Lexeme }
func (a *AssignmentExpression) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// ArrowFunctionExpression represents (params) => body.
// Body is either a BlockStatement or an Expression.
type ArrowFunctionExpression struct {
	Token  token.Token
	Params []Node
	Body   Node
}

func (a *ArrowFunctionExpression) Accept(v Visitor)     { v.VisitArrowFunctionExpression(a) }
func (a *ArrowFunctionExpression) expressionNode()      {}
func (a *ArrowFunctionExpression) TokenLiteral() string { return a.Token.Lexeme }
func (a *ArrowFunctionExpression) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// FunctionExpression represents function [name](params) { body } in
// expression position.
type FunctionExpression struct {
	Token  token.Token // The 'function' token
	Name   *Identifier
	Params []Node
	Body   *BlockStatement
}

func (f *FunctionExpression) Accept(v Visitor)     { v.VisitFunctionExpression(f) }
func (f *FunctionExpression) expressionNode()      {}
func (f *FunctionExpression) TokenLiteral() string { return f.Token.Lexeme }
func (f *FunctionExpression) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// Property is a key/value entry of an object literal or object pattern.
// Value is a pattern node when the property belongs to an ObjectPattern.
type Property struct {
	Token     token.Token
	Key       Expression
	Value     Node
	Computed  bool
	Shorthand bool
}

func (p *Property) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	Token      token.Token // The '{' token
	Properties []*Property
}

func (o *ObjectExpression) Accept(v Visitor)     { v.VisitObjectExpression(o) }
func (o *ObjectExpression) expressionNode()      {}
func (o *ObjectExpression) TokenLiteral() string { return o.Token.Lexeme }
func (o *ObjectExpression) GetToken() token.Token {
	if o == nil {
		return token.Token{}
	}
	return o.Token
}

// ArrayExpression is an array literal.
type ArrayExpression struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (a *ArrayExpression) Accept(v Visitor)     { v.VisitArrayExpression(a) }
func (a *ArrayExpression) expressionNode()      {}
func (a *ArrayExpression) TokenLiteral() string { return a.Token.Lexeme }
func (a *ArrayExpression) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// SpreadElement represents ...expr in call arguments and literals.
type SpreadElement struct {
	Token    token.Token // The '...' token
	Argument Expression
}

func (s *SpreadElement) Accept(v Visitor)     { v.VisitSpreadElement(s) }
func (s *SpreadElement) expressionNode()      {}
func (s *SpreadElement) TokenLiteral() string { return s.Token.Lexeme }
func (s *SpreadElement) GetToken() token.Token {
	if s == nil {
		return token.Token{}
	}
	return s.Token
}

// ObjectPattern is a destructuring pattern: { a, b: { c }, ...rest }.
type ObjectPattern struct {
	Token      token.Token // The '{' token
	Properties []*Property
	Rest       *RestElement
}

func (o *ObjectPattern) Accept(v Visitor)     { v.VisitObjectPattern(o) }
func (o *ObjectPattern) expressionNode()      {}
func (o *ObjectPattern) TokenLiteral() string { return o.Token.Lexeme }
func (o *ObjectPattern) GetToken() token.Token {
	if o == nil {
		return token.Token{}
	}
	return o.Token
}

// ArrayPattern is a destructuring pattern: [a, , b].
type ArrayPattern struct {
	Token    token.Token // The '[' token
	Elements []Node      // nil entries for holes
}

func (a *ArrayPattern) Accept(v Visitor)     { v.VisitArrayPattern(a) }
func (a *ArrayPattern) expressionNode()      {}
func (a *ArrayPattern) TokenLiteral() string { return a.Token.Lexeme }
func (a *ArrayPattern) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// RestElement represents ...name inside a pattern or parameter list.
type RestElement struct {
	Token    token.Token // The '...' token
	Argument Node
}

func (r *RestElement) Accept(v Visitor)     { v.VisitRestElement(r) }
func (r *RestElement) expressionNode()      {}
func (r *RestElement) TokenLiteral() string { return r.Token.Lexeme }
func (r *RestElement) GetToken() token.Token {
	if r == nil {
		return token.Token{}
	}
	return r.Token
}

// AssignmentPattern represents a pattern with a default: { a = 1 }.
type AssignmentPattern struct {
	Token token.Token // The '=' token
	Left  Node
	Right Expression
}

func (a *AssignmentPattern) Accept(v Visitor)     { v.VisitAssignmentPattern(a) }
func (a *AssignmentPattern) expressionNode()      {}
func (a *AssignmentPattern) TokenLiteral() string { return a.Token.Lexeme }
func (a *AssignmentPattern) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// JSXIdentifier is a tag-name component.
type JSXIdentifier struct {
	Token token.Token
	Value string
}

func (j *JSXIdentifier) Accept(v Visitor)     { v.VisitJSXIdentifier(j) }
func (j *JSXIdentifier) expressionNode()      {}
func (j *JSXIdentifier) TokenLiteral() string { return j.Token.Lexeme }
func (j *JSXIdentifier) GetToken() token.Token {
	if j == nil {
		return token.Token{}
	}
	return j.Token
}

// JSXMemberExpression is a dotted tag name: <Ns.Member />.
type JSXMemberExpression struct {
	Token    token.Token // The '.' token
	Object   Expression  // JSXIdentifier or JSXMemberExpression
	Property *JSXIdentifier
}

func (j *JSXMemberExpression) Accept(v Visitor)     { v.VisitJSXMemberExpression(j) }
func (j *JSXMemberExpression) expressionNode()      {}
func (j *JSXMemberExpression) TokenLiteral() string { return j.Token.Lexeme }
func (j *JSXMemberExpression) GetToken() token.Token {
	if j == nil {
		return token.Token{}
	}
	return j.Token
}

// JSXAttribute is name[={expr}|"str"] on an opening tag.
type JSXAttribute struct {
	Token token.Token
	Name  string
	Value Expression // nil for bare attributes
}

// JSXElement represents <Tag attrs>children</Tag> or <Tag attrs />.
// Children holds nested elements and container expressions; raw text is
// discarded during parsing.
type JSXElement struct {
	Token      token.Token // The '<' token
	Name       Expression  // JSXIdentifier or JSXMemberExpression
	Attributes []*JSXAttribute
	Children   []Expression
}

func (j *JSXElement) Accept(v Visitor)     { v.VisitJSXElement(j) }
func (j *JSXElement) expressionNode()      {}
func (j *JSXElement) TokenLiteral() string { return j.Token.Lexeme }
func (j *JSXElement) GetToken() token.Token {
	if j == nil {
		return token.Token{}
	}
	return j.Token
}
