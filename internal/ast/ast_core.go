package ast

import (
	"github.com/funvibe/nslint/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ImportSpecifierKind distinguishes the three ES import specifier forms.
type ImportSpecifierKind int

const (
	ImportDefault   ImportSpecifierKind = iota // import x from "m"
	ImportNamed                                // import { x as y } from "m"
	ImportNamespace                            // import * as x from "m"
)

// ImportSpecifier is one local binding introduced by an import declaration.
// Imported is nil for default and namespace specifiers.
type ImportSpecifier struct {
	Token    token.Token
	Kind     ImportSpecifierKind
	Local    *Identifier
	Imported *Identifier
}

func (s *ImportSpecifier) GetToken() token.Token {
	if s == nil {
		return token.Token{}
	}
	return s.Token
}

// ImportDeclaration represents an import statement.
// import Default, * as Ns, { a as b } from "mod"
type ImportDeclaration struct {
	Token      token.Token // The 'import' token
	Specifiers []*ImportSpecifier
	Source     *Literal // Module specifier string
}

func (id *ImportDeclaration) Accept(v Visitor)     { v.VisitImportDeclaration(id) }
func (id *ImportDeclaration) statementNode()       {}
func (id *ImportDeclaration) TokenLiteral() string { return id.Token.Lexeme }
func (id *ImportDeclaration) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// ExportSpecifier is one entry of an export clause: export { a as b }.
type ExportSpecifier struct {
	Token    token.Token
	Local    *Identifier
	Exported *Identifier
}

// ExportNamedDeclaration covers export clauses and exported declarations.
// export { a, b as c }          (Specifiers, no Source)
// export { a } from "mod"       (Specifiers + Source)
// export const x = 1            (Declaration)
type ExportNamedDeclaration struct {
	Token       token.Token // The 'export' token
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

func (ed *ExportNamedDeclaration) Accept(v Visitor)     { v.VisitExportNamedDeclaration(ed) }
func (ed *ExportNamedDeclaration) statementNode()       {}
func (ed *ExportNamedDeclaration) TokenLiteral() string { return ed.Token.Lexeme }
func (ed *ExportNamedDeclaration) GetToken() token.Token {
	if ed == nil {
		return token.Token{}
	}
	return ed.Token
}

// ExportAllDeclaration represents star re-exports.
// export * from "mod"
// export * as ns from "mod"   (Exported non-nil)
type ExportAllDeclaration struct {
	Token    token.Token // The 'export' token
	Exported *Identifier
	Source   *Literal
}

func (ed *ExportAllDeclaration) Accept(v Visitor)     { v.VisitExportAllDeclaration(ed) }
func (ed *ExportAllDeclaration) statementNode()       {}
func (ed *ExportAllDeclaration) TokenLiteral() string { return ed.Token.Lexeme }
func (ed *ExportAllDeclaration) GetToken() token.Token {
	if ed == nil {
		return token.Token{}
	}
	return ed.Token
}

// ExportDefaultDeclaration represents export default <expr|declaration>.
type ExportDefaultDeclaration struct {
	Token       token.Token // The 'export' token
	Declaration Node        // Expression or FunctionDeclaration/ClassDeclaration
}

func (ed *ExportDefaultDeclaration) Accept(v Visitor)     { v.VisitExportDefaultDeclaration(ed) }
func (ed *ExportDefaultDeclaration) statementNode()       {}
func (ed *ExportDefaultDeclaration) TokenLiteral() string { return ed.Token.Lexeme }
func (ed *ExportDefaultDeclaration) GetToken() token.Token {
	if ed == nil {
		return token.Token{}
	}
	return ed.Token
}

// VariableDeclarator is a single "pattern = init" inside a declaration.
// Init may be nil (let x;).
type VariableDeclarator struct {
	Token token.Token
	ID    Node // Identifier, ObjectPattern or ArrayPattern
	Init  Expression
}

func (vd *VariableDeclarator) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// VariableDeclaration represents var/let/const statements.
type VariableDeclaration struct {
	Token        token.Token // The 'var'/'let'/'const' token
	Kind         string
	Declarations []*VariableDeclarator
}

func (vd *VariableDeclaration) Accept(v Visitor)     { v.VisitVariableDeclaration(vd) }
func (vd *VariableDeclaration) statementNode()       {}
func (vd *VariableDeclaration) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VariableDeclaration) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// FunctionDeclaration represents function f(params) { body }.
type FunctionDeclaration struct {
	Token  token.Token // The 'function' token
	Name   *Identifier
	Params []Node // Identifier or pattern nodes
	Body   *BlockStatement
}

func (fd *FunctionDeclaration) Accept(v Visitor)     { v.VisitFunctionDeclaration(fd) }
func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// ClassDeclaration is recorded only for the name binding; the body is
// opaque to the linter.
type ClassDeclaration struct {
	Token token.Token // The 'class' token
	Name  *Identifier
}

func (cd *ClassDeclaration) Accept(v Visitor)     { v.VisitClassDeclaration(cd) }
func (cd *ClassDeclaration) statementNode()       {}
func (cd *ClassDeclaration) TokenLiteral() string { return cd.Token.Lexeme }
func (cd *ClassDeclaration) GetToken() token.Token {
	if cd == nil {
		return token.Token{}
	}
	return cd.Token
}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Token      token.Token // The '{' token
	Statements []Statement
}

func (bs *BlockStatement) Accept(v Visitor)     { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)     { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// ReturnStatement represents return [expr].
type ReturnStatement struct {
	Token    token.Token // The 'return' token
	Argument Expression
}

func (rs *ReturnStatement) Accept(v Visitor)     { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

// IfStatement represents if (test) consequent [else alternate].
type IfStatement struct {
	Token      token.Token // The 'if' token
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (is *IfStatement) Accept(v Visitor)     { v.VisitIfStatement(is) }
func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}
