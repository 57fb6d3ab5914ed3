package analyzer

import (
	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/symbols"
)

// Traversal boilerplate: recursion plus scope bookkeeping. Bindings and
// chain validation live in bindings.go, dereference.go and
// destructure.go.

func (w *walker) VisitImportDeclaration(n *ast.ImportDeclaration) {
	// Handled during the top-level scan in VisitProgram.
}

func (w *walker) VisitExportAllDeclaration(n *ast.ExportAllDeclaration) {
	// Handled during the top-level scan in VisitProgram.
}

func (w *walker) VisitExportNamedDeclaration(n *ast.ExportNamedDeclaration) {
	if n.Declaration != nil {
		n.Declaration.Accept(w)
	}
}

func (w *walker) VisitExportDefaultDeclaration(n *ast.ExportDefaultDeclaration) {
	if n.Declaration != nil {
		n.Declaration.Accept(w)
	}
}

func (w *walker) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Name != nil {
		w.symbolTable.Define(n.Name.Value, symbols.FunctionSymbol)
	}
	w.symbolTable.Push(symbols.ScopeFunction)
	defer w.symbolTable.Pop()
	for _, param := range n.Params {
		w.bindPattern(param, symbols.ParamSymbol)
		param.Accept(w)
	}
	if n.Body != nil {
		n.Body.Accept(w)
	}
}

func (w *walker) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if n.Name != nil {
		w.symbolTable.Define(n.Name.Value, symbols.ClassSymbol)
	}
}

func (w *walker) VisitBlockStatement(n *ast.BlockStatement) {
	w.symbolTable.Push(symbols.ScopeBlock)
	defer w.symbolTable.Pop()
	for _, stmt := range n.Statements {
		stmt.Accept(w)
	}
}

func (w *walker) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n.Expression != nil {
		n.Expression.Accept(w)
	}
}

func (w *walker) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Argument != nil {
		n.Argument.Accept(w)
	}
}

func (w *walker) VisitIfStatement(n *ast.IfStatement) {
	if n.Test != nil {
		n.Test.Accept(w)
	}
	if n.Consequent != nil {
		n.Consequent.Accept(w)
	}
	if n.Alternate != nil {
		n.Alternate.Accept(w)
	}
}

func (w *walker) VisitIdentifier(n *ast.Identifier)           {}
func (w *walker) VisitLiteral(n *ast.Literal)                 {}
func (w *walker) VisitTemplateLiteral(n *ast.TemplateLiteral) {}

func (w *walker) VisitCallExpression(n *ast.CallExpression) {
	if n.Callee != nil {
		n.Callee.Accept(w)
	}
	for _, arg := range n.Arguments {
		arg.Accept(w)
	}
}

func (w *walker) VisitUnaryExpression(n *ast.UnaryExpression) {
	if n.Operand != nil {
		n.Operand.Accept(w)
	}
}

func (w *walker) VisitBinaryExpression(n *ast.BinaryExpression) {
	if n.Left != nil {
		n.Left.Accept(w)
	}
	if n.Right != nil {
		n.Right.Accept(w)
	}
}

func (w *walker) VisitConditionalExpression(n *ast.ConditionalExpression) {
	if n.Test != nil {
		n.Test.Accept(w)
	}
	if n.Consequent != nil {
		n.Consequent.Accept(w)
	}
	if n.Alternate != nil {
		n.Alternate.Accept(w)
	}
}

func (w *walker) VisitArrowFunctionExpression(n *ast.ArrowFunctionExpression) {
	w.symbolTable.Push(symbols.ScopeFunction)
	defer w.symbolTable.Pop()
	for _, param := range n.Params {
		w.bindPattern(param, symbols.ParamSymbol)
		param.Accept(w)
	}
	if n.Body != nil {
		n.Body.Accept(w)
	}
}

func (w *walker) VisitFunctionExpression(n *ast.FunctionExpression) {
	w.symbolTable.Push(symbols.ScopeFunction)
	defer w.symbolTable.Pop()
	if n.Name != nil {
		w.symbolTable.Define(n.Name.Value, symbols.FunctionSymbol)
	}
	for _, param := range n.Params {
		w.bindPattern(param, symbols.ParamSymbol)
		param.Accept(w)
	}
	if n.Body != nil {
		n.Body.Accept(w)
	}
}

func (w *walker) VisitObjectExpression(n *ast.ObjectExpression) {
	for _, prop := range n.Properties {
		if prop.Computed && prop.Key != nil {
			prop.Key.Accept(w)
		}
		if prop.Value != nil {
			prop.Value.Accept(w)
		}
	}
}

func (w *walker) VisitArrayExpression(n *ast.ArrayExpression) {
	for _, el := range n.Elements {
		el.Accept(w)
	}
}

func (w *walker) VisitSpreadElement(n *ast.SpreadElement) {
	if n.Argument != nil {
		n.Argument.Accept(w)
	}
}

func (w *walker) VisitObjectPattern(n *ast.ObjectPattern) {
	for _, prop := range n.Properties {
		if prop.Computed && prop.Key != nil {
			prop.Key.Accept(w)
		}
		if prop.Value != nil {
			prop.Value.Accept(w)
		}
	}
	if n.Rest != nil {
		n.Rest.Accept(w)
	}
}

func (w *walker) VisitArrayPattern(n *ast.ArrayPattern) {
	for _, el := range n.Elements {
		if el != nil {
			el.Accept(w)
		}
	}
}

func (w *walker) VisitRestElement(n *ast.RestElement) {
	if n.Argument != nil {
		n.Argument.Accept(w)
	}
}

func (w *walker) VisitAssignmentPattern(n *ast.AssignmentPattern) {
	// Only the default expression can reference other bindings.
	if n.Right != nil {
		n.Right.Accept(w)
	}
}

func (w *walker) VisitJSXElement(n *ast.JSXElement) {
	if n.Name != nil {
		n.Name.Accept(w)
	}
	for _, attr := range n.Attributes {
		if attr.Value != nil {
			attr.Value.Accept(w)
		}
	}
	for _, child := range n.Children {
		child.Accept(w)
	}
}

func (w *walker) VisitJSXIdentifier(n *ast.JSXIdentifier) {}
