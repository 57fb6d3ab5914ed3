package ast

// Visitor dispatches over every concrete node type. Implementations that
// only care about a few node kinds should embed BaseVisitor-style no-op
// handling by recursing manually in the remaining methods.
type Visitor interface {
	VisitProgram(n *Program)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitExportNamedDeclaration(n *ExportNamedDeclaration)
	VisitExportAllDeclaration(n *ExportAllDeclaration)
	VisitExportDefaultDeclaration(n *ExportDefaultDeclaration)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitBlockStatement(n *BlockStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitIfStatement(n *IfStatement)

	VisitIdentifier(n *Identifier)
	VisitLiteral(n *Literal)
	VisitTemplateLiteral(n *TemplateLiteral)
	VisitMemberExpression(n *MemberExpression)
	VisitCallExpression(n *CallExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitAssignmentExpression(n *AssignmentExpression)
	VisitArrowFunctionExpression(n *ArrowFunctionExpression)
	VisitFunctionExpression(n *FunctionExpression)
	VisitObjectExpression(n *ObjectExpression)
	VisitArrayExpression(n *ArrayExpression)
	VisitSpreadElement(n *SpreadElement)
	VisitObjectPattern(n *ObjectPattern)
	VisitArrayPattern(n *ArrayPattern)
	VisitRestElement(n *RestElement)
	VisitAssignmentPattern(n *AssignmentPattern)

	VisitJSXElement(n *JSXElement)
	VisitJSXIdentifier(n *JSXIdentifier)
	VisitJSXMemberExpression(n *JSXMemberExpression)
}
