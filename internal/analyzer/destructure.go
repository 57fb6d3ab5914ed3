package analyzer

import (
	"fmt"
	"strings"

	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/modules"
	"github.com/funvibe/nslint/internal/symbols"
)

// VisitVariableDeclaration runs the destructuring validator on every
// declarator initialized from a namespace binding, then records the
// declared names so later references see the shadowing declaration.
func (w *walker) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for _, declarator := range n.Declarations {
		if init, ok := declarator.Init.(*ast.Identifier); ok {
			if namespace, bound := w.namespaces[init.Value]; bound {
				if kind, _ := w.symbolTable.ScopeKindOf(init.Value); kind == symbols.ScopeModule {
					w.validateDestructure(declarator.ID, namespace, []string{init.Value})
				}
			}
		}
		if declarator.Init != nil {
			declarator.Init.Accept(w)
		}
		// Pattern defaults may reference namespaces too.
		if declarator.ID != nil {
			declarator.ID.Accept(w)
		}
	}

	for _, declarator := range n.Declarations {
		w.bindPattern(declarator.ID, symbols.VariableSymbol)
	}
}

// validateDestructure checks an object pattern against a namespace,
// depth-first. Unlike member chains, sibling properties are independent:
// a missing key stops only its own branch.
func (w *walker) validateDestructure(pattern ast.Node, namespace *modules.ExportMap, namepath []string) {
	objectPattern, ok := pattern.(*ast.ObjectPattern)
	if !ok {
		return // arrays and plain identifiers are not validated further
	}

	for _, prop := range objectPattern.Properties {
		key, isIdent := prop.Key.(*ast.Identifier)
		if prop.Computed || !isIdent {
			w.addError(diagnostics.NewError(
				diagnostics.ErrN005,
				prop.GetToken(),
				"Only destructure top-level names.",
			))
			continue
		}

		if !namespace.Has(key.Value) {
			depth := "imported"
			if len(namepath) > 1 {
				depth = "deeply imported"
			}
			w.addError(diagnostics.NewError(
				diagnostics.ErrN002,
				key.GetToken(),
				fmt.Sprintf("'%s' not found in %s namespace '%s'.",
					key.Value, depth, strings.Join(namepath, ".")),
			))
			continue
		}

		exported := namespace.Get(key.Value)
		if exported == nil || exported.Namespace == nil {
			continue
		}

		value := prop.Value
		if def, isDefault := value.(*ast.AssignmentPattern); isDefault {
			value = def.Left
		}
		// Copy-on-recurse keeps sibling branches' paths independent.
		childPath := append(append([]string(nil), namepath...), key.Value)
		w.validateDestructure(value, exported.Namespace, childPath)
	}
	// Rest elements impose no validation.
}

// bindPattern declares every identifier bound by a pattern in the
// current scope.
func (w *walker) bindPattern(node ast.Node, kind symbols.SymbolKind) {
	switch n := node.(type) {
	case *ast.Identifier:
		w.symbolTable.Define(n.Value, kind)
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			w.bindPattern(prop.Value, kind)
		}
		if n.Rest != nil {
			w.bindPattern(n.Rest.Argument, kind)
		}
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				w.bindPattern(el, kind)
			}
		}
	case *ast.RestElement:
		w.bindPattern(n.Argument, kind)
	case *ast.AssignmentPattern:
		w.bindPattern(n.Left, kind)
	}
}
