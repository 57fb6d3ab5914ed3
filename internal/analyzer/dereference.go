package analyzer

import (
	"fmt"
	"strings"

	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/symbols"
)

// VisitMemberExpression validates a full member-access chain. The node
// received here is always the top of a maximal spine: inner members of
// the same chain are consumed below and never re-dispatched, so each
// chain is validated exactly once.
func (w *walker) VisitMemberExpression(n *ast.MemberExpression) {
	spine := make([]*ast.MemberExpression, 0, 4)
	var base ast.Expression = n
	for {
		m, ok := base.(*ast.MemberExpression)
		if !ok {
			break
		}
		spine = append(spine, m) // outermost first
		base = m.Object
	}

	if root, ok := base.(*ast.Identifier); ok {
		w.validateChain(root, spine)
	} else {
		base.Accept(w)
	}

	// Computed property expressions are independent chains.
	for _, m := range spine {
		if m.Computed && m.Property != nil {
			m.Property.Accept(w)
		}
	}
}

// validateChain walks a member spine from the root identifier outward,
// descending through nested export maps. Validation is fail-fast: the
// first computed hop or missing name ends the walk for the whole chain.
func (w *walker) validateChain(root *ast.Identifier, spine []*ast.MemberExpression) {
	namespace, ok := w.namespaces[root.Value]
	if !ok {
		return
	}
	if kind, _ := w.symbolTable.ScopeKindOf(root.Value); kind != symbols.ScopeModule {
		return // shadowed; no longer the import binding
	}

	namepath := []string{root.Value}
	for i := len(spine) - 1; i >= 0; i-- {
		deref := spine[i]

		if deref.Computed {
			if !w.opts.AllowComputed {
				w.addError(diagnostics.NewError(
					diagnostics.ErrN004,
					deref.GetToken(),
					fmt.Sprintf("Unable to validate computed reference to imported namespace '%s'.",
						strings.Join(namepath, ".")),
				))
			}
			return
		}

		property, ok := deref.Property.(*ast.Identifier)
		if !ok {
			return
		}

		if !namespace.Has(property.Value) {
			depth := "imported"
			if len(namepath) > 1 {
				depth = "deeply imported"
			}
			w.addError(diagnostics.NewError(
				diagnostics.ErrN002,
				property.GetToken(),
				fmt.Sprintf("'%s' not found in %s namespace '%s'.",
					property.Value, depth, strings.Join(namepath, ".")),
			))
			return
		}

		exported := namespace.Get(property.Value)
		if exported == nil {
			return // present but unresolved: permitted, stop silently
		}
		if exported.Namespace == nil {
			return // bottoms out at a plain value
		}

		namepath = append(namepath, property.Value)
		namespace = exported.Namespace
	}
}

// VisitAssignmentExpression flags writes to a namespace member. The
// check fires on a single-hop member target only; deeper targets fall
// through to ordinary chain validation of the left side.
func (w *walker) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	if member, ok := n.Left.(*ast.MemberExpression); ok {
		if root, ok := member.Object.(*ast.Identifier); ok {
			if _, bound := w.namespaces[root.Value]; bound {
				if kind, _ := w.symbolTable.ScopeKindOf(root.Value); kind == symbols.ScopeModule {
					w.addError(diagnostics.NewError(
						diagnostics.ErrN003,
						n.GetToken(),
						fmt.Sprintf("Assignment to member of namespace '%s'.", root.Value),
					))
				}
			}
		}
	}
	n.Left.Accept(w)
	if n.Right != nil {
		n.Right.Accept(w)
	}
}

// VisitJSXMemberExpression validates the single Ns.Member hop of a JSX
// tag name. JSX member access is syntactically one level; deeper tag
// chains only have their first hop checked.
func (w *walker) VisitJSXMemberExpression(n *ast.JSXMemberExpression) {
	object, ok := n.Object.(*ast.JSXIdentifier)
	if !ok {
		n.Object.Accept(w)
		return
	}
	namespace, bound := w.namespaces[object.Value]
	if !bound || n.Property == nil {
		return
	}
	if !namespace.Has(n.Property.Value) {
		w.addError(diagnostics.NewError(
			diagnostics.ErrN002,
			n.Property.GetToken(),
			fmt.Sprintf("'%s' not found in imported namespace '%s'.", n.Property.Value, object.Value),
		))
	}
}
