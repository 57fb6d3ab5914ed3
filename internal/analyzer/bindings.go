package analyzer

import (
	"fmt"

	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/symbols"
)

// processImport registers namespace bindings introduced by one import
// declaration. Resolution errors in the target module are forwarded at
// the declaration and suppress every binding from it, so a broken module
// produces one set of parse diagnostics instead of a cascade of
// not-found reports.
func (w *walker) processImport(n *ast.ImportDeclaration) {
	if n.Source == nil || len(n.Specifiers) == 0 {
		return
	}

	// All import locals are module-scope declarations, namespace-valued
	// or not; the scope oracle needs them to answer shadowing queries.
	for _, spec := range n.Specifiers {
		if spec.Local != nil {
			w.symbolTable.Define(spec.Local.Value, symbols.ImportBinding)
		}
	}

	exportMap := w.resolver.ResolveImport(w.currentFile, n.Source.Value)
	if exportMap == nil {
		return // unresolvable external module, not an error here
	}
	if exportMap.HasErrors() {
		for _, err := range exportMap.ReportErrors(n.Source.Value, n.GetToken()) {
			w.addError(err)
		}
		return
	}

	for _, spec := range n.Specifiers {
		switch spec.Kind {
		case ast.ImportNamespace:
			if exportMap.Size() == 0 {
				w.addError(diagnostics.NewError(
					diagnostics.ErrN001,
					spec.GetToken(),
					fmt.Sprintf("No exported names found in module '%s'.", n.Source.Value),
				))
			}
			w.namespaces[spec.Local.Value] = exportMap

		case ast.ImportDefault, ast.ImportNamed:
			imported := "default"
			if spec.Imported != nil {
				imported = spec.Imported.Value
			}
			exp := exportMap.Get(imported)
			if exp != nil && exp.Namespace != nil {
				w.namespaces[spec.Local.Value] = exp.Namespace
			}
		}
	}
}

// processExportNamespace checks "export * as ns from" declarations for
// resolution errors and empty namespaces. No local binding is created;
// the exported name is not in scope in this file.
func (w *walker) processExportNamespace(n *ast.ExportAllDeclaration) {
	if n.Exported == nil || n.Source == nil {
		return
	}
	exportMap := w.resolver.ResolveImport(w.currentFile, n.Source.Value)
	if exportMap == nil {
		return
	}
	if exportMap.HasErrors() {
		for _, err := range exportMap.ReportErrors(n.Source.Value, n.GetToken()) {
			w.addError(err)
		}
		return
	}
	if exportMap.Size() == 0 {
		w.addError(diagnostics.NewError(
			diagnostics.ErrN001,
			n.Exported.GetToken(),
			fmt.Sprintf("No exported names found in module '%s'.", n.Source.Value),
		))
	}
}
