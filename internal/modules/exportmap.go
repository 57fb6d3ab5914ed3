package modules

import (
	"fmt"
	"sort"

	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/token"
)

// Export describes one exported name. Namespace is non-nil when the
// export is itself a module namespace (export * as ns, or a re-export of
// a namespace import binding), enabling deep dereference validation.
type Export struct {
	Namespace *ExportMap
}

// ExportMap is the queryable export surface of one module. Nested
// namespaces are held by reference, never flattened, so self-referential
// re-export chains stay finite.
//
// A name can be present but unresolved (Has true, Get nil): named
// re-exports from modules that fail to resolve land in this state. The
// dereference walk must stop silently there rather than report.
type ExportMap struct {
	Path    string
	exports map[string]*Export
	errors  []*diagnostics.DiagnosticError
}

func newExportMap(path string) *ExportMap {
	return &ExportMap{Path: path, exports: make(map[string]*Export)}
}

// Size returns the number of exported names.
func (m *ExportMap) Size() int {
	return len(m.exports)
}

// Has reports whether name is exported, resolved or not.
func (m *ExportMap) Has(name string) bool {
	_, ok := m.exports[name]
	return ok
}

// Get returns the export descriptor for name, or nil when the name is
// absent or present-but-unresolved. Callers distinguish the two cases
// through Has.
func (m *ExportMap) Get(name string) *Export {
	return m.exports[name]
}

// Names returns the exported names in sorted order.
func (m *ExportMap) Names() []string {
	names := make([]string, 0, len(m.exports))
	for name := range m.exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Errors returns the resolution errors recorded while building the map,
// typically parse failures in the module's source.
func (m *ExportMap) Errors() []*diagnostics.DiagnosticError {
	return m.errors
}

// HasErrors reports whether building the map recorded any errors.
func (m *ExportMap) HasErrors() bool {
	return len(m.errors) > 0
}

// ReportErrors converts the recorded errors into diagnostics positioned
// at the importing declaration, for forwarding by the caller.
func (m *ExportMap) ReportErrors(specifier string, tok token.Token) []*diagnostics.DiagnosticError {
	out := make([]*diagnostics.DiagnosticError, 0, len(m.errors))
	for _, e := range m.errors {
		out = append(out, diagnostics.NewError(
			diagnostics.ErrR001,
			tok,
			fmt.Sprintf("parse errors in imported module '%s': %s (%d:%d)",
				specifier, e.Message, e.Token.Line, e.Token.Column),
		))
	}
	return out
}

func (m *ExportMap) set(name string, export *Export) {
	m.exports[name] = export
}
