package analyzer

import (
	"fmt"

	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/modules"
	"github.com/funvibe/nslint/internal/pipeline"
	"github.com/funvibe/nslint/internal/symbols"
)

// Options controls validation behavior.
type Options struct {
	// AllowComputed tolerates ns[expr] references instead of flagging
	// them as unvalidatable.
	AllowComputed bool
}

// Analyzer validates namespace dereferences in one file at a time.
// The resolver is shared across files of a run (its export-map cache is
// read-only once built); all per-file state lives in a fresh walker.
type Analyzer struct {
	resolver *modules.Resolver
	opts     Options
}

func New(resolver *modules.Resolver, opts Options) *Analyzer {
	return &Analyzer{resolver: resolver, opts: opts}
}

// Analyze runs one full validation pass over a parsed program.
func (a *Analyzer) Analyze(program *ast.Program) []*diagnostics.DiagnosticError {
	w := &walker{
		resolver:    a.resolver,
		opts:        a.opts,
		symbolTable: symbols.NewSymbolTable(),
		namespaces:  make(map[string]*modules.ExportMap),
		errorSet:    make(map[string]bool),
	}
	program.Accept(w)
	return w.errors
}

// walker carries the per-file analysis state: the binding table, the
// scope stack and the diagnostics collected so far.
type walker struct {
	resolver    *modules.Resolver
	opts        Options
	currentFile string

	symbolTable *symbols.SymbolTable

	// namespaces is the binding table: local identifier -> export map.
	// Written only during the top-level scan in VisitProgram, read-only
	// afterwards.
	namespaces map[string]*modules.ExportMap

	errorSet map[string]bool // "line:col:code" for deduplication
	errors   []*diagnostics.DiagnosticError
}

// addError appends an error, deduplicating by position and code so that
// overlapping traversal paths cannot double-report one failure.
func (w *walker) addError(err *diagnostics.DiagnosticError) {
	if err.File == "" && w.currentFile != "" {
		err.File = w.currentFile
	}
	key := fmt.Sprintf("%d:%d:%s", err.Token.Line, err.Token.Column, err.Code)
	if w.errorSet[key] {
		return
	}
	w.errorSet[key] = true
	w.errors = append(w.errors, err)
}

// VisitProgram populates the binding table from all top-level import and
// export-namespace declarations before walking any other statement, so
// accesses textually above their import still validate (hoisting).
func (w *walker) VisitProgram(n *ast.Program) {
	w.currentFile = n.File

	for _, stmt := range n.Statements {
		switch d := stmt.(type) {
		case *ast.ImportDeclaration:
			w.processImport(d)
		case *ast.ExportAllDeclaration:
			w.processExportNamespace(d)
		}
	}

	for _, stmt := range n.Statements {
		stmt.Accept(w)
	}
}

// AnalyzerProcessor adapts the analyzer to the pipeline.
type AnalyzerProcessor struct {
	Analyzer *Analyzer
}

func (ap *AnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	ctx.Errors = append(ctx.Errors, ap.Analyzer.Analyze(ctx.AstRoot)...)
	return ctx
}
