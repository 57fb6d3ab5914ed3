package modules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/config"
	"github.com/funvibe/nslint/internal/lexer"
	"github.com/funvibe/nslint/internal/parser"
	"github.com/funvibe/nslint/internal/pipeline"
)

// Resolver builds and caches export maps per module file. The cache is
// keyed by absolute path and owned by one Resolver; a Resolver is created
// per lint run and never shared across concurrent analyses.
type Resolver struct {
	cache      map[string]*ExportMap
	extensions []string
}

func NewResolver(cfg *config.Config) *Resolver {
	exts := config.SourceFileExtensions
	if cfg != nil && len(cfg.Extensions) > 0 {
		exts = cfg.Extensions
	}
	return &Resolver{
		cache:      make(map[string]*ExportMap),
		extensions: exts,
	}
}

// ResolveImport resolves a module specifier as seen from fromFile and
// returns the target's export map. Bare package specifiers and missing
// files yield nil: the caller skips them without a diagnostic.
func (r *Resolver) ResolveImport(fromFile, specifier string) *ExportMap {
	path := r.resolvePath(fromFile, specifier)
	if path == "" {
		return nil
	}
	return r.ExportMapForFile(path)
}

// resolvePath maps a specifier to a concrete file, probing configured
// extensions and directory index files.
func (r *Resolver) resolvePath(fromFile, specifier string) string {
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") &&
		!filepath.IsAbs(specifier) {
		return "" // bare package specifier, outside our module graph
	}
	base := filepath.Dir(fromFile)
	candidate := specifier
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(base, specifier)
	}

	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	for _, ext := range r.extensions {
		if info, err := os.Stat(candidate + ext); err == nil && !info.IsDir() {
			return candidate + ext
		}
	}
	for _, ext := range r.extensions {
		indexFile := filepath.Join(candidate, config.IndexBaseName+ext)
		if info, err := os.Stat(indexFile); err == nil && !info.IsDir() {
			return indexFile
		}
	}
	return ""
}

// ExportMapForFile parses path and builds its export map. Results are
// cached; the map is registered before the file is walked so cyclic
// re-export chains terminate on the partially built map.
func (r *Resolver) ExportMapForFile(path string) *ExportMap {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	if cached, ok := r.cache[abs]; ok {
		return cached
	}

	source, err := os.ReadFile(abs)
	if err != nil {
		return nil
	}

	m := newExportMap(abs)
	r.cache[abs] = m

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.File = abs
	pipe := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = pipe.Run(ctx)

	if len(ctx.Errors) > 0 {
		m.errors = ctx.Errors
		return m
	}

	r.collectExports(m, ctx.AstRoot)
	return m
}

// collectExports walks the module's top-level statements. Import
// declarations are processed first so that re-exports of local namespace
// bindings (import * as d; export { d }) see their nested maps.
func (r *Resolver) collectExports(m *ExportMap, program *ast.Program) {
	localBindings := make(map[string]*Export)

	for _, stmt := range program.Statements {
		imp, ok := stmt.(*ast.ImportDeclaration)
		if !ok || imp.Source == nil {
			continue
		}
		dep := r.ResolveImport(m.Path, imp.Source.Value)
		if dep == nil || dep.HasErrors() {
			continue
		}
		for _, spec := range imp.Specifiers {
			switch spec.Kind {
			case ast.ImportNamespace:
				localBindings[spec.Local.Value] = &Export{Namespace: dep}
			case ast.ImportDefault:
				if exp := dep.Get("default"); exp != nil {
					localBindings[spec.Local.Value] = exp
				}
			case ast.ImportNamed:
				if exp := dep.Get(spec.Imported.Value); exp != nil {
					localBindings[spec.Local.Value] = exp
				}
			}
		}
	}

	for _, stmt := range program.Statements {
		switch n := stmt.(type) {
		case *ast.ExportNamedDeclaration:
			r.collectNamedExports(m, n, localBindings)
		case *ast.ExportAllDeclaration:
			r.collectStarExport(m, n)
		case *ast.ExportDefaultDeclaration:
			m.set("default", &Export{})
		}
	}
}

func (r *Resolver) collectNamedExports(m *ExportMap, n *ast.ExportNamedDeclaration, localBindings map[string]*Export) {
	if n.Declaration != nil {
		for _, name := range declaredNames(n.Declaration) {
			m.set(name, &Export{})
		}
		return
	}

	if n.Source == nil {
		// export { a, ns as b } over local bindings.
		for _, spec := range n.Specifiers {
			if exp, ok := localBindings[spec.Local.Value]; ok {
				m.set(spec.Exported.Value, exp)
			} else {
				m.set(spec.Exported.Value, &Export{})
			}
		}
		return
	}

	dep := r.ResolveImport(m.Path, n.Source.Value)
	for _, spec := range n.Specifiers {
		if dep == nil || dep.HasErrors() {
			// Present but unresolved: Has answers true, Get stays nil.
			m.exports[spec.Exported.Value] = nil
			continue
		}
		m.set(spec.Exported.Value, dep.Get(spec.Local.Value))
	}
}

func (r *Resolver) collectStarExport(m *ExportMap, n *ast.ExportAllDeclaration) {
	if n.Source == nil {
		return
	}
	dep := r.ResolveImport(m.Path, n.Source.Value)

	if n.Exported != nil {
		// export * as ns from "m"
		if dep == nil || dep.HasErrors() {
			m.exports[n.Exported.Value] = nil
			return
		}
		m.set(n.Exported.Value, &Export{Namespace: dep})
		return
	}

	// export * from "m": copy everything except default.
	if dep == nil || dep.HasErrors() {
		return
	}
	for _, name := range dep.Names() {
		if name == "default" {
			continue
		}
		m.set(name, dep.Get(name))
	}
}

// declaredNames lists the names bound by an exported declaration.
func declaredNames(stmt ast.Statement) []string {
	switch n := stmt.(type) {
	case *ast.VariableDeclaration:
		var names []string
		for _, d := range n.Declarations {
			names = append(names, patternNames(d.ID)...)
		}
		return names
	case *ast.FunctionDeclaration:
		if n.Name != nil {
			return []string{n.Name.Value}
		}
	case *ast.ClassDeclaration:
		if n.Name != nil {
			return []string{n.Name.Value}
		}
	}
	return nil
}

// patternNames lists the identifiers bound by a destructuring pattern.
func patternNames(node ast.Node) []string {
	switch n := node.(type) {
	case *ast.Identifier:
		return []string{n.Value}
	case *ast.ObjectPattern:
		var names []string
		for _, prop := range n.Properties {
			names = append(names, patternNames(prop.Value)...)
		}
		if n.Rest != nil {
			names = append(names, patternNames(n.Rest.Argument)...)
		}
		return names
	case *ast.ArrayPattern:
		var names []string
		for _, el := range n.Elements {
			if el != nil {
				names = append(names, patternNames(el)...)
			}
		}
		return names
	case *ast.RestElement:
		return patternNames(n.Argument)
	case *ast.AssignmentPattern:
		return patternNames(n.Left)
	}
	return nil
}
