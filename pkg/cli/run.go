package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/funvibe/nslint/internal/analyzer"
	"github.com/funvibe/nslint/internal/config"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/lexer"
	"github.com/funvibe/nslint/internal/modules"
	"github.com/funvibe/nslint/internal/parser"
	"github.com/funvibe/nslint/internal/pipeline"
)

// Runner lints files with one shared export-map resolver per run.
type Runner struct {
	cfg      *config.Config
	resolver *modules.Resolver
	opts     analyzer.Options
}

func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		cfg:      cfg,
		resolver: modules.NewResolver(cfg),
		opts:     analyzer.Options{AllowComputed: cfg.AllowComputed},
	}
}

// LintFile runs the full pipeline over one file and returns its
// diagnostics.
func (r *Runner) LintFile(path string) ([]*diagnostics.DiagnosticError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.File = path
	pipe := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.AnalyzerProcessor{Analyzer: analyzer.New(r.resolver, r.opts)},
	)
	ctx = pipe.Run(ctx)

	for _, e := range ctx.Errors {
		if e.File == "" {
			e.File = path
		}
	}
	return ctx.Errors, nil
}

// CollectFiles expands the given paths into lintable source files,
// walking directories and honoring the ignore list.
func (r *Runner) CollectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				if r.cfg.Ignored(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if r.cfg.Ignored(p) {
				return nil
			}
			if r.cfg.IsSourceFile(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
