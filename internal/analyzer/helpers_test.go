package analyzer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/lexer"
	"github.com/funvibe/nslint/internal/modules"
	"github.com/funvibe/nslint/internal/parser"
	"github.com/funvibe/nslint/internal/pipeline"
)

// analyzeFixture writes the given files into a temp dir, then lexes,
// parses and analyzes the entry file, returning all diagnostics.
func analyzeFixture(t *testing.T, files map[string]string, entry string, opts Options) []*diagnostics.DiagnosticError {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	entryPath := filepath.Join(dir, entry)
	source, err := os.ReadFile(entryPath)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.File = entryPath
	pipe := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&AnalyzerProcessor{Analyzer: New(modules.NewResolver(nil), opts)},
	)
	ctx = pipe.Run(ctx)
	return ctx.Errors
}

// expectError asserts that exactly one diagnostic with the given code
// was produced and that its message contains substr.
func expectError(t *testing.T, errs []*diagnostics.DiagnosticError, code diagnostics.ErrorCode, substr string) {
	t.Helper()
	var matches []*diagnostics.DiagnosticError
	for _, e := range errs {
		if e.Code == code {
			matches = append(matches, e)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one %s diagnostic, got %d:\n%s", code, len(matches), formatErrors(errs))
	}
	if !strings.Contains(matches[0].Message, substr) {
		t.Errorf("expected %s message to contain %q, got: %s", code, substr, matches[0].Message)
	}
}

// expectErrorCount asserts the total number of diagnostics.
func expectErrorCount(t *testing.T, errs []*diagnostics.DiagnosticError, want int) {
	t.Helper()
	if len(errs) != want {
		t.Fatalf("expected %d diagnostics, got %d:\n%s", want, len(errs), formatErrors(errs))
	}
}

// expectNoErrors asserts that analysis produced no diagnostics at all.
func expectNoErrors(t *testing.T, errs []*diagnostics.DiagnosticError) {
	t.Helper()
	if len(errs) > 0 {
		t.Fatalf("expected no diagnostics, got:\n%s", formatErrors(errs))
	}
}

func formatErrors(errs []*diagnostics.DiagnosticError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// Shared fixture modules used across the tests below.
var fixtureModules = map[string]string{
	"leaf.js": `
export const x = 1;
export const y = 2;
export function fn() { return 3; }
`,
	"mid.js": `
export * as leaf from './leaf';
export const m = 1;
`,
	"root.js": `
export * as mid from './mid';
export const r = 1;
`,
	"empty.js": ``,
	"broken.js": `
const = ;
`,
	"urx.js": `
export { foo } from './nonexistent';
export const ok = 1;
`,
	"leafns.js": `
export * as inner from './leaf';
export default 1;
`,
}

func withFixtures(extra map[string]string) map[string]string {
	files := make(map[string]string, len(fixtureModules)+len(extra))
	for k, v := range fixtureModules {
		files[k] = v
	}
	for k, v := range extra {
		files[k] = v
	}
	return files
}
