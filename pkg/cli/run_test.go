package cli

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/nslint/internal/config"
	"github.com/funvibe/nslint/internal/diagnostics"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	}
	return dir
}

func TestLintFileReportsNamespaceProblems(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"lib.js": `export const x = 1;`,
		"main.js": `
import * as ns from './lib';
ns.x;
ns.missing;
`,
	})

	runner := NewRunner(config.Default())
	errs, err := runner.LintFile(filepath.Join(dir, "main.js"))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrN002, errs[0].Code)
	assert.Equal(t, filepath.Join(dir, "main.js"), errs[0].File)
}

func TestLintFileCleanSource(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"lib.js": `export const x = 1;`,
		"main.js": `
import * as ns from './lib';
ns.x;
`,
	})

	runner := NewRunner(config.Default())
	errs, err := runner.LintFile(filepath.Join(dir, "main.js"))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestLintFileMissing(t *testing.T) {
	runner := NewRunner(config.Default())
	_, err := runner.LintFile(filepath.Join(t.TempDir(), "nope.js"))
	assert.Error(t, err)
}

func TestLintFileHonorsAllowComputed(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"lib.js":  `export const x = 1;`,
		"main.js": "import * as ns from './lib';\nns['x'];\n",
	})

	cfg := config.Default()
	cfg.AllowComputed = true
	runner := NewRunner(cfg)
	errs, err := runner.LintFile(filepath.Join(dir, "main.js"))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestCollectFiles(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/a.js":                    ``,
		"src/b.jsx":                   ``,
		"src/c.mjs":                   ``,
		"src/readme.md":               ``,
		"node_modules/dep/ignored.js": ``,
	})

	runner := NewRunner(config.Default())
	files, err := runner.CollectFiles([]string{dir})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		rel, relErr := filepath.Rel(dir, f)
		require.NoError(t, relErr)
		names = append(names, filepath.ToSlash(rel))
	}
	sort.Strings(names)
	assert.Equal(t, []string{"src/a.js", "src/b.jsx", "src/c.mjs"}, names)
}

func TestCollectFilesExplicitFile(t *testing.T) {
	dir := writeProject(t, map[string]string{"main.js": ``})
	path := filepath.Join(dir, "main.js")

	runner := NewRunner(config.Default())
	files, err := runner.CollectFiles([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectFilesMissingPath(t *testing.T) {
	runner := NewRunner(config.Default())
	_, err := runner.CollectFiles([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}
