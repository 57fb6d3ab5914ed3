package modules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/nslint/internal/modules"
)

func writeModules(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	}
	return dir
}

func TestExportMapCollectsDeclarations(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"mod.js": `
export const a = 1, b = 2;
export let c = 3;
export function fn() {}
export class Klass {}
export default fn;
export const { d, e: renamed } = obj;
export const [f, g] = arr;
`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "mod.js"))
	require.NotNil(t, m)
	assert.False(t, m.HasErrors())

	for _, name := range []string{"a", "b", "c", "fn", "Klass", "default", "d", "renamed", "f", "g"} {
		assert.True(t, m.Has(name), "expected export %q", name)
	}
	assert.False(t, m.Has("e"), "renamed destructured export keeps the binding name only")
	assert.Equal(t, 10, m.Size())
}

func TestExportClauseLocalNames(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"mod.js": `
const a = 1;
const b = 2;
export { a, b as c };
`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "mod.js"))
	require.NotNil(t, m)
	assert.True(t, m.Has("a"))
	assert.True(t, m.Has("c"))
	assert.False(t, m.Has("b"))
}

func TestStarReexportExcludesDefault(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"dep.js": `
export const x = 1;
export default 2;
`,
		"mod.js": `export * from './dep';`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "mod.js"))
	require.NotNil(t, m)
	assert.True(t, m.Has("x"))
	assert.False(t, m.Has("default"), "export * must not forward the default export")
}

func TestNamespaceReexportCarriesNestedMap(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"dep.js": `export const x = 1;`,
		"mod.js": `export * as dep from './dep';`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "mod.js"))
	require.NotNil(t, m)
	require.True(t, m.Has("dep"))
	exp := m.Get("dep")
	require.NotNil(t, exp)
	require.NotNil(t, exp.Namespace)
	assert.True(t, exp.Namespace.Has("x"))
}

func TestNamedReexportFromUnresolvableModule(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"mod.js": `export { ghost } from './nonexistent';`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "mod.js"))
	require.NotNil(t, m)

	// The name is known even though its shape is not.
	assert.True(t, m.Has("ghost"))
	assert.Nil(t, m.Get("ghost"))
	assert.False(t, m.HasErrors())
}

func TestReexportOfImportedNamespace(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"dep.js": `export const x = 1;`,
		"mod.js": `
import * as dep from './dep';
export { dep };
`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "mod.js"))
	require.NotNil(t, m)
	require.True(t, m.Has("dep"))
	exp := m.Get("dep")
	require.NotNil(t, exp)
	require.NotNil(t, exp.Namespace)
	assert.True(t, exp.Namespace.Has("x"))
}

func TestParseErrorsAreRecorded(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"broken.js": `const = ;`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "broken.js"))
	require.NotNil(t, m)
	assert.True(t, m.HasErrors())
	assert.Equal(t, 0, m.Size())
}

func TestResolveImportExtensionProbing(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"plain.js":     `export const a = 1;`,
		"comp.jsx":     `export const b = 1;`,
		"lib/index.js": `export const c = 1;`,
		"main.js":      ``,
	})
	from := filepath.Join(dir, "main.js")

	r := modules.NewResolver(nil)

	testCases := []struct {
		name      string
		specifier string
		export    string
	}{
		{"explicit_extension", "./plain.js", "a"},
		{"probed_js", "./plain", "a"},
		{"probed_jsx", "./comp", "b"},
		{"directory_index", "./lib", "c"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := r.ResolveImport(from, tc.specifier)
			require.NotNil(t, m)
			assert.True(t, m.Has(tc.export))
		})
	}
}

func TestResolveImportBareSpecifier(t *testing.T) {
	r := modules.NewResolver(nil)
	assert.Nil(t, r.ResolveImport("/tmp/main.js", "react"))
	assert.Nil(t, r.ResolveImport("/tmp/main.js", "path"))
}

func TestResolveImportMissingFile(t *testing.T) {
	dir := writeModules(t, map[string]string{"main.js": ``})
	r := modules.NewResolver(nil)
	assert.Nil(t, r.ResolveImport(filepath.Join(dir, "main.js"), "./nope"))
}

func TestExportMapIsCached(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"dep.js": `export const x = 1;`,
	})

	r := modules.NewResolver(nil)
	path := filepath.Join(dir, "dep.js")
	first := r.ExportMapForFile(path)
	second := r.ExportMapForFile(path)
	assert.Same(t, first, second)
}

func TestCyclicStarReexportsTerminate(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"a.js": `
export * from './b';
export const fromA = 1;
`,
		"b.js": `
export * from './a';
export const fromB = 1;
`,
	})

	r := modules.NewResolver(nil)
	a := r.ExportMapForFile(filepath.Join(dir, "a.js"))
	require.NotNil(t, a)
	assert.True(t, a.Has("fromA"))
	assert.True(t, a.Has("fromB"))
}

func TestNamesAreSorted(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"mod.js": `
export const zebra = 1;
export const alpha = 2;
export const mango = 3;
`,
	})

	r := modules.NewResolver(nil)
	m := r.ExportMapForFile(filepath.Join(dir, "mod.js"))
	require.NotNil(t, m)
	assert.Equal(t, []string{"alpha", "mango", "zebra"}, m.Names())
}
