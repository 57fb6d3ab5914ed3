package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/nslint/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.False(t, cfg.AllowComputed)
	assert.Equal(t, []string{".js", ".jsx", ".mjs"}, cfg.Extensions)
	assert.Equal(t, []string{"node_modules"}, cfg.Ignore)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
allow-computed: true
extensions:
  - .js
  - .jsx
ignore:
  - node_modules
  - dist
  - "*.min.js"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.AllowComputed)
	assert.Equal(t, []string{".js", ".jsx"}, cfg.Extensions)
	assert.Equal(t, []string{"node_modules", "dist", "*.min.js"}, cfg.Ignore)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("allow-computed: [not a bool"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyExtensionsFallBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("allow-computed: true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".js", ".jsx", ".mjs"}, cfg.Extensions)
}

func TestDiscoverWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ConfigFileName), []byte("allow-computed: true\n"), 0o644))

	cfg, err := config.Discover(nested)
	require.NoError(t, err)
	assert.True(t, cfg.AllowComputed)
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Discover(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestIgnored(t *testing.T) {
	cfg := config.Default()
	cfg.Ignore = []string{"node_modules", "*.min.js"}

	assert.True(t, cfg.Ignored("/project/node_modules"))
	assert.True(t, cfg.Ignored("/project/dist/app.min.js"))
	assert.False(t, cfg.Ignored("/project/src/app.js"))
}

func TestIsSourceFile(t *testing.T) {
	cfg := config.Default()
	assert.True(t, cfg.IsSourceFile("a.js"))
	assert.True(t, cfg.IsSourceFile("a.jsx"))
	assert.True(t, cfg.IsSourceFile("a.mjs"))
	assert.False(t, cfg.IsSourceFile("a.ts"))
	assert.False(t, cfg.IsSourceFile("a"))
}
