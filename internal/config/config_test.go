package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsUsableWithoutAnyOverride(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10_000, cfg.MaxLines)
	assert.True(t, cfg.LevelColors)
	assert.Empty(t, cfg.Warnings)
}

func TestApplyFileMissingFileIsSilentlyIgnored(t *testing.T) {
	cfg := applyFile(Default(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.Empty(t, cfg.Warnings)
}

func TestApplyFileInvalidTOMLWarnsAndKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	cfg := applyFile(Default(), path)
	assert.NotEmpty(t, cfg.Warnings)
	assert.Equal(t, Default().MaxLines, cfg.MaxLines)
}

func TestApplyFileValidTOMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
max_lines = 500
level_colors = false
theme = "dracula"
`), 0o644))

	cfg := applyFile(Default(), path)
	assert.Equal(t, 500, cfg.MaxLines)
	assert.False(t, cfg.LevelColors)
	assert.Equal(t, "dracula", cfg.Theme)
}

func TestApplyFileUnknownThemeWarnsAndKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`theme = "not-a-theme"`), 0o644))

	cfg := applyFile(Default(), path)
	assert.NotEmpty(t, cfg.Warnings)
	assert.Equal(t, Default().Theme, cfg.Theme)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("BARK_MAX_LINES", "42")
	cfg := applyEnv(Default())
	assert.Equal(t, 42, cfg.MaxLines)
}

func TestEnvInvalidMaxLinesWarnsAndKeepsPrior(t *testing.T) {
	t.Setenv("BARK_MAX_LINES", "not-a-number")
	cfg := applyEnv(Default())
	assert.Equal(t, Default().MaxLines, cfg.MaxLines)
	assert.NotEmpty(t, cfg.Warnings)
}

func TestEnvBoolAcceptsNumericAndWordForms(t *testing.T) {
	t.Setenv("BARK_LEVEL_COLORS", "0")
	cfg := applyEnv(Default())
	assert.False(t, cfg.LevelColors)

	t.Setenv("BARK_LINE_WRAP", "true")
	cfg = applyEnv(Default())
	assert.True(t, cfg.LineWrap)
}

func TestEnvExportDirRejectsNonDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	t.Setenv("BARK_EXPORT_DIR", file)
	cfg := applyEnv(Default())
	assert.NotEqual(t, file, cfg.ExportDir)
	assert.NotEmpty(t, cfg.Warnings)
}

func TestConfigPathPrefersXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")
	assert.Equal(t, "/tmp/xdgtest/bark/config.toml", ConfigPath())
}
