package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromDefaultsWhenNoFiles(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(filepath.Join(dir, "missing.toml"), "")
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.DefaultFrontend)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "gtk-launch", cfg.Launcher["helper"])
	assert.Contains(t, cfg.Frontends, "rofi")
	assert.Contains(t, cfg.Frontends, "fzf")
}

func TestLoadFromMergesUserOverDefaults(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "config.toml", `
default_frontend = "rofi"

[log]
level = "debug"

[notifications]
enabled = true

[launcher]
helper = "dex"

[frontends.rofi]
args = ["-i", "-theme", "solarized"]
`)

	cfg, err := LoadFrom(user, "")
	require.NoError(t, err)

	assert.Equal(t, "rofi", cfg.DefaultFrontend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "critical", cfg.Notifications.Urgency)
	assert.Equal(t, "dex", cfg.Launcher["helper"])

	rofi, ok := cfg.GetFrontendConfig("rofi")
	require.True(t, ok)
	assert.Equal(t, "rofi", rofi.Command)
	assert.Equal(t, []string{"-i", "-theme", "solarized"}, rofi.Args)

	// untouched sections keep every default key
	assert.Contains(t, cfg.Terminal, "candidates")
	assert.Contains(t, cfg.Scanner, "exclude")
}

func TestLoadFromFallsBackToSystemConfig(t *testing.T) {
	dir := t.TempDir()
	system := writeFile(t, dir, "system.toml", `default_frontend = "dmenu"`)

	cfg, err := LoadFrom(filepath.Join(dir, "nope.toml"), system)
	require.NoError(t, err)
	assert.Equal(t, "dmenu", cfg.DefaultFrontend)
}

func TestLoadFromBrokenUserConfigUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "config.toml", "default_frontend = [")

	cfg, err := LoadFrom(user, "")
	require.NoError(t, err)
	assert.Equal(t, "tui", cfg.DefaultFrontend)
}

func TestLoadExplicitPathMustParse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.toml", "[[[")

	_, err := Load(path)
	require.Error(t, err)
}

func TestSectionDecodeKeepsDefaults(t *testing.T) {
	type moduleConfig struct {
		Helper   string   `mapstructure:"helper"`
		Names    []string `mapstructure:"names"`
		Required bool     `mapstructure:"required"`
	}

	cfg := moduleConfig{Helper: "gtk-launch", Names: []string{"a", "b", "c"}}
	section := Section{
		"names":    []any{"x"},
		"required": "true",
	}

	require.NoError(t, section.Decode(&cfg))
	assert.Equal(t, "gtk-launch", cfg.Helper)
	assert.Equal(t, []string{"x"}, cfg.Names)
	assert.True(t, cfg.Required)
}

func TestInitUserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, InitUserConfig())

	data, err := os.ReadFile(filepath.Join(dir, "qmenu", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfigContent(), string(data))

	assert.Error(t, InitUserConfig(), "second init must not overwrite")
}
