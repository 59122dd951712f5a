package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/consolecss/pkg/config"
	"github.com/arthur-debert/consolecss/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory and the working directory at
// fresh temporary directories.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.FormatANSI, cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
	assert.Empty(t, cfg.Styles.Stylesheets)
	assert.Empty(t, cfg.Styles.CSS)
}

func TestLoadLayers(t *testing.T) {
	dir := isolate(t)

	writeFile(t, config.UserConfigPath(), `
[output]
format = "json"
color = "never"

[styles]
css = "b { color: red; }"
`)
	writeFile(t, filepath.Join(dir, config.LocalConfigName), `
[output]
format = "yaml"
`)
	explicit := filepath.Join(dir, "extra.toml")
	writeFile(t, explicit, `
[styles]
stylesheets = ["theme.css"]
`)

	cfg, err := config.Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format, "local file overrides user file")
	assert.Equal(t, config.ColorNever, cfg.Output.Color, "user file overrides defaults")
	assert.Equal(t, "b { color: red; }", cfg.Styles.CSS)
	assert.Equal(t, []string{"theme.css"}, cfg.Styles.Stylesheets)
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CONSOLECSS_OUTPUT_FORMAT", "plain")
	t.Setenv("CONSOLECSS_STYLES_STYLESHEETS", "a.css,b.css")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.FormatPlain, cfg.Output.Format)
	assert.Equal(t, []string{"a.css", "b.css"}, cfg.Styles.Stylesheets)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		dir := isolate(t)
		_, err := config.Load(filepath.Join(dir, "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("broken toml", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, config.LocalConfigName), "[output\nformat =")
		_, err := config.Load("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid value", func(t *testing.T) {
		isolate(t)
		t.Setenv("CONSOLECSS_OUTPUT_COLOR", "sometimes")
		_, err := config.Load("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "valid", cfg: config.Config{Output: config.Output{Format: "json", Color: "always"}}},
		{name: "bad format", cfg: config.Config{Output: config.Output{Format: "xml", Color: "auto"}}, wantErr: true},
		{name: "bad color", cfg: config.Config{Output: config.Output{Format: "ansi", Color: ""}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestToTOML(t *testing.T) {
	cfg := &config.Config{
		Output: config.Output{Format: "json", Color: "never"},
		Styles: config.Styles{Stylesheets: []string{"a.css"}, CSS: ".x { color: red; }"},
	}
	out, err := config.ToTOML(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[output]")
	assert.Contains(t, string(out), "format = 'json'")
	assert.Contains(t, string(out), "stylesheets = ['a.css']")
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, config.WriteDefault(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultContent(), string(data))

	err = config.WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))

	assert.NoError(t, config.WriteDefault(path, true))
}
