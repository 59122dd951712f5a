package consolecss

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/consolecss/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sandbox isolates config, state and working directories for one test.
func sandbox(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderFormats(t *testing.T) {
	sandbox(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "json",
			args: []string{"render", "-f", "json", "<b>hi</b> %d", "3"},
			want: `["%chi%c%c %d%c","font-weight: bold;","","",3,""]` + "\n",
		},
		{
			name: "json keeps markup characters",
			args: []string{"render", "-f", "json", "a &lt; b"},
			want: `["%ca < b%c","",""]` + "\n",
		},
		{
			name: "plain with css and leftovers",
			args: []string{"render", "-f", "plain", "--css", ".x { color: red; }", `<span class="x">a</span> %s`, "world", "extra"},
			want: "a world extra\n",
		},
		{
			name: "typed arguments",
			args: []string{"render", "-f", "json", "%s %f", "x", "1.5", "nan"},
			want: `["%c%s %f%c","","x",1.5,"","nan"]` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderYAML(t *testing.T) {
	sandbox(t)

	out, err := run(t, nil, "render", "-f", "yaml", "<u>x</u> %d", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "text-decoration: underline;")
	assert.Contains(t, out, "- 7\n")
}

func TestRenderFromStdin(t *testing.T) {
	sandbox(t)

	out, err := run(t, strings.NewReader("<i>x</i>\n"), "render", "-f", "json", "-")
	require.NoError(t, err)
	assert.Equal(t, `["%cx%c","font-style: italic;",""]`+"\n", out)
}

func TestRenderUsesConfig(t *testing.T) {
	dir := sandbox(t)

	sheet := writeFile(t, filepath.Join(dir, "theme.css"), ".path {\n  color: gray;\n}\n")
	cfg := writeFile(t, filepath.Join(dir, "custom.toml"), `
[output]
format = "json"

[styles]
stylesheets = ["`+sheet+`"]
css = "b { color: red; }"
`)

	out, err := run(t, nil, "--config", cfg, "render", `<b>x</b><span class="path">y</span>`)
	require.NoError(t, err)
	assert.Equal(t, `["%cx%c%cy%c","font-weight: bold;;color: red","",";color: gray",""]`+"\n", out)
}

func TestRenderColor(t *testing.T) {
	dir := sandbox(t)
	writeFile(t, filepath.Join(dir, ".consolecss.toml"), "[output]\ncolor = \"always\"\n")

	out, err := run(t, nil, "render", "-f", "ansi", "<b>x</b>")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, err = run(t, nil, "--no-color", "render", "-f", "ansi", "<b>x</b>")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestRenderErrors(t *testing.T) {
	dir := sandbox(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{name: "unknown format", args: []string{"render", "-f", "xml", "x"}, code: errors.ErrOutputFormat},
		{name: "missing stylesheet", args: []string{"render", "-s", filepath.Join(dir, "nope.css"), "x"}, code: errors.ErrStylesheetRead},
		{name: "missing config", args: []string{"--config", filepath.Join(dir, "nope.toml"), "render", "x"}, code: errors.ErrConfigLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, nil, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}

	_, err := run(t, nil, "render")
	assert.Error(t, err, "markup is required")
}

func TestLog(t *testing.T) {
	sandbox(t)

	out, err := run(t, nil, "log", "-m", "warn", "<b>disk</b> full")
	require.NoError(t, err)
	assert.Equal(t, "! disk full\n", out)

	out, err = run(t, nil, "log", "--css", ".n { color: blue; }", `<span class="n">%d</span> jobs`, "4")
	require.NoError(t, err)
	assert.Equal(t, "4 jobs\n", out)

	out, err = run(t, nil, "log", "<i>%s</i>=%d", "k", "2")
	require.NoError(t, err)
	assert.Equal(t, "k=2\n", out)

	out, err = run(t, strings.NewReader("a\n<u>b</u>\n"), "log", "-m", "info", "-")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	_, err = run(t, nil, "log", "-m", "shout", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDeclarations(t *testing.T) {
	sandbox(t)
	css := ".x { color: red; } b { font-weight: 700; }"

	out, err := run(t, nil, "declarations", "-f", "json", "--css", css)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"type":"class","entity":"x","rules":["color: red"]},{"type":"tag","entity":"b","rules":["font-weight: 700"]}]`+"\n",
		out)

	out, err = run(t, nil, "declarations", "-f", "plain", "--css", css)
	require.NoError(t, err)
	assert.Contains(t, out, "SELECTOR")
	assert.Contains(t, out, ".x")
	assert.Contains(t, out, "color: red")
	assert.Contains(t, out, "font-weight: 700")

	out, err = run(t, nil, "declarations", "-f", "plain")
	require.NoError(t, err)
	assert.Equal(t, "No declarations.\n", out)

	out, err = run(t, nil, "declarations", "-f", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestConfigCommands(t *testing.T) {
	dir := sandbox(t)

	out, err := run(t, nil, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "format = 'ansi'")

	t.Setenv("CONSOLECSS_OUTPUT_FORMAT", "yaml")
	out, err = run(t, nil, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "format = 'yaml'")

	path := filepath.Join(dir, "conf", "config.toml")
	out, err = run(t, nil, "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote default configuration to "+path+"\n", out)
	assert.FileExists(t, path)

	_, err = run(t, nil, "config", "init", path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))

	_, err = run(t, nil, "config", "init", "--force", path)
	assert.NoError(t, err)
}

func TestVersionAndCompletion(t *testing.T) {
	sandbox(t)

	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "consolecss version "))

	out, err = run(t, nil, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "consolecss")

	_, err = run(t, nil, "completion", "tcsh")
	assert.Error(t, err)

	out, err = run(t, nil, "man")
	require.NoError(t, err)
	assert.Contains(t, out, `.TH "CONSOLECSS" "1"`)
}

func TestHelpTopics(t *testing.T) {
	sandbox(t)

	out, err := run(t, nil, "help", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"markup", "stylesheets", "substitutions", "configuration", "--format"} {
		assert.Contains(t, out, topic)
	}

	out, err = run(t, nil, "help", "substitutions")
	require.NoError(t, err)
	assert.Contains(t, out, "Substitutions")
}

func TestParseArgs(t *testing.T) {
	got := parseArgs([]string{"1", "-2", "1.25", "1e3", "inf", "NaN", "0x10", "text", ""})
	assert.Equal(t, []any{1, -2, 1.25, 1000.0, "inf", "NaN", "0x10", "text", ""}, got)
}
