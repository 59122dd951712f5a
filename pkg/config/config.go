package config

import (
	"slices"

	"github.com/arthur-debert/consolecss/pkg/errors"
)

// Output formats of the render and declarations commands.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatANSI  = "ansi"
	FormatPlain = "plain"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	formats    = []string{FormatJSON, FormatYAML, FormatANSI, FormatPlain}
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// Config is the effective consolecss configuration.
type Config struct {
	Output Output `koanf:"output" toml:"output"`
	Styles Styles `koanf:"styles" toml:"styles"`
}

type Output struct {
	Format string `koanf:"format" toml:"format"`
	Color  string `koanf:"color" toml:"color"`
}

// Styles lists the declarations preloaded into the store. Stylesheets
// are read in order, CSS is added last.
type Styles struct {
	Stylesheets []string `koanf:"stylesheets" toml:"stylesheets"`
	CSS         string   `koanf:"css" toml:"css"`
}

// Validate rejects unknown output formats and colour modes.
func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigInvalid, "unknown output format %q", c.Output.Format).
			WithDetail("allowed", formats)
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		return errors.Newf(errors.ErrConfigInvalid, "unknown color mode %q", c.Output.Color).
			WithDetail("allowed", colorModes)
	}
	return nil
}

// Formats returns the accepted output formats.
func Formats() []string {
	return slices.Clone(formats)
}
