package consolecss

import (
	"io"
	"slices"

	"github.com/arthur-debert/consolecss/pkg/config"
	"github.com/arthur-debert/consolecss/pkg/console"
	"github.com/arthur-debert/consolecss/pkg/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// json encodes --format json output, with HTML escaping off.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

func checkFormat(format string) error {
	if slices.Contains(config.Formats(), format) {
		return nil
	}
	return errors.Newf(errors.ErrOutputFormat, "unknown output format %q", format).
		WithDetail("allowed", config.Formats())
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatJSON:
		data, err = json.Marshal(v)
		data = append(data, '\n')
	case config.FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return errors.Newf(errors.ErrOutputFormat, "%s is not a data format", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputFormat, "failed to encode %s", format)
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	return nil
}

// terminal returns the console used for ansi and plain output. Colour is
// off for plain output, --no-color and color = "never", forced on by
// color = "always" and detected from w otherwise.
func (o *options) terminal(w io.Writer, format string) (*console.TerminalConsole, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	var opts []console.TerminalOption
	switch {
	case format == config.FormatPlain, o.noColor, cfg.Output.Color == config.ColorNever:
		opts = append(opts, console.WithColor(false))
	case cfg.Output.Color == config.ColorAlways:
		opts = append(opts, console.WithColor(true))
	}
	return console.NewTerminalConsole(w, opts...), nil
}

// outputFormat resolves the --format flag against the configuration.
func (o *options) outputFormat(flag string) (string, error) {
	if flag == "" {
		cfg, err := o.config()
		if err != nil {
			return "", err
		}
		flag = cfg.Output.Format
	}
	if err := checkFormat(flag); err != nil {
		return "", err
	}
	return flag, nil
}

func completeFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return config.Formats(), cobra.ShellCompDirectiveNoFileComp
}
