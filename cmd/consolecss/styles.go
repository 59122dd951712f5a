package consolecss

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/consolecss/pkg/config"
	"github.com/arthur-debert/consolecss/pkg/errors"
	"github.com/arthur-debert/consolecss/pkg/logging"
	"github.com/arthur-debert/consolecss/pkg/render"
)

// styleFlags are the declaration sources a command accepts on top of the
// configured ones.
type styleFlags struct {
	stylesheets []string
	css         []string
}

// newEngine builds an engine loaded with the configured stylesheets and
// CSS, then the ones given on the command line.
func newEngine(cfg *config.Config, flags styleFlags) (*render.Engine, error) {
	logger := logging.GetLogger("cmd.styles")
	done := logging.LogOperationStart(logger, "load-styles")
	defer done()

	engine := render.New(nil, render.WithLogger(logging.GetLogger("render")))

	load := func(paths []string, css []string) error {
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrStylesheetRead, "failed to read stylesheet %s", path).
					WithDetail("path", path)
			}
			engine.Add(string(data))
			logger.Debug().Str("path", path).Msg("Loaded stylesheet")
		}
		for _, c := range css {
			engine.Add(c)
		}
		return nil
	}

	if err := load(cfg.Styles.Stylesheets, []string{cfg.Styles.CSS}); err != nil {
		return nil, err
	}
	if err := load(flags.stylesheets, flags.css); err != nil {
		return nil, err
	}

	logger.Debug().Int("declarations", engine.Store().Len()).Msg("Declarations loaded")
	return engine, nil
}

// parseArgs types substitution arguments: integers and finite floats
// become numbers, anything else stays a string.
func parseArgs(raw []string) []any {
	out := make([]any, 0, len(raw))
	for _, s := range raw {
		if i, err := strconv.Atoi(s); err == nil {
			out = append(out, i)
			continue
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			out = append(out, f)
			continue
		}
		out = append(out, s)
	}
	return out
}

// readMarkup returns arg, or all of in when arg is "-".
func readMarkup(in io.Reader, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read markup from stdin")
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// eachLine calls fn for every line of in.
func eachLine(in io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "failed to read markup from stdin")
	}
	return nil
}
