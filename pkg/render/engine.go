// Package render translates styled markup into the argument list of a
// console that understands `%c` style directives.
//
// A message such as
//
//	<b>saved</b> %d files to <span class="path">%s</span>
//
// with the rule `.path { color: gray; }` and the arguments 3 and "/tmp"
// renders to a template with one `%c...%c` pair per text run, followed by
// the style string for each run, the reset that closes it and the caller's
// own substitution values in the position the console will consume them:
//
//	["%csaved%c%c %d files to %c%c%s%c", "font-weight: bold;", "", "", 3, "", ";color: gray", "/tmp", ""]
//
// An Engine holds the declared rules (see package declarations); rendering
// itself keeps no state between calls.
package render

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/consolecss/pkg/declarations"
	"github.com/arthur-debert/consolecss/pkg/markup"
	"github.com/rs/zerolog"
)

// substitutionToken matches the directives a console fills from its
// arguments: %s, %d, %i, %f, %o, %O and precision forms like %.2f.
var substitutionToken = regexp.MustCompile(`%[Odfios]|%\.\d+[dfi]`)

// Styles implied by the inline formatting tags. They go first in the
// element's style so anything explicit overrides them.
var tagStyles = map[string]string{
	"b": "font-weight: bold",
	"i": "font-style: italic",
	"u": "text-decoration: underline",
	"s": "text-decoration: line-through",
}

// Engine renders markup using a declaration store.
type Engine struct {
	store *declarations.Store
	log   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for render traces.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New returns an engine backed by store. A nil store gives the engine a
// private, empty one. The engine is silent unless WithLogger is given.
func New(store *declarations.Store, opts ...Option) *Engine {
	if store == nil {
		store = declarations.NewStore()
	}
	e := &Engine{
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add declares rules, see declarations.Store.Add.
func (e *Engine) Add(css string) {
	e.store.Add(css)
	e.log.Trace().Int("declarations", e.store.Len()).Msg("Declarations added")
}

// Reset drops all declared rules.
func (e *Engine) Reset() {
	e.store.Reset()
	e.log.Trace().Msg("Declarations reset")
}

// Store returns the engine's declaration store.
func (e *Engine) Store() *declarations.Store {
	return e.store
}

// accumulator collects the arguments that follow the template. It belongs
// to a single Render call.
type accumulator struct {
	// substitutions holds, per text run, its style, the values for its
	// substitution tokens and the closing "" reset.
	substitutions []any
	// rest holds the caller's arguments not yet matched to a token.
	rest []any
}

// Render renders message and returns the console argument list:
// the template, the per-run styles and substitution values, then any
// arguments no token asked for. A message that is not a string is passed
// through untouched together with args.
func (e *Engine) Render(message any, args ...any) []any {
	text, ok := message.(string)
	if !ok {
		return append([]any{message}, args...)
	}

	acc := &accumulator{rest: append([]any(nil), args...)}
	nodes := markup.Parse(markup.FormatImages(text))
	template := e.renderNodes(nodes, "", acc)

	out := make([]any, 0, 1+len(acc.substitutions)+len(acc.rest))
	out = append(out, template)
	out = append(out, acc.substitutions...)
	out = append(out, acc.rest...)

	e.log.Trace().
		Int("nodes", len(nodes)).
		Int("substitutions", len(acc.substitutions)).
		Int("leftover", len(acc.rest)).
		Msg("Rendered message")
	return out
}

// Sprint renders message and splits the result into the template and the
// arguments that go with it.
func (e *Engine) Sprint(message any, args ...any) (string, []any) {
	out := e.Render(message, args...)
	template, ok := out[0].(string)
	if !ok {
		return "", out
	}
	return template, out[1:]
}

func (e *Engine) renderNodes(nodes []markup.Node, inherited string, acc *accumulator) string {
	if len(nodes) == 1 {
		if t, ok := nodes[0].(*markup.Text); ok {
			return renderRun(t.Data, inherited, acc)
		}
	}

	var b strings.Builder
	for _, n := range nodes {
		switch child := n.(type) {
		case *markup.Text:
			if child.Data == "" {
				continue
			}
			b.WriteString(renderRun(child.Data, inherited, acc))
		case *markup.Element:
			b.WriteString(e.renderNodes(child.Children, e.elementStyle(child, inherited), acc))
		}
	}
	return b.String()
}

// elementStyle computes the style string for el's content: the implied tag
// style, the inherited declarations, the inline style and finally the
// declared rules matching el.
func (e *Engine) elementStyle(el *markup.Element, inherited string) string {
	style := strings.Split(inherited, ";")
	style = append(style, el.Style...)
	if implied, ok := tagStyles[el.Tag]; ok {
		style = append([]string{implied}, style...)
	}
	style = append(style, e.store.Resolve(el.Tag, el.Classes)...)
	return strings.Join(style, ";")
}

// renderRun emits one `%c...%c` pair. Every substitution token in content
// takes the next pending argument; once arguments run out the remaining
// tokens are cut from the text so no bare directive reaches the console.
func renderRun(content, style string, acc *accumulator) string {
	acc.substitutions = append(acc.substitutions, style)

	removed := 0
	for _, m := range substitutionToken.FindAllStringIndex(content, -1) {
		if len(acc.rest) > 0 {
			acc.substitutions = append(acc.substitutions, acc.rest[0])
			acc.rest = acc.rest[1:]
			continue
		}
		start, end := m[0]-removed, m[1]-removed
		content = content[:start] + content[end:]
		removed += m[1] - m[0]
	}

	acc.substitutions = append(acc.substitutions, "")
	return "%c" + content + "%c"
}
