package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/consolecss/pkg/cssterm"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const defaultLabel = "default"

// TerminalConsole is a Console writing to a terminal. It interprets %c
// styles as ANSI attributes and keeps the group, counter and timer state
// a host console has.
type TerminalConsole struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	color    *bool
	now      func() time.Time

	indent int
	counts map[string]int
	timers map[string]time.Time
}

// TerminalOption configures a TerminalConsole.
type TerminalOption func(*TerminalConsole)

// WithColor forces styled output on or off instead of detecting it from
// the writer.
func WithColor(enabled bool) TerminalOption {
	return func(t *TerminalConsole) {
		t.color = &enabled
		if !enabled {
			t.renderer.SetColorProfile(termenv.Ascii)
		} else if t.renderer.ColorProfile() == termenv.Ascii {
			t.renderer.SetColorProfile(termenv.TrueColor)
		}
	}
}

// WithClock replaces the time source used by time, timeLog and timeEnd.
func WithClock(now func() time.Time) TerminalOption {
	return func(t *TerminalConsole) {
		t.now = now
	}
}

// NewTerminalConsole returns a console writing to w.
func NewTerminalConsole(w io.Writer, opts ...TerminalOption) *TerminalConsole {
	t := &TerminalConsole{
		out:      w,
		renderer: lipgloss.NewRenderer(w),
		now:      time.Now,
		counts:   make(map[string]int),
		timers:   make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var (
	warnPrefix  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD75F"}).Bold(true)
	errorPrefix = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}).Bold(true)
)

// Call implements Console.
func (t *TerminalConsole) Call(m Method, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch m {
	case MethodGroup, MethodGroupCollapsed:
		if len(args) > 0 {
			t.writeLine(m, t.format(args))
		}
		t.indent++
	case MethodGroupEnd:
		if t.indent > 0 {
			t.indent--
		}
	case MethodClear:
		if t.colorEnabled() {
			fmt.Fprint(t.out, "\x1b[H\x1b[2J")
		}
		t.indent = 0
	case MethodAssert:
		if len(args) > 0 && truthy(args[0]) {
			return
		}
		msg := "Assertion failed"
		if len(args) > 1 {
			msg += ": " + t.format(args[1:])
		}
		t.writeLine(MethodError, msg)
	case MethodCount:
		label := t.label(args)
		t.counts[label]++
		t.writeLine(m, fmt.Sprintf("%s: %d", label, t.counts[label]))
	case MethodCountReset:
		label := t.label(args)
		if _, ok := t.counts[label]; !ok {
			t.writeLine(MethodWarn, fmt.Sprintf("Count for '%s' does not exist", label))
			return
		}
		t.counts[label] = 0
	case MethodTime:
		label := t.label(args)
		if _, ok := t.timers[label]; ok {
			t.writeLine(MethodWarn, fmt.Sprintf("Timer '%s' already exists", label))
			return
		}
		t.timers[label] = t.now()
	case MethodTimeLog, MethodTimeEnd:
		label := t.label(args)
		start, ok := t.timers[label]
		if !ok {
			t.writeLine(MethodWarn, fmt.Sprintf("Timer '%s' does not exist", label))
			return
		}
		line := fmt.Sprintf("%s: %s", label, formatElapsed(t.now().Sub(start)))
		if m == MethodTimeEnd {
			delete(t.timers, label)
		}
		t.writeLine(m, line)
	case MethodTable, MethodDir, MethodDirXML:
		dumps := make([]string, 0, len(args))
		for _, a := range args {
			dumps = append(dumps, fmt.Sprintf("%+v", a))
		}
		t.writeLine(m, strings.Join(dumps, " "))
	case MethodTrace:
		t.writeLine(m, "Trace: "+t.format(args))
	default:
		t.writeLine(m, t.format(args))
	}
}

func (t *TerminalConsole) colorEnabled() bool {
	if t.color != nil {
		return *t.color
	}
	return t.renderer.ColorProfile() != termenv.Ascii
}

func (t *TerminalConsole) styler() Styler {
	if !t.colorEnabled() {
		return nil
	}
	return func(css string) func(string) string {
		return cssterm.NewStyle(t.renderer, css).Render
	}
}

func (t *TerminalConsole) format(args []any) string {
	return Format(args, t.styler())
}

// label resolves the label argument of count and time calls. A styled
// wrapper hands the label over as a template, its %c directives are dropped.
func (t *TerminalConsole) label(args []any) string {
	if len(args) == 0 {
		return defaultLabel
	}
	label := stringify(args[0])
	if s, ok := args[0].(string); ok {
		label = strings.ReplaceAll(s, "%c", "")
	}
	if label == "" {
		return defaultLabel
	}
	return label
}

func (t *TerminalConsole) writeLine(m Method, text string) {
	switch m {
	case MethodWarn:
		text = t.prefix(warnPrefix, "!") + " " + text
	case MethodError:
		text = t.prefix(errorPrefix, "✗") + " " + text
	}

	if t.indent > 0 {
		pad := strings.Repeat("  ", t.indent)
		text = pad + strings.ReplaceAll(text, "\n", "\n"+pad)
	}
	fmt.Fprintln(t.out, text)
}

func (t *TerminalConsole) prefix(style lipgloss.Style, symbol string) string {
	if !t.colorEnabled() {
		return symbol
	}
	return style.Renderer(t.renderer).Render(symbol)
}

func formatElapsed(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	if ms < 1000 {
		return fmt.Sprintf("%.3fms", ms)
	}
	return fmt.Sprintf("%.3fs", ms/1000)
}
