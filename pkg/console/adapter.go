package console

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Adapter installs a styled console as the process-wide default and takes
// it back out.
type Adapter struct {
	mu          sync.Mutex
	renderer    Renderer
	interactive func() bool
	original    Console
	overridden  bool
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithInteractive replaces the check deciding whether output goes to a
// terminal. The default looks at stderr.
func WithInteractive(fn func() bool) AdapterOption {
	return func(a *Adapter) {
		a.interactive = fn
	}
}

// NewAdapter returns an adapter rendering through r.
func NewAdapter(r Renderer, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		renderer:    r,
		interactive: stderrIsTerminal,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Override makes the styled wrapper of the current default console the new
// default. It does nothing when already overridden or when output is not
// interactive.
func (a *Adapter) Override() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.overridden || !a.interactive() {
		return
	}
	a.original = Default()
	SetDefault(Wrap(a.original, a.renderer))
	a.overridden = true
}

// Restore reinstates the console that was the default before Override.
// It does nothing when not overridden.
func (a *Adapter) Restore() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.overridden {
		return
	}
	SetDefault(a.original)
	a.original = nil
	a.overridden = false
}

// Overridden reports whether Override is in effect.
func (a *Adapter) Overridden() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.overridden
}

// Styled returns a styled wrapper of the unstyled console, to call
// without overriding anything. When output is not interactive the plain
// default console comes back instead.
func (a *Adapter) Styled() Console {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.interactive() {
		return Default()
	}
	base := a.original
	if !a.overridden {
		base = Default()
	}
	return Wrap(base, a.renderer)
}
