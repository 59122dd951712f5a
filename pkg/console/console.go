// Package console connects the markup renderer to console implementations.
//
// A Console receives calls by Method with the arguments a host console
// would get. Wrap turns any Console into one that renders markup first:
//
//	engine := render.New(nil)
//	engine.Add(".path { color: gray; }")
//	styled := console.Wrap(console.NewTerminalConsole(os.Stdout), engine)
//	styled.Log(`wrote <span class="path">%s</span>`, path)
//
// The package keeps a process-wide default console used by Log, Info,
// Warn, Error and Debug; an Adapter swaps it for a styled one and back.
package console

import (
	"os"
	"sync"
)

// Console is the host console: anything that accepts method calls with
// a format string followed by its arguments.
type Console interface {
	Call(m Method, args ...any)
}

// Renderer turns a message and its arguments into the argument list for
// a console call. *render.Engine implements it.
type Renderer interface {
	Render(message any, args ...any) []any
}

// Styled is a Console whose methods render their arguments through a
// Renderer before delegating to the wrapped console.
type Styled struct {
	target  Console
	methods map[Method]func(args ...any)
}

// Wrap returns the styled version of c.
func Wrap(c Console, r Renderer) *Styled {
	wrap := func(m Method) func(args ...any) {
		return func(args ...any) {
			if len(args) == 0 {
				c.Call(m)
				return
			}
			c.Call(m, r.Render(args[0], args[1:]...)...)
		}
	}

	s := &Styled{
		target:  c,
		methods: make(map[Method]func(args ...any), methodCount),
	}
	for _, m := range Methods() {
		s.methods[m] = wrap(m)
	}
	return s
}

// Call implements Console. Unknown methods are ignored.
func (s *Styled) Call(m Method, args ...any) {
	if fn, ok := s.methods[m]; ok {
		fn(args...)
	}
}

// Func returns the wrapped function for m, or nil for an unknown method.
func (s *Styled) Func(m Method) func(args ...any) {
	return s.methods[m]
}

// Target returns the console calls are delegated to.
func (s *Styled) Target() Console {
	return s.target
}

func (s *Styled) Log(args ...any)   { s.Call(MethodLog, args...) }
func (s *Styled) Info(args ...any)  { s.Call(MethodInfo, args...) }
func (s *Styled) Warn(args ...any)  { s.Call(MethodWarn, args...) }
func (s *Styled) Error(args ...any) { s.Call(MethodError, args...) }
func (s *Styled) Debug(args ...any) { s.Call(MethodDebug, args...) }
func (s *Styled) Trace(args ...any) { s.Call(MethodTrace, args...) }
func (s *Styled) Group(args ...any) { s.Call(MethodGroup, args...) }
func (s *Styled) GroupEnd()         { s.Call(MethodGroupEnd) }

var (
	defaultMu sync.RWMutex
	current   Console = NewTerminalConsole(os.Stderr)
)

// Default returns the process-wide console.
func Default() Console {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return current
}

// SetDefault replaces the process-wide console and returns the previous one.
// A nil console is ignored.
func SetDefault(c Console) Console {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	previous := current
	if c != nil {
		current = c
	}
	return previous
}

// Log calls log on the default console.
func Log(args ...any) { Default().Call(MethodLog, args...) }

// Info calls info on the default console.
func Info(args ...any) { Default().Call(MethodInfo, args...) }

// Warn calls warn on the default console.
func Warn(args ...any) { Default().Call(MethodWarn, args...) }

// Error calls error on the default console.
func Error(args ...any) { Default().Call(MethodError, args...) }

// Debug calls debug on the default console.
func Debug(args ...any) { Default().Call(MethodDebug, args...) }
