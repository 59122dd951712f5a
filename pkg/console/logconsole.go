package console

import (
	"github.com/rs/zerolog"
)

// LogConsole forwards console calls to a zerolog logger. Styles are
// dropped, the formatted text becomes the log message and the method name
// is kept in the "method" field.
type LogConsole struct {
	logger zerolog.Logger
}

// NewLogConsole returns a console logging through logger.
func NewLogConsole(logger zerolog.Logger) *LogConsole {
	return &LogConsole{logger: logger}
}

// Call implements Console.
func (c *LogConsole) Call(m Method, args ...any) {
	switch m {
	case MethodGroupEnd, MethodClear:
		return
	case MethodAssert:
		if len(args) > 0 && truthy(args[0]) {
			return
		}
		msg := "Assertion failed"
		if len(args) > 1 {
			msg += ": " + Format(args[1:], nil)
		}
		c.logger.Error().Str("method", m.String()).Msg(msg)
		return
	}

	c.logger.WithLevel(levelFor(m)).Str("method", m.String()).Msg(Format(args, nil))
}

func levelFor(m Method) zerolog.Level {
	switch m {
	case MethodDebug:
		return zerolog.DebugLevel
	case MethodTrace:
		return zerolog.TraceLevel
	case MethodWarn:
		return zerolog.WarnLevel
	case MethodError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
