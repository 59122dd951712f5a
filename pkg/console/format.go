package console

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Styler turns the CSS of a %c directive into the function styling the
// text that follows it.
type Styler func(css string) func(string) string

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// Format applies the host console's formatting to a call's arguments.
//
// When the first argument is a string it is a format: %c consumes a style
// argument applied to the text up to the next %c, %s prints a value, %d
// and %i an integer, %f a float, %o and %O a value dump. Precision forms
// (%.2d, %.3f) pad integers and fix decimals. A directive without an
// argument left stays literal. Unused arguments are appended separated by
// spaces. A nil styler drops styles.
func Format(args []any, styler Styler) string {
	if len(args) == 0 {
		return ""
	}
	format, ok := args[0].(string)
	if !ok {
		return joinValues(args)
	}
	rest := args[1:]

	var (
		out     strings.Builder
		segment strings.Builder
		apply   = identity
	)
	flush := func() {
		if segment.Len() > 0 {
			out.WriteString(apply(segment.String()))
			segment.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			segment.WriteByte(format[i])
			continue
		}

		verb, precision, end := parseDirective(format, i)
		if end < 0 {
			segment.WriteByte('%')
			continue
		}
		if len(rest) == 0 {
			segment.WriteString(format[i : end+1])
			i = end
			continue
		}

		arg := rest[0]
		rest = rest[1:]
		i = end

		switch verb {
		case 'c':
			flush()
			apply = identity
			if styler != nil {
				if css := fmt.Sprint(arg); css != "" {
					apply = styler(css)
				}
			}
		case 's':
			segment.WriteString(stringify(arg))
		case 'd', 'i':
			segment.WriteString(formatInt(arg, precision))
		case 'f':
			segment.WriteString(formatFloat(arg, precision))
		case 'o':
			segment.WriteString(fmt.Sprintf("%v", arg))
		case 'O':
			segment.WriteString(fmt.Sprintf("%+v", arg))
		}
	}
	flush()

	for _, arg := range rest {
		out.WriteByte(' ')
		out.WriteString(stringify(arg))
	}
	return out.String()
}

// parseDirective reads the directive starting at format[i] (a '%').
// It returns the verb, the precision (-1 when absent) and the index of the
// verb, or end -1 when there is no directive.
func parseDirective(format string, i int) (verb byte, precision, end int) {
	j := i + 1
	if j >= len(format) {
		return 0, -1, -1
	}

	if format[j] != '.' {
		if strings.IndexByte("csdifoO", format[j]) < 0 {
			return 0, -1, -1
		}
		return format[j], -1, j
	}

	k := j + 1
	for k < len(format) && format[k] >= '0' && format[k] <= '9' {
		k++
	}
	if k == j+1 || k >= len(format) || strings.IndexByte("dif", format[k]) < 0 {
		return 0, -1, -1
	}
	precision, err := strconv.Atoi(format[j+1 : k])
	if err != nil {
		return 0, -1, -1
	}
	return format[k], precision, k
}

func identity(s string) string { return s }

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func joinValues(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, stringify(a))
	}
	return strings.Join(parts, " ")
}

func formatInt(v any, precision int) string {
	n, ok := toInt(v)
	if !ok {
		return "NaN"
	}
	if precision > 0 {
		return fmt.Sprintf("%.*d", precision, n)
	}
	return strconv.FormatInt(n, 10)
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		m := leadingInt.FindString(n)
		if m == "" {
			return 0, false
		}
		i, err := strconv.ParseInt(strings.TrimSpace(m), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

func formatFloat(v any, precision int) string {
	f, ok := toFloat(v)
	if !ok {
		return "NaN"
	}
	if precision >= 0 {
		return strconv.FormatFloat(f, 'f', precision, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

// truthy mirrors how a console judges an assert condition.
func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	}
	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}
