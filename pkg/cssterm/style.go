package cssterm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is a terminal style derived from a CSS style string.
type Style struct {
	lipgloss.Style

	// Hidden is set when the CSS makes the text invisible (font-size: 0,
	// display: none, visibility: hidden, opacity: 0). Image placeholders
	// end up hidden since a terminal has nothing to draw for them.
	Hidden bool
}

// Render applies the style to text. Lines are styled one by one so
// multi-line text is not padded into a block.
func (s Style) Render(text string) string {
	if s.Hidden {
		return ""
	}
	if !strings.Contains(text, "\n") {
		return s.Style.Render(text)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = s.Style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// NewStyle converts a CSS style string into a terminal style bound to the
// given lipgloss renderer. A nil renderer uses the lipgloss default.
// Declarations are applied in order so the last one for a property wins.
func NewStyle(r *lipgloss.Renderer, css string) Style {
	var st Style
	if r != nil {
		st.Style = r.NewStyle()
	} else {
		st.Style = lipgloss.NewStyle()
	}
	st.Style = st.Style.TabWidth(lipgloss.NoTabConversion)

	for _, d := range Parse(css) {
		value := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(d.Value, "!important")))
		switch d.Property {
		case "font-weight":
			st.Style = st.Style.Bold(isBold(value))
		case "font-style":
			st.Style = st.Style.Italic(value == "italic" || strings.HasPrefix(value, "oblique"))
		case "text-decoration", "text-decoration-line":
			if value == "none" {
				st.Style = st.Style.Underline(false).Strikethrough(false)
				continue
			}
			st.Style = st.Style.
				Underline(strings.Contains(value, "underline")).
				Strikethrough(strings.Contains(value, "line-through"))
		case "color":
			if c, ok := ParseColor(value); ok {
				st.Style = st.Style.Foreground(lipgloss.Color(c))
			}
		case "background", "background-color":
			for _, field := range strings.Fields(value) {
				if c, ok := ParseColor(field); ok {
					st.Style = st.Style.Background(lipgloss.Color(c))
					break
				}
			}
		case "font-size":
			st.Hidden = isZero(value)
		case "opacity":
			st.Hidden = isZero(value)
		case "display":
			st.Hidden = value == "none"
		case "visibility":
			st.Hidden = value == "hidden" || value == "collapse"
		}
	}

	return st
}

func isBold(value string) bool {
	switch value {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 600
}

func isZero(value string) bool {
	value = strings.TrimRight(value, "abcdefghijklmnopqrstuvwxyz%")
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && f == 0
}

// ParseColor converts a CSS colour value into a `#rrggbb` string understood
// by lipgloss. Keywords without a fixed colour (inherit, transparent, ...)
// and anything unrecognised report false.
func ParseColor(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		switch len(hex) {
		case 3, 4:
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		case 6, 8:
			hex = hex[:6]
		default:
			return "", false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		return "#" + hex, true
	}

	if strings.HasPrefix(value, "rgb(") || strings.HasPrefix(value, "rgba(") {
		return parseRGB(value)
	}

	c, ok := namedColors[value]
	return c, ok
}

func parseRGB(value string) (string, bool) {
	start, end := strings.IndexByte(value, '('), strings.LastIndexByte(value, ')')
	if start < 0 || end < start {
		return "", false
	}
	parts := strings.FieldsFunc(value[start+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) < 3 {
		return "", false
	}

	var channels [3]int
	for i := range channels {
		p := parts[i]
		var (
			f   float64
			err error
		)
		if strings.HasSuffix(p, "%") {
			f, err = strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			f = f * 255 / 100
		} else {
			f, err = strconv.ParseFloat(p, 64)
		}
		if err != nil {
			return "", false
		}
		channels[i] = clamp(int(f + 0.5))
	}
	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]), true
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gold":    "#ffd700",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"coral":   "#ff7f50",
	"salmon":  "#fa8072",
	"tomato":  "#ff6347",
	"crimson": "#dc143c",
	"khaki":   "#f0e68c",
	"orchid":  "#da70d6",
	"plum":    "#dda0dd",
	"tan":     "#d2b48c",

	"darkgray":   "#a9a9a9",
	"darkgrey":   "#a9a9a9",
	"lightgray":  "#d3d3d3",
	"lightgrey":  "#d3d3d3",
	"darkred":    "#8b0000",
	"darkgreen":  "#006400",
	"darkblue":   "#00008b",
	"lightblue":  "#add8e6",
	"lightgreen": "#90ee90",
	"skyblue":    "#87ceeb",
	"steelblue":  "#4682b4",
	"royalblue":  "#4169e1",
	"slategray":  "#708090",
	"slategrey":  "#708090",
	"dodgerblue": "#1e90ff",
	"hotpink":    "#ff69b4",
	"limegreen":  "#32cd32",
	"seagreen":   "#2e8b57",
	"darkorange": "#ff8c00",
	"orangered":  "#ff4500",
	"chocolate":  "#d2691e",
	"firebrick":  "#b22222",
	"goldenrod":  "#daa520",
	"turquoise":  "#40e0d0",
}
