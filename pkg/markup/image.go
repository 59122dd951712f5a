package markup

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	imageTag      = regexp.MustCompile(`<img([^>]*?)/?>`)
	leadingFloat  = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// ParseAttributes splits the raw attribute text of a tag into a key/value map.
//
// Tokens are separated by whitespace and split on their first `=`; values
// lose one pair of matching quotes. Quoted values cannot contain spaces.
// A bare attribute (no `=`) maps to the empty string.
func ParseAttributes(raw string) map[string]string {
	attrs := make(map[string]string)
	collapsed := strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
	for _, part := range strings.Split(collapsed, " ") {
		key, value, _ := strings.Cut(part, "=")
		if key == "" {
			continue
		}
		attrs[key] = unquote(value)
	}
	return attrs
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// GenerateImage builds the placeholder element standing in for an image.
// The span has no visible text metrics and is padded to the image size so
// its background shows the picture. Without src, width and height the
// image is dropped and the result is empty.
func GenerateImage(attrs map[string]string) string {
	if attrs["src"] == "" || attrs["width"] == "" || attrs["height"] == "" {
		return ""
	}

	halfW := formatPixels(parseLeadingFloat(attrs["width"]) / 2)
	halfH := formatPixels(parseLeadingFloat(attrs["height"]) / 2)

	rules := []string{
		"background-image: url(" + attrs["src"] + ")",
		"background-position: center center",
		"background-size: cover",
		"background-repeat: no-repeat",
		"font-size: 0",
		"line-height: 0",
		"padding-left: " + halfW,
		"padding-right: " + halfW,
		"padding-top: " + halfH,
		"padding-bottom: " + halfH,
	}

	return `<span style="` + strings.Join(rules, "; ") + `"> </span>`
}

// FormatImages replaces every <img> tag in html with its placeholder span,
// or removes it when its attributes are insufficient.
func FormatImages(html string) string {
	matches := imageTag.FindAllStringSubmatchIndex(html, -1)
	if len(matches) == 0 {
		return html
	}

	// offsets in matches refer to the original string
	drift := 0
	for _, m := range matches {
		start, end := m[0]+drift, m[1]+drift
		image := GenerateImage(ParseAttributes(html[m[2]+drift : m[3]+drift]))
		html = html[:start] + image + html[end:]
		drift += len(image) - (m[1] - m[0])
	}
	return html
}

// parseLeadingFloat reads the numeric prefix of s ("120px" is 120).
// Input with no numeric prefix yields NaN.
func parseLeadingFloat(s string) float64 {
	num := leadingFloat.FindString(strings.TrimSpace(s))
	switch num {
	case "":
		return math.NaN()
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// the pattern only admits valid syntax; out of range values come back as ±Inf
	f, _ := strconv.ParseFloat(num, 64)
	return f
}

func formatPixels(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaNpx"
	case math.IsInf(v, 1):
		return "Infinitypx"
	case math.IsInf(v, -1):
		return "-Infinitypx"
	case v == 0:
		return "0px"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
