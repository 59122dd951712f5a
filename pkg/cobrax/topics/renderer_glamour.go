package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// GlamourRenderer renders markdown topics with glamour. Other formats
// pass through.
type GlamourRenderer struct {
	Style string // "auto", a glamour style name ("dark", "light", "notty") or a style file path
	Width int    // word wrap column, 0 leaves glamour's default
}

// NewGlamourRenderer returns a renderer picking its style from the
// terminal.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// NewPlainGlamourRenderer returns a renderer emitting no escape codes.
func NewPlainGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: styles.NoTTYStyle}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
