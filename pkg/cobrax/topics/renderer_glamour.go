package topics

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is used when GlamourRenderer.Width is not set
const DefaultWordWrap = 80

// GlamourRenderer renders markdown topics with glamour. Other extensions
// pass through unchanged.
type GlamourRenderer struct {
	// Style is "auto", a builtin style name such as "dark" or "notty", or a
	// path to a JSON style file
	Style string
	Width int
}

// NewGlamourRenderer creates a renderer that detects the terminal style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto", Width: DefaultWordWrap}
}

// Render converts markdown to styled terminal output, falling back to the
// raw content when glamour fails
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	width := r.Width
	if width <= 0 {
		width = DefaultWordWrap
	}
	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStylePath(r.Style))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
