package richtext

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minRenderWidth = 20

// Render formats a document for the terminal. On renderer failure the raw
// source is returned so the preview never goes blank.
func Render(doc Document, style string, width int) string {
	if strings.TrimSpace(doc.Source) == "" {
		return ""
	}
	if width < minRenderWidth {
		width = minRenderWidth
	}
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return doc.Source
	}
	out, err := r.Render(doc.Source)
	if err != nil {
		return doc.Source
	}
	return strings.TrimSpace(out)
}
