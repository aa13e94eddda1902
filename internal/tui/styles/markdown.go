package styles

import (
	"strings"

	"github.com/charmbracelet/glamour/v2"
)

// GetMarkdownRenderer returns a glamour TermRenderer configured with the current theme
func GetMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	t := CurrentTheme()
	return glamour.NewTermRenderer(
		glamour.WithStyles(t.S().Markdown),
		glamour.WithWordWrap(width),
	)
}

// MarkdownOptionView returns a function that renders a short markdown
// snippet for a dropdown row. If the renderer cannot be built or fails,
// the raw text is returned unchanged.
func MarkdownOptionView(width int) func(string) string {
	r, err := GetMarkdownRenderer(width)
	return func(md string) string {
		if err != nil || r == nil {
			return md
		}
		out, rerr := r.Render(md)
		if rerr != nil {
			return md
		}
		return strings.Trim(out, "\n ")
	}
}
