package styles

const (
	SearchIcon  string = "⌕"
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	LoadingIcon string = "⟳"
)

// RenderSearchIcon renders the static search glyph shown at the right
// edge of the input
func RenderSearchIcon() string {
	return CurrentTheme().S().Icon.Render(SearchIcon)
}
