package styles

// NewEmberTheme is the default: slate background with a red to yellow
// gradient for the loading animation.
func NewEmberTheme() *Theme {
	return &Theme{
		Name:   "ember",
		IsDark: true,

		Primary:   ParseHex("#C0392B"), // Fire red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Accent:    ParseHex("#F39C12"), // Golden orange

		BgBase:      ParseHex("#2C3E50"),
		BgSubtle:    ParseHex("#3D566E"),
		BgHighlight: ParseHex("#5D6D7E"),

		FgBase:     ParseHex("#f5f6fa"),
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1e1e1e"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),

		Link: ParseHex("#5EB3F6"),
	}
}

// NewDarkTheme creates a cool slate theme
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Accent:    ParseHex("#34d399"), // Emerald

		BgBase:      ParseHex("#0f172a"), // Slate 900
		BgSubtle:    ParseHex("#334155"), // Slate 700
		BgHighlight: ParseHex("#475569"), // Slate 600

		FgBase:     ParseHex("#f8fafc"),
		FgMuted:    ParseHex("#cbd5e1"),
		FgSubtle:   ParseHex("#94a3b8"),
		FgInverted: ParseHex("#0f172a"),

		Border:      ParseHex("#334155"),
		BorderFocus: ParseHex("#60a5fa"),

		Success: ParseHex("#34d399"),
		Error:   ParseHex("#f87171"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#60a5fa"),

		Link: ParseHex("#93c5fd"),
	}
}

// NewLightTheme is a light palette: white dropdown, gray
// borders, gray-200 row highlight.
func NewLightTheme() *Theme {
	return &Theme{
		Name:   "light",
		IsDark: false,

		Primary:   ParseHex("#2563eb"),
		Secondary: ParseHex("#7c3aed"),
		Accent:    ParseHex("#2563eb"),

		BgBase:      ParseHex("#ffffff"),
		BgSubtle:    ParseHex("#f3f4f6"), // Gray 100
		BgHighlight: ParseHex("#e5e7eb"), // Gray 200

		FgBase:     ParseHex("#4b5563"), // Gray 600
		FgMuted:    ParseHex("#6b7280"), // Gray 500
		FgSubtle:   ParseHex("#9ca3af"), // Gray 400
		FgInverted: ParseHex("#ffffff"),

		Border:      ParseHex("#d1d5db"), // Gray 300
		BorderFocus: ParseHex("#2563eb"),

		Success: ParseHex("#16a34a"),
		Error:   ParseHex("#dc2626"),
		Warning: ParseHex("#d97706"),
		Info:    ParseHex("#2563eb"),

		Link: ParseHex("#1d4ed8"),
	}
}
