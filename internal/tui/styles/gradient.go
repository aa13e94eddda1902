package styles

import (
	"image/color"
)

// RenderThemeGradient renders text with the current theme's primary gradient
func RenderThemeGradient(text string) string {
	theme := CurrentTheme()
	return ApplyGradient(text, theme.Primary, theme.Secondary)
}

// GetGradientColors returns numColors steps between the theme's primary
// and secondary colors
func GetGradientColors(numColors int) []color.Color {
	theme := CurrentTheme()
	return blendColors(numColors, theme.Primary, theme.Secondary)
}
