package ui

import (
	"Countdown/config"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme applies the configured variant and text size on top of the
// default theme.
type CustomTheme struct {
	fyne.Theme
	dark     bool
	textSize float32
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme(cfg config.ThemeConfig) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), dark: cfg.DarkMode, textSize: cfg.FontSize}
}

// Color forces the dark variant when dark mode is configured.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.dark {
		variant = theme.VariantDark
	}
	return t.Theme.Color(name, variant)
}

// Size returns the configured text size, defaulting everything else.
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 {
		return t.textSize
	}
	return t.Theme.Size(name)
}
