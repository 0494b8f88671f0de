// Package ui implements the desktop viewer: a dimensions form, mode
// selectors, the boiler result panel and the fuel assembly grid.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ReactorTheme wraps the default Fyne theme with compact sizing and a
// forced light or dark variant.
type ReactorTheme struct {
	base    fyne.Theme
	variant *fyne.ThemeVariant
}

// NewReactorTheme returns the theme for a config theme name: "light",
// "dark" or anything else for the system variant.
func NewReactorTheme(name string) *ReactorTheme {
	t := &ReactorTheme{base: theme.DefaultTheme()}
	t.SetVariant(name)
	return t
}

// SetVariant switches between "light", "dark" and "system".
func (t *ReactorTheme) SetVariant(name string) {
	switch name {
	case "light":
		v := theme.VariantLight
		t.variant = &v
	case "dark":
		v := theme.VariantDark
		t.variant = &v
	default:
		t.variant = nil
	}
}

// Color delegates to the base theme, forcing the stored variant if any.
func (t *ReactorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *ReactorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *ReactorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *ReactorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
