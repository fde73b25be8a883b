package app

import (
	"image/color"

	"spiralgen/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SpiralTheme tints the default theme with copper.
type SpiralTheme struct{}

var _ fyne.Theme = (*SpiralTheme)(nil)

func (t *SpiralTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorutil.Copper
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0x80} // Via gold
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *SpiralTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *SpiralTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *SpiralTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
