// Package colorutil provides shared color utilities for coil previews.
package colorutil

import (
	"fmt"
	"image/color"
)

// Preview colors used by every renderer.
var (
	Copper     = color.RGBA{R: 200, G: 117, B: 51, A: 255}
	ViaPad     = color.RGBA{R: 212, G: 175, B: 55, A: 255}
	DrillHole  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	Background = color.RGBA{R: 16, G: 48, B: 32, A: 255} // Solder-mask green
)

// Hex formats c as a CSS color, e.g. "#c87533". Alpha is ignored.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
