package core

import "fmt"

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the color as "#rrggbb". Alpha is dropped since terminals
// cannot blend.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A == 0xff
}
