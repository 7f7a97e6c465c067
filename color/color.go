// Package color implements the sRGB/HSL color model at the heart of huekit:
// parsing free-form color strings, bidirectional RGB↔HSL conversion, and
// harmony derivation.
//
// Every operation is a pure function over immutable value types. The package
// has no CLI or presentation dependencies; rendering swatches and picking
// output formats happens in the layers above.
package color

import (
	"fmt"
	"math"
)

// RGB is an sRGB color with 8-bit channels.
type RGB struct {
	R uint8 `json:"r" jsonschema:"minimum=0,maximum=255,description=Red channel intensity."`
	G uint8 `json:"g" jsonschema:"minimum=0,maximum=255,description=Green channel intensity."`
	B uint8 `json:"b" jsonschema:"minimum=0,maximum=255,description=Blue channel intensity."`
}

// HSL is the cylindrical representation of an sRGB color. Hue is in degrees
// [0,360), saturation and lightness in percent [0,100]. HSL values are always
// derived from RGB; they are never parsed from user input.
type HSL struct {
	H float64 `json:"h" jsonschema:"description=Hue in degrees."`
	S float64 `json:"s" jsonschema:"description=Saturation in percent."`
	L float64 `json:"l" jsonschema:"description=Lightness in percent."`
}

// Hex returns the #RRGGBB representation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer as RGB(r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// String implements fmt.Stringer as HSL(h, s%, l%), one decimal per component.
func (h HSL) String() string {
	return fmt.Sprintf("HSL(%.1f, %.1f%%, %.1f%%)", h.H, h.S, h.L)
}

// HSL converts the color to its cylindrical representation.
//
// Achromatic inputs (equal channels) yield hue 0 and saturation 0. For all
// other inputs hue is computed with the standard 60°-per-sector formula and
// lands in [0,360).
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h, s float64
	l := (max + min) / 2

	if delta != 0 {
		if l < 0.5 {
			s = delta / (max + min)
		} else {
			s = delta / (2 - max - min)
		}

		switch max {
		case r:
			h = (g - b) / delta
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}

		h *= 60
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// RGB converts the color back to 8-bit sRGB channels using the standard
// p/q interpolation. Together with RGB.HSL it round-trips within ±1 per
// channel for every valid RGB input.
func (h HSL) RGB() RGB {
	t := h.H / 360
	s := h.S / 100
	l := h.L / 100

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueChannel(p, q, t+1.0/3),
		G: hueChannel(p, q, t),
		B: hueChannel(p, q, t-1.0/3),
	}
}

// hueChannel interpolates a single channel between p and q for the hue
// offset t, wrapping t into [0,1] first.
func hueChannel(p, q, t float64) uint8 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	var v float64
	switch {
	case t < 1.0/6:
		v = p + (q-p)*6*t
	case t < 1.0/2:
		v = q
	case t < 2.0/3:
		v = p + (q-p)*(2.0/3-t)*6
	default:
		v = p
	}

	return uint8(math.Round(v * 255))
}
