package color

import "math"

// Complement returns the channel-wise arithmetic inverse (255 − channel).
// This is deliberately not a 180° hue rotation; the two differ for every
// non-gray color and the arithmetic definition is the compatibility
// contract here.
func Complement(c RGB) RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// RotateHue shifts the hue of c by the given number of degrees. The hue is
// wrapped with math.Mod, so a negative sum stays negative; HSL.RGB handles
// that when interpolating.
func RotateHue(c RGB, degrees float64) RGB {
	hsl := c.HSL()
	hsl.H = math.Mod(hsl.H+degrees, 360)
	return hsl.RGB()
}

// Triads returns c followed by its 120° and 240° hue rotations.
func Triads(c RGB) [3]RGB {
	return [3]RGB{c, RotateHue(c, 120), RotateHue(c, 240)}
}

// Tetrads returns c followed by its 90°, 180° and 270° hue rotations.
func Tetrads(c RGB) [4]RGB {
	return [4]RGB{c, RotateHue(c, 90), RotateHue(c, 180), RotateHue(c, 270)}
}

// Harmonies bundles every harmony derived from a base color into one
// structured document. Array order is significant: the base color always
// comes first, followed by rotations in ascending-degree order.
type Harmonies struct {
	Input      RGB    `json:"input" jsonschema:"description=Base color the harmonies are derived from."`
	Complement RGB    `json:"complement" jsonschema:"description=Channel-wise arithmetic complement of the base color."`
	Triads     [3]RGB `json:"triads" jsonschema:"description=Base color and its 120° and 240° hue rotations."`
	Tetrads    [4]RGB `json:"tetrads" jsonschema:"description=Base color and its 90°/180°/270° hue rotations."`
}

// Harmonize derives the complete harmony set for c.
func Harmonize(c RGB) Harmonies {
	return Harmonies{
		Input:      c,
		Complement: Complement(c),
		Triads:     Triads(c),
		Tetrads:    Tetrads(c),
	}
}
