package color

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRGBToHSL(t *testing.T) {
	Convey("Given primary colors", t, func() {
		Convey("Red maps to hue 0", func() {
			hsl := RGB{R: 255}.HSL()
			So(hsl.H, ShouldAlmostEqual, 0, 0.001)
			So(hsl.S, ShouldAlmostEqual, 100, 0.001)
			So(hsl.L, ShouldAlmostEqual, 50, 0.001)
		})

		Convey("Green maps to hue 120", func() {
			hsl := RGB{G: 255}.HSL()
			So(hsl.H, ShouldAlmostEqual, 120, 0.001)
		})

		Convey("Blue maps to hue 240", func() {
			hsl := RGB{B: 255}.HSL()
			So(hsl.H, ShouldAlmostEqual, 240, 0.001)
		})
	})

	Convey("Given achromatic colors", t, func() {
		Convey("Gray yields hue 0 and saturation 0", func() {
			hsl := RGB{R: 128, G: 128, B: 128}.HSL()
			So(hsl.H, ShouldEqual, 0)
			So(hsl.S, ShouldEqual, 0)
		})

		Convey("White has full lightness", func() {
			hsl := RGB{R: 255, G: 255, B: 255}.HSL()
			So(hsl.S, ShouldEqual, 0)
			So(hsl.L, ShouldAlmostEqual, 100, 0.001)
		})

		Convey("Black has zero lightness", func() {
			hsl := RGB{}.HSL()
			So(hsl.S, ShouldEqual, 0)
			So(hsl.L, ShouldEqual, 0)
		})
	})

	Convey("Hue stays within [0,360) for every input", t, func() {
		var outOfRange []RGB
		for r := 0; r <= 255; r += 51 {
			for g := 0; g <= 255; g += 51 {
				for b := 0; b <= 255; b += 51 {
					c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
					if h := c.HSL().H; h < 0 || h >= 360 {
						outOfRange = append(outOfRange, c)
					}
				}
			}
		}
		So(outOfRange, ShouldBeEmpty)
	})
}

func TestHSLToRGB(t *testing.T) {
	Convey("Given saturated HSL values", t, func() {
		Convey("Hue 0 is red", func() {
			So(HSL{H: 0, S: 100, L: 50}.RGB(), ShouldResemble, RGB{R: 255})
		})

		Convey("Hue 120 is green", func() {
			So(HSL{H: 120, S: 100, L: 50}.RGB(), ShouldResemble, RGB{G: 255})
		})

		Convey("Hue 240 is blue", func() {
			So(HSL{H: 240, S: 100, L: 50}.RGB(), ShouldResemble, RGB{B: 255})
		})
	})

	Convey("Given zero saturation", t, func() {
		Convey("Only lightness matters", func() {
			So(HSL{H: 0, S: 0, L: 50}.RGB(), ShouldResemble, RGB{R: 128, G: 128, B: 128})
			So(HSL{H: 217, S: 0, L: 50}.RGB(), ShouldResemble, RGB{R: 128, G: 128, B: 128})
		})
	})
}

// channelDelta is the absolute per-channel distance between two colors.
func channelDelta(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	Convey("RGB→HSL→RGB reproduces the original within ±1 per channel", t, func() {
		var failures []string

		for r := 0; r <= 255; r += 15 {
			for g := 0; g <= 255; g += 15 {
				for b := 0; b <= 255; b += 15 {
					in := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
					out := in.HSL().RGB()

					if channelDelta(in.R, out.R) > 1 ||
						channelDelta(in.G, out.G) > 1 ||
						channelDelta(in.B, out.B) > 1 {
						failures = append(failures, fmt.Sprintf("%v -> %v", in, out))
					}
				}
			}
		}

		So(failures, ShouldBeEmpty)
	})
}

func TestStringers(t *testing.T) {
	Convey("Textual representations", t, func() {
		So(RGB{R: 255, G: 10, B: 0}.Hex(), ShouldEqual, "#FF0A00")
		So(RGB{R: 255, G: 10, B: 0}.String(), ShouldEqual, "RGB(255, 10, 0)")
		So(RGB{R: 255}.HSL().String(), ShouldEqual, "HSL(0.0, 100.0%, 50.0%)")
	})
}
