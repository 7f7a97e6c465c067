package color

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// hueDistance is the shortest angular distance between two hues in degrees.
func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestComplement(t *testing.T) {
	Convey("Complement is the channel-wise arithmetic inverse", t, func() {
		So(Complement(RGB{}), ShouldResemble, RGB{R: 255, G: 255, B: 255})
		So(Complement(RGB{R: 255, G: 255, B: 255}), ShouldResemble, RGB{})
		So(Complement(RGB{R: 10, G: 20, B: 30}), ShouldResemble, RGB{R: 245, G: 235, B: 225})

		Convey("It is an involution", func() {
			c := RGB{R: 99, G: 1, B: 200}
			So(Complement(Complement(c)), ShouldResemble, c)
		})
	})
}

func TestRotateHue(t *testing.T) {
	Convey("Given a saturated base color", t, func() {
		red := RGB{R: 255}

		Convey("Rotating by 120° lands on green", func() {
			So(RotateHue(red, 120), ShouldResemble, RGB{G: 255})
		})

		Convey("Rotating by 240° lands on blue", func() {
			So(RotateHue(red, 240), ShouldResemble, RGB{B: 255})
		})

		Convey("Rotating by 360° is the identity", func() {
			So(RotateHue(red, 360), ShouldResemble, red)
		})

		Convey("A negative rotation equals its positive counterpart", func() {
			So(RotateHue(red, -120), ShouldResemble, RotateHue(red, 240))
		})
	})

	Convey("Rotating an achromatic color changes nothing", t, func() {
		gray := RGB{R: 128, G: 128, B: 128}
		So(RotateHue(gray, 90), ShouldResemble, gray)
	})
}

func TestTriads(t *testing.T) {
	Convey("Triads of red sit 120° apart, base first", t, func() {
		triads := Triads(RGB{R: 255})

		So(triads[0], ShouldResemble, RGB{R: 255})

		expected := []float64{0, 120, 240}
		for i, c := range triads {
			So(hueDistance(c.HSL().H, expected[i]), ShouldBeLessThan, 1.5)
		}
	})
}

func TestTetrads(t *testing.T) {
	Convey("Tetrads hold four colors with successive hues 90° apart", t, func() {
		tetrads := Tetrads(RGB{R: 64, G: 160, B: 255})

		So(len(tetrads), ShouldEqual, 4)
		So(tetrads[0], ShouldResemble, RGB{R: 64, G: 160, B: 255})

		for i := 1; i < len(tetrads); i++ {
			prev := tetrads[i-1].HSL().H
			cur := tetrads[i].HSL().H
			step := math.Mod(cur-prev+360, 360)
			So(math.Abs(step-90), ShouldBeLessThan, 1.5)
		}
	})
}

func TestHarmonize(t *testing.T) {
	Convey("Harmonize aggregates all derivations for the base color", t, func() {
		base := RGB{R: 200, G: 50, B: 50}
		h := Harmonize(base)

		So(h.Input, ShouldResemble, base)
		So(h.Complement, ShouldResemble, Complement(base))
		So(h.Triads, ShouldResemble, Triads(base))
		So(h.Tetrads, ShouldResemble, Tetrads(base))
	})
}
