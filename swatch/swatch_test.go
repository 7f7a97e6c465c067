package swatch

import (
	"testing"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSwatch(t *testing.T) {
	Convey("Given swatches are enabled", t, func() {
		viper.Set(key.SwatchEnabled, true)
		viper.Set(key.SwatchWidth, 8)

		red := color.RGB{R: 255}

		Convey("Block renders a non-empty cell run", func() {
			So(Block(red), ShouldNotBeEmpty)
		})

		Convey("Line appends the annotation after the block", func() {
			line := Line(red, "#FF0000")
			So(line, ShouldEndWith, "#FF0000")
			So(len(line), ShouldBeGreaterThan, len("#FF0000"))
		})

		Convey("Hex annotates with the hex value", func() {
			So(Hex(red), ShouldEndWith, "#FF0000")
		})

		Convey("A non-positive width still renders one cell", func() {
			viper.Set(key.SwatchWidth, 0)
			So(Block(red), ShouldContainSubstring, " ")
		})
	})

	Convey("Given swatches are disabled", t, func() {
		viper.Set(key.SwatchEnabled, false)

		red := color.RGB{R: 255}

		Convey("Block is empty", func() {
			So(Block(red), ShouldBeEmpty)
		})

		Convey("Line passes the text through unchanged", func() {
			So(Line(red, "RGB(255, 0, 0)"), ShouldEqual, "RGB(255, 0, 0)")
		})
	})
}
