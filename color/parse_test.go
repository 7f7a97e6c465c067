package color

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// kindOf extracts the ParseError kind from err, failing loudly otherwise.
func kindOf(err error) ErrorKind {
	var parseErr *ParseError
	So(errors.As(err, &parseErr), ShouldBeTrue)
	return parseErr.Kind
}

func TestParse(t *testing.T) {
	Convey("Given hex input", t, func() {
		Convey("With a leading #", func() {
			c, err := Parse("#FF0000")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 255})
		})

		Convey("Without a leading #", func() {
			c, err := Parse("FF0000")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 255})
		})

		Convey("Lowercase digits work", func() {
			c, err := Parse("#00ff7f")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{G: 255, B: 127})
		})

		Convey("Surrounding whitespace is trimmed", func() {
			c, err := Parse("  #102030  ")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 16, G: 32, B: 48})
		})
	})

	Convey("Given decimal input", t, func() {
		Convey("Plain r,g,b", func() {
			c, err := Parse("255,0,0")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 255})
		})

		Convey("Spaces around parts are trimmed", func() {
			c, err := Parse(" 10, 20 , 30 ")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 10, G: 20, B: 30})
		})
	})

	Convey("Hex/decimal disambiguation", t, func() {
		Convey("A comma-free all-digit string is hex", func() {
			c, err := Parse("112233")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 0x11, G: 0x22, B: 0x33})
		})
	})

	Convey("Given invalid input", t, func() {
		Convey("Two decimal parts is a format error", func() {
			_, err := Parse("12,34")
			So(kindOf(err), ShouldEqual, InvalidFormat)
		})

		Convey("Four decimal parts is a format error", func() {
			_, err := Parse("1,2,3,4")
			So(kindOf(err), ShouldEqual, InvalidFormat)
		})

		Convey("Short hex is a format error", func() {
			_, err := Parse("#FFF")
			So(kindOf(err), ShouldEqual, InvalidFormat)
		})

		Convey("Empty input is a format error", func() {
			_, err := Parse("")
			So(kindOf(err), ShouldEqual, InvalidFormat)
		})

		Convey("Non-hex digits behind # fail on the first channel", func() {
			_, err := Parse("#ZZZZZZ")
			So(kindOf(err), ShouldEqual, InvalidRedComponent)
		})

		Convey("Out-of-range decimal channels fail per channel", func() {
			_, err := Parse("300,0,0")
			So(kindOf(err), ShouldEqual, InvalidRedComponent)

			_, err = Parse("0,300,0")
			So(kindOf(err), ShouldEqual, InvalidGreenComponent)

			_, err = Parse("0,0,300")
			So(kindOf(err), ShouldEqual, InvalidBlueComponent)
		})

		Convey("Non-numeric decimal channels fail per channel", func() {
			_, err := Parse("0,zero,0")
			So(kindOf(err), ShouldEqual, InvalidGreenComponent)
		})

		Convey("Negative channels are rejected", func() {
			_, err := Parse("-1,0,0")
			So(kindOf(err), ShouldEqual, InvalidRedComponent)
		})

		Convey("Errors carry a readable message", func() {
			_, err := Parse("12,34")
			So(err.Error(), ShouldContainSubstring, "invalid color format")
		})
	})
}
