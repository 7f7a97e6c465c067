// Package swatch renders RGB values as colored terminal preview blocks.
//
// It is presentation only: it consumes color values and never leaks back
// into the core color package.
package swatch

import (
	"strings"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/util"
	"github.com/spf13/viper"
)

// Block renders a solid rectangle in the given color, sized by the
// swatch.width setting and clamped to half the terminal width when the
// dimensions are known. Returns an empty string when swatches are disabled.
func Block(c color.RGB) string {
	if !viper.GetBool(key.SwatchEnabled) {
		return ""
	}

	width := viper.GetInt(key.SwatchWidth)
	if tw, _, err := util.TerminalSize(); err == nil && tw > 1 {
		width = util.Min(width, tw/2)
	}
	width = util.Max(width, 1)

	return style.Bg(style.Color(c.Hex()))(strings.Repeat(" ", width))
}

// Line renders the swatch block followed by the given text. When swatches
// are disabled the text is returned unchanged.
func Line(c color.RGB, text string) string {
	block := Block(c)
	if block == "" {
		return text
	}
	return block + " " + text
}

// Hex is shorthand for a swatch annotated with the color's hex value.
func Hex(c color.RGB) string {
	return Line(c, c.Hex())
}
