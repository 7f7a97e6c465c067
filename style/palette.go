// Package style provides a functional API for composing and applying lipgloss-based CLI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Color initializes a lipgloss.Color from a string value.
func Color(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = Color("1")
	Green  = Color("2")
	Yellow = Color("3")
	Blue   = Color("4")
	Purple = Color("5")
	Cyan   = Color("6")
	White  = Color("7")
	Black  = Color("8")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = Color("9")
	HiGreen  = Color("10")
	HiYellow = Color("11")
	HiBlue   = Color("12")
	HiPurple = Color("13")
	HiCyan   = Color("14")
	HiWhite  = Color("15")
	HiBlack  = Color("16")
)

// Hex-defined accent and semantic colors.
var (
	Accent = Color("#cba6f7")
	Gray   = Color("#808080")
)
