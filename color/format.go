package color

import (
	"fmt"
	"strings"
)

// Format enumerates the textual representations huekit can emit. It is a
// closed set; rendering switches over it exhaustively instead of dispatching
// on raw strings.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSL}
}

// FormatNames lists the accepted format identifiers in display order.
func FormatNames() []string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, f.String())
	}
	return names
}

// ParseFormat maps a user-supplied format name to its Format value.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	case "hsl":
		return FormatHSL, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	default:
		return "hex"
	}
}

// Render formats an RGB value in the receiver representation. HSL components
// are reported to one decimal place.
func (f Format) Render(c RGB) string {
	switch f {
	case FormatRGB:
		return c.String()
	case FormatHSL:
		return c.HSL().String()
	default:
		return c.Hex()
	}
}
