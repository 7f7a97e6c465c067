package color

import "fmt"

// ErrorKind classifies color parse failures.
type ErrorKind int

const (
	// InvalidFormat means the input has the wrong overall shape: not six hex
	// digits, or not three comma-separated decimal parts.
	InvalidFormat ErrorKind = iota
	InvalidRedComponent
	InvalidGreenComponent
	InvalidBlueComponent
)

// channelKinds maps a channel index (R, G, B) to its parse error kind.
var channelKinds = [3]ErrorKind{InvalidRedComponent, InvalidGreenComponent, InvalidBlueComponent}

// ParseError reports why an input string could not be parsed as a color.
// Parse failures are the only errors this package can produce; conversions
// and harmony derivations are total.
type ParseError struct {
	Kind  ErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidRedComponent:
		return fmt.Sprintf("invalid red component in %q", e.Input)
	case InvalidGreenComponent:
		return fmt.Sprintf("invalid green component in %q", e.Input)
	case InvalidBlueComponent:
		return fmt.Sprintf("invalid blue component in %q", e.Input)
	default:
		return fmt.Sprintf("invalid color format %q, expected RRGGBB, #RRGGBB or r,g,b", e.Input)
	}
}
