package color

import (
	"strconv"
	"strings"
)

// Parse converts a free-form color string into an RGB value.
//
// Two formats are accepted: hexadecimal (RRGGBB, with an optional leading
// '#') and comma-separated decimal (r,g,b), each channel in [0,255].
// An input is classified as hex if it starts with '#' or if every character
// is a hexadecimal digit. The comma-free all-digit string "112233" therefore
// parses as #112233, never as decimal channels; callers relying on decimal
// input must include the commas.
func Parse(input string) (RGB, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "#") || isHexDigits(input) {
		return parseHex(input)
	}
	return parseDecimal(input)
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func parseHex(input string) (RGB, error) {
	hex := strings.TrimPrefix(input, "#")
	if len(hex) != 6 {
		return RGB{}, &ParseError{Kind: InvalidFormat, Input: input}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, &ParseError{Kind: channelKinds[i], Input: input}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseDecimal(input string) (RGB, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return RGB{}, &ParseError{Kind: InvalidFormat, Input: input}
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return RGB{}, &ParseError{Kind: channelKinds[i], Input: input}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
