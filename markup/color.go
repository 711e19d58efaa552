package markup

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidColor is returned when a hex color string cannot be parsed.
var ErrInvalidColor = errors.New("markup: invalid hex color")

// ParseHexColor parses a hex color string into an opaque-by-default
// NRGBA value. The leading '#' is optional. Supported digit forms are
// "RGB", "RGBA", "RRGGBB" and "RRGGBBAA". Unlike lenient parsers that
// zero-fill bad input, any non-hex digit or unsupported length is an
// error, so a typo in a color tag is caught while parsing markup rather
// than surfacing mid-render.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	a := uint8(0xff)
	var err error

	switch len(hex) {
	case 3: // RGB
		r, err = hexNibble(hex[0], err)
		g, err = hexNibble(hex[1], err)
		b, err = hexNibble(hex[2], err)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		r, err = hexNibble(hex[0], err)
		g, err = hexNibble(hex[1], err)
		b, err = hexNibble(hex[2], err)
		a, err = hexNibble(hex[3], err)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		r, err = hexByte(hex[0:2], err)
		g, err = hexByte(hex[2:4], err)
		b, err = hexByte(hex[4:6], err)
	case 8: // RRGGBBAA
		r, err = hexByte(hex[0:2], err)
		g, err = hexByte(hex[2:4], err)
		b, err = hexByte(hex[4:6], err)
		a, err = hexByte(hex[6:8], err)
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// hexNibble parses a single hex digit. The err parameter threads a
// previous failure through so callers can parse a full value and check
// once at the end.
func hexNibble(c byte, err error) (uint8, error) {
	if err != nil {
		return 0, err
	}
	switch {
	case '0' <= c && c <= '9':
		return c - '0', nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, ErrInvalidColor
}

// hexByte parses a two-digit hex pair.
func hexByte(s string, err error) (uint8, error) {
	hi, err := hexNibble(s[0], err)
	lo, err := hexNibble(s[1], err)
	return hi<<4 | lo, err
}
