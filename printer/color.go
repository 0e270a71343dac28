package printer

import (
	"errors"

	"github.com/fatih/color"
)

// Color identifies one of the terminal colors supported for formatted
// output. Every color may be used as a foreground or a background and comes
// in a dark and a bright variant; the default variants select whatever the
// terminal is configured with.
type Color uint8

const (
	DarkBlack Color = iota
	DarkRed
	DarkGreen
	DarkYellow
	DarkBlue
	DarkMagenta
	DarkCyan
	DarkWhite
	DarkDefault
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	BrightDefault
)

// ErrInvalidColor is returned when a color outside the supported range is
// passed to one of the colored printing operations.
var ErrInvalidColor = errors.New("invalid color")

var foregroundAttrs = [...]color.Attribute{
	DarkBlack:     30,
	DarkRed:       31,
	DarkGreen:     32,
	DarkYellow:    33,
	DarkBlue:      34,
	DarkMagenta:   35,
	DarkCyan:      36,
	DarkWhite:     37,
	DarkDefault:   39,
	BrightBlack:   90,
	BrightRed:     91,
	BrightGreen:   92,
	BrightYellow:  93,
	BrightBlue:    94,
	BrightMagenta: 95,
	BrightCyan:    96,
	BrightWhite:   97,
	BrightDefault: 99,
}

var backgroundAttrs = [...]color.Attribute{
	DarkBlack:     40,
	DarkRed:       41,
	DarkGreen:     42,
	DarkYellow:    43,
	DarkBlue:      44,
	DarkMagenta:   45,
	DarkCyan:      46,
	DarkWhite:     47,
	DarkDefault:   49,
	BrightBlack:   100,
	BrightRed:     101,
	BrightGreen:   102,
	BrightYellow:  103,
	BrightBlue:    104,
	BrightMagenta: 105,
	BrightCyan:    106,
	BrightWhite:   107,
	BrightDefault: 109,
}

// Valid reports whether c is one of the defined colors.
func (c Color) Valid() bool {
	return c <= BrightDefault
}

// sprintfc formats args per format and wraps the result in the escape
// sequence for the given color pair plus a trailing reset.
func sprintfc(fg, bg Color, format string, args ...any) string {
	c := color.New(foregroundAttrs[fg], backgroundAttrs[bg])
	// Force escape sequences regardless of TTY detection; whether colors are
	// wanted at all is decided by the caller.
	c.EnableColor()
	return c.Sprintf(format, args...)
}
