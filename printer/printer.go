package printer

import (
	"errors"
	"fmt"
	"io"
)

// ErrWritingStream is returned when writing formatted output to a stream
// fails. The underlying cause is included in the error message.
var ErrWritingStream = errors.New("writing to stream failed")

// Printer writes formatted report output to an output stream and an error
// stream. Whether the colored operations emit escape sequences is fixed at
// construction time; with colors disabled they are byte-identical to the
// plain operations.
type Printer struct {
	out     io.Writer
	err     io.Writer
	colored bool
}

// New returns a Printer writing regular output to out and failure output to
// err.
func New(out, err io.Writer, colored bool) *Printer {
	return &Printer{out: out, err: err, colored: colored}
}

// Out returns the output stream.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Err returns the error stream.
func (p *Printer) Err() io.Writer {
	return p.err
}

// Colored reports whether colored operations decorate their output.
func (p *Printer) Colored() bool {
	return p.colored
}

// Printf formats args per format and writes the result to the output stream.
func (p *Printer) Printf(format string, args ...any) error {
	return p.Fprintf(p.out, format, args...)
}

// Printfc is Printf with the formatted text wrapped in the escape sequence
// for the given color pair.
func (p *Printer) Printfc(fg, bg Color, format string, args ...any) error {
	return p.Fprintfc(p.out, fg, bg, format, args...)
}

// Fprintf formats args per format and writes the result to w.
func (p *Printer) Fprintf(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingStream, err)
	}
	return nil
}

// Fprintfc is Fprintf with the formatted text wrapped in the escape sequence
// for the given color pair.
func (p *Printer) Fprintfc(w io.Writer, fg, bg Color, format string, args ...any) error {
	if !fg.Valid() || !bg.Valid() {
		return fmt.Errorf("%w: foreground %d, background %d", ErrInvalidColor, fg, bg)
	}
	if !p.colored {
		return p.Fprintf(w, format, args...)
	}
	if _, err := io.WriteString(w, sprintfc(fg, bg, format, args...)); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingStream, err)
	}
	return nil
}
