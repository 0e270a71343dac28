// Package printer implements the growable formatted-output engine used for
// test context messages and report output. A Buffer accumulates formatted
// text in memory with an explicit capacity policy; a Printer writes formatted
// text to an output and an error stream, optionally wrapped in ANSI color
// escape sequences.
package printer

import (
	"errors"
	"fmt"
)

// initialBufferSize is the capacity a Buffer allocates on its first write.
const initialBufferSize = 128

// ErrInvalidArgument is returned when an operation is called with an argument
// that violates its contract, such as a negative grow size.
var ErrInvalidArgument = errors.New("invalid argument")

// Buffer is a growable text buffer supporting formatted overwrite and append
// operations, with optional color decoration. The zero value is not usable;
// create one with NewBuffer.
//
// Capacity only ever increases, by doubling until a requirement is met, and
// content is preserved across growth. A Buffer is not safe for concurrent use.
type Buffer struct {
	data    []byte
	colored bool
}

// NewBuffer returns an empty Buffer. The underlying storage is allocated
// lazily on the first write. When colored is false, the colored operations
// behave exactly like their plain counterparts.
func NewBuffer(colored bool) *Buffer {
	return &Buffer{colored: colored}
}

// Colored reports whether colored operations decorate their output.
func (b *Buffer) Colored() bool {
	return b.colored
}

// String returns the accumulated text.
func (b *Buffer) String() string {
	return string(b.data)
}

// Len returns the number of bytes accumulated so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current capacity of the underlying storage.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Reset discards the accumulated text while keeping the allocated capacity
// for reuse.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Grow ensures that the buffer has room for at least n more bytes without
// another allocation. A negative n is a contract violation.
func (b *Buffer) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative grow size %d", ErrInvalidArgument, n)
	}
	b.ensure(n)
	return nil
}

// ensure grows the underlying storage until it can hold extra more bytes plus
// one spare byte. New capacity starts at initialBufferSize and doubles until
// the requirement is met. Existing content is preserved.
func (b *Buffer) ensure(extra int) {
	required := len(b.data) + extra + 1
	if cap(b.data) >= required {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = initialBufferSize
	}
	for newCap < required {
		newCap *= 2
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Overwrite formats args per format and replaces the buffer content with the
// result.
func (b *Buffer) Overwrite(format string, args ...any) error {
	b.data = b.data[:0]
	return b.Append(format, args...)
}

// Append formats args per format and appends the result to the buffer.
func (b *Buffer) Append(format string, args ...any) error {
	s := fmt.Sprintf(format, args...)
	b.ensure(len(s))
	b.data = append(b.data, s...)
	return nil
}

// OverwriteColored is Overwrite with the formatted text wrapped in the escape
// sequence for the given color pair. With colors disabled on the buffer, the
// output is byte-identical to Overwrite.
func (b *Buffer) OverwriteColored(fg, bg Color, format string, args ...any) error {
	if !fg.Valid() || !bg.Valid() {
		return fmt.Errorf("%w: foreground %d, background %d", ErrInvalidColor, fg, bg)
	}
	b.data = b.data[:0]
	return b.AppendColored(fg, bg, format, args...)
}

// AppendColored is Append with the formatted text wrapped in the escape
// sequence for the given color pair. With colors disabled on the buffer, the
// output is byte-identical to Append.
func (b *Buffer) AppendColored(fg, bg Color, format string, args ...any) error {
	if !fg.Valid() || !bg.Valid() {
		return fmt.Errorf("%w: foreground %d, background %d", ErrInvalidColor, fg, bg)
	}
	if !b.colored {
		return b.Append(format, args...)
	}
	s := sprintfc(fg, bg, format, args...)
	b.ensure(len(s))
	b.data = append(b.data, s...)
	return nil
}
