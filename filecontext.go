package scunit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Piwimau/SCUnit/printer"
)

// contextLines is the number of lines rendered on each side of the target
// line of a source context window.
const contextLines = 2

// lineReader reads a stream line by line into a reusable buffer, stripping
// the trailing newline. It reports whether a newline (as opposed to EOF)
// terminated the read so the caller can stop precisely at end of file.
type lineReader struct {
	reader *bufio.Reader
	line   []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

// readLine reads the next line into the reusable buffer. It returns whether
// more lines remain after this one.
func (lr *lineReader) readLine() (bool, error) {
	lr.line = lr.line[:0]
	for {
		b, err := lr.reader.ReadByte()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrReadingFile, err)
		}
		if b == '\n' {
			return true, nil
		}
		lr.line = append(lr.line, b)
	}
}

// AppendFileContext appends a line-numbered window of the source lines around
// line to the context's message. The window covers two lines on each side of
// the target; near the start of the file it simply begins at line one, and it
// ends early at end of file. Line numbers are right-aligned to the width of
// the last window line and rendered in dark cyan; the target line's text is
// rendered in dark red.
//
// The file's content is assumed to be UTF-8 encoded. On failure, the first
// error encountered is returned, closing the file is best-effort, and any
// output appended before the failure is kept.
func (c *Context) AppendFileContext(filename string, line int) error {
	if line < 1 {
		return fmt.Errorf("%w: line %d", ErrInvalidArgument, line)
	}
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpeningFile, err)
	}
	first := 1
	if line > contextLines {
		first = line - contextLines
	}
	last := line + contextLines
	width := len(strconv.Itoa(last))
	lr := newLineReader(file)
	more := true
	for i := 1; i <= last && more; i++ {
		more, err = lr.readLine()
		if err != nil {
			file.Close()
			return err
		}
		// A file ending in a newline yields one final empty read at EOF,
		// which is not a real line.
		if !more && len(lr.line) == 0 {
			break
		}
		if i < first {
			continue
		}
		_ = c.AppendMessageColored(printer.DarkCyan, printer.DarkDefault, "  %*d", width, i)
		_ = c.AppendMessage(" | ")
		lineColor := printer.DarkDefault
		if i == line {
			lineColor = printer.DarkRed
		}
		_ = c.AppendMessageColored(lineColor, printer.DarkDefault, "%s\n", lr.line)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrClosingFile, err)
	}
	return nil
}
