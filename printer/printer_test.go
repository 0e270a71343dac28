package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrinterWritesToStreams(t *testing.T) {
	var out, errStream bytes.Buffer
	p := New(&out, &errStream, false)
	require.NoError(t, p.Printf("to stdout %d", 1))
	require.NoError(t, p.Fprintf(p.Err(), "to stderr %d", 2))
	assert.Equal(t, "to stdout 1", out.String())
	assert.Equal(t, "to stderr 2", errStream.String())
}

func TestPrinterColoredDisabledMatchesPlain(t *testing.T) {
	var plain, colored bytes.Buffer
	p := New(&plain, &plain, false)
	require.NoError(t, p.Printf("value %d", 42))
	pc := New(&colored, &colored, false)
	require.NoError(t, pc.Printfc(DarkGreen, DarkDefault, "value %d", 42))
	assert.Equal(t, plain.String(), colored.String())
}

func TestPrinterColoredEnabledWrapsText(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out, true)
	require.NoError(t, p.Printfc(DarkBlack, DarkGreen, " PASS "))
	assert.Contains(t, out.String(), "\x1b[30;42m PASS \x1b[0m")
}

func TestPrinterInvalidColor(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out, true)
	err := p.Printfc(Color(99), DarkDefault, "x")
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, "", out.String())
}

func TestPrinterWriteFailure(t *testing.T) {
	p := New(failingWriter{}, failingWriter{}, false)
	assert.ErrorIs(t, p.Printf("x"), ErrWritingStream)
	assert.ErrorIs(t, p.Printfc(DarkRed, DarkDefault, "x"), ErrWritingStream)
}
