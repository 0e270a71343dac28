package scunit

import (
	"fmt"
	"runtime"

	"github.com/Piwimau/SCUnit/printer"
)

// Result is the outcome a test reports through its Context.
type Result uint8

const (
	// ResultPass marks a test as passed. It is the default of a freshly reset
	// Context.
	ResultPass Result = iota

	// ResultSkip marks a test as skipped.
	ResultSkip

	// ResultFail marks a test as failed.
	ResultFail
)

// Valid reports whether r is one of the defined results.
func (r Result) Valid() bool {
	return r <= ResultFail
}

// String returns the lowercase name of the result.
func (r Result) String() string {
	switch r {
	case ResultPass:
		return "pass"
	case ResultSkip:
		return "skip"
	case ResultFail:
		return "fail"
	default:
		return fmt.Sprintf("Result(%d)", r)
	}
}

// Context is the per-test record of outcome and diagnostic message. One
// Context is allocated per suite run and reset between tests; test functions
// report their outcome exclusively by mutating it.
type Context struct {
	result  Result
	message *printer.Buffer
}

// NewContext returns a Context with a Pass result and an empty message.
// When colored is false, the colored message operations behave exactly like
// their plain counterparts.
func NewContext(colored bool) *Context {
	return &Context{message: printer.NewBuffer(colored)}
}

// Reset restores the Context to its initial state (Pass result, empty
// message) without releasing the message buffer's capacity.
func (c *Context) Reset() {
	c.result = ResultPass
	c.message.Reset()
}

// Result returns the current result.
func (c *Context) Result() Result {
	return c.result
}

// SetResult sets the result. An out-of-range value is rejected without
// mutating state.
func (c *Context) SetResult(result Result) error {
	if !result.Valid() {
		return fmt.Errorf("%w: result %d", ErrInvalidArgument, result)
	}
	c.result = result
	return nil
}

// Message returns the accumulated diagnostic message.
func (c *Context) Message() string {
	return c.message.String()
}

// OverwriteMessage replaces the message with the formatted text.
func (c *Context) OverwriteMessage(format string, args ...any) error {
	return c.message.Overwrite(format, args...)
}

// AppendMessage appends the formatted text to the message.
func (c *Context) AppendMessage(format string, args ...any) error {
	return c.message.Append(format, args...)
}

// OverwriteMessageColored replaces the message with the formatted text
// wrapped in the escape sequence for the given color pair.
func (c *Context) OverwriteMessageColored(fg, bg printer.Color, format string, args ...any) error {
	return c.message.OverwriteColored(fg, bg, format, args...)
}

// AppendMessageColored appends the formatted text wrapped in the escape
// sequence for the given color pair.
func (c *Context) AppendMessageColored(fg, bg printer.Color, format string, args ...any) error {
	return c.message.AppendColored(fg, bg, format, args...)
}

// PassNow terminates the current test with a Pass result, optionally
// appending a formatted message first. It must be called from the goroutine
// running the test.
func (c *Context) PassNow(msgAndArgs ...any) {
	c.terminate(ResultPass, msgAndArgs)
}

// SkipNow terminates the current test with a Skip result, optionally
// appending a formatted message first. It must be called from the goroutine
// running the test.
func (c *Context) SkipNow(msgAndArgs ...any) {
	c.terminate(ResultSkip, msgAndArgs)
}

// FailNow terminates the current test with a Fail result, optionally
// appending a formatted message first. It must be called from the goroutine
// running the test.
func (c *Context) FailNow(msgAndArgs ...any) {
	c.terminate(ResultFail, msgAndArgs)
}

// terminate records the result and unwinds the test goroutine. The execution
// engine joins the goroutine before continuing with the next test.
func (c *Context) terminate(result Result, msgAndArgs []any) {
	if len(msgAndArgs) > 0 {
		_ = c.AppendMessage("\n  %s\n\n", messageFromMsgAndArgs(msgAndArgs))
	}
	c.result = result
	runtime.Goexit()
}

// messageFromMsgAndArgs renders an optional format string plus arguments the
// way the testify assertions do.
func messageFromMsgAndArgs(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprintf("%+v", msgAndArgs)
	}
}
