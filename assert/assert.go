// Package assert provides terminating assertions for SCUnit tests. A failed
// assertion records a message embedding the failing source location and a
// rendered window of the surrounding source lines, marks the test as failed
// and ends it immediately; assertions that hold are free of side effects.
//
// Every assertion accepts an optional trailing message as a format string
// plus arguments, appended to the failure output as user-supplied context.
package assert

import (
	"fmt"
	"math"
	"reflect"
	"runtime"

	"golang.org/x/exp/constraints"

	scunit "github.com/Piwimau/SCUnit"
)

// Number is the constraint of the numeric assertions Near and NotNear.
type Number interface {
	constraints.Integer | constraints.Float
}

// fail records the assertion failure on the context and terminates the
// current test. It must only be called directly from an exported assertion
// so the reported call site is the user's.
func fail(c *scunit.Context, msgAndArgs []any) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	_ = c.AppendMessage("\n  Assertion failed in %s:%d:\n\n", file, line)
	if ok {
		if err := c.AppendFileContext(file, line); err != nil {
			_ = c.AppendMessage("  (source context unavailable: %v)\n", err)
		}
	}
	_ = c.AppendMessage("\n")
	if msg := messageFromMsgAndArgs(msgAndArgs); msg != "" {
		_ = c.AppendMessage("  %s\n\n", msg)
	}
	_ = c.SetResult(scunit.ResultFail)
	runtime.Goexit()
}

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

// isNil reports whether value is nil, including typed nil pointers, maps,
// slices, channels, functions and interfaces.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Assert asserts that an arbitrary condition holds.
func Assert(c *scunit.Context, condition bool, msgAndArgs ...any) {
	if !condition {
		fail(c, msgAndArgs)
	}
}

// True asserts that a condition evaluates to true.
func True(c *scunit.Context, condition bool, msgAndArgs ...any) {
	if !condition {
		fail(c, msgAndArgs)
	}
}

// False asserts that a condition evaluates to false.
func False(c *scunit.Context, condition bool, msgAndArgs ...any) {
	if condition {
		fail(c, msgAndArgs)
	}
}

// Nil asserts that a value is nil.
func Nil(c *scunit.Context, value any, msgAndArgs ...any) {
	if !isNil(value) {
		fail(c, msgAndArgs)
	}
}

// NotNil asserts that a value is not nil.
func NotNil(c *scunit.Context, value any, msgAndArgs ...any) {
	if isNil(value) {
		fail(c, msgAndArgs)
	}
}

// Equal asserts that actual is equal to expected.
func Equal[T comparable](c *scunit.Context, actual, expected T, msgAndArgs ...any) {
	if actual != expected {
		fail(c, msgAndArgs)
	}
}

// NotEqual asserts that actual is not equal to expected.
func NotEqual[T comparable](c *scunit.Context, actual, expected T, msgAndArgs ...any) {
	if actual == expected {
		fail(c, msgAndArgs)
	}
}

// Less asserts that actual is less than expected.
func Less[T constraints.Ordered](c *scunit.Context, actual, expected T, msgAndArgs ...any) {
	if !(actual < expected) {
		fail(c, msgAndArgs)
	}
}

// LessOrEqual asserts that actual is less than or equal to expected.
func LessOrEqual[T constraints.Ordered](c *scunit.Context, actual, expected T, msgAndArgs ...any) {
	if !(actual <= expected) {
		fail(c, msgAndArgs)
	}
}

// Greater asserts that actual is greater than expected.
func Greater[T constraints.Ordered](c *scunit.Context, actual, expected T, msgAndArgs ...any) {
	if !(actual > expected) {
		fail(c, msgAndArgs)
	}
}

// GreaterOrEqual asserts that actual is greater than or equal to expected.
func GreaterOrEqual[T constraints.Ordered](c *scunit.Context, actual, expected T, msgAndArgs ...any) {
	if !(actual >= expected) {
		fail(c, msgAndArgs)
	}
}

// Near asserts that actual is within delta of expected.
func Near[T Number](c *scunit.Context, actual, expected, delta T, msgAndArgs ...any) {
	if math.Abs(float64(actual)-float64(expected)) > float64(delta) {
		fail(c, msgAndArgs)
	}
}

// NotNear asserts that actual is not within delta of expected.
func NotNear[T Number](c *scunit.Context, actual, expected, delta T, msgAndArgs ...any) {
	if math.Abs(float64(actual)-float64(expected)) <= float64(delta) {
		fail(c, msgAndArgs)
	}
}

// InRange asserts that actual lies in [lower, upper], both ends inclusive.
func InRange[T constraints.Ordered](c *scunit.Context, actual, lower, upper T, msgAndArgs ...any) {
	if actual < lower || actual > upper {
		fail(c, msgAndArgs)
	}
}

// NotInRange asserts that actual lies outside [lower, upper].
func NotInRange[T constraints.Ordered](c *scunit.Context, actual, lower, upper T, msgAndArgs ...any) {
	if actual >= lower && actual <= upper {
		fail(c, msgAndArgs)
	}
}
