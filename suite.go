package scunit

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/Piwimau/SCUnit/metrics"
	"github.com/Piwimau/SCUnit/printer"
	"github.com/Piwimau/SCUnit/timer"
	"github.com/Piwimau/SCUnit/xrand"
)

// TestFunc is a named unit of executable behavior. It reports exactly one
// outcome by mutating the shared Context before returning.
type TestFunc func(c *Context)

// HookFunc is a suite or test setup or teardown function.
type HookFunc func()

// testRecord pairs a test name with its function. Test names need not be
// unique within a suite.
type testRecord struct {
	name string
	fn   TestFunc
}

// Suite is a named, ordered collection of tests sharing optional setup and
// teardown hooks. Tests and hooks may be attached any time before execution.
type Suite struct {
	name          string
	suiteSetup    HookFunc
	suiteTeardown HookFunc
	testSetup     HookFunc
	testTeardown  HookFunc
	tests         []testRecord
}

// NewSuite returns an empty suite with the given name.
func NewSuite(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the name of the suite.
func (s *Suite) Name() string {
	return s.name
}

// SetSuiteSetup registers the hook run once before any test of the suite.
func (s *Suite) SetSuiteSetup(fn HookFunc) {
	s.suiteSetup = fn
}

// SetSuiteTeardown registers the hook run once after all tests of the suite.
func (s *Suite) SetSuiteTeardown(fn HookFunc) {
	s.suiteTeardown = fn
}

// SetTestSetup registers the hook run before each individual test.
func (s *Suite) SetTestSetup(fn HookFunc) {
	s.testSetup = fn
}

// SetTestTeardown registers the hook run after each individual test.
func (s *Suite) SetTestTeardown(fn HookFunc) {
	s.testTeardown = fn
}

// AddTest appends a test to the suite.
func (s *Suite) AddTest(name string, fn TestFunc) {
	s.tests = append(s.tests, testRecord{name: name, fn: fn})
}

// Len returns the number of registered tests.
func (s *Suite) Len() int {
	return len(s.tests)
}

// Summary counts test outcomes. Counters only increase during a run and are
// reset at the start of each run.
type Summary struct {
	Passed  int
	Skipped int
	Failed  int
}

// Total returns the number of counted tests.
func (s Summary) Total() int {
	return s.Passed + s.Skipped + s.Failed
}

// add accumulates another summary into s.
func (s *Summary) add(other Summary) {
	s.Passed += other.Passed
	s.Skipped += other.Skipped
	s.Failed += other.Failed
}

// SuiteResult is the outcome of one suite run.
type SuiteResult struct {
	Name    string
	Summary Summary
	Wall    timer.Measurement
	CPU     timer.Measurement
}

// Run executes the suite: suite setup once, then for each test in the
// configured order the test setup, the test itself against a shared freshly
// reset Context, and the test teardown, then the suite teardown once. A
// formatted report is printed along the way.
//
// A returned error indicates an infrastructure failure (timer misuse, an
// unrecognized result value, a stream write failure), which is fatal to the
// run and distinct from tests logically failing.
func (s *Suite) Run(cfg *Config) (SuiteResult, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return SuiteResult{Name: s.name}, err
	}
	cfg.setDefaults()

	result := SuiteResult{Name: s.name}
	indices := make([]int, len(s.tests))
	for i := range indices {
		indices[i] = i
	}
	if cfg.Order == OrderRandom {
		shuffle(indices, cfg.rng)
	}

	suiteTimer := timer.New()
	testTimer := timer.New()
	// One Context is reused for every test of the suite to avoid repeated
	// allocations; safe because execution is strictly sequential.
	c := NewContext(cfg.ColoredOutput)
	w := &reportWriter{p: cfg.printer}

	w.printf("--- Suite ")
	w.printfc(printer.DarkCyan, printer.DarkDefault, "%s", s.name)
	w.printf(" ---\n\n")
	if err := suiteTimer.Start(); err != nil {
		return result, errors.Wrap(err, "starting suite timer")
	}
	if s.suiteSetup != nil {
		s.suiteSetup()
	}
	for i, idx := range indices {
		test := s.tests[idx]
		if s.testSetup != nil {
			s.testSetup()
		}
		w.printf("(%d/%d) Executing test ", i+1, len(s.tests))
		w.printfc(printer.DarkCyan, printer.DarkDefault, "%s", test.name)
		w.printf("... ")
		c.Reset()
		if err := testTimer.Start(); err != nil {
			return result, errors.Wrapf(err, "starting timer for test %q", test.name)
		}
		runTest(test.fn, c)
		if err := testTimer.Stop(); err != nil {
			return result, errors.Wrapf(err, "stopping timer for test %q", test.name)
		}
		outcome := c.Result()
		out := w.p.Out()
		switch outcome {
		case ResultPass:
			w.printfc(printer.DarkBlack, printer.DarkGreen, " PASS ")
			result.Summary.Passed++
		case ResultSkip:
			w.printfc(printer.DarkBlack, printer.DarkYellow, " SKIP ")
			result.Summary.Skipped++
		case ResultFail:
			out = w.p.Err()
			w.fprintfc(out, printer.DarkBlack, printer.DarkRed, " FAIL ")
			result.Summary.Failed++
		default:
			return result, fmt.Errorf("%w: unexpected test result %d", ErrInvalidArgument, outcome)
		}
		wall, err := testTimer.WallTime()
		if err != nil {
			return result, errors.Wrapf(err, "reading wall time of test %q", test.name)
		}
		cpu, err := testTimer.CPUTime()
		if err != nil {
			return result, errors.Wrapf(err, "reading CPU time of test %q", test.name)
		}
		w.fprintf(out, " [Wall: %s, CPU: %s]\n", wall, cpu)
		if msg := c.Message(); msg != "" {
			w.fprintf(out, "%s", msg)
		} else if i == len(indices)-1 {
			w.printf("\n")
		}
		metrics.RecordTest(cfg.runID, s.name, test.name, outcome.String())
		if s.testTeardown != nil {
			s.testTeardown()
		}
	}
	if s.suiteTeardown != nil {
		s.suiteTeardown()
	}
	if err := suiteTimer.Stop(); err != nil {
		return result, errors.Wrap(err, "stopping suite timer")
	}
	wall, err := suiteTimer.WallTime()
	if err != nil {
		return result, errors.Wrap(err, "reading suite wall time")
	}
	cpu, err := suiteTimer.CPUTime()
	if err != nil {
		return result, errors.Wrap(err, "reading suite CPU time")
	}
	result.Wall = wall
	result.CPU = cpu

	w.printf("Tests: ")
	w.printCounts([]countPart{
		{result.Summary.Passed, "Passed", printer.DarkGreen},
		{result.Summary.Skipped, "Skipped", printer.DarkYellow},
		{result.Summary.Failed, "Failed", printer.DarkRed},
	}, len(s.tests))
	w.printf("Wall: %s, CPU: %s\n\n", wall, cpu)
	if w.err != nil {
		return result, errors.Wrap(w.err, "printing suite report")
	}
	return result, nil
}

// runTest invokes the test function on its own goroutine and joins it, so
// that terminators can unwind the test early via runtime.Goexit. A panic
// escaping the test is recorded as a failure rather than crashing the run.
func runTest(fn TestFunc, c *Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				_ = c.AppendMessage("\n  Panic: %v\n\n", r)
				_ = c.SetResult(ResultFail)
			}
		}()
		fn(c)
	}()
	<-done
}

// shuffle applies a Fisher-Yates shuffle to the index permutation, iterating
// from the last index down to one and swapping each position with a
// uniformly chosen earlier-or-equal position.
func shuffle(indices []int, rng *xrand.Random) {
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Int64(0, int64(i))
		indices[i], indices[j] = indices[j], indices[i]
	}
}

// countPart is one counter of a summary line, colored when greater than
// zero.
type countPart struct {
	count int
	label string
	color printer.Color
}

// reportWriter wraps a Printer with a sticky first write error, so report
// rendering can run to completion and surface the first failure once.
type reportWriter struct {
	p   *printer.Printer
	err error
}

func (w *reportWriter) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	w.err = w.p.Printf(format, args...)
}

func (w *reportWriter) printfc(fg, bg printer.Color, format string, args ...any) {
	if w.err != nil {
		return
	}
	w.err = w.p.Printfc(fg, bg, format, args...)
}

func (w *reportWriter) fprintf(out io.Writer, format string, args ...any) {
	if w.err != nil {
		return
	}
	w.err = w.p.Fprintf(out, format, args...)
}

func (w *reportWriter) fprintfc(out io.Writer, fg, bg printer.Color, format string, args ...any) {
	if w.err != nil {
		return
	}
	w.err = w.p.Fprintfc(out, fg, bg, format, args...)
}

// printCounts renders counters as "N Label (p%), ..., T Total\n", coloring a
// counter and its percentage only when the counter is greater than zero.
// Percentages are taken over total.
func (w *reportWriter) printCounts(parts []countPart, total int) {
	for _, part := range parts {
		color := printer.DarkDefault
		if part.count > 0 {
			color = part.color
		}
		percent := 0.0
		if total > 0 {
			percent = float64(part.count) / float64(total) * 100.0
		}
		w.printfc(color, printer.DarkDefault, "%d ", part.count)
		w.printf("%s (", part.label)
		w.printfc(color, printer.DarkDefault, "%.2f%%", percent)
		w.printf("), ")
	}
	w.printf("%d Total\n", total)
}
