package scunit

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/log"

	"github.com/Piwimau/SCUnit/printer"
)

// testConfig returns a quiet sequential config capturing the report streams.
func testConfig() (*Config, *bytes.Buffer, *bytes.Buffer) {
	var out, errStream bytes.Buffer
	cfg := &Config{
		ColoredOutput: false,
		Order:         OrderSequential,
		Stdout:        &out,
		Stderr:        &errStream,
		Log:           log.NewLogger(log.DiscardHandler()),
	}
	return cfg, &out, &errStream
}

func TestSuiteRegistration(t *testing.T) {
	suite := NewSuite("Example")
	assert.Equal(t, "Example", suite.Name())
	assert.Equal(t, 0, suite.Len())
	suite.AddTest("A", func(c *Context) {})
	suite.AddTest("A", func(c *Context) {}) // duplicate names are allowed
	assert.Equal(t, 2, suite.Len())
}

func TestSuiteSequentialOrderIsRegistrationOrder(t *testing.T) {
	cfg, _, _ := testConfig()
	var executed []string
	suite := NewSuite("Order")
	for _, name := range []string{"A", "B", "C"} {
		name := name
		suite.AddTest(name, func(c *Context) { executed = append(executed, name) })
	}
	_, err := suite.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, executed)
}

func TestSuiteRandomOrderIsReproducible(t *testing.T) {
	run := func(seed uint64) []string {
		cfg, _, _ := testConfig()
		cfg.Order = OrderRandom
		cfg.Seed = seed
		var executed []string
		suite := NewSuite("Order")
		for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
			name := name
			suite.AddTest(name, func(c *Context) { executed = append(executed, name) })
		}
		_, err := suite.Run(cfg)
		require.NoError(t, err)
		return executed
	}
	first := run(42)
	second := run(42)
	assert.Equal(t, first, second, "equal seeds must reproduce the order")
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, first)
	assert.NotEqual(t, first, run(43), "a different seed should reorder eight tests")
}

func TestSuiteSummaryCounts(t *testing.T) {
	cfg, _, _ := testConfig()
	suite := NewSuite("Mixed")
	suite.AddTest("passes", func(c *Context) {})
	suite.AddTest("skips", func(c *Context) { c.SkipNow() })
	suite.AddTest("fails", func(c *Context) { c.FailNow() })
	result, err := suite.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, Summary{Passed: 1, Skipped: 1, Failed: 1}, result.Summary)
	assert.Equal(t, 3, result.Summary.Total())
}

func TestSuiteLifecycleHooks(t *testing.T) {
	cfg, _, _ := testConfig()
	var events []string
	suite := NewSuite("Hooks")
	suite.SetSuiteSetup(func() { events = append(events, "suite setup") })
	suite.SetSuiteTeardown(func() { events = append(events, "suite teardown") })
	suite.SetTestSetup(func() { events = append(events, "test setup") })
	suite.SetTestTeardown(func() { events = append(events, "test teardown") })
	suite.AddTest("one", func(c *Context) { events = append(events, "one") })
	suite.AddTest("two", func(c *Context) { events = append(events, "two") })
	_, err := suite.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"suite setup",
		"test setup", "one", "test teardown",
		"test setup", "two", "test teardown",
		"suite teardown",
	}, events)
}

func TestSuiteReportFormat(t *testing.T) {
	cfg, out, errStream := testConfig()
	suite := NewSuite("Report")
	suite.AddTest("passes", func(c *Context) {})
	suite.AddTest("fails", func(c *Context) { c.FailNow("broken") })
	_, err := suite.Run(cfg)
	require.NoError(t, err)

	stdout := out.String()
	assert.Contains(t, stdout, "--- Suite Report ---\n\n")
	assert.Contains(t, stdout, "(1/2) Executing test passes...  PASS  [Wall: ")
	assert.Contains(t, stdout, "(2/2) Executing test fails... ")
	assert.Contains(t, stdout, "Tests: 1 Passed (50.00%), 0 Skipped (0.00%), 1 Failed (50.00%), 2 Total\n")
	assert.Contains(t, stdout, "Wall: ")

	stderr := errStream.String()
	assert.Contains(t, stderr, " FAIL  [Wall: ")
	assert.Contains(t, stderr, "\n  broken\n\n")
	assert.NotContains(t, stdout, " FAIL ", "failure badges go to the error stream")
}

func TestSuiteLastTestWithoutMessagePrintsBlankLine(t *testing.T) {
	cfg, out, _ := testConfig()
	suite := NewSuite("Spacing")
	suite.AddTest("quiet", func(c *Context) {})
	_, err := suite.Run(cfg)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "]\n\nTests: ")
}

func TestSuiteMessagesFollowBadgeLine(t *testing.T) {
	cfg, out, _ := testConfig()
	suite := NewSuite("Messages")
	suite.AddTest("skips", func(c *Context) { c.SkipNow("not supported on this platform") })
	_, err := suite.Run(cfg)
	require.NoError(t, err)
	assert.Contains(t, out.String(), " SKIP  [Wall: ")
	assert.Contains(t, out.String(), "\n  not supported on this platform\n\n")
}

func TestSuiteRecoversPanicsAsFailures(t *testing.T) {
	cfg, _, errStream := testConfig()
	suite := NewSuite("Panics")
	suite.AddTest("panics", func(c *Context) { panic("boom") })
	result, err := suite.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, Summary{Failed: 1}, result.Summary)
	assert.Contains(t, errStream.String(), "Panic: boom")
}

func TestSuiteEmptyRun(t *testing.T) {
	cfg, out, _ := testConfig()
	suite := NewSuite("Empty")
	result, err := suite.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, result.Summary)
	assert.Contains(t, out.String(), "Tests: 0 Passed (0.00%), 0 Skipped (0.00%), 0 Failed (0.00%), 0 Total\n")
}

type brokenStream struct{}

func (brokenStream) Write([]byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}

func TestSuiteRunSurfacesStreamWriteFailure(t *testing.T) {
	cfg := &Config{
		ColoredOutput: false,
		Order:         OrderSequential,
		Stdout:        brokenStream{},
		Stderr:        brokenStream{},
		Log:           log.NewLogger(log.DiscardHandler()),
	}
	executed := 0
	suite := NewSuite("Broken")
	suite.AddTest("one", func(c *Context) { executed++ })
	suite.AddTest("two", func(c *Context) { executed++ })
	result, err := suite.Run(cfg)
	assert.ErrorIs(t, err, printer.ErrWritingStream)
	assert.Equal(t, 2, executed, "tests still run when the report cannot be written")
	assert.Equal(t, Summary{Passed: 2}, result.Summary)
}

func TestSuiteRunRejectsInvalidOrder(t *testing.T) {
	cfg, _, _ := testConfig()
	cfg.Order = Order(7)
	suite := NewSuite("Invalid")
	_, err := suite.Run(cfg)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSummaryAccumulation(t *testing.T) {
	total := Summary{}
	total.add(Summary{Passed: 1, Skipped: 2, Failed: 3})
	total.add(Summary{Passed: 4, Skipped: 5, Failed: 6})
	assert.Equal(t, Summary{Passed: 5, Skipped: 7, Failed: 9}, total)
	assert.Equal(t, 21, total.Total())
}

func ExampleSuite_Run() {
	suite := NewSuite("Arithmetic")
	suite.AddTest("Add", func(c *Context) {
		if 2+2 != 4 {
			c.FailNow("arithmetic is broken")
		}
	})
	result, err := suite.Run(&Config{
		Stdout: io.Discard,
		Stderr: io.Discard,
		Log:    log.NewLogger(log.DiscardHandler()),
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(result.Summary.Passed)
	// Output: 1
}
