package scunit

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Piwimau/SCUnit/exitcodes"
	"github.com/Piwimau/SCUnit/flags"
)

// NewApp builds the command line application driving a run of all suites in
// the registry. Help and version requests are handled by the cli package and
// exit successfully before the action runs.
func NewApp(registry *Registry) *cli.App {
	app := cli.NewApp()
	app.Name = "scunit"
	app.Usage = "SCUnit test runner"
	app.Description = "Runs all registered test suites and reports the results."
	app.Version = Version
	app.Flags = flags.Flags
	app.HideHelpCommand = true
	app.Action = func(ctx *cli.Context) error {
		cfg, err := NewConfig(ctx)
		if err != nil {
			return NewRuntimeError(fmt.Errorf(
				"%v\nTry option '-h' or '--help' for more information", err))
		}
		result, err := registry.Run(cfg)
		if err != nil {
			return NewRuntimeError(err)
		}
		if result.Summary.Failed > 0 {
			return NewTestFailureError(fmt.Sprintf(
				"%d of %d tests failed", result.Summary.Failed, result.Summary.Total()))
		}
		return nil
	}
	return app
}

// Main runs the registry's suites as a complete test binary: it parses the
// command line, executes the run, and terminates the process with the exit
// code matching the outcome. Library-level operations never terminate the
// process; this is the one place that does.
func Main(registry *Registry) {
	app := NewApp(registry)
	app.ExitErrHandler = func(_ *cli.Context, err error) {
		if err == nil {
			return
		}
		var exitErr cli.ExitCoder
		switch {
		case errors.As(err, &exitErr):
			cli.HandleExitCoder(exitErr)
		case IsTestFailureError(err):
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
		default:
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
		}
	}
	if err := app.Run(os.Args); err != nil {
		// Unreachable when the exit handler fired; kept as a last resort.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcodes.RuntimeErr)
	}
}
