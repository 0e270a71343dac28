// Package flags defines the command line flags of an SCUnit test binary.
package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "SCUNIT"

// prefixEnvVar adds the application prefix to an environment variable name.
func prefixEnvVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	ColoredOutput = &cli.StringFlag{
		Name:    "colored-output",
		Value:   "enabled",
		EnvVars: prefixEnvVar("COLORED_OUTPUT"),
		Usage:   "Enable or disable colored output ('enabled' or 'disabled')",
	}
	Order = &cli.StringFlag{
		Name:    "order",
		Value:   "sequential",
		EnvVars: prefixEnvVar("ORDER"),
		Usage:   "Execution order of suites and tests ('sequential' or 'random')",
	}
	Seed = &cli.Uint64Flag{
		Name:    "seed",
		EnvVars: prefixEnvVar("SEED"),
		Usage:   "Seed for shuffling suites and tests in random order",
	}
	ConfigFile = &cli.PathFlag{
		Name:    "config",
		EnvVars: prefixEnvVar("CONFIG"),
		Usage:   "Path to an optional YAML run configuration file (eg. 'scunit.yaml')",
	}
	ResultsTable = &cli.BoolFlag{
		Name:    "results-table",
		Value:   false,
		EnvVars: prefixEnvVar("RESULTS_TABLE"),
		Usage:   "Render a per-suite results table after the summary",
	}
)

var requiredFlags = []cli.Flag{}

var optionalFlags = []cli.Flag{
	ColoredOutput,
	Order,
	Seed,
	ConfigFile,
	ResultsTable,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
