package scunit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/Piwimau/SCUnit/flags"
	"github.com/Piwimau/SCUnit/printer"
	"github.com/Piwimau/SCUnit/xrand"
)

// Order selects how suites and tests are ordered during a run.
type Order uint8

const (
	// OrderSequential executes suites and tests in registration order.
	OrderSequential Order = iota

	// OrderRandom executes suites and tests in a seeded-shuffle of
	// registration order.
	OrderRandom
)

// Valid reports whether o is one of the defined orders.
func (o Order) Valid() bool {
	return o <= OrderRandom
}

// String returns the name of the order as used on the command line.
func (o Order) String() string {
	switch o {
	case OrderSequential:
		return "sequential"
	case OrderRandom:
		return "random"
	default:
		return fmt.Sprintf("Order(%d)", o)
	}
}

// ParseOrder parses the command-line spelling of an execution order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "sequential":
		return OrderSequential, nil
	case "random":
		return OrderRandom, nil
	default:
		return 0, fmt.Errorf("%w: invalid order %q", ErrInvalidArgument, s)
	}
}

// parseColoredOutput parses the command-line spelling of the colored-output
// mode.
func parseColoredOutput(s string) (bool, error) {
	switch s {
	case "enabled":
		return true, nil
	case "disabled":
		return false, nil
	default:
		return false, fmt.Errorf("%w: invalid colored-output mode %q", ErrInvalidArgument, s)
	}
}

// Config holds the runtime-wide settings of a run. There is no ambient global
// state; the configuration is passed explicitly from the runner down to the
// formatting calls.
type Config struct {
	// ColoredOutput enables ANSI color decoration of the report.
	ColoredOutput bool

	// Order selects sequential or seeded-random execution order.
	Order Order

	// Seed drives the shuffle when Order is OrderRandom. Reusing a reported
	// seed reproduces a run's ordering exactly.
	Seed uint64

	// ResultsTable renders a per-suite results table after the summary.
	ResultsTable bool

	// Log receives lifecycle events. The report itself is plain printed
	// text, never log lines.
	Log log.Logger

	// Stdout and Stderr receive the report; failures go to Stderr.
	Stdout io.Writer
	Stderr io.Writer

	printer *printer.Printer
	rng     *xrand.Random
	runID   string
}

// DefaultConfig returns a Config with colored output enabled, sequential
// order and a time-derived seed.
func DefaultConfig() *Config {
	return &Config{
		ColoredOutput: true,
		Order:         OrderSequential,
		Seed:          uint64(time.Now().UnixNano()),
	}
}

// NewConfig builds a Config from the parsed command line. An optional YAML
// configuration file is applied first; explicitly set flags override file
// values.
func NewConfig(ctx *cli.Context) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}
	cfg := DefaultConfig()
	if path := ctx.Path(flags.ConfigFile.Name); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet(flags.ColoredOutput.Name) {
		colored, err := parseColoredOutput(ctx.String(flags.ColoredOutput.Name))
		if err != nil {
			return nil, err
		}
		cfg.ColoredOutput = colored
	}
	if ctx.IsSet(flags.Order.Name) {
		order, err := ParseOrder(ctx.String(flags.Order.Name))
		if err != nil {
			return nil, err
		}
		cfg.Order = order
	}
	if ctx.IsSet(flags.Seed.Name) {
		cfg.Seed = ctx.Uint64(flags.Seed.Name)
	}
	if ctx.IsSet(flags.ResultsTable.Name) {
		cfg.ResultsTable = ctx.Bool(flags.ResultsTable.Name)
	}
	return cfg, nil
}

// fileConfig mirrors the YAML run-configuration file.
type fileConfig struct {
	ColoredOutput string  `yaml:"colored_output"`
	Order         string  `yaml:"order"`
	Seed          *uint64 `yaml:"seed"`
	ResultsTable  *bool   `yaml:"results_table"`
}

// applyFile overlays the settings from a YAML configuration file.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	if fc.ColoredOutput != "" {
		colored, err := parseColoredOutput(fc.ColoredOutput)
		if err != nil {
			return err
		}
		c.ColoredOutput = colored
	}
	if fc.Order != "" {
		order, err := ParseOrder(fc.Order)
		if err != nil {
			return err
		}
		c.Order = order
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.ResultsTable != nil {
		c.ResultsTable = *fc.ResultsTable
	}
	return nil
}

// Validate checks the configuration for contract violations.
func (c *Config) Validate() error {
	if !c.Order.Valid() {
		return fmt.Errorf("%w: order %d", ErrInvalidArgument, c.Order)
	}
	return nil
}

// setDefaults fills in the collaborators a run needs. Streams default to the
// process streams, logging to a terminal handler on stderr, and the PRNG to a
// generator seeded with Seed.
func (c *Config) setDefaults() {
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.Log == nil {
		c.Log = log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, log.LevelInfo, c.ColoredOutput))
	}
	if c.printer == nil {
		c.printer = printer.New(c.Stdout, c.Stderr, c.ColoredOutput)
	}
	if c.rng == nil {
		c.rng = xrand.NewWithSeed(c.Seed)
	}
}
