// Package scunit is a lightweight unit-testing framework with suite and test
// registration, ordered or seeded-random execution, per-test wall and CPU
// timing, and diagnostic output with source-context display. Consumers build
// a Registry of suites in an ordinary main function and hand control to Main.
package scunit

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Piwimau/SCUnit/metrics"
	"github.com/Piwimau/SCUnit/printer"
	"github.com/Piwimau/SCUnit/timer"
)

// Registry is the process-wide, append-only collection of suites to run.
// Registration transfers ownership of the suite to the registry; callers
// must not mutate a suite after registering it.
type Registry struct {
	suites []*Suite
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a suite to the registry.
func (r *Registry) Register(suite *Suite) {
	r.suites = append(r.suites, suite)
}

// Len returns the number of registered suites.
func (r *Registry) Len() int {
	return len(r.suites)
}

// RunResult aggregates the outcome of one full run.
type RunResult struct {
	RunID        string
	Seed         uint64
	Shuffled     bool
	Summary      Summary
	Suites       []SuiteResult
	PassedSuites int
	FailedSuites int
	Wall         timer.Measurement
	CPU          timer.Measurement
}

// Run executes all registered suites in the configured order, prints the
// per-suite reports followed by a global summary, and returns the aggregated
// result. A suite counts as failed when at least one of its tests failed.
//
// A returned error indicates an infrastructure failure fatal to the run;
// ordinary test failures are reported through the result only.
func (r *Registry) Run(cfg *Config) (*RunResult, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if cfg.runID == "" {
		cfg.runID = uuid.New().String()
	}
	result := &RunResult{
		RunID:    cfg.runID,
		Seed:     cfg.Seed,
		Shuffled: cfg.Order == OrderRandom,
	}
	cfg.Log.Info("Starting run",
		"run_id", result.RunID,
		"suites", len(r.suites),
		"order", cfg.Order,
		"seed", cfg.Seed)

	indices := make([]int, len(r.suites))
	for i := range indices {
		indices[i] = i
	}
	if cfg.Order == OrderRandom {
		shuffle(indices, cfg.rng)
	}

	runTimer := timer.New()
	if err := runTimer.Start(); err != nil {
		return nil, errors.Wrap(err, "starting run timer")
	}
	for _, idx := range indices {
		suite := r.suites[idx]
		suiteResult, err := suite.Run(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "running suite %q", suite.Name())
		}
		result.Suites = append(result.Suites, suiteResult)
		result.Summary.add(suiteResult.Summary)
		status := "pass"
		if suiteResult.Summary.Failed > 0 {
			result.FailedSuites++
			status = "fail"
			cfg.Log.Debug("Suite had failures",
				"suite", suite.Name(),
				"failed", suiteResult.Summary.Failed)
		}
		metrics.RecordSuite(result.RunID, suite.Name(), status)
	}
	result.PassedSuites = len(r.suites) - result.FailedSuites
	if err := runTimer.Stop(); err != nil {
		return nil, errors.Wrap(err, "stopping run timer")
	}
	wall, err := runTimer.WallTime()
	if err != nil {
		return nil, errors.Wrap(err, "reading run wall time")
	}
	cpu, err := runTimer.CPUTime()
	if err != nil {
		return nil, errors.Wrap(err, "reading run CPU time")
	}
	result.Wall = wall
	result.CPU = cpu

	if err := r.printSummary(cfg, result); err != nil {
		return nil, err
	}
	if cfg.ResultsTable {
		renderResultsTable(cfg, result)
	}
	status := "pass"
	if result.Summary.Failed > 0 {
		status = "fail"
	}
	metrics.RecordRun(
		result.RunID,
		status,
		result.Summary.Passed,
		result.Summary.Skipped,
		result.Summary.Failed,
		wall.Seconds(),
	)
	cfg.Log.Info("Run finished",
		"run_id", result.RunID,
		"passed", result.Summary.Passed,
		"skipped", result.Summary.Skipped,
		"failed", result.Summary.Failed)

	// The registry is drained so suites cannot be rerun against stale state.
	r.suites = nil
	return result, nil
}

// printSummary renders the global report: suite counts, test counts, timing
// and, for shuffled runs, the seed needed to reproduce the ordering.
func (r *Registry) printSummary(cfg *Config, result *RunResult) error {
	w := &reportWriter{p: cfg.printer}
	w.printf("--- ")
	w.printfc(printer.DarkCyan, printer.DarkDefault, "Summary")
	w.printf(" ---\n\nSuites: ")
	w.printCounts([]countPart{
		{result.PassedSuites, "Passed", printer.DarkGreen},
		{result.FailedSuites, "Failed", printer.DarkRed},
	}, len(result.Suites))
	w.printf("Tests: ")
	w.printCounts([]countPart{
		{result.Summary.Passed, "Passed", printer.DarkGreen},
		{result.Summary.Skipped, "Skipped", printer.DarkYellow},
		{result.Summary.Failed, "Failed", printer.DarkRed},
	}, result.Summary.Total())
	w.printf("Wall: %s, CPU: %s\n", result.Wall, result.CPU)
	if result.Shuffled {
		w.printf("Seed: %d\n", result.Seed)
	}
	if w.err != nil {
		return errors.Wrap(w.err, "printing summary")
	}
	return nil
}
