// Package metrics records run, suite and test outcomes as Prometheus
// metrics. Exposing them is the embedding process's concern.
package metrics

import (
	"slices"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricsNamespace = "scunit"
)

var (
	Debug        bool = false
	validResults      = []string{"pass", "fail", "skip"}

	testsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "tests_total",
		Help:      "Count of executed tests",
	}, []string{
		"run_id",
		"suite",
		"test",
		"result",
	})

	suitesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "suites_total",
		Help:      "Count of executed suites",
	}, []string{
		"run_id",
		"suite",
		"status",
	})

	runResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_results",
		Help:      "Result of runs",
	}, []string{
		"run_id",
		"status",
	})

	runTestsPassed = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_tests_passed",
		Help:      "Number of passed tests in a run",
	}, []string{
		"run_id",
	})

	runTestsSkipped = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_tests_skipped",
		Help:      "Number of skipped tests in a run",
	}, []string{
		"run_id",
	})

	runTestsFailed = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_tests_failed",
		Help:      "Number of failed tests in a run",
	}, []string{
		"run_id",
	})

	runDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration",
		Help:      "Duration of runs",
	}, []string{
		"run_id",
	})
)

func RecordTest(runID, suite, test, result string) {
	if !isValidResult(result) {
		log.Error("RecordTest - invalid result", "result", result)
		return
	}
	if Debug {
		log.Debug("metric inc",
			"m", "tests_total",
			"run_id", runID,
			"suite", suite,
			"test", test,
			"result", result)
	}
	testsTotal.WithLabelValues(runID, suite, test, result).Inc()
}

func RecordSuite(runID, suite, status string) {
	if Debug {
		log.Debug("metric inc",
			"m", "suites_total",
			"run_id", runID,
			"suite", suite,
			"status", status)
	}
	suitesTotal.WithLabelValues(runID, suite, status).Inc()
}

func RecordRun(
	runID string,
	status string,
	passed int,
	skipped int,
	failed int,
	durationSeconds float64,
) {
	runResults.WithLabelValues(runID, status).Set(1)
	runTestsPassed.WithLabelValues(runID).Set(float64(passed))
	runTestsSkipped.WithLabelValues(runID).Set(float64(skipped))
	runTestsFailed.WithLabelValues(runID).Set(float64(failed))
	runDuration.WithLabelValues(runID).Set(durationSeconds)
}

func isValidResult(result string) bool {
	return slices.Contains(validResults, result)
}
