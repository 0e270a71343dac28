// Package timer measures elapsed wall and CPU time per test and per suite
// and scales the results to a display unit matching their magnitude.
package timer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRunning is returned when an operation requires a timer that is not
	// running but the timer is currently running.
	ErrRunning = errors.New("timer is running")

	// ErrNotRunning is returned when an operation requires a running timer
	// but the timer is idle or stopped.
	ErrNotRunning = errors.New("timer is not running")

	// ErrFailed is returned when acquiring a clock reading from the operating
	// system fails.
	ErrFailed = errors.New("timer failed")
)

type state uint8

const (
	idle state = iota
	running
	stopped
)

// Timer measures wall time and process CPU time between an explicit Start and
// Stop. Misuse (starting a running timer, stopping or querying a timer that
// is not stopped) is reported with a distinct error rather than ignored.
type Timer struct {
	state     state
	wallStart time.Time
	wallEnd   time.Time
	cpuStart  float64
	cpuEnd    float64
}

// New returns an idle Timer.
func New() *Timer {
	return &Timer{}
}

// Start begins a measurement. Starting a timer that is already running is a
// contract violation.
func (t *Timer) Start() error {
	if t.state == running {
		return ErrRunning
	}
	cpu, err := processCPUTime()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	t.wallStart = time.Now()
	t.cpuStart = cpu
	t.state = running
	return nil
}

// Restart begins a new measurement on a timer that is currently running,
// discarding the measurement in progress.
func (t *Timer) Restart() error {
	if t.state != running {
		return ErrNotRunning
	}
	cpu, err := processCPUTime()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	t.wallStart = time.Now()
	t.cpuStart = cpu
	return nil
}

// Stop ends the measurement in progress. Stopping a timer that is not running
// is a contract violation.
func (t *Timer) Stop() error {
	if t.state != running {
		return ErrNotRunning
	}
	cpu, err := processCPUTime()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	t.wallEnd = time.Now()
	t.cpuEnd = cpu
	t.state = stopped
	return nil
}

// IsRunning reports whether a measurement is in progress.
func (t *Timer) IsRunning() bool {
	return t.state == running
}

// WallTime returns the elapsed wall time of the last completed measurement.
// Querying a timer that is not stopped is a contract violation.
func (t *Timer) WallTime() (Measurement, error) {
	if t.state == running {
		return Measurement{}, ErrRunning
	}
	if t.state == idle {
		return Measurement{}, ErrNotRunning
	}
	return measurementFromSeconds(t.wallEnd.Sub(t.wallStart).Seconds()), nil
}

// CPUTime returns the process CPU time consumed during the last completed
// measurement. Querying a timer that is not stopped is a contract violation.
func (t *Timer) CPUTime() (Measurement, error) {
	if t.state == running {
		return Measurement{}, ErrRunning
	}
	if t.state == idle {
		return Measurement{}, ErrNotRunning
	}
	return measurementFromSeconds(t.cpuEnd - t.cpuStart), nil
}
