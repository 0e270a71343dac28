//go:build !windows

package timer

import "golang.org/x/sys/unix"

// processCPUTime reads the per-process CPU clock and returns its value in
// seconds.
func processCPUTime() (float64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, err
	}
	return float64(ts.Sec) + float64(ts.Nsec)/nanosecondsPerSecond, nil
}
