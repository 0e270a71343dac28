//go:build windows

package timer

import "golang.org/x/sys/windows"

// processCPUTime returns the kernel plus user time consumed by the current
// process, in seconds.
func processCPUTime() (float64, error) {
	var creation, exit, kernel, user windows.Filetime
	handle := windows.CurrentProcess()
	if err := windows.GetProcessTimes(handle, &creation, &exit, &kernel, &user); err != nil {
		return 0, err
	}
	total := kernel.Nanoseconds() + user.Nanoseconds()
	return float64(total) / nanosecondsPerSecond, nil
}
