package timer

import "fmt"

// Unit is the display unit of a Measurement, selected automatically by
// magnitude.
type Unit uint8

const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
)

const (
	nanosecondsPerSecond  = 1_000_000_000
	microsecondsPerSecond = 1_000_000
	millisecondsPerSecond = 1000
	secondsPerMinute      = 60
	secondsPerHour        = 3600
)

var unitStrings = [...]string{
	Nanoseconds:  "ns",
	Microseconds: "us",
	Milliseconds: "ms",
	Seconds:      "s",
	Minutes:      "min",
	Hours:        "h",
}

// String returns the short display name of the unit.
func (u Unit) String() string {
	if int(u) >= len(unitStrings) {
		return fmt.Sprintf("Unit(%d)", u)
	}
	return unitStrings[u]
}

// Measurement is an elapsed time scaled to a display unit. It is produced by
// a stopped Timer and consumed for display only.
type Measurement struct {
	Time float64
	Unit Unit
}

// String renders the measurement as a value with three decimal places
// followed by its unit.
func (m Measurement) String() string {
	return fmt.Sprintf("%.3f %s", m.Time, m.Unit)
}

// Seconds converts the measurement back to seconds.
func (m Measurement) Seconds() float64 {
	switch m.Unit {
	case Nanoseconds:
		return m.Time / nanosecondsPerSecond
	case Microseconds:
		return m.Time / microsecondsPerSecond
	case Milliseconds:
		return m.Time / millisecondsPerSecond
	case Minutes:
		return m.Time * secondsPerMinute
	case Hours:
		return m.Time * secondsPerHour
	default:
		return m.Time
	}
}

// measurementFromSeconds scales an elapsed time in seconds to the unit
// matching its magnitude.
func measurementFromSeconds(seconds float64) Measurement {
	switch {
	case seconds < 1.0/microsecondsPerSecond:
		return Measurement{Time: seconds * nanosecondsPerSecond, Unit: Nanoseconds}
	case seconds < 1.0/millisecondsPerSecond:
		return Measurement{Time: seconds * microsecondsPerSecond, Unit: Microseconds}
	case seconds < 1.0:
		return Measurement{Time: seconds * millisecondsPerSecond, Unit: Milliseconds}
	case seconds < secondsPerMinute:
		return Measurement{Time: seconds, Unit: Seconds}
	case seconds < secondsPerHour:
		return Measurement{Time: seconds / secondsPerMinute, Unit: Minutes}
	default:
		return Measurement{Time: seconds / secondsPerHour, Unit: Hours}
	}
}
