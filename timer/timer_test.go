package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerStateMachine(t *testing.T) {
	tm := New()
	assert.False(t, tm.IsRunning())

	// Idle timers cannot be stopped, restarted or queried.
	assert.ErrorIs(t, tm.Stop(), ErrNotRunning)
	assert.ErrorIs(t, tm.Restart(), ErrNotRunning)
	_, err := tm.WallTime()
	assert.ErrorIs(t, err, ErrNotRunning)
	_, err = tm.CPUTime()
	assert.ErrorIs(t, err, ErrNotRunning)

	require.NoError(t, tm.Start())
	assert.True(t, tm.IsRunning())
	assert.ErrorIs(t, tm.Start(), ErrRunning)
	_, err = tm.WallTime()
	assert.ErrorIs(t, err, ErrRunning)
	_, err = tm.CPUTime()
	assert.ErrorIs(t, err, ErrRunning)

	require.NoError(t, tm.Restart())
	require.NoError(t, tm.Stop())
	assert.False(t, tm.IsRunning())
	assert.ErrorIs(t, tm.Stop(), ErrNotRunning)

	wall, err := tm.WallTime()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, wall.Time, 0.0)
	_, err = tm.CPUTime()
	require.NoError(t, err)

	// A stopped timer can be started again.
	require.NoError(t, tm.Start())
	require.NoError(t, tm.Stop())
}

func TestMeasurementScaling(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    float64
		unit    Unit
	}{
		{"nanoseconds", 5e-8, 50, Nanoseconds},
		{"microseconds", 5e-5, 50, Microseconds},
		{"milliseconds", 5e-2, 50, Milliseconds},
		{"seconds", 42, 42, Seconds},
		{"minutes", 120, 2, Minutes},
		{"hours", 7200, 2, Hours},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := measurementFromSeconds(tt.seconds)
			assert.InDelta(t, tt.want, m.Time, 1e-9)
			assert.Equal(t, tt.unit, m.Unit)
			assert.InDelta(t, tt.seconds, m.Seconds(), tt.seconds*1e-12)
		})
	}
}

func TestMeasurementString(t *testing.T) {
	m := Measurement{Time: 1.5, Unit: Milliseconds}
	assert.Equal(t, "1.500 ms", m.String())
}

func TestUnitStrings(t *testing.T) {
	assert.Equal(t, "ns", Nanoseconds.String())
	assert.Equal(t, "us", Microseconds.String())
	assert.Equal(t, "ms", Milliseconds.String())
	assert.Equal(t, "s", Seconds.String())
	assert.Equal(t, "min", Minutes.String())
	assert.Equal(t, "h", Hours.String())
}
