package timer

import "time"

// State is the countdown lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Preset is a named countdown length.
type Preset string

const (
	PresetFocus      Preset = "focus"
	PresetShortBreak Preset = "short_break"
	PresetLongBreak  Preset = "long_break"
)

// Duration returns the preset's countdown length, zero for unknown presets.
func (p Preset) Duration() time.Duration {
	switch p {
	case PresetFocus:
		return 25 * time.Minute
	case PresetShortBreak:
		return 5 * time.Minute
	case PresetLongBreak:
		return 15 * time.Minute
	}
	return 0
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	return p.Duration() > 0
}

// Snapshot is a point-in-time view of a countdown.
type Snapshot struct {
	State            State
	Preset           Preset
	TotalSeconds     int
	RemainingSeconds int
	Display          string  // remaining formatted mm:ss
	Progress         float64 // elapsed percentage, 0-100
	Completed        bool    // true once per finished run, cleared on restart
}
