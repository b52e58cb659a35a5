package junction

// LightState is the state of a single direction's traffic light
type LightState int

const (
	// Red means the direction must stop
	Red LightState = iota
	// Yellow is the brief transition out of green
	Yellow
	// Green means the direction may proceed
	Green
)

// String returns the human-readable light state name
func (s LightState) String() string {
	switch s {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the light state as its name
func (s LightState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// SignalTiming bundles the fixed timing configuration of a signal, all in
// logical ticks
type SignalTiming struct {
	// BaseGreen is the green time before adaptive extension
	BaseGreen Tick
	// Yellow is how long the outgoing green direction is held yellow
	Yellow Tick
	// MinGreen is the lower clamp on adaptive green time
	MinGreen Tick
	// MaxGreen is the upper clamp on adaptive green time
	MaxGreen Tick
	// Crossing is the pedestrian walk window
	Crossing Tick
}

// DefaultSignalTiming returns the reference timing: base 20, yellow 3,
// green clamped to [10, 60], pedestrian crossing 3
func DefaultSignalTiming() SignalTiming {
	return SignalTiming{
		BaseGreen: 20,
		Yellow:    3,
		MinGreen:  10,
		MaxGreen:  60,
		Crossing:  3,
	}
}

// Validate checks the timing values for internal consistency
func (t SignalTiming) Validate() error {
	if t.BaseGreen <= 0 {
		return NewConfigurationError("timing", "base green time must be positive")
	}
	if t.Yellow <= 0 {
		return NewConfigurationError("timing", "yellow time must be positive")
	}
	if t.MinGreen <= 0 {
		return NewConfigurationError("timing", "minimum green time must be positive")
	}
	if t.MinGreen > t.MaxGreen {
		return NewConfigurationError("timing", "minimum green time exceeds maximum")
	}
	if t.Crossing <= 0 {
		return NewConfigurationError("timing", "crossing time must be positive")
	}
	return nil
}

// Signal holds the light state of every direction and tracks which
// direction, if any, currently owns the green. At most one direction is
// green at any time.
type Signal struct {
	lights   [NumDirections]LightState
	current  Direction
	hasGreen bool
	timing   SignalTiming
}

// NewSignal creates a signal with all directions red and no green owner
func NewSignal(timing SignalTiming) (*Signal, error) {
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	return &Signal{timing: timing}, nil
}

// Timing returns the signal's timing configuration
func (s *Signal) Timing() SignalTiming {
	return s.timing
}

// LightState returns the light state for the given direction
func (s *Signal) LightState(dir Direction) (LightState, error) {
	if !dir.IsValid() {
		return Red, NewDirectionError(dir)
	}
	return s.lights[dir], nil
}

// CurrentGreen returns the direction currently holding the green and whether
// any direction holds it. It reports false only before the first ChangeLight.
func (s *Signal) CurrentGreen() (Direction, bool) {
	return s.current, s.hasGreen
}

// ChangeLight turns the previous green direction (if any) red and grants the
// green to newGreen. Exactly one direction is green after this call.
func (s *Signal) ChangeLight(newGreen Direction) error {
	if !newGreen.IsValid() {
		return NewDirectionError(newGreen)
	}
	if s.hasGreen {
		s.lights[s.current] = Red
	}
	s.lights[newGreen] = Green
	s.current = newGreen
	s.hasGreen = true
	return nil
}

// SetYellow turns the current green direction yellow. The green ownership is
// not released here; the following ChangeLight performs the red transition
// and the new green assignment together.
func (s *Signal) SetYellow() {
	if s.hasGreen {
		s.lights[s.current] = Yellow
	}
}

// AdaptiveGreenTime computes the green duration for the given lane:
// base + 2*queueLength + 2*density, clamped to [MinGreen, MaxGreen]. Longer
// queues and denser traffic extend the green, bounded so other directions
// cannot starve and so a green is never uselessly short.
func (s *Signal) AdaptiveGreenTime(lane *Lane) Tick {
	t := s.timing.BaseGreen + 2*Tick(lane.QueueLength()) + 2*Tick(lane.Density())
	if t < s.timing.MinGreen {
		t = s.timing.MinGreen
	}
	if t > s.timing.MaxGreen {
		t = s.timing.MaxGreen
	}
	return t
}
