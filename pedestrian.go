package junction

// CrossingState is the state of a pedestrian signal
type CrossingState int

const (
	// DontWalk is the initial and resting state between crossings
	DontWalk CrossingState = iota
	// Walk means pedestrians may cross
	Walk
)

// String returns the human-readable crossing state name
func (s CrossingState) String() string {
	switch s {
	case DontWalk:
		return "DontWalk"
	case Walk:
		return "Walk"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the crossing state as its name
func (s CrossingState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// PedestrianSignal is the per-direction crossing request and walk state.
// It is a passive state holder: the controller's call ordering provides all
// sequencing, so no transitions are guarded here.
type PedestrianSignal struct {
	state     CrossingState
	requested bool
}

// NewPedestrianSignal creates a signal in DontWalk with no pending request
func NewPedestrianSignal() *PedestrianSignal {
	return &PedestrianSignal{state: DontWalk}
}

// RequestCrossing records a crossing request. Repeated requests are
// idempotent.
func (p *PedestrianSignal) RequestCrossing() {
	p.requested = true
}

// GrantCrossing starts a walk window and clears the pending request. The
// caller is expected to have checked IsRequested.
func (p *PedestrianSignal) GrantCrossing() {
	p.state = Walk
	p.requested = false
}

// EndCrossing returns the signal to DontWalk
func (p *PedestrianSignal) EndCrossing() {
	p.state = DontWalk
}

// IsRequested reports whether a crossing request is pending
func (p *PedestrianSignal) IsRequested() bool {
	return p.requested
}

// State returns the current crossing state
func (p *PedestrianSignal) State() CrossingState {
	return p.state
}
