package junction

// Vehicle is an immutable record of a vehicle waiting at the intersection.
// IDs are assigned monotonically by the controller; the arrival tick is
// fixed at creation and waiting time is always derived from it on demand.
type Vehicle struct {
	// ID is the unique, monotonically assigned vehicle number
	ID int `json:"id"`
	// Emergency marks vehicles that trigger preemption
	Emergency bool `json:"emergency"`
	// ArrivalTick is the logical time the vehicle joined its lane
	ArrivalTick Tick `json:"arrival_tick"`
}

// WaitingTime returns how many ticks the vehicle has been waiting as of now.
// It never returns a negative value.
func (v Vehicle) WaitingTime(now Tick) Tick {
	if now < v.ArrivalTick {
		return 0
	}
	return now - v.ArrivalTick
}
