package junction

// LaneStatus is a read-only view of one lane for observers and displays
type LaneStatus struct {
	Direction           Direction  `json:"direction"`
	QueueLength         int        `json:"queue_length"`
	AverageWait         float64    `json:"average_wait"`
	Density             int        `json:"density"`
	HasEmergency        bool       `json:"has_emergency"`
	PedestrianRequested bool       `json:"pedestrian_requested"`
	Light               LightState `json:"light"`
}

// Snapshot is a read-only view of the whole intersection at a point in time
type Snapshot struct {
	ControllerID string                    `json:"controller_id"`
	Cycle        int                       `json:"cycle"`
	Now          Tick                      `json:"now"`
	Lanes        [NumDirections]LaneStatus `json:"lanes"`
	CurrentGreen Direction                 `json:"current_green"`
	HasGreen     bool                      `json:"has_green"`
}

// Lane returns the status of the given direction within the snapshot
func (s Snapshot) Lane(dir Direction) (LaneStatus, error) {
	if !dir.IsValid() {
		return LaneStatus{}, NewDirectionError(dir)
	}
	return s.Lanes[dir], nil
}

// VehiclePassed describes a single vehicle leaving the intersection
type VehiclePassed struct {
	VehicleID int       `json:"vehicle_id"`
	Direction Direction `json:"direction"`
	Emergency bool      `json:"emergency"`
	Waited    Tick      `json:"waited"`
}

// Statistics holds the running aggregate counters of a controller
type Statistics struct {
	VehiclesProcessed int  `json:"vehicles_processed"`
	TotalWaitTicks    Tick `json:"total_wait_ticks"`
	// AverageWait is TotalWaitTicks / VehiclesProcessed, or 0 before any
	// vehicle has passed
	AverageWait float64 `json:"average_wait"`
}

// CycleResult summarises one completed decision cycle
type CycleResult struct {
	Cycle              int        `json:"cycle"`
	GreenDirection     Direction  `json:"green_direction"`
	GreenTime          Tick       `json:"green_time"`
	Passed             int        `json:"passed"`
	PedestrianServed   bool       `json:"pedestrian_served"`
	EmergencyPreempted bool       `json:"emergency_preempted"`
	Stats              Statistics `json:"stats"`
}
