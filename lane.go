package junction

const (
	// MinDensity is the lower bound of a lane's traffic density
	MinDensity = 0
	// MaxDensity is the upper bound of a lane's traffic density
	MaxDensity = 10
	// DefaultDensity is the density a lane starts with
	DefaultDensity = 5
)

// Lane is a per-direction FIFO queue of waiting vehicles plus a traffic
// density value. Vehicles leave in exact arrival order: the only queue
// mutations are append at the tail and removal at the head.
type Lane struct {
	direction Direction
	queue     []Vehicle
	density   int
}

// NewLane creates a lane for the given direction with the default density.
// The direction is fixed for the lane's lifetime.
func NewLane(dir Direction) (*Lane, error) {
	if !dir.IsValid() {
		return nil, NewDirectionError(dir)
	}
	return &Lane{
		direction: dir,
		queue:     make([]Vehicle, 0),
		density:   DefaultDensity,
	}, nil
}

// Direction returns the direction this lane serves
func (l *Lane) Direction() Direction {
	return l.direction
}

// AddVehicle appends a vehicle to the tail of the queue
func (l *Lane) AddVehicle(v Vehicle) {
	l.queue = append(l.queue, v)
}

// ProcessVehicle removes and returns the vehicle at the head of the queue.
// Callers must check HasVehicles first; an empty lane yields a QueueError.
func (l *Lane) ProcessVehicle() (Vehicle, error) {
	if len(l.queue) == 0 {
		return Vehicle{}, NewEmptyQueueError(l.direction)
	}
	v := l.queue[0]
	l.queue = l.queue[1:]
	return v, nil
}

// HasVehicles reports whether the lane has at least one waiting vehicle
func (l *Lane) HasVehicles() bool {
	return len(l.queue) > 0
}

// QueueLength returns the number of waiting vehicles
func (l *Lane) QueueLength() int {
	return len(l.queue)
}

// TotalWaitTime returns the summed waiting time of all queued vehicles as of
// now. The traversal is read-only; the queue is neither consumed nor
// reordered.
func (l *Lane) TotalWaitTime(now Tick) Tick {
	var total Tick
	for _, v := range l.queue {
		total += v.WaitingTime(now)
	}
	return total
}

// AverageWaitTime returns the mean waiting time of the queued vehicles as of
// now, or 0 for an empty lane
func (l *Lane) AverageWaitTime(now Tick) float64 {
	if len(l.queue) == 0 {
		return 0
	}
	return float64(l.TotalWaitTime(now)) / float64(len(l.queue))
}

// HasEmergencyVehicle reports whether any queued vehicle carries the
// emergency flag, via a read-only traversal
func (l *Lane) HasEmergencyVehicle() bool {
	for _, v := range l.queue {
		if v.Emergency {
			return true
		}
	}
	return false
}

// SetDensity stores the traffic density, clamped to [MinDensity, MaxDensity]
func (l *Lane) SetDensity(d int) {
	if d < MinDensity {
		d = MinDensity
	}
	if d > MaxDensity {
		d = MaxDensity
	}
	l.density = d
}

// Density returns the current traffic density
func (l *Lane) Density() int {
	return l.density
}

// Vehicles returns a copy of the queue in arrival order, for observers and
// tests. Mutating the copy does not affect the lane.
func (l *Lane) Vehicles() []Vehicle {
	out := make([]Vehicle, len(l.queue))
	copy(out, l.queue)
	return out
}
