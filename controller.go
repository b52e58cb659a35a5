package junction

import "github.com/google/uuid"

// Controller owns the whole intersection: one lane and one pedestrian signal
// per direction, a single traffic signal, a logical clock and the running
// statistics. It is the single owner of all of that state; one decision
// cycle runs to completion before the next begins and nothing mutates the
// controller concurrently.
type Controller struct {
	id        string
	lanes     [NumDirections]*Lane
	peds      [NumDirections]*PedestrianSignal
	signal    *Signal
	clock     *Clock
	generator Generator
	observers *ObserverManager

	vehicleCounter int
	totalProcessed int
	totalWaitTicks Tick
	cycleCounter   int
}

// NewController creates a controller with the default signal timing. The
// generator may be nil, in which case the intersection only changes through
// the controller's own mutators.
func NewController(gen Generator) (*Controller, error) {
	return NewControllerWithTiming(DefaultSignalTiming(), gen)
}

// NewControllerWithTiming creates a controller with custom signal timing
func NewControllerWithTiming(timing SignalTiming, gen Generator) (*Controller, error) {
	signal, err := NewSignal(timing)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		id:        uuid.New().String(),
		signal:    signal,
		clock:     NewClock(),
		generator: gen,
		observers: NewObserverManager(),
	}

	for _, dir := range Directions {
		lane, err := NewLane(dir)
		if err != nil {
			return nil, err
		}
		c.lanes[dir] = lane
		c.peds[dir] = NewPedestrianSignal()
	}

	return c, nil
}

// ID returns the controller's unique instance identifier
func (c *Controller) ID() string {
	return c.id
}

// Clock returns the controller's logical clock. Drivers may advance it
// between cycles to model idle time.
func (c *Controller) Clock() *Clock {
	return c.clock
}

// Signal returns the traffic signal
func (c *Controller) Signal() *Signal {
	return c.signal
}

// CycleCount returns the number of completed cycles
func (c *Controller) CycleCount() int {
	return c.cycleCounter
}

// AddObserver registers an observer for cycle events
func (c *Controller) AddObserver(observer Observer) {
	c.observers.AddObserver(observer)
}

// RemoveObserver unregisters an observer
func (c *Controller) RemoveObserver(observer Observer) {
	c.observers.RemoveObserver(observer)
}

// Lane returns the lane serving the given direction
func (c *Controller) Lane(dir Direction) (*Lane, error) {
	if !dir.IsValid() {
		return nil, NewDirectionError(dir)
	}
	return c.lanes[dir], nil
}

// PedestrianSignal returns the pedestrian signal for the given direction
func (c *Controller) PedestrianSignal(dir Direction) (*PedestrianSignal, error) {
	if !dir.IsValid() {
		return nil, NewDirectionError(dir)
	}
	return c.peds[dir], nil
}

// AddVehicle enqueues a new vehicle on the given direction's lane, assigning
// the next monotonic ID and the current tick as its arrival time
func (c *Controller) AddVehicle(dir Direction, emergency bool) (Vehicle, error) {
	if !dir.IsValid() {
		return Vehicle{}, NewDirectionError(dir)
	}
	c.vehicleCounter++
	v := Vehicle{
		ID:          c.vehicleCounter,
		Emergency:   emergency,
		ArrivalTick: c.clock.Now(),
	}
	c.lanes[dir].AddVehicle(v)
	return v, nil
}

// SetDensity sets the traffic density of the given direction's lane
func (c *Controller) SetDensity(dir Direction, density int) error {
	if !dir.IsValid() {
		return NewDirectionError(dir)
	}
	c.lanes[dir].SetDensity(density)
	return nil
}

// RequestCrossing records a pedestrian crossing request for the direction
func (c *Controller) RequestCrossing(dir Direction) error {
	if !dir.IsValid() {
		return NewDirectionError(dir)
	}
	c.peds[dir].RequestCrossing()
	return nil
}

// LaneStatus returns the observer view of one lane
func (c *Controller) LaneStatus(dir Direction) (LaneStatus, error) {
	if !dir.IsValid() {
		return LaneStatus{}, NewDirectionError(dir)
	}
	lane := c.lanes[dir]
	light, _ := c.signal.LightState(dir)
	return LaneStatus{
		Direction:           dir,
		QueueLength:         lane.QueueLength(),
		AverageWait:         lane.AverageWaitTime(c.clock.Now()),
		Density:             lane.Density(),
		HasEmergency:        lane.HasEmergencyVehicle(),
		PedestrianRequested: c.peds[dir].IsRequested(),
		Light:               light,
	}, nil
}

// Snapshot returns the observer view of the whole intersection
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		ControllerID: c.id,
		Cycle:        c.cycleCounter,
		Now:          c.clock.Now(),
	}
	for _, dir := range Directions {
		status, _ := c.LaneStatus(dir)
		snap.Lanes[dir] = status
	}
	snap.CurrentGreen, snap.HasGreen = c.signal.CurrentGreen()
	return snap
}

// Stats returns the running aggregate statistics
func (c *Controller) Stats() Statistics {
	stats := Statistics{
		VehiclesProcessed: c.totalProcessed,
		TotalWaitTicks:    c.totalWaitTicks,
	}
	if c.totalProcessed > 0 {
		stats.AverageWait = float64(c.totalWaitTicks) / float64(c.totalProcessed)
	}
	return stats
}

// FindNextGreenDirection selects the direction for the next green phase and
// reports whether the choice was an emergency preemption.
//
// Any lane holding an emergency vehicle wins unconditionally; the first such
// lane in North/East/South/West order breaks ties. Otherwise the lane with
// the strictly greatest priority score wins, where
// score = queueLength * averageWait * (1 + density/10); ties resolve to the
// earlier lane in enumeration order. An empty intersection defaults to North.
func (c *Controller) FindNextGreenDirection() (Direction, bool) {
	for _, dir := range Directions {
		if c.lanes[dir].HasEmergencyVehicle() {
			return dir, true
		}
	}

	now := c.clock.Now()
	maxScore := -1.0
	best := North
	for _, dir := range Directions {
		lane := c.lanes[dir]
		if !lane.HasVehicles() {
			continue
		}
		score := float64(lane.QueueLength()) * lane.AverageWaitTime(now) * (1 + float64(lane.Density())/10)
		if score > maxScore {
			maxScore = score
			best = dir
		}
	}
	return best, false
}

// RunCycle executes one full decision cycle: stimulus ingestion, direction
// selection, light transition, pedestrian window, vehicle draining and
// statistics. The returned error is fatal; it indicates a broken internal
// invariant, never an expected runtime condition.
func (c *Controller) RunCycle() (CycleResult, error) {
	c.cycleCounter++

	c.applyStimuli()

	c.observers.NotifyCycleStart(c.cycleCounter, c.Snapshot())

	next, preempted := c.FindNextGreenDirection()
	if preempted {
		c.observers.NotifyEmergencyDetected(next)
	}

	// A direction loses its green only after a full yellow hold.
	if current, ok := c.signal.CurrentGreen(); ok {
		c.signal.SetYellow()
		c.observers.NotifyYellowPhase(current, c.signal.Timing().Yellow)
		c.clock.Advance(c.signal.Timing().Yellow)
	}

	if err := c.signal.ChangeLight(next); err != nil {
		c.observers.NotifyError(err)
		return CycleResult{}, err
	}
	greenTime := c.signal.AdaptiveGreenTime(c.lanes[next])
	c.observers.NotifyGreenPhase(next, greenTime)

	// The crossing window completes before any vehicle moves.
	pedestrianServed := false
	if c.peds[next].IsRequested() {
		c.peds[next].GrantCrossing()
		c.observers.NotifyPedestrianWalk(next)
		c.clock.Advance(c.signal.Timing().Crossing)
		c.peds[next].EndCrossing()
		c.observers.NotifyPedestrianDontWalk(next)
		pedestrianServed = true
	}

	passed, err := c.drainLane(next, greenTime)
	if err != nil {
		c.observers.NotifyError(err)
		return CycleResult{}, err
	}

	result := CycleResult{
		Cycle:              c.cycleCounter,
		GreenDirection:     next,
		GreenTime:          greenTime,
		Passed:             passed,
		PedestrianServed:   pedestrianServed,
		EmergencyPreempted: preempted,
		Stats:              c.Stats(),
	}
	c.observers.NotifyCycleEnd(result)

	// End-of-cycle pacing tick so waits accrue across cycles.
	c.clock.Advance(1)

	return result, nil
}

// Run executes the given number of cycles and stops at the first fatal
// error
func (c *Controller) Run(cycles int) error {
	if cycles < 0 {
		return NewConfigurationError("run", "cycle count must not be negative")
	}
	for i := 0; i < cycles; i++ {
		if _, err := c.RunCycle(); err != nil {
			return err
		}
	}
	return nil
}

// applyStimuli pulls one batch from the generator and applies it. Stimuli
// carrying an invalid direction are reported through OnError and skipped;
// they never corrupt controller state.
func (c *Controller) applyStimuli() {
	if c.generator == nil {
		return
	}
	for _, stimulus := range c.generator.Stimuli(c.Snapshot()) {
		var err error
		switch s := stimulus.(type) {
		case ArrivalStimulus:
			_, err = c.AddVehicle(s.Direction, s.Emergency)
		case DensityStimulus:
			err = c.SetDensity(s.Direction, s.Density)
		case CrossingStimulus:
			err = c.RequestCrossing(s.Direction)
		}
		if err != nil {
			c.observers.NotifyError(err)
		}
	}
}

// drainLane dequeues vehicles from the chosen lane up to the cycle's
// capacity. Only half the green duration's worth of slots are usable,
// modelling throughput below nominal capacity.
func (c *Controller) drainLane(dir Direction, greenTime Tick) (int, error) {
	canPass := int(greenTime / 2)
	lane := c.lanes[dir]

	passed := 0
	for passed < canPass && lane.HasVehicles() {
		v, err := lane.ProcessVehicle()
		if err != nil {
			// Unreachable while the HasVehicles guard holds; treat as fatal.
			return passed, err
		}
		waited := v.WaitingTime(c.clock.Now())
		c.totalProcessed++
		c.totalWaitTicks += waited
		passed++
		c.observers.NotifyVehiclePassed(VehiclePassed{
			VehicleID: v.ID,
			Direction: dir,
			Emergency: v.Emergency,
			Waited:    waited,
		})
	}
	return passed, nil
}
