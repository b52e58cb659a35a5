package junction

import (
	"sync"
	"testing"
)

// TestObserver is a mock observer for testing that captures all observer
// events
type TestObserver struct {
	mutex          sync.RWMutex
	CycleStarts    []CycleStartEvent
	VehiclesPassed []VehiclePassed
	CycleEnds      []CycleResult
	Emergencies    []Direction
	Yellows        []YellowEvent
	Greens         []GreenEvent
	Walks          []Direction
	DontWalks      []Direction
	Errors         []error
}

type CycleStartEvent struct {
	Cycle int
	Snap  Snapshot
}

type YellowEvent struct {
	Direction Direction
	Hold      Tick
}

type GreenEvent struct {
	Direction Direction
	GreenTime Tick
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		CycleStarts:    make([]CycleStartEvent, 0),
		VehiclesPassed: make([]VehiclePassed, 0),
		CycleEnds:      make([]CycleResult, 0),
		Emergencies:    make([]Direction, 0),
		Yellows:        make([]YellowEvent, 0),
		Greens:         make([]GreenEvent, 0),
		Walks:          make([]Direction, 0),
		DontWalks:      make([]Direction, 0),
		Errors:         make([]error, 0),
	}
}

// Observer interface implementations
func (o *TestObserver) OnCycleStart(cycle int, snap Snapshot) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.CycleStarts = append(o.CycleStarts, CycleStartEvent{Cycle: cycle, Snap: snap})
}

func (o *TestObserver) OnVehiclePassed(passed VehiclePassed) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.VehiclesPassed = append(o.VehiclesPassed, passed)
}

func (o *TestObserver) OnCycleEnd(result CycleResult) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.CycleEnds = append(o.CycleEnds, result)
}

// ExtendedObserver interface implementations
func (o *TestObserver) OnEmergencyDetected(dir Direction) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Emergencies = append(o.Emergencies, dir)
}

func (o *TestObserver) OnYellowPhase(dir Direction, hold Tick) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Yellows = append(o.Yellows, YellowEvent{Direction: dir, Hold: hold})
}

func (o *TestObserver) OnGreenPhase(dir Direction, greenTime Tick) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Greens = append(o.Greens, GreenEvent{Direction: dir, GreenTime: greenTime})
}

func (o *TestObserver) OnPedestrianWalk(dir Direction) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Walks = append(o.Walks, dir)
}

func (o *TestObserver) OnPedestrianDontWalk(dir Direction) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.DontWalks = append(o.DontWalks, dir)
}

func (o *TestObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Errors = append(o.Errors, err)
}

// Helper methods for test assertions
func (o *TestObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.CycleStarts = nil
	o.VehiclesPassed = nil
	o.CycleEnds = nil
	o.Emergencies = nil
	o.Yellows = nil
	o.Greens = nil
	o.Walks = nil
	o.DontWalks = nil
	o.Errors = nil
}

func (o *TestObserver) CycleStartCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.CycleStarts)
}

func (o *TestObserver) VehiclePassedCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.VehiclesPassed)
}

func (o *TestObserver) CycleEndCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.CycleEnds)
}

func (o *TestObserver) ErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Errors)
}

func (o *TestObserver) LastCycleEnd() *CycleResult {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.CycleEnds) == 0 {
		return nil
	}
	return &o.CycleEnds[len(o.CycleEnds)-1]
}

func (o *TestObserver) LastGreen() *GreenEvent {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.Greens) == 0 {
		return nil
	}
	return &o.Greens[len(o.Greens)-1]
}

// Test controller builders - common configurations for testing

// MustController creates a controller with default timing, panicking on
// construction errors. Intended for tests only.
func MustController(gen Generator) *Controller {
	c, err := NewController(gen)
	if err != nil {
		panic(err)
	}
	return c
}

// QuietLanes sets every lane's density to 0 so priority scores depend only
// on queue length and waits
func QuietLanes(c *Controller) {
	for _, dir := range Directions {
		_ = c.SetDensity(dir, 0)
	}
}

// Test assertions and utilities

// AssertLight checks the light state of a direction
func AssertLight(t *testing.T, c *Controller, dir Direction, expected LightState) {
	t.Helper()
	state, err := c.Signal().LightState(dir)
	if err != nil {
		t.Fatalf("Unexpected error reading light state: %v", err)
	}
	if state != expected {
		t.Errorf("Expected %s light for %s, got %s", expected, dir, state)
	}
}

// AssertSingleGreen checks that at most one direction is green and that it
// is the expected one
func AssertSingleGreen(t *testing.T, c *Controller, expected Direction) {
	t.Helper()
	greens := 0
	for _, dir := range Directions {
		state, _ := c.Signal().LightState(dir)
		if state == Green {
			greens++
			if dir != expected {
				t.Errorf("Expected green on %s, found green on %s", expected, dir)
			}
		}
	}
	if greens != 1 {
		t.Errorf("Expected exactly 1 green light, found %d", greens)
	}
}

// AssertQueueLength checks the queue length of a direction's lane
func AssertQueueLength(t *testing.T, c *Controller, dir Direction, expected int) {
	t.Helper()
	lane, err := c.Lane(dir)
	if err != nil {
		t.Fatalf("Unexpected error reading lane: %v", err)
	}
	if lane.QueueLength() != expected {
		t.Errorf("Expected queue length %d on %s, got %d", expected, dir, lane.QueueLength())
	}
}

// AssertDensityBounds checks that every lane's density is within [0, 10]
func AssertDensityBounds(t *testing.T, c *Controller) {
	t.Helper()
	for _, dir := range Directions {
		lane, _ := c.Lane(dir)
		if lane.Density() < MinDensity || lane.Density() > MaxDensity {
			t.Errorf("Density %d on %s outside [%d, %d]", lane.Density(), dir, MinDensity, MaxDensity)
		}
	}
}
