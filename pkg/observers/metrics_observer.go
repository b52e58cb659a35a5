package observers

import (
	"sync"

	"github.com/anggasct/junction"
)

// MetricsObserver collects per-direction metrics about controller execution
type MetricsObserver struct {
	greenGrants          map[junction.Direction]int
	vehiclesPassed       map[junction.Direction]int
	waitTicks            map[junction.Direction]junction.Tick
	pedestrianGrants     map[junction.Direction]int
	emergencyPreemptions int
	cyclesObserved       int
	errorCount           int
	mutex                sync.RWMutex
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		greenGrants:      make(map[junction.Direction]int),
		vehiclesPassed:   make(map[junction.Direction]int),
		waitTicks:        make(map[junction.Direction]junction.Tick),
		pedestrianGrants: make(map[junction.Direction]int),
	}
}

// OnCycleStart records that a cycle began
func (o *MetricsObserver) OnCycleStart(cycle int, snap junction.Snapshot) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.cyclesObserved++
}

// OnVehiclePassed records a vehicle leaving and its wait
func (o *MetricsObserver) OnVehiclePassed(passed junction.VehiclePassed) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.vehiclesPassed[passed.Direction]++
	o.waitTicks[passed.Direction] += passed.Waited
}

// OnCycleEnd records which direction held the green
func (o *MetricsObserver) OnCycleEnd(result junction.CycleResult) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.greenGrants[result.GreenDirection]++
}

// OnEmergencyDetected records an emergency preemption
func (o *MetricsObserver) OnEmergencyDetected(dir junction.Direction) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.emergencyPreemptions++
}

// OnYellowPhase implements the optional ExtendedObserver method
func (o *MetricsObserver) OnYellowPhase(dir junction.Direction, hold junction.Tick) {
}

// OnGreenPhase implements the optional ExtendedObserver method
func (o *MetricsObserver) OnGreenPhase(dir junction.Direction, greenTime junction.Tick) {
}

// OnPedestrianWalk records a granted crossing
func (o *MetricsObserver) OnPedestrianWalk(dir junction.Direction) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.pedestrianGrants[dir]++
}

// OnPedestrianDontWalk implements the optional ExtendedObserver method
func (o *MetricsObserver) OnPedestrianDontWalk(dir junction.Direction) {
}

// OnError records an error
func (o *MetricsObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.errorCount++
}

// GetGreenGrants returns how many cycles each direction held the green
func (o *MetricsObserver) GetGreenGrants() map[junction.Direction]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[junction.Direction]int)
	for dir, count := range o.greenGrants {
		result[dir] = count
	}
	return result
}

// GetVehiclesPassed returns how many vehicles passed per direction
func (o *MetricsObserver) GetVehiclesPassed() map[junction.Direction]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[junction.Direction]int)
	for dir, count := range o.vehiclesPassed {
		result[dir] = count
	}
	return result
}

// GetAverageWait returns the mean wait of vehicles passed on the direction,
// or 0 when none passed
func (o *MetricsObserver) GetAverageWait(dir junction.Direction) float64 {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	count := o.vehiclesPassed[dir]
	if count == 0 {
		return 0
	}
	return float64(o.waitTicks[dir]) / float64(count)
}

// GetPedestrianGrants returns how many crossings each direction was granted
func (o *MetricsObserver) GetPedestrianGrants() map[junction.Direction]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[junction.Direction]int)
	for dir, count := range o.pedestrianGrants {
		result[dir] = count
	}
	return result
}

// GetEmergencyPreemptions returns the number of emergency preemptions
func (o *MetricsObserver) GetEmergencyPreemptions() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.emergencyPreemptions
}

// GetCyclesObserved returns the number of cycles seen
func (o *MetricsObserver) GetCyclesObserved() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.cyclesObserved
}

// GetErrorCount returns the number of errors
func (o *MetricsObserver) GetErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.errorCount
}

// Reset resets all metrics
func (o *MetricsObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.greenGrants = make(map[junction.Direction]int)
	o.vehiclesPassed = make(map[junction.Direction]int)
	o.waitTicks = make(map[junction.Direction]junction.Tick)
	o.pedestrianGrants = make(map[junction.Direction]int)
	o.emergencyPreemptions = 0
	o.cyclesObserved = 0
	o.errorCount = 0
}
