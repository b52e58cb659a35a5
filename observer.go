package junction

import "fmt"

// Observer represents an entity that observes the controller's decision
// cycles
type Observer interface {
	// Required methods

	// OnCycleStart is called once per cycle, after stimuli have been applied,
	// with the queue status of every lane
	OnCycleStart(cycle int, snap Snapshot)

	// OnVehiclePassed is called for each vehicle drained during a green phase
	OnVehiclePassed(passed VehiclePassed)

	// OnCycleEnd is called when a cycle completes, with its summary
	OnCycleEnd(result CycleResult)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnEmergencyDetected is called when an emergency vehicle preempts the
	// normal priority selection
	OnEmergencyDetected(dir Direction)

	// OnYellowPhase is called when the outgoing green direction turns yellow
	OnYellowPhase(dir Direction, hold Tick)

	// OnGreenPhase is called when a direction receives the green, with the
	// computed adaptive green time
	OnGreenPhase(dir Direction, greenTime Tick)

	// OnPedestrianWalk is called when a crossing is granted
	OnPedestrianWalk(dir Direction)

	// OnPedestrianDontWalk is called when a crossing window ends
	OnPedestrianDontWalk(dir Direction)

	// OnError is called when an error occurs during a cycle
	OnError(err error)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnCycleStart implements the required Observer method
func (o *BaseObserver) OnCycleStart(cycle int, snap Snapshot) {
	// Default implementation - no operation
}

// OnVehiclePassed implements the required Observer method
func (o *BaseObserver) OnVehiclePassed(passed VehiclePassed) {
	// Default implementation - no operation
}

// OnCycleEnd implements the required Observer method
func (o *BaseObserver) OnCycleEnd(result CycleResult) {
	// Default implementation - no operation
}

// OnEmergencyDetected implements the optional ExtendedObserver method
func (o *BaseObserver) OnEmergencyDetected(dir Direction) {
	// Default implementation - no operation
}

// OnYellowPhase implements the optional ExtendedObserver method
func (o *BaseObserver) OnYellowPhase(dir Direction, hold Tick) {
	// Default implementation - no operation
}

// OnGreenPhase implements the optional ExtendedObserver method
func (o *BaseObserver) OnGreenPhase(dir Direction, greenTime Tick) {
	// Default implementation - no operation
}

// OnPedestrianWalk implements the optional ExtendedObserver method
func (o *BaseObserver) OnPedestrianWalk(dir Direction) {
	// Default implementation - no operation
}

// OnPedestrianDontWalk implements the optional ExtendedObserver method
func (o *BaseObserver) OnPedestrianDontWalk(dir Direction) {
	// Default implementation - no operation
}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(err error) {
	// Default implementation - no operation
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// NotifyCycleStart notifies all observers of a cycle start
func (om *ObserverManager) NotifyCycleStart(cycle int, snap Snapshot) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Observer panicked - report it if there's an error observer but don't crash
					if extObs, ok := observer.(ExtendedObserver); ok {
						func() {
							defer func() { recover() }()
							extObs.OnError(fmt.Errorf("observer panic in OnCycleStart: %v", r))
						}()
					}
				}
			}()
			observer.OnCycleStart(cycle, snap)
		}()
	}
}

// NotifyVehiclePassed notifies all observers of a vehicle leaving
func (om *ObserverManager) NotifyVehiclePassed(passed VehiclePassed) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					if extObs, ok := observer.(ExtendedObserver); ok {
						func() {
							defer func() { recover() }()
							extObs.OnError(fmt.Errorf("observer panic in OnVehiclePassed: %v", r))
						}()
					}
				}
			}()
			observer.OnVehiclePassed(passed)
		}()
	}
}

// NotifyCycleEnd notifies all observers of a completed cycle
func (om *ObserverManager) NotifyCycleEnd(result CycleResult) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					if extObs, ok := observer.(ExtendedObserver); ok {
						func() {
							defer func() { recover() }()
							extObs.OnError(fmt.Errorf("observer panic in OnCycleEnd: %v", r))
						}()
					}
				}
			}()
			observer.OnCycleEnd(result)
		}()
	}
}

// NotifyEmergencyDetected notifies all observers of an emergency preemption
func (om *ObserverManager) NotifyEmergencyDetected(dir Direction) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnEmergencyDetected(dir)
		}
	}
}

// NotifyYellowPhase notifies all observers of a yellow transition
func (om *ObserverManager) NotifyYellowPhase(dir Direction, hold Tick) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnYellowPhase(dir, hold)
		}
	}
}

// NotifyGreenPhase notifies all observers of a green grant
func (om *ObserverManager) NotifyGreenPhase(dir Direction, greenTime Tick) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnGreenPhase(dir, greenTime)
		}
	}
}

// NotifyPedestrianWalk notifies all observers of a granted crossing
func (om *ObserverManager) NotifyPedestrianWalk(dir Direction) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnPedestrianWalk(dir)
		}
	}
}

// NotifyPedestrianDontWalk notifies all observers of a crossing window ending
func (om *ObserverManager) NotifyPedestrianDontWalk(dir Direction) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnPedestrianDontWalk(dir)
		}
	}
}

// NotifyError notifies all observers of errors
func (om *ObserverManager) NotifyError(err error) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnError(err)
		}
	}
}
