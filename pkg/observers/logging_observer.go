// Package observers provides ready-made observers for monitoring
// intersection controller cycles
package observers

import (
	"fmt"
	"io"
	"sync"

	"github.com/anggasct/junction"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// LogError logs only errors
	LogError LogLevel = iota
	// LogSummary logs errors plus green grants and end-of-cycle statistics
	LogSummary
	// LogDetail logs the full cycle narrative: queue status, phases,
	// pedestrian windows and every vehicle passed
	LogDetail
)

// LoggingObserver writes a console narrative of the simulation to a writer.
// It is the display collaborator: the controller itself never prints.
type LoggingObserver struct {
	writer io.Writer
	level  LogLevel
	mutex  sync.Mutex
}

// NewLoggingObserver creates a logging observer with a custom writer and
// level
func NewLoggingObserver(w io.Writer, level LogLevel) *LoggingObserver {
	return &LoggingObserver{
		writer: w,
		level:  level,
	}
}

func (o *LoggingObserver) printf(min LogLevel, format string, args ...any) {
	if o.level < min {
		return
	}
	o.mutex.Lock()
	defer o.mutex.Unlock()
	fmt.Fprintf(o.writer, format, args...)
}

// OnCycleStart prints the cycle header and the queue status of every lane
func (o *LoggingObserver) OnCycleStart(cycle int, snap junction.Snapshot) {
	o.printf(LogSummary, "\n=== Traffic Cycle #%d ===\n", cycle)
	o.printf(LogDetail, "\n--- Queue Status ---\n")
	for _, status := range snap.Lanes {
		request := "No"
		if status.PedestrianRequested {
			request = "Yes"
		}
		o.printf(LogDetail, "%s: %d vehicles, Avg Wait: %.1f, Density: %d, Ped Request: %s\n",
			status.Direction, status.QueueLength, status.AverageWait, status.Density, request)
	}
}

// OnEmergencyDetected prints the preemption banner
func (o *LoggingObserver) OnEmergencyDetected(dir junction.Direction) {
	o.printf(LogDetail, "Emergency vehicle detected on %s!\n", dir)
}

// OnYellowPhase prints the yellow transition of the outgoing direction
func (o *LoggingObserver) OnYellowPhase(dir junction.Direction, hold junction.Tick) {
	o.printf(LogDetail, "Yellow light for %s (%d ticks)\n", dir, hold)
}

// OnGreenPhase prints the green grant and its adaptive duration
func (o *LoggingObserver) OnGreenPhase(dir junction.Direction, greenTime junction.Tick) {
	o.printf(LogSummary, "Green light for %s (%d ticks)\n", dir, greenTime)
}

// OnPedestrianWalk prints the start of a crossing window
func (o *LoggingObserver) OnPedestrianWalk(dir junction.Direction) {
	o.printf(LogDetail, "Pedestrians WALK on %s\n", dir)
}

// OnPedestrianDontWalk prints the end of a crossing window
func (o *LoggingObserver) OnPedestrianDontWalk(dir junction.Direction) {
	o.printf(LogDetail, "Pedestrians DON'T WALK on %s\n", dir)
}

// OnVehiclePassed prints one vehicle leaving the intersection
func (o *LoggingObserver) OnVehiclePassed(passed junction.VehiclePassed) {
	tag := ""
	if passed.Emergency {
		tag = " (EMERGENCY)"
	}
	o.printf(LogDetail, "Vehicle #%d%s passed from %s after waiting %d ticks\n",
		passed.VehicleID, tag, passed.Direction, passed.Waited)
}

// OnCycleEnd prints the cycle summary and the running statistics
func (o *LoggingObserver) OnCycleEnd(result junction.CycleResult) {
	o.printf(LogDetail, "Total vehicles passed: %d\n", result.Passed)
	o.printf(LogSummary, "\n--- Statistics ---\n")
	o.printf(LogSummary, "Total Vehicles Processed: %d\n", result.Stats.VehiclesProcessed)
	if result.Stats.VehiclesProcessed > 0 {
		o.printf(LogSummary, "Average Wait Time: %.2f ticks\n", result.Stats.AverageWait)
	}
}

// OnError prints an error
func (o *LoggingObserver) OnError(err error) {
	o.printf(LogError, "[ERROR] %v\n", err)
}
