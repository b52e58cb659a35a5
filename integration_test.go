package junction

import (
	"testing"
)

func TestIntegration_SeededRunsAreReproducible(t *testing.T) {
	run := func() (Statistics, Snapshot) {
		c := MustController(NewRandomGenerator(1234))
		if err := c.Run(40); err != nil {
			t.Fatalf("Expected no error running, got: %v", err)
		}
		return c.Stats(), c.Snapshot()
	}

	statsA, snapA := run()
	statsB, snapB := run()

	if statsA != statsB {
		t.Errorf("Expected identical statistics, got %+v vs %+v", statsA, statsB)
	}
	// Controller IDs differ per instance; everything observable about the
	// intersection must not.
	snapA.ControllerID = ""
	snapB.ControllerID = ""
	if snapA != snapB {
		t.Errorf("Expected identical final snapshots, got %+v vs %+v", snapA, snapB)
	}
}

func TestIntegration_InvariantsHoldUnderRandomTraffic(t *testing.T) {
	c := MustController(NewRandomGenerator(99))
	observer := NewTestObserver()
	c.AddObserver(observer)

	var lastProcessed int
	for i := 0; i < 60; i++ {
		result, err := c.RunCycle()
		if err != nil {
			t.Fatalf("Expected no error on cycle %d, got: %v", i+1, err)
		}

		AssertDensityBounds(t, c)
		AssertSingleGreen(t, c, result.GreenDirection)

		if result.Stats.VehiclesProcessed < lastProcessed {
			t.Errorf("Expected processed counter to be monotonic, went %d -> %d",
				lastProcessed, result.Stats.VehiclesProcessed)
		}
		lastProcessed = result.Stats.VehiclesProcessed

		if result.GreenTime < DefaultSignalTiming().MinGreen || result.GreenTime > DefaultSignalTiming().MaxGreen {
			t.Errorf("Green time %d outside configured bounds", result.GreenTime)
		}
	}

	if observer.ErrorCount() != 0 {
		t.Errorf("Expected no errors over the run, got %v", observer.Errors)
	}
	if c.CycleCount() != 60 {
		t.Errorf("Expected 60 cycles, got %d", c.CycleCount())
	}
}

func TestIntegration_ScriptedEmergencyPreemption(t *testing.T) {
	// Three quiet cycles of background traffic, then an ambulance on West.
	script := [][]Stimulus{
		{ArrivalStimulus{Direction: North}, ArrivalStimulus{Direction: East}},
		{ArrivalStimulus{Direction: North}},
		{ArrivalStimulus{Direction: South}},
		{ArrivalStimulus{Direction: West, Emergency: true}},
	}
	c := MustController(NewScriptedGenerator(script))
	observer := NewTestObserver()
	c.AddObserver(observer)

	for i := 0; i < 3; i++ {
		result, err := c.RunCycle()
		if err != nil {
			t.Fatalf("Expected no error on cycle %d, got: %v", i+1, err)
		}
		if result.EmergencyPreempted {
			t.Errorf("Expected no preemption on cycle %d", i+1)
		}
	}

	result, err := c.RunCycle()
	if err != nil {
		t.Fatalf("Expected no error on the emergency cycle, got: %v", err)
	}
	if !result.EmergencyPreempted {
		t.Error("Expected the emergency cycle to preempt")
	}
	if result.GreenDirection != West {
		t.Errorf("Expected green for West, got %s", result.GreenDirection)
	}
	if len(observer.Emergencies) != 1 || observer.Emergencies[0] != West {
		t.Errorf("Expected one emergency notification for West, got %v", observer.Emergencies)
	}

	// The ambulance passes within the same cycle.
	found := false
	for _, passed := range observer.VehiclesPassed {
		if passed.Emergency && passed.Direction == West {
			found = true
		}
	}
	if !found {
		t.Error("Expected the emergency vehicle to pass during its cycle")
	}
}

func TestIntegration_SnapshotReflectsLiveState(t *testing.T) {
	c := MustController(nil)

	_, _ = c.AddVehicle(East, true)
	_ = c.SetDensity(East, 9)
	_ = c.RequestCrossing(East)
	c.Clock().Advance(2)

	snap := c.Snapshot()
	status, err := snap.Lane(East)
	if err != nil {
		t.Fatalf("Expected no error reading snapshot lane, got: %v", err)
	}

	if status.QueueLength != 1 {
		t.Errorf("Expected queue length 1, got %d", status.QueueLength)
	}
	if status.Density != 9 {
		t.Errorf("Expected density 9, got %d", status.Density)
	}
	if !status.HasEmergency {
		t.Error("Expected emergency flag in snapshot")
	}
	if !status.PedestrianRequested {
		t.Error("Expected pedestrian request flag in snapshot")
	}
	if status.AverageWait != 2 {
		t.Errorf("Expected average wait 2, got %f", status.AverageWait)
	}
	if snap.ControllerID != c.ID() {
		t.Error("Expected snapshot to carry the controller ID")
	}
	if _, err := snap.Lane(Direction(6)); !IsDirectionError(err) {
		t.Errorf("Expected DirectionError from snapshot lookup, got %v", err)
	}
}
