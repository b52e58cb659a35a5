package junction

import "testing"

func TestLane_New(t *testing.T) {
	lane, err := NewLane(East)
	if err != nil {
		t.Fatalf("Expected no error creating lane, got: %v", err)
	}
	if lane.Direction() != East {
		t.Errorf("Expected direction East, got %s", lane.Direction())
	}
	if lane.Density() != DefaultDensity {
		t.Errorf("Expected default density %d, got %d", DefaultDensity, lane.Density())
	}
	if lane.HasVehicles() {
		t.Error("Expected new lane to be empty")
	}
}

func TestLane_NewInvalidDirection(t *testing.T) {
	_, err := NewLane(Direction(7))
	if err == nil {
		t.Fatal("Expected error for invalid direction")
	}
	if !IsDirectionError(err) {
		t.Errorf("Expected DirectionError, got %T", err)
	}
}

func TestLane_FIFOOrder(t *testing.T) {
	lane, _ := NewLane(North)

	for i := 1; i <= 5; i++ {
		lane.AddVehicle(Vehicle{ID: i, ArrivalTick: Tick(i)})
	}

	for i := 1; i <= 5; i++ {
		v, err := lane.ProcessVehicle()
		if err != nil {
			t.Fatalf("Expected no error dequeuing, got: %v", err)
		}
		if v.ID != i {
			t.Errorf("Expected vehicle %d at head, got %d", i, v.ID)
		}
	}
}

func TestLane_ProcessVehicleEmpty(t *testing.T) {
	lane, _ := NewLane(South)

	_, err := lane.ProcessVehicle()
	if err == nil {
		t.Fatal("Expected error dequeuing from empty lane")
	}
	if !IsQueueError(err) {
		t.Errorf("Expected QueueError, got %T", err)
	}
	if ErrorCodeOf(err) != CodeEmptyQueue {
		t.Errorf("Expected CodeEmptyQueue, got %d", ErrorCodeOf(err))
	}
}

func TestLane_QueueLength(t *testing.T) {
	lane, _ := NewLane(West)

	if lane.QueueLength() != 0 {
		t.Errorf("Expected empty queue, got length %d", lane.QueueLength())
	}
	lane.AddVehicle(Vehicle{ID: 1})
	lane.AddVehicle(Vehicle{ID: 2})
	if lane.QueueLength() != 2 {
		t.Errorf("Expected queue length 2, got %d", lane.QueueLength())
	}
	_, _ = lane.ProcessVehicle()
	if lane.QueueLength() != 1 {
		t.Errorf("Expected queue length 1 after dequeue, got %d", lane.QueueLength())
	}
}

func TestLane_AverageWaitTime(t *testing.T) {
	lane, _ := NewLane(North)

	if lane.AverageWaitTime(100) != 0 {
		t.Error("Expected zero average wait for empty lane")
	}

	// Waits at tick 10: 4, 10 and 2.
	lane.AddVehicle(Vehicle{ID: 1, ArrivalTick: 6})
	lane.AddVehicle(Vehicle{ID: 2, ArrivalTick: 0})
	lane.AddVehicle(Vehicle{ID: 3, ArrivalTick: 8})

	want := 16.0 / 3.0
	got := lane.AverageWaitTime(10)
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Expected average wait %f, got %f", want, got)
	}
}

func TestLane_AverageWaitTimeDoesNotConsumeQueue(t *testing.T) {
	lane, _ := NewLane(North)
	lane.AddVehicle(Vehicle{ID: 1, ArrivalTick: 0})
	lane.AddVehicle(Vehicle{ID: 2, ArrivalTick: 1})

	_ = lane.AverageWaitTime(5)
	_ = lane.TotalWaitTime(5)
	_ = lane.HasEmergencyVehicle()

	if lane.QueueLength() != 2 {
		t.Errorf("Expected scans to leave queue untouched, got length %d", lane.QueueLength())
	}
	v, _ := lane.ProcessVehicle()
	if v.ID != 1 {
		t.Errorf("Expected scans to preserve order, head was %d", v.ID)
	}
}

func TestLane_HasEmergencyVehicle(t *testing.T) {
	lane, _ := NewLane(East)

	if lane.HasEmergencyVehicle() {
		t.Error("Expected no emergency in empty lane")
	}
	lane.AddVehicle(Vehicle{ID: 1})
	if lane.HasEmergencyVehicle() {
		t.Error("Expected no emergency among regular vehicles")
	}
	lane.AddVehicle(Vehicle{ID: 2, Emergency: true})
	if !lane.HasEmergencyVehicle() {
		t.Error("Expected emergency vehicle to be detected")
	}
}

func TestLane_SetDensityClamps(t *testing.T) {
	lane, _ := NewLane(South)

	lane.SetDensity(7)
	if lane.Density() != 7 {
		t.Errorf("Expected density 7, got %d", lane.Density())
	}
	lane.SetDensity(-3)
	if lane.Density() != MinDensity {
		t.Errorf("Expected density clamped to %d, got %d", MinDensity, lane.Density())
	}
	lane.SetDensity(42)
	if lane.Density() != MaxDensity {
		t.Errorf("Expected density clamped to %d, got %d", MaxDensity, lane.Density())
	}
}

func TestLane_VehiclesReturnsCopy(t *testing.T) {
	lane, _ := NewLane(West)
	lane.AddVehicle(Vehicle{ID: 1})
	lane.AddVehicle(Vehicle{ID: 2})

	vehicles := lane.Vehicles()
	vehicles[0] = Vehicle{ID: 99}

	v, _ := lane.ProcessVehicle()
	if v.ID != 1 {
		t.Errorf("Expected mutation of copy to not affect lane, head was %d", v.ID)
	}
}
