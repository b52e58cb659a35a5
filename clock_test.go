package junction

import "testing"

func TestClock_StartsAtZero(t *testing.T) {
	clock := NewClock()

	if clock.Now() != 0 {
		t.Errorf("Expected a new clock at tick 0, got %d", clock.Now())
	}
}

func TestClock_AdvanceAccumulates(t *testing.T) {
	clock := NewClock()

	clock.Advance(3)
	clock.Advance(7)

	if clock.Now() != 10 {
		t.Errorf("Expected tick 10 after advancing 3 and 7, got %d", clock.Now())
	}
}

func TestClock_NeverMovesBackwards(t *testing.T) {
	clock := NewClock()
	clock.Advance(5)

	clock.Advance(0)
	clock.Advance(-4)

	if clock.Now() != 5 {
		t.Errorf("Expected non-positive advances to be ignored, got tick %d", clock.Now())
	}
}

func TestVehicle_WaitingTime(t *testing.T) {
	vehicle := Vehicle{ID: 1, ArrivalTick: 4}

	if got := vehicle.WaitingTime(10); got != 6 {
		t.Errorf("Expected a wait of 6 ticks, got %d", got)
	}
	if got := vehicle.WaitingTime(4); got != 0 {
		t.Errorf("Expected a zero wait at the arrival tick, got %d", got)
	}
	if got := vehicle.WaitingTime(2); got != 0 {
		t.Errorf("Expected waiting time to never be negative, got %d", got)
	}
}
