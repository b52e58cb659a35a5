package junction

import "testing"

func TestPedestrianSignal_Initial(t *testing.T) {
	ped := NewPedestrianSignal()

	if ped.State() != DontWalk {
		t.Errorf("Expected initial state DontWalk, got %s", ped.State())
	}
	if ped.IsRequested() {
		t.Error("Expected no pending request initially")
	}
}

func TestPedestrianSignal_RequestIsIdempotent(t *testing.T) {
	ped := NewPedestrianSignal()

	ped.RequestCrossing()
	ped.RequestCrossing()

	if !ped.IsRequested() {
		t.Error("Expected request to be pending")
	}
	if ped.State() != DontWalk {
		t.Errorf("Expected state to stay DontWalk while pending, got %s", ped.State())
	}
}

func TestPedestrianSignal_GrantClearsRequest(t *testing.T) {
	ped := NewPedestrianSignal()

	ped.RequestCrossing()
	ped.GrantCrossing()

	if ped.State() != Walk {
		t.Errorf("Expected state Walk after grant, got %s", ped.State())
	}
	if ped.IsRequested() {
		t.Error("Expected grant to clear the pending request")
	}
}

func TestPedestrianSignal_EndCrossing(t *testing.T) {
	ped := NewPedestrianSignal()

	ped.RequestCrossing()
	ped.GrantCrossing()
	ped.EndCrossing()

	if ped.State() != DontWalk {
		t.Errorf("Expected state DontWalk after crossing ends, got %s", ped.State())
	}
	if ped.IsRequested() {
		t.Error("Expected no pending request after the window")
	}
}
