package visualization

import (
	"strings"
	"testing"

	"github.com/anggasct/junction"
)

func buildSnapshot(t *testing.T) junction.Snapshot {
	t.Helper()
	c, err := junction.NewController(nil)
	if err != nil {
		t.Fatalf("Expected no error creating controller, got: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := c.AddVehicle(junction.North, false); err != nil {
			t.Fatalf("Expected no error adding vehicle, got: %v", err)
		}
	}
	if _, err := c.AddVehicle(junction.East, true); err != nil {
		t.Fatalf("Expected no error adding vehicle, got: %v", err)
	}
	if err := c.RequestCrossing(junction.South); err != nil {
		t.Fatalf("Expected no error requesting crossing, got: %v", err)
	}
	if err := c.Signal().ChangeLight(junction.North); err != nil {
		t.Fatalf("Expected no error changing light, got: %v", err)
	}
	return c.Snapshot()
}

func TestRenderDOT_StructureAndNodes(t *testing.T) {
	dot := RenderDOT(buildSnapshot(t))

	if !strings.HasPrefix(dot, "digraph intersection {") {
		t.Errorf("Expected a digraph, got %q", dot[:30])
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("Expected the graph to be closed")
	}
	for _, name := range []string{"north", "east", "south", "west", "junction"} {
		if !strings.Contains(dot, name+" ") {
			t.Errorf("Expected node %q in output", name)
		}
	}
	for _, name := range []string{"north", "east", "south", "west"} {
		if !strings.Contains(dot, name+" -> junction") {
			t.Errorf("Expected edge from %q to junction", name)
		}
	}
}

func TestRenderDOT_ReflectsLightStates(t *testing.T) {
	dot := RenderDOT(buildSnapshot(t))

	if !strings.Contains(dot, "north [fillcolor=green") {
		t.Error("Expected the green direction coloured green")
	}
	if !strings.Contains(dot, "east [fillcolor=red") {
		t.Error("Expected red directions coloured red")
	}
}

func TestRenderDOT_AnnotatesLaneState(t *testing.T) {
	dot := RenderDOT(buildSnapshot(t))

	if !strings.Contains(dot, "4 vehicles") {
		t.Error("Expected the queue length in the label")
	}
	if !strings.Contains(dot, "EMERGENCY") {
		t.Error("Expected the emergency annotation")
	}
	if !strings.Contains(dot, "ped request") {
		t.Error("Expected the pedestrian request annotation")
	}
}
