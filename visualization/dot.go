// Package visualization renders intersection snapshots to Graphviz DOT
// format for debugging and documentation
package visualization

import (
	"fmt"
	"strings"

	"github.com/anggasct/junction"
)

// RenderDOT generates a DOT digraph of the intersection snapshot: one node
// per approach coloured by its light state, with queue length, density and
// any pending pedestrian request in the label. The result is pure text; the
// caller decides where it goes.
func RenderDOT(snap junction.Snapshot) string {
	var builder strings.Builder

	builder.WriteString("digraph intersection {\n")
	builder.WriteString("  rankdir=TB;\n")
	builder.WriteString(fmt.Sprintf("  label=\"cycle %d, tick %d\";\n", snap.Cycle, snap.Now))
	builder.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n\n")

	builder.WriteString("  junction [shape=circle, fillcolor=lightgray, label=\"\"];\n")

	for _, status := range snap.Lanes {
		builder.WriteString(fmt.Sprintf("  %s [fillcolor=%s, label=\"%s\"];\n",
			nodeID(status.Direction), fillColor(status.Light), nodeLabel(status)))
	}

	builder.WriteString("\n")
	for _, status := range snap.Lanes {
		builder.WriteString(fmt.Sprintf("  %s -> junction [color=%s, penwidth=%d];\n",
			nodeID(status.Direction), fillColor(status.Light), edgeWidth(status)))
	}

	builder.WriteString("}\n")
	return builder.String()
}

func nodeID(dir junction.Direction) string {
	return strings.ToLower(dir.String())
}

func nodeLabel(status junction.LaneStatus) string {
	label := fmt.Sprintf("%s\\n%d vehicles, density %d\\navg wait %.1f",
		status.Direction, status.QueueLength, status.Density, status.AverageWait)
	if status.HasEmergency {
		label += "\\nEMERGENCY"
	}
	if status.PedestrianRequested {
		label += "\\nped request"
	}
	return label
}

func fillColor(state junction.LightState) string {
	switch state {
	case junction.Green:
		return "green"
	case junction.Yellow:
		return "yellow"
	default:
		return "red"
	}
}

// edgeWidth scales the approach edge with its queue so congestion is visible
// at a glance
func edgeWidth(status junction.LaneStatus) int {
	width := 1 + status.QueueLength/3
	if width > 5 {
		width = 5
	}
	return width
}
