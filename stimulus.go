package junction

import "math/rand"

// Stimulus is one external event applied to the intersection at the start of
// a cycle. The set of implementations is closed: ArrivalStimulus,
// DensityStimulus and CrossingStimulus.
type Stimulus interface {
	stimulus()
}

// ArrivalStimulus adds one vehicle to a lane
type ArrivalStimulus struct {
	Direction Direction
	Emergency bool
}

func (ArrivalStimulus) stimulus() {}

// DensityStimulus sets a lane's traffic density
type DensityStimulus struct {
	Direction Direction
	Density   int
}

func (DensityStimulus) stimulus() {}

// CrossingStimulus requests a pedestrian crossing for a direction
type CrossingStimulus struct {
	Direction Direction
}

func (CrossingStimulus) stimulus() {}

// Generator produces the stimuli for one cycle. The controller calls it
// exactly once per cycle, before any decision is made, and applies the
// returned stimuli atomically. Implementations must not mutate the
// controller; the snapshot is their only view of its state.
type Generator interface {
	Stimuli(snap Snapshot) []Stimulus
}

// RandomGenerator produces randomised traffic following the reference
// behaviour: occasional density drift, arrivals more likely on dense lanes,
// rare emergency vehicles, and sporadic pedestrian requests. It owns a
// seeded rand.Rand, so a fixed seed reproduces the exact stimulus sequence.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a generator seeded with the given value
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Stimuli implements the Generator interface
func (g *RandomGenerator) Stimuli(snap Snapshot) []Stimulus {
	stimuli := make([]Stimulus, 0)

	for _, dir := range Directions {
		density := snap.Lanes[dir].Density

		// Rare density drift; arrivals below use the drifted value.
		if g.rng.Intn(21) == 0 {
			density = g.rng.Intn(MaxDensity + 1)
			stimuli = append(stimuli, DensityStimulus{Direction: dir, Density: density})
		}

		// Denser lanes attract more arrivals.
		if g.rng.Intn(MaxDensity+1) >= MaxDensity-density {
			emergency := g.rng.Intn(21) == 0
			stimuli = append(stimuli, ArrivalStimulus{Direction: dir, Emergency: emergency})
		}
	}

	for _, dir := range Directions {
		if g.rng.Intn(16) == 0 {
			stimuli = append(stimuli, CrossingStimulus{Direction: dir})
		}
	}

	return stimuli
}

// ScriptedGenerator replays a fixed per-cycle script of stimuli. Once the
// script is exhausted it produces nothing. Useful for tests and for
// reproducing recorded traffic.
type ScriptedGenerator struct {
	script [][]Stimulus
	next   int
}

// NewScriptedGenerator creates a generator that yields script[i] on the
// i-th call
func NewScriptedGenerator(script [][]Stimulus) *ScriptedGenerator {
	return &ScriptedGenerator{script: script}
}

// Stimuli implements the Generator interface
func (g *ScriptedGenerator) Stimuli(snap Snapshot) []Stimulus {
	if g.next >= len(g.script) {
		return nil
	}
	batch := g.script[g.next]
	g.next++
	return batch
}
