package junction

// Tick is one logical time-unit of the simulation. All durations in the
// package (green time, yellow time, vehicle waits) are measured in ticks;
// nothing in the core ever sleeps on the wall clock.
type Tick int

// Clock is a monotonic logical clock. The controller advances it through
// the holds of a cycle (yellow phase, pedestrian crossing, end of cycle),
// and a driver may advance it further between cycles to model idle time.
type Clock struct {
	now Tick
}

// NewClock creates a clock starting at tick zero
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current tick
func (c *Clock) Now() Tick {
	return c.now
}

// Advance moves the clock forward by n ticks. Non-positive values are
// ignored; the clock never moves backwards.
func (c *Clock) Advance(n Tick) {
	if n > 0 {
		c.now += n
	}
}
