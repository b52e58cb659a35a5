package junction

// Direction identifies one of the four approaches to the intersection.
//
// The set is closed: every per-direction container in this package is a
// fixed-size array indexed by Direction, and any value outside the four
// constants is rejected with a DirectionError rather than silently indexed.
type Direction int

const (
	// North is the first direction in enumeration order
	North Direction = iota
	// East is the second direction in enumeration order
	East
	// South is the third direction in enumeration order
	South
	// West is the fourth direction in enumeration order
	West
)

// NumDirections is the number of approaches to the intersection
const NumDirections = 4

// Directions lists all directions in the fixed enumeration order used for
// lane scanning and tie-breaking
var Directions = [NumDirections]Direction{North, East, South, West}

// IsValid reports whether d is one of the four known directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// String returns the human-readable direction name
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the direction as its name
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}
