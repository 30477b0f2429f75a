package trips

// Pair is one origin/destination alternative for a commute direction.
type Pair struct {
	Origin      string
	Destination string
}

// DirectionTable maps a logical direction to its ordered list of station
// pairs. The order is fixed and determines concatenation order before the
// final sort, which keeps ties deterministic. New directions are additive
// configuration, not code branches.
type DirectionTable map[string][]Pair

// DefaultDirections returns the commute configuration: Den Haag stations
// toward Amsterdam for "work", the reverse for "home".
func DefaultDirections() DirectionTable {
	return DirectionTable{
		"work": {
			{Origin: "laa", Destination: "asdz"},
			{Origin: "gvc", Destination: "asdz"},
			{Origin: "laa", Destination: "asd"},
			{Origin: "gvc", Destination: "asd"},
		},
		"home": {
			{Origin: "asdz", Destination: "gvc"},
			{Origin: "asdz", Destination: "laa"},
			{Origin: "asd", Destination: "gvc"},
			{Origin: "asd", Destination: "laa"},
		},
	}
}

// Pairs returns the station pairs for a direction. Unknown directions are
// not an error: the aggregator serves the bundled sample dataset for them.
func (t DirectionTable) Pairs(direction string) ([]Pair, bool) {
	pairs, ok := t[direction]
	return pairs, ok
}
