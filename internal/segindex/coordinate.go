package segindex

// Coordinate identifies one position in a container: a segment position
// (index into the header sequence, with Pos == index.Len() meaning the
// sentinel) plus an intra-segment offset (an index into that header's
// area, with First() <= Offset <= Last()).
//
// A Coordinate is a value type and a non-owning cursor: after a planner
// call, only the coordinates it returns are guaranteed valid. Any mutation
// that moves the element a Coordinate pointed at invalidates it.
type Coordinate struct {
	Pos    int
	Offset int
}

// Before reports whether a is strictly before b: Coordinates compare first
// by segment position, then by intra-segment offset.
func (a Coordinate) Before(b Coordinate) bool {
	if a.Pos != b.Pos {
		return a.Pos < b.Pos
	}
	return a.Offset < b.Offset
}

// Equal reports whether a and b address the same position.
func (a Coordinate) Equal(b Coordinate) bool {
	return a.Pos == b.Pos && a.Offset == b.Offset
}
