package engine

// Stats counts what happened on a board since the engine was created.
type Stats struct {
	Added      int // Boxes added
	Closed     int // Boxes closed
	Moves      int // Completed move gestures
	Resizes    int // Completed resize gestures
	Snaps      int // Magnetic alignments that moved a box
	Rescales   int // Applied container rescales
	Collisions int // Gestures that ended with the box overlapping another
}

// Gestures returns the number of completed pointer gestures.
func (s Stats) Gestures() int {
	return s.Moves + s.Resizes
}
