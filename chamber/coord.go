package chamber

import "cmp"

// Coord is a cell position inside the chamber. X is the column, Y the row
// counted upwards from the floor.
type Coord struct {
	X, Y int
}

// Add returns the coordinate translated by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the coordinate translated by -o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Compare orders coordinates by column, then by row.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

var (
	Left  = Coord{X: -1}
	Right = Coord{X: 1}
	Down  = Coord{Y: -1}
)
