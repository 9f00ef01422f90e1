package sim

import "fmt"

// Phase is the position inside the cyclic move and rock sequences.
type Phase struct {
	Move int
	Rock int
}

func (p Phase) String() string {
	return fmt.Sprintf("move %d, rock %d", p.Move, p.Rock)
}

// Cursor walks both sequences forever, wrapping at their lengths.
type Cursor struct {
	Phase
	moves int
	rocks int
}

func newCursor(moves, rocks int) Cursor {
	return Cursor{moves: moves, rocks: rocks}
}

// NextMove returns the current move index and advances by one.
func (c *Cursor) NextMove() int {
	i := c.Move
	c.Move = (c.Move + 1) % c.moves
	return i
}

// NextRock returns the current rock index and advances by one.
func (c *Cursor) NextRock() int {
	i := c.Rock
	c.Rock = (c.Rock + 1) % c.rocks
	return i
}
