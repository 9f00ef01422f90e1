// Package chamber models the narrow vertical shaft rocks fall into: the rock
// shapes, the occupancy grid of settled cells and the queries the drop
// simulation needs (collision, placement, full rows, compaction).
package chamber

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"slices"
)

const (
	// Width is the number of columns in the shaft.
	Width = 7
	// FullMask has one bit set per column.
	FullMask uint8 = 1<<Width - 1
)

var ErrRowNotFull = errors.New("row is not full")

// Chamber is the occupancy grid. Each row is a bitmask with bit x set when
// column x is occupied. Row 0 is the floor and is always full; the top row
// is never empty.
type Chamber struct {
	rows        []uint8
	highestFull int
}

// New returns a chamber holding only the floor row.
func New() *Chamber {
	return &Chamber{rows: []uint8{FullMask}}
}

// FromRows builds a chamber from bottom-up row masks. Row 0 is replaced by a
// full floor and trailing empty rows are dropped.
func FromRows(rows ...uint8) *Chamber {
	c := &Chamber{rows: make([]uint8, 0, max(len(rows), 1))}
	c.rows = append(c.rows, FullMask)
	for i := 1; i < len(rows); i++ {
		c.rows = append(c.rows, rows[i]&FullMask)
		if rows[i]&FullMask == FullMask {
			c.highestFull = i
		}
	}
	c.trim()
	return c
}

// TowerHeight is the highest occupied row.
func (c *Chamber) TowerHeight() int {
	return len(c.rows) - 1
}

// Occupied reports whether the cell is filled. Cells below the floor and
// outside the side walls count as filled.
func (c *Chamber) Occupied(p Coord) bool {
	if p.X < 0 || p.X >= Width || p.Y < 0 {
		return true
	}
	if p.Y >= len(c.rows) {
		return false
	}
	return c.rows[p.Y]&(1<<p.X) != 0
}

// CanPlace reports whether every cell of the shape anchored at anchor is
// free.
func (c *Chamber) CanPlace(s *Shape, anchor Coord) bool {
	for dy := range s.height {
		y := anchor.Y - dy
		if y < 0 {
			return false
		}
		mask, ok := s.rowMask(dy, anchor.X)
		if !ok {
			return false
		}
		if y < len(c.rows) && c.rows[y]&mask != 0 {
			return false
		}
	}
	return true
}

// Place marks the shape's cells as occupied. Placing the same shape twice
// at the same anchor is a no-op the second time. Cells outside the shaft
// are ignored.
func (c *Chamber) Place(s *Shape, anchor Coord) {
	for _, p := range s.Cells(anchor) {
		if p.X < 0 || p.X >= Width || p.Y < 0 {
			continue
		}
		for p.Y >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[p.Y] |= 1 << p.X
		if c.rows[p.Y] == FullMask && p.Y > c.highestFull {
			c.highestFull = p.Y
		}
	}
	c.trim()
}

// FullRowIndex returns the highest full row above the floor, or 0 if there
// is none.
func (c *Chamber) FullRowIndex() int {
	return c.highestFull
}

// Compact drops every row below y and rebases the rest so that row y becomes
// the new floor. Compact(0) does nothing.
func (c *Chamber) Compact(y int) error {
	if y == 0 {
		return nil
	}
	if y < 0 || y >= len(c.rows) || c.rows[y] != FullMask {
		return fmt.Errorf("compact at row %d: %w", y, ErrRowNotFull)
	}

	c.rows = slices.Clone(c.rows[y:])
	if c.highestFull > y {
		c.highestFull -= y
	} else {
		c.highestFull = 0
	}
	return nil
}

// Rows returns a copy of the row masks, floor first.
func (c *Chamber) Rows() []uint8 {
	return slices.Clone(c.rows)
}

// AppendRows appends the row masks to dst.
func (c *Chamber) AppendRows(dst []byte) []byte {
	return append(dst, c.rows...)
}

// Len is the number of occupied cells, floor included.
func (c *Chamber) Len() int {
	n := 0
	for _, r := range c.rows {
		n += bits.OnesCount8(r)
	}
	return n
}

// Cells yields every occupied cell ordered by column, then by row.
func (c *Chamber) Cells() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for x := range Width {
			for y, r := range c.rows {
				if r&(1<<x) == 0 {
					continue
				}
				if !yield(Coord{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Equal reports whether both chambers hold the same cells relative to their
// floors.
func (c *Chamber) Equal(o *Chamber) bool {
	return slices.Equal(c.rows, o.rows)
}

func (c *Chamber) Clone() *Chamber {
	return &Chamber{
		rows:        slices.Clone(c.rows),
		highestFull: c.highestFull,
	}
}

// Surface returns the cells a falling rock can still reach. Rocks only move
// left, right and down, so the region is found row by row starting from the
// open row above the tower. Entry d holds the reachable columns of row
// TowerHeight()+1-d; the slice ends at the first row nothing reaches.
func (c *Chamber) Surface() []uint8 {
	return c.AppendSurface(nil)
}

// AppendSurface appends the surface profile to dst.
func (c *Chamber) AppendSurface(dst []byte) []byte {
	reach := FullMask
	dst = append(dst, reach)

	for y := len(c.rows) - 1; y >= 0; y-- {
		free := ^c.rows[y] & FullMask
		row := reach & free
		if row == 0 {
			break
		}
		for {
			spread := (row | row<<1 | row>>1) & free
			if spread == row {
				break
			}
			row = spread
		}
		dst = append(dst, row)
		reach = row
	}
	return dst
}

func (c *Chamber) trim() {
	for len(c.rows) > 1 && c.rows[len(c.rows)-1] == 0 {
		c.rows = c.rows[:len(c.rows)-1]
	}
}
