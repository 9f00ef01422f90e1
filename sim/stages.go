package sim

import (
	"encoding/binary"

	"github.com/plus3/rockfall/chamber"
	"github.com/rs/zerolog"
)

const (
	// SpawnColumn is the anchor column of every new rock.
	SpawnColumn = 2
	// SpawnGap is the number of empty rows between the tower and a new
	// rock's bottom row.
	SpawnGap = 3
)

// Rock is a shape at a position.
type Rock struct {
	Shape  *chamber.Shape
	Anchor chamber.Coord
}

// World is the state the stages share.
type World struct {
	Chamber *chamber.Chamber
	Moves   []Move
	Catalog chamber.Catalog
	Cursor  Cursor

	Rocks     int64
	Height    int64
	MovesUsed int64

	// Falling is the rock of the current frame. After DropStage it holds
	// the resting position, rebased by CompactStage along with the chamber.
	Falling Rock

	// Compacted is the row the chamber was compacted at during the current
	// frame, 0 if none.
	Compacted   int
	Compactions int64

	Cycle *Cycle

	Log zerolog.Logger
}

// SpawnStage picks the next shape and places it above the tower. Shapes too
// wide for the spawn column are shifted left until they fit the shaft.
type SpawnStage struct{}

func (s *SpawnStage) Execute(w *World) {
	shape := w.Catalog[w.Cursor.NextRock()]
	w.Falling = Rock{
		Shape: shape,
		Anchor: chamber.Coord{
			X: min(SpawnColumn, chamber.Width-shape.Width()),
			Y: w.Chamber.TowerHeight() + SpawnGap + shape.Height(),
		},
	}
}

// DropStage alternates jet pushes and falls until the rock rests, then
// commits it to the chamber.
type DropStage struct{}

func (s *DropStage) Execute(w *World) {
	c := w.Chamber
	rock := w.Falling

	for {
		move := w.Moves[w.Cursor.NextMove()]
		w.MovesUsed++
		if next, ok := push(c, rock, move); ok {
			rock.Anchor = next
		}

		down := rock.Anchor.Add(chamber.Down)
		if down.Y < 0 || !c.CanPlace(rock.Shape, down) {
			break
		}
		rock.Anchor = down
	}

	before := c.TowerHeight()
	c.Place(rock.Shape, rock.Anchor)

	w.Falling = rock
	w.Rocks++
	w.Height += int64(c.TowerHeight() - before)
}

func push(c *chamber.Chamber, rock Rock, move Move) (chamber.Coord, bool) {
	switch move {
	case PushLeft:
		if rock.Anchor.X-1 < 0 {
			return rock.Anchor, false
		}
	case PushRight:
		if rock.Anchor.X+rock.Shape.Width() >= chamber.Width {
			return rock.Anchor, false
		}
	}

	next := rock.Anchor.Add(move.Offset())
	if !c.CanPlace(rock.Shape, next) {
		return rock.Anchor, false
	}
	return next, true
}

// CompactStage drops everything below the highest full row.
type CompactStage struct{}

func (s *CompactStage) Execute(w *World) {
	w.Compacted = 0

	y := w.Chamber.FullRowIndex()
	if y == 0 {
		return
	}
	if err := w.Chamber.Compact(y); err != nil {
		w.Log.Error().Err(err).Int("row", y).Msg("compaction failed")
		return
	}

	w.Compacted = y
	w.Compactions++
	w.Falling.Anchor.Y -= y
	w.Log.Debug().
		Int("row", y).
		Int64("rocks", w.Rocks).
		Int64("height", w.Height).
		Msg("full row compacted")
}

// DetectStage records progress and looks for a repeated state.
type DetectStage struct {
	Detector    *Detector
	Fingerprint Fingerprint

	key []byte
}

func (s *DetectStage) Execute(w *World) {
	s.Detector.Record(w.Rocks, w.Height)
	if w.Cycle != nil || s.Fingerprint == FingerprintNone {
		return
	}

	s.key = binary.AppendUvarint(s.key[:0], uint64(w.Cursor.Move))
	s.key = binary.AppendUvarint(s.key, uint64(w.Cursor.Rock))

	switch s.Fingerprint {
	case FingerprintSurface:
		s.key = w.Chamber.AppendSurface(s.key)
	case FingerprintFullRow:
		if w.Compacted == 0 {
			return
		}
		s.key = w.Chamber.AppendRows(s.key)
	default:
		return
	}

	c, ok := s.Detector.Observe(string(s.key), w.Rocks, w.Height)
	if !ok {
		return
	}

	w.Cycle = &c
	w.Log.Debug().
		Int("firstIndex", c.FirstIndex).
		Int64("firstRocks", c.FirstRocks).
		Int64("rocks", c.Rocks).
		Int64("period", c.Period()).
		Int64("gain", c.Gain()).
		Msg("duplicate snapshot")
}
