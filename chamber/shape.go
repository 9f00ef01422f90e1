package chamber

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrEmptyShape    = errors.New("shape has no cells")
	ErrShapeTooWide  = errors.New("shape is wider than the chamber")
	ErrShapeOffset   = errors.New("shape offsets must be non-negative and start at the origin")
	ErrEmptyCatalog  = errors.New("catalog has no shapes")
	ErrDuplicateName = errors.New("catalog has duplicate shape names")
)

// Shape is an immutable rock formation. Offsets run right and down from the
// anchor, which sits at the shape's top-left corner, so a shape anchored at
// (x, y) occupies rows y down to y-Height()+1.
type Shape struct {
	name    string
	offsets []Coord
	width   int
	height  int
}

// NewShape builds a shape from its offsets. Duplicate offsets collapse into
// one cell; the remaining cells are kept in lexicographic order.
func NewShape(name string, offsets ...Coord) (*Shape, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("shape %q: %w", name, ErrEmptyShape)
	}

	seen := mapset.New[Coord]()
	cells := make([]Coord, 0, len(offsets))
	minX, minY := offsets[0].X, offsets[0].Y
	width, height := 0, 0

	for _, o := range offsets {
		if seen.Has(o) {
			continue
		}
		seen.Put(o)
		cells = append(cells, o)

		minX = min(minX, o.X)
		minY = min(minY, o.Y)
		width = max(width, o.X+1)
		height = max(height, o.Y+1)
	}

	if minX != 0 || minY != 0 {
		return nil, fmt.Errorf("shape %q: %w", name, ErrShapeOffset)
	}
	if width > Width {
		return nil, fmt.Errorf("shape %q is %d wide: %w", name, width, ErrShapeTooWide)
	}

	slices.SortFunc(cells, Coord.Compare)

	return &Shape{
		name:    name,
		offsets: cells,
		width:   width,
		height:  height,
	}, nil
}

// MustShape is like NewShape but panics on invalid offsets. It is meant for
// package-level shape tables.
func MustShape(name string, offsets ...Coord) *Shape {
	s, err := NewShape(name, offsets...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Shape) Name() string { return s.name }

// Width is the largest column offset plus one.
func (s *Shape) Width() int { return s.width }

// Height is the largest row offset plus one.
func (s *Shape) Height() int { return s.height }

// Offsets returns a copy of the relative cells.
func (s *Shape) Offsets() []Coord {
	return slices.Clone(s.offsets)
}

// Cells returns the absolute cells the shape covers when anchored at anchor.
func (s *Shape) Cells(anchor Coord) []Coord {
	cells := make([]Coord, len(s.offsets))
	for i, o := range s.offsets {
		cells[i] = Coord{X: anchor.X + o.X, Y: anchor.Y - o.Y}
	}
	return cells
}

// rowMask returns the bits the shape occupies in its row offset dy when its
// anchor sits in column x. ok is false if a cell falls outside the shaft.
func (s *Shape) rowMask(dy, x int) (mask uint8, ok bool) {
	for _, o := range s.offsets {
		if o.Y != dy {
			continue
		}
		col := x + o.X
		if col < 0 || col >= Width {
			return 0, false
		}
		mask |= 1 << col
	}
	return mask, true
}

func (s *Shape) String() string { return s.name }

// Catalog is the ordered, cyclic sequence of shapes dropped into the chamber.
type Catalog []*Shape

// NewCatalog validates the shape sequence.
func NewCatalog(shapes ...*Shape) (Catalog, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyCatalog
	}

	names := mapset.New[string]()
	for i, s := range shapes {
		if s == nil {
			return nil, fmt.Errorf("shape %d: %w", i, ErrEmptyShape)
		}
		if names.Has(s.name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.name)
		}
		names.Put(s.name)
	}

	return Catalog(slices.Clone(shapes)), nil
}

var (
	HorizontalBar = MustShape("-",
		Coord{0, 0}, Coord{1, 0}, Coord{2, 0}, Coord{3, 0})
	Plus = MustShape("+",
		Coord{1, 0},
		Coord{0, 1}, Coord{1, 1}, Coord{2, 1},
		Coord{1, 2})
	Corner = MustShape("J",
		Coord{2, 0},
		Coord{2, 1},
		Coord{0, 2}, Coord{1, 2}, Coord{2, 2})
	VerticalBar = MustShape("|",
		Coord{0, 0}, Coord{0, 1}, Coord{0, 2}, Coord{0, 3})
	Square = MustShape("#",
		Coord{0, 0}, Coord{1, 0},
		Coord{0, 1}, Coord{1, 1})
)

// StandardCatalog returns the five rocks in their falling order.
func StandardCatalog() Catalog {
	return Catalog{HorizontalBar, Plus, Corner, VerticalBar, Square}
}
