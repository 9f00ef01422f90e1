package chamber_test

import (
	"testing"

	"github.com/plus3/rockfall/chamber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordArithmetic(t *testing.T) {
	a := chamber.Coord{X: 2, Y: 5}

	assert.Equal(t, chamber.Coord{X: 1, Y: 5}, a.Add(chamber.Left))
	assert.Equal(t, chamber.Coord{X: 3, Y: 5}, a.Add(chamber.Right))
	assert.Equal(t, chamber.Coord{X: 2, Y: 4}, a.Add(chamber.Down))
	assert.Equal(t, a, a.Add(chamber.Right).Sub(chamber.Right))

	assert.Equal(t, -1, chamber.Coord{X: 1, Y: 9}.Compare(chamber.Coord{X: 2, Y: 0}))
	assert.Equal(t, 1, chamber.Coord{X: 2, Y: 1}.Compare(chamber.Coord{X: 2, Y: 0}))
	assert.Equal(t, 0, a.Compare(a))
}

func TestStandardCatalog(t *testing.T) {
	catalog := chamber.StandardCatalog()
	require.Len(t, catalog, 5)

	tests := []struct {
		name   string
		width  int
		height int
		cells  int
	}{
		{"-", 4, 1, 4},
		{"+", 3, 3, 5},
		{"J", 3, 3, 5},
		{"|", 1, 4, 4},
		{"#", 2, 2, 4},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := catalog[i]
			assert.Equal(t, tt.name, shape.Name())
			assert.Equal(t, tt.width, shape.Width())
			assert.Equal(t, tt.height, shape.Height())
			assert.Len(t, shape.Offsets(), tt.cells)
		})
	}
}

func TestShapeCellsHangBelowAnchor(t *testing.T) {
	cells := chamber.Corner.Cells(chamber.Coord{X: 2, Y: 7})

	assert.ElementsMatch(t, []chamber.Coord{
		{X: 4, Y: 7},
		{X: 4, Y: 6},
		{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5},
	}, cells)
}

func TestNewShape(t *testing.T) {
	t.Run("duplicates collapse", func(t *testing.T) {
		s, err := chamber.NewShape("dot", chamber.Coord{}, chamber.Coord{}, chamber.Coord{X: 1})
		require.NoError(t, err)
		assert.Len(t, s.Offsets(), 2)
		assert.Equal(t, 2, s.Width())
		assert.Equal(t, 1, s.Height())
	})

	t.Run("offsets are copied", func(t *testing.T) {
		offsets := chamber.Square.Offsets()
		offsets[0] = chamber.Coord{X: 5, Y: 5}
		assert.Equal(t, chamber.Coord{}, chamber.Square.Offsets()[0])
	})

	errorTests := []struct {
		name    string
		offsets []chamber.Coord
		err     error
	}{
		{"empty", nil, chamber.ErrEmptyShape},
		{"not at origin", []chamber.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}}, chamber.ErrShapeOffset},
		{"negative", []chamber.Coord{{X: -1, Y: 0}, {X: 0, Y: 0}}, chamber.ErrShapeOffset},
		{"too wide", []chamber.Coord{{X: 0}, {X: 7}}, chamber.ErrShapeTooWide},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chamber.NewShape(tt.name, tt.offsets...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMustShapePanics(t *testing.T) {
	assert.Panics(t, func() {
		chamber.MustShape("void")
	})
}

func TestNewCatalog(t *testing.T) {
	_, err := chamber.NewCatalog()
	assert.ErrorIs(t, err, chamber.ErrEmptyCatalog)

	_, err = chamber.NewCatalog(chamber.Square, chamber.Square)
	assert.ErrorIs(t, err, chamber.ErrDuplicateName)

	_, err = chamber.NewCatalog(chamber.Square, nil)
	assert.ErrorIs(t, err, chamber.ErrEmptyShape)

	catalog, err := chamber.NewCatalog(chamber.VerticalBar, chamber.Square)
	require.NoError(t, err)
	assert.Equal(t, chamber.Catalog{chamber.VerticalBar, chamber.Square}, catalog)
}

func TestFullWidthShapeOnlyFitsAtColumnZero(t *testing.T) {
	wall := chamber.MustShape("=",
		chamber.Coord{X: 0}, chamber.Coord{X: 1}, chamber.Coord{X: 2}, chamber.Coord{X: 3},
		chamber.Coord{X: 4}, chamber.Coord{X: 5}, chamber.Coord{X: 6})
	c := chamber.New()

	assert.Equal(t, chamber.Width, wall.Width())
	assert.True(t, c.CanPlace(wall, chamber.Coord{X: 0, Y: 4}))
	assert.False(t, c.CanPlace(wall, chamber.Coord{X: 1, Y: 4}))
	assert.False(t, c.CanPlace(wall, chamber.Coord{X: -1, Y: 4}))
}
