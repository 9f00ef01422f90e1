package chamber_test

import (
	"fmt"

	"github.com/plus3/rockfall/chamber"
)

// ExampleChamber shows how rocks are placed by anchor and how the chamber
// draws itself. Shapes hang down and to the right of their anchor.
func ExampleChamber() {
	c := chamber.New()
	c.Place(chamber.HorizontalBar, chamber.Coord{X: 2, Y: 1})
	c.Place(chamber.Plus, chamber.Coord{X: 2, Y: 4})

	fmt.Println("height:", c.TowerHeight())
	fmt.Print(c)

	// Output:
	// height: 4
	// |...#...|
	// |..###..|
	// |...#...|
	// |..####.|
	// +-------+
}

// ExampleChamber_Compact rebases the chamber on its highest full row.
func ExampleChamber_Compact() {
	c := chamber.New()
	c.Place(chamber.HorizontalBar, chamber.Coord{X: 0, Y: 1})
	c.Place(chamber.Square, chamber.Coord{X: 4, Y: 2})
	c.Place(chamber.VerticalBar, chamber.Coord{X: 6, Y: 4})

	row := c.FullRowIndex()
	if err := c.Compact(row); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("compacted at row", row)
	fmt.Print(c)

	// Output:
	// compacted at row 1
	// |......#|
	// |......#|
	// |....###|
	// +-------+
}
