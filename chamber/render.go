package chamber

import (
	"bufio"
	"io"
	"strings"
)

const (
	rockCell  = '#'
	emptyCell = '.'
)

// String draws the whole chamber top-down, one |.......| line per row above
// the floor, closed by a +-------+ floor line.
func (c *Chamber) String() string {
	var sb strings.Builder
	_ = c.Render(&sb, len(c.rows)-1)
	return sb.String()
}

// Render writes the top n rows of the chamber followed by the floor line. If
// rows are elided a ~ line marks the gap.
func (c *Chamber) Render(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)

	top := len(c.rows) - 1
	bottom := max(top-n+1, 1)
	for y := top; y >= bottom; y-- {
		bw.WriteByte('|')
		writeRow(bw, c.rows[y])
		bw.WriteString("|\n")
	}
	if bottom > 1 {
		bw.WriteByte('|')
		bw.WriteString(strings.Repeat("~", Width))
		bw.WriteString("|\n")
	}
	bw.WriteByte('+')
	bw.WriteString(strings.Repeat("-", Width))
	bw.WriteString("+\n")

	return bw.Flush()
}

func writeRow(w *bufio.Writer, row uint8) {
	for x := range Width {
		if row&(1<<x) != 0 {
			w.WriteByte(rockCell)
		} else {
			w.WriteByte(emptyCell)
		}
	}
}
