package sim_test

import (
	"testing"

	"github.com/plus3/rockfall/chamber"
	"github.com/plus3/rockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves(t *testing.T) {
	moves, err := sim.ParseMoves("  ><<>\n")
	require.NoError(t, err)

	assert.Equal(t, []sim.Move{sim.PushRight, sim.PushLeft, sim.PushLeft, sim.PushRight}, moves)
	assert.Equal(t, "><<>", sim.FormatMoves(moves))
}

func TestParseMovesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"empty", "", sim.ErrEmptyMoves},
		{"whitespace only", " \n\t", sim.ErrEmptyMoves},
		{"stray letter", "<<x>", sim.ErrInvalidMove},
		{"inner newline", "<<\n>>", sim.ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.ParseMoves(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseMovesReportsOffset(t *testing.T) {
	_, err := sim.ParseMoves("<<x>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'x' at offset 2")
}

func TestMoveOffset(t *testing.T) {
	assert.Equal(t, chamber.Left, sim.PushLeft.Offset())
	assert.Equal(t, chamber.Right, sim.PushRight.Offset())
	assert.Equal(t, "<", sim.PushLeft.String())
	assert.Equal(t, ">", sim.PushRight.String())
	assert.Equal(t, "?", sim.Move(7).String())
}
