package sim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/rockfall/chamber"
)

var (
	ErrEmptyMoves  = errors.New("move sequence is empty")
	ErrInvalidMove = errors.New("invalid move")
)

// Move is one jet push applied to the falling rock.
type Move uint8

const (
	PushLeft Move = iota
	PushRight
)

func (m Move) String() string {
	switch m {
	case PushLeft:
		return "<"
	case PushRight:
		return ">"
	default:
		return "?"
	}
}

// Offset is the one-column step the push attempts.
func (m Move) Offset() chamber.Coord {
	if m == PushLeft {
		return chamber.Left
	}
	return chamber.Right
}

// ParseMoves reads a jet pattern made of '<' and '>'. Surrounding whitespace
// is ignored; anything else fails with the offending position.
func ParseMoves(text string) ([]Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMoves
	}

	moves := make([]Move, 0, len(text))
	for i, r := range text {
		switch r {
		case '<':
			moves = append(moves, PushLeft)
		case '>':
			moves = append(moves, PushRight)
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidMove, r, i)
		}
	}
	return moves, nil
}

// FormatMoves is the inverse of ParseMoves.
func FormatMoves(moves []Move) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, m := range moves {
		sb.WriteString(m.String())
	}
	return sb.String()
}
