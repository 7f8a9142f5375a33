package game

import (
	"fmt"
	"strings"
)

// BoardSize is the edge length of the square board.
const BoardSize = 8

// Board is an immutable 8x8 grid of squares. It is a plain value type:
// assignment copies the whole grid, and every operation that changes the
// position returns a new Board, never mutating its receiver.
type Board struct {
	cells [BoardSize][BoardSize]Side
}

// InitialPosition returns the standard starting layout: the center 2x2
// block holds White at (3,3) and (4,4) and Black at (3,4) and (4,3), every
// other square empty.
func InitialPosition() Board {
	var b Board
	mid := BoardSize / 2
	b.cells[mid-1][mid-1], b.cells[mid][mid] = White, White
	b.cells[mid-1][mid], b.cells[mid][mid-1] = Black, Black
	return b
}

// Cell returns the content of the square at loc. Coordinates outside
// [0, BoardSize) panic; callers are expected to stay on the board.
func (b Board) Cell(loc Location) Side {
	return b.cells[loc.Row][loc.Col]
}

// Count returns the number of squares holding s.
func (b Board) Count(s Side) int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.cells[r][c] == s {
				n++
			}
		}
	}
	return n
}

// Empties returns the number of unoccupied squares.
func (b Board) Empties() int {
	return b.Count(Empty)
}

// ParseBoard builds a board from 8 rows of 8 squares each, written with the
// same characters String renders: 'X' for Black, 'O' for White, '.' for an
// empty square. It is the inverse of String minus the index brackets, and
// exists for tests and position setup.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != BoardSize {
		return b, fmt.Errorf("parse board: want %d rows, got %d", BoardSize, len(rows))
	}
	for r, row := range rows {
		if len(row) != BoardSize {
			return b, fmt.Errorf("parse board: row %d: want %d squares, got %d", r, BoardSize, len(row))
		}
		for c := 0; c < BoardSize; c++ {
			switch row[c] {
			case 'X':
				b.cells[r][c] = Black
			case 'O':
				b.cells[r][c] = White
			case '.':
			default:
				return b, fmt.Errorf("parse board: unknown square %q at (%d,%d)", row[c], r, c)
			}
		}
	}
	return b, nil
}

// String renders the board row by row for console play and debugging,
// bracketed by column indices, with the row index on both ends of each row.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(" 01234567\n")
	for r := 0; r < BoardSize; r++ {
		sb.WriteByte('0' + byte(r))
		for c := 0; c < BoardSize; c++ {
			switch b.cells[r][c] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('0' + byte(r))
		sb.WriteByte('\n')
	}
	sb.WriteString(" 01234567\n")
	return sb.String()
}
