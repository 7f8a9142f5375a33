package game

import "fmt"

// Location is a board coordinate with Row and Col in [0, BoardSize).
type Location struct {
	Row, Col int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Move is either a disc placement at Loc or a forced pass. Moves are plain
// comparable values so they can be used as map keys and compared in tests.
type Move struct {
	Loc  Location
	Pass bool
}

// PassMove is the forced no-placement move, legal only when the side to move
// has no capturing placement while the opponent still does.
var PassMove = Move{Pass: true}

// Place returns a placement move at (row, col).
func Place(row, col int) Move {
	return Move{Loc: Location{Row: row, Col: col}}
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return m.Loc.String()
}
