package game

import (
	"errors"
	"fmt"

	"othello/utils"
)

var (
	// ErrIllegalMove reports a move outside the current legal set.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver reports an attempt to move when neither side can.
	ErrGameOver = errors.New("game over")
)

// directions are the 8 compass offsets used for ray-casting captures.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// scanRay walks outward from loc in direction (dr, dc) and returns the
// bracketed run of opposing discs: one or more of the opponent's discs
// followed immediately by one of side's discs. It returns nil when the ray
// leaves the board or meets an empty square first; partial runs are never
// captured. This one routine backs both legality testing and flipping.
func (b Board) scanRay(side Side, loc Location, dr, dc int) []Location {
	var run []Location
	r, c := loc.Row+dr, loc.Col+dc
	for r >= 0 && r < BoardSize && c >= 0 && c < BoardSize {
		switch b.cells[r][c] {
		case Empty:
			return nil
		case side:
			return run
		default:
			run = append(run, Location{Row: r, Col: c})
		}
		r, c = r+dr, c+dc
	}
	return nil
}

// flips returns the locations of every opposing disc that placing side at
// loc would capture, across all 8 directions. An empty result means the
// placement captures nothing and is therefore not legal.
func (b Board) flips(side Side, loc Location) []Location {
	var captured []Location
	for _, d := range directions {
		captured = append(captured, b.scanRay(side, loc, d[0], d[1])...)
	}
	return captured
}

// captures reports whether placing side at loc captures at least one run,
// without keeping the flip list.
func (b Board) captures(side Side, loc Location) bool {
	for _, d := range directions {
		if len(b.scanRay(side, loc, d[0], d[1])) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns side's capturing placements in row-major order. When
// side has none the result distinguishes two cases the caller must keep
// apart: {PassMove} when the opponent still has a capture somewhere, and an
// empty set when neither side does, which means the game is over.
func (b Board) LegalMoves(side Side) []Move {
	var moves []Move
	opp := side.Opposite()
	gameOver := true
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.cells[r][c] != Empty {
				continue
			}
			here := Location{Row: r, Col: c}
			if b.captures(side, here) {
				gameOver = false
				moves = append(moves, Move{Loc: here})
			} else if gameOver && b.captures(opp, here) {
				// Probe opponent mobility only until the game is known
				// to continue.
				gameOver = false
			}
		}
	}
	if len(moves) > 0 || gameOver {
		return moves
	}
	return []Move{PassMove}
}

// Apply plays move for side and returns the resulting board. A pass returns
// the board unchanged. The move is assumed to be a member of
// LegalMoves(side); Apply does not re-validate on the search hot path. Use
// ApplyChecked where moves arrive from outside the searcher.
func (b Board) Apply(side Side, move Move) Board {
	if move.Pass {
		return b
	}
	next := b
	next.cells[move.Loc.Row][move.Loc.Col] = side
	for _, loc := range b.flips(side, move.Loc) {
		next.cells[loc.Row][loc.Col] = side
	}
	return next
}

// ApplyChecked validates move against the current legal set before applying
// it, hardening the boundary where moves come from agents or user input.
func (b Board) ApplyChecked(side Side, move Move) (Board, error) {
	legal := b.LegalMoves(side)
	if len(legal) == 0 {
		return b, fmt.Errorf("apply %s for %s: %w", move, side, ErrGameOver)
	}
	if utils.FindIndex(legal, move) < 0 {
		return b, fmt.Errorf("apply %s for %s: %w", move, side, ErrIllegalMove)
	}
	return b.Apply(side, move), nil
}
