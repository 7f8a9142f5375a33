package game

// Score returns the disc differential, Black minus White. The same metric
// serves as the search leaf evaluation and as the win condition: positive
// means Black leads, negative White, zero a tie. Keeping both roles on one
// function is intentional; a smarter heuristic would have to split them.
func Score(b Board) int {
	return b.Count(Black) - b.Count(White)
}

// Winner reports which side holds more discs, or Empty on a tie. It is only
// meaningful once LegalMoves returns an empty set for both sides.
func Winner(b Board) Side {
	switch d := Score(b); {
	case d > 0:
		return Black
	case d < 0:
		return White
	}
	return Empty
}
