package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLegalMovesOpening(t *testing.T) {
	b := InitialPosition()

	t.Run("black has the four standard opening moves", func(t *testing.T) {
		want := []Move{Place(2, 3), Place(3, 2), Place(4, 5), Place(5, 4)}
		require.Equal(t, want, b.LegalMoves(Black), "moves should come out in row-major order")
	})

	t.Run("white has the mirrored opening moves", func(t *testing.T) {
		want := []Move{Place(2, 4), Place(3, 5), Place(4, 2), Place(5, 3)}
		require.Equal(t, want, b.LegalMoves(White))
	})
}

func TestLegalMovesForcedPass(t *testing.T) {
	// White at (0,0) and Black at (0,1): Black cannot bracket anything,
	// White captures at (0,2).
	b := parseBoard(t,
		"OX......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	require.Equal(t, []Move{PassMove}, b.LegalMoves(Black),
		"a side without captures must pass while the opponent can still move")
	require.Equal(t, []Move{Place(0, 2)}, b.LegalMoves(White))
}

func TestLegalMovesGameOver(t *testing.T) {
	t.Run("full board", func(t *testing.T) {
		b := fullBoard33to31(t)
		require.Empty(t, b.LegalMoves(Black))
		require.Empty(t, b.LegalMoves(White))
	})

	t.Run("empties but no captures for either side", func(t *testing.T) {
		// A lone disc brackets nothing for anyone.
		b := parseBoard(t,
			"X.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		require.Empty(t, b.LegalMoves(Black), "no captures anywhere means game over, not pass")
		require.Empty(t, b.LegalMoves(White))
	})
}

func TestApplyPassIsIdentity(t *testing.T) {
	b := parseBoard(t,
		"OX......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	require.Equal(t, b, b.Apply(Black, PassMove))
}

func TestApplyFlipsBracketedRuns(t *testing.T) {
	t.Run("single flip from the opening", func(t *testing.T) {
		b := InitialPosition().Apply(Black, Place(2, 3))

		want := parseBoard(t,
			"........",
			"........",
			"...X....",
			"...XX...",
			"...XO...",
			"........",
			"........",
			"........",
		)
		require.Equal(t, want, b)
	})

	t.Run("multiple directions flip at once", func(t *testing.T) {
		// Placing Black at (2,2) brackets (2,1) horizontally, (1,2)
		// vertically, and (1,1) diagonally.
		b := parseBoard(t,
			"X.X.....",
			"XOO.....",
			"XO..X...",
			"..X.....",
			"........",
			"........",
			"........",
			"........",
		)

		got := b.Apply(Black, Place(2, 2))

		want := parseBoard(t,
			"X.X.....",
			"XXX.....",
			"XXX.X...",
			"..X.....",
			"........",
			"........",
			"........",
			"........",
		)
		require.Equal(t, want, got)
	})

	t.Run("partial runs are never flipped", func(t *testing.T) {
		// The eastward run off (0,0) never meets a Black disc before the
		// edge, so placing at (0,0) must be illegal and flip-free.
		b := parseBoard(t,
			".OOOOOOO",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		require.Empty(t, b.flips(Black, Location{Row: 0, Col: 0}))
	})
}

func TestDiscConservation(t *testing.T) {
	b := InitialPosition()
	for _, move := range b.LegalMoves(Black) {
		next := b.Apply(Black, move)
		require.Equal(t, b.Empties()-1, next.Empties(),
			"a placement occupies exactly one empty square")
		require.Equal(t,
			b.Count(Black)+b.Count(White)+1,
			next.Count(Black)+next.Count(White),
			"flips change colors, not the disc total")
	}
}

func TestLegalitySoundness(t *testing.T) {
	// Every legal move must capture at least one disc, on every position a
	// random game visits.
	rng := rand.New(rand.NewSource(1))
	b := InitialPosition()
	side := Black
	for {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			break
		}
		for _, move := range moves {
			if move.Pass {
				continue
			}
			next := b.Apply(side, move)
			changed := 0
			for r := 0; r < BoardSize; r++ {
				for c := 0; c < BoardSize; c++ {
					if b.cells[r][c] != next.cells[r][c] {
						changed++
					}
				}
			}
			require.GreaterOrEqual(t, changed, 2,
				"move %s for %s should place one disc and flip at least one", move, side)
		}
		b = b.Apply(side, moves[rng.Intn(len(moves))])
		side = side.Opposite()
	}
}

func TestFlipSymmetry(t *testing.T) {
	// Reconstruct the captured set independently of the shared ray scan:
	// every disc changed by a move, other than the placed one, must sit on a
	// contiguous straight run of former opponent discs closed off by a disc
	// of the mover's color.
	rng := rand.New(rand.NewSource(7))
	b := InitialPosition()
	side := Black
	for turn := 0; turn < 20; turn++ {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			break
		}
		move := moves[rng.Intn(len(moves))]
		if !move.Pass {
			next := b.Apply(side, move)
			requireFlipsBracketed(t, b, next, side, move.Loc)
		}
		b = b.Apply(side, move)
		side = side.Opposite()
	}
}

func requireFlipsBracketed(t *testing.T, before, after Board, side Side, placed Location) {
	t.Helper()

	want := map[Location]bool{}
	opp := side.Opposite()
	for _, d := range [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}} {
		var run []Location
		r, c := placed.Row+d[0], placed.Col+d[1]
		for r >= 0 && r < BoardSize && c >= 0 && c < BoardSize && before.cells[r][c] == opp {
			run = append(run, Location{Row: r, Col: c})
			r, c = r+d[0], c+d[1]
		}
		if r >= 0 && r < BoardSize && c >= 0 && c < BoardSize && before.cells[r][c] == side {
			for _, loc := range run {
				want[loc] = true
			}
		}
	}
	require.NotEmpty(t, want, "a legal placement captures at least one run")

	got := map[Location]bool{}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			loc := Location{Row: r, Col: c}
			if loc == placed {
				continue
			}
			if before.cells[r][c] != after.cells[r][c] {
				require.Equal(t, opp, before.cells[r][c], "only opponent discs may change")
				require.Equal(t, side, after.cells[r][c], "flipped discs take the mover's color")
				got[loc] = true
			}
		}
	}
	require.Equal(t, want, got, "flipped set should match the independently reconstructed captures")
}

func TestApplyChecked(t *testing.T) {
	b := InitialPosition()

	t.Run("legal move applies", func(t *testing.T) {
		got, err := b.ApplyChecked(Black, Place(2, 3))
		require.NoError(t, err)
		require.Equal(t, b.Apply(Black, Place(2, 3)), got)
	})

	t.Run("off-list move is rejected", func(t *testing.T) {
		_, err := b.ApplyChecked(Black, Place(0, 0))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("pass is rejected while captures exist", func(t *testing.T) {
		_, err := b.ApplyChecked(Black, PassMove)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("finished position is rejected", func(t *testing.T) {
		_, err := fullBoard33to31(t).ApplyChecked(Black, Place(0, 0))
		require.ErrorIs(t, err, ErrGameOver)
	})
}

// fullBoard33to31 fills the board with 33 Black and 31 White discs.
func fullBoard33to31(t *testing.T) Board {
	t.Helper()
	return parseBoard(t,
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XOOOOOOO",
		"OOOOOOOO",
		"OOOOOOOO",
		"OOOOOOOO",
	)
}
