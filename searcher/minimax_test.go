package searcher

import (
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// buildBoard plays out a fixed move sequence from the opening so tests get a
// reproducible midgame position.
func buildBoard(t *testing.T, moves ...game.Move) (game.Board, game.Side) {
	t.Helper()
	b := game.InitialPosition()
	side := game.Black
	for _, move := range moves {
		var err error
		b, err = b.ApplyChecked(side, move)
		require.NoError(t, err)
		side = side.Opposite()
	}
	return b, side
}

// passOnlyBoard has White at (0,0) and Black at (0,1): Black must pass while
// White can still capture at (0,2).
func passOnlyBoard(t *testing.T) game.Board {
	t.Helper()
	b, err := game.ParseBoard(
		"OX......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	require.NoError(t, err)
	return b
}

// loneDiscBoard gives neither side a capture anywhere.
func loneDiscBoard(t *testing.T) game.Board {
	t.Helper()
	b, err := game.ParseBoard(
		"X.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	require.NoError(t, err)
	return b
}

func TestNewMinimaxRejectsShallowDepth(t *testing.T) {
	require.Panics(t, func() { NewMinimax(0) })
	require.Panics(t, func() { NewMinimax(-1) })
}

func TestValueDepthOneBaseCase(t *testing.T) {
	// Depth-1 minimax must equal the best static score among the children.
	m := NewMinimax(1)

	mid, midSide := buildBoard(t, game.Place(2, 3), game.Place(2, 2), game.Place(2, 1))
	positions := []struct {
		name string
		b    game.Board
		side game.Side
	}{
		{"opening for black", game.InitialPosition(), game.Black},
		{"opening for white", game.InitialPosition(), game.White},
		{"midgame", mid, midSide},
	}

	for _, tc := range positions {
		t.Run(tc.name, func(t *testing.T) {
			want := 0
			for i, move := range tc.b.LegalMoves(tc.side) {
				require.False(t, move.Pass)
				v := game.Score(tc.b.Apply(tc.side, move))
				if i == 0 || better(tc.side, v, want) {
					want = v
				}
			}
			require.Equal(t, want, m.Value(tc.b, tc.side, 1))
		})
	}
}

func TestValueSignConvention(t *testing.T) {
	b := game.InitialPosition()

	require.Equal(t, 3, NewMinimax(1).Value(b, game.Black, 1),
		"every black opening flips one disc for a differential of 3")
	require.Equal(t, -3, NewMinimax(1).Value(b, game.White, 1),
		"white minimizes with the mirrored result")
}

func TestValueForcedPassKeepsBoard(t *testing.T) {
	b := passOnlyBoard(t)
	m := NewMinimax(5)

	// Black's pass hands the same board to White one ply down.
	require.Equal(t, m.Value(b, game.White, 2), m.Value(b, game.Black, 3))

	// At depth 1 the pass clamps to depth 0 instead of going negative.
	require.Equal(t, game.Score(b), m.Value(b, game.Black, 1))
}

func TestBestMoveTieBreaksRowMajor(t *testing.T) {
	m := NewMinimax(1)

	move, _, ok := m.BestMove(game.InitialPosition(), game.Black)
	require.True(t, ok)
	require.Equal(t, game.Place(2, 3), move,
		"all four openings tie, so the first in row-major order wins")

	b, side := buildBoard(t, game.Place(2, 3))
	require.Equal(t, game.White, side)
	move, _, ok = m.BestMove(b, side)
	require.True(t, ok)
	require.Equal(t, game.Place(2, 2), move,
		"white's three replies tie at value 0")
}

func TestBestMoveDeterminism(t *testing.T) {
	m := NewMinimax(3)
	b, side := buildBoard(t, game.Place(2, 3), game.Place(2, 2))

	first, _, ok := m.BestMove(b, side)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, _, ok := m.BestMove(b, side)
		require.True(t, ok)
		require.Equal(t, first, again, "identical arguments must produce the identical move")
	}
}

func TestBestMoveForcedPass(t *testing.T) {
	b := passOnlyBoard(t)

	m := NewMinimax(5, WithMetrics())
	move, metric, ok := m.BestMove(b, game.Black)

	require.True(t, ok)
	require.Equal(t, game.PassMove, move)
	require.Zero(t, metric.Nodes, "a forced pass is returned without searching")
	require.Equal(t, b, b.Apply(game.Black, move), "applying the pass changes nothing")
}

func TestBestMoveGameOver(t *testing.T) {
	b := loneDiscBoard(t)

	_, _, ok := NewMinimax(2).BestMove(b, game.Black)
	require.False(t, ok, "a finished position yields no move")
	_, _, ok = NewMinimax(2).BestMove(b, game.White)
	require.False(t, ok)
}

func TestParallelMatchesSequential(t *testing.T) {
	sequential := NewMinimax(3, WithMetrics())
	parallel := NewMinimax(3, WithParallel(8), WithMetrics())

	rng := rand.New(rand.NewSource(42))
	b := game.InitialPosition()
	side := game.Black
	for turn := 0; turn < 12; turn++ {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			break
		}

		wantMove, wantMetric, wantOK := sequential.BestMove(b, side)
		gotMove, gotMetric, gotOK := parallel.BestMove(b, side)

		require.Equal(t, wantOK, gotOK)
		require.Equal(t, wantMove, gotMove,
			"parallel root evaluation must preserve the row-major tie-break")
		require.Equal(t, wantMetric.Nodes, gotMetric.Nodes,
			"both searches walk the same exhaustive tree")

		b = b.Apply(side, moves[rng.Intn(len(moves))])
		side = side.Opposite()
	}
}

func TestSearchMetrics(t *testing.T) {
	m := NewMinimax(2, WithMetrics())

	_, metric, ok := m.BestMove(game.InitialPosition(), game.Black)

	require.True(t, ok)
	require.Equal(t, 2, metric.Depth)
	require.Equal(t, int64(16), metric.Nodes,
		"four depth-1 children, each expanding three white replies")
	require.Equal(t, int64(12), metric.Leaves)
	require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
}
