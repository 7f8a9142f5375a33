package searcher

import (
	"sync"

	"othello/game"
)

// Minimax is a fixed-depth exhaustive minimax searcher over the game tree.
// Black is the maximizing player and White the minimizing player, matching
// the sign convention of game.Score. There is no pruning: every reachable
// node down to the depth limit is evaluated, which keeps feasible depths
// small (the difficulty levels use 1, 2, and 5).
type Minimax struct {
	depth      int
	goroutines int
	metrics    MetricsCollector
}

type Option func(m *Minimax)

// WithParallel splits the root move list across the given number of
// goroutines. Each subtree is a pure function of (board, side, depth), so
// workers share nothing but the result slice.
func WithParallel(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 1 {
			m.goroutines = goroutines
		}
	}
}

// WithMetrics collects node and timing metrics for every search.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// NewMinimax returns a searcher for the given depth. Depth must be at least
// 1; depth 0 only ever appears inside the recursion.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{ // Default values
		depth:      depth,
		goroutines: 1,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Depth returns the configured search depth.
func (m *Minimax) Depth() int {
	return m.depth
}

// BestMove returns the strongest move for side at the configured depth,
// together with metrics for the search. ok is false when neither side has a
// move left; the caller must detect that and stop rather than retry. When
// the only legal move is to pass, BestMove returns the pass without
// searching. Ties break toward the first move in row-major order, so the
// result is deterministic.
func (m *Minimax) BestMove(board game.Board, side game.Side) (move game.Move, metric MoveMetrics, ok bool) {
	m.metrics.Start(m.goroutines, m.depth)
	defer func() {
		metric = m.metrics.Complete()
	}()

	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return game.Move{}, metric, false
	}
	if moves[0].Pass {
		return game.PassMove, metric, true
	}

	values := m.evaluate(board, side, moves)
	best := 0
	for i := 1; i < len(values); i++ {
		if better(side, values[i], values[best]) {
			best = i
		}
	}
	return moves[best], metric, true
}

// evaluate scores every candidate one ply down. With parallelism enabled the
// root moves are spread over a worker pool; values land in a slice indexed
// like moves and are reduced sequentially afterwards, which keeps the
// row-major tie-break identical to the sequential search.
func (m *Minimax) evaluate(board game.Board, side game.Side, moves []game.Move) []int {
	values := make([]int, len(moves))

	workers := min(m.goroutines, len(moves))
	if workers <= 1 {
		for i, move := range moves {
			values[i] = m.Value(board.Apply(side, move), side.Opposite(), m.depth-1)
		}
		return values
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				values[i] = m.Value(board.Apply(side, moves[i]), side.Opposite(), m.depth-1)
			}
		}()
	}
	wg.Wait()

	return values
}

// Value is the depth-limited minimax evaluation of board with side to move.
// Depth 0 and positions where side has no legal moves evaluate to the raw
// disc differential, regardless of whose turn it nominally is. A forced
// pass hands the turn over on the same board, consuming a ply without ever
// driving depth below zero.
func (m *Minimax) Value(board game.Board, side game.Side, depth int) int {
	m.metrics.AddNode()

	if depth == 0 {
		m.metrics.AddLeaf()
		return game.Score(board)
	}

	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		m.metrics.AddLeaf()
		return game.Score(board)
	}
	if moves[0].Pass {
		m.metrics.AddPass()
		return m.Value(board, side.Opposite(), max(depth-1, 0))
	}

	value := 0
	for i, move := range moves {
		v := m.Value(board.Apply(side, move), side.Opposite(), depth-1)
		if i == 0 || better(side, v, value) {
			value = v
		}
	}
	return value
}

// better reports whether v improves on best from side's point of view.
// Strict comparison keeps the first-encountered move on ties.
func better(side game.Side, v, best int) bool {
	if side == game.Black {
		return v > best
	}
	return v < best
}
