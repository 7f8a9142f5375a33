package engine

import (
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

// Agent picks a move for one side. The engine only calls FindMove when side
// has at least one legal move, which may be the forced pass; legal is the
// exact slice game.Board.LegalMoves returned.
type Agent interface {
	FindMove(board game.Board, side game.Side, legal []game.Move) (game.Move, searcher.MoveMetrics)
}

// SearchAgent drives the minimax searcher.
type SearchAgent struct {
	searcher *searcher.Minimax
}

// NewSearchAgent returns an agent searching to the given depth.
func NewSearchAgent(depth int, options ...searcher.Option) SearchAgent {
	return SearchAgent{searcher: searcher.NewMinimax(depth, options...)}
}

func (a SearchAgent) FindMove(board game.Board, side game.Side, _ []game.Move) (game.Move, searcher.MoveMetrics) {
	move, metric, ok := a.searcher.BestMove(board, side)
	if !ok {
		// The engine checks for game over before asking for a move.
		panic("search asked for a move in a finished position")
	}
	return move, metric
}

// RandomAgent plays a uniformly random legal move. It is the baseline
// opponent for experiments and tests.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(_ game.Board, _ game.Side, legal []game.Move) (game.Move, searcher.MoveMetrics) {
	return legal[a.rng.Intn(len(legal))], searcher.MoveMetrics{}
}

// AgentFunc adapts a plain function into an Agent, for callers like the
// console mode that source moves from user input.
type AgentFunc func(board game.Board, side game.Side, legal []game.Move) game.Move

func (f AgentFunc) FindMove(board game.Board, side game.Side, legal []game.Move) (game.Move, searcher.MoveMetrics) {
	return f(board, side, legal), searcher.MoveMetrics{}
}
