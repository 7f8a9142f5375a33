package engine

import (
	"fmt"

	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Update records one applied move, for history, rendering, and metrics.
type Update struct {
	Step   int
	Side   game.Side
	Move   game.Move
	Board  game.Board // Position after the move
	Metric searcher.MoveMetrics
}

// Outcome is the final result of a match.
type Outcome struct {
	Winner game.Side // Empty on a tie
	Black  int
	White  int
	Moves  int
}

// Engine alternates two agents over a board until neither side has a legal
// move. Black always opens, matching the game rules.
type Engine struct {
	Board   game.Board
	Turn    game.Side
	History []Update
	agents  map[game.Side]Agent
}

// New returns an engine for one match between the two agents, starting from
// the standard opening position.
func New(black, white Agent) *Engine {
	if black == nil || white == nil {
		panic("engine needs an agent for each side")
	}
	return &Engine{
		Board: game.InitialPosition(),
		Turn:  game.Black,
		agents: map[game.Side]Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Step advances the match by one turn. done is true once neither side can
// move; the returned Update is only meaningful while done is false. Agent
// moves are validated at this boundary, so a misbehaving agent surfaces as
// an error instead of a corrupt board.
func (e *Engine) Step() (Update, bool, error) {
	moves := e.Board.LegalMoves(e.Turn)
	if len(moves) == 0 {
		return Update{}, true, nil
	}

	move, metric := e.agents[e.Turn].FindMove(e.Board, e.Turn, moves)

	next, err := e.Board.ApplyChecked(e.Turn, move)
	if err != nil {
		return Update{}, false, fmt.Errorf("%s agent: %w", e.Turn, err)
	}

	update := Update{
		Step:   len(e.History) + 1,
		Side:   e.Turn,
		Move:   move,
		Board:  next,
		Metric: metric,
	}
	e.History = append(e.History, update)
	e.Board = next
	e.Turn = e.Turn.Opposite()

	log.Debug().
		Int("step", update.Step).
		Stringer("side", update.Side).
		Stringer("move", update.Move).
		Int("score", game.Score(next)).
		Msg("move applied")

	return update, false, nil
}

// Run plays the match to completion and returns the final outcome.
func (e *Engine) Run() (Outcome, error) {
	for {
		_, done, err := e.Step()
		if err != nil {
			return Outcome{}, err
		}
		if done {
			break
		}
	}

	outcome := e.Outcome()
	log.Info().
		Stringer("winner", outcome.Winner).
		Int("black", outcome.Black).
		Int("white", outcome.White).
		Int("moves", outcome.Moves).
		Msg("match over")
	return outcome, nil
}

// Outcome reports the current standing. It is final once Step reports done.
func (e *Engine) Outcome() Outcome {
	return Outcome{
		Winner: game.Winner(e.Board),
		Black:  e.Board.Count(game.Black),
		White:  e.Board.Count(game.White),
		Moves:  len(e.History),
	}
}
