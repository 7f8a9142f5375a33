// Package metrics defines the records written by experiment runs.
package metrics

import (
	"time"

	"othello/game"
)

// AgentConfig identifies one searcher configuration under test.
type AgentConfig struct {
	ID         int
	Depth      int
	Goroutines int
}

// GameRecord summarizes one finished game of a matchup.
type GameRecord struct {
	ID        string // Game UUID
	Agent1    int    // AgentConfig.ID playing Black
	Agent2    int    // AgentConfig.ID playing White
	Winner    game.Side
	Score     int // Disc differential, Black minus White
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// MoveRecord captures the search behind a single move.
type MoveRecord struct {
	Game     string // GameRecord.ID
	Step     int
	Side     game.Side
	Move     string
	Duration time.Duration
	Nodes    int64
	Leaves   int64
	Passes   int64
}
