// Package experiments pits searcher configurations against each other and
// records the results for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NumGames is the number of games per matchup. With deterministic searchers
// a single game per side assignment would do; the random baseline needs the
// repetition.
const NumGames = 10

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
	{ID: 5, Depth: 5},
}

// RunDepthToStrength pairs each depth against the depth-1 baseline, in both
// seat orders, to measure how extra plies convert into wins.
func RunDepthToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps,
			[]metrics.AgentConfig{baseline, config},
			[]metrics.AgentConfig{config, baseline})
	}

	runExperiment("depth_to_strength", append(depthConfigs, baseline), matchUps)
}

// RunParallelSpeedup replays the hardest depth with growing worker counts;
// identical node totals with shrinking durations show the speedup.
func RunParallelSpeedup() {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 5, Goroutines: 1},
		{ID: 2, Depth: 5, Goroutines: 2},
		{ID: 3, Depth: 5, Goroutines: 4},
		{ID: 4, Depth: 5, Goroutines: 8},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		// Same config on both seats for the same playing strength
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	runExperiment("parallel_speedup", configs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			record, moves, err := runGame(config1, config2)
			if err != nil {
				panic(fmt.Sprintf("failed to run game: %v", err))
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
				mi+1, len(matchUps), i+1, NumGames, record.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two searcher configs, config1 as
// Black and config2 as White, and returns its records.
func runGame(config1, config2 metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	e := engine.New(createAgent(config1), createAgent(config2))

	start := time.Now()
	outcome, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	end := time.Now()

	id := uuid.NewString()
	record := metrics.GameRecord{
		ID:        id,
		Agent1:    config1.ID,
		Agent2:    config2.ID,
		Winner:    outcome.Winner,
		Score:     outcome.Black - outcome.White,
		Moves:     outcome.Moves,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	moveRecords := make([]metrics.MoveRecord, 0, len(e.History))
	for _, update := range e.History {
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:     id,
			Step:     update.Step,
			Side:     update.Side,
			Move:     update.Move.String(),
			Duration: update.Metric.Duration,
			Nodes:    update.Metric.Nodes,
			Leaves:   update.Metric.Leaves,
			Passes:   update.Metric.Passes,
		})
	}

	return record, moveRecords, nil
}

func createAgent(config metrics.AgentConfig) engine.Agent {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithParallel(config.Goroutines))
	}
	return engine.NewSearchAgent(config.Depth, options...)
}
