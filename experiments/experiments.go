package experiments

import (
	"fmt"
	"time"

	"tetris/agent"
	"tetris/engine"
	"tetris/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RandomBaseline is the uniformly random agent every comparison includes.
var RandomBaseline = metrics.AgentConfig{ID: 0, MaxPieces: 1000}

func newAgent(config metrics.AgentConfig) agent.Agent {
	if config.Weights == nil {
		return agent.NewRandomAgent()
	}
	return agent.NewSearchAgent(*config.Weights)
}

// RunComparison plays numGames headless games for every agent config and
// returns one record per game.
func RunComparison(configs []metrics.AgentConfig, numGames int) ([]metrics.GameRecord, error) {
	count := 0
	records := []metrics.GameRecord{}

	log.Info().Msgf("starting comparison of %d agents over %d games each...", len(configs), numGames)

	for ci, config := range configs {
		e := engine.Headless(newAgent(config))
		e.MaxPieces = config.MaxPieces

		for i := 0; i < numGames; i++ {
			e.State.Reset()
			start := time.Now()
			if err := e.Run(); err != nil {
				return nil, fmt.Errorf("failed to play game %d of agent %d: %w", i+1, config.ID, err)
			}
			end := time.Now()

			count++
			records = append(records, metrics.GameRecord{
				ID:    count,
				Agent: config.ID,
				GameMetric: metrics.GameMetric{
					Score:     e.State.Score,
					Pieces:    e.State.Placed,
					StartTime: start,
					EndTime:   end,
					Duration:  end.Sub(start),
				},
			})
		}
		log.Info().Msgf("completed agent %d of %d", ci+1, len(configs))
	}

	log.Info().Msg("completed comparison")
	return records, nil
}

// StoreComparison writes the agent configs and game records of a comparison
// under root and returns the directory used.
func StoreComparison(root string, configs []metrics.AgentConfig, records []metrics.GameRecord) (string, error) {
	writer, err := metrics.NewWriter(root, "comparison")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	return writer.Dir(), nil
}

// MeanScore averages the records of one agent.
func MeanScore(records []metrics.GameRecord, agentID int) float64 {
	total, n := 0.0, 0
	for _, r := range records {
		if r.Agent == agentID {
			total += float64(r.Score)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
