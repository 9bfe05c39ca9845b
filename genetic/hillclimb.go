package genetic

import (
	"fmt"

	"tetris/heuristic"

	"github.com/rs/zerolog/log"
)

type HillClimbConfig struct {
	EvalIterations int
	Steps          int
	BaselineScore  float64 // Score a mutation must beat to be kept
}

// HillClimb trains by mutation alone: each step evaluates the current
// weights, remembers them if they beat the best score so far, then replaces
// one random weight. The walk continues from the mutated weights, not from
// the best ones. It returns the best weights and score seen; if nothing
// beats the baseline the start weights are returned with the baseline.
func HillClimb(start heuristic.Weights, cfg HillClimbConfig, options ...Option) (heuristic.Weights, float64, error) {
	if cfg.EvalIterations < 1 {
		return start, 0, fmt.Errorf("eval iterations must be positive, got %d", cfg.EvalIterations)
	}

	t := newTrainer(options)
	t.goroutines = 1
	engines, err := t.engines()
	if err != nil {
		return start, 0, err
	}

	weights, best, bestScore := start, start, cfg.BaselineScore
	for step := 0; step < cfg.Steps; step++ {
		score, err := t.fitness(engines[0], weights, cfg.EvalIterations)
		if err != nil {
			return best, bestScore, fmt.Errorf("failed to evaluate step %d: %w", step+1, err)
		}
		if score > bestScore {
			best, bestScore = weights, score
			log.Info().Msgf("step %d improved to %.2f", step+1, score)
		}
		weights = Mutate(weights, t.rng)
	}
	return best, bestScore, nil
}
