package genetic

import (
	"errors"
	"fmt"
	"sync"

	"tetris/agent"
	"tetris/engine"
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/heuristic"
	"tetris/meta"
	"tetris/render"
	"tetris/searcher"
	"tetris/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	EvalIterations      int // Games averaged into one fitness value
	Generations         int
	PopulationSize      int
	SelectionSize       int
	MutationProbability float64
}

func DefaultConfig() Config {
	return Config{
		EvalIterations:      meta.EVAL_ITERATIONS,
		Generations:         meta.NUM_GENERATIONS,
		PopulationSize:      meta.POPULATION_SIZE,
		SelectionSize:       meta.SELECTION_SIZE,
		MutationProbability: meta.MUTATION_PROBABILITY,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.EvalIterations < 1 {
		errs = append(errs, fmt.Errorf("eval iterations must be positive, got %d", c.EvalIterations))
	}
	if c.Generations < 1 {
		errs = append(errs, fmt.Errorf("generations must be positive, got %d", c.Generations))
	}
	if c.PopulationSize < 1 {
		errs = append(errs, fmt.Errorf("population size must be positive, got %d", c.PopulationSize))
	}
	if c.SelectionSize < 1 {
		errs = append(errs, fmt.Errorf("selection size must be positive, got %d", c.SelectionSize))
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		errs = append(errs, fmt.Errorf("mutation probability must be in [0, 1], got %v", c.MutationProbability))
	}
	return errors.Join(errs...)
}

// Result is the best candidate of the final generation.
type Result struct {
	Weights heuristic.Weights
	Score   float64
	History []metrics.GenerationMetric
}

type trainer struct {
	goroutines int
	initial    []heuristic.Weights
	rng        *rand.Rand
	observer   func(metrics.GenerationMetric)
	env        Environment
	maxPieces  uint32
	metrics    metrics.Collector
	search     searcher.MetricsCollector
}

// Train runs the genetic optimizer for cfg.Generations generations and
// returns the best weights of the last one. Fitness is the mean score of
// cfg.EvalIterations games played by a search agent with those weights.
func Train(cfg Config, options ...Option) (Result, error) {
	t := newTrainer(options)
	if t.initial != nil {
		cfg.PopulationSize = len(t.initial)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid training config: %w", err)
	}

	engines, err := t.engines()
	if err != nil {
		return Result{}, err
	}

	population := t.initial
	if population == nil {
		population = make([]heuristic.Weights, cfg.PopulationSize)
		for i := range population {
			population[i] = RandomWeights(t.rng)
		}
	}
	fitness := make([]float64, len(population))
	selection := make([]heuristic.Weights, cfg.SelectionSize)

	var result Result
	for generation := 0; generation < cfg.Generations; generation++ {
		t.metrics.Start(generation + 1)
		t.search.Start()

		if err := t.evaluate(engines, population, fitness, cfg.EvalIterations); err != nil {
			return Result{}, fmt.Errorf("failed to evaluate generation %d: %w", generation+1, err)
		}

		// Keep track of the fittest individual and its score
		i := utils.ArgMax(fitness)
		result.Score = fitness[i]
		result.Weights = population[i]

		t.metrics.AddPlacements(t.search.Complete().Placements)
		metric := t.metrics.Complete()
		metric.Generation = generation + 1
		metric.BestScore = result.Score
		metric.MeanFitness = mean(fitness)
		result.History = append(result.History, metric)
		t.observer(metric)

		log.Info().Msgf("generation %d :: %.2f", generation+1, result.Score)

		if generation == cfg.Generations-1 {
			break
		}

		Normalize(fitness)
		for i := range selection {
			selection[i] = population[RouletteWheel(fitness, t.rng.Float64())]
		}
		for i := range population {
			a := selection[t.rng.Intn(len(selection))]
			b := selection[t.rng.Intn(len(selection))]
			child := Breed(a, b, meta.CROSSOVER_PROBABILITY, t.rng)
			if t.rng.Float64() < cfg.MutationProbability {
				child = Nudge(child, t.rng)
			}
			population[i] = child
		}
	}

	return result, nil
}

// engines builds one headless engine per goroutine, each owning its state.
func (t *trainer) engines() ([]*engine.Engine, error) {
	engines := make([]*engine.Engine, t.goroutines)
	for i := range engines {
		r, err := t.env()
		if err != nil {
			return nil, fmt.Errorf("failed to create simulation environment: %w", err)
		}
		e := engine.New(game.NewGameState(), nil, r, render.DrawNone)
		e.MaxPieces = t.maxPieces
		engines[i] = e
	}
	return engines, nil
}

func (t *trainer) fitness(e *engine.Engine, w heuristic.Weights, games int) (float64, error) {
	e.Agent = agent.NewSearchAgent(w, searcher.WithMetrics(t.search))
	score, err := e.Evaluate(games)
	if err != nil {
		return 0, err
	}
	t.metrics.AddGames(games)
	return score, nil
}

func (t *trainer) evaluate(engines []*engine.Engine, population []heuristic.Weights, fitness []float64, games int) error {
	if len(engines) == 1 {
		for i, w := range population {
			f, err := t.fitness(engines[0], w, games)
			if err != nil {
				return err
			}
			fitness[i] = f
		}
		return nil
	}

	task := make(chan int, len(population))
	for i := range population {
		task <- i
	}
	close(task)

	errs := make([]error, len(engines))
	var wg sync.WaitGroup
	for g, e := range engines {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				f, err := t.fitness(e, population[i], games)
				if err != nil {
					errs[g] = err
					return
				}
				fitness[i] = f
			}
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}
