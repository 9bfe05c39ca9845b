package genetic

import (
	"tetris/experiments/metrics"
	"tetris/heuristic"
	"tetris/render"
	"tetris/searcher"
	"tetris/utils"

	"golang.org/x/exp/rand"
)

type Option func(t *trainer)

// Environment builds the renderer each simulated game reports to.
type Environment func() (render.Renderer, error)

// WithGoroutines evaluates candidates in parallel, each goroutine on its own
// game state.
func WithGoroutines(goroutines int) Option {
	return func(t *trainer) {
		if goroutines > 0 {
			t.goroutines = goroutines
		}
	}
}

// WithPopulation starts from the given weights instead of random ones. Its
// length overrides Config.PopulationSize.
func WithPopulation(population []heuristic.Weights) Option {
	return func(t *trainer) {
		if len(population) > 0 {
			t.initial = append([]heuristic.Weights(nil), population...)
		}
	}
}

// WithObserver is called after every generation with its metrics.
func WithObserver(observer func(metrics.GenerationMetric)) Option {
	return func(t *trainer) {
		if observer != nil {
			t.observer = observer
		}
	}
}

func WithEnvironment(env Environment) Option {
	return func(t *trainer) {
		if env != nil {
			t.env = env
		}
	}
}

// WithMaxPieces caps every simulated game at n locked pieces.
func WithMaxPieces(n uint32) Option {
	return func(t *trainer) {
		t.maxPieces = n
	}
}

func WithRand(r *rand.Rand) Option {
	return func(t *trainer) {
		if r != nil {
			t.rng = r
		}
	}
}

// WithMetrics collects game and placement counts and timings per generation.
func WithMetrics() Option {
	return func(t *trainer) {
		t.metrics = metrics.NewCollector()
		t.search = searcher.NewMetricsCollector()
	}
}

func newTrainer(options []Option) *trainer {
	t := &trainer{
		goroutines: 1,
		rng:        utils.NewRand(),
		observer:   func(metrics.GenerationMetric) {},
		env:        render.Headless,
		metrics:    metrics.NewDummyCollector(),
		search:     searcher.NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}
