package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tetris/agent"
	"tetris/engine"
	"tetris/experiments"
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/genetic"
	"tetris/heuristic"
	"tetris/meta"
	"tetris/render"
	"tetris/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode      string
	training  genetic.Config
	workers   int
	steps     int
	maxPieces uint
	weights   string
	agent     string
	remote    string
	draw      string
	every     uint64
	hook      string
	out       string
	addr      string
	games     int
	verbose   bool
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "train", "One of train, climb, play, serve, compare")
	flag.IntVar(&cfg.training.EvalIterations, "games", meta.EVAL_ITERATIONS, "Games per fitness evaluation")
	flag.IntVar(&cfg.training.Generations, "generations", meta.NUM_GENERATIONS, "Number of generations")
	flag.IntVar(&cfg.training.PopulationSize, "population", meta.POPULATION_SIZE, "Population size")
	flag.IntVar(&cfg.training.SelectionSize, "selection", meta.SELECTION_SIZE, "Selection pool size")
	flag.Float64Var(&cfg.training.MutationProbability, "mutation", meta.MUTATION_PROBABILITY, "Mutation probability")
	flag.IntVar(&cfg.workers, "goroutines", meta.GO_ROUTINES, "Number of goroutines evaluating candidates")
	flag.IntVar(&cfg.steps, "steps", 100, "Mutation steps in climb mode")
	flag.UintVar(&cfg.maxPieces, "max-pieces", 0, "Stop each game after this many pieces (0 plays to the end)")
	flag.StringVar(&cfg.weights, "weights", "", "Comma separated heuristic weights for play, serve and compare")
	flag.StringVar(&cfg.agent, "agent", "search", "Agent for play mode: search, random or remote")
	flag.StringVar(&cfg.remote, "remote", "http://localhost:8080", "Move server URL for the remote agent")
	flag.StringVar(&cfg.draw, "draw", "every", "Draw mode: all, none or every")
	flag.Uint64Var(&cfg.every, "every", game.DropTicks, "Tick interval for -draw every")
	flag.StringVar(&cfg.hook, "hook", "", "Post frames to this visualizer URL instead of the terminal")
	flag.StringVar(&cfg.out, "out", "", "Directory for CSV experiment records")
	flag.StringVar(&cfg.addr, "addr", ":8080", "Listen address for serve mode")
	flag.IntVar(&cfg.games, "compare-games", 10, "Games per agent in compare mode")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func run(cfg config) error {
	switch cfg.mode {
	case "train":
		return runTraining(cfg)
	case "play":
		w, err := parseWeights(cfg.weights)
		if err != nil {
			return err
		}
		var a agent.Agent = agent.NewSearchAgent(w)
		switch cfg.agent {
		case "search":
		case "random":
			a = agent.NewRandomAgent()
		case "remote":
			a = agent.NewRemoteAgent(cfg.remote)
		default:
			return fmt.Errorf("unknown agent %q", cfg.agent)
		}
		return play(cfg, a)
	case "serve":
		w, err := parseWeights(cfg.weights)
		if err != nil {
			return err
		}
		return server.ListenAndServe(cfg.addr, w)
	case "compare":
		return runComparison(cfg)
	case "climb":
		return runHillClimb(cfg)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func runTraining(cfg config) error {
	log.Info().Msg("training with hyperparameters:")
	log.Info().Msgf("-  eval_iterations: %d", cfg.training.EvalIterations)
	log.Info().Msgf("-  num_generations: %d", cfg.training.Generations)
	log.Info().Msgf("-  population_size: %d", cfg.training.PopulationSize)
	log.Info().Msgf("-  selection_size: %d", cfg.training.SelectionSize)
	log.Info().Msgf("-  mutation_probability: %v", cfg.training.MutationProbability)

	result, err := genetic.Train(cfg.training,
		genetic.WithGoroutines(cfg.workers),
		genetic.WithMaxPieces(uint32(cfg.maxPieces)),
		genetic.WithMetrics(),
	)
	if err != nil {
		return err
	}

	log.Info().Msgf("weights after training: %s", result.Weights)
	log.Info().Msgf("average training score: %.2f", result.Score)

	if cfg.out != "" {
		writer, err := metrics.NewWriter(cfg.out, "training")
		if err != nil {
			return err
		}
		if err := writer.WriteGenerationRecords(result.History); err != nil {
			return err
		}
		log.Info().Msgf("stored generation records in %s", writer.Dir())
	}

	return play(cfg, agent.NewSearchAgent(result.Weights))
}

func runHillClimb(cfg config) error {
	start, err := parseWeights(cfg.weights)
	if err != nil {
		return err
	}
	best, score, err := genetic.HillClimb(start, genetic.HillClimbConfig{
		EvalIterations: cfg.training.EvalIterations,
		Steps:          cfg.steps,
	}, genetic.WithMaxPieces(uint32(cfg.maxPieces)))
	if err != nil {
		return err
	}

	log.Info().Msgf("weights after hill climbing: %s", best)
	log.Info().Msgf("best score: %.2f", score)
	return nil
}

func runComparison(cfg config) error {
	w, err := parseWeights(cfg.weights)
	if err != nil {
		return err
	}
	baseline := experiments.RandomBaseline
	if cfg.maxPieces > 0 {
		baseline.MaxPieces = uint32(cfg.maxPieces)
	}
	configs := []metrics.AgentConfig{
		baseline,
		{ID: 1, Weights: &w, MaxPieces: uint32(cfg.maxPieces)},
	}

	records, err := experiments.RunComparison(configs, cfg.games)
	if err != nil {
		return err
	}
	log.Info().Msgf("random agent mean score: %.2f", experiments.MeanScore(records, baseline.ID))
	log.Info().Msgf("search agent mean score: %.2f", experiments.MeanScore(records, 1))

	if cfg.out != "" {
		dir, err := experiments.StoreComparison(cfg.out, configs, records)
		if err != nil {
			return err
		}
		log.Info().Msgf("stored comparison in %s", dir)
	}
	return nil
}

func play(cfg config, a agent.Agent) error {
	draw, err := render.ParseDrawConfig(cfg.draw, cfg.every)
	if err != nil {
		return err
	}
	var r render.Renderer = render.NewTerminal(os.Stdout)
	if cfg.hook != "" {
		r = render.NewHook(cfg.hook)
	}

	e := engine.New(game.NewGameState(), a, r, draw)
	e.MaxPieces = uint32(cfg.maxPieces)
	if err := e.Run(); err != nil {
		return err
	}
	if err := r.Draw(e.State); err != nil {
		return err
	}

	log.Info().Msgf("achieved score: %d", e.State.Score)
	return nil
}

// parseWeights reads "a,b,c,d". An empty string gives equal unit weights.
func parseWeights(s string) (heuristic.Weights, error) {
	var w heuristic.Weights
	if s == "" {
		for i := range w {
			w[i] = 1
		}
		return w, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != heuristic.N {
		return w, fmt.Errorf("expected %d weights, got %d", heuristic.N, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return w, fmt.Errorf("failed to parse weight %q: %w", p, err)
		}
		w[i] = v
	}
	return w, nil
}
