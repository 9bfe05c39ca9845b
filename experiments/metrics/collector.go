package metrics

import (
	"sync/atomic"
	"time"

	"tetris/heuristic"
)

// AgentConfig describes a player in an experiment. A nil Weights plays
// uniformly random moves.
type AgentConfig struct {
	ID        int
	Weights   *heuristic.Weights
	MaxPieces uint32
}

type GenerationMetric struct {
	Generation  int // 1-based
	BestScore   float64
	MeanFitness float64
	Games       int
	Placements  int64
	StartTime   time.Time
	Duration    time.Duration
}

type GameMetric struct {
	Score     uint32
	Pieces    uint32
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(generation int)
	AddGames(n int)
	AddPlacements(n int64)
	Complete() GenerationMetric
}

type collector struct {
	generation int
	startTime  time.Time
	games      atomic.Int32
	placements atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(generation int) {
	m.generation = generation
	m.startTime = time.Now()
	m.games.Store(0)
	m.placements.Store(0)
}

func (m *collector) AddGames(n int) {
	m.games.Add(int32(n))
}

func (m *collector) AddPlacements(n int64) {
	m.placements.Add(n)
}

func (m *collector) Complete() GenerationMetric {
	return GenerationMetric{
		Generation: m.generation,
		Games:      int(m.games.Load()),
		Placements: m.placements.Load(),
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(generation int)       {}
func (m *dummyCollector) AddGames(n int)             {}
func (m *dummyCollector) AddPlacements(n int64)      {}
func (m *dummyCollector) Complete() GenerationMetric { return GenerationMetric{} }
