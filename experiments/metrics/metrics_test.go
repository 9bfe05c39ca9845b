package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"tetris/heuristic"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.AddGames(2)
				c.AddPlacements(10)
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, 3, m.Generation)
		require.Equal(t, 16, m.Games)
		require.Equal(t, int64(80), m.Placements)
		require.False(t, m.StartTime.IsZero())
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddGames(1)
		c.Start(2)
		require.Zero(t, c.Complete().Games)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1)
		c.AddGames(1)
		require.Equal(t, GenerationMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "training")
	require.NoError(t, err)

	t.Run("generation records", func(t *testing.T) {
		records := []GenerationMetric{
			{Generation: 1, BestScore: 12.5, MeanFitness: 7, Games: 10, Placements: 400, Duration: time.Second},
			{Generation: 2, BestScore: 20, MeanFitness: 9.25, Games: 10, Placements: 520},
		}
		require.NoError(t, w.WriteGenerationRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "generation_records.csv"))
		require.Len(t, rows, 3, "Header plus one row per generation")
		require.Equal(t, "best_score", rows[0][1])
		require.Equal(t, []string{"1", "12.5000", "7.0000", "10", "400"}, rows[1][:5])
	})

	t.Run("game records and agent configs", func(t *testing.T) {
		weights := heuristic.Weights{1, 2, 3, 4}
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1}, {ID: 2, Weights: &weights}}))
		require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent: 2, GameMetric: GameMetric{Score: 57, Pieces: 40}}}))

		configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, "random", configs[1][1])
		require.Equal(t, "search", configs[2][1])
		require.Equal(t, weights.String(), configs[2][2])

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Equal(t, []string{"1", "2", "57", "40"}, games[1][:4])
	})
}
