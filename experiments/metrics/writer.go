package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory under root/name for the
// experiment's CSV files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "weights", "max_pieces"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		kind, weights := "random", ""
		if config.Weights != nil {
			kind, weights = "search", config.Weights.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			kind,
			weights,
			strconv.FormatUint(uint64(config.MaxPieces), 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGenerationRecords(records []GenerationMetric) error {
	header := []string{"generation", "best_score", "mean_fitness", "games", "placements", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Generation),
			strconv.FormatFloat(record.BestScore, 'f', 4, 64),
			strconv.FormatFloat(record.MeanFitness, 'f', 4, 64),
			strconv.Itoa(record.Games),
			strconv.FormatInt(record.Placements, 10),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("generation_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent", "score", "pieces", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.FormatUint(uint64(record.Score), 10),
			strconv.FormatUint(uint64(record.Pieces), 10),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}
