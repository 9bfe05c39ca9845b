package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tetris/game"
)

// Snapshot is the JSON view of a game pushed to a visualizer.
type Snapshot struct {
	Board   game.Board     `json:"board"`
	Current [4]game.Offset `json:"current"`
	Next    [4]game.Offset `json:"next"`
	Color   game.Cell      `json:"color"`
	Pos     game.Position  `json:"pos"`
	Ghost   game.Position  `json:"ghost"`
	Score   uint32         `json:"score"`
	Over    bool           `json:"over"`
}

func NewSnapshot(state *game.GameState) Snapshot {
	return Snapshot{
		Board:   state.Board,
		Current: state.Current.Shape,
		Next:    state.Next.Shape,
		Color:   state.Current.Color,
		Pos:     state.Pos,
		Ghost:   state.Ghost,
		Score:   state.Score,
		Over:    state.Over,
	}
}

// Hook posts every drawn frame as JSON to a visualizer web app.
type Hook struct {
	url    string
	client *http.Client
}

func NewHook(url string) *Hook {
	return &Hook{url: url, client: &http.Client{Timeout: 2 * time.Second}}
}

func (h *Hook) Draw(state *game.GameState) error {
	payload, err := json.Marshal(NewSnapshot(state))
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	resp, err := h.client.Post(h.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to post frame: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("visualizer returned status %d: %s", resp.StatusCode, out)
	}
	return nil
}
