package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tetris/game"
	"tetris/server"

	"github.com/rs/zerolog/log"
)

// RemoteAgent asks a move server for every action.
type RemoteAgent struct {
	URL    string
	client *http.Client
}

func NewRemoteAgent(url string) *RemoteAgent {
	return &RemoteAgent{URL: url, client: &http.Client{Timeout: 2 * time.Second}}
}

// Action falls back to no action when the server cannot be reached, which
// makes the engine hard drop.
func (a *RemoteAgent) Action(state *game.GameState) (game.Action, bool) {
	resp, err := a.requestMove(state)
	if err != nil {
		log.Error().Err(err).Msg("remote agent failed to fetch move")
		return game.None, false
	}
	return resp.Action, true
}

func (a *RemoteAgent) requestMove(state *game.GameState) (server.MoveResponse, error) {
	var move server.MoveResponse

	index, turns, ok := identify(state.Current)
	if !ok {
		return move, fmt.Errorf("unknown piece shape %v", state.Current.Shape)
	}
	pos := state.Pos
	body, err := json.Marshal(server.MoveRequest{
		Board: state.Board,
		Piece: index,
		Turns: turns,
		Pos:   &pos,
	})
	if err != nil {
		return move, fmt.Errorf("failed to encode move request: %w", err)
	}

	resp, err := a.client.Post(a.URL+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return move, fmt.Errorf("failed to post move request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return move, fmt.Errorf("move server returned status %d: %s", resp.StatusCode, out)
	}
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return move, fmt.Errorf("failed to decode move: %w", err)
	}
	return move, nil
}

// identify finds the canonical piece index and the number of rotations that
// produce p.
func identify(p game.Piece) (int, int, bool) {
	index := int(p.Color) - 1
	if index < 0 || index >= len(game.Pieces) {
		return 0, 0, false
	}
	piece := game.NewPiece(index)
	for turns := 0; turns < 4; turns++ {
		if piece.Shape == p.Shape {
			return index, turns, true
		}
		piece.Rotate()
	}
	return 0, 0, false
}
