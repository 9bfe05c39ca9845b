package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tetris/game"
	"tetris/heuristic"
	"tetris/searcher"

	"github.com/rs/zerolog/log"
)

// MoveRequest describes the live game to search. Turns rotates the
// canonical piece that many times before searching. Negative values turn
// the other way.
type MoveRequest struct {
	Board   game.Board         `json:"board"`
	Piece   int                `json:"piece"`
	Turns   int                `json:"turns"`
	Pos     *game.Position     `json:"pos,omitempty"`
	Weights *heuristic.Weights `json:"weights,omitempty"`
}

type MoveResponse struct {
	Action   game.Action   `json:"action"`
	Rotation int           `json:"rotation"`
	Target   game.Position `json:"target"`
	Drop     game.Position `json:"drop"`
	Loss     float64       `json:"loss"`
}

type handler struct {
	weights  heuristic.Weights
	searcher *searcher.Searcher
}

// NewHandler serves move suggestions for weights unless a request brings
// its own.
func NewHandler(weights heuristic.Weights) http.Handler {
	h := &handler{weights: weights, searcher: searcher.NewSearcher()}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /findmove", h.handleFindMove)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe starts a move server on addr.
func ListenAndServe(addr string, weights heuristic.Weights) error {
	log.Info().Msgf("starting move server on %s with weights %s", addr, weights)
	if err := http.ListenAndServe(addr, NewHandler(weights)); err != nil {
		return fmt.Errorf("move server stopped: %w", err)
	}
	return nil
}

func (r MoveRequest) state() (*game.GameState, error) {
	if r.Piece < 0 || r.Piece >= len(game.Pieces) {
		return nil, fmt.Errorf("piece index %d out of range", r.Piece)
	}
	state := game.NewGameState()
	state.Board = r.Board
	state.Current = game.NewPiece(r.Piece)
	for i := 0; i < (r.Turns%4+4)%4; i++ {
		state.Current.Rotate()
	}
	if r.Pos != nil {
		state.Pos = *r.Pos
	}
	return state, nil
}

func (h *handler) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	state, err := req.state()
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	weights := h.weights
	if req.Weights != nil {
		weights = *req.Weights
	}

	best := h.searcher.FindPlacement(state, weights.Loss)
	action, ok := searcher.ActionFor(state, best)
	if !ok {
		action = game.HardDrop
	}

	resp := MoveResponse{
		Action:   action,
		Rotation: best.Rotation,
		Target:   best.Pos,
		Drop:     best.Drop,
		Loss:     best.Loss,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to encode move")
	}
}
