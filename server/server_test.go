package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tetris/game"
	"tetris/heuristic"

	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/findmove", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestFindMove(t *testing.T) {
	h := NewHandler(heuristic.Weights{1, 0, 0, 0})

	t.Run("suggests moving an I piece to the wall", func(t *testing.T) {
		rec := post(t, h, MoveRequest{Piece: 0})

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var resp MoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, game.Left, resp.Action)
		require.Equal(t, 0, resp.Target.X)
		require.Equal(t, game.Height-1, resp.Drop.Y)
		require.Equal(t, 1.0, resp.Loss)
	})

	t.Run("aligned piece is hard-dropped", func(t *testing.T) {
		rec := post(t, h, MoveRequest{Piece: 0, Pos: &game.Position{X: 0, Y: game.SpawnOffset}})

		var resp MoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, game.HardDrop, resp.Action)
	})

	t.Run("request weights override the default", func(t *testing.T) {
		tallest := heuristic.Weights{0, -1, 0, 0}
		rec := post(t, h, MoveRequest{Piece: 0, Weights: &tallest})

		var resp MoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, game.Rotate, resp.Action)
		require.Equal(t, 1, resp.Rotation)
	})

	t.Run("action is encoded by name", func(t *testing.T) {
		rec := post(t, h, MoveRequest{Piece: 0})
		require.Contains(t, rec.Body.String(), `"action":"left"`)
	})

	t.Run("negative turns rotate the other way", func(t *testing.T) {
		tallest := heuristic.Weights{0, -1, 0, 0}
		back := post(t, h, MoveRequest{Piece: 0, Turns: -3, Weights: &tallest})
		forward := post(t, h, MoveRequest{Piece: 0, Turns: 1, Weights: &tallest})
		require.Equal(t, http.StatusOK, back.Code)
		require.Equal(t, forward.Body.String(), back.Body.String(), "Three turns back equal one turn forward")

		var resp MoveResponse
		require.NoError(t, json.Unmarshal(back.Body.Bytes(), &resp))
		require.Equal(t, 0, resp.Rotation, "Piece already arrives vertical")
	})

	t.Run("rejects unknown pieces", func(t *testing.T) {
		rec := post(t, h, MoveRequest{Piece: 9})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/findmove", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("only accepts POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/findmove", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	NewHandler(heuristic.Weights{}).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
