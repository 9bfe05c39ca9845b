package engine

import (
	"fmt"

	"tetris/agent"
	"tetris/game"
	"tetris/render"

	"github.com/rs/zerolog/log"
)

// Engine drives one agent through games on a single, reused state.
type Engine struct {
	State    *game.GameState
	Agent    agent.Agent
	Renderer render.Renderer
	Draw     render.DrawConfig
	// MaxPieces ends a game after that many locked pieces; zero plays until
	// the board tops out.
	MaxPieces uint32
}

func New(state *game.GameState, a agent.Agent, r render.Renderer, draw render.DrawConfig) *Engine {
	if r == nil {
		r = render.Nop
	}
	return &Engine{
		State:    state,
		Agent:    a,
		Renderer: r,
		Draw:     draw,
	}
}

// Headless returns an engine on a fresh state that never draws.
func Headless(a agent.Agent) *Engine {
	return New(game.NewGameState(), a, render.Nop, render.DrawNone)
}

func (e *Engine) done() bool {
	return e.State.Over || (e.MaxPieces > 0 && e.State.Placed >= e.MaxPieces)
}

// Step asks the agent for an action, feeds it to the game for one tick as a
// key press, releases it on the following tick and draws if configured.
// Without an action the piece is hard-dropped.
func (e *Engine) Step() error {
	action, ok := e.Agent.Action(e.State)
	if !ok {
		action = game.HardDrop
	}

	e.State.Update(game.Press(action))
	e.State.Update(game.NoInput)

	if e.Draw.ShouldDraw(e.State.DropCount) {
		if err := e.Renderer.Draw(e.State); err != nil {
			return fmt.Errorf("failed to render tick %d: %w", e.State.DropCount, err)
		}
	}
	return nil
}

// Run plays the current game until it is over.
func (e *Engine) Run() error {
	for !e.done() {
		if err := e.Step(); err != nil {
			return err
		}
	}
	log.Debug().Msgf("game over with score %d after %d pieces", e.State.Score, e.State.Placed)
	return nil
}

// Evaluate plays n games from a reset state and returns their mean score.
func (e *Engine) Evaluate(n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("evaluation needs at least one game, got %d", n)
	}

	total := 0.0
	e.State.Reset()
	for i := 0; i < n; i++ {
		if err := e.Run(); err != nil {
			return 0, fmt.Errorf("failed to play game %d of %d: %w", i+1, n, err)
		}
		total += float64(e.State.Score)
		e.State.Reset()
	}
	return total / float64(n), nil
}
