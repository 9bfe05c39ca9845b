package render

import (
	"fmt"

	"tetris/game"
)

// Renderer presents the current game. Implementations may ignore calls
// entirely, as headless training does.
type Renderer interface {
	Draw(state *game.GameState) error
}

type Mode int

const (
	AllFrames Mode = iota
	NoFrames
	EveryNFrames
)

// DrawConfig selects on which ticks the game loop calls the renderer.
type DrawConfig struct {
	Mode Mode
	N    uint64 // Tick interval for EveryNFrames
}

var (
	DrawAll  = DrawConfig{Mode: AllFrames}
	DrawNone = DrawConfig{Mode: NoFrames}
)

func DrawEvery(n uint64) DrawConfig {
	return DrawConfig{Mode: EveryNFrames, N: n}
}

// ShouldDraw reports whether the frame at tick is drawn.
func (c DrawConfig) ShouldDraw(tick uint64) bool {
	switch c.Mode {
	case AllFrames:
		return true
	case EveryNFrames:
		return c.N > 0 && tick%c.N == 0
	default:
		return false
	}
}

// ParseDrawConfig reads the -draw and -every command line flags.
func ParseDrawConfig(mode string, every uint64) (DrawConfig, error) {
	switch mode {
	case "all":
		return DrawAll, nil
	case "none":
		return DrawNone, nil
	case "every":
		if every == 0 {
			return DrawConfig{}, fmt.Errorf("draw mode %q needs a positive interval", mode)
		}
		return DrawEvery(every), nil
	default:
		return DrawConfig{}, fmt.Errorf("unknown draw mode %q", mode)
	}
}

type nop struct{}

func (nop) Draw(*game.GameState) error { return nil }

// Nop discards every frame.
var Nop Renderer = nop{}

// Headless is the environment used by training.
func Headless() (Renderer, error) {
	return Nop, nil
}
