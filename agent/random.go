package agent

import (
	"tetris/game"
	"tetris/utils"

	"golang.org/x/exp/rand"
)

var randomActions = [...]game.Action{game.Left, game.Right, game.Rotate, game.SoftDrop}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent pressing a uniformly random movement key
// every step.
func NewRandomAgent() Agent {
	return NewRandomAgentWithRand(utils.NewRand())
}

func NewRandomAgentWithRand(r *rand.Rand) Agent {
	return &randomAgent{rng: r}
}

func (a *randomAgent) Action(*game.GameState) (game.Action, bool) {
	return randomActions[a.rng.Intn(len(randomActions))], true
}
