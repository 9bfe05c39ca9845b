package agent

import "tetris/game"

// Agent is a decision procedure that the game loop asks for one input per
// step. Returning false leaves the choice to the loop.
type Agent interface {
	Action(state *game.GameState) (game.Action, bool)
}
