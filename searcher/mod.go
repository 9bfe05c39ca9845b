package searcher

import "tetris/game"

// Loss scores a hypothetical board after a placement; lower is better.
type Loss func(b *game.Board) float64

// initialLoss is the loss of the fallback placement. Any evaluated
// placement scoring below it replaces the fallback.
const initialLoss = 1e9

const rotations = 4

// Placement is a candidate landing spot for the active piece.
type Placement struct {
	Rotation int           // Number of clockwise turns from the current orientation
	Pos      game.Position // Start column and row, before the drop
	Drop     game.Position // Where the piece locks
	Piece    game.Piece    // The piece rotated Rotation times
	Loss     float64
}
