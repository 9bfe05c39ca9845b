package heuristic

import (
	"fmt"
	"strings"

	"tetris/game"
)

// Weights scales each heuristic in the loss function.
type Weights [N]float64

// Loss is the weighted sum of all heuristics; lower is better.
func (w Weights) Loss(b *game.Board) float64 {
	loss := 0.0
	for i, h := range Heuristics {
		loss += w[i] * h(b)
	}
	return loss
}

func (w Weights) String() string {
	parts := make([]string, N)
	for i := range w {
		parts[i] = fmt.Sprintf("%s=%.4f", Names[i], w[i])
	}
	return "[" + strings.Join(parts, " ") + "]"
}
