package heuristic

import "tetris/game"

// N is the number of board heuristics, and the length of a weight vector.
const N = 4

// Func scores a board. Higher values describe a worse board.
type Func func(b *game.Board) float64

// Heuristics is the ordered list of terms in the loss function.
var Heuristics = [N]Func{
	SurfaceRoughness,
	Height,
	LineCompletion,
	CeilingGaps,
}

var Names = [N]string{"roughness", "height", "lines", "gaps"}

// topRow returns the index of the topmost occupied cell in column x, or
// game.Height for an empty column.
func topRow(b *game.Board, x int) int {
	for y := 0; y < game.Height; y++ {
		if b.Occupied(x, y) {
			return y
		}
	}
	return game.Height
}

// SurfaceRoughness sums the absolute difference between the tops of each
// pair of adjacent columns.
func SurfaceRoughness(b *game.Board) float64 {
	total := 0
	prev := topRow(b, 0)
	for x := 1; x < game.Width; x++ {
		curr := topRow(b, x)
		total += abs(curr - prev)
		prev = curr
	}
	return float64(total)
}

// Height is the height above the floor of the highest occupied cell.
func Height(b *game.Board) float64 {
	for y := 0; y < game.Height; y++ {
		for x := 0; x < game.Width; x++ {
			if b.Occupied(x, y) {
				return float64(game.Height - y)
			}
		}
	}
	return 0
}

// LineCompletion counts rows with no empty cell.
func LineCompletion(b *game.Board) float64 {
	lines := 0
	for y := 0; y < game.Height; y++ {
		full := true
		for x := 0; x < game.Width; x++ {
			if !b.Occupied(x, y) {
				full = false
				break
			}
		}
		if full {
			lines++
		}
	}
	return float64(lines)
}

// CeilingGaps counts, for every occupied cell, the empty cells directly
// below it down to the next occupied cell or the floor.
func CeilingGaps(b *game.Board) float64 {
	total := 0
	for y := 0; y < game.Height-1; y++ {
		for x := 0; x < game.Width; x++ {
			if !b.Occupied(x, y) {
				continue
			}
			for yy := y + 1; yy < game.Height && !b.Occupied(x, yy); yy++ {
				total++
			}
		}
	}
	return float64(total)
}

// Evaluate applies every heuristic to b.
func Evaluate(b *game.Board) [N]float64 {
	var out [N]float64
	for i, h := range Heuristics {
		out[i] = h(b)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
