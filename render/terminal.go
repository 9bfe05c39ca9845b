package render

import (
	"fmt"
	"io"
	"strings"

	"tetris/game"
)

const (
	strEmptyCell = " ."
	strGhostCell = " :"
	strPieceCell = "[]"
)

// Terminal writes the board as text, drawing the active piece, its ghost
// and the score.
type Terminal struct {
	w io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Draw(state *game.GameState) error {
	_, err := io.WriteString(t.w, Frame(state))
	if err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	return nil
}

// Frame renders a single text frame of the game.
func Frame(state *game.GameState) string {
	var cells [game.Height][game.Width]string
	for y := range cells {
		for x := range cells[y] {
			if c := state.Board[y][x]; c != game.Empty {
				cells[y][x] = " " + string(c.Char())
			} else {
				cells[y][x] = strEmptyCell
			}
		}
	}
	if !state.Over {
		overlay(&cells, state.Ghost, state.Current, strGhostCell)
		overlay(&cells, state.Pos, state.Current, strPieceCell)
	}

	var sb strings.Builder
	sb.WriteString(" " + strings.Repeat("__", game.Width) + "\n")
	for y := range cells {
		sb.WriteString("|" + strings.Join(cells[y][:], "") + "|")
		if y == 0 {
			fmt.Fprintf(&sb, "  score %d", state.Score)
		}
		if y == 1 && state.Over {
			sb.WriteString("  game over")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" " + strings.Repeat("‾‾", game.Width) + "\n")
	return sb.String()
}

func overlay(cells *[game.Height][game.Width]string, pos game.Position, piece game.Piece, s string) {
	for _, o := range piece.Shape {
		x, y := pos.X+o.X, pos.Y+o.Y
		if x >= 0 && x < game.Width && y >= 0 && y < game.Height {
			cells[y][x] = s
		}
	}
}
