package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, c Cell) {
	for x := range b[y] {
		b[y][x] = c
	}
}

func TestBoardFits(t *testing.T) {
	piece := NewPiece(0) // I, horizontal

	t.Run("empty board inside bounds", func(t *testing.T) {
		var b Board
		require.True(t, b.Fits(Position{X: 0, Y: 0}, piece), "Top left corner should fit")
		require.True(t, b.Fits(Position{X: Width - 4, Y: Height - 1}, piece), "Bottom right corner should fit")
	})

	t.Run("outside bounds", func(t *testing.T) {
		var b Board
		require.False(t, b.Fits(Position{X: -1, Y: 5}, piece), "Left of the grid")
		require.False(t, b.Fits(Position{X: Width - 3, Y: 5}, piece), "Right of the grid")
		require.False(t, b.Fits(Position{X: 3, Y: Height}, piece), "Below the floor")
		require.False(t, b.Fits(Position{X: 3, Y: -1}, piece), "Above the ceiling")
	})

	t.Run("overlapping a locked cell", func(t *testing.T) {
		var b Board
		b[10][5] = Red
		require.False(t, b.Fits(Position{X: 3, Y: 10}, piece), "Cell 5 of row 10 is occupied")
		require.True(t, b.Fits(Position{X: 3, Y: 9}, piece), "Row above is free")
		require.True(t, b.Fits(Position{X: 6, Y: 10}, piece), "Columns 6-9 are free")
	})

	t.Run("state delegates to the board", func(t *testing.T) {
		s := newTestState()
		s.Board[SpawnPos.Y][SpawnPos.X] = Blue
		require.False(t, s.IsValidMove(SpawnPos, NewPiece(0)))
	})
}

func TestBoardDropPos(t *testing.T) {
	t.Run("drop is valid and maximal for every piece", func(t *testing.T) {
		var b Board
		b[15][4] = Green
		b[18][0] = Green
		for i := range Pieces {
			piece := NewPiece(i)
			for r := 0; r < 4; r++ {
				xmin, xmax := piece.XBounds()
				for x := -xmin; x < Width-xmax; x++ {
					start := Position{X: x, Y: SpawnOffset}
					if !b.Fits(start, piece) {
						continue
					}
					got := b.DropPos(start, piece)
					require.True(t, b.Fits(got, piece), "Drop position should be valid")
					require.False(t, b.Fits(Position{X: got.X, Y: got.Y + 1}, piece), "One row lower should be invalid")
					require.Equal(t, x, got.X, "Drop should not change the column")
				}
				piece.Rotate()
			}
		}
	})

	t.Run("lands on the floor of an empty board", func(t *testing.T) {
		var b Board
		got := b.DropPos(Position{X: 0, Y: 0}, NewPiece(0))
		require.Equal(t, Position{X: 0, Y: Height - 1}, got)
	})
}

func TestLockPiece(t *testing.T) {
	var b Board
	piece := NewPiece(3) // O
	locked := LockPiece(b, Position{X: 4, Y: 18}, piece)

	require.Equal(t, Board{}, b, "Input board should be untouched")
	require.Equal(t, Yellow, locked[18][4])
	require.Equal(t, Yellow, locked[18][5])
	require.Equal(t, Yellow, locked[19][4])
	require.Equal(t, Yellow, locked[19][5])
}

func TestPropagateLines(t *testing.T) {
	t.Run("single full row", func(t *testing.T) {
		s := newTestState()
		const r = 15
		fillRow(&s.Board, r, Teal)
		s.Board[r-1][2] = Red
		s.Board[r-3][7] = Blue
		s.Board[r+2][1] = Green
		before := s.Board

		cleared := s.PropagateLines()

		require.Equal(t, 1, cleared)
		require.Equal(t, uint32(LineClearBonus), s.Score, "Score should increase by exactly one bonus")
		require.Equal(t, [Width]Cell{}, s.Board[0], "New top row should be empty")
		for y := 1; y <= r; y++ {
			require.Equal(t, before[y-1], s.Board[y], "Row %d should hold the previous row %d", y, y-1)
		}
		for y := r + 1; y < Height; y++ {
			require.Equal(t, before[y], s.Board[y], "Rows below the cleared row should not move")
		}
	})

	t.Run("several rows score without multiplier", func(t *testing.T) {
		s := newTestState()
		fillRow(&s.Board, 18, Teal)
		fillRow(&s.Board, 19, Teal)
		s.Board[17][0] = Purple

		cleared := s.PropagateLines()

		require.Equal(t, 2, cleared)
		require.Equal(t, uint32(2*LineClearBonus), s.Score)
		require.Equal(t, Purple, s.Board[19][0], "Remaining cell should fall to the floor")
		require.Equal(t, 1, countCells(s.Board))
	})

	t.Run("no full rows", func(t *testing.T) {
		var b Board
		b[19][0] = Red
		before := b
		require.Equal(t, 0, PropagateLines(&b))
		require.Equal(t, before, b)
	})
}

func countCells(b Board) int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

func TestCellChar(t *testing.T) {
	require.Equal(t, byte('.'), Empty.Char())
	require.Equal(t, byte('Z'), Red.Char())
	require.Equal(t, byte('?'), Cell(42).Char(), "Unknown cells should be marked")
}
