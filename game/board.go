package game

import "strings"

const (
	Width  = 10
	Height = 20
)

// Cell is the content of a single board square. Colors only tag which piece
// type locked there; game logic only ever tests for Empty.
type Cell uint8

const (
	Empty Cell = iota
	Teal
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
)

var cellChars = [...]byte{'.', 'I', 'J', 'L', 'O', 'S', 'T', 'Z'}

func (c Cell) Char() byte {
	if int(c) < len(cellChars) {
		return cellChars[c]
	}
	return '?'
}

// Board is indexed [row][column], row 0 being the top.
type Board [Height][Width]Cell

func (b *Board) Clear() {
	*b = Board{}
}

func (b *Board) Occupied(x, y int) bool {
	return b[y][x] != Empty
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Fits reports whether every cell of piece at pos lies inside the grid on an
// empty square.
func (b *Board) Fits(pos Position, piece Piece) bool {
	for _, o := range piece.Shape {
		x, y := pos.X+o.X, pos.Y+o.Y
		if !inBounds(x, y) || b.Occupied(x, y) {
			return false
		}
	}
	return true
}

// DropPos moves pos down one row at a time while piece still fits and returns
// the last position that did.
func (b *Board) DropPos(pos Position, piece Piece) Position {
	for {
		pos.Y++
		if !b.Fits(pos, piece) {
			pos.Y--
			return pos
		}
	}
}

// Lock writes the piece color into its four cells. The caller must have
// checked the placement fits.
func (b *Board) Lock(pos Position, piece Piece) {
	for _, o := range piece.Shape {
		b[pos.Y+o.Y][pos.X+o.X] = piece.Color
	}
}

// LockPiece returns a copy of board with piece locked at pos. The argument is
// left untouched.
func LockPiece(board Board, pos Position, piece Piece) Board {
	board.Lock(pos, piece)
	return board
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// PropagateLines clears every full row scanning top to bottom, shifting the
// rows above each cleared one down by one. It returns the number of cleared
// rows.
func PropagateLines(b *Board) int {
	cleared := 0
	for y := 0; y < Height; y++ {
		if !b.rowFull(y) {
			continue
		}
		cleared++
		copy(b[1:y+1], b[0:y])
		b[0] = [Width]Cell{}
	}
	return cleared
}

func (b Board) String() string {
	var sb strings.Builder
	for y := range b {
		for x := range b[y] {
			sb.WriteByte(b[y][x].Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
