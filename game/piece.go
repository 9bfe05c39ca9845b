package game

import "golang.org/x/exp/rand"

// Offset is a cell of a piece shape relative to the piece anchor.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Position locates a piece anchor on the board as (column, row).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Piece struct {
	Color  Cell
	Shape  [4]Offset
	Center [2]float64
}

// Pieces holds the seven canonical tetrominoes in spawn orientation.
var Pieces = [7]Piece{
	{Color: Teal, Shape: [4]Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Center: [2]float64{2, 1}},
	{Color: Blue, Shape: [4]Offset{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, Center: [2]float64{1, 1}},
	{Color: Orange, Shape: [4]Offset{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, Center: [2]float64{2, 1}},
	{Color: Yellow, Shape: [4]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Center: [2]float64{1, 1}},
	{Color: Green, Shape: [4]Offset{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, Center: [2]float64{1, 1}},
	{Color: Purple, Shape: [4]Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, Center: [2]float64{1, 1}},
	{Color: Red, Shape: [4]Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, Center: [2]float64{1, 1}},
}

func NewPiece(i int) Piece {
	return Pieces[i]
}

func RandomPiece(r *rand.Rand) Piece {
	return Pieces[r.Intn(len(Pieces))]
}

// Rotate turns the shape 90 degrees about Center in place. Rotated
// coordinates are truncated toward zero, so shapes with a fractional center
// can drift after repeated rotations.
func (p *Piece) Rotate() {
	cx, cy := p.Center[0], p.Center[1]
	for i, o := range p.Shape {
		x := float64(o.X) - cx
		y := float64(o.Y) - cy
		x, y = -y, x
		p.Shape[i] = Offset{X: int(x + cx), Y: int(y + cy)}
	}
}

// XBounds returns the minimum and maximum column offsets of the shape.
func (p Piece) XBounds() (int, int) {
	xmin, xmax := p.Shape[0].X, p.Shape[0].X
	for _, o := range p.Shape[1:] {
		xmin = min(xmin, o.X)
		xmax = max(xmax, o.X)
	}
	return xmin, xmax
}
