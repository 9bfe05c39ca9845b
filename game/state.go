package game

import (
	"tetris/utils"

	"github.com/kamstrup/intmap"
	"golang.org/x/exp/rand"
)

const (
	DropTicks      = 144 // Ticks between gravity steps
	RepeatTicks    = 24  // Ticks before a held movement key repeats
	SpawnOffset    = 2
	LineClearBonus = 100
	PlacementBonus = 1
)

// SpawnPos is where every new piece enters the board.
var SpawnPos = Position{X: Width/2 - 2, Y: SpawnOffset}

// GameState is the mutable simulation owned by a single game loop. It is
// not safe for concurrent use.
type GameState struct {
	Current   Piece
	Next      Piece
	Pos       Position
	Ghost     Position
	Board     Board
	DropCount uint64
	SubCount  uint64
	Score     uint32
	Placed    uint32 // Pieces locked this game
	Over      bool

	held *intmap.Map[Action, bool]
	rng  *rand.Rand
}

// NewGameState returns a fresh game seeded from system entropy.
func NewGameState() *GameState {
	return NewGameStateWithRand(utils.NewRand())
}

// NewGameStateWithRand returns a fresh game drawing pieces from r.
func NewGameStateWithRand(r *rand.Rand) *GameState {
	s := &GameState{
		held: intmap.New[Action, bool](8),
		rng:  r,
	}
	s.Reset()
	return s
}

// Reset returns every field to its initial value so the state can be reused
// for another game. The piece generator keeps advancing.
func (s *GameState) Reset() {
	s.Current = RandomPiece(s.rng)
	s.Next = RandomPiece(s.rng)
	s.Pos = SpawnPos
	s.Ghost = Position{}
	s.Board.Clear()
	s.DropCount = 0
	s.SubCount = 0
	s.held.Clear()
	s.Score = 0
	s.Placed = 0
	s.Over = false
}

func (s *GameState) IsValidMove(pos Position, piece Piece) bool {
	return s.Board.Fits(pos, piece)
}

func (s *GameState) CalcDropPos(pos Position, piece Piece) Position {
	return s.Board.DropPos(pos, piece)
}

func (s *GameState) LockCurrent() {
	s.Board.Lock(s.Pos, s.Current)
}

// PropagateLines clears full rows and adds the line bonus for each.
func (s *GameState) PropagateLines() int {
	n := PropagateLines(&s.Board)
	s.Score += uint32(n) * LineClearBonus
	return n
}

// Held reports whether the debounce map currently marks a as held.
func (s *GameState) Held(a Action) bool {
	v, _ := s.held.Get(a)
	return v
}

func (s *GameState) MoveCurrent(dx, dy int) {
	pos := Position{X: s.Pos.X + dx, Y: s.Pos.Y + dy}
	if s.IsValidMove(pos, s.Current) {
		s.Pos = pos
	}
}

func (s *GameState) RotateCurrent() {
	piece := s.Current
	piece.Rotate()
	if s.IsValidMove(s.Pos, piece) {
		s.Current = piece
	}
}

// DropCurrent hard-drops the active piece and fast-forwards the drop counter
// so that the next tick locks it.
func (s *GameState) DropCurrent() {
	s.Pos = s.CalcDropPos(s.Pos, s.Current)
	s.DropCount += DropTicks - s.DropCount%DropTicks - 1
}

func (s *GameState) spawn() {
	s.Current = s.Next
	s.Next = RandomPiece(s.rng)
	s.Pos = SpawnPos
}

// Update advances the simulation by one tick using the commands held in in.
func (s *GameState) Update(in Input) {
	if s.Over || !s.IsValidMove(s.Pos, s.Current) {
		s.Over = true
		return
	}

	s.DropCount++
	s.SubCount++

	dropTick := s.DropCount%DropTicks == 0
	if s.SubCount%RepeatTicks == 0 {
		s.held.Put(Left, false)
		s.held.Put(Right, false)
		if !dropTick {
			s.held.Put(SoftDrop, false)
		}
	}

	if dropTick {
		down := Position{X: s.Pos.X, Y: s.Pos.Y + 1}
		if s.IsValidMove(down, s.Current) {
			s.Pos = down
		} else {
			s.LockCurrent()
			s.spawn()
			s.PropagateLines()
			s.Score += PlacementBonus
			s.Placed++
		}
	}

	s.handle(in, Rotate, s.RotateCurrent)
	s.handle(in, Left, func() { s.MoveCurrent(-1, 0) })
	s.handle(in, Right, func() { s.MoveCurrent(1, 0) })
	s.handle(in, SoftDrop, func() { s.MoveCurrent(0, 1) })
	s.handle(in, HardDrop, s.DropCurrent)

	s.Ghost = s.CalcDropPos(s.Pos, s.Current)
}

// handle fires fn once per press of a; holding the key does nothing until
// it is released or the repeat timer clears it.
func (s *GameState) handle(in Input, a Action, fn func()) {
	if !in.IsPressed(a) {
		s.held.Put(a, false)
		return
	}
	if s.Held(a) {
		return
	}
	s.held.Put(a, true)
	fn()
	s.SubCount = 0
}
