package searcher

import (
	"tetris/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// WithMetrics records the number of searches and evaluated placements.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Searcher enumerates every reachable placement of the active piece and
// recommends the next input towards the best one.
type Searcher struct {
	metrics MetricsCollector
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{metrics: NewNoMetricsCollector()}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Metrics() SearchMetrics {
	return s.metrics.Complete()
}

// FindPlacement tries the four rotations of the current piece in every
// column that keeps it inside the board, hard-drops each onto a copy of the
// board and returns the lowest loss. Ties keep the first placement found.
func (s *Searcher) FindPlacement(state *game.GameState, loss Loss) Placement {
	s.metrics.AddSearch()

	piece := state.Current
	best := Placement{Rotation: 0, Pos: state.Pos, Drop: state.Pos, Piece: piece, Loss: initialLoss}

	for rotation := 0; rotation < rotations; rotation++ {
		xmin, xmax := piece.XBounds()
		for x := -xmin; x < game.Width-xmax; x++ {
			pos := game.Position{X: x, Y: state.Pos.Y}
			if !state.IsValidMove(pos, piece) {
				continue
			}
			drop := state.CalcDropPos(pos, piece)
			board := game.LockPiece(state.Board, drop, piece)
			score := loss(&board)
			s.metrics.AddPlacement()
			if score < best.Loss {
				best = Placement{Rotation: rotation, Pos: pos, Drop: drop, Piece: piece, Loss: score}
			}
		}
		if rotation < rotations-1 {
			piece.Rotate()
		}
	}

	log.Debug().Msgf("best placement rotation=%d x=%d loss=%.2f", best.Rotation, best.Pos.X, best.Loss)
	return best
}

// PickAction returns the single input that moves the active piece one step
// towards the best placement. It reports false once the piece is aligned.
func (s *Searcher) PickAction(state *game.GameState, loss Loss) (game.Action, bool) {
	return ActionFor(state, s.FindPlacement(state, loss))
}

// ActionFor converts a placement into the next input for the live piece.
func ActionFor(state *game.GameState, best Placement) (game.Action, bool) {
	if best.Rotation > 0 {
		return game.Rotate, true
	}
	switch {
	case best.Pos.X < state.Pos.X:
		return game.Left, true
	case best.Pos.X > state.Pos.X:
		return game.Right, true
	default:
		return game.None, false
	}
}

var defaultSearcher = NewSearcher()

func FindPlacement(state *game.GameState, loss Loss) Placement {
	return defaultSearcher.FindPlacement(state, loss)
}

func PickAction(state *game.GameState, loss Loss) (game.Action, bool) {
	return defaultSearcher.PickAction(state, loss)
}
