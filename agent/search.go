package agent

import (
	"tetris/game"
	"tetris/heuristic"
	"tetris/searcher"
)

// SearchAgent steers the active piece towards the placement minimizing its
// weighted heuristic loss.
type SearchAgent struct {
	Weights  heuristic.Weights
	searcher *searcher.Searcher
}

func NewSearchAgent(weights heuristic.Weights, options ...searcher.Option) *SearchAgent {
	return &SearchAgent{
		Weights:  weights,
		searcher: searcher.NewSearcher(options...),
	}
}

func (a *SearchAgent) Action(state *game.GameState) (game.Action, bool) {
	return a.searcher.PickAction(state, a.Weights.Loss)
}

// Metrics returns the search counters collected so far, if enabled.
func (a *SearchAgent) Metrics() searcher.SearchMetrics {
	return a.searcher.Metrics()
}
