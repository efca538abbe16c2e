package engine

import (
	"fmt"

	"github.com/yourusername/match-point/internal/models"
)

// BlendedServeWinPctFor computes the given player's serve-point-win
// probability blended with the generic prior: w*live + (1-w)*prior. When the
// live value is undefined the prior is returned unchanged.
func BlendedServeWinPctFor(state *models.MatchState, player models.Player) float64 {
	live, ok := state.Profile(player).ServePointWinPct()
	if !ok {
		return state.GenericPriorServePointWin
	}
	w := state.BlendingWeightLive
	return w*live + (1-w)*state.GenericPriorServePointWin
}

// BlendedServerWinPct resolves the current server and returns their blended
// serve-point-win probability.
func BlendedServerWinPct(state *models.MatchState) (float64, error) {
	if state.Server == nil {
		return 0, fmt.Errorf("current server unknown: %w", models.ErrMissingData)
	}
	return BlendedServeWinPctFor(state, *state.Server), nil
}

// NextPointResult gives both players' probability of winning the next point,
// framed relative to whoever currently serves.
type NextPointResult struct {
	PServer   float64 `json:"p_server"`
	PReceiver float64 `json:"p_receiver"`
	Note      string  `json:"note"`
}

// NextPoint computes P(server wins next point) and its complement.
func (e *Engine) NextPoint(state *models.MatchState) (NextPointResult, error) {
	pServer, err := BlendedServerWinPct(state)
	if err != nil {
		return NextPointResult{}, fmt.Errorf("missing server stats: %w", models.ErrMissingData)
	}
	return NextPointResult{
		PServer:   pServer,
		PReceiver: 1 - pServer,
		Note:      "Based on current server's serve performance",
	}, nil
}

// rawServeWinPct is the unblended live serve-point-win rate used by the set
// and forecast solvers. Hold probabilities for hypothetical future games use
// the observed rate directly.
func rawServeWinPct(state *models.MatchState, player models.Player) (float64, error) {
	pct, ok := state.Profile(player).ServePointWinPct()
	if !ok {
		return 0, fmt.Errorf("serve stats for %s: %w", state.PlayerName(player), models.ErrMissingData)
	}
	return pct, nil
}
