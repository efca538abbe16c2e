package engine

import (
	"fmt"

	"github.com/yourusername/match-point/internal/models"
)

type setsKey struct {
	setsA, setsB int
}

// matchSolver solves P(player A wins the match) over set counts. The per-set
// probability is held constant for the remainder of the match: it is the set
// probability evaluated at the current game/set position, not re-derived for
// hypothetical future sets. Set counts are naturally small, so no depth cap
// is needed.
type matchSolver struct {
	pSetA     float64
	setsToWin int
	memo      map[setsKey]float64
}

func newMatchSolver(pSetA float64, bestOfSets int) *matchSolver {
	return &matchSolver{
		pSetA:     pSetA,
		setsToWin: bestOfSets/2 + 1,
		memo:      make(map[setsKey]float64),
	}
}

func (m *matchSolver) winProb(setsA, setsB int) float64 {
	key := setsKey{setsA, setsB}
	if v, ok := m.memo[key]; ok {
		return v
	}
	if setsA >= m.setsToWin {
		return 1.0
	}
	if setsB >= m.setsToWin {
		return 0.0
	}
	result := m.pSetA*m.winProb(setsA+1, setsB) + (1-m.pSetA)*m.winProb(setsA, setsB+1)
	m.memo[key] = result
	return result
}

// MatchResult is P(player A wins the match).
type MatchResult struct {
	PMatchA float64 `json:"p_match_a"`
	Note    string  `json:"note"`
}

// MatchWin computes the probability that player A wins the match from the
// current set count.
func (e *Engine) MatchWin(state *models.MatchState) (MatchResult, error) {
	if state.SetsWonA == nil || state.SetsWonB == nil {
		return MatchResult{}, fmt.Errorf("sets won unknown: %w", models.ErrMissingData)
	}
	setResult, err := e.SetWin(state)
	if err != nil {
		return MatchResult{}, fmt.Errorf("cannot compute set win probability: %w", err)
	}

	solver := newMatchSolver(setResult.PSetA, state.BestOfSets)
	return MatchResult{
		PMatchA: solver.winProb(*state.SetsWonA, *state.SetsWonB),
		Note:    "Using match-level Markov chain",
	}, nil
}
