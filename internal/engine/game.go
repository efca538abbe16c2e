package engine

import (
	"fmt"

	"github.com/yourusername/match-point/internal/models"
)

// pointPair keys the game memo table by (server points, receiver points).
type pointPair struct {
	s, r int
}

// gameSolver solves "who wins the current game" exactly for a fixed per-point
// server-win probability. The memo table is scoped to one solver instance and
// discarded with it.
type gameSolver struct {
	p    float64
	cap  int
	memo map[pointPair]float64
}

func newGameSolver(p float64, pointCap int) *gameSolver {
	return &gameSolver{p: p, cap: pointCap, memo: make(map[pointPair]float64)}
}

// winProb is P(server wins the game) from point counts (s, r). A game is won
// at 4+ points with a 2-point margin; deuce and advantage fall out of the
// margin rule. Counts beyond the cap are probabilistically negligible and
// resolved with a static approximation rather than deeper recursion.
func (g *gameSolver) winProb(s, r int) float64 {
	if v, ok := g.memo[pointPair{s, r}]; ok {
		return v
	}
	if s >= 4 && s-r >= 2 {
		return 1.0
	}
	if r >= 4 && r-s >= 2 {
		return 0.0
	}
	if s > g.cap || r > g.cap {
		if g.p > 0.5 {
			return g.p
		}
		return 1 - g.p
	}
	result := g.p*g.winProb(s+1, r) + (1-g.p)*g.winProb(s, r+1)
	g.memo[pointPair{s, r}] = result
	return result
}

// HoldProbability is the probability that a server with per-point win rate p
// holds a game from love-all.
func (e *Engine) HoldProbability(p float64) float64 {
	return newGameSolver(p, e.cfg.GamePointCap).winProb(0, 0)
}

// holdProbabilityFor computes a player's hold probability from their live
// serve-point-win rate.
func (e *Engine) holdProbabilityFor(state *models.MatchState, player models.Player) (float64, error) {
	pct, err := rawServeWinPct(state, player)
	if err != nil {
		return 0, err
	}
	return e.HoldProbability(pct), nil
}

// GameResult carries hold/break probabilities for the game in progress and,
// for display, the most likely final score labels from simulation.
type GameResult struct {
	PHold        float64            `json:"p_hold"`
	PBreak       float64            `json:"p_break"`
	LikelyScores map[string]float64 `json:"likely_scores"`
	Note         string             `json:"note"`
}

// CurrentGame computes the exact hold/break probability for the game in
// progress, from today's point score. Undefined during a tiebreak or when the
// server's rate cannot be established.
func (e *Engine) CurrentGame(state *models.MatchState) (GameResult, error) {
	if state.IsTiebreak {
		return GameResult{}, fmt.Errorf("current game is a tiebreak: %w", models.ErrMissingData)
	}
	pServer, err := BlendedServerWinPct(state)
	if err != nil {
		return GameResult{}, fmt.Errorf("missing server stats: %w", models.ErrMissingData)
	}

	sIdx, rIdx := e.currentPointIndices(state)
	pHold := newGameSolver(pServer, e.cfg.GamePointCap).winProb(sIdx, rIdx)

	rng := e.newRNG()
	scores := e.simulateGameScores(rng, pServer, sIdx, rIdx, e.cfg.GameScoreTrials)

	return GameResult{
		PHold:        pHold,
		PBreak:       1 - pHold,
		LikelyScores: scores,
		Note:         "Using Markov chain for exact game probability",
	}, nil
}

// currentPointIndices maps the snapshot point scores to server/receiver rank
// indices, defaulting to love when absent.
func (e *Engine) currentPointIndices(state *models.MatchState) (int, int) {
	idxA, idxB := 0, 0
	if state.PointScoreA != nil {
		if idx, ok := state.PointScoreA.Index(); ok {
			idxA = idx
		}
	}
	if state.PointScoreB != nil {
		if idx, ok := state.PointScoreB.Index(); ok {
			idxB = idx
		}
	}
	if state.Server != nil && *state.Server == models.PlayerB {
		return idxB, idxA
	}
	return idxA, idxB
}
