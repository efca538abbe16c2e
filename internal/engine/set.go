package engine

import (
	"fmt"

	"github.com/yourusername/match-point/internal/models"
)

// setKey keys the set memo table by game counts and whose turn it is to
// serve the next game.
type setKey struct {
	gamesA, gamesB int
	server         models.Player
}

// setSolver solves P(player A wins the set) using each player's own hold
// probability. Serve alternates every game.
type setSolver struct {
	holdA, holdB float64
	gameCap      int
	tiebreakCap  int
	memo         map[setKey]float64
}

func newSetSolver(holdA, holdB float64, gameCap, tiebreakCap int) *setSolver {
	return &setSolver{
		holdA:       holdA,
		holdB:       holdB,
		gameCap:     gameCap,
		tiebreakCap: tiebreakCap,
		memo:        make(map[setKey]float64),
	}
}

// winProb is P(player A wins the set) from (gamesA, gamesB) with the given
// player serving next. A set is won outright at 6+ games with a 2-game
// margin; 6-6 enters a tiebreak.
func (s *setSolver) winProb(gamesA, gamesB int, server models.Player) float64 {
	key := setKey{gamesA, gamesB, server}
	if v, ok := s.memo[key]; ok {
		return v
	}
	if gamesA >= 6 && gamesA-gamesB >= 2 {
		return 1.0
	}
	if gamesB >= 6 && gamesB-gamesA >= 2 {
		return 0.0
	}
	if gamesA == 6 && gamesB == 6 {
		return tiebreakWinProb(s.holdA, s.tiebreakCap)
	}
	if gamesA > s.gameCap || gamesB > s.gameCap {
		if s.holdA > 0.5 {
			return s.holdA
		}
		return 1 - s.holdA
	}

	var result float64
	if server == models.PlayerA {
		result = s.holdA*s.winProb(gamesA+1, gamesB, models.PlayerB) +
			(1-s.holdA)*s.winProb(gamesA, gamesB+1, models.PlayerB)
	} else {
		result = s.holdB*s.winProb(gamesA, gamesB+1, models.PlayerA) +
			(1-s.holdB)*s.winProb(gamesA+1, gamesB, models.PlayerA)
	}
	s.memo[key] = result
	return result
}

// tiebreakWinProb solves the tiebreak (first to 7, 2-point margin) with
// player A's hold probability standing in for their per-point win rate. This
// is a deliberate simplification carried over from the reference model: a
// tiebreak actually alternates serve every 1-2 points.
func tiebreakWinProb(pPoint float64, pointCap int) float64 {
	memo := make(map[pointPair]float64)
	var prob func(a, b int) float64
	prob = func(a, b int) float64 {
		if v, ok := memo[pointPair{a, b}]; ok {
			return v
		}
		if a >= 7 && a-b >= 2 {
			return 1.0
		}
		if b >= 7 && b-a >= 2 {
			return 0.0
		}
		if a > pointCap || b > pointCap {
			return pPoint
		}
		result := pPoint*prob(a+1, b) + (1-pPoint)*prob(a, b+1)
		memo[pointPair{a, b}] = result
		return result
	}
	return prob(0, 0)
}

// SetResult is P(player A wins the current set).
type SetResult struct {
	PSetA float64 `json:"p_set_a"`
	Note  string  `json:"note"`
}

// SetWin computes the probability that player A wins the current set. The
// next server is derived from the parity of games played so far.
func (e *Engine) SetWin(state *models.MatchState) (SetResult, error) {
	if state.GamesInSetA == nil || state.GamesInSetB == nil {
		return SetResult{}, fmt.Errorf("games in current set unknown: %w", models.ErrMissingData)
	}
	holdA, err := e.holdProbabilityFor(state, models.PlayerA)
	if err != nil {
		return SetResult{}, err
	}
	holdB, err := e.holdProbabilityFor(state, models.PlayerB)
	if err != nil {
		return SetResult{}, err
	}

	gamesA, gamesB := *state.GamesInSetA, *state.GamesInSetB
	nextServer := nextServerByParity(gamesA + gamesB)

	solver := newSetSolver(holdA, holdB, e.cfg.SetGameCap, e.cfg.TiebreakPointCap)
	return SetResult{
		PSetA: solver.winProb(gamesA, gamesB, nextServer),
		Note:  "Using set-level Markov chain",
	}, nil
}

// nextServerByParity assumes player A served the first game of the set.
func nextServerByParity(gamesPlayed int) models.Player {
	if gamesPlayed%2 == 0 {
		return models.PlayerA
	}
	return models.PlayerB
}
