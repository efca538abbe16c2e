package engine

import (
	"fmt"

	"github.com/yourusername/match-point/internal/models"
)

var pointLabels = map[int]string{0: "0", 1: "15", 2: "30", 3: "40"}

func pointLabel(idx int) string {
	if label, ok := pointLabels[idx]; ok {
		return label
	}
	return fmt.Sprintf("%d", idx)
}

// scoreLabel renders a (server, receiver) point pair as a tennis score,
// collapsing the deuce region into Deuce / Advantage labels.
func scoreLabel(s, r int) string {
	if s < 3 || r < 3 {
		return fmt.Sprintf("%s-%s", pointLabel(s), pointLabel(r))
	}
	switch {
	case s == r:
		return "Deuce"
	case s > r:
		return "Advantage Server"
	default:
		return "Advantage Receiver"
	}
}

// GameOutcomesResult enumerates the reachable intermediate scores of the
// current game with their exact probabilities, plus the probability of
// reaching deuce.
type GameOutcomesResult struct {
	Outcomes map[string]float64 `json:"outcomes"`
	PDeuce   float64            `json:"p_deuce"`
	Note     string             `json:"note"`
}

// GameOutcomes enumerates every reachable intermediate score pair of the
// current game (both counts 0..4, invalid terminals excluded) and its exact
// reach probability, keeping only scores above the report threshold.
// P(deuce) is the probability of reaching 3-3.
func (e *Engine) GameOutcomes(state *models.MatchState) (GameOutcomesResult, error) {
	if state.IsTiebreak {
		return GameOutcomesResult{}, fmt.Errorf("current game is a tiebreak: %w", models.ErrMissingData)
	}
	pServer, err := BlendedServerWinPct(state)
	if err != nil {
		return GameOutcomesResult{}, fmt.Errorf("missing server stats: %w", models.ErrMissingData)
	}

	server := *state.Server
	serverName := state.PlayerName(server)
	receiverName := state.PlayerName(server.Opponent())
	sIdx, rIdx := e.currentPointIndices(state)

	enum := &gameEnumerator{p: pServer, cap: e.cfg.GamePointCap}
	outcomes := make(map[string]float64)
	for targetS := 0; targetS <= 4; targetS++ {
		for targetR := 0; targetR <= 4; targetR++ {
			if targetS >= 4 && targetS-targetR < 2 {
				continue
			}
			if targetR >= 4 && targetR-targetS < 2 {
				continue
			}
			prob := enum.reachProb(sIdx, rIdx, targetS, targetR)
			if prob > e.cfg.ScoreReportThreshold {
				label := fmt.Sprintf("%s %s %s", serverName, scoreLabel(targetS, targetR), receiverName)
				outcomes[label] = prob
			}
		}
	}

	return GameOutcomesResult{
		Outcomes: outcomes,
		PDeuce:   enum.deuceProb(sIdx, rIdx),
		Note:     "All possible game outcomes from current score",
	}, nil
}

// gameEnumerator walks the game tree to compute reach probabilities for
// individual score pairs. The target space is tiny, so each query recurses
// without a shared memo.
type gameEnumerator struct {
	p   float64
	cap int
}

// reachProb is the probability that the game passes through the target score
// when started from (s, r).
func (g *gameEnumerator) reachProb(s, r, targetS, targetR int) float64 {
	if s == targetS && r == targetR {
		return 1.0
	}
	if s > targetS || r > targetR {
		return 0.0
	}
	if (s >= 4 && s-r >= 2) || (r >= 4 && r-s >= 2) {
		return 0.0
	}
	if s > g.cap || r > g.cap {
		return 0.0
	}
	return g.p*g.reachProb(s+1, r, targetS, targetR) +
		(1-g.p)*g.reachProb(s, r+1, targetS, targetR)
}

// deuceProb is the probability of reaching 3-3 from (s, r).
func (g *gameEnumerator) deuceProb(s, r int) float64 {
	if s == 3 && r == 3 {
		return 1.0
	}
	if s >= 4 || r >= 4 {
		return 0.0
	}
	if s > g.cap || r > g.cap {
		return 0.0
	}
	return g.p*g.deuceProb(s+1, r) + (1-g.p)*g.deuceProb(s, r+1)
}
