package engine

import (
	"fmt"

	"github.com/yourusername/match-point/internal/models"
)

// AdvancePoint returns the successor snapshot after the next point is won by
// the server (serverWon) or the receiver. The input state is never mutated.
// Handles deuce/advantage transitions, game and set rollover, tiebreak entry
// at 6-6 and serve alternation between games. Used to evaluate
// counterfactual match-win probabilities for leverage.
func AdvancePoint(state *models.MatchState, serverWon bool) (*models.MatchState, error) {
	if state.Server == nil {
		return nil, fmt.Errorf("current server unknown: %w", models.ErrMissingData)
	}
	if !state.IsCompleteForMatchProbability() {
		return nil, fmt.Errorf("snapshot incomplete for score advancement: %w", models.ErrMissingData)
	}

	next := state.Clone()
	winner := *state.Server
	if !serverWon {
		winner = winner.Opponent()
	}

	if next.IsTiebreak {
		advanceTiebreakPoint(next, winner)
		return next, nil
	}
	advanceGamePoint(next, winner)
	return next, nil
}

func advanceGamePoint(state *models.MatchState, winner models.Player) {
	winIdx, _ := state.PointScoreA.Index()
	loseIdx, _ := state.PointScoreB.Index()
	if winner == models.PlayerB {
		winIdx, loseIdx = loseIdx, winIdx
	}

	switch {
	case winIdx >= 3 && loseIdx >= 3:
		// Deuce territory: advantage converts, deuce moves to advantage,
		// opposing advantage resets to deuce.
		switch {
		case winIdx == 4:
			winGame(state, winner)
			return
		case loseIdx == 4:
			loseIdx = 3
		default:
			winIdx = 4
		}
	case winIdx == 3:
		winGame(state, winner)
		return
	default:
		winIdx++
	}

	if winner == models.PlayerA {
		setPointScores(state, winIdx, loseIdx)
	} else {
		setPointScores(state, loseIdx, winIdx)
	}
}

func advanceTiebreakPoint(state *models.MatchState, winner models.Player) {
	ptsA, ptsB := 0, 0
	if state.TiebreakPointsA != nil {
		ptsA = *state.TiebreakPointsA
	}
	if state.TiebreakPointsB != nil {
		ptsB = *state.TiebreakPointsB
	}
	if winner == models.PlayerA {
		ptsA++
	} else {
		ptsB++
	}

	if (ptsA >= 7 && ptsA-ptsB >= 2) || (ptsB >= 7 && ptsB-ptsA >= 2) {
		state.IsTiebreak = false
		state.TiebreakPointsA = nil
		state.TiebreakPointsB = nil
		winSet(state, winner)
		return
	}
	state.TiebreakPointsA = &ptsA
	state.TiebreakPointsB = &ptsB
}

func winGame(state *models.MatchState, winner models.Player) {
	games := state.GamesInSetA
	if winner == models.PlayerB {
		games = state.GamesInSetB
	}
	(*games)++
	setPointScores(state, 0, 0)
	flipServer(state)

	gamesA, gamesB := *state.GamesInSetA, *state.GamesInSetB
	switch {
	case gamesA >= 6 && gamesA-gamesB >= 2:
		winSet(state, models.PlayerA)
	case gamesB >= 6 && gamesB-gamesA >= 2:
		winSet(state, models.PlayerB)
	case gamesA == 6 && gamesB == 6:
		tbA, tbB := 0, 0
		state.IsTiebreak = true
		state.TiebreakPointsA = &tbA
		state.TiebreakPointsB = &tbB
	}
}

func winSet(state *models.MatchState, winner models.Player) {
	if winner == models.PlayerA {
		(*state.SetsWonA)++
	} else {
		(*state.SetsWonB)++
	}
	*state.GamesInSetA = 0
	*state.GamesInSetB = 0
	if state.CurrentSetNumber != nil {
		(*state.CurrentSetNumber)++
	}
}

func setPointScores(state *models.MatchState, idxA, idxB int) {
	scoreA := pointScoreFromIndex(idxA)
	scoreB := pointScoreFromIndex(idxB)
	state.PointScoreA = &scoreA
	state.PointScoreB = &scoreB
}

func pointScoreFromIndex(idx int) models.PointScore {
	switch idx {
	case 0:
		return models.PointScoreLove
	case 1:
		return models.PointScoreFifteen
	case 2:
		return models.PointScoreThirty
	case 3:
		return models.PointScoreForty
	default:
		return models.PointScoreAdvantage
	}
}

func flipServer(state *models.MatchState) {
	server := state.Server.Opponent()
	state.Server = &server
}

// CounterfactualMatchWin computes P(player A wins the match) one hypothetical
// point ahead: the swing between the two outcomes is the leverage of the
// point about to be played.
func (e *Engine) CounterfactualMatchWin(state *models.MatchState, serverWon bool) (float64, error) {
	next, err := AdvancePoint(state, serverWon)
	if err != nil {
		return 0, err
	}
	if *next.SetsWonA >= state.BestOfSets/2+1 {
		return 1.0, nil
	}
	if *next.SetsWonB >= state.BestOfSets/2+1 {
		return 0.0, nil
	}
	result, err := e.MatchWin(next)
	if err != nil {
		return 0, err
	}
	return result.PMatchA, nil
}
