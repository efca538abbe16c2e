package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-point/internal/models"
)

func TestAdvancePointSimpleRally(t *testing.T) {
	state := newTestState() // A serving at 30-15

	next, err := AdvancePoint(state, true)
	require.NoError(t, err)
	assert.Equal(t, models.PointScoreForty, *next.PointScoreA)
	assert.Equal(t, models.PointScoreFifteen, *next.PointScoreB)
	assert.Equal(t, models.PlayerA, *next.Server)

	// Input state untouched.
	assert.Equal(t, models.PointScoreThirty, *state.PointScoreA)
}

func TestAdvancePointDeuceTransitions(t *testing.T) {
	state := newTestState()
	state.PointScoreA = scorePtr(models.PointScoreForty)
	state.PointScoreB = scorePtr(models.PointScoreForty)

	// Deuce, server wins -> advantage server.
	next, err := AdvancePoint(state, true)
	require.NoError(t, err)
	assert.Equal(t, models.PointScoreAdvantage, *next.PointScoreA)
	assert.Equal(t, models.PointScoreForty, *next.PointScoreB)

	// Advantage lost -> back to deuce.
	back, err := AdvancePoint(next, false)
	require.NoError(t, err)
	assert.Equal(t, models.PointScoreForty, *back.PointScoreA)
	assert.Equal(t, models.PointScoreForty, *back.PointScoreB)

	// Advantage converted -> game.
	won, err := AdvancePoint(next, true)
	require.NoError(t, err)
	assert.Equal(t, 4, *won.GamesInSetA)
	assert.Equal(t, models.PointScoreLove, *won.PointScoreA)
	assert.Equal(t, models.PointScoreLove, *won.PointScoreB)
	assert.Equal(t, models.PlayerB, *won.Server)
}

func TestAdvancePointGameWin(t *testing.T) {
	state := newTestState()
	state.PointScoreA = scorePtr(models.PointScoreForty)
	state.PointScoreB = scorePtr(models.PointScoreFifteen)

	next, err := AdvancePoint(state, true)
	require.NoError(t, err)
	assert.Equal(t, 4, *next.GamesInSetA)
	assert.Equal(t, 2, *next.GamesInSetB)
	assert.Equal(t, models.PlayerB, *next.Server)
}

func TestAdvancePointReceiverBreaks(t *testing.T) {
	state := newTestState()
	state.PointScoreA = scorePtr(models.PointScoreLove)
	state.PointScoreB = scorePtr(models.PointScoreForty)

	next, err := AdvancePoint(state, false)
	require.NoError(t, err)
	assert.Equal(t, 3, *next.GamesInSetA)
	assert.Equal(t, 3, *next.GamesInSetB)
}

func TestAdvancePointSetWin(t *testing.T) {
	state := newTestState()
	state.GamesInSetA = intPtr(5)
	state.GamesInSetB = intPtr(3)
	state.PointScoreA = scorePtr(models.PointScoreForty)
	state.PointScoreB = scorePtr(models.PointScoreThirty)

	next, err := AdvancePoint(state, true)
	require.NoError(t, err)
	assert.Equal(t, 2, *next.SetsWonA)
	assert.Equal(t, 0, *next.GamesInSetA)
	assert.Equal(t, 0, *next.GamesInSetB)
}

func TestAdvancePointTiebreakEntry(t *testing.T) {
	state := newTestState()
	state.GamesInSetA = intPtr(5)
	state.GamesInSetB = intPtr(6)
	state.PointScoreA = scorePtr(models.PointScoreForty)
	state.PointScoreB = scorePtr(models.PointScoreThirty)

	next, err := AdvancePoint(state, true)
	require.NoError(t, err)
	assert.True(t, next.IsTiebreak)
	assert.Equal(t, 0, *next.TiebreakPointsA)
	assert.Equal(t, 0, *next.TiebreakPointsB)
}

func TestAdvancePointTiebreakPlay(t *testing.T) {
	state := newTestState()
	state.GamesInSetA = intPtr(6)
	state.GamesInSetB = intPtr(6)
	state.IsTiebreak = true
	state.TiebreakPointsA = intPtr(6)
	state.TiebreakPointsB = intPtr(4)

	// Not over yet at 6-4 -> 6-5.
	lost, err := AdvancePoint(state, false)
	require.NoError(t, err)
	assert.True(t, lost.IsTiebreak)
	assert.Equal(t, 5, *lost.TiebreakPointsB)

	// 7-4 takes the set.
	won, err := AdvancePoint(state, true)
	require.NoError(t, err)
	assert.False(t, won.IsTiebreak)
	assert.Equal(t, 2, *won.SetsWonA)
}

func TestAdvancePointIncomplete(t *testing.T) {
	state := newTestState()
	state.PointScoreA = nil

	_, err := AdvancePoint(state, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingData)
}

func TestCounterfactualMatchWinSwing(t *testing.T) {
	eng := newTestEngine()
	state := newTestState()

	pWin, err := eng.CounterfactualMatchWin(state, true)
	require.NoError(t, err)
	pLose, err := eng.CounterfactualMatchWin(state, false)
	require.NoError(t, err)

	// Winning the point can never hurt the server's match chances.
	assert.GreaterOrEqual(t, pWin, pLose)
}

func TestCounterfactualMatchWinClinch(t *testing.T) {
	eng := newTestEngine()
	state := newTestState()
	state.SetsWonA = intPtr(1)
	state.GamesInSetA = intPtr(5)
	state.GamesInSetB = intPtr(0)
	state.PointScoreA = scorePtr(models.PointScoreForty)
	state.PointScoreB = scorePtr(models.PointScoreLove)

	pWin, err := eng.CounterfactualMatchWin(state, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pWin)
}
