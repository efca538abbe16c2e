package session

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-point/internal/config"
	"github.com/yourusername/match-point/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func scorePtr(s models.PointScore) *models.PointScore { return &s }
func playerPtr(p models.Player) *models.Player        { return &p }

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	cfg, err := config.LoadWithDefaults("does-not-exist.yaml")
	require.NoError(t, err)
	cfg.Engine.Seed = 42
	cfg.Momentum.Alpha = 0.5

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewManager(cfg, log)
}

func newTestState() *models.MatchState {
	return &models.MatchState{
		Timestamp:   time.Date(2026, 8, 26, 14, 32, 0, 0, time.UTC),
		BestOfSets:  3,
		PlayerAName: "Player A",
		PlayerBName: "Player B",

		SetsWonA:    intPtr(1),
		SetsWonB:    intPtr(0),
		GamesInSetA: intPtr(3),
		GamesInSetB: intPtr(2),

		PointScoreA: scorePtr(models.PointScoreThirty),
		PointScoreB: scorePtr(models.PointScoreFifteen),
		Server:      playerPtr(models.PlayerA),

		PlayerA: models.PlayerServeProfile{
			PlayerName:              "Player A",
			FirstServeInPct:         floatPtr(0.65),
			FirstServePointsWonPct:  floatPtr(0.82),
			SecondServePointsWonPct: floatPtr(0.60),
		},
		PlayerB: models.PlayerServeProfile{
			PlayerName:              "Player B",
			FirstServeInPct:         floatPtr(0.71),
			FirstServePointsWonPct:  floatPtr(0.78),
			SecondServePointsWonPct: floatPtr(0.55),
		},

		BlendingWeightLive:        0.70,
		GenericPriorServePointWin: 0.62,
	}
}

func TestManagerOpenInvalidPlayer(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Open(models.Player("C"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidDomain)
}

func TestManagerOpenGetClose(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)
	assert.Equal(t, models.PlayerA, s.TrackedPlayer)

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	m.Close(s.ID)
	_, ok = m.Get(s.ID)
	assert.False(t, ok)
}

func TestEvaluateFullReport(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	report, err := s.Evaluate(newTestState())
	require.NoError(t, err)

	assert.Equal(t, s.ID, report.SessionID)
	assert.Empty(t, report.MissingFields)
	assert.Empty(t, report.Diagnostics)

	require.NotNil(t, report.NextPoint)
	require.NotNil(t, report.CurrentGame)
	require.NotNil(t, report.GameOutcomes)
	require.NotNil(t, report.Set)
	require.NotNil(t, report.Match)
	require.NotNil(t, report.NextThreeGames)
	require.NotNil(t, report.NextGame)
	require.NotNil(t, report.FairPrices)

	assert.Greater(t, report.Match.PMatchA, 0.5)
}

func TestEvaluateDegradesOnMissingData(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	state := newTestState()
	state.SetsWonA = nil
	state.SetsWonB = nil

	report, err := s.Evaluate(state)
	require.NoError(t, err)

	// Next-point only needs serve stats; match-level solvers degrade.
	assert.NotNil(t, report.NextPoint)
	assert.Nil(t, report.Match)
	assert.Nil(t, report.FairPrices)
	assert.NotEmpty(t, report.Diagnostics)
	assert.Contains(t, report.MissingFields, "Sets won by Player A")
}

func TestEvaluateRejectsInvalidState(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	state := newTestState()
	state.BestOfSets = 4

	_, err = s.Evaluate(state)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidDomain)
}

func TestEvaluateCacheHit(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	state := newTestState()
	first, err := s.Evaluate(state)
	require.NoError(t, err)
	second, err := s.Evaluate(state)
	require.NoError(t, err)

	// Identical snapshots hit the cache and return the same report.
	assert.Same(t, first, second)

	// A changed snapshot recomputes.
	state.PointScoreA = scorePtr(models.PointScoreForty)
	third, err := s.Evaluate(state)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestRecordPointTrackedWinner(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	record, err := s.RecordPoint(newTestState(), models.PlayerA)
	require.NoError(t, err)

	assert.Greater(t, record.Leverage, 0.0)
	assert.Greater(t, record.Momentum, 0.0)
	assert.False(t, record.Spike)
	assert.Equal(t, 1, s.Tracker().PointsPlayed())
}

func TestRecordPointTrackedLoser(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	record, err := s.RecordPoint(newTestState(), models.PlayerB)
	require.NoError(t, err)

	// Lost points carry zero leverage.
	assert.Equal(t, 0.0, record.Leverage)
}

func TestRecordPointTrackingReceiver(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerB)
	require.NoError(t, err)

	// Player B receives and wins the point: positive leverage from B's
	// perspective.
	record, err := s.RecordPoint(newTestState(), models.PlayerB)
	require.NoError(t, err)
	assert.Greater(t, record.Leverage, 0.0)
}

func TestRecordPointRequiresServer(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	state := newTestState()
	state.Server = nil

	_, err = s.RecordPoint(state, models.PlayerA)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingData)
}

func TestSessionReset(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Open(models.PlayerA)
	require.NoError(t, err)

	_, err = s.RecordPoint(newTestState(), models.PlayerA)
	require.NoError(t, err)
	first, err := s.Evaluate(newTestState())
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, 0, s.Tracker().PointsPlayed())
	second, err := s.Evaluate(newTestState())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
