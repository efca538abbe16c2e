package engine

import (
	"time"

	"github.com/yourusername/match-point/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func scorePtr(s models.PointScore) *models.PointScore { return &s }
func playerPtr(p models.Player) *models.Player        { return &p }

// newTestState builds a complete mid-match snapshot: player A up a set,
// serving at 3-2, 30-15.
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

func newTestEngine() *Engine {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return New(cfg, nil)
}
