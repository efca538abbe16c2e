// Package session is the caller-side shell around the probability engine: it
// owns the per-match momentum tracker, memoizes full evaluation reports per
// snapshot and bounds how often recomputation hits the solvers. The engine
// itself stays pure; all accumulation lives here.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/match-point/internal/engine"
	"github.com/yourusername/match-point/internal/metrics"
	"github.com/yourusername/match-point/internal/models"
	"github.com/yourusername/match-point/internal/momentum"
	"github.com/yourusername/match-point/internal/odds"
)

// Report bundles every engine output for one snapshot. Sections that could
// not be computed are nil, with the reason listed in Diagnostics; missing
// data never aborts the whole report.
type Report struct {
	SessionID   uuid.UUID `json:"session_id"`
	GeneratedAt time.Time `json:"generated_at"`

	NextPoint      *engine.NextPointResult     `json:"next_point,omitempty"`
	CurrentGame    *engine.GameResult          `json:"current_game,omitempty"`
	GameOutcomes   *engine.GameOutcomesResult  `json:"game_outcomes,omitempty"`
	Set            *engine.SetResult           `json:"set,omitempty"`
	Match          *engine.MatchResult         `json:"match,omitempty"`
	NextThreeGames *engine.ThreeGamesForecast  `json:"next_three_games,omitempty"`
	NextGame       *engine.NextGameResult      `json:"next_game,omitempty"`
	FairPrices     *odds.MatchPrices           `json:"fair_prices,omitempty"`

	Diagnostics   []string `json:"diagnostics,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// PointRecord summarizes the momentum update produced by one recorded point.
type PointRecord struct {
	Leverage float64 `json:"leverage"`
	Momentum float64 `json:"momentum"`
	Spike    bool    `json:"spike"`
}

// Session tracks one live match. It must be driven by a single logical
// writer: points are recorded strictly in match order.
type Session struct {
	ID            uuid.UUID
	TrackedPlayer models.Player

	eng     *engine.Engine
	tracker *momentum.Tracker
	cache   *gocache.Cache
	limiter *rate.Limiter
	log     *logrus.Entry

	lastReport *Report
}

func newSession(eng *engine.Engine, trackerCfg momentum.TrackerConfig, tracked models.Player, cacheTTL time.Duration, limiter *rate.Limiter, log *logrus.Logger) *Session {
	id := uuid.New()
	return &Session{
		ID:            id,
		TrackedPlayer: tracked,
		eng:           eng,
		tracker:       momentum.NewTracker(trackerCfg),
		cache:         gocache.New(cacheTTL, 2*cacheTTL),
		limiter:       limiter,
		log:           log.WithFields(logrus.Fields{"component": "session", "session_id": id.String()}),
	}
}

// Tracker exposes the session's momentum tracker for read access.
func (s *Session) Tracker() *momentum.Tracker {
	return s.tracker
}

// Evaluate computes the full probability report for a snapshot. Identical
// snapshots within the cache TTL are served from cache; when the recompute
// rate limit is exhausted the previous report is returned unchanged.
func (s *Session) Evaluate(state *models.MatchState) (*Report, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	key, err := fingerprint(state)
	if err != nil {
		return nil, err
	}
	if cached, found := s.cache.Get(key); found {
		metrics.RecordCacheHit()
		return cached.(*Report), nil
	}
	if !s.limiter.Allow() && s.lastReport != nil {
		s.log.Debug("Recompute rate limit reached, serving previous report")
		return s.lastReport, nil
	}

	started := time.Now()
	report := s.buildReport(state)
	metrics.RecordEvaluation(time.Since(started).Seconds())

	s.cache.SetDefault(key, report)
	s.lastReport = report
	return report, nil
}

func (s *Session) buildReport(state *models.MatchState) *Report {
	report := &Report{
		SessionID:     s.ID,
		GeneratedAt:   time.Now().UTC(),
		MissingFields: state.MissingRequiredFields(),
	}

	if next, err := s.eng.NextPoint(state); err == nil {
		report.NextPoint = &next
	} else {
		s.degrade(report, "next_point", err)
	}
	if game, err := s.eng.CurrentGame(state); err == nil {
		report.CurrentGame = &game
	} else {
		s.degrade(report, "current_game", err)
	}
	if outcomes, err := s.eng.GameOutcomes(state); err == nil {
		report.GameOutcomes = &outcomes
	} else {
		s.degrade(report, "game_outcomes", err)
	}
	if set, err := s.eng.SetWin(state); err == nil {
		report.Set = &set
	} else {
		s.degrade(report, "set", err)
	}
	if match, err := s.eng.MatchWin(state); err == nil {
		report.Match = &match
		metrics.UpdateMatchWinProbability(s.ID.String(), match.PMatchA)
		if prices, err := odds.FairMatchPrices(match.PMatchA); err == nil {
			report.FairPrices = &prices
		}
	} else {
		s.degrade(report, "match", err)
	}
	if forecast, err := s.eng.NextThreeGames(state); err == nil {
		report.NextThreeGames = &forecast
	} else {
		s.degrade(report, "next_three_games", err)
	}
	if nextGame, err := s.eng.NextGame(state); err == nil {
		report.NextGame = &nextGame
	} else {
		s.degrade(report, "next_game", err)
	}

	return report
}

func (s *Session) degrade(report *Report, section string, err error) {
	if errors.Is(err, models.ErrMissingData) {
		metrics.RecordInsufficientData()
	}
	s.log.WithField("section", section).WithError(err).Debug("Section degraded")
	report.Diagnostics = append(report.Diagnostics, fmt.Sprintf("%s: %v", section, err))
}

// RecordPoint feeds one completed point into the momentum tracker. The
// snapshot must describe the state before the point; wonBy names the player
// who took it. Leverage is derived from the counterfactual match-win swing
// for the tracked player.
func (s *Session) RecordPoint(state *models.MatchState, wonBy models.Player) (PointRecord, error) {
	if state.Server == nil {
		return PointRecord{}, fmt.Errorf("current server unknown: %w", models.ErrMissingData)
	}
	server := *state.Server
	trackedServing := s.TrackedPlayer == server
	trackedWon := s.TrackedPlayer == wonBy

	pWin, err := s.counterfactualFor(state, true)
	if err != nil {
		return PointRecord{}, err
	}
	pLose, err := s.counterfactualFor(state, false)
	if err != nil {
		return PointRecord{}, err
	}

	leverage := momentum.Leverage(trackedWon, pWin, pLose)
	s.tracker.AddPoint(trackedWon, trackedServing, leverage)

	current, _ := s.tracker.CurrentMomentum()
	spike := s.tracker.DetectSpike(0)
	metrics.RecordPoint(spike)
	metrics.UpdateMomentum(s.ID.String(), current)

	s.log.WithFields(logrus.Fields{
		"won_by":   wonBy,
		"leverage": leverage,
		"momentum": current,
	}).Debug("Point recorded")

	return PointRecord{Leverage: leverage, Momentum: current, Spike: spike}, nil
}

// counterfactualFor evaluates P(tracked player wins the match) assuming the
// tracked player wins (or loses) the point about to be played.
func (s *Session) counterfactualFor(state *models.MatchState, trackedWins bool) (float64, error) {
	serverWins := trackedWins == (s.TrackedPlayer == *state.Server)
	pMatchA, err := s.eng.CounterfactualMatchWin(state, serverWins)
	if err != nil {
		return 0, err
	}
	if s.TrackedPlayer == models.PlayerB {
		return 1 - pMatchA, nil
	}
	return pMatchA, nil
}

// Reset clears the momentum tracker and cached reports for a new match.
func (s *Session) Reset() {
	s.tracker.Reset()
	s.cache.Flush()
	s.lastReport = nil
}

// fingerprint derives a stable cache key from the snapshot contents.
func fingerprint(state *models.MatchState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("snapshot not hashable: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("%x", h.Sum64()), nil
}
