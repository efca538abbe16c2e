package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/match-point/internal/config"
	"github.com/yourusername/match-point/internal/engine"
	"github.com/yourusername/match-point/internal/metrics"
	"github.com/yourusername/match-point/internal/models"
	"github.com/yourusername/match-point/internal/momentum"
)

// Manager owns the live match sessions. Sessions themselves are
// single-writer; only the manager map is guarded for concurrent opens.
type Manager struct {
	mu       sync.Mutex
	cfg      *config.Config
	eng      *engine.Engine
	log      *logrus.Logger
	sessions map[uuid.UUID]*Session
}

// NewManager creates a session manager backed by one shared engine.
func NewManager(cfg *config.Config, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.New()
	}
	eng := engine.New(engine.Config{
		GamePointCap:         cfg.Engine.GamePointCap,
		SetGameCap:           cfg.Engine.SetGameCap,
		TiebreakPointCap:     cfg.Engine.TiebreakPointCap,
		GameScoreTrials:      cfg.Engine.GameScoreTrials,
		SetScoreTrials:       cfg.Engine.SetScoreTrials,
		ScoreReportThreshold: cfg.Engine.ScoreReportThreshold,
		Seed:                 cfg.Engine.Seed,
	}, log)

	return &Manager{
		cfg:      cfg,
		eng:      eng,
		log:      log,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Engine returns the shared probability engine.
func (m *Manager) Engine() *engine.Engine {
	return m.eng
}

// Open starts a session for a new match, tracking momentum for the given
// player.
func (m *Manager) Open(tracked models.Player) (*Session, error) {
	if !tracked.Valid() {
		return nil, fmt.Errorf("tracked player %q: %w", tracked, models.ErrInvalidDomain)
	}

	limiter := rate.NewLimiter(rate.Limit(m.cfg.Session.RecomputePerSecond), m.cfg.Session.RecomputeBurst)
	trackerCfg := momentum.TrackerConfig{
		WindowSize:     m.cfg.Momentum.WindowSize,
		Alpha:          m.cfg.Momentum.Alpha,
		Smoothing:      m.cfg.Momentum.Smoothing,
		SpikeThreshold: m.cfg.Momentum.SpikeThreshold,
	}
	s := newSession(m.eng, trackerCfg, tracked, m.cfg.CacheTTL(), limiter, m.log)

	m.mu.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.UpdateActiveSessions(float64(count))
	m.log.WithFields(logrus.Fields{"session_id": s.ID, "tracked": tracked}).Info("Session opened")
	return s, nil
}

// Get returns an open session by ID.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close discards a session.
func (m *Manager) Close(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	count := len(m.sessions)
	m.mu.Unlock()
	metrics.UpdateActiveSessions(float64(count))
}
