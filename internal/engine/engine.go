// Package engine computes live tennis win probabilities from a match
// snapshot: next point, current game, current set and full match, plus
// outcome distributions and short-horizon forecasts. Every solver is a pure,
// memoized recursion over the nested scoring hierarchy; the memo table is
// allocated per call, so concurrent evaluations of independent snapshots
// share no mutable state.
package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine evaluates match snapshots against a fixed stochastic model of point
// outcomes: independent Bernoulli trials with a constant probability that
// depends only on which player serves.
type Engine struct {
	cfg    Config
	logger *logrus.Logger
}

// New creates an engine with the given configuration.
func New(cfg Config, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{cfg: cfg.withDefaults(), logger: logger}
}

// Config returns the effective engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) newRNG() *rand.Rand {
	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
