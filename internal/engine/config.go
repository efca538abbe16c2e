package engine

// Config holds the tunable parameters of the probability engine. Zero values
// are replaced with defaults at construction.
type Config struct {
	// GamePointCap bounds the game recursion. Point counts above the cap are
	// probabilistically negligible; the solver falls back to a static
	// approximation instead of recursing further.
	GamePointCap int
	// SetGameCap bounds the set recursion, same fallback policy.
	SetGameCap int
	// TiebreakPointCap bounds the tiebreak recursion.
	TiebreakPointCap int

	// GameScoreTrials is the Monte Carlo trial count for likely final game
	// scores; SetScoreTrials for the 3-game set-score projection.
	GameScoreTrials int
	SetScoreTrials  int

	// ScoreReportThreshold drops enumerated intermediate scores whose reach
	// probability is below the threshold, to bound output size.
	ScoreReportThreshold float64

	// Seed seeds the simulation RNG; 0 means time-based.
	Seed int64
}

// DefaultConfig returns the reference engine parameters.
func DefaultConfig() Config {
	return Config{
		GamePointCap:         10,
		SetGameCap:           12,
		TiebreakPointCap:     20,
		GameScoreTrials:      5000,
		SetScoreTrials:       1000,
		ScoreReportThreshold: 0.001,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.GamePointCap <= 0 {
		c.GamePointCap = def.GamePointCap
	}
	if c.SetGameCap <= 0 {
		c.SetGameCap = def.SetGameCap
	}
	if c.TiebreakPointCap <= 0 {
		c.TiebreakPointCap = def.TiebreakPointCap
	}
	if c.GameScoreTrials <= 0 {
		c.GameScoreTrials = def.GameScoreTrials
	}
	if c.SetScoreTrials <= 0 {
		c.SetScoreTrials = def.SetScoreTrials
	}
	if c.ScoreReportThreshold <= 0 {
		c.ScoreReportThreshold = def.ScoreReportThreshold
	}
	return c
}
