package momentum

// TrackerConfig holds the tunables for a Tracker. Zero values get the
// reference defaults.
type TrackerConfig struct {
	WindowSize     int
	Alpha          float64
	Smoothing      int
	SpikeThreshold float64
}

func (c TrackerConfig) withDefaults() TrackerConfig {
	if c.WindowSize <= 0 {
		c.WindowSize = DefaultWindowSize
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	if c.Smoothing == 0 {
		c.Smoothing = DefaultSmoothing
	}
	if c.SpikeThreshold == 0 {
		c.SpikeThreshold = DefaultSpikeThreshold
	}
	return c
}

// Tracker accumulates per-point outcomes for one player across a match:
// rolling serve/receive win histories, the full leverage sequence and the
// derived momentum sequence (one value per point). A tracker belongs to a
// single match session and must be fed strictly in point order by one writer;
// it carries no internal locking.
type Tracker struct {
	cfg TrackerConfig

	serveWins   []bool
	receiveWins []bool
	leverages   []float64
	momentums   []float64

	pointsPlayed int
}

// NewTracker creates a tracker with the given tunables.
func NewTracker(cfg TrackerConfig) *Tracker {
	return &Tracker{cfg: cfg.withDefaults()}
}

// Reset clears all state for a new match.
func (t *Tracker) Reset() {
	t.serveWins = nil
	t.receiveWins = nil
	t.leverages = nil
	t.momentums = nil
	t.pointsPlayed = 0
}

// AddPoint records one point: whether the tracked player won it, whether they
// were serving, and the point's leverage. Momentum is recomputed over the
// entire leverage history; match lengths are a few hundred points, so the
// O(n) pass per point is acceptable.
func (t *Tracker) AddPoint(won, wasServing bool, leverage float64) {
	if wasServing {
		t.serveWins = append(t.serveWins, won)
	} else {
		t.receiveWins = append(t.receiveWins, won)
	}
	t.leverages = append(t.leverages, leverage)
	t.momentums = append(t.momentums, EWMA(t.leverages, t.cfg.Alpha))
	t.pointsPlayed++
}

// PointsPlayed is the number of points recorded since the last reset.
func (t *Tracker) PointsPlayed() int {
	return t.pointsPlayed
}

// RollingWinProbability reads the most recent window of the matching history
// and returns the smoothed point-win rate. ok is false when no points have
// been recorded for that serving status.
func (t *Tracker) RollingWinProbability(isServing bool) (float64, bool) {
	history := t.receiveWins
	if isServing {
		history = t.serveWins
	}
	if len(history) == 0 {
		return 0, false
	}
	if len(history) > t.cfg.WindowSize {
		history = history[len(history)-t.cfg.WindowSize:]
	}
	wins := 0
	for _, won := range history {
		if won {
			wins++
		}
	}
	return RollingPointWinProbability(wins, t.cfg.WindowSize, t.cfg.Smoothing), true
}

// CurrentMomentum returns the latest momentum value; ok is false before any
// point has been recorded.
func (t *Tracker) CurrentMomentum() (float64, bool) {
	if len(t.momentums) == 0 {
		return 0, false
	}
	return t.momentums[len(t.momentums)-1], true
}

// MomentumDelta returns the change in momentum over the last n points; ok is
// false when fewer than n+1 points have been recorded.
func (t *Tracker) MomentumDelta(lastN int) (float64, bool) {
	if len(t.momentums) < lastN+1 {
		return 0, false
	}
	latest := t.momentums[len(t.momentums)-1]
	earlier := t.momentums[len(t.momentums)-1-lastN]
	return latest - earlier, true
}

// DetectSpike reports whether momentum rose by more than the threshold over
// the last 5 points. A non-positive threshold falls back to the configured
// default. False when fewer than 5 points have been recorded.
func (t *Tracker) DetectSpike(threshold float64) bool {
	if threshold <= 0 {
		threshold = t.cfg.SpikeThreshold
	}
	if len(t.momentums) < 5 {
		return false
	}
	recent := t.momentums[len(t.momentums)-1]
	baseline := t.momentums[len(t.momentums)-5]
	return recent-baseline > threshold
}

// MomentumHistory returns a copy of the momentum sequence.
func (t *Tracker) MomentumHistory() []float64 {
	return append([]float64(nil), t.momentums...)
}

// LeverageHistory returns a copy of the leverage sequence.
func (t *Tracker) LeverageHistory() []float64 {
	return append([]float64(nil), t.leverages...)
}
