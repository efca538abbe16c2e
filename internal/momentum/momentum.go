// Package momentum turns a stream of point outcomes into a smoothed momentum
// signal: rolling point-win rates over a fixed window, per-point leverage
// (the counterfactual swing in match-win probability) and an exponentially
// weighted average of leverage.
package momentum

import "math"

// Defaults follow Wang, Chen & Sabir (2024).
const (
	DefaultWindowSize     = 20
	DefaultAlpha          = 3.4
	DefaultSmoothing      = 1
	DefaultSpikeThreshold = 0.15
)

// RollingPointWinProbability estimates the point-win rate from the number of
// wins in the window, with Laplace smoothing to avoid degenerate 0/1
// estimates early in a match. Clamped to [0,1].
func RollingPointWinProbability(wins, windowSize, smoothing int) float64 {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	p := float64(wins+smoothing) / float64(windowSize)
	return clamp(p, 0, 1)
}

// Leverage credits the counterfactual swing of a won point: the gap between
// the match-win probability had the point been won versus lost. Lost points
// are credited zero; the crediting is deliberately asymmetric.
func Leverage(pointWon bool, pWinCounterfactual, pLoseCounterfactual float64) float64 {
	if !pointWon {
		return 0
	}
	return math.Max(pWinCounterfactual-pLoseCounterfactual, 0)
}

// EWMA computes the weighted average of the leverage sequence with weight
// (1-alpha)^i on the i-th most recent element, normalized by the weight sum.
// Zero for an empty sequence; clamped to [-1,1] as a safety bound.
//
// The reference default alpha=3.4 makes (1-alpha) negative and the weights
// alternate in sign, which is not a conventional decay. It is kept as a
// tunable, not a validated constant; callers routinely supply values in
// [0,1].
func EWMA(leverage []float64, alpha float64) float64 {
	n := len(leverage)
	if n == 0 {
		return 0
	}
	decay := 1 - alpha
	numerator, denominator := 0.0, 0.0
	weight := 1.0
	for i := 0; i < n; i++ {
		numerator += weight * leverage[n-1-i]
		denominator += weight
		weight *= decay
	}
	if denominator <= 0 {
		return 0
	}
	return clamp(numerator/denominator, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
