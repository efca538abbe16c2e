package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/yourusername/match-point/internal/models"
)

// simulateGameScores plays the current game to completion n times and
// returns the empirical frequency of the most common final score labels.
// Simulation is for human-readable output only; exact probabilities come
// from the solvers.
func (e *Engine) simulateGameScores(rng *rand.Rand, pServer float64, sIdx, rIdx, trials int) map[string]float64 {
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		s, r := sIdx, rIdx
		var outcome string
		for {
			if s >= 4 && s-r >= 2 {
				outcome = fmt.Sprintf("Server wins (%s-%s)", pointLabel(s), pointLabel(r))
				break
			}
			if r >= 4 && r-s >= 2 {
				outcome = fmt.Sprintf("Receiver wins (%s-%s)", pointLabel(s), pointLabel(r))
				break
			}
			if rng.Float64() < pServer {
				s++
			} else {
				r++
			}
		}
		counts[outcome]++
	}
	return topFrequencies(counts, trials, 5)
}

// simulateSetScores plays the next three games n times under serve
// alternation and returns the empirical frequency of the resulting game-score
// pairs.
func (e *Engine) simulateSetScores(rng *rand.Rand, holdA, holdB float64, gamesA, gamesB, trials int) map[string]float64 {
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		gA, gB := gamesA, gamesB
		server := nextServerByParity(gamesA + gamesB)
		for g := 0; g < 3; g++ {
			if server == models.PlayerA {
				if rng.Float64() < holdA {
					gA++
				} else {
					gB++
				}
				server = models.PlayerB
			} else {
				if rng.Float64() < holdB {
					gB++
				} else {
					gA++
				}
				server = models.PlayerA
			}
		}
		counts[fmt.Sprintf("%d-%d", gA, gB)]++
	}
	return topFrequencies(counts, trials, 5)
}

// topFrequencies converts counts to empirical probabilities and keeps the n
// most frequent outcomes.
func topFrequencies(counts map[string]int, trials, n int) map[string]float64 {
	type freq struct {
		label string
		count int
	}
	ranked := make([]freq, 0, len(counts))
	for label, count := range counts {
		ranked = append(ranked, freq{label, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].label < ranked[j].label
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	top := make(map[string]float64, len(ranked))
	for _, f := range ranked {
		top[f.label] = float64(f.count) / float64(trials)
	}
	return top
}
