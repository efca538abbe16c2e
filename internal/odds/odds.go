// Package odds converts engine probabilities into betting-odds formats for
// presentation. Decimal arithmetic keeps displayed prices exact.
package odds

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourusername/match-point/internal/models"
)

// FairDecimal returns the fair (no-margin) decimal odds for a probability:
// 1/p rounded to two places. Fails for probabilities outside (0,1].
func FairDecimal(p float64) (decimal.Decimal, error) {
	if p <= 0 || p > 1 {
		return decimal.Zero, fmt.Errorf("probability %v not in (0,1]: %w", p, models.ErrInvalidDomain)
	}
	return decimal.NewFromInt(1).DivRound(decimal.NewFromFloat(p), 2), nil
}

// Implied converts decimal odds back to an implied probability.
func Implied(dec decimal.Decimal) (float64, error) {
	if dec.LessThanOrEqual(decimal.NewFromInt(1)) {
		return 0, fmt.Errorf("decimal odds %s must exceed 1: %w", dec, models.ErrInvalidDomain)
	}
	p, _ := decimal.NewFromInt(1).DivRound(dec, 6).Float64()
	return p, nil
}

// MatchPrices is a two-way fair price pair for a match.
type MatchPrices struct {
	PlayerA decimal.Decimal `json:"player_a"`
	PlayerB decimal.Decimal `json:"player_b"`
}

// FairMatchPrices derives both players' fair decimal odds from P(A wins).
func FairMatchPrices(pMatchA float64) (MatchPrices, error) {
	priceA, err := FairDecimal(pMatchA)
	if err != nil {
		return MatchPrices{}, err
	}
	priceB, err := FairDecimal(1 - pMatchA)
	if err != nil {
		return MatchPrices{}, err
	}
	return MatchPrices{PlayerA: priceA, PlayerB: priceB}, nil
}
