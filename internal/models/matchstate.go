package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// MatchState is an immutable point-in-time description of a tennis match.
// Optional fields are nil when the data source could not supply them; the
// solvers degrade to a missing-data diagnostic rather than failing.
// Updates always produce a new MatchState.
type MatchState struct {
	Timestamp  time.Time `json:"timestamp"`
	MatchURL   string    `json:"match_url,omitempty"`
	DataSource string    `json:"data_source,omitempty"`

	BestOfSets  int    `json:"best_of_sets" validate:"oneof=3 5"`
	PlayerAName string `json:"player_a_name"`
	PlayerBName string `json:"player_b_name"`

	SetsWonA         *int `json:"sets_won_a" validate:"omitempty,gte=0"`
	SetsWonB         *int `json:"sets_won_b" validate:"omitempty,gte=0"`
	CurrentSetNumber *int `json:"current_set_number,omitempty" validate:"omitempty,gte=1"`

	GamesInSetA     *int `json:"games_in_set_a" validate:"omitempty,gte=0"`
	GamesInSetB     *int `json:"games_in_set_b" validate:"omitempty,gte=0"`
	IsTiebreak      bool `json:"is_tiebreak"`
	TiebreakPointsA *int `json:"tiebreak_points_a,omitempty" validate:"omitempty,gte=0"`
	TiebreakPointsB *int `json:"tiebreak_points_b,omitempty" validate:"omitempty,gte=0"`

	PointScoreA *PointScore `json:"point_score_a" validate:"omitempty,oneof=0 15 30 40 AD"`
	PointScoreB *PointScore `json:"point_score_b" validate:"omitempty,oneof=0 15 30 40 AD"`

	Server *Player `json:"server" validate:"omitempty,oneof=A B"`

	PlayerA PlayerServeProfile `json:"player_a"`
	PlayerB PlayerServeProfile `json:"player_b"`

	BlendingWeightLive        float64 `json:"blending_weight_live" validate:"gte=0,lte=1"`
	GenericPriorServePointWin float64 `json:"generic_prior_serve_point_win" validate:"gte=0,lte=1"`

	IngestionNotes []string `json:"ingestion_notes,omitempty"`
}

var stateValidator = validator.New()

// Validate rejects a structurally malformed state: probabilities outside
// [0,1], an unknown best-of format, point scores outside the fixed domain.
// Violations are reported as ErrInvalidDomain, distinct from missing data.
func (m *MatchState) Validate() error {
	if err := stateValidator.Struct(m); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return fmt.Errorf("field %s failed %q: %w", first.StructNamespace(), first.Tag(), ErrInvalidDomain)
		}
		return fmt.Errorf("%v: %w", err, ErrInvalidDomain)
	}
	return nil
}

// Profile returns the serve profile for the given player.
func (m *MatchState) Profile(p Player) *PlayerServeProfile {
	if p == PlayerA {
		return &m.PlayerA
	}
	return &m.PlayerB
}

// PlayerName returns the display name for the given player.
func (m *MatchState) PlayerName(p Player) string {
	if p == PlayerA {
		return m.PlayerAName
	}
	return m.PlayerBName
}

// IsCompleteForNextPoint reports whether the snapshot carries the minimum
// data for a next-point probability.
func (m *MatchState) IsCompleteForNextPoint() bool {
	if m.Server == nil {
		return false
	}
	_, okA := m.PlayerA.ServePointWinPct()
	_, okB := m.PlayerB.ServePointWinPct()
	return okA && okB
}

// IsCompleteForMatchProbability reports whether the snapshot carries the
// minimum data for a full match probability.
func (m *MatchState) IsCompleteForMatchProbability() bool {
	return m.IsCompleteForNextPoint() &&
		m.SetsWonA != nil && m.SetsWonB != nil &&
		m.GamesInSetA != nil && m.GamesInSetB != nil &&
		m.PointScoreA != nil && m.PointScoreB != nil
}

// MissingRequiredFields lists the fields still needed for a full match
// probability, for surfacing to the caller.
func (m *MatchState) MissingRequiredFields() []string {
	var missing []string
	if m.SetsWonA == nil {
		missing = append(missing, "Sets won by Player A")
	}
	if m.SetsWonB == nil {
		missing = append(missing, "Sets won by Player B")
	}
	if m.GamesInSetA == nil {
		missing = append(missing, "Games in current set (Player A)")
	}
	if m.GamesInSetB == nil {
		missing = append(missing, "Games in current set (Player B)")
	}
	if m.PointScoreA == nil {
		missing = append(missing, "Point score (Player A)")
	}
	if m.PointScoreB == nil {
		missing = append(missing, "Point score (Player B)")
	}
	if m.Server == nil {
		missing = append(missing, "Current server")
	}
	if _, ok := m.PlayerA.ServePointWinPct(); !ok {
		missing = append(missing, fmt.Sprintf("Serve stats for %s", m.PlayerAName))
	}
	if _, ok := m.PlayerB.ServePointWinPct(); !ok {
		missing = append(missing, fmt.Sprintf("Serve stats for %s", m.PlayerBName))
	}
	return missing
}

// Clone returns a deep copy of the state. Counterfactual advancement mutates
// the copy, never the original.
func (m *MatchState) Clone() *MatchState {
	clone := *m

	clone.SetsWonA = cloneInt(m.SetsWonA)
	clone.SetsWonB = cloneInt(m.SetsWonB)
	clone.CurrentSetNumber = cloneInt(m.CurrentSetNumber)
	clone.GamesInSetA = cloneInt(m.GamesInSetA)
	clone.GamesInSetB = cloneInt(m.GamesInSetB)
	clone.TiebreakPointsA = cloneInt(m.TiebreakPointsA)
	clone.TiebreakPointsB = cloneInt(m.TiebreakPointsB)

	if m.PointScoreA != nil {
		score := *m.PointScoreA
		clone.PointScoreA = &score
	}
	if m.PointScoreB != nil {
		score := *m.PointScoreB
		clone.PointScoreB = &score
	}
	if m.Server != nil {
		server := *m.Server
		clone.Server = &server
	}
	if m.IngestionNotes != nil {
		clone.IngestionNotes = append([]string(nil), m.IngestionNotes...)
	}
	return &clone
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
