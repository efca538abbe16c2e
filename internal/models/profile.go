package models

// PlayerServeProfile holds live serve statistics for one player. All
// percentage fields are probabilities in [0,1]; nil means not yet observed.
// A profile is immutable once constructed.
type PlayerServeProfile struct {
	PlayerName string `json:"player_name"`

	FirstServeInPct         *float64 `json:"first_serve_in_pct" validate:"omitempty,gte=0,lte=1"`
	FirstServePointsWonPct  *float64 `json:"first_serve_points_won_pct" validate:"omitempty,gte=0,lte=1"`
	SecondServePointsWonPct *float64 `json:"second_serve_points_won_pct" validate:"omitempty,gte=0,lte=1"`

	// Raw serve counts, when the data source exposes them.
	FirstServesInCount           *int `json:"first_serves_in_count,omitempty" validate:"omitempty,gte=0"`
	FirstServesTotalCount        *int `json:"first_serves_total_count,omitempty" validate:"omitempty,gte=0"`
	FirstServePointsWonCount     *int `json:"first_serve_points_won_count,omitempty" validate:"omitempty,gte=0"`
	FirstServePointsPlayedCount  *int `json:"first_serve_points_played_count,omitempty" validate:"omitempty,gte=0"`
	SecondServePointsWonCount    *int `json:"second_serve_points_won_count,omitempty" validate:"omitempty,gte=0"`
	SecondServePointsPlayedCount *int `json:"second_serve_points_played_count,omitempty" validate:"omitempty,gte=0"`
	TotalServicePointsPlayed     *int `json:"total_service_points_played,omitempty" validate:"omitempty,gte=0"`

	// Advanced stats, carried for display; the solvers never require them.
	ReturnPointsWonPct   *float64 `json:"return_points_won_pct,omitempty" validate:"omitempty,gte=0,lte=1"`
	Aces                 *int     `json:"aces,omitempty" validate:"omitempty,gte=0"`
	DoubleFaults         *int     `json:"double_faults,omitempty" validate:"omitempty,gte=0"`
	BreakPointsFaced     *int     `json:"break_points_faced,omitempty" validate:"omitempty,gte=0"`
	BreakPointsSaved     *int     `json:"break_points_saved,omitempty" validate:"omitempty,gte=0"`
	BreakPointsConverted *int     `json:"break_points_converted,omitempty" validate:"omitempty,gte=0"`
	Winners              *int     `json:"winners,omitempty" validate:"omitempty,gte=0"`
	UnforcedErrors       *int     `json:"unforced_errors,omitempty" validate:"omitempty,gte=0"`
}

// ServePointWinPct computes the probability of winning a point on serve:
// first-serve-in% x first-serve-won% + (1 - first-serve-in%) x second-serve-won%.
// Returns false when any of the three inputs is absent.
func (p *PlayerServeProfile) ServePointWinPct() (float64, bool) {
	if p == nil || p.FirstServeInPct == nil || p.FirstServePointsWonPct == nil || p.SecondServePointsWonPct == nil {
		return 0, false
	}
	in := *p.FirstServeInPct
	pct := in*(*p.FirstServePointsWonPct) + (1-in)*(*p.SecondServePointsWonPct)
	return pct, true
}
