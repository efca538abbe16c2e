package models

// Player identifies one of the two competitors in a match.
type Player string

const (
	PlayerA Player = "A"
	PlayerB Player = "B"
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Valid reports whether the value is one of the two known players.
func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// PointScore is a tennis point score within a game.
type PointScore string

const (
	PointScoreLove      PointScore = "0"
	PointScoreFifteen   PointScore = "15"
	PointScoreThirty    PointScore = "30"
	PointScoreForty     PointScore = "40"
	PointScoreAdvantage PointScore = "AD"
)

var pointScoreRanks = map[PointScore]int{
	PointScoreLove:      0,
	PointScoreFifteen:   1,
	PointScoreThirty:    2,
	PointScoreForty:     3,
	PointScoreAdvantage: 4,
}

// Index converts a point score to its rank index (0..4).
// The second return value is false for unknown scores.
func (s PointScore) Index() (int, bool) {
	idx, ok := pointScoreRanks[s]
	return idx, ok
}

// Valid reports whether the score is within the fixed domain.
func (s PointScore) Valid() bool {
	_, ok := pointScoreRanks[s]
	return ok
}
