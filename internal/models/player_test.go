package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerOpponent(t *testing.T) {
	assert.Equal(t, PlayerB, PlayerA.Opponent())
	assert.Equal(t, PlayerA, PlayerB.Opponent())
}

func TestPlayerValid(t *testing.T) {
	assert.True(t, PlayerA.Valid())
	assert.True(t, PlayerB.Valid())
	assert.False(t, Player("C").Valid())
	assert.False(t, Player("").Valid())
}

func TestPointScoreIndex(t *testing.T) {
	cases := []struct {
		score PointScore
		index int
	}{
		{PointScoreLove, 0},
		{PointScoreFifteen, 1},
		{PointScoreThirty, 2},
		{PointScoreForty, 3},
		{PointScoreAdvantage, 4},
	}
	for _, tc := range cases {
		idx, ok := tc.score.Index()
		assert.True(t, ok)
		assert.Equal(t, tc.index, idx)
		assert.True(t, tc.score.Valid())
	}

	_, ok := PointScore("55").Index()
	assert.False(t, ok)
	assert.False(t, PointScore("55").Valid())
}
