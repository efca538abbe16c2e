package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServePointWinPct(t *testing.T) {
	profile := &PlayerServeProfile{
		FirstServeInPct:         floatPtr(0.65),
		FirstServePointsWonPct:  floatPtr(0.82),
		SecondServePointsWonPct: floatPtr(0.60),
	}

	pct, ok := profile.ServePointWinPct()
	assert.True(t, ok)
	assert.InDelta(t, 0.65*0.82+0.35*0.60, pct, 1e-12)
}

func TestServePointWinPctMissingInputs(t *testing.T) {
	var nilProfile *PlayerServeProfile
	_, ok := nilProfile.ServePointWinPct()
	assert.False(t, ok)

	profile := &PlayerServeProfile{
		FirstServeInPct:        floatPtr(0.65),
		FirstServePointsWonPct: floatPtr(0.82),
	}
	_, ok = profile.ServePointWinPct()
	assert.False(t, ok)
}
