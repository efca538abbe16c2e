package engine

import (
	"fmt"

	"github.com/yourusername/match-point/internal/models"
)

// GameForecast projects one upcoming game under serve alternation.
type GameForecast struct {
	GameNumber int           `json:"game_number"`
	Server     models.Player `json:"server"`
	PWinA      float64       `json:"p_win_a"`
	PWinB      float64       `json:"p_win_b"`
}

// ThreeGamesForecast projects hold/break for each of the next three games
// plus a simulated distribution over the resulting game-score pairs.
type ThreeGamesForecast struct {
	Games        []GameForecast     `json:"games"`
	SetScoreDist map[string]float64 `json:"set_score_dist"`
	Note         string             `json:"note"`
}

// NextThreeGames projects the next three games of the current set. Serve
// alternates starting from the current server; each game uses the serving
// player's hold probability.
func (e *Engine) NextThreeGames(state *models.MatchState) (ThreeGamesForecast, error) {
	if state.Server == nil {
		return ThreeGamesForecast{}, fmt.Errorf("current server unknown: %w", models.ErrMissingData)
	}
	holdA, err := e.holdProbabilityFor(state, models.PlayerA)
	if err != nil {
		return ThreeGamesForecast{}, err
	}
	holdB, err := e.holdProbabilityFor(state, models.PlayerB)
	if err != nil {
		return ThreeGamesForecast{}, err
	}

	server := *state.Server
	games := make([]GameForecast, 0, 3)
	for n := 1; n <= 3; n++ {
		forecast := GameForecast{GameNumber: n, Server: server}
		if server == models.PlayerA {
			forecast.PWinA = holdA
			forecast.PWinB = 1 - holdA
		} else {
			forecast.PWinB = holdB
			forecast.PWinA = 1 - holdB
		}
		games = append(games, forecast)
		server = server.Opponent()
	}

	gamesA, gamesB := 0, 0
	if state.GamesInSetA != nil {
		gamesA = *state.GamesInSetA
	}
	if state.GamesInSetB != nil {
		gamesB = *state.GamesInSetB
	}
	rng := e.newRNG()
	dist := e.simulateSetScores(rng, holdA, holdB, gamesA, gamesB, e.cfg.SetScoreTrials)

	return ThreeGamesForecast{
		Games:        games,
		SetScoreDist: dist,
		Note:         "Next 3 games based on hold/break probabilities",
	}, nil
}

// NextGameResult projects the game after the current one: the serve passes
// to the current receiver and the point score resets to love-all.
type NextGameResult struct {
	Server          models.Player `json:"server"`
	ServerName      string        `json:"server_name"`
	BlendedServeWin float64       `json:"blended_serve_win"`
	PHold           float64       `json:"p_hold"`
	PBreak          float64       `json:"p_break"`
	Note            string        `json:"note"`
}

// NextGame forecasts the upcoming game for the next server, using that
// player's blended serve-win rate from a fresh love-all score.
func (e *Engine) NextGame(state *models.MatchState) (NextGameResult, error) {
	if state.Server == nil {
		return NextGameResult{}, fmt.Errorf("current server unknown: %w", models.ErrMissingData)
	}
	nextServer := state.Server.Opponent()
	if _, ok := state.Profile(nextServer).ServePointWinPct(); !ok {
		return NextGameResult{}, fmt.Errorf("missing next server stats: %w", models.ErrMissingData)
	}
	blended := BlendedServeWinPctFor(state, nextServer)
	pHold := e.HoldProbability(blended)

	return NextGameResult{
		Server:          nextServer,
		ServerName:      state.PlayerName(nextServer),
		BlendedServeWin: blended,
		PHold:           pHold,
		PBreak:          1 - pHold,
		Note:            "Next game after current game completes",
	}, nil
}
