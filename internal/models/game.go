package models

import "time"

// PitcherTBD is the sentinel used when a probable starter has not been
// announced yet.
const PitcherTBD = "TBD"

// Game represents one scheduled MLB game. A game is immutable once
// fetched for an analysis run.
type Game struct {
	GameID       string    `json:"game_id" validate:"required"`
	AwayTeam     string    `json:"away_team" validate:"required"`
	HomeTeam     string    `json:"home_team" validate:"required"`
	Venue        string    `json:"venue"`
	StartTime    time.Time `json:"start_time"`
	Status       string    `json:"status"`
	AwayPitcher  string    `json:"away_probable_pitcher"`
	HomePitcher  string    `json:"home_probable_pitcher"`
}

// HasProbablePitchers reports whether both starters are announced.
func (g *Game) HasProbablePitchers() bool {
	return g.AwayPitcher != "" && g.AwayPitcher != PitcherTBD &&
		g.HomePitcher != "" && g.HomePitcher != PitcherTBD
}
