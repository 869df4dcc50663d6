package engine

import (
	"fmt"
	"sort"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// Hitting prop thresholds.
const (
	hotStreakMinAvg = .280
	hrPropMinPower  = 25
	rbiPropMinPower = 20
	rbiPropMinAvg   = .270
)

// PropExtractor produces hitting props for tracked players in today's
// lineups. One hot player in a hitters' park can yield three
// independent candidates.
type PropExtractor struct{}

func (PropExtractor) Name() string { return "props" }

func (PropExtractor) Extract(in Inputs) ([]models.Candidate, error) {
	names := make([]string, 0, len(refdata.Players))
	for name := range refdata.Players {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []models.Candidate
	for _, g := range in.Games {
		venue, venueKnown := refdata.Venues[g.Venue]
		for _, name := range names {
			p := refdata.Players[name]
			team := refdata.FullTeamName(p.Team)
			if team != g.HomeTeam && team != g.AwayTeam {
				continue
			}

			if p.HotStreak && p.Avg >= hotStreakMinAvg {
				out = append(out, models.Candidate{
					GameID:     g.GameID,
					BetType:    models.BetPlayerHitsOver,
					Player:     name,
					PropLine:   "1.5",
					Reason:     fmt.Sprintf("%s hot streak, hitting %.3f", name, p.Avg),
					Confidence: models.ConfidenceMedium,
					Factor:     models.FactorHotStreak,
				})
			}
			if p.Power >= hrPropMinPower && venueKnown && venue.Favors == refdata.FavorsOffense {
				out = append(out, models.Candidate{
					GameID:     g.GameID,
					BetType:    models.BetPlayerHROver,
					Player:     name,
					PropLine:   "0.5",
					Reason:     fmt.Sprintf("%s power plays up at %s", name, g.Venue),
					Confidence: models.ConfidenceMedium,
					Factor:     models.FactorVenuePowerBoost,
				})
			}
			if p.Power >= rbiPropMinPower && p.Avg >= rbiPropMinAvg {
				out = append(out, models.Candidate{
					GameID:     g.GameID,
					BetType:    models.BetPlayerRBIOver,
					Player:     name,
					PropLine:   "0.5",
					Reason:     fmt.Sprintf("%s combines power and contact", name),
					Confidence: models.ConfidenceLow,
					Factor:     models.FactorRBIConsistency,
				})
			}
		}
	}
	return out, nil
}
