package engine

import (
	"fmt"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// PitcherExtractor picks moneylines and totals from starting pitcher
// tiers.
type PitcherExtractor struct{}

func (PitcherExtractor) Name() string { return "pitcher" }

func (PitcherExtractor) Extract(in Inputs) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, g := range in.Games {
		away, awayKnown := refdata.Pitchers[g.AwayPitcher]
		home, homeKnown := refdata.Pitchers[g.HomePitcher]

		awayAce := awayKnown && away.Tier == refdata.TierAce
		homeAce := homeKnown && home.Tier == refdata.TierAce

		switch {
		case awayAce && homeAce:
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetUnderTotal,
				Reason:     fmt.Sprintf("Pitcher's duel: %s vs %s", g.AwayPitcher, g.HomePitcher),
				Confidence: models.ConfidenceHigh,
				Factor:     models.FactorAceDuel,
			})
		case awayAce:
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetAwayML,
				Reason:     fmt.Sprintf("Ace %s on the mound for %s", g.AwayPitcher, g.AwayTeam),
				Confidence: models.ConfidenceHigh,
				Factor:     models.FactorAceAdvantage,
			})
		case homeAce:
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetHomeML,
				Reason:     fmt.Sprintf("Ace %s on the mound for %s", g.HomePitcher, g.HomeTeam),
				Confidence: models.ConfidenceHigh,
				Factor:     models.FactorAceAdvantage,
			})
		}
	}
	return out, nil
}
