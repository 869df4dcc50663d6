package engine

import (
	"fmt"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// TrendExtractor picks moneylines from the team strength tables.
type TrendExtractor struct{}

func (TrendExtractor) Name() string { return "trend" }

func (TrendExtractor) Extract(in Inputs) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, g := range in.Games {
		awayStrong := refdata.Contains(refdata.StrongOffenses, g.AwayTeam)
		homeStrong := refdata.Contains(refdata.StrongOffenses, g.HomeTeam)
		awayPitching := refdata.Contains(refdata.StrongPitching, g.AwayTeam)
		homePitching := refdata.Contains(refdata.StrongPitching, g.HomeTeam)

		if awayStrong && !homePitching {
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetAwayML,
				Reason:     fmt.Sprintf("%s strong offense vs average pitching", g.AwayTeam),
				Confidence: models.ConfidenceMedium,
				Factor:     models.FactorOffenseVsPitching,
			})
		}
		if homeStrong && !awayPitching {
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetHomeML,
				Reason:     fmt.Sprintf("%s strong offense vs average pitching", g.HomeTeam),
				Confidence: models.ConfidenceMedium,
				Factor:     models.FactorOffenseVsPitching,
			})
		}

		if refdata.Contains(refdata.WeakOffenses, g.AwayTeam) && refdata.Contains(refdata.WeakOffenses, g.HomeTeam) {
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetUnderTotal,
				Reason:     "Both lineups rank among the weakest offenses",
				Confidence: models.ConfidenceHigh,
				Factor:     models.FactorWeakOffenses,
			})
		}
	}
	return out, nil
}
