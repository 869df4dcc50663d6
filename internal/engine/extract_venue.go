package engine

import (
	"fmt"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// A park favoring offense with a run factor at or above this is an
// extreme hitters' environment (Coors Field class).
const extremeRunFactor = 1.2

// VenueExtractor reads the ballpark factor table.
type VenueExtractor struct{}

func (VenueExtractor) Name() string { return "venue" }

func (VenueExtractor) Extract(in Inputs) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, g := range in.Games {
		v, ok := refdata.Venues[g.Venue]
		if !ok {
			continue
		}

		switch v.Favors {
		case refdata.FavorsOffense:
			if v.RunFactor >= extremeRunFactor {
				out = append(out,
					models.Candidate{
						GameID:     g.GameID,
						BetType:    models.BetOverTotal,
						Reason:     fmt.Sprintf("%s altitude and dimensions inflate scoring", g.Venue),
						Confidence: models.ConfidenceHigh,
						Factor:     models.FactorAltitudeBoost,
					},
					models.Candidate{
						GameID:     g.GameID,
						BetType:    models.BetTeamTotalHitsOver,
						Reason:     fmt.Sprintf("%s run factor %.2f boosts hit totals", g.Venue, v.RunFactor),
						Confidence: models.ConfidenceMedium,
						Factor:     models.FactorAltitudeBoost,
					},
				)
			}
		case refdata.FavorsPitchers:
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetUnderTotal,
				Reason:     fmt.Sprintf("%s suppresses run scoring", g.Venue),
				Confidence: models.ConfidenceMedium,
				Factor:     models.FactorPitcherPark,
			})
		case refdata.FavorsRighties:
			if v.HasKeyFactor(refdata.KeyFactorShortRightField) {
				out = append(out, models.Candidate{
					GameID:     g.GameID,
					BetType:    models.BetRightHandedHRProps,
					Reason:     fmt.Sprintf("%s short right field favors right-handed power", g.Venue),
					Confidence: models.ConfidenceMedium,
					Factor:     models.FactorShortPorch,
				})
			}
		}
	}
	return out, nil
}
