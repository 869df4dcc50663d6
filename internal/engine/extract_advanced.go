package engine

import (
	"fmt"
	"math"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// Advanced pitcher model thresholds.
const (
	kPropMinRate       = 10.0
	kPropHighRate      = 12.0
	kPropLineScale     = 0.6
	whipPropMax        = 1.10
	inningsMinDur      = 6.0
	inningsHighDur     = 6.5
	qualityStartMaxERA = 3.50
)

// AdvancedPitcherExtractor produces strikeout, hits-allowed, innings
// and quality-start props from the starter rate stats.
type AdvancedPitcherExtractor struct{}

func (AdvancedPitcherExtractor) Name() string { return "advanced_pitcher" }

func (AdvancedPitcherExtractor) Extract(in Inputs) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, g := range in.Games {
		for _, name := range []string{g.AwayPitcher, g.HomePitcher} {
			p, ok := refdata.Pitchers[name]
			if !ok {
				continue
			}
			out = append(out, pitcherProps(g.GameID, name, p)...)
		}
	}
	return out, nil
}

func pitcherProps(gameID, name string, p refdata.Pitcher) []models.Candidate {
	var out []models.Candidate

	if p.KPer9 >= kPropMinRate {
		conf := models.ConfidenceMedium
		if p.KPer9 >= kPropHighRate {
			conf = models.ConfidenceHigh
		}
		line := int(math.Floor(p.KPer9 * kPropLineScale))
		out = append(out, models.Candidate{
			GameID:     gameID,
			BetType:    models.BetPitcherKsOver,
			Player:     name,
			PropLine:   fmt.Sprintf("%d", line),
			Reason:     fmt.Sprintf("%s strikes out %.1f per nine", name, p.KPer9),
			Confidence: conf,
			Factor:     models.FactorStrikeoutRate,
		})
	}

	if p.WHIP <= whipPropMax {
		out = append(out, models.Candidate{
			GameID:     gameID,
			BetType:    models.BetPitcherHitsUnder,
			Player:     name,
			Reason:     fmt.Sprintf("%s limits baserunners (%.2f WHIP)", name, p.WHIP),
			Confidence: models.ConfidenceMedium,
			Factor:     models.FactorWHIPControl,
		})
	}

	if p.Durability >= inningsMinDur {
		conf := models.ConfidenceMedium
		if p.Durability >= inningsHighDur {
			conf = models.ConfidenceHigh
		}
		out = append(out, models.Candidate{
			GameID:     gameID,
			BetType:    models.BetPitcherInningsOver,
			Player:     name,
			PropLine:   fmt.Sprintf("%.1f", p.Durability-0.5),
			Reason:     fmt.Sprintf("%s averages %.1f innings per start", name, p.Durability),
			Confidence: conf,
			Factor:     models.FactorInningsDurability,
		})

		if p.ERA <= qualityStartMaxERA {
			out = append(out, models.Candidate{
				GameID:     gameID,
				BetType:    models.BetPitcherQualityStart,
				Player:     name,
				Reason:     fmt.Sprintf("%s pairs %.2f ERA with deep starts", name, p.ERA),
				Confidence: models.ConfidenceMedium,
				Factor:     models.FactorQualityStart,
			})
		}
	}

	return out
}
