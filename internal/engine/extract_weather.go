package engine

import (
	"fmt"
	"strings"

	"github.com/yourusername/diamond-picks/internal/models"
)

// Weather rule thresholds.
const (
	hotGameTemp  = 85.0
	coldGameTemp = 55.0
	strongWind   = 15.0
)

// WeatherExtractor flags totals affected by temperature and wind.
// Temperature and wind rules fire independently; confluence is the
// aggregator's job.
type WeatherExtractor struct{}

func (WeatherExtractor) Name() string { return "weather" }

func (WeatherExtractor) Extract(in Inputs) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, g := range in.Games {
		w, ok := in.Weather[g.GameID]
		if !ok {
			continue
		}

		if w.Temperature >= hotGameTemp {
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetOverTotal,
				Reason:     fmt.Sprintf("Hot weather (%.0f°F) favors offense", w.Temperature),
				Confidence: models.ConfidenceMedium,
				Factor:     models.FactorTemperatureBoost,
			})
		} else if w.Temperature <= coldGameTemp {
			out = append(out, models.Candidate{
				GameID:     g.GameID,
				BetType:    models.BetUnderTotal,
				Reason:     fmt.Sprintf("Cold weather (%.0f°F) suppresses scoring", w.Temperature),
				Confidence: models.ConfidenceMedium,
				Factor:     models.FactorTemperatureSuppress,
			})
		}

		if w.WindSpeed >= strongWind {
			switch {
			case strings.ContainsAny(w.WindDirection, "NE"):
				out = append(out, models.Candidate{
					GameID:     g.GameID,
					BetType:    models.BetUnderTotal,
					Reason:     fmt.Sprintf("Wind %.0f mph %s blowing in", w.WindSpeed, w.WindDirection),
					Confidence: models.ConfidenceMedium,
					Factor:     models.FactorWindSuppress,
				})
			case strings.ContainsAny(w.WindDirection, "SW"):
				out = append(out, models.Candidate{
					GameID:     g.GameID,
					BetType:    models.BetOverTotal,
					Reason:     fmt.Sprintf("Wind %.0f mph %s blowing out", w.WindSpeed, w.WindDirection),
					Confidence: models.ConfidenceMedium,
					Factor:     models.FactorWindBoost,
				})
			}
		}
	}
	return out, nil
}
