// Package engine runs the recommendation pipeline: fetch, extract,
// aggregate, score, rank, and build parlays.
package engine

import (
	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/oddsfeed"
)

// Inputs is the joined working set one analysis run extracts from.
// Weather and Markets are keyed by game ID.
type Inputs struct {
	Games   []models.Game
	Weather map[string]models.WeatherEntry
	Markets map[string]oddsfeed.GameMarket
}

// Extractor produces raw candidates from one data dimension. Extractors
// are pure functions of their inputs; none observes another's output.
type Extractor interface {
	Name() string
	Extract(in Inputs) ([]models.Candidate, error)
}

// DefaultExtractors returns the extractor chain in its fixed merge
// order. The order is part of the output contract: aggregation reason
// order follows it.
func DefaultExtractors() []Extractor {
	return []Extractor{
		WeatherExtractor{},
		TrendExtractor{},
		PitcherExtractor{},
		VenueExtractor{},
		PropExtractor{},
		AdvancedPitcherExtractor{},
	}
}
