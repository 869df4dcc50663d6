package models

// BandLabel is the display label derived from a final numeric score.
// Bands are contiguous and exhaustive over [0,10]; the same vocabulary
// drives display filtering and the calibration report.
type BandLabel string

const (
	BandElite      BandLabel = "elite"
	BandVeryHigh   BandLabel = "very-high"
	BandHigh       BandLabel = "high"
	BandMediumHigh BandLabel = "medium-high"
	BandMedium     BandLabel = "medium"
	BandLow        BandLabel = "low"
)

// ConfidenceBand maps a closed score interval to a label.
type ConfidenceBand struct {
	Label BandLabel
	Min   float64
	Max   float64
}

// ConfidenceBands lists the bands highest first. Precedence is the
// slice order, never map iteration order.
var ConfidenceBands = []ConfidenceBand{
	{BandElite, 9.0, 10.0},
	{BandVeryHigh, 8.0, 8.9},
	{BandHigh, 7.0, 7.9},
	{BandMediumHigh, 6.0, 6.9},
	{BandMedium, 5.0, 5.9},
	{BandLow, 0.0, 4.9},
}

// BandFor returns the display band for a score. Scores are clamped to
// [0,10] before lookup.
func BandFor(score float64) BandLabel {
	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}
	for _, b := range ConfidenceBands {
		if score >= b.Min {
			return b.Label
		}
	}
	return BandLow
}
