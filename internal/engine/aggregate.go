package engine

import (
	"github.com/yourusername/diamond-picks/internal/models"
)

type groupKey struct {
	gameID  string
	betType models.BetType
}

// Aggregate groups candidates by (gameID, betType). Reasons, factors
// and confidence labels accumulate in input order; the first non-empty
// player and prop line win. Aggregating the same input twice yields
// the same output.
func Aggregate(candidates []models.Candidate) []models.UnifiedRecommendation {
	index := make(map[groupKey]int, len(candidates))
	unified := make([]models.UnifiedRecommendation, 0, len(candidates))

	for _, c := range candidates {
		key := groupKey{gameID: c.GameID, betType: c.BetType}
		i, ok := index[key]
		if !ok {
			i = len(unified)
			index[key] = i
			unified = append(unified, models.UnifiedRecommendation{
				GameID:  c.GameID,
				BetType: c.BetType,
			})
		}

		u := &unified[i]
		u.Reasons = append(u.Reasons, c.Reason)
		if c.Factor != "" {
			u.Factors = append(u.Factors, c.Factor)
		}
		u.Confidences = append(u.Confidences, c.Confidence)
		if u.Player == "" {
			u.Player = c.Player
		}
		if u.PropLine == "" {
			u.PropLine = c.PropLine
		}
	}

	return unified
}
