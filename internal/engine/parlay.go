package engine

import (
	"fmt"

	"github.com/yourusername/diamond-picks/internal/models"
)

// Parlay construction limits.
const (
	maxParlays         = 8
	maxSpecialtyLegs   = 3
	maxSameGameProps   = 2
	multiGameLookahead = 2
)

// BuildParlays constructs multi-game, same-game and specialty parlays
// from the ranked recommendation set, truncated to the top eight with
// multi-game first, then same-game, then specialty.
func BuildParlays(ranked []models.UnifiedRecommendation) []models.Parlay {
	highConf := make([]models.UnifiedRecommendation, 0, len(ranked))
	for _, r := range ranked {
		if r.Confidence == models.ConfidenceHigh {
			highConf = append(highConf, r)
		}
	}

	parlays := multiGameParlays(highConf)
	parlays = append(parlays, sameGameParlays(ranked)...)
	parlays = append(parlays, specialtyParlay(highConf)...)

	if len(parlays) > maxParlays {
		parlays = parlays[:maxParlays]
	}
	return parlays
}

// multiGameParlays pairs each high-confidence pick with the next two
// entries only, keeping the pair count linear in the input size.
func multiGameParlays(highConf []models.UnifiedRecommendation) []models.Parlay {
	var parlays []models.Parlay
	for i := 0; i < len(highConf); i++ {
		for j := i + 1; j <= i+multiGameLookahead && j < len(highConf); j++ {
			if highConf[i].GameID == highConf[j].GameID {
				continue
			}
			legs := []models.UnifiedRecommendation{highConf[i], highConf[j]}
			parlays = append(parlays, newParlay(
				legs,
				models.ParlayMultiGame,
				"+260",
				"Two high-confidence bets from different games",
			))
		}
	}
	return parlays
}

// sameGameParlays bundles one over leg with up to two player props
// from the same game, any confidence.
func sameGameParlays(ranked []models.UnifiedRecommendation) []models.Parlay {
	order := make([]string, 0)
	byGame := make(map[string][]models.UnifiedRecommendation)
	for _, r := range ranked {
		if _, ok := byGame[r.GameID]; !ok {
			order = append(order, r.GameID)
		}
		byGame[r.GameID] = append(byGame[r.GameID], r)
	}

	var parlays []models.Parlay
	for _, gameID := range order {
		group := byGame[gameID]
		if len(group) < 2 {
			continue
		}

		var over *models.UnifiedRecommendation
		var props []models.UnifiedRecommendation
		for i := range group {
			r := group[i]
			if over == nil && r.BetType.IsOver() && !r.BetType.IsPlayerProp() {
				over = &group[i]
			} else if r.BetType.IsPlayerProp() && len(props) < maxSameGameProps {
				props = append(props, r)
			}
		}
		if over == nil || len(props) == 0 {
			continue
		}

		legs := append([]models.UnifiedRecommendation{*over}, props...)
		parlays = append(parlays, newParlay(
			legs,
			models.ParlaySameGame,
			fmt.Sprintf("+%d", len(legs)*200),
			"Correlated total and player props from one game",
		))
	}
	return parlays
}

// specialtyParlay bundles up to three high-confidence unders into a
// single "Pitcher Duel" ticket.
func specialtyParlay(highConf []models.UnifiedRecommendation) []models.Parlay {
	var unders []models.UnifiedRecommendation
	for _, r := range highConf {
		if r.BetType.IsUnder() {
			unders = append(unders, r)
		}
	}
	if len(unders) < 2 {
		return nil
	}
	if len(unders) > maxSpecialtyLegs {
		unders = unders[:maxSpecialtyLegs]
	}
	return []models.Parlay{newParlay(
		unders,
		models.ParlaySpecialty,
		fmt.Sprintf("+%d", len(unders)*180),
		"Pitcher Duel: every leg backs a low-scoring game",
	)}
}

func newParlay(legs []models.UnifiedRecommendation, category models.ParlayCategory, odds, reasoning string) models.Parlay {
	total := 0.0
	for _, l := range legs {
		total += l.Score
	}
	avg := total / float64(len(legs))
	return models.Parlay{
		Legs:         legs,
		Category:     category,
		RiskLevel:    models.RiskFor(avg),
		ExpectedOdds: odds,
		Reasoning:    reasoning,
		AvgScore:     avg,
	}
}
