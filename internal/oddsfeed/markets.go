// Package oddsfeed turns raw bookmaker odds into per-game market views,
// flags value prices, and tracks line movement from the live feed.
package oddsfeed

import (
	"math"
	"strings"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// A moneyline market whose combined implied probability is under this
// threshold is priced with unusually low vig.
const lowVigThreshold = 1.05

// Adjustment components, capped in total at MaxOddsAdjustment.
const (
	lowVigBonus         = 0.3
	severeMovementBonus = 0.4
	mediumMovementBonus = 0.2

	// MaxOddsAdjustment bounds the total market-based score bonus.
	MaxOddsAdjustment = 0.8
)

// GameMarket is the flattened view of one game's prices at the
// configured bookmaker.
type GameMarket struct {
	GameID      string
	Bookmaker   string
	HomeML      int
	AwayML      int
	HasML       bool
	TotalPoint  float64
	OverPrice   int
	UnderPrice  int
	HasTotal    bool
	RunlineHome float64
	HasRunline  bool
	LowVig      bool
}

// MatchesTeam reports whether a bookmaker feed team name refers to the
// schedule team name, tolerating nickname and abbreviation variants.
func MatchesTeam(feedName, scheduleName string) bool {
	if strings.EqualFold(feedName, scheduleName) {
		return true
	}
	for _, alias := range refdata.TeamAliases[scheduleName] {
		if strings.EqualFold(feedName, alias) {
			return true
		}
	}
	if full := refdata.FullTeamName(feedName); strings.EqualFold(full, scheduleName) {
		return true
	}
	return strings.Contains(strings.ToLower(scheduleName), strings.ToLower(feedName))
}

// ProcessOdds matches odds entries to scheduled games and flattens the
// preferred bookmaker's markets. Games without a matching entry are
// absent from the result.
func ProcessOdds(entries []models.OddsEntry, games []models.Game, bookmaker string) map[string]GameMarket {
	markets := make(map[string]GameMarket, len(games))
	for _, g := range games {
		entry, ok := matchEntry(entries, g)
		if !ok {
			continue
		}
		book, ok := pickBookmaker(entry, bookmaker)
		if !ok {
			continue
		}
		gm := flattenMarkets(g, entry, book)
		markets[g.GameID] = gm
	}
	return markets
}

func matchEntry(entries []models.OddsEntry, game models.Game) (models.OddsEntry, bool) {
	for _, e := range entries {
		if MatchesTeam(e.HomeTeam, game.HomeTeam) && MatchesTeam(e.AwayTeam, game.AwayTeam) {
			return e, true
		}
	}
	return models.OddsEntry{}, false
}

func pickBookmaker(entry models.OddsEntry, preferred string) (models.Bookmaker, bool) {
	for _, b := range entry.Bookmakers {
		if b.Key == preferred {
			return b, true
		}
	}
	if len(entry.Bookmakers) > 0 {
		return entry.Bookmakers[0], true
	}
	return models.Bookmaker{}, false
}

func flattenMarkets(game models.Game, entry models.OddsEntry, book models.Bookmaker) GameMarket {
	gm := GameMarket{GameID: game.GameID, Bookmaker: book.Key}
	for _, m := range book.Markets {
		switch m.Key {
		case models.MarketH2H:
			for _, o := range m.Outcomes {
				if MatchesTeam(o.Name, game.HomeTeam) {
					gm.HomeML = o.Price
					gm.HasML = true
				} else if MatchesTeam(o.Name, game.AwayTeam) {
					gm.AwayML = o.Price
					gm.HasML = true
				}
			}
		case models.MarketTotals:
			for _, o := range m.Outcomes {
				switch strings.ToLower(o.Name) {
				case "over":
					gm.OverPrice = o.Price
					if o.Point != nil {
						gm.TotalPoint = *o.Point
					}
					gm.HasTotal = true
				case "under":
					gm.UnderPrice = o.Price
					if o.Point != nil {
						gm.TotalPoint = *o.Point
					}
					gm.HasTotal = true
				}
			}
		case models.MarketSpreads:
			for _, o := range m.Outcomes {
				if MatchesTeam(o.Name, game.HomeTeam) && o.Point != nil {
					gm.RunlineHome = *o.Point
					gm.HasRunline = true
				}
			}
		}
	}
	if gm.HasML {
		vig := models.ImpliedProbability(gm.HomeML) + models.ImpliedProbability(gm.AwayML)
		gm.LowVig = vig < lowVigThreshold
	}
	return gm
}

// Adjustment returns the market-based score bonus for a game's picks,
// capped at MaxOddsAdjustment. Low-vig moneyline pricing contributes a
// flat component; the latest line-movement alert adds a term scaled by
// its severity.
func Adjustment(gm GameMarket, movement *MovementTracker) float64 {
	adj := 0.0

	if gm.LowVig {
		adj += lowVigBonus
	}

	if movement != nil {
		if alert, ok := movement.LatestAlert(gm.GameID); ok {
			switch alert.Severity {
			case SeverityHigh:
				adj += severeMovementBonus
			case SeverityMedium:
				adj += mediumMovementBonus
			}
		}
	}

	return math.Min(adj, MaxOddsAdjustment)
}
