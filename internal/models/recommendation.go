package models

import "strings"

// Confidence is the coarse label a signal extractor attaches to a
// candidate. The scorer maps labels to weights (high=3, medium=2,
// low=1) when combining a confluence group.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Weight returns the numeric weight of the label.
func (c Confidence) Weight() float64 {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	default:
		return 1
	}
}

// BetType tags the market a recommendation targets, e.g. "over_total",
// "home_ml", "player_hr_over".
type BetType string

const (
	BetOverTotal           BetType = "over_total"
	BetUnderTotal          BetType = "under_total"
	BetHomeML              BetType = "home_ml"
	BetAwayML              BetType = "away_ml"
	BetTeamTotalHitsOver   BetType = "team_total_hits_over"
	BetRightHandedHRProps  BetType = "right_handed_hr_props"
	BetPlayerHitsOver      BetType = "player_hits_over"
	BetPlayerHROver        BetType = "player_hr_over"
	BetPlayerRBIOver       BetType = "player_rbi_over"
	BetPitcherKsOver       BetType = "pitcher_strikeouts_over"
	BetPitcherHitsUnder    BetType = "pitcher_hits_allowed_under"
	BetPitcherInningsOver  BetType = "pitcher_innings_over"
	BetPitcherQualityStart BetType = "pitcher_quality_start"
)

// IsOver reports whether the bet type is an over-style market.
func (b BetType) IsOver() bool { return strings.Contains(string(b), "over") }

// IsUnder reports whether the bet type is an under-style market.
func (b BetType) IsUnder() bool { return strings.Contains(string(b), "under") }

// IsPlayerProp reports whether the bet type is a player prop.
func (b BetType) IsPlayerProp() bool { return strings.HasPrefix(string(b), "player_") }

// IsMoneyline reports whether the bet type is a moneyline pick.
func (b BetType) IsMoneyline() bool { return strings.HasSuffix(string(b), "_ml") }

// FactorOrigin classifies which data dimension produced a factor tag.
type FactorOrigin string

const (
	OriginWeather FactorOrigin = "weather"
	OriginTrend   FactorOrigin = "trend"
	OriginPitcher FactorOrigin = "pitcher"
	OriginProp    FactorOrigin = "prop"
	OriginVenue   FactorOrigin = "venue"
)

// FactorTag identifies the specific signal that produced a candidate.
// Every candidate carries exactly one tag; groups accumulate tags at
// aggregation, where distinct tags drive the escalation rule and the
// total tag count (duplicates included) drives the factor bonus.
type FactorTag string

const (
	FactorTemperatureBoost    FactorTag = "temperature_boost"
	FactorTemperatureSuppress FactorTag = "temperature_suppress"
	FactorWindBoost           FactorTag = "wind_boost"
	FactorWindSuppress        FactorTag = "wind_suppress"
	FactorOffenseVsPitching   FactorTag = "offense_vs_pitching"
	FactorWeakOffenses        FactorTag = "weak_offenses"
	FactorAceAdvantage        FactorTag = "ace_advantage"
	FactorAceDuel             FactorTag = "ace_duel"
	FactorAltitudeBoost       FactorTag = "altitude_boost"
	FactorPitcherPark         FactorTag = "pitcher_park"
	FactorShortPorch          FactorTag = "short_porch"
	FactorHotStreak           FactorTag = "hot_streak"
	FactorVenuePowerBoost     FactorTag = "venue_power_boost"
	FactorRBIConsistency      FactorTag = "rbi_consistency"
	FactorStrikeoutRate       FactorTag = "strikeout_rate"
	FactorWHIPControl         FactorTag = "whip_control"
	FactorInningsDurability   FactorTag = "innings_durability"
	FactorQualityStart        FactorTag = "quality_start"
)

// factorOrigins maps every tag to its data dimension. The explicit
// table replaces any reliance on field ordering for origin dispatch.
var factorOrigins = map[FactorTag]FactorOrigin{
	FactorTemperatureBoost:    OriginWeather,
	FactorTemperatureSuppress: OriginWeather,
	FactorWindBoost:           OriginWeather,
	FactorWindSuppress:        OriginWeather,
	FactorOffenseVsPitching:   OriginTrend,
	FactorWeakOffenses:        OriginTrend,
	FactorAceAdvantage:        OriginPitcher,
	FactorAceDuel:             OriginPitcher,
	FactorAltitudeBoost:       OriginVenue,
	FactorPitcherPark:         OriginVenue,
	FactorShortPorch:          OriginVenue,
	FactorHotStreak:           OriginProp,
	FactorVenuePowerBoost:     OriginProp,
	FactorRBIConsistency:      OriginProp,
	FactorStrikeoutRate:       OriginPitcher,
	FactorWHIPControl:         OriginPitcher,
	FactorInningsDurability:   OriginPitcher,
	FactorQualityStart:        OriginPitcher,
}

// Origin returns the data dimension the tag belongs to.
func (f FactorTag) Origin() FactorOrigin {
	return factorOrigins[f]
}

// Candidate is a single extractor's raw recommendation before
// aggregation. Each candidate carries exactly one factor tag.
type Candidate struct {
	GameID     string     `json:"game_id"`
	BetType    BetType    `json:"bet_type"`
	Player     string     `json:"player,omitempty"`
	PropLine   string     `json:"prop_line,omitempty"`
	Reason     string     `json:"reason"`
	Confidence Confidence `json:"confidence"`
	Factor     FactorTag  `json:"factor"`
}

// UnifiedRecommendation is the aggregator's output, unique per
// (GameID, BetType). Reasons keep input order; Factors keep duplicates
// because the total count feeds the factor bonus.
type UnifiedRecommendation struct {
	GameID      string       `json:"game_id"`
	BetType     BetType      `json:"bet_type"`
	Player      string       `json:"player,omitempty"`
	PropLine    string       `json:"prop_line,omitempty"`
	Reasons     []string     `json:"reasons"`
	Factors     []FactorTag  `json:"factors"`
	Confidences []Confidence `json:"confidences"`

	// Derived at scoring time.
	Score            float64    `json:"score"`
	Confidence       Confidence `json:"confidence"`
	Band             BandLabel  `json:"band"`
	NumFactors       int        `json:"num_factors"`
	ExpertAdjustment float64    `json:"expert_adjustment,omitempty"`
	OddsAdjustment   float64    `json:"odds_adjustment,omitempty"`
}

// DistinctFactors counts distinct non-empty factor tags.
func (u *UnifiedRecommendation) DistinctFactors() int {
	seen := make(map[FactorTag]struct{}, len(u.Factors))
	for _, f := range u.Factors {
		if f == "" {
			continue
		}
		seen[f] = struct{}{}
	}
	return len(seen)
}
