package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/diamond-picks/internal/models"
)

func inputsWithWeather(game models.Game, w models.WeatherEntry) Inputs {
	w.GameID = game.GameID
	return Inputs{
		Games:   []models.Game{game},
		Weather: map[string]models.WeatherEntry{game.GameID: w},
	}
}

func candidateTypes(cs []models.Candidate) []models.BetType {
	types := make([]models.BetType, 0, len(cs))
	for _, c := range cs {
		types = append(types, c.BetType)
	}
	return types
}

func TestWeatherHotAndColdThresholds(t *testing.T) {
	game := models.Game{GameID: "g1"}

	cs, err := WeatherExtractor{}.Extract(inputsWithWeather(game, models.WeatherEntry{Temperature: 85}))
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, models.BetOverTotal, cs[0].BetType)
	assert.Equal(t, models.FactorTemperatureBoost, cs[0].Factor)

	cs, _ = WeatherExtractor{}.Extract(inputsWithWeather(game, models.WeatherEntry{Temperature: 55}))
	require.Len(t, cs, 1)
	assert.Equal(t, models.BetUnderTotal, cs[0].BetType)

	cs, _ = WeatherExtractor{}.Extract(inputsWithWeather(game, models.WeatherEntry{Temperature: 70}))
	assert.Empty(t, cs)
}

func TestWeatherWindDirectionRules(t *testing.T) {
	game := models.Game{GameID: "g1"}

	cs, _ := WeatherExtractor{}.Extract(inputsWithWeather(game, models.WeatherEntry{Temperature: 70, WindSpeed: 15, WindDirection: "NE"}))
	require.Len(t, cs, 1)
	assert.Equal(t, models.BetUnderTotal, cs[0].BetType)
	assert.Equal(t, models.FactorWindSuppress, cs[0].Factor)

	cs, _ = WeatherExtractor{}.Extract(inputsWithWeather(game, models.WeatherEntry{Temperature: 70, WindSpeed: 20, WindDirection: "SW"}))
	require.Len(t, cs, 1)
	assert.Equal(t, models.BetOverTotal, cs[0].BetType)
	assert.Equal(t, models.FactorWindBoost, cs[0].Factor)

	cs, _ = WeatherExtractor{}.Extract(inputsWithWeather(game, models.WeatherEntry{Temperature: 70, WindSpeed: 14, WindDirection: "SW"}))
	assert.Empty(t, cs)
}

func TestWeatherRulesFireIndependently(t *testing.T) {
	game := models.Game{GameID: "g1"}

	cs, _ := WeatherExtractor{}.Extract(inputsWithWeather(game, models.WeatherEntry{Temperature: 90, WindSpeed: 20, WindDirection: "SW"}))
	assert.ElementsMatch(t, []models.BetType{models.BetOverTotal, models.BetOverTotal}, candidateTypes(cs))
}

func TestTrendExtractorRules(t *testing.T) {
	in := Inputs{Games: []models.Game{
		{GameID: "g1", AwayTeam: "New York Yankees", HomeTeam: "Baltimore Orioles"},
		{GameID: "g2", AwayTeam: "Houston Astros", HomeTeam: "Cleveland Guardians"},
		{GameID: "g3", AwayTeam: "Miami Marlins", HomeTeam: "Detroit Tigers"},
	}}

	cs, err := TrendExtractor{}.Extract(in)
	require.NoError(t, err)

	byGame := map[string][]models.Candidate{}
	for _, c := range cs {
		byGame[c.GameID] = append(byGame[c.GameID], c)
	}

	// Strong away offense against average pitching.
	require.Len(t, byGame["g1"], 1)
	assert.Equal(t, models.BetAwayML, byGame["g1"][0].BetType)

	// Strong offense blocked by strong home pitching.
	assert.Empty(t, byGame["g2"])

	// Two weak offenses point under.
	require.Len(t, byGame["g3"], 1)
	assert.Equal(t, models.BetUnderTotal, byGame["g3"][0].BetType)
	assert.Equal(t, models.ConfidenceHigh, byGame["g3"][0].Confidence)
}

func TestPitcherExtractorAceRules(t *testing.T) {
	in := Inputs{Games: []models.Game{
		{GameID: "g1", AwayTeam: "New York Yankees", AwayPitcher: "Gerrit Cole", HomeTeam: "San Francisco Giants", HomePitcher: "Logan Webb"},
		{GameID: "g2", AwayTeam: "New York Yankees", AwayPitcher: "Gerrit Cole", HomeTeam: "Cleveland Guardians", HomePitcher: "Shane Bieber"},
		{GameID: "g3", AwayTeam: "A", AwayPitcher: "TBD", HomeTeam: "B", HomePitcher: "TBD"},
	}}

	cs, err := PitcherExtractor{}.Extract(in)
	require.NoError(t, err)
	require.Len(t, cs, 2)

	assert.Equal(t, models.BetAwayML, cs[0].BetType)
	assert.Equal(t, models.FactorAceAdvantage, cs[0].Factor)
	assert.Equal(t, models.ConfidenceHigh, cs[0].Confidence)

	assert.Equal(t, models.BetUnderTotal, cs[1].BetType)
	assert.Equal(t, models.FactorAceDuel, cs[1].Factor)
	assert.Contains(t, cs[1].Reason, "duel")
}

func TestVenueExtractorRules(t *testing.T) {
	in := Inputs{Games: []models.Game{
		{GameID: "g1", Venue: "Coors Field"},
		{GameID: "g2", Venue: "Petco Park"},
		{GameID: "g3", Venue: "Yankee Stadium"},
		{GameID: "g4", Venue: "Unknown Park"},
	}}

	cs, err := VenueExtractor{}.Extract(in)
	require.NoError(t, err)

	byGame := map[string][]models.Candidate{}
	for _, c := range cs {
		byGame[c.GameID] = append(byGame[c.GameID], c)
	}

	// Coors yields two candidates from one match.
	require.Len(t, byGame["g1"], 2)
	assert.Equal(t, models.BetOverTotal, byGame["g1"][0].BetType)
	assert.Equal(t, models.ConfidenceHigh, byGame["g1"][0].Confidence)
	assert.Equal(t, models.BetTeamTotalHitsOver, byGame["g1"][1].BetType)
	assert.Equal(t, models.ConfidenceMedium, byGame["g1"][1].Confidence)

	require.Len(t, byGame["g2"], 1)
	assert.Equal(t, models.BetUnderTotal, byGame["g2"][0].BetType)

	require.Len(t, byGame["g3"], 1)
	assert.Equal(t, models.BetRightHandedHRProps, byGame["g3"][0].BetType)
	assert.Equal(t, models.FactorShortPorch, byGame["g3"][0].Factor)

	assert.Empty(t, byGame["g4"])
}

func TestPropExtractorThreeCandidatesForOnePlayer(t *testing.T) {
	// Acuna: hot streak, .295, power 35 at an offense park.
	in := Inputs{Games: []models.Game{
		{GameID: "g1", HomeTeam: "Colorado Rockies", AwayTeam: "Atlanta Braves", Venue: "Coors Field"},
	}}

	cs, err := PropExtractor{}.Extract(in)
	require.NoError(t, err)

	var acuna []models.Candidate
	for _, c := range cs {
		if c.Player == "Ronald Acuna Jr." {
			acuna = append(acuna, c)
		}
	}
	assert.ElementsMatch(t, []models.BetType{
		models.BetPlayerHitsOver,
		models.BetPlayerHROver,
		models.BetPlayerRBIOver,
	}, candidateTypes(acuna))
}

func TestPropExtractorRespectsThresholds(t *testing.T) {
	// Schwarber: power 30 but .235 and cold, neutral park.
	in := Inputs{Games: []models.Game{
		{GameID: "g1", HomeTeam: "Philadelphia Phillies", AwayTeam: "Washington Nationals", Venue: "Citizens Bank Park"},
	}}

	cs, err := PropExtractor{}.Extract(in)
	require.NoError(t, err)

	for _, c := range cs {
		assert.NotEqual(t, "Kyle Schwarber", c.Player)
	}
}

func TestAdvancedPitcherProps(t *testing.T) {
	in := Inputs{Games: []models.Game{
		{GameID: "g1", AwayPitcher: "Gerrit Cole", HomePitcher: "TBD"},
	}}

	cs, err := AdvancedPitcherExtractor{}.Extract(in)
	require.NoError(t, err)

	// Cole: 11.2 K/9, 1.05 WHIP, 6.5 durability, 2.85 ERA.
	byType := map[models.BetType]models.Candidate{}
	for _, c := range cs {
		byType[c.BetType] = c
	}
	require.Len(t, byType, 4)

	ks := byType[models.BetPitcherKsOver]
	assert.Equal(t, models.ConfidenceMedium, ks.Confidence)
	assert.Equal(t, "6", ks.PropLine)

	assert.Equal(t, models.ConfidenceMedium, byType[models.BetPitcherHitsUnder].Confidence)

	innings := byType[models.BetPitcherInningsOver]
	assert.Equal(t, models.ConfidenceHigh, innings.Confidence)
	assert.Equal(t, "6.0", innings.PropLine)

	assert.Equal(t, models.ConfidenceMedium, byType[models.BetPitcherQualityStart].Confidence)
}

func TestAdvancedPitcherHighStrikeoutRate(t *testing.T) {
	in := Inputs{Games: []models.Game{
		{GameID: "g1", AwayPitcher: "Jacob deGrom", HomePitcher: "TBD"},
	}}

	cs, err := AdvancedPitcherExtractor{}.Extract(in)
	require.NoError(t, err)

	// deGrom: 13.8 K/9 clears the high bar; 5.8 durability misses the
	// innings rules.
	byType := map[models.BetType]models.Candidate{}
	for _, c := range cs {
		byType[c.BetType] = c
	}

	ks, ok := byType[models.BetPitcherKsOver]
	require.True(t, ok)
	assert.Equal(t, models.ConfidenceHigh, ks.Confidence)
	assert.Equal(t, "8", ks.PropLine)

	_, ok = byType[models.BetPitcherInningsOver]
	assert.False(t, ok)
	_, ok = byType[models.BetPitcherQualityStart]
	assert.False(t, ok)
}
