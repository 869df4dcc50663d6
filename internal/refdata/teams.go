package refdata

// Team strength classifications used by the trend extractor.
var (
	StrongOffenses = []string{
		"Los Angeles Dodgers", "Atlanta Braves", "Houston Astros", "New York Yankees",
	}
	WeakOffenses = []string{
		"Miami Marlins", "Oakland Athletics", "Detroit Tigers", "Chicago White Sox",
	}
	StrongPitching = []string{
		"Cleveland Guardians", "Tampa Bay Rays", "New York Mets", "San Francisco Giants",
	}
)

// TeamNames maps club abbreviations to the full names the schedule
// API uses.
var TeamNames = map[string]string{
	"LAD": "Los Angeles Dodgers", "SD": "San Diego Padres", "ATL": "Atlanta Braves",
	"NYY": "New York Yankees", "LAA": "Los Angeles Angels", "TOR": "Toronto Blue Jays",
	"NYM": "New York Mets", "PHI": "Philadelphia Phillies", "BOS": "Boston Red Sox",
	"HOU": "Houston Astros", "SF": "San Francisco Giants", "SEA": "Seattle Mariners",
	"TB": "Tampa Bay Rays", "CLE": "Cleveland Guardians", "MIN": "Minnesota Twins",
	"CHC": "Chicago Cubs", "STL": "St. Louis Cardinals", "MIL": "Milwaukee Brewers",
	"CIN": "Cincinnati Reds", "PIT": "Pittsburgh Pirates", "ARI": "Arizona Diamondbacks",
	"COL": "Colorado Rockies", "TEX": "Texas Rangers", "OAK": "Oakland Athletics",
	"KC": "Kansas City Royals", "DET": "Detroit Tigers", "CWS": "Chicago White Sox",
	"BAL": "Baltimore Orioles", "WSH": "Washington Nationals", "MIA": "Miami Marlins",
}

// TeamAliases maps full team names to the city/nickname variants
// bookmaker feeds use.
var TeamAliases = map[string][]string{
	"Los Angeles Dodgers": {"Dodgers", "LA Dodgers", "LAD"},
	"New York Yankees":    {"Yankees", "NY Yankees", "NYY"},
	"Boston Red Sox":      {"Red Sox", "Boston", "BOS"},
	"San Diego Padres":    {"Padres", "San Diego", "SD"},
	"Atlanta Braves":      {"Braves", "Atlanta", "ATL"},
}

// FullTeamName resolves an abbreviation to the schedule API name,
// returning the input unchanged when unknown.
func FullTeamName(abbr string) string {
	if name, ok := TeamNames[abbr]; ok {
		return name
	}
	return abbr
}

// Contains reports whether list holds name.
func Contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
