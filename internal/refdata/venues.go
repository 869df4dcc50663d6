package refdata

// VenueFavors tags what a ballpark's dimensions reward.
type VenueFavors string

const (
	FavorsOffense  VenueFavors = "offense"
	FavorsDoubles  VenueFavors = "doubles"
	FavorsRighties VenueFavors = "righties"
	FavorsPitchers VenueFavors = "pitchers"
)

// Venue key factors referenced by the extractor rules.
const (
	KeyFactorThinAir         = "thin_air"
	KeyFactorShortLeftField  = "short_left_field"
	KeyFactorShortRightField = "short_right_field"
	KeyFactorMarineLayer     = "marine_layer"
)

// Venue describes a ballpark's scoring environment. RunFactor and
// HRFactor are park factors relative to league average (1.0).
type Venue struct {
	Altitude   int
	RunFactor  float64
	HRFactor   float64
	Favors     VenueFavors
	KeyFactors []string
}

// Venues is the ballpark factor table, keyed by venue name as the
// schedule API reports it.
var Venues = map[string]Venue{
	"Coors Field": {
		Altitude:   5280,
		RunFactor:  1.25,
		HRFactor:   1.35,
		Favors:     FavorsOffense,
		KeyFactors: []string{KeyFactorThinAir, "large_foul_territory"},
	},
	"Fenway Park": {
		RunFactor:  1.05,
		HRFactor:   0.95,
		Favors:     FavorsDoubles,
		KeyFactors: []string{KeyFactorShortLeftField, "tall_wall"},
	},
	"Yankee Stadium": {
		RunFactor:  1.10,
		HRFactor:   1.15,
		Favors:     FavorsRighties,
		KeyFactors: []string{KeyFactorShortRightField, "foul_territory"},
	},
	"Petco Park": {
		RunFactor:  0.90,
		HRFactor:   0.85,
		Favors:     FavorsPitchers,
		KeyFactors: []string{KeyFactorMarineLayer, "spacious_foul"},
	},
}

// HasKeyFactor reports whether the venue lists the given key factor.
func (v Venue) HasKeyFactor(factor string) bool {
	for _, f := range v.KeyFactors {
		if f == factor {
			return true
		}
	}
	return false
}

// VenueCities maps venue names to the city used for weather lookups.
// Unknown venues fall back to New York.
var VenueCities = map[string]string{
	"Yankee Stadium":    "New York",
	"Fenway Park":       "Boston",
	"Coors Field":       "Denver",
	"Petco Park":        "San Diego",
	"Wrigley Field":     "Chicago",
	"Dodger Stadium":    "Los Angeles",
	"Oracle Park":       "San Francisco",
	"Minute Maid Park":  "Houston",
	"Progressive Field": "Cleveland",
	"Comerica Park":     "Detroit",
}

// DefaultWeatherCity is used when a venue has no city mapping.
const DefaultWeatherCity = "New York"

// CityForVenue resolves the weather lookup city for a venue.
func CityForVenue(venue string) string {
	if city, ok := VenueCities[venue]; ok {
		return city
	}
	return DefaultWeatherCity
}
