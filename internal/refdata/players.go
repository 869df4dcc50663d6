// Package refdata holds the static player, pitcher, venue, and team
// reference tables the signal extractors run against.
package refdata

// Handedness of a hitter or the throwing arm of a pitcher.
type Handedness string

const (
	HandednessRight  Handedness = "R"
	HandednessLeft   Handedness = "L"
	HandednessSwitch Handedness = "S"
)

// Player is a tracked hitter. Power is a 0-40 season HR projection,
// Avg is batting average, HotStreak marks recent form.
type Player struct {
	Team       string
	Position   string
	Handedness Handedness
	Power      int
	Avg        float64
	HotStreak  bool
}

// Players is the tracked hitter table, keyed by full name.
var Players = map[string]Player{
	"Mookie Betts":           {Team: "LAD", Position: "OF", Handedness: HandednessRight, Power: 25, Avg: .280, HotStreak: true},
	"Fernando Tatis Jr.":     {Team: "SD", Position: "SS", Handedness: HandednessRight, Power: 30, Avg: .285, HotStreak: false},
	"Ronald Acuna Jr.":       {Team: "ATL", Position: "OF", Handedness: HandednessRight, Power: 35, Avg: .295, HotStreak: true},
	"Aaron Judge":            {Team: "NYY", Position: "OF", Handedness: HandednessRight, Power: 40, Avg: .275, HotStreak: true},
	"Mike Trout":             {Team: "LAA", Position: "OF", Handedness: HandednessRight, Power: 35, Avg: .290, HotStreak: false},
	"Juan Soto":              {Team: "SD", Position: "OF", Handedness: HandednessLeft, Power: 30, Avg: .300, HotStreak: true},
	"Vladimir Guerrero Jr.":  {Team: "TOR", Position: "1B", Handedness: HandednessRight, Power: 32, Avg: .285, HotStreak: false},
	"Francisco Lindor":       {Team: "NYM", Position: "SS", Handedness: HandednessSwitch, Power: 25, Avg: .270, HotStreak: true},
	"Trea Turner":            {Team: "PHI", Position: "SS", Handedness: HandednessRight, Power: 20, Avg: .295, HotStreak: true},
	"Freddie Freeman":        {Team: "LAD", Position: "1B", Handedness: HandednessLeft, Power: 22, Avg: .305, HotStreak: false},
	"Bo Bichette":            {Team: "TOR", Position: "SS", Handedness: HandednessRight, Power: 18, Avg: .275, HotStreak: false},
	"Pete Alonso":            {Team: "NYM", Position: "1B", Handedness: HandednessRight, Power: 35, Avg: .250, HotStreak: true},
	"Rafael Devers":          {Team: "BOS", Position: "3B", Handedness: HandednessLeft, Power: 28, Avg: .285, HotStreak: false},
	"Yordan Alvarez":         {Team: "HOU", Position: "DH", Handedness: HandednessLeft, Power: 38, Avg: .290, HotStreak: true},
	"Kyle Schwarber":         {Team: "PHI", Position: "OF", Handedness: HandednessLeft, Power: 30, Avg: .235, HotStreak: false},
}
