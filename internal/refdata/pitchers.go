package refdata

// PitcherTier ranks starting pitchers; TierAce drives the moneyline
// and pitcher's-duel rules.
type PitcherTier string

const (
	TierAce   PitcherTier = "ace"
	TierOne   PitcherTier = "tier1"
	TierTwo   PitcherTier = "tier2"
)

// Pitcher is a tracked starter. Durability is average innings per
// start.
type Pitcher struct {
	Team       string
	Throws     Handedness
	Tier       PitcherTier
	ERA        float64
	WHIP       float64
	KPer9      float64
	Durability float64
}

// Pitchers is the tracked starter table, keyed by full name.
var Pitchers = map[string]Pitcher{
	"Gerrit Cole":     {Team: "NYY", Throws: HandednessRight, Tier: TierAce, ERA: 2.85, WHIP: 1.05, KPer9: 11.2, Durability: 6.5},
	"Shane Bieber":    {Team: "CLE", Throws: HandednessRight, Tier: TierAce, ERA: 2.95, WHIP: 1.00, KPer9: 12.5, Durability: 6.2},
	"Jacob deGrom":    {Team: "TEX", Throws: HandednessRight, Tier: TierAce, ERA: 2.52, WHIP: 0.95, KPer9: 13.8, Durability: 5.8},
	"Spencer Strider": {Team: "ATL", Throws: HandednessRight, Tier: TierAce, ERA: 2.67, WHIP: 1.08, KPer9: 13.9, Durability: 6.0},
	"Walker Buehler":  {Team: "LAD", Throws: HandednessRight, Tier: TierOne, ERA: 3.15, WHIP: 1.12, KPer9: 10.5, Durability: 6.1},
	"Dylan Cease":     {Team: "SD", Throws: HandednessRight, Tier: TierOne, ERA: 3.28, WHIP: 1.18, KPer9: 11.8, Durability: 5.9},
	"Framber Valdez":  {Team: "HOU", Throws: HandednessLeft, Tier: TierOne, ERA: 3.45, WHIP: 1.25, KPer9: 8.9, Durability: 6.3},
	"Julio Urias":     {Team: "LAD", Throws: HandednessLeft, Tier: TierOne, ERA: 3.55, WHIP: 1.22, KPer9: 9.2, Durability: 5.7},
	"Carlos Rodon":    {Team: "NYY", Throws: HandednessLeft, Tier: TierTwo, ERA: 3.75, WHIP: 1.28, KPer9: 10.1, Durability: 5.5},
	"Logan Webb":      {Team: "SF", Throws: HandednessRight, Tier: TierTwo, ERA: 3.65, WHIP: 1.20, KPer9: 8.8, Durability: 6.0},
}
