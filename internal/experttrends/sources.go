package experttrends

import (
	"hash/fnv"
	"math/rand"

	"github.com/yourusername/diamond-picks/internal/models"
	"github.com/yourusername/diamond-picks/internal/refdata"
)

// SourcePick is one sub-source's read on a game.
type SourcePick struct {
	HomeSupport float64
	OverSupport float64
	Experts     int
}

// SubSource is one opinion feed. Weight sets its share of the
// consensus; Sharp marks professional-money sources whose disagreement
// with the public is itself a signal.
type SubSource interface {
	Name() string
	Weight() float64
	Sharp() bool
	Picks(game models.Game) (SourcePick, bool)
}

// Stock source weights. Analyst picks carry the most weight, sharp
// money the least volume but a dedicated fade signal.
const (
	weightSocial  = 0.3
	weightAnalyst = 0.4
	weightForum   = 0.2
	weightSharp   = 0.1
)

// DefaultSubSources returns the four stock opinion sources.
func DefaultSubSources() []SubSource {
	return []SubSource{
		&simulatedSource{name: "social", weight: weightSocial, expertsMin: 4, expertsMax: 10},
		&simulatedSource{name: "analyst", weight: weightAnalyst, expertsMin: 2, expertsMax: 6},
		&simulatedSource{name: "forum", weight: weightForum, expertsMin: 3, expertsMax: 8},
		&simulatedSource{name: "sharp", weight: weightSharp, sharp: true, expertsMin: 1, expertsMax: 3},
	}
}

// simulatedSource derives picks deterministically from the game and
// source identity, with a slight lean toward teams with strong
// offenses. A real feed would slot in behind the same interface.
type simulatedSource struct {
	name       string
	weight     float64
	sharp      bool
	expertsMin int
	expertsMax int
}

func (s *simulatedSource) Name() string    { return s.name }
func (s *simulatedSource) Weight() float64 { return s.weight }
func (s *simulatedSource) Sharp() bool     { return s.sharp }

func (s *simulatedSource) Picks(game models.Game) (SourcePick, bool) {
	rng := rand.New(rand.NewSource(seedFor(s.name, game.GameID)))

	home := 0.30 + rng.Float64()*0.40
	if refdata.Contains(refdata.StrongOffenses, game.HomeTeam) {
		home += 0.10
	}
	if refdata.Contains(refdata.StrongOffenses, game.AwayTeam) {
		home -= 0.10
	}
	home = clamp01(home)

	over := 0.35 + rng.Float64()*0.30
	if refdata.Contains(refdata.StrongPitching, game.HomeTeam) || refdata.Contains(refdata.StrongPitching, game.AwayTeam) {
		over -= 0.10
	}
	over = clamp01(over)

	experts := s.expertsMin
	if s.expertsMax > s.expertsMin {
		experts += rng.Intn(s.expertsMax - s.expertsMin + 1)
	}

	return SourcePick{HomeSupport: home, OverSupport: over, Experts: experts}, true
}

func seedFor(source, gameID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(source))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(gameID))
	return int64(h.Sum64())
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
