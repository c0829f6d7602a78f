package weather

// #region imports
import (
	"math"
	"math/rand"
	"sync"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// #region generator
// Generator produces the simulated environmental snapshot attached to each
// decision. Jitter comes from an owned *rand.Rand so replays and tests can
// pin a seed. A live weather feed would slot in here. The mutex makes
// Snapshot safe under concurrent decisions; *rand.Rand is not.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// #endregion generator

// #region snapshot
// Snapshot builds a per-disaster-type environmental reading scaled by
// severity.
func (g *Generator) Snapshot(s scenario.Scenario) map[string]any {
	sev := s.Severity
	switch s.DisasterType {
	case scenario.DisasterFlood:
		return map[string]any{
			"rainfall_24h_mm":  150 + sev*50 + g.intBetween(-20, 30),
			"wind_speed_kmh":   30 + sev*10 + g.intBetween(-5, 15),
			"flood_depth_m":    round1(0.3 + float64(sev)*0.3 + g.floatBetween(-0.1, 0.2)),
			"humidity_percent": 85 + g.intBetween(-5, 10),
		}
	case scenario.DisasterCyclone:
		return map[string]any{
			"rainfall_24h_mm": 100 + sev*40 + g.intBetween(-20, 30),
			"wind_speed_kmh":  80 + sev*25 + g.intBetween(-10, 20),
			"flood_depth_m":   round1(0.2 + float64(sev)*0.2 + g.floatBetween(-0.1, 0.1)),
			"storm_surge_m":   round1(0.5 + float64(sev)*0.3),
		}
	case scenario.DisasterHeatwave:
		return map[string]any{
			"temperature_c":    40 + sev*2 + g.intBetween(-1, 2),
			"humidity_percent": 35 - sev*3 + g.intBetween(-5, 5),
			"heat_index":       45 + sev*3,
		}
	default:
		return map[string]any{
			"conditions":     "Monitoring active",
			"severity_index": sev,
		}
	}
}

// #endregion snapshot

// #region helpers

// intBetween returns a random int in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Intn(hi-lo+1)
}

// floatBetween returns a random float in [lo, hi).
func (g *Generator) floatBetween(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// #endregion helpers
