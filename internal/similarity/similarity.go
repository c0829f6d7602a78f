package similarity

// #region imports
import (
	"math"
	"sort"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// #region config
// Weights tune the per-feature contribution to the distance metric.
type Weights struct {
	Severity     float64
	Population   float64
	HospitalLoad float64
	ZoneCount    float64
	BlockedRoads float64
}

// DefaultWeights returns the calibrated feature weights.
func DefaultWeights() Weights {
	return Weights{
		Severity:     2.0,
		Population:   1.5,
		HospitalLoad: 1.8,
		ZoneCount:    1.0,
		BlockedRoads: 1.2,
	}
}

// DefaultTopK is the number of matches returned when the caller passes 0.
const DefaultTopK = 3

// penaltyScale weights the disaster-specific term relative to the base
// distance.
const penaltyScale = 0.3

// #endregion config

// #region result
// Result pairs a historical scenario with its distance from the current
// one. Smaller is more similar.
type Result struct {
	Historical *scenario.Historical
	Distance   float64
}

// #endregion result

// #region matcher
// Matcher ranks historical scenarios against a current one. Pure over its
// inputs; the corpus is never mutated.
type Matcher struct {
	weights Weights
}

// NewMatcher creates a Matcher with the given weights.
func NewMatcher(weights Weights) *Matcher {
	return &Matcher{weights: weights}
}

// #endregion matcher

// #region find-similar
// FindSimilar returns the topK nearest historical scenarios, ascending by
// distance. Candidates are first filtered to the current disaster type;
// when that filter is empty the full corpus is used so the matcher never
// comes back empty-handed on a populated corpus. Ties keep corpus order.
func (m *Matcher) FindSimilar(current scenario.Scenario, corpus []scenario.Historical, topK int) []Result {
	if topK <= 0 {
		topK = DefaultTopK
	}

	var candidates []*scenario.Historical
	for i := range corpus {
		if corpus[i].Scenario.DisasterType == current.DisasterType {
			candidates = append(candidates, &corpus[i])
		}
	}
	if len(candidates) == 0 {
		for i := range corpus {
			candidates = append(candidates, &corpus[i])
		}
	}

	results := make([]Result, 0, len(candidates))
	for _, h := range candidates {
		results = append(results, Result{
			Historical: h,
			Distance:   math.Round(m.distance(current, h.Scenario)*1000) / 1000,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// #endregion find-similar

// #region distance

// distance computes the weighted feature distance plus a disaster-specific
// penalty when both scenarios share a type.
func (m *Matcher) distance(a, b scenario.Scenario) float64 {
	sevDiff := math.Abs(float64(a.Severity-b.Severity)) / 5.0
	popDiff := math.Abs(float64(a.PopulationAffected-b.PopulationAffected)) / 100000.0
	loadDiff := math.Abs(a.HospitalLoad - b.HospitalLoad)
	zoneDiff := math.Abs(float64(a.ZoneCount()-b.ZoneCount())) / 5.0
	blockedDiff := math.Abs(float64(len(a.BlockedRoads)-len(b.BlockedRoads))) / 5.0

	d := math.Sqrt(
		m.weights.Severity*sevDiff*sevDiff +
			m.weights.Population*popDiff*popDiff +
			m.weights.HospitalLoad*loadDiff*loadDiff +
			m.weights.ZoneCount*zoneDiff*zoneDiff +
			m.weights.BlockedRoads*blockedDiff*blockedDiff,
	)

	if a.DisasterType == b.DisasterType {
		d += penaltyScale * specificDiff(a, b)
	}
	return d
}

// specificDiff is the normalized absolute difference of the single most
// relevant disaster measurement. Normalizers bound each measurement's
// plausible range: 2 m water, 200 km/h wind, 10 magnitude, 50 deg C.
func specificDiff(a, b scenario.Scenario) float64 {
	var norm float64
	switch a.DisasterType {
	case scenario.DisasterFlood:
		norm = 2.0
	case scenario.DisasterCyclone:
		norm = 200.0
	case scenario.DisasterEarthquake:
		norm = 10.0
	case scenario.DisasterHeatwave:
		norm = 50.0
	default:
		return 0
	}
	return math.Abs(a.KeyMeasurement()-b.KeyMeasurement()) / norm
}

// #endregion distance
