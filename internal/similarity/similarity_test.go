package similarity

import (
	"math"
	"testing"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #region fixtures

func hist(id string, dt scenario.DisasterType, sev, pop int, load float64) scenario.Historical {
	return scenario.Historical{
		ID: id,
		Scenario: scenario.Scenario{
			DisasterType:       dt,
			Severity:           sev,
			PopulationAffected: pop,
			HospitalLoad:       load,
		},
		Deployed: map[string]int{"medical_kits": 500},
		Outcome:  "successful",
	}
}

func testCorpus() []scenario.Historical {
	return []scenario.Historical{
		hist("f1", scenario.DisasterFlood, 4, 25000, 0.75),
		hist("f2", scenario.DisasterFlood, 2, 5000, 0.40),
		hist("c1", scenario.DisasterCyclone, 5, 60000, 0.85),
		hist("h1", scenario.DisasterHeatwave, 3, 15000, 0.60),
	}
}

// #endregion fixtures

func TestFindSimilar_FiltersByType(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	current := scenario.Scenario{DisasterType: scenario.DisasterFlood, Severity: 4, PopulationAffected: 24000, HospitalLoad: 0.70}

	results := m.FindSimilar(current, testCorpus(), 0)
	if len(results) != 2 {
		t.Fatalf("expected 2 flood matches, got %d", len(results))
	}
	for _, r := range results {
		if r.Historical.Scenario.DisasterType != scenario.DisasterFlood {
			t.Fatalf("expected only flood matches, got %s", r.Historical.Scenario.DisasterType)
		}
	}
}

func TestFindSimilar_FallsBackToFullCorpus(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	current := scenario.Scenario{DisasterType: scenario.DisasterEarthquake, Severity: 4}

	results := m.FindSimilar(current, testCorpus(), 0)
	if len(results) != 3 {
		t.Fatalf("expected topK=3 fallback matches, got %d", len(results))
	}
}

func TestFindSimilar_AscendingByDistance(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	current := scenario.Scenario{DisasterType: scenario.DisasterFlood, Severity: 4, PopulationAffected: 25000, HospitalLoad: 0.75}

	results := m.FindSimilar(current, testCorpus(), 0)
	for i := 1; i < len(results); i++ {
		if results[i-1].Distance > results[i].Distance {
			t.Fatalf("results not ascending: %f then %f", results[i-1].Distance, results[i].Distance)
		}
	}
	// f1 is a near-exact match and must rank first.
	if results[0].Historical.ID != "f1" {
		t.Fatalf("expected f1 closest, got %s", results[0].Historical.ID)
	}
}

func TestFindSimilar_TopKTruncates(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	current := scenario.Scenario{DisasterType: scenario.DisasterFlood, Severity: 3}

	results := m.FindSimilar(current, testCorpus(), 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 match for topK=1, got %d", len(results))
	}
}

func TestFindSimilar_EmptyCorpus(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	results := m.FindSimilar(scenario.Scenario{DisasterType: scenario.DisasterFlood}, nil, 0)
	if len(results) != 0 {
		t.Fatalf("expected no matches on empty corpus, got %d", len(results))
	}
}

func TestDistance_IdenticalScenariosScoreZero(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	s := scenario.Scenario{
		DisasterType:       scenario.DisasterFlood,
		Severity:           4,
		PopulationAffected: 25000,
		HospitalLoad:       0.75,
		Details:            scenario.Details{Flood: &scenario.FloodDetails{WaterLevelM: 1.2}},
	}
	if d := m.distance(s, s); d != 0 {
		t.Fatalf("expected zero distance for identical scenarios, got %f", d)
	}
}

func TestDistance_SpecificPenaltyOnlySameType(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	base := scenario.Scenario{DisasterType: scenario.DisasterFlood, Severity: 3}

	shallow := base
	shallow.Details = scenario.Details{Flood: &scenario.FloodDetails{WaterLevelM: 0.5}}
	deep := base
	deep.Details = scenario.Details{Flood: &scenario.FloodDetails{WaterLevelM: 2.5}}

	if m.distance(base, deep) <= m.distance(base, shallow) {
		t.Fatal("expected larger water level difference to add a larger penalty")
	}
}

func TestFindSimilar_DistanceRounded(t *testing.T) {
	m := NewMatcher(DefaultWeights())
	current := scenario.Scenario{DisasterType: scenario.DisasterFlood, Severity: 4, PopulationAffected: 24321, HospitalLoad: 0.73}

	for _, r := range m.FindSimilar(current, testCorpus(), 0) {
		if r.Distance != math.Round(r.Distance*1000)/1000 {
			t.Fatalf("distance %v not rounded to 3 decimals", r.Distance)
		}
	}
}
