package server

// #region imports
import (
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// #region preset

// Preset is a ready-made scenario for demos and drills.
type Preset struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Scenario    scenario.Request `json:"scenario"`
}

// Presets returns the built-in drill scenarios, one per disaster type.
func Presets() []Preset {
	return []Preset{
		{
			Name:        "Monsoon Flooding - North Chennai",
			Description: "Severe monsoon flooding across low-lying northern zones with arterial roads cut off.",
			Scenario: scenario.Request{
				DisasterType:       "flood",
				Severity:           4,
				PopulationAffected: 25000,
				ZonesImpacted:      []string{"North", "Central"},
				HospitalLoad:       0.75,
				BlockedRoads:       []string{"NH_48"},
				Details: scenario.Details{
					Flood: &scenario.FloodDetails{WaterLevelM: 1.8, RainfallMM24h: 320, Coastal: true},
				},
			},
		},
		{
			Name:        "Cyclone Landfall - Coastal Belt",
			Description: "Cyclone making landfall along the coast with sustained winds above 150 km/h.",
			Scenario: scenario.Request{
				DisasterType:       "cyclone",
				Severity:           5,
				PopulationAffected: 60000,
				ZonesImpacted:      []string{"South", "East"},
				HospitalLoad:       0.85,
				BlockedRoads:       []string{"ECR", "OMR"},
				Details: scenario.Details{
					Cyclone: &scenario.CycloneDetails{MaxWindKmph: 165, TranslationKmph: 18, Direction: "NW"},
				},
			},
		},
		{
			Name:        "Earthquake - Urban Core",
			Description: "Moderate earthquake near the urban core with partial structural collapses.",
			Scenario: scenario.Request{
				DisasterType:       "earthquake",
				Severity:           4,
				PopulationAffected: 40000,
				ZonesImpacted:      []string{"Central", "West"},
				HospitalLoad:       0.80,
				Details: scenario.Details{
					Quake: &scenario.QuakeDetails{Magnitude: 6.1, EpicenterKM: 12, CollapseRatio: 0.25},
				},
			},
		},
		{
			Name:        "Heatwave - Inland Districts",
			Description: "Extended heatwave driving heatstroke admissions in inland districts.",
			Scenario: scenario.Request{
				DisasterType:       "heatwave",
				Severity:           3,
				PopulationAffected: 15000,
				ZonesImpacted:      []string{"West"},
				HospitalLoad:       0.60,
				Details: scenario.Details{
					Heatwave: &scenario.HeatwaveDetails{MaxTempC: 46, HumidityPct: 30, DurationDays: 5},
				},
			},
		},
	}
}

// #endregion preset
