package scenario

// #region disaster-type

// DisasterType classifies the kind of emergency being reported.
type DisasterType string

const (
	DisasterFlood      DisasterType = "flood"
	DisasterCyclone    DisasterType = "cyclone"
	DisasterEarthquake DisasterType = "earthquake"
	DisasterHeatwave   DisasterType = "heatwave"
	DisasterOther      DisasterType = "other"
)

// Known reports whether t is one of the supported disaster types.
func (t DisasterType) Known() bool {
	switch t {
	case DisasterFlood, DisasterCyclone, DisasterEarthquake, DisasterHeatwave, DisasterOther:
		return true
	}
	return false
}

// #endregion disaster-type

// #region details

// Details carries disaster-specific measurements. Exactly one variant is
// populated, selected by the scenario's DisasterType. A nil variant means
// the caller supplied no measurements; readers fall back to per-type
// sentinel values.
type Details struct {
	Flood    *FloodDetails    `json:"flood,omitempty"`
	Cyclone  *CycloneDetails  `json:"cyclone,omitempty"`
	Quake    *QuakeDetails    `json:"earthquake,omitempty"`
	Heatwave *HeatwaveDetails `json:"heatwave,omitempty"`
}

// FloodDetails holds flood measurements.
type FloodDetails struct {
	WaterLevelM   float64 `json:"water_level_m"`
	RainfallMM24h float64 `json:"rainfall_mm_24h"`
	Coastal       bool    `json:"coastal"`
}

// CycloneDetails holds cyclone measurements.
type CycloneDetails struct {
	MaxWindKmph     float64 `json:"max_wind_speed_kmph"`
	TranslationKmph float64 `json:"translation_speed_kmph"`
	Direction       string  `json:"direction"` // compass point, e.g. "NE"
}

// QuakeDetails holds earthquake measurements.
type QuakeDetails struct {
	Magnitude     float64 `json:"magnitude"`
	EpicenterKM   float64 `json:"epicenter_distance_km"`
	CollapseRatio float64 `json:"building_collapse_ratio"`
}

// HeatwaveDetails holds heatwave measurements.
type HeatwaveDetails struct {
	MaxTempC     float64 `json:"max_temp_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	DurationDays float64 `json:"duration_days"`
}

// #endregion details

// #region sentinels

// Sentinel values used when a scenario carries no measurements for its
// disaster type. These match the defaults the historical corpus was
// recorded against, so distances stay comparable.
const (
	SentinelWaterLevelM = 0.5
	SentinelWindKmph    = 120.0
	SentinelMagnitude   = 5.0
	SentinelMaxTempC    = 45.0
)

// #endregion sentinels

// #region scenario

// Scenario is the canonical, normalized description of one reported
// emergency. All pipeline components consume this type only; raw request
// shapes are converted by Normalize at the boundary.
type Scenario struct {
	DisasterType       DisasterType
	Severity           int     // 1..5
	PopulationAffected int     // >= 0
	ZonesImpacted      []string
	HospitalLoad       float64 // 0..1 after normalization
	BlockedRoads       []string
	Details            Details
	AvailableResources map[string]int // optional caller-supplied override counts
	Notes              string
}

// ZoneCount returns the number of impacted zones.
func (s Scenario) ZoneCount() int { return len(s.ZonesImpacted) }

// KeyMeasurement returns the single most relevant disaster-specific value
// for similarity scoring, substituting the sentinel when absent.
func (s Scenario) KeyMeasurement() float64 {
	switch s.DisasterType {
	case DisasterFlood:
		if s.Details.Flood != nil {
			return s.Details.Flood.WaterLevelM
		}
		return SentinelWaterLevelM
	case DisasterCyclone:
		if s.Details.Cyclone != nil {
			return s.Details.Cyclone.MaxWindKmph
		}
		return SentinelWindKmph
	case DisasterEarthquake:
		if s.Details.Quake != nil {
			return s.Details.Quake.Magnitude
		}
		return SentinelMagnitude
	case DisasterHeatwave:
		if s.Details.Heatwave != nil {
			return s.Details.Heatwave.MaxTempC
		}
		return SentinelMaxTempC
	}
	return 0
}

// #endregion scenario

// #region historical

// Historical is a past incident with the resources actually deployed and
// its recorded outcome. Loaded once at startup, never mutated.
type Historical struct {
	ID       string
	Scenario Scenario
	Deployed map[string]int // resource type -> quantity
	Outcome  string         // "successful" | "partial" | "failed"
}

// #endregion historical
