package scenario

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region request

// Request is the raw wire shape of a reported scenario. It tolerates the
// legacy field aliases still emitted by older clients (severity_level,
// hospital_load_pct, zones_affected); Normalize folds them into the
// canonical Scenario and is the only place aliases are read.
type Request struct {
	DisasterType       string         `json:"disaster_type"`
	Severity           int            `json:"severity"`
	SeverityLevel      int            `json:"severity_level"` // legacy alias
	PopulationAffected int            `json:"population_affected"`
	ZonesImpacted      []string       `json:"zones_impacted"`
	ZonesAffected      []string       `json:"zones_affected"` // legacy alias
	HospitalLoad       float64        `json:"hospital_load"`
	HospitalLoadPct    float64        `json:"hospital_load_pct"` // legacy alias
	BlockedRoads       []string       `json:"blocked_roads"`
	Details            Details        `json:"disaster_specific"`
	AvailableResources map[string]int `json:"available_resources"`
	Notes              string         `json:"notes"`
}

// #endregion request

// #region normalize

// Normalize converts a raw Request into the canonical Scenario, clamping
// where a safe default exists and rejecting where none does.
//
// Rules:
//   - disaster_type must be a known type; anything else is a validation
//     error (there is no safe default for the variant dispatch).
//   - severity is clamped to [1,5].
//   - hospital_load accepts both 0..1 ratios and 0..100 percentages; values
//     above 1 are divided by 100, then the result is clamped to [0,1].
//   - population below zero is clamped to zero.
//   - a Details variant that does not match the disaster type is dropped.
func Normalize(req Request) (Scenario, error) {
	dt := DisasterType(strings.ToLower(strings.TrimSpace(req.DisasterType)))
	if req.DisasterType == "" {
		return Scenario{}, fmt.Errorf("disaster_type is required")
	}
	if !dt.Known() {
		return Scenario{}, fmt.Errorf("unknown disaster_type %q", req.DisasterType)
	}

	severity := req.Severity
	if severity == 0 {
		severity = req.SeverityLevel
	}
	if severity < 1 {
		severity = 1
	}
	if severity > 5 {
		severity = 5
	}

	load := req.HospitalLoad
	if load == 0 {
		load = req.HospitalLoadPct
	}
	if load > 1 {
		load = load / 100.0
	}
	if load < 0 {
		load = 0
	}
	if load > 1 {
		load = 1
	}

	population := req.PopulationAffected
	if population < 0 {
		population = 0
	}

	zones := req.ZonesImpacted
	if len(zones) == 0 {
		zones = req.ZonesAffected
	}

	s := Scenario{
		DisasterType:       dt,
		Severity:           severity,
		PopulationAffected: population,
		ZonesImpacted:      append([]string(nil), zones...),
		HospitalLoad:       load,
		BlockedRoads:       append([]string(nil), req.BlockedRoads...),
		Details:            pruneDetails(dt, req.Details),
		AvailableResources: req.AvailableResources,
		Notes:              req.Notes,
	}
	return s, nil
}

// #endregion normalize

// #region prune-details

// pruneDetails keeps only the variant matching the disaster type.
func pruneDetails(dt DisasterType, d Details) Details {
	var out Details
	switch dt {
	case DisasterFlood:
		out.Flood = d.Flood
	case DisasterCyclone:
		out.Cyclone = d.Cyclone
	case DisasterEarthquake:
		out.Quake = d.Quake
	case DisasterHeatwave:
		out.Heatwave = d.Heatwave
	}
	return out
}

// #endregion prune-details
