package actions

// #region imports
import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/estimator"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/inventory"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/routing"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// #region recommend

// Recommend produces the ordered directive list for a decision. The rule
// order is fixed and observable: dashboards and operators rely on the
// medical line always coming first and the convoy line always appearing.
// Each rule appends at most one line; a missing trigger is silent.
func Recommend(s scenario.Scenario, routes map[string]*routing.RouteResult,
	est estimator.ResourceEstimate, snapshot inventory.Snapshot) []string {

	var out []string
	zones := strings.Join(s.ZonesImpacted, ", ")

	// Medical: shortage alert or deployment confirmation.
	if gap := snapshot.Gap("medical_kits"); gap > 0 {
		out = append(out, fmt.Sprintf("ALERT: Medical kit shortage of %d units. Requesting emergency resupply.", gap))
	} else {
		out = append(out, fmt.Sprintf("Deploy %d medical kits to affected zones.", est.MedicalKits))
	}

	// Boats for water-borne disasters.
	if (s.DisasterType == scenario.DisasterFlood || s.DisasterType == scenario.DisasterCyclone) && est.Boats > 0 {
		out = append(out, fmt.Sprintf("Deploy rescue boats to flooded / cut-off zones. -> Resource: boats x %d -> Zones: %s", est.Boats, zones))
	}

	// Earthquake search and assessment (covers the drone fleet too).
	if s.DisasterType == scenario.DisasterEarthquake {
		out = append(out, fmt.Sprintf("Launch drone-assisted search and structural assessment sweeps. -> Resource: drones x %d -> Zones: %s", est.Drones, zones))
	}

	// Drone supply delivery, except for earthquakes where the sweep
	// directive already commits the fleet.
	if s.DisasterType != scenario.DisasterEarthquake && est.Drones > 0 {
		out = append(out, fmt.Sprintf("Use drones to deliver critical supplies to inaccessible areas. -> Resource: drones x %d -> Zones: %s", est.Drones, zones))
	}

	// Ground convoy, always.
	out = append(out, fmt.Sprintf("Dispatch ground convoy with supplies. -> Resource: trucks x %d", est.Trucks))

	// Blocked roads.
	if len(s.BlockedRoads) > 0 {
		out = append(out, fmt.Sprintf("Reroute ground vehicles to avoid blocked roads: %s -> Zones: %s", strings.Join(s.BlockedRoads, ", "), zones))
	}

	// Hospital surge.
	if s.HospitalLoad >= 0.70 {
		out = append(out, fmt.Sprintf("Trigger hospital surge support protocol. ICU load at %.0f%%", s.HospitalLoad*100))
	}

	// Disaster-specific escalation.
	if line := escalation(s); line != "" {
		out = append(out, line)
	}

	// Helicopters.
	if est.Helicopters > 0 {
		out = append(out, fmt.Sprintf("Dispatch helicopter for emergency evacuation. -> Resource: helicopters x %d", est.Helicopters))
	}

	// Pre-positioning.
	if s.Severity >= 3 {
		out = append(out, "Pre-position additional supplies at nearest operational depot for rapid redeployment.")
	}

	return out
}

// #endregion recommend

// #region escalation

func escalation(s scenario.Scenario) string {
	switch s.DisasterType {
	case scenario.DisasterFlood:
		if f := s.Details.Flood; f != nil {
			if f.WaterLevelM > 1.5 {
				return fmt.Sprintf("Escalate flood response: water level at %.1f m. Evacuate low-lying settlements.", f.WaterLevelM)
			}
			if f.Coastal {
				return "Coastal flooding in effect. Coordinate with coast guard for shoreline evacuation."
			}
		}
	case scenario.DisasterCyclone:
		if c := s.Details.Cyclone; c != nil && c.MaxWindKmph >= 120 {
			dir := c.Direction
			if dir == "" {
				dir = "unknown heading"
			}
			return fmt.Sprintf("Cyclone winds at %.0f km/h (%s). Ground all drone operations above severity threshold.", c.MaxWindKmph, dir)
		}
	case scenario.DisasterHeatwave:
		if h := s.Details.Heatwave; h != nil && h.MaxTempC >= 45 {
			return fmt.Sprintf("Open cooling centres: peak temperature %.0f deg C. Prioritise water distribution.", h.MaxTempC)
		}
	case scenario.DisasterEarthquake:
		if q := s.Details.Quake; q != nil && q.Magnitude >= 6.0 {
			return fmt.Sprintf("Magnitude %.1f event: activate urban search-and-rescue taskforce and aftershock watch.", q.Magnitude)
		}
	}
	return ""
}

// #endregion escalation
