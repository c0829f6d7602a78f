package inventory

// #region imports
import (
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/estimator"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/refdata"
)

// #endregion

// #region types

// Line is the required/available/gap triple for one resource.
type Line struct {
	Required  int `json:"required"`
	Available int `json:"available"`
	Gap       int `json:"gap"`
}

// Snapshot maps every resource type in the estimate to its supply line.
type Snapshot map[string]Line

// Gap returns the shortfall for a resource, zero when unknown.
func (s Snapshot) Gap(resource string) int { return s[resource].Gap }

// HasCriticalGap reports whether any resource is short by more than 30% of
// its available stock. Feeds the CRITICAL risk rule.
func (s Snapshot) HasCriticalGap() bool {
	for _, line := range s {
		if line.Gap > 0 && float64(line.Gap) > float64(line.Available)*0.3 {
			return true
		}
	}
	return false
}

// #endregion types

// #region check

// Check aggregates stock across all depots and compares it against the
// required estimate. Caller overrides only ever raise the available pool:
// available = max(depot total, override). Pure; depot data is never
// mutated.
func Check(required estimator.ResourceEstimate, depots []refdata.Depot, override map[string]int) Snapshot {
	totals := make(map[string]int)
	for _, d := range depots {
		for resource, amount := range d.Resources {
			totals[resource] += amount
		}
		for vehicle, count := range d.Vehicles {
			totals[vehicle] += count
		}
	}

	snapshot := make(Snapshot, len(estimator.ResourceOrder))
	for resource, req := range required.ByResource() {
		available := totals[resource]
		if ov, ok := override[resource]; ok && ov > available {
			available = ov
		}
		gap := req - available
		if gap < 0 {
			gap = 0
		}
		snapshot[resource] = Line{Required: req, Available: available, Gap: gap}
	}
	return snapshot
}

// #endregion check
