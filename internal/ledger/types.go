package ledger

// #region imports
import (
	"time"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/risk"
)

// #endregion

// #region status

// Decision lifecycle statuses. A decision is created pending and its
// status is mutated at most once by an operator action.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusAborted  = "aborted"
	StatusModified = "modified"
)

// #endregion status

// #region zone-route

// ZoneRoute is a planned route to one impacted zone.
type ZoneRoute struct {
	Zone        string       `json:"zone"`
	Path        []string     `json:"path"`
	Coordinates [][2]float64 `json:"path_coordinates"`
	DistanceKM  float64      `json:"distance_km"`
	TimeMin     float64      `json:"time_min"`
	Roads       []string     `json:"roads"`
}

// #endregion zone-route

// #region dispatch

// Dispatch is one resource commitment on a decision.
type Dispatch struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"` // "dispatching" | "deploying" | "standby"
}

// #endregion dispatch

// #region similar-summary

// SimilarSummary is the compact view of one matched historical scenario.
type SimilarSummary struct {
	ID           string  `json:"id"`
	Distance     float64 `json:"distance"`
	Severity     int     `json:"severity"`
	HospitalLoad float64 `json:"hospital_load"`
}

// #endregion similar-summary

// #region interpretability

// Interpretability carries the advisory model outputs attached to a
// decision when a predictor is live. Informational only.
type Interpretability struct {
	AdvisoryRisk      string                        `json:"advisory_risk,omitempty"`
	FeatureImportance map[string]map[string]float64 `json:"feature_importance,omitempty"`
	Provenance        string                        `json:"provenance"`
}

// #endregion interpretability

// #region decision

// Decision is the persisted output of one pipeline run.
type Decision struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	Summary    string            `json:"scenario_summary"`
	RiskLevel  risk.Level        `json:"risk_level"`
	Routes     []ZoneRoute       `json:"selected_routes"`
	Dispatched []Dispatch        `json:"resources_dispatched"`
	Actions    []string          `json:"recommended_actions"`
	Status     string            `json:"status"`
	Weather    map[string]any    `json:"weather_snapshot"`
	SupplyGap  int               `json:"supply_gap"`
	Coverage   float64           `json:"estimated_coverage"`
	Similar    []SimilarSummary  `json:"similar_scenarios"`
	Insight    *Interpretability `json:"interpretability,omitempty"`
}

// #endregion decision

// #region weights

// Weights are the agent's adaptive learning weights. They are updated
// multiplicatively on operator feedback and renormalized so their sum
// stays at WeightSum. No downstream component consumes them yet; the
// mechanism is kept for future estimate weighting.
type Weights struct {
	Medical        float64 `json:"medical"`
	Evacuation     float64 `json:"evacuation"`
	Infrastructure float64 `json:"infrastructure"`
}

// WeightSum is the invariant total of the three weights.
const WeightSum = 3.0

// InitialWeights returns the untrained starting point.
func InitialWeights() Weights {
	return Weights{Medical: 1.0, Evacuation: 1.0, Infrastructure: 1.0}
}

// Scale multiplies every weight by factor, then renormalizes so the sum
// is WeightSum again.
func (w Weights) Scale(factor float64) Weights {
	w.Medical *= factor
	w.Evacuation *= factor
	w.Infrastructure *= factor

	total := w.Medical + w.Evacuation + w.Infrastructure
	if total <= 0 {
		return InitialWeights()
	}
	norm := WeightSum / total
	w.Medical *= norm
	w.Evacuation *= norm
	w.Infrastructure *= norm
	return w
}

// Sum returns the weight total.
func (w Weights) Sum() float64 {
	return w.Medical + w.Evacuation + w.Infrastructure
}

// #endregion weights

// #region activity

// ActivityEntry is one row of the append-only event feed.
type ActivityEntry struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	EventType   string         `json:"event_type"`
	Description string         `json:"description"`
	Details     map[string]any `json:"details,omitempty"`
}

// #endregion activity
