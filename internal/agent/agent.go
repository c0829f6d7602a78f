package agent

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/actions"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/estimator"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/inventory"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/ledger"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/refdata"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/risk"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/routing"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/similarity"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/weather"
	"github.com/google/uuid"
)

// #endregion

// #region errors

// ErrUnknownDecision marks feedback against an id the ledger has never
// seen.
var ErrUnknownDecision = errors.New("unknown decision")

// ErrAlreadyResolved marks feedback against a decision whose status has
// already transitioned away from pending.
var ErrAlreadyResolved = errors.New("decision already resolved")

// #endregion errors

// #region config

// Config tunes the agent.
type Config struct {
	StartNode string // dispatch origin in the road network
	TopK      int    // similar scenarios consulted per decision
}

// DefaultConfig returns the agent defaults.
func DefaultConfig() Config {
	return Config{StartNode: "Central_Depot", TopK: similarity.DefaultTopK}
}

// #endregion config

// #region insight-provider

// InsightProvider supplies the optional interpretability payload for a
// decision. The predictor client satisfies it; nil disables the payload.
type InsightProvider interface {
	FeatureImportance(ctx context.Context) (map[string]map[string]float64, error)
}

// #endregion insight-provider

// #region agent-struct

// Agent runs the full decision pipeline against one scenario at a time
// and owns the two pieces of mutable state: the decision ledger and the
// learning weights. A single mutex serializes both, so concurrent
// requests cannot lose updates. All reference data is immutable.
type Agent struct {
	config    Config
	bundle    refdata.Bundle
	matcher   *similarity.Matcher
	estimator *estimator.Estimator
	planner   *routing.Planner
	weather   *weather.Generator
	store     *ledger.Store

	riskModel risk.Predictor  // optional, advisory only
	insights  InsightProvider // optional

	mu sync.Mutex
}

// New wires an Agent. demandPredictor, riskModel, and insights may all be
// nil; the pipeline then runs purely rule-based.
func New(config Config, bundle refdata.Bundle, store *ledger.Store,
	demandPredictor estimator.DemandPredictor, riskModel risk.Predictor, insights InsightProvider) *Agent {

	if config.StartNode == "" {
		config.StartNode = "Central_Depot"
	}
	if config.TopK <= 0 {
		config.TopK = similarity.DefaultTopK
	}

	return &Agent{
		config:    config,
		bundle:    bundle,
		matcher:   similarity.NewMatcher(similarity.DefaultWeights()),
		estimator: estimator.NewEstimator(demandPredictor),
		planner:   routing.NewPlanner(bundle.Network, routing.DefaultConfig()),
		weather:   weather.NewGenerator(time.Now().UnixNano()),
		store:     store,
		riskModel: riskModel,
		insights:  insights,
	}
}

// Planner exposes the route planner for ad-hoc map queries.
func (a *Agent) Planner() *routing.Planner { return a.planner }

// Bundle exposes the immutable reference data.
func (a *Agent) Bundle() refdata.Bundle { return a.bundle }

// #endregion agent-struct

// #region decide

// Decide runs the pipeline for one normalized scenario and appends the
// resulting decision to the ledger.
func (a *Agent) Decide(ctx context.Context, s scenario.Scenario) (ledger.Decision, error) {
	// 1. Nearest historical incidents.
	matches := a.matcher.FindSimilar(s, a.bundle.Corpus, a.config.TopK)

	// 2. Resource demand.
	est := a.estimator.Estimate(ctx, s, matches)

	// 3. Inventory gaps.
	snapshot := inventory.Check(est, a.bundle.Depots, s.AvailableResources)

	// 4. Routes to every impacted zone.
	routes := a.planner.RoutesToZones(a.config.StartNode, s.ZonesImpacted, s.BlockedRoads)

	// 5. Risk verdict; advisory model label logged only.
	level := risk.Classify(s, snapshot)
	advisory := risk.Advisory(ctx, a.riskModel, s, level)

	// 6. Directives.
	recommended := actions.Recommend(s, routes, est, snapshot)

	decision := ledger.Decision{
		ID:         uuid.New().String()[:8],
		Timestamp:  time.Now().UTC(),
		Summary:    summarize(s),
		RiskLevel:  level,
		Routes:     zoneRoutes(s.ZonesImpacted, routes),
		Dispatched: dispatched(est),
		Actions:    recommended,
		Status:     ledger.StatusPending,
		Weather:    a.weather.Snapshot(s),
		SupplyGap:  snapshot.Gap("medical_kits"),
		Coverage:   coverage(snapshot),
		Similar:    similarSummaries(matches),
		Insight:    a.insight(ctx, advisory, est),
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.AppendDecision(decision); err != nil {
		return ledger.Decision{}, fmt.Errorf("append decision: %w", err)
	}
	if _, err := a.store.AppendActivity("decision",
		fmt.Sprintf("Agent decision generated: %s risk", level),
		map[string]any{"decision_id": decision.ID, "routes": len(decision.Routes), "resources": len(decision.Dispatched)},
	); err != nil {
		log.Printf("[AGENT] activity log: %v", err)
	}

	log.Printf("[AGENT] decision=%s risk=%s gap=%d coverage=%.1f provenance=%s",
		decision.ID, level, decision.SupplyGap, decision.Coverage, est.Provenance)
	return decision, nil
}

// #endregion decide

// #region feedback

// RecordFeedback applies an operator action to a decision. Approve and
// abort adjust the learning weights; modify only transitions the status.
// The status transition happens exactly once per decision.
func (a *Agent) RecordFeedback(decisionID, action string) (ledger.Decision, error) {
	var status, event string
	var factor float64
	switch action {
	case "approve":
		status, event, factor = ledger.StatusApproved, "decision", 1.01
	case "abort":
		status, event, factor = ledger.StatusAborted, "override", 0.98
	case "modify":
		status, event = ledger.StatusModified, "decision"
	default:
		return ledger.Decision{}, fmt.Errorf("unknown feedback action %q", action)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	_, found, err := a.store.GetDecision(decisionID)
	if err != nil {
		return ledger.Decision{}, err
	}
	if !found {
		return ledger.Decision{}, ErrUnknownDecision
	}

	changed, err := a.store.TransitionStatus(decisionID, status)
	if err != nil {
		return ledger.Decision{}, err
	}
	if !changed {
		return ledger.Decision{}, ErrAlreadyResolved
	}

	if factor != 0 {
		weights, err := a.store.Weights()
		if err != nil {
			return ledger.Decision{}, err
		}
		weights = weights.Scale(factor)
		if err := a.store.SaveWeights(weights); err != nil {
			return ledger.Decision{}, err
		}
		log.Printf("[AGENT] weights updated on %s: medical=%.4f evacuation=%.4f infrastructure=%.4f",
			action, weights.Medical, weights.Evacuation, weights.Infrastructure)
	}

	if _, err := a.store.AppendActivity(event,
		fmt.Sprintf("Decision %s %s", decisionID, status),
		map[string]any{"action": action},
	); err != nil {
		log.Printf("[AGENT] activity log: %v", err)
	}

	d, _, err := a.store.GetDecision(decisionID)
	return d, err
}

// #endregion feedback

// #region builders

func summarize(s scenario.Scenario) string {
	summary := fmt.Sprintf("%s affecting %s people in %s. Severity: %d/5. Hospital load: %.0f%%.",
		titleCase(string(s.DisasterType)), formatCount(s.PopulationAffected),
		strings.Join(s.ZonesImpacted, ", "), s.Severity, s.HospitalLoad*100)
	if len(s.ZonesImpacted) == 0 {
		summary = fmt.Sprintf("%s affecting %s people; no impacted zones reported. Severity: %d/5. Hospital load: %.0f%%.",
			titleCase(string(s.DisasterType)), formatCount(s.PopulationAffected), s.Severity, s.HospitalLoad*100)
	}
	if len(s.BlockedRoads) > 0 {
		summary += fmt.Sprintf(" Blocked roads: %s.", strings.Join(s.BlockedRoads, ", "))
	}
	return summary
}

func zoneRoutes(zones []string, routes map[string]*routing.RouteResult) []ledger.ZoneRoute {
	var out []ledger.ZoneRoute
	for _, zone := range zones {
		r := routes[zone]
		if r == nil {
			continue
		}
		out = append(out, ledger.ZoneRoute{
			Zone:        zone,
			Path:        r.Path,
			Coordinates: r.Coordinates,
			DistanceKM:  r.DistanceKM,
			TimeMin:     r.TimeMin,
			Roads:       r.RoadsUsed,
		})
	}
	return out
}

func dispatched(est estimator.ResourceEstimate) []ledger.Dispatch {
	out := []ledger.Dispatch{
		{Type: "medical_kits", Quantity: est.MedicalKits, Status: "dispatching"},
		{Type: "food_packets", Quantity: est.FoodPackets, Status: "dispatching"},
		{Type: "water_liters", Quantity: est.WaterLiters, Status: "dispatching"},
		{Type: "trucks", Quantity: est.Trucks, Status: "deploying"},
	}
	if est.Boats > 0 {
		out = append(out, ledger.Dispatch{Type: "boats", Quantity: est.Boats, Status: "deploying"})
	}
	if est.Drones > 0 {
		out = append(out, ledger.Dispatch{Type: "drones", Quantity: est.Drones, Status: "deploying"})
	}
	if est.Helicopters > 0 {
		out = append(out, ledger.Dispatch{Type: "helicopters", Quantity: est.Helicopters, Status: "standby"})
	}
	return out
}

func coverage(snapshot inventory.Snapshot) float64 {
	line := snapshot["medical_kits"]
	required := line.Required
	if required < 1 {
		required = 1
	}
	pct := float64(line.Available) / float64(required) * 100
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*10) / 10
}

func similarSummaries(matches []similarity.Result) []ledger.SimilarSummary {
	out := make([]ledger.SimilarSummary, 0, len(matches))
	for _, m := range matches {
		out = append(out, ledger.SimilarSummary{
			ID:           m.Historical.ID,
			Distance:     m.Distance,
			Severity:     m.Historical.Scenario.Severity,
			HospitalLoad: m.Historical.Scenario.HospitalLoad,
		})
	}
	return out
}

func (a *Agent) insight(ctx context.Context, advisory string, est estimator.ResourceEstimate) *ledger.Interpretability {
	payload := &ledger.Interpretability{
		AdvisoryRisk: advisory,
		Provenance:   string(est.Provenance),
	}
	if a.insights != nil {
		importance, err := a.insights.FeatureImportance(ctx)
		if err != nil {
			log.Printf("[AGENT] feature importance unavailable: %v", err)
		} else {
			payload.FeatureImportance = importance
		}
	}
	return payload
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// #endregion builders
