package risk

// #region imports
import (
	"context"
	"log"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/inventory"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// #region level

// Level is the pipeline's overall severity verdict.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelModerate Level = "MODERATE"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// #endregion level

// #region predictor

// Predictor is an optional, advisory-only risk model. Its label is logged
// and surfaced for interpretability but never overrides the rule cascade.
type Predictor interface {
	PredictRisk(ctx context.Context, s scenario.Scenario) (string, error)
}

// #endregion predictor

// #region classify

// Classify maps a scenario and its inventory snapshot to a risk level.
// Rules are evaluated in order; the first match wins:
//
//	CRITICAL: severity >= 5, or hospital load >= 90%, or any resource gap
//	          exceeding 30% of its available stock
//	HIGH:     severity >= 4 or hospital load >= 75%
//	MODERATE: severity >= 3 or hospital load >= 50%
//	LOW:      otherwise
func Classify(s scenario.Scenario, snapshot inventory.Snapshot) Level {
	switch {
	case s.Severity >= 5 || s.HospitalLoad >= 0.90 || snapshot.HasCriticalGap():
		return LevelCritical
	case s.Severity >= 4 || s.HospitalLoad >= 0.75:
		return LevelHigh
	case s.Severity >= 3 || s.HospitalLoad >= 0.50:
		return LevelModerate
	default:
		return LevelLow
	}
}

// #endregion classify

// #region advisory

// Advisory consults the optional risk model and returns its label, or ""
// when no model is configured or the call fails. The rule-based result
// from Classify stays authoritative either way.
func Advisory(ctx context.Context, p Predictor, s scenario.Scenario, ruleLevel Level) string {
	if p == nil {
		return ""
	}
	label, err := p.PredictRisk(ctx, s)
	if err != nil {
		log.Printf("[RISK] advisory model unavailable: %v", err)
		return ""
	}
	if label != string(ruleLevel) {
		log.Printf("[RISK] advisory=%s rule=%s (rule kept)", label, ruleLevel)
	}
	return label
}

// #endregion advisory
