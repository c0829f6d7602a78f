package estimator

// #region imports
import (
	"context"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// #region provenance

// Provenance records which path produced an estimate.
type Provenance string

const (
	ProvenanceRuleBased Provenance = "rule_based"
	ProvenanceMLHybrid  Provenance = "ml_hybrid"
)

// #endregion provenance

// #region resource-estimate

// ResourceEstimate is the required quantity of each resource type for one
// scenario. All quantities are non-negative integers.
type ResourceEstimate struct {
	MedicalKits int        `json:"medical_kits"`
	FoodPackets int        `json:"food_packets"`
	WaterLiters int        `json:"water_liters"`
	ShelterKits int        `json:"shelter_kits"`
	Boats       int        `json:"boats"`
	Drones      int        `json:"drones"`
	Trucks      int        `json:"trucks"`
	Helicopters int        `json:"helicopters"`
	Provenance  Provenance `json:"provenance"`
}

// ByResource returns the supply and vehicle quantities keyed by resource
// name, in the fixed resource order used across the system.
func (e ResourceEstimate) ByResource() map[string]int {
	return map[string]int{
		"medical_kits": e.MedicalKits,
		"food_packets": e.FoodPackets,
		"water_liters": e.WaterLiters,
		"shelter_kits": e.ShelterKits,
		"boats":        e.Boats,
		"drones":       e.Drones,
		"trucks":       e.Trucks,
		"helicopters":  e.Helicopters,
	}
}

// ResourceOrder is the canonical iteration order for resource names.
var ResourceOrder = []string{
	"medical_kits", "food_packets", "water_liters", "shelter_kits",
	"boats", "drones", "trucks", "helicopters",
}

// #endregion resource-estimate

// #region demand-predictor

// DemandPrediction is the partial estimate a trained model can supply.
type DemandPrediction struct {
	MedicalKits float64
	FoodPackets float64
	WaterLiters float64
	ShelterKits float64
}

// DemandPredictor is the capability interface for an external demand
// model. Implementations must treat any internal failure as an error
// return; the estimator degrades to rule-based output on any error.
type DemandPredictor interface {
	PredictDemand(ctx context.Context, s scenario.Scenario) (DemandPrediction, error)
}

// #endregion demand-predictor
