package estimator

// #region imports
import (
	"context"
	"log"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/similarity"
)

// #endregion

// #region estimator
// Estimator converts a scenario plus its nearest historical matches into
// required resource quantities. The predictor is optional; a nil predictor
// or any predictor error yields pure rule-based output.
type Estimator struct {
	predictor DemandPredictor
}

// NewEstimator creates an Estimator. predictor may be nil.
func NewEstimator(predictor DemandPredictor) *Estimator {
	return &Estimator{predictor: predictor}
}

// #endregion estimator

// #region estimate
// Estimate produces the full resource estimate for a scenario.
//
// Supply quantities are built in three ordered stages:
//  1. humanitarian baseline rules
//  2. 70/30 blend with the model prediction, when one is available
//  3. 50/50 blend of medical kits with the mean historical deployment,
//     when that mean is positive
//
// Vehicle quantities are disaster-type rules only.
func (e *Estimator) Estimate(ctx context.Context, s scenario.Scenario, matches []similarity.Result) ResourceEstimate {
	population := float64(s.PopulationAffected)

	// 1. Baseline rules. Roughly 10% of the affected population needs
	// immediate care, scaled by how loaded hospitals already are.
	peopleNeedingCare := population * 0.10 * (s.HospitalLoad / 0.5)
	medical := maxF(100, peopleNeedingCare/10)
	food := population / 10
	water := population * 3 // liters per person per day
	shelter := population / 100

	provenance := ProvenanceRuleBased

	// 2. Model blend.
	if e.predictor != nil {
		pred, err := e.predictor.PredictDemand(ctx, s)
		if err != nil {
			log.Printf("[ESTIMATE] predictor unavailable, using rules: %v", err)
		} else {
			medical = 0.7*pred.MedicalKits + 0.3*medical
			food = 0.7*pred.FoodPackets + 0.3*food
			water = 0.7*pred.WaterLiters + 0.3*water
			shelter = 0.7*pred.ShelterKits + 0.3*shelter
			provenance = ProvenanceMLHybrid
		}
	}

	// 3. Historical correction for medical kits.
	if mean := meanDeployedMedical(matches); mean > 0 {
		medical = (medical + mean) / 2
	}

	est := ResourceEstimate{
		MedicalKits: truncate(medical),
		FoodPackets: truncate(food),
		WaterLiters: truncate(water),
		ShelterKits: truncate(shelter),
		Provenance:  provenance,
	}
	e.applyVehicleRules(&est, s)
	return est
}

// #endregion estimate

// #region vehicle-rules

func (e *Estimator) applyVehicleRules(est *ResourceEstimate, s scenario.Scenario) {
	zc := s.ZoneCount()
	sev := s.Severity

	// Defaults for every type.
	est.Trucks = maxI(2, zc*2)
	est.Drones = maxI(1, zc)

	switch s.DisasterType {
	case scenario.DisasterFlood, scenario.DisasterCyclone:
		est.Boats = maxI(1, sev-1) * zc
		waterLevel := 0.0
		if s.Details.Flood != nil {
			waterLevel = s.Details.Flood.WaterLevelM
		}
		if s.DisasterType == scenario.DisasterFlood && waterLevel > 1.0 {
			est.Boats += 2
		}
		if sev >= 4 || waterLevel > 1.5 {
			est.Helicopters = 1
		}
		if sev >= 5 {
			est.Helicopters = 2
		}

	case scenario.DisasterEarthquake:
		est.Trucks = maxI(4, zc*3)
		est.Drones = maxI(2, zc*2)
		if s.Details.Quake != nil {
			if s.Details.Quake.CollapseRatio > 0.2 {
				est.Helicopters = 1
			}
			if s.Details.Quake.CollapseRatio > 0.3 {
				est.Helicopters = 2
			}
		}

	case scenario.DisasterHeatwave:
		est.Trucks = maxI(3, zc*2)
	}
}

// #endregion vehicle-rules

// #region helpers

func meanDeployedMedical(matches []similarity.Result) float64 {
	if len(matches) == 0 {
		return 0
	}
	var sum float64
	for _, m := range matches {
		sum += float64(m.Historical.Deployed["medical_kits"])
	}
	return sum / float64(len(matches))
}

func truncate(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// #endregion helpers
