package predictor

// #region imports
import (
	"context"
	"fmt"
	"time"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/estimator"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// #endregion

// #region methods

// RPC method names on the Python model service. The service speaks
// JSON-shaped google.protobuf.Struct messages on both sides, so no
// generated stubs are needed here.
const (
	methodPredict           = "/reliefroute.Predictor/Predict"
	methodPredictRisk       = "/reliefroute.Predictor/PredictRisk"
	methodFeatureImportance = "/reliefroute.Predictor/FeatureImportance"
)

// #endregion methods

// #region client-struct

// invoker is the slice of grpc.ClientConn the client needs. Tests inject a
// fake; production uses a real connection.
type invoker interface {
	Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error
}

// Client wraps the gRPC connection to the Python demand/risk model
// service. Every call is bounded by the configured timeout; any transport
// or model error is returned as-is and callers degrade to rule-based
// behavior.
type Client struct {
	conn    *grpc.ClientConn
	invoker invoker
	timeout time.Duration
}

// #endregion client-struct

// #region constructor

// NewClient connects to the model service.
func NewClient(addr string, timeout time.Duration) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{conn: conn, invoker: conn, timeout: timeout}, nil
}

// NewClientWithInvoker creates a Client with an injected transport.
// Used for testing without a real gRPC connection.
func NewClientWithInvoker(inv invoker, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{invoker: inv, timeout: timeout}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region predict-demand

// PredictDemand asks the model for the four supply quantities it is
// trained on. Satisfies estimator.DemandPredictor.
func (c *Client) PredictDemand(ctx context.Context, s scenario.Scenario) (estimator.DemandPrediction, error) {
	req, err := scenarioStruct(s)
	if err != nil {
		return estimator.DemandPrediction{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp := &structpb.Struct{}
	if err := c.invoker.Invoke(ctx, methodPredict, req, resp); err != nil {
		return estimator.DemandPrediction{}, fmt.Errorf("predict rpc: %w", err)
	}

	return estimator.DemandPrediction{
		MedicalKits: resp.Fields["medical_kits"].GetNumberValue(),
		FoodPackets: resp.Fields["food_packets"].GetNumberValue(),
		WaterLiters: resp.Fields["water_liters"].GetNumberValue(),
		ShelterKits: resp.Fields["shelter_kits"].GetNumberValue(),
	}, nil
}

// #endregion predict-demand

// #region predict-risk

// PredictRisk returns the model's advisory risk label. Satisfies
// risk.Predictor.
func (c *Client) PredictRisk(ctx context.Context, s scenario.Scenario) (string, error) {
	req, err := scenarioStruct(s)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp := &structpb.Struct{}
	if err := c.invoker.Invoke(ctx, methodPredictRisk, req, resp); err != nil {
		return "", fmt.Errorf("predict risk rpc: %w", err)
	}

	label := resp.Fields["risk_level"].GetStringValue()
	if label == "" {
		return "", fmt.Errorf("predict risk rpc: empty label")
	}
	return label, nil
}

// #endregion predict-risk

// #region feature-importance

// FeatureImportance fetches the per-resource feature weights for the
// interpretability payload.
func (c *Client) FeatureImportance(ctx context.Context) (map[string]map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp := &structpb.Struct{}
	if err := c.invoker.Invoke(ctx, methodFeatureImportance, &structpb.Struct{}, resp); err != nil {
		return nil, fmt.Errorf("feature importance rpc: %w", err)
	}

	out := make(map[string]map[string]float64, len(resp.Fields))
	for resource, v := range resp.Fields {
		features := v.GetStructValue()
		if features == nil {
			continue
		}
		m := make(map[string]float64, len(features.Fields))
		for name, w := range features.Fields {
			m[name] = w.GetNumberValue()
		}
		out[resource] = m
	}
	return out, nil
}

// #endregion feature-importance

// #region scenario-struct

// scenarioStruct flattens a scenario into the wire shape the model
// service expects.
func scenarioStruct(s scenario.Scenario) (*structpb.Struct, error) {
	zones := make([]any, len(s.ZonesImpacted))
	for i, z := range s.ZonesImpacted {
		zones[i] = z
	}
	blocked := make([]any, len(s.BlockedRoads))
	for i, r := range s.BlockedRoads {
		blocked[i] = r
	}

	fields := map[string]any{
		"disaster_type":       string(s.DisasterType),
		"severity":            s.Severity,
		"population_affected": s.PopulationAffected,
		"zones_impacted":      zones,
		"hospital_load":       s.HospitalLoad,
		"blocked_roads":       blocked,
		"notes":               s.Notes,
	}

	switch {
	case s.Details.Flood != nil:
		fields["disaster_specific"] = map[string]any{
			"water_level_m":   s.Details.Flood.WaterLevelM,
			"rainfall_mm_24h": s.Details.Flood.RainfallMM24h,
			"coastal":         s.Details.Flood.Coastal,
		}
	case s.Details.Cyclone != nil:
		fields["disaster_specific"] = map[string]any{
			"max_wind_speed_kmph":    s.Details.Cyclone.MaxWindKmph,
			"translation_speed_kmph": s.Details.Cyclone.TranslationKmph,
			"direction":              s.Details.Cyclone.Direction,
		}
	case s.Details.Quake != nil:
		fields["disaster_specific"] = map[string]any{
			"magnitude":               s.Details.Quake.Magnitude,
			"epicenter_distance_km":   s.Details.Quake.EpicenterKM,
			"building_collapse_ratio": s.Details.Quake.CollapseRatio,
		}
	case s.Details.Heatwave != nil:
		fields["disaster_specific"] = map[string]any{
			"max_temp_c":    s.Details.Heatwave.MaxTempC,
			"humidity_pct":  s.Details.Heatwave.HumidityPct,
			"duration_days": s.Details.Heatwave.DurationDays,
		}
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode scenario: %w", err)
	}
	return st, nil
}

// #endregion scenario-struct
