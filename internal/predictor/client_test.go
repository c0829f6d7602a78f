package predictor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// #region mock

type mockInvoker struct {
	lastMethod string
	lastArgs   *structpb.Struct
	reply      map[string]any
	err        error
}

func (m *mockInvoker) Invoke(_ context.Context, method string, args, reply any, _ ...grpc.CallOption) error {
	m.lastMethod = method
	if st, ok := args.(*structpb.Struct); ok {
		m.lastArgs = st
	}
	if m.err != nil {
		return m.err
	}
	st, err := structpb.NewStruct(m.reply)
	if err != nil {
		return err
	}
	reply.(*structpb.Struct).Fields = st.Fields
	return nil
}

// #endregion mock

func floodScenario() scenario.Scenario {
	return scenario.Scenario{
		DisasterType:       scenario.DisasterFlood,
		Severity:           4,
		PopulationAffected: 25000,
		ZonesImpacted:      []string{"North"},
		HospitalLoad:       0.75,
		Details:            scenario.Details{Flood: &scenario.FloodDetails{WaterLevelM: 1.2, Coastal: true}},
	}
}

func TestPredictDemand(t *testing.T) {
	inv := &mockInvoker{reply: map[string]any{
		"medical_kits": 450.0, "food_packets": 2500.0, "water_liters": 75000.0, "shelter_kits": 250.0,
	}}
	c := NewClientWithInvoker(inv, time.Second)

	pred, err := c.PredictDemand(context.Background(), floodScenario())
	if err != nil {
		t.Fatalf("PredictDemand: %v", err)
	}
	if inv.lastMethod != methodPredict {
		t.Fatalf("wrong method: %s", inv.lastMethod)
	}
	if pred.MedicalKits != 450 || pred.WaterLiters != 75000 {
		t.Fatalf("prediction mismatch: %+v", pred)
	}
}

func TestPredictDemand_ScenarioWireShape(t *testing.T) {
	inv := &mockInvoker{reply: map[string]any{"medical_kits": 1.0}}
	c := NewClientWithInvoker(inv, time.Second)

	if _, err := c.PredictDemand(context.Background(), floodScenario()); err != nil {
		t.Fatalf("PredictDemand: %v", err)
	}

	fields := inv.lastArgs.Fields
	if fields["disaster_type"].GetStringValue() != "flood" {
		t.Fatalf("disaster_type missing: %v", fields)
	}
	if fields["severity"].GetNumberValue() != 4 {
		t.Fatalf("severity missing: %v", fields)
	}
	specific := fields["disaster_specific"].GetStructValue()
	if specific == nil {
		t.Fatal("disaster_specific missing")
	}
	if specific.Fields["water_level_m"].GetNumberValue() != 1.2 {
		t.Fatalf("water level missing: %v", specific)
	}
	if !specific.Fields["coastal"].GetBoolValue() {
		t.Fatal("coastal flag missing")
	}
}

func TestPredictDemand_TransportError(t *testing.T) {
	inv := &mockInvoker{err: errors.New("connection refused")}
	c := NewClientWithInvoker(inv, time.Second)

	if _, err := c.PredictDemand(context.Background(), floodScenario()); err == nil {
		t.Fatal("expected error on transport failure")
	}
}

func TestPredictRisk(t *testing.T) {
	inv := &mockInvoker{reply: map[string]any{"risk_level": "HIGH"}}
	c := NewClientWithInvoker(inv, time.Second)

	label, err := c.PredictRisk(context.Background(), floodScenario())
	if err != nil {
		t.Fatalf("PredictRisk: %v", err)
	}
	if inv.lastMethod != methodPredictRisk {
		t.Fatalf("wrong method: %s", inv.lastMethod)
	}
	if label != "HIGH" {
		t.Fatalf("expected HIGH, got %q", label)
	}
}

func TestPredictRisk_EmptyLabel(t *testing.T) {
	inv := &mockInvoker{reply: map[string]any{}}
	c := NewClientWithInvoker(inv, time.Second)

	if _, err := c.PredictRisk(context.Background(), floodScenario()); err == nil {
		t.Fatal("expected error on empty label")
	}
}

func TestFeatureImportance(t *testing.T) {
	inv := &mockInvoker{reply: map[string]any{
		"medical_kits": map[string]any{"severity": 0.4, "population_affected": 0.35},
	}}
	c := NewClientWithInvoker(inv, time.Second)

	out, err := c.FeatureImportance(context.Background())
	if err != nil {
		t.Fatalf("FeatureImportance: %v", err)
	}
	if inv.lastMethod != methodFeatureImportance {
		t.Fatalf("wrong method: %s", inv.lastMethod)
	}
	if out["medical_kits"]["severity"] != 0.4 {
		t.Fatalf("importance mismatch: %+v", out)
	}
}

func TestClose_NilConn(t *testing.T) {
	c := NewClientWithInvoker(&mockInvoker{}, 0)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
