package ledger

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/risk"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDecision(id string) Decision {
	return Decision{
		ID:        id,
		Timestamp: time.Now().UTC(),
		Summary:   "Flood affecting 25,000 people in North, Central. Severity: 4/5. Hospital load: 75%.",
		RiskLevel: risk.LevelHigh,
		Routes: []ZoneRoute{
			{Zone: "North", Path: []string{"Central_Depot", "Zone_North"}, DistanceKM: 7, TimeMin: 21, Roads: []string{"NH_48"}},
		},
		Dispatched: []Dispatch{{Type: "medical_kits", Quantity: 450, Status: "dispatching"}},
		Actions:    []string{"Dispatch ground convoy with supplies. -> Resource: trucks x 4"},
		Status:     StatusPending,
		SupplyGap:  50,
		Coverage:   88.9,
	}
}

func TestAppendAndGetDecision(t *testing.T) {
	s := tempStore(t)

	if err := s.AppendDecision(sampleDecision("abc12345")); err != nil {
		t.Fatalf("AppendDecision: %v", err)
	}

	d, found, err := s.GetDecision("abc12345")
	if err != nil {
		t.Fatalf("GetDecision: %v", err)
	}
	if !found {
		t.Fatal("expected decision found")
	}
	if d.RiskLevel != risk.LevelHigh || d.Status != StatusPending {
		t.Fatalf("round trip mismatch: %+v", d)
	}
	if len(d.Routes) != 1 || d.Routes[0].Zone != "North" {
		t.Fatalf("routes not preserved: %+v", d.Routes)
	}

	_, found, err = s.GetDecision("missing")
	if err != nil {
		t.Fatalf("GetDecision missing: %v", err)
	}
	if found {
		t.Fatal("expected missing decision not found")
	}
}

func TestListDecisions_NewestFirst(t *testing.T) {
	s := tempStore(t)

	for i, id := range []string{"first", "second", "third"} {
		d := sampleDecision(id)
		d.Timestamp = time.Date(2026, 8, 1, 10, i, 0, 0, time.UTC)
		if err := s.AppendDecision(d); err != nil {
			t.Fatalf("AppendDecision: %v", err)
		}
	}

	all, err := s.ListDecisions(0)
	if err != nil {
		t.Fatalf("ListDecisions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 decisions, got %d", len(all))
	}
	if all[0].ID != "third" || all[2].ID != "first" {
		t.Fatalf("expected newest first, got %s .. %s", all[0].ID, all[2].ID)
	}

	limited, err := s.ListDecisions(2)
	if err != nil {
		t.Fatalf("ListDecisions limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(limited))
	}
}

func TestListDecisions_TrimmedFractionalSeconds(t *testing.T) {
	s := tempStore(t)

	// RFC3339Nano drops trailing zeros, so ".5Z" sorts after ".52Z" as a
	// string even though it is the earlier instant. Insertion order must
	// still win.
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	older := sampleDecision("older")
	older.Timestamp = base.Add(500 * time.Millisecond)
	newer := sampleDecision("newer")
	newer.Timestamp = base.Add(520 * time.Millisecond)

	if err := s.AppendDecision(older); err != nil {
		t.Fatalf("AppendDecision: %v", err)
	}
	if err := s.AppendDecision(newer); err != nil {
		t.Fatalf("AppendDecision: %v", err)
	}

	all, err := s.ListDecisions(0)
	if err != nil {
		t.Fatalf("ListDecisions: %v", err)
	}
	if len(all) != 2 || all[0].ID != "newer" || all[1].ID != "older" {
		t.Fatalf("expected newer first, got %+v", all)
	}
}

func TestTransitionStatus_ExactlyOnce(t *testing.T) {
	s := tempStore(t)
	if err := s.AppendDecision(sampleDecision("abc12345")); err != nil {
		t.Fatalf("AppendDecision: %v", err)
	}

	changed, err := s.TransitionStatus("abc12345", StatusApproved)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if !changed {
		t.Fatal("expected first transition to succeed")
	}

	changed, err = s.TransitionStatus("abc12345", StatusAborted)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if changed {
		t.Fatal("expected second transition to be rejected")
	}

	d, _, err := s.GetDecision("abc12345")
	if err != nil {
		t.Fatalf("GetDecision: %v", err)
	}
	if d.Status != StatusApproved {
		t.Fatalf("expected status approved, got %s", d.Status)
	}
}

func TestCountByStatus(t *testing.T) {
	s := tempStore(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.AppendDecision(sampleDecision(id)); err != nil {
			t.Fatalf("AppendDecision: %v", err)
		}
	}
	if _, err := s.TransitionStatus("a", StatusApproved); err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}

	n, err := s.CountByStatus(StatusPending)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 pending, got %d", n)
	}
	n, err = s.CountByStatus(StatusApproved)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 approved, got %d", n)
	}
}

func TestWeights_PersistAndSumInvariant(t *testing.T) {
	s := tempStore(t)

	w, err := s.Weights()
	if err != nil {
		t.Fatalf("Weights: %v", err)
	}
	if w != InitialWeights() {
		t.Fatalf("expected initial weights, got %+v", w)
	}

	// A mixed feedback sequence keeps the sum pinned at 3.0.
	for _, factor := range []float64{1.01, 1.01, 0.98, 1.01, 0.98} {
		w = w.Scale(factor)
		if err := s.SaveWeights(w); err != nil {
			t.Fatalf("SaveWeights: %v", err)
		}
	}

	got, err := s.Weights()
	if err != nil {
		t.Fatalf("Weights: %v", err)
	}
	if math.Abs(got.Sum()-WeightSum) > 1e-9 {
		t.Fatalf("expected weight sum %f, got %f", WeightSum, got.Sum())
	}
}

func TestWeights_ScaleDegenerate(t *testing.T) {
	w := Weights{}.Scale(1.01)
	if w != InitialWeights() {
		t.Fatalf("expected reset to initial weights, got %+v", w)
	}
}

func TestActivityLog(t *testing.T) {
	s := tempStore(t)

	entry, err := s.AppendActivity("decision", "Agent decision generated: HIGH risk", map[string]any{"routes": 2})
	if err != nil {
		t.Fatalf("AppendActivity: %v", err)
	}
	if len(entry.ID) != 8 {
		t.Fatalf("expected 8-char id, got %q", entry.ID)
	}

	entries, err := s.ListActivity(10)
	if err != nil {
		t.Fatalf("ListActivity: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].EventType != "decision" {
		t.Fatalf("event type mismatch: %s", entries[0].EventType)
	}
	if entries[0].Details["routes"].(float64) != 2 {
		t.Fatalf("details not preserved: %+v", entries[0].Details)
	}
}

func TestActivityLog_Cap(t *testing.T) {
	s := tempStore(t)
	for i := 0; i < 110; i++ {
		if _, err := s.AppendActivity("decision", "entry", nil); err != nil {
			t.Fatalf("AppendActivity: %v", err)
		}
	}

	entries, err := s.ListActivity(0)
	if err != nil {
		t.Fatalf("ListActivity: %v", err)
	}
	if len(entries) != 100 {
		t.Fatalf("expected cap of 100 entries, got %d", len(entries))
	}
}
