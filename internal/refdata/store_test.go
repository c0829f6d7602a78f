package refdata

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "refdata.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedAndLoadRoundTrip(t *testing.T) {
	s := tempStore(t)
	want := Chennai()

	if err := s.Seed(want); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(got.Network.Nodes) != len(want.Network.Nodes) {
		t.Fatalf("nodes: expected %d, got %d", len(want.Network.Nodes), len(got.Network.Nodes))
	}
	if len(got.Network.Edges) != len(want.Network.Edges) {
		t.Fatalf("edges: expected %d, got %d", len(want.Network.Edges), len(got.Network.Edges))
	}
	if len(got.Depots) != len(want.Depots) {
		t.Fatalf("depots: expected %d, got %d", len(want.Depots), len(got.Depots))
	}
	if len(got.Zones) != len(want.Zones) {
		t.Fatalf("zones: expected %d, got %d", len(want.Zones), len(got.Zones))
	}
	if len(got.Corpus) != len(want.Corpus) {
		t.Fatalf("corpus: expected %d, got %d", len(want.Corpus), len(got.Corpus))
	}

	// Corpus order must survive the round trip.
	for i := range want.Corpus {
		if got.Corpus[i].ID != want.Corpus[i].ID {
			t.Fatalf("corpus[%d]: expected %s, got %s", i, want.Corpus[i].ID, got.Corpus[i].ID)
		}
	}

	// Spot checks on content.
	central, ok := got.Zones["Central"]
	if !ok {
		t.Fatal("Central zone missing after load")
	}
	if central.Population != want.Zones["Central"].Population {
		t.Fatalf("Central population mismatch: %d", central.Population)
	}

	node, ok := got.Network.Nodes["Central_Depot"]
	if !ok {
		t.Fatal("Central_Depot node missing after load")
	}
	if node.Lat == 0 || node.Lon == 0 {
		t.Fatalf("Central_Depot coordinates not loaded: %+v", node)
	}

	h := got.Corpus[0]
	if h.Scenario.DisasterType == "" || len(h.Deployed) == 0 {
		t.Fatalf("historical scenario not fully loaded: %+v", h)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	s := tempStore(t)
	bundle := Chennai()

	if err := s.Seed(bundle); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := s.Seed(bundle); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Corpus) != len(bundle.Corpus) {
		t.Fatalf("expected %d scenarios after reseed, got %d", len(bundle.Corpus), len(got.Corpus))
	}
}

func TestChennaiBundle_Shape(t *testing.T) {
	b := Chennai()

	if len(b.Zones) != 5 {
		t.Fatalf("expected 5 zones, got %d", len(b.Zones))
	}
	if len(b.Depots) != 3 {
		t.Fatalf("expected 3 depots, got %d", len(b.Depots))
	}
	if len(b.Corpus) != 15 {
		t.Fatalf("expected 15 historical scenarios, got %d", len(b.Corpus))
	}

	// Every zone must have a node in the road network.
	for id, z := range b.Zones {
		if _, ok := b.Network.Nodes[z.NodeID()]; !ok {
			t.Fatalf("zone %s has no road node %s", id, z.NodeID())
		}
	}

	// Every edge endpoint must exist.
	for _, e := range b.Network.Edges {
		if _, ok := b.Network.Nodes[e.From]; !ok {
			t.Fatalf("edge references unknown node %s", e.From)
		}
		if _, ok := b.Network.Nodes[e.To]; !ok {
			t.Fatalf("edge references unknown node %s", e.To)
		}
	}
}
