package routing

import (
	"math"
	"testing"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/refdata"
)

// #region fixtures

// testNetwork is a small diamond: A -> B -> D and A -> C -> D, with the
// B side faster and a slow direct edge A -> D.
func testNetwork() refdata.RoadNetwork {
	nodes := []refdata.Node{
		{ID: "A", Lat: 13.00, Lon: 80.20},
		{ID: "B", Lat: 13.02, Lon: 80.22},
		{ID: "C", Lat: 12.98, Lon: 80.22},
		{ID: "D", Lat: 13.00, Lon: 80.25},
		{ID: "Lonely", Lat: 13.50, Lon: 80.50},
	}
	edges := []refdata.Edge{
		{From: "A", To: "B", Road: "North_Link", DistanceKM: 3.0, TimeMin: 6},
		{From: "B", To: "D", Road: "North_Link", DistanceKM: 4.0, TimeMin: 8},
		{From: "A", To: "C", Road: "South_Link", DistanceKM: 3.5, TimeMin: 10},
		{From: "C", To: "D", Road: "South_Link", DistanceKM: 4.5, TimeMin: 12},
		{From: "A", To: "D", Road: "Direct", DistanceKM: 6.0, TimeMin: 30},
	}
	nm := make(map[string]refdata.Node, len(nodes))
	for _, n := range nodes {
		nm[n.ID] = n
	}
	return refdata.RoadNetwork{Nodes: nm, Edges: edges}
}

// #endregion fixtures

func TestFindRoute_PicksFastestPath(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())

	r := p.FindRoute("A", "D", nil)
	if r == nil {
		t.Fatal("expected a route")
	}
	want := []string{"A", "B", "D"}
	if len(r.Path) != len(want) {
		t.Fatalf("expected path %v, got %v", want, r.Path)
	}
	for i := range want {
		if r.Path[i] != want[i] {
			t.Fatalf("expected path %v, got %v", want, r.Path)
		}
	}
	if r.TimeMin != 14 {
		t.Fatalf("expected 14 min, got %f", r.TimeMin)
	}
	if r.DistanceKM != 7 {
		t.Fatalf("expected 7 km, got %f", r.DistanceKM)
	}
}

func TestFindRoute_TotalsMatchEdgeSums(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())
	net := testNetwork()

	r := p.FindRoute("A", "D", nil)
	if r == nil {
		t.Fatal("expected a route")
	}

	edgeByPair := map[[2]string]refdata.Edge{}
	for _, e := range net.Edges {
		edgeByPair[[2]string{e.From, e.To}] = e
		edgeByPair[[2]string{e.To, e.From}] = e
	}

	var dist, dur float64
	for i := 1; i < len(r.Path); i++ {
		e, ok := edgeByPair[[2]string{r.Path[i-1], r.Path[i]}]
		if !ok {
			t.Fatalf("path step %s -> %s has no edge", r.Path[i-1], r.Path[i])
		}
		dist += e.DistanceKM
		dur += e.TimeMin
	}
	if math.Abs(r.DistanceKM-dist) > 0.01 {
		t.Fatalf("distance %f does not match edge sum %f", r.DistanceKM, dist)
	}
	if math.Abs(r.TimeMin-dur) > 0.1 {
		t.Fatalf("time %f does not match edge sum %f", r.TimeMin, dur)
	}
}

func TestFindRoute_BlockedRoadReroutes(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())

	r := p.FindRoute("A", "D", []string{"North_Link"})
	if r == nil {
		t.Fatal("expected a rerouted path")
	}
	for _, road := range r.RoadsUsed {
		if road == "North_Link" {
			t.Fatal("route used a blocked road")
		}
	}
	if r.Path[1] != "C" {
		t.Fatalf("expected reroute via C, got %v", r.Path)
	}
}

func TestFindRoute_FullyBlockedReturnsNil(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())
	if r := p.FindRoute("A", "D", []string{"North_Link", "South_Link", "Direct"}); r != nil {
		t.Fatalf("expected nil for fully blocked goal, got %v", r.Path)
	}
}

func TestFindRoute_UnknownNodes(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())
	if r := p.FindRoute("Nowhere", "D", nil); r != nil {
		t.Fatal("expected nil for unknown start")
	}
	if r := p.FindRoute("A", "Nowhere", nil); r != nil {
		t.Fatal("expected nil for unknown goal")
	}
}

func TestFindRoute_DisconnectedNode(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())
	if r := p.FindRoute("A", "Lonely", nil); r != nil {
		t.Fatal("expected nil for disconnected goal")
	}
}

func TestFindRoute_SameStartAndGoal(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())
	r := p.FindRoute("A", "A", nil)
	if r == nil {
		t.Fatal("expected trivial route")
	}
	if len(r.Path) != 1 || r.DistanceKM != 0 {
		t.Fatalf("expected single-node zero-length route, got %v (%f km)", r.Path, r.DistanceKM)
	}
}

func TestFindRoute_OptimizeDistance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Optimize = "distance"
	p := NewPlanner(testNetwork(), cfg)

	r := p.FindRoute("A", "D", nil)
	if r == nil {
		t.Fatal("expected a route")
	}
	// Direct edge is 6 km, shorter than 7 km via B.
	if len(r.Path) != 2 || r.DistanceKM != 6 {
		t.Fatalf("expected direct 6 km route, got %v (%f km)", r.Path, r.DistanceKM)
	}
}

func TestFindRoute_ExpansionCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxExpansions = 1
	p := NewPlanner(testNetwork(), cfg)

	if r := p.FindRoute("A", "D", nil); r != nil {
		t.Fatal("expected nil when the expansion cap is hit")
	}
}

func TestRoutesToZones(t *testing.T) {
	p := NewPlanner(refdata.Chennai().Network, DefaultConfig())

	routes := p.RoutesToZones("Central_Depot", []string{"North", "East", "Missing"}, nil)
	if len(routes) != 3 {
		t.Fatalf("expected an entry per zone, got %d", len(routes))
	}
	if routes["North"] == nil || routes["East"] == nil {
		t.Fatal("expected routes to known zones")
	}
	if routes["Missing"] != nil {
		t.Fatal("expected nil route for unknown zone")
	}
	if routes["North"].Path[0] != "Central_Depot" {
		t.Fatalf("route starts at %s", routes["North"].Path[0])
	}
	if routes["North"].Path[len(routes["North"].Path)-1] != "Zone_North" {
		t.Fatal("route does not end at the zone node")
	}
}

func TestAlternativeRoute_AvoidsPrimaryRoads(t *testing.T) {
	p := NewPlanner(testNetwork(), DefaultConfig())

	primary := p.FindRoute("A", "D", nil)
	if primary == nil {
		t.Fatal("expected a primary route")
	}

	alt := p.AlternativeRoute("A", "D", primary.RoadsUsed, nil)
	if alt == nil {
		t.Fatal("expected an alternative route")
	}
	primarySet := map[string]bool{}
	for _, road := range primary.RoadsUsed {
		primarySet[road] = true
	}
	for _, road := range alt.RoadsUsed {
		if primarySet[road] {
			t.Fatalf("alternative reused primary road %s", road)
		}
	}
}
