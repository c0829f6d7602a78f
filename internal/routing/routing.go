package routing

// #region imports
import (
	"container/heap"
	"math"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/refdata"
)

// #endregion

// #region planner
// Planner runs A* searches over the static road network. The network is
// write-once reference data, so a single Planner is safe for concurrent use.
type Planner struct {
	network refdata.RoadNetwork
	config  Config
}

// NewPlanner creates a Planner over the given road network.
func NewPlanner(network refdata.RoadNetwork, config Config) *Planner {
	if config.AvgSpeedKmh <= 0 {
		config.AvgSpeedKmh = 30
	}
	if config.MaxExpansions <= 0 {
		config.MaxExpansions = 10000
	}
	if config.Optimize == "" {
		config.Optimize = "time"
	}
	return &Planner{network: network, config: config}
}

// #endregion planner

// #region haversine
// haversineKM is the great-circle distance between two coordinates in km.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKM * 2 * math.Asin(math.Sqrt(a))
}

// #endregion haversine

// #region adjacency

type halfEdge struct {
	to         string
	road       string
	distanceKM float64
	timeMin    float64
}

// buildAdjacency expands undirected edges into both directions, dropping
// every edge whose road name is blocked.
func (p *Planner) buildAdjacency(blocked []string) map[string][]halfEdge {
	blockedSet := make(map[string]bool, len(blocked))
	for _, r := range blocked {
		blockedSet[r] = true
	}

	adj := make(map[string][]halfEdge, len(p.network.Nodes))
	for id := range p.network.Nodes {
		adj[id] = nil
	}
	for _, e := range p.network.Edges {
		if blockedSet[e.Road] {
			continue
		}
		adj[e.From] = append(adj[e.From], halfEdge{e.To, e.Road, e.DistanceKM, e.TimeMin})
		adj[e.To] = append(adj[e.To], halfEdge{e.From, e.Road, e.DistanceKM, e.TimeMin})
	}
	return adj
}

// #endregion adjacency

// #region frontier

type frontierItem struct {
	node string
	f    float64
	seq  int // insertion order, breaks f ties deterministically
}

type frontier []frontierItem

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q frontier) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)        { *q = append(*q, x.(frontierItem)) }
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// #endregion frontier

// #region find-route
// FindRoute runs A* from start to goal, excluding blocked roads. The
// straight-line heuristic underestimates any road distance, so the first
// goal pop is optimal and the search returns immediately. A nil result
// means no path exists (or the expansion cap was hit).
func (p *Planner) FindRoute(start, goal string, blocked []string) *RouteResult {
	if _, ok := p.network.Nodes[start]; !ok {
		return nil
	}
	goalNode, ok := p.network.Nodes[goal]
	if !ok {
		return nil
	}

	adj := p.buildAdjacency(blocked)

	h := func(id string) float64 {
		n := p.network.Nodes[id]
		dist := haversineKM(n.Lat, n.Lon, goalNode.Lat, goalNode.Lon)
		if p.config.Optimize == "time" {
			return dist / p.config.AvgSpeedKmh * 60 // minutes
		}
		return dist
	}

	gScore := map[string]float64{start: 0}
	cameFrom := map[string]halfEdge{} // node -> edge taken to reach it
	prev := map[string]string{}       // node -> predecessor
	closed := map[string]bool{}

	open := &frontier{}
	heap.Init(open)
	seq := 0
	heap.Push(open, frontierItem{node: start, f: h(start), seq: seq})

	expansions := 0
	for open.Len() > 0 {
		item := heap.Pop(open).(frontierItem)
		current := item.node

		if current == goal {
			return p.reconstruct(start, goal, prev, cameFrom)
		}
		if closed[current] {
			continue
		}
		closed[current] = true

		expansions++
		if expansions > p.config.MaxExpansions {
			return nil
		}

		for _, e := range adj[current] {
			if closed[e.to] {
				continue
			}
			cost := e.timeMin
			if p.config.Optimize != "time" {
				cost = e.distanceKM
			}
			tentative := gScore[current] + cost
			if g, seen := gScore[e.to]; !seen || tentative < g {
				gScore[e.to] = tentative
				prev[e.to] = current
				cameFrom[e.to] = e
				seq++
				heap.Push(open, frontierItem{node: e.to, f: tentative + h(e.to), seq: seq})
			}
		}
	}
	return nil
}

// #endregion find-route

// #region reconstruct

func (p *Planner) reconstruct(start, goal string, prev map[string]string, cameFrom map[string]halfEdge) *RouteResult {
	var path []string
	var roads []string
	var distance, totalTime float64

	for at := goal; ; {
		path = append(path, at)
		if at == start {
			break
		}
		e := cameFrom[at]
		roads = append(roads, e.road)
		distance += e.distanceKM
		totalTime += e.timeMin
		at = prev[at]
	}

	// Reverse into start -> goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(roads)-1; i < j; i, j = i+1, j-1 {
		roads[i], roads[j] = roads[j], roads[i]
	}

	coords := make([][2]float64, len(path))
	for i, id := range path {
		n := p.network.Nodes[id]
		coords[i] = [2]float64{n.Lat, n.Lon}
	}

	return &RouteResult{
		Path:        path,
		RoadsUsed:   roads,
		DistanceKM:  math.Round(distance*100) / 100,
		TimeMin:     math.Round(totalTime*10) / 10,
		Coordinates: coords,
	}
}

// #endregion reconstruct

// #region routes-to-zones
// RoutesToZones finds a route from start to every zone's graph node. Zones
// with no reachable path map to nil.
func (p *Planner) RoutesToZones(start string, zones []string, blocked []string) map[string]*RouteResult {
	routes := make(map[string]*RouteResult, len(zones))
	for _, zone := range zones {
		routes[zone] = p.FindRoute(start, "Zone_"+zone, blocked)
	}
	return routes
}

// #endregion routes-to-zones

// #region alternative-route
// AlternativeRoute re-runs the search with the primary route's roads
// blocked in addition to the scenario's blocked roads, producing a
// disjoint fallback when the primary must be avoided.
func (p *Planner) AlternativeRoute(start, goal string, primaryRoads, blocked []string) *RouteResult {
	seen := make(map[string]bool, len(blocked)+len(primaryRoads))
	all := make([]string, 0, len(blocked)+len(primaryRoads))
	for _, r := range blocked {
		if !seen[r] {
			seen[r] = true
			all = append(all, r)
		}
	}
	for _, r := range primaryRoads {
		if !seen[r] {
			seen[r] = true
			all = append(all, r)
		}
	}
	return p.FindRoute(start, goal, all)
}

// #endregion alternative-route
