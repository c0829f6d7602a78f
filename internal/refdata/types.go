package refdata

// #region imports
import (
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// #region road-network

// Node is a routable point in the road network.
type Node struct {
	ID   string
	Lat  float64
	Lon  float64
	Kind string // "depot" | "junction" | "zone"
}

// Edge is an undirected road segment between two nodes.
type Edge struct {
	From       string
	To         string
	Road       string
	DistanceKM float64
	TimeMin    float64
}

// RoadNetwork is the full static road graph. Built once at startup and
// treated as immutable afterwards.
type RoadNetwork struct {
	Nodes map[string]Node
	Edges []Edge
}

// #endregion road-network

// #region depot

// Depot is a fixed supply location with resource and vehicle stock.
// Served verbatim on the inventory endpoint.
type Depot struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Lat       float64        `json:"lat"`
	Lon       float64        `json:"lon"`
	Resources map[string]int `json:"resources"`
	Vehicles  map[string]int `json:"vehicles"`
}

// #endregion depot

// #region zone

// Zone is a named geographic impact area. Its routable graph node is
// "Zone_<ID>".
type Zone struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Lat            float64  `json:"lat"`
	Lon            float64  `json:"lon"`
	Population     int      `json:"population"`
	Hospitals      int      `json:"hospitals"`
	Infrastructure []string `json:"critical_infrastructure"`
}

// NodeID returns the road-network node identifier for the zone.
func (z Zone) NodeID() string { return "Zone_" + z.ID }

// #endregion zone

// #region bundle

// Bundle is everything the pipeline needs from the reference-data
// provider, loaded write-once at startup.
type Bundle struct {
	Network RoadNetwork
	Depots  []Depot
	Zones   map[string]Zone
	Corpus  []scenario.Historical
}

// #endregion bundle
