package routing

// #region config
// Config bounds and tunes the A* search.
type Config struct {
	Optimize      string  // "time" minimizes minutes, "distance" minimizes km
	AvgSpeedKmh   float64 // assumed speed for the time heuristic
	MaxExpansions int     // node-expansion cap; exceeded => no path
}

// DefaultConfig returns the planner defaults.
func DefaultConfig() Config {
	return Config{
		Optimize:      "time",
		AvgSpeedKmh:   30,
		MaxExpansions: 10000,
	}
}

// #endregion config

// #region route-result
// RouteResult is one computed route. Absence of a route is represented by
// a nil *RouteResult, not an error.
type RouteResult struct {
	Path        []string     `json:"path"`
	RoadsUsed   []string     `json:"roads_used"`
	DistanceKM  float64      `json:"total_distance_km"`
	TimeMin     float64      `json:"total_time_min"`
	Coordinates [][2]float64 `json:"path_coordinates"` // [lat, lon] per path node
}

// #endregion route-result
