package refdata

// #region imports
import (
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #endregion

// Chennai returns the built-in reference dataset for the Chennai
// metropolitan pilot: road network, depots, zones, and the historical
// incident corpus the similarity matcher ranks against.

// #region network

func chennaiNetwork() RoadNetwork {
	nodes := []Node{
		{ID: "Central_Depot", Lat: 13.0827, Lon: 80.2707, Kind: "depot"},
		{ID: "Anna_Salai_Node", Lat: 13.0600, Lon: 80.2500, Kind: "junction"},
		{ID: "OMR_Node", Lat: 12.9500, Lon: 80.2400, Kind: "junction"},
		{ID: "ECR_Node", Lat: 12.9800, Lon: 80.2800, Kind: "junction"},
		{ID: "Mount_Road_Node", Lat: 13.0400, Lon: 80.2600, Kind: "junction"},
		{ID: "Marina_Node", Lat: 13.0500, Lon: 80.2900, Kind: "junction"},
		{ID: "Velachery_Node", Lat: 12.9800, Lon: 80.2200, Kind: "junction"},
		{ID: "Ambattur_Node", Lat: 13.1143, Lon: 80.1548, Kind: "junction"},
		{ID: "Tambaram_Node", Lat: 12.9249, Lon: 80.1000, Kind: "junction"},
		{ID: "Zone_North", Lat: 13.15, Lon: 80.20, Kind: "zone"},
		{ID: "Zone_South", Lat: 12.90, Lon: 80.15, Kind: "zone"},
		{ID: "Zone_East", Lat: 13.05, Lon: 80.30, Kind: "zone"},
		{ID: "Zone_West", Lat: 13.05, Lon: 80.10, Kind: "zone"},
		{ID: "Zone_Central", Lat: 13.08, Lon: 80.27, Kind: "zone"},
		{ID: "Link_Road_East", Lat: 13.06, Lon: 80.28, Kind: "junction"},
		{ID: "Link_Road_West", Lat: 13.06, Lon: 80.15, Kind: "junction"},
		{ID: "Link_Road_North", Lat: 13.12, Lon: 80.22, Kind: "junction"},
		{ID: "Link_Road_South", Lat: 12.95, Lon: 80.18, Kind: "junction"},
	}
	edges := []Edge{
		{From: "Central_Depot", To: "Anna_Salai_Node", Road: "Anna_Salai", DistanceKM: 3.5, TimeMin: 10},
		{From: "Central_Depot", To: "Zone_Central", Road: "Central_Link", DistanceKM: 1.0, TimeMin: 5},
		{From: "Anna_Salai_Node", To: "Mount_Road_Node", Road: "Anna_Salai", DistanceKM: 2.5, TimeMin: 8},
		{From: "Anna_Salai_Node", To: "Zone_Central", Road: "Link_1", DistanceKM: 2.0, TimeMin: 6},
		{From: "Mount_Road_Node", To: "OMR_Node", Road: "Mount_Road", DistanceKM: 4.0, TimeMin: 12},
		{From: "Mount_Road_Node", To: "Velachery_Node", Road: "Mount_Road", DistanceKM: 3.0, TimeMin: 9},
		{From: "OMR_Node", To: "Zone_South", Road: "OMR", DistanceKM: 5.0, TimeMin: 15},
		{From: "OMR_Node", To: "Velachery_Node", Road: "OMR", DistanceKM: 3.5, TimeMin: 10},
		{From: "OMR_Node", To: "ECR_Node", Road: "Link_2", DistanceKM: 2.0, TimeMin: 6},
		{From: "ECR_Node", To: "Zone_East", Road: "ECR", DistanceKM: 4.0, TimeMin: 12},
		{From: "ECR_Node", To: "Marina_Node", Road: "ECR", DistanceKM: 3.0, TimeMin: 9},
		{From: "Marina_Node", To: "Zone_East", Road: "Marina", DistanceKM: 2.5, TimeMin: 8},
		{From: "Marina_Node", To: "Zone_Central", Road: "Link_3", DistanceKM: 2.0, TimeMin: 6},
		{From: "Central_Depot", To: "Link_Road_East", Road: "Inner_Ring", DistanceKM: 1.5, TimeMin: 5},
		{From: "Link_Road_East", To: "Zone_East", Road: "Inner_Ring", DistanceKM: 2.0, TimeMin: 7},
		{From: "Central_Depot", To: "Link_Road_West", Road: "Inner_Ring", DistanceKM: 2.0, TimeMin: 6},
		{From: "Link_Road_West", To: "Zone_West", Road: "Inner_Ring", DistanceKM: 2.5, TimeMin: 8},
		{From: "Central_Depot", To: "Link_Road_North", Road: "NH_48", DistanceKM: 4.0, TimeMin: 12},
		{From: "Link_Road_North", To: "Zone_North", Road: "NH_48", DistanceKM: 3.0, TimeMin: 9},
		{From: "Link_Road_North", To: "Ambattur_Node", Road: "NH_48", DistanceKM: 2.0, TimeMin: 6},
		{From: "Ambattur_Node", To: "Zone_North", Road: "Local_1", DistanceKM: 4.0, TimeMin: 12},
		{From: "Velachery_Node", To: "Link_Road_South", Road: "Velachery_Main", DistanceKM: 3.0, TimeMin: 9},
		{From: "Link_Road_South", To: "Zone_South", Road: "Local_2", DistanceKM: 3.5, TimeMin: 10},
		{From: "Link_Road_South", To: "Tambaram_Node", Road: "GST_Road", DistanceKM: 4.0, TimeMin: 12},
		{From: "Tambaram_Node", To: "Zone_South", Road: "Local_3", DistanceKM: 3.0, TimeMin: 9},
		{From: "Zone_Central", To: "Link_Road_East", Road: "Link_4", DistanceKM: 1.5, TimeMin: 5},
		{From: "Zone_Central", To: "Link_Road_West", Road: "Link_5", DistanceKM: 2.0, TimeMin: 6},
	}

	nm := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		nm[n.ID] = n
	}
	return RoadNetwork{Nodes: nm, Edges: edges}
}

// #endregion network

// #region depots

func chennaiDepots() []Depot {
	return []Depot{
		{
			ID: "central_depot", Name: "Central Depot", Location: "Chennai Central",
			Lat: 13.0827, Lon: 80.2707,
			Resources: map[string]int{
				"medical_kits": 10000, "food_packets": 50000, "water_liters": 500000,
				"shelter_kits": 2000, "oxygen_cylinders": 500, "vaccines": 5000, "surgical_kits": 200,
			},
			Vehicles: map[string]int{"trucks": 20, "boats": 8, "drones": 10, "helicopters": 2},
		},
		{
			ID: "north_depot", Name: "North Depot", Location: "Ambattur",
			Lat: 13.1143, Lon: 80.1548,
			Resources: map[string]int{
				"medical_kits": 5000, "food_packets": 25000, "water_liters": 250000,
				"shelter_kits": 1000, "oxygen_cylinders": 200, "vaccines": 2000, "surgical_kits": 100,
			},
			Vehicles: map[string]int{"trucks": 10, "boats": 4, "drones": 5, "helicopters": 1},
		},
		{
			ID: "south_depot", Name: "South Depot", Location: "Tambaram",
			Lat: 12.9249, Lon: 80.1000,
			Resources: map[string]int{
				"medical_kits": 5000, "food_packets": 25000, "water_liters": 250000,
				"shelter_kits": 1000, "oxygen_cylinders": 200, "vaccines": 2000, "surgical_kits": 100,
			},
			Vehicles: map[string]int{"trucks": 10, "boats": 4, "drones": 5, "helicopters": 1},
		},
	}
}

// #endregion depots

// #region zones

func chennaiZones() map[string]Zone {
	zones := []Zone{
		{ID: "North", Name: "North Zone", Lat: 13.15, Lon: 80.20, Population: 850000, Hospitals: 12,
			Infrastructure: []string{"Power Station A", "Water Treatment Plant"}},
		{ID: "South", Name: "South Zone", Lat: 12.90, Lon: 80.15, Population: 720000, Hospitals: 10,
			Infrastructure: []string{"Airport", "Railway Hub"}},
		{ID: "East", Name: "East Zone", Lat: 13.05, Lon: 80.30, Population: 650000, Hospitals: 8,
			Infrastructure: []string{"Port", "Industrial Area"}},
		{ID: "West", Name: "West Zone", Lat: 13.05, Lon: 80.10, Population: 580000, Hospitals: 7,
			Infrastructure: []string{"IT Park", "University Campus"}},
		{ID: "Central", Name: "Central Zone", Lat: 13.08, Lon: 80.27, Population: 920000, Hospitals: 15,
			Infrastructure: []string{"Government Complex", "Main Hospital", "Bus Terminus"}},
	}
	m := make(map[string]Zone, len(zones))
	for _, z := range zones {
		m[z.ID] = z
	}
	return m
}

// #endregion zones

// #region corpus

func flood(depthM, rainfall float64) scenario.Details {
	return scenario.Details{Flood: &scenario.FloodDetails{WaterLevelM: depthM, RainfallMM24h: rainfall, Coastal: true}}
}

func cyclone(windKmph float64) scenario.Details {
	return scenario.Details{Cyclone: &scenario.CycloneDetails{MaxWindKmph: windKmph}}
}

func heatwave(tempC, humidity float64) scenario.Details {
	return scenario.Details{Heatwave: &scenario.HeatwaveDetails{MaxTempC: tempC, HumidityPct: humidity}}
}

func hist(id string, dt scenario.DisasterType, sev, pop int, zones []string, load float64,
	blocked []string, details scenario.Details, deployed map[string]int, outcome string) scenario.Historical {
	return scenario.Historical{
		ID: id,
		Scenario: scenario.Scenario{
			DisasterType:       dt,
			Severity:           sev,
			PopulationAffected: pop,
			ZonesImpacted:      zones,
			HospitalLoad:       load,
			BlockedRoads:       blocked,
			Details:            details,
		},
		Deployed: deployed,
		Outcome:  outcome,
	}
}

func chennaiCorpus() []scenario.Historical {
	return []scenario.Historical{
		hist("chennai_flood_1", scenario.DisasterFlood, 2, 12000, []string{"North", "Central"}, 0.65,
			[]string{"OMR"}, flood(0.5, 180),
			map[string]int{"medical_kits": 800, "boats": 2, "trucks": 5, "drones": 1}, "successful"),
		hist("chennai_flood_2", scenario.DisasterFlood, 4, 25000, []string{"East", "West", "Central"}, 0.82,
			[]string{"OMR", "Anna_Salai"}, flood(1.2, 320),
			map[string]int{"medical_kits": 2000, "boats": 5, "trucks": 8, "drones": 3}, "successful"),
		hist("chennai_flood_3", scenario.DisasterFlood, 5, 45000, []string{"North", "South", "East", "West", "Central"}, 0.93,
			[]string{"OMR", "Anna_Salai", "Mount_Road", "ECR"}, flood(2.0, 450),
			map[string]int{"medical_kits": 5000, "boats": 10, "trucks": 15, "drones": 6, "helicopters": 2}, "partial"),
		hist("chennai_flood_4", scenario.DisasterFlood, 3, 18000, []string{"South", "Central"}, 0.70,
			[]string{"ECR"}, flood(0.7, 220),
			map[string]int{"medical_kits": 1200, "boats": 3, "trucks": 6, "drones": 2}, "successful"),
		hist("chennai_flood_5", scenario.DisasterFlood, 4, 30000, []string{"North", "East"}, 0.85,
			[]string{"OMR", "Velachery_Main"}, flood(1.4, 350),
			map[string]int{"medical_kits": 2500, "boats": 6, "trucks": 10, "drones": 4}, "successful"),

		hist("chennai_cyclone_1", scenario.DisasterCyclone, 3, 20000, []string{"East", "South"}, 0.60,
			[]string{"ECR", "OMR"}, cyclone(120),
			map[string]int{"medical_kits": 1500, "boats": 2, "trucks": 7, "drones": 3}, "successful"),
		hist("chennai_cyclone_2", scenario.DisasterCyclone, 4, 35000, []string{"East", "South", "Central"}, 0.78,
			[]string{"ECR", "OMR", "Marina"}, cyclone(150),
			map[string]int{"medical_kits": 3000, "boats": 4, "trucks": 12, "drones": 5, "helicopters": 1}, "successful"),
		hist("chennai_cyclone_3", scenario.DisasterCyclone, 5, 55000, []string{"North", "South", "East", "West", "Central"}, 0.92,
			[]string{"ECR", "OMR", "Marina", "Mount_Road", "Anna_Salai"}, cyclone(180),
			map[string]int{"medical_kits": 6000, "boats": 8, "trucks": 18, "drones": 8, "helicopters": 3}, "partial"),
		hist("chennai_cyclone_4", scenario.DisasterCyclone, 2, 10000, []string{"East"}, 0.45,
			[]string{"ECR"}, cyclone(90),
			map[string]int{"medical_kits": 700, "boats": 1, "trucks": 4, "drones": 2}, "successful"),
		hist("chennai_cyclone_5", scenario.DisasterCyclone, 4, 40000, []string{"South", "West", "Central"}, 0.80,
			[]string{"Anna_Salai", "Mount_Road"}, cyclone(140),
			map[string]int{"medical_kits": 3500, "boats": 5, "trucks": 14, "drones": 6}, "successful"),

		hist("chennai_heatwave_1", scenario.DisasterHeatwave, 3, 50000, []string{"North", "Central", "West"}, 0.72,
			nil, heatwave(44, 35),
			map[string]int{"medical_kits": 2000, "water_liters": 100000, "trucks": 10}, "successful"),
		hist("chennai_heatwave_2", scenario.DisasterHeatwave, 4, 80000, []string{"North", "South", "Central", "West"}, 0.85,
			nil, heatwave(47, 30),
			map[string]int{"medical_kits": 4000, "water_liters": 200000, "trucks": 18}, "successful"),
		hist("chennai_heatwave_3", scenario.DisasterHeatwave, 5, 120000, []string{"North", "South", "East", "West", "Central"}, 0.95,
			nil, heatwave(50, 25),
			map[string]int{"medical_kits": 7000, "water_liters": 350000, "trucks": 25}, "partial"),
		hist("chennai_heatwave_4", scenario.DisasterHeatwave, 2, 25000, []string{"Central"}, 0.50,
			nil, heatwave(42, 40),
			map[string]int{"medical_kits": 1000, "water_liters": 50000, "trucks": 5}, "successful"),
		hist("chennai_heatwave_5", scenario.DisasterHeatwave, 3, 60000, []string{"South", "East"}, 0.68,
			nil, heatwave(45, 32),
			map[string]int{"medical_kits": 2500, "water_liters": 120000, "trucks": 12}, "successful"),
	}
}

// #endregion corpus

// #region chennai

// Chennai assembles the full built-in reference bundle.
func Chennai() Bundle {
	return Bundle{
		Network: chennaiNetwork(),
		Depots:  chennaiDepots(),
		Zones:   chennaiZones(),
		Corpus:  chennaiCorpus(),
	}
}

// #endregion chennai
