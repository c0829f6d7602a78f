package refdata

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS road_nodes (
	id    TEXT PRIMARY KEY,
	lat   REAL NOT NULL,
	lon   REAL NOT NULL,
	kind  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS road_edges (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	from_node    TEXT NOT NULL,
	to_node      TEXT NOT NULL,
	road         TEXT NOT NULL,
	distance_km  REAL NOT NULL,
	time_min     REAL NOT NULL,
	FOREIGN KEY (from_node) REFERENCES road_nodes(id),
	FOREIGN KEY (to_node) REFERENCES road_nodes(id)
);

CREATE TABLE IF NOT EXISTS depots (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	location       TEXT NOT NULL,
	lat            REAL NOT NULL,
	lon            REAL NOT NULL,
	resources_json TEXT NOT NULL,
	vehicles_json  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS zones (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	lat            REAL NOT NULL,
	lon            REAL NOT NULL,
	population     INTEGER NOT NULL,
	hospitals      INTEGER NOT NULL,
	infra_json     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS historical_scenarios (
	id             TEXT PRIMARY KEY,
	ord            INTEGER NOT NULL,
	disaster_type  TEXT NOT NULL,
	severity       INTEGER NOT NULL,
	population     INTEGER NOT NULL,
	zones_json     TEXT NOT NULL,
	hospital_load  REAL NOT NULL,
	blocked_json   TEXT NOT NULL,
	details_json   TEXT NOT NULL,
	deployed_json  TEXT NOT NULL,
	outcome        TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store persists the static reference data in SQLite. The pipeline never
// reads the database directly; Load materializes an immutable Bundle once
// at startup.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens the reference database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open refdata db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate refdata: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// #endregion constructor

// #region seed
// Seed replaces the stored reference data with the given bundle.
func (s *Store) Seed(b Bundle) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, tbl := range []string{"road_edges", "road_nodes", "depots", "zones", "historical_scenarios"} {
		if _, err := tx.Exec("DELETE FROM " + tbl); err != nil {
			return fmt.Errorf("clear %s: %w", tbl, err)
		}
	}

	for _, n := range b.Network.Nodes {
		if _, err := tx.Exec(
			`INSERT INTO road_nodes (id, lat, lon, kind) VALUES (?, ?, ?, ?)`,
			n.ID, n.Lat, n.Lon, n.Kind,
		); err != nil {
			return fmt.Errorf("insert node %s: %w", n.ID, err)
		}
	}

	for _, e := range b.Network.Edges {
		if _, err := tx.Exec(
			`INSERT INTO road_edges (from_node, to_node, road, distance_km, time_min)
			 VALUES (?, ?, ?, ?, ?)`,
			e.From, e.To, e.Road, e.DistanceKM, e.TimeMin,
		); err != nil {
			return fmt.Errorf("insert edge %s-%s: %w", e.From, e.To, err)
		}
	}

	for _, d := range b.Depots {
		resJSON, err := json.Marshal(d.Resources)
		if err != nil {
			return fmt.Errorf("marshal depot resources: %w", err)
		}
		vehJSON, err := json.Marshal(d.Vehicles)
		if err != nil {
			return fmt.Errorf("marshal depot vehicles: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO depots (id, name, location, lat, lon, resources_json, vehicles_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.Name, d.Location, d.Lat, d.Lon, string(resJSON), string(vehJSON),
		); err != nil {
			return fmt.Errorf("insert depot %s: %w", d.ID, err)
		}
	}

	for _, z := range b.Zones {
		infraJSON, err := json.Marshal(z.Infrastructure)
		if err != nil {
			return fmt.Errorf("marshal zone infra: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO zones (id, name, lat, lon, population, hospitals, infra_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			z.ID, z.Name, z.Lat, z.Lon, z.Population, z.Hospitals, string(infraJSON),
		); err != nil {
			return fmt.Errorf("insert zone %s: %w", z.ID, err)
		}
	}

	for i, h := range b.Corpus {
		zonesJSON, _ := json.Marshal(h.Scenario.ZonesImpacted)
		blockedJSON, _ := json.Marshal(h.Scenario.BlockedRoads)
		detailsJSON, err := json.Marshal(h.Scenario.Details)
		if err != nil {
			return fmt.Errorf("marshal details %s: %w", h.ID, err)
		}
		deployedJSON, err := json.Marshal(h.Deployed)
		if err != nil {
			return fmt.Errorf("marshal deployed %s: %w", h.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO historical_scenarios
			 (id, ord, disaster_type, severity, population, zones_json, hospital_load, blocked_json, details_json, deployed_json, outcome)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, i, string(h.Scenario.DisasterType), h.Scenario.Severity, h.Scenario.PopulationAffected,
			string(zonesJSON), h.Scenario.HospitalLoad, string(blockedJSON), string(detailsJSON),
			string(deployedJSON), h.Outcome,
		); err != nil {
			return fmt.Errorf("insert historical %s: %w", h.ID, err)
		}
	}

	return tx.Commit()
}

// #endregion seed

// #region load
// Load reads the full reference bundle into memory. Corpus order follows
// the seeded ordinal so similarity ties stay stable across restarts.
func (s *Store) Load() (Bundle, error) {
	var b Bundle
	b.Network.Nodes = make(map[string]Node)
	b.Zones = make(map[string]Zone)

	rows, err := s.db.Query(`SELECT id, lat, lon, kind FROM road_nodes`)
	if err != nil {
		return Bundle{}, fmt.Errorf("load nodes: %w", err)
	}
	for rows.Next() {
		var n Node
		if err := rows.Scan(&n.ID, &n.Lat, &n.Lon, &n.Kind); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("scan node: %w", err)
		}
		b.Network.Nodes[n.ID] = n
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT from_node, to_node, road, distance_km, time_min FROM road_edges ORDER BY id`)
	if err != nil {
		return Bundle{}, fmt.Errorf("load edges: %w", err)
	}
	for rows.Next() {
		var e Edge
		if err := rows.Scan(&e.From, &e.To, &e.Road, &e.DistanceKM, &e.TimeMin); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("scan edge: %w", err)
		}
		b.Network.Edges = append(b.Network.Edges, e)
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT id, name, location, lat, lon, resources_json, vehicles_json FROM depots ORDER BY id`)
	if err != nil {
		return Bundle{}, fmt.Errorf("load depots: %w", err)
	}
	for rows.Next() {
		var d Depot
		var resJSON, vehJSON string
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Lat, &d.Lon, &resJSON, &vehJSON); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("scan depot: %w", err)
		}
		if err := json.Unmarshal([]byte(resJSON), &d.Resources); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("unmarshal depot resources: %w", err)
		}
		if err := json.Unmarshal([]byte(vehJSON), &d.Vehicles); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("unmarshal depot vehicles: %w", err)
		}
		b.Depots = append(b.Depots, d)
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT id, name, lat, lon, population, hospitals, infra_json FROM zones`)
	if err != nil {
		return Bundle{}, fmt.Errorf("load zones: %w", err)
	}
	for rows.Next() {
		var z Zone
		var infraJSON string
		if err := rows.Scan(&z.ID, &z.Name, &z.Lat, &z.Lon, &z.Population, &z.Hospitals, &infraJSON); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("scan zone: %w", err)
		}
		if err := json.Unmarshal([]byte(infraJSON), &z.Infrastructure); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("unmarshal zone infra: %w", err)
		}
		b.Zones[z.ID] = z
	}
	rows.Close()

	rows, err = s.db.Query(
		`SELECT id, disaster_type, severity, population, zones_json, hospital_load, blocked_json, details_json, deployed_json, outcome
		 FROM historical_scenarios ORDER BY ord`)
	if err != nil {
		return Bundle{}, fmt.Errorf("load corpus: %w", err)
	}
	for rows.Next() {
		var h scenario.Historical
		var dt, zonesJSON, blockedJSON, detailsJSON, deployedJSON string
		if err := rows.Scan(&h.ID, &dt, &h.Scenario.Severity, &h.Scenario.PopulationAffected,
			&zonesJSON, &h.Scenario.HospitalLoad, &blockedJSON, &detailsJSON, &deployedJSON, &h.Outcome); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("scan historical: %w", err)
		}
		h.Scenario.DisasterType = scenario.DisasterType(dt)
		if err := json.Unmarshal([]byte(zonesJSON), &h.Scenario.ZonesImpacted); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("unmarshal zones: %w", err)
		}
		if err := json.Unmarshal([]byte(blockedJSON), &h.Scenario.BlockedRoads); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("unmarshal blocked: %w", err)
		}
		if err := json.Unmarshal([]byte(detailsJSON), &h.Scenario.Details); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("unmarshal details: %w", err)
		}
		if err := json.Unmarshal([]byte(deployedJSON), &h.Deployed); err != nil {
			rows.Close()
			return Bundle{}, fmt.Errorf("unmarshal deployed: %w", err)
		}
		b.Corpus = append(b.Corpus, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return Bundle{}, err
	}
	rows.Close()

	return b, nil
}

// #endregion load
