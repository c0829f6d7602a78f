package ledger

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id          TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	risk_level  TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'pending',
	payload     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS learning_weights (
	id             INTEGER PRIMARY KEY CHECK (id = 1),
	medical        REAL NOT NULL,
	evacuation     REAL NOT NULL,
	infrastructure REAL NOT NULL,
	updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_log (
	id           TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	event_type   TEXT NOT NULL,
	description  TEXT NOT NULL,
	details_json TEXT
);
`

// #endregion schema

// #region store-struct
// Store is the agent's durable ledger: append-only decision history, the
// learning-weights row, and the activity feed. Decisions are never
// deleted; the only mutation is the one-shot status transition.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens the ledger database, runs migrations, and ensures the
// weights row exists.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}

	w := InitialWeights()
	_, err = db.Exec(
		`INSERT OR IGNORE INTO learning_weights (id, medical, evacuation, infrastructure, updated_at)
		 VALUES (1, ?, ?, ?, ?)`,
		w.Medical, w.Evacuation, w.Infrastructure, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("init weights: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// #endregion constructor

// #region append-decision
// AppendDecision writes a new decision to the history.
func (s *Store) AppendDecision(d Decision) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO decisions (id, created_at, risk_level, status, payload) VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Timestamp.UTC().Format(time.RFC3339Nano), string(d.RiskLevel), d.Status, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert decision %s: %w", d.ID, err)
	}
	return nil
}

// #endregion append-decision

// #region get-decision
// GetDecision fetches one decision by id. The second return is false when
// the id is unknown; that is a NotFound outcome, not an error.
func (s *Store) GetDecision(id string) (Decision, bool, error) {
	var payload, status string
	err := s.db.QueryRow(`SELECT payload, status FROM decisions WHERE id = ?`, id).Scan(&payload, &status)
	if err == sql.ErrNoRows {
		return Decision{}, false, nil
	}
	if err != nil {
		return Decision{}, false, fmt.Errorf("get decision %s: %w", id, err)
	}

	var d Decision
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return Decision{}, false, fmt.Errorf("unmarshal decision %s: %w", id, err)
	}
	d.Status = status // the status column is authoritative after transitions
	return d, true, nil
}

// #endregion get-decision

// #region list-decisions
// ListDecisions returns decisions newest first, up to limit (0 = all).
// Insertion order via rowid, not created_at: RFC3339Nano trims trailing
// zeros, so the timestamp strings do not sort lexicographically.
func (s *Store) ListDecisions(limit int) ([]Decision, error) {
	q := `SELECT payload, status FROM decisions ORDER BY rowid DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var payload, status string
		if err := rows.Scan(&payload, &status); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		var d Decision
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, fmt.Errorf("unmarshal decision: %w", err)
		}
		d.Status = status
		out = append(out, d)
	}
	return out, rows.Err()
}

// CountByStatus returns the number of decisions with the given status.
func (s *Store) CountByStatus(status string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM decisions WHERE status = ?`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count decisions: %w", err)
	}
	return n, nil
}

// #endregion list-decisions

// #region transition
// TransitionStatus moves a pending decision to the given status. Returns
// (false, nil) when the decision exists but is no longer pending: the
// transition happens exactly once.
func (s *Store) TransitionStatus(id, status string) (bool, error) {
	res, err := s.db.Exec(
		`UPDATE decisions SET status = ? WHERE id = ? AND status = ?`,
		status, id, StatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("transition decision %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("transition decision %s: %w", id, err)
	}
	return n == 1, nil
}

// #endregion transition

// #region weights
// Weights reads the current learning weights.
func (s *Store) Weights() (Weights, error) {
	var w Weights
	err := s.db.QueryRow(
		`SELECT medical, evacuation, infrastructure FROM learning_weights WHERE id = 1`,
	).Scan(&w.Medical, &w.Evacuation, &w.Infrastructure)
	if err != nil {
		return Weights{}, fmt.Errorf("read weights: %w", err)
	}
	return w, nil
}

// SaveWeights overwrites the weights row.
func (s *Store) SaveWeights(w Weights) error {
	_, err := s.db.Exec(
		`UPDATE learning_weights SET medical = ?, evacuation = ?, infrastructure = ?, updated_at = ? WHERE id = 1`,
		w.Medical, w.Evacuation, w.Infrastructure, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save weights: %w", err)
	}
	return nil
}

// #endregion weights

// #region activity
// AppendActivity writes one event to the activity feed.
func (s *Store) AppendActivity(eventType, description string, details map[string]any) (ActivityEntry, error) {
	entry := ActivityEntry{
		ID:          uuid.New().String()[:8],
		Timestamp:   time.Now().UTC(),
		EventType:   eventType,
		Description: description,
		Details:     details,
	}

	var detailsJSON any
	if len(details) > 0 {
		b, err := json.Marshal(details)
		if err != nil {
			return ActivityEntry{}, fmt.Errorf("marshal activity details: %w", err)
		}
		detailsJSON = string(b)
	}

	_, err := s.db.Exec(
		`INSERT INTO activity_log (id, created_at, event_type, description, details_json) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Timestamp.Format(time.RFC3339Nano), entry.EventType, entry.Description, detailsJSON,
	)
	if err != nil {
		return ActivityEntry{}, fmt.Errorf("insert activity: %w", err)
	}
	return entry, nil
}

// ListActivity returns activity entries newest first, capped at limit
// (default 100).
func (s *Store) ListActivity(limit int) ([]ActivityEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, event_type, description, details_json
		 FROM activity_log ORDER BY rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		var createdStr string
		var detailsJSON sql.NullString
		if err := rows.Scan(&e.ID, &createdStr, &e.EventType, &e.Description, &detailsJSON); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
		if detailsJSON.Valid {
			if err := json.Unmarshal([]byte(detailsJSON.String), &e.Details); err != nil {
				return nil, fmt.Errorf("unmarshal activity details: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion activity
