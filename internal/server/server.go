package server

// #region imports
import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/agent"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/ledger"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
	"github.com/gorilla/mux"
)

// #endregion

// #region server-struct

// Server exposes the agent over HTTP.
type Server struct {
	agent *agent.Agent
	store *ledger.Store
}

// New creates a Server around an agent and its ledger.
func New(a *agent.Agent, store *ledger.Store) *Server {
	return &Server{agent: a, store: store}
}

// Router builds the HTTP routing table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.health).Methods("GET")

	r.HandleFunc("/api/agent/run", s.runAgent).Methods("POST")
	r.HandleFunc("/api/decisions", s.listDecisions).Methods("GET")
	r.HandleFunc("/api/decisions/{id}", s.getDecision).Methods("GET")
	r.HandleFunc("/api/decisions/{id}/action", s.decisionAction).Methods("POST")

	r.HandleFunc("/api/inventory", s.inventory).Methods("GET")
	r.HandleFunc("/api/zones", s.zones).Methods("GET")
	r.HandleFunc("/api/map/calculate-route", s.calculateRoute).Methods("GET")

	r.HandleFunc("/api/dashboard/stats", s.dashboardStats).Methods("GET")
	r.HandleFunc("/api/activity-logs", s.activityLogs).Methods("GET")
	r.HandleFunc("/api/scenarios/presets", s.presets).Methods("GET")

	return r
}

// #endregion server-struct

// #region responses

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// #endregion responses

// #region health

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// #endregion health

// #region run-agent

func (s *Server) runAgent(w http.ResponseWriter, r *http.Request) {
	var req scenario.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sc, err := scenario.Normalize(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	decision, err := s.agent.Decide(r.Context(), sc)
	if err != nil {
		log.Printf("[HTTP] agent run: %v", err)
		writeError(w, http.StatusInternalServerError, "decision pipeline failed")
		return
	}
	writeJSON(w, http.StatusOK, decision)
}

// #endregion run-agent

// #region decisions

func (s *Server) listDecisions(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	decisions, err := s.store.ListDecisions(limit)
	if err != nil {
		log.Printf("[HTTP] list decisions: %v", err)
		writeError(w, http.StatusInternalServerError, "ledger unavailable")
		return
	}
	if decisions == nil {
		decisions = []ledger.Decision{}
	}
	writeJSON(w, http.StatusOK, decisions)
}

func (s *Server) getDecision(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d, found, err := s.store.GetDecision(id)
	if err != nil {
		log.Printf("[HTTP] get decision: %v", err)
		writeError(w, http.StatusInternalServerError, "ledger unavailable")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "decision not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) decisionAction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	d, err := s.agent.RecordFeedback(id, body.Action)
	switch {
	case errors.Is(err, agent.ErrUnknownDecision):
		writeError(w, http.StatusNotFound, "decision not found")
		return
	case errors.Is(err, agent.ErrAlreadyResolved):
		writeError(w, http.StatusConflict, "decision already resolved")
		return
	case err != nil:
		if strings.Contains(err.Error(), "unknown feedback action") {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[HTTP] decision action: %v", err)
		writeError(w, http.StatusInternalServerError, "feedback failed")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// #endregion decisions

// #region reference-data

func (s *Server) inventory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.agent.Bundle().Depots)
}

func (s *Server) zones(w http.ResponseWriter, _ *http.Request) {
	zones := s.agent.Bundle().Zones
	out := make([]any, 0, len(zones))
	ids := make([]string, 0, len(zones))
	for id := range zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		out = append(out, zones[id])
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) calculateRoute(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}
	var blocked []string
	if raw := r.URL.Query().Get("blocked"); raw != "" {
		for _, road := range strings.Split(raw, ",") {
			if road = strings.TrimSpace(road); road != "" {
				blocked = append(blocked, road)
			}
		}
	}

	route := s.agent.Planner().FindRoute(start, end, blocked)
	if route == nil {
		writeError(w, http.StatusNotFound, "no route found")
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// #endregion reference-data

// #region dashboard

func (s *Server) dashboardStats(w http.ResponseWriter, _ *http.Request) {
	stats := map[string]any{}

	total := 0
	byStatus := map[string]int{}
	for _, status := range []string{
		ledger.StatusPending, ledger.StatusApproved, ledger.StatusAborted, ledger.StatusModified,
	} {
		n, err := s.store.CountByStatus(status)
		if err != nil {
			log.Printf("[HTTP] dashboard stats: %v", err)
			writeError(w, http.StatusInternalServerError, "ledger unavailable")
			return
		}
		byStatus[status] = n
		total += n
	}
	stats["total_decisions"] = total
	stats["decisions_by_status"] = byStatus

	weights, err := s.store.Weights()
	if err != nil {
		log.Printf("[HTTP] dashboard stats: %v", err)
		writeError(w, http.StatusInternalServerError, "ledger unavailable")
		return
	}
	stats["learning_weights"] = weights

	bundle := s.agent.Bundle()
	stats["historical_scenarios"] = len(bundle.Corpus)
	stats["zones"] = len(bundle.Zones)
	stats["depots"] = len(bundle.Depots)

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) activityLogs(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	entries, err := s.store.ListActivity(limit)
	if err != nil {
		log.Printf("[HTTP] activity logs: %v", err)
		writeError(w, http.StatusInternalServerError, "ledger unavailable")
		return
	}
	if entries == nil {
		entries = []ledger.ActivityEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) presets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Presets())
}

// #endregion dashboard

// #region helpers

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// #endregion helpers
