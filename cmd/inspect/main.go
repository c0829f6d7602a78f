package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/ledger"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to relief_agent.db")
	last := flag.Int("last", 20, "show N most recent decisions")
	id := flag.String("id", "", "show single decision detail")
	activity := flag.Bool("activity", false, "show the activity feed instead of decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/relief_agent.db [--last N] [--id decision] [--activity] [--json]")
		os.Exit(2)
	}

	store, err := ledger.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *id != "":
		err = runDetailMode(store, *id, *jsonOut)
	case *activity:
		err = runActivityMode(store, *last, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *ledger.Store, last int, jsonOut bool) error {
	decisions, err := store.ListDecisions(last)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Fprintln(os.Stderr, "no decisions found")
		return nil
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(decisions)
	}

	fmt.Printf("%-10s %-20s %-9s %-9s %6s %6s  %s\n",
		"ID", "Time", "Risk", "Status", "Gap", "Cov%", "Summary")
	for _, d := range decisions {
		summary := d.Summary
		if len(summary) > 56 {
			summary = summary[:53] + "..."
		}
		fmt.Printf("%-10s %-20s %-9s %-9s %6d %6.1f  %s\n",
			d.ID, d.Timestamp.Format("2006-01-02 15:04:05"),
			d.RiskLevel, d.Status, d.SupplyGap, d.Coverage, summary)
	}

	weights, err := store.Weights()
	if err != nil {
		return err
	}
	fmt.Printf("\nweights: medical=%.4f evacuation=%.4f infrastructure=%.4f (sum=%.4f)\n",
		weights.Medical, weights.Evacuation, weights.Infrastructure, weights.Sum())
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *ledger.Store, id string, jsonOut bool) error {
	d, found, err := store.GetDecision(id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("decision %s not found", id)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	fmt.Printf("decision %s (%s)\n", d.ID, d.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("  %s\n", d.Summary)
	fmt.Printf("  risk=%s status=%s gap=%d coverage=%.1f%%\n", d.RiskLevel, d.Status, d.SupplyGap, d.Coverage)
	for _, route := range d.Routes {
		fmt.Printf("  route %-8s %5.1f km %5.1f min via %s\n",
			route.Zone, route.DistanceKM, route.TimeMin, strings.Join(route.Roads, ", "))
	}
	for _, dispatch := range d.Dispatched {
		fmt.Printf("  %-12s x%-6d %s\n", dispatch.Type, dispatch.Quantity, dispatch.Status)
	}
	for _, action := range d.Actions {
		fmt.Printf("  - %s\n", action)
	}
	return nil
}

// #endregion detail-mode

// #region activity-mode

func runActivityMode(store *ledger.Store, last int, jsonOut bool) error {
	entries, err := store.ListActivity(last)
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	for _, e := range entries {
		fmt.Printf("%-10s %-20s %-9s %s\n",
			e.ID, e.Timestamp.Format("2006-01-02 15:04:05"), e.EventType, e.Description)
	}
	return nil
}

// #endregion activity-mode
