package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/agent"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/ledger"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/refdata"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/scenario"
)

// #region main

// replay runs a fixture of scenarios through the full pipeline against an
// in-memory ledger, applying the recorded operator action after each
// decision. Useful for eyeballing pipeline output and weight drift
// without a server.
func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	jsonOut := flag.Bool("json", false, "output decisions as JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--json]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *jsonOut))
}

// #endregion main

// #region fixture

// step is one fixture entry: a reported scenario plus the operator action
// to apply to the resulting decision ("" leaves it pending).
type step struct {
	Scenario scenario.Request `json:"scenario"`
	Action   string           `json:"action,omitempty"`
}

func loadFixture(path string) ([]step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var steps []step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return steps, nil
}

// #endregion fixture

// #region run

func run(fixturePath string, jsonOut bool) int {
	steps, err := loadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	// Scratch ledger; a shared in-memory db does not survive the sql.DB
	// connection pool, so use a throwaway file instead.
	scratch, err := os.CreateTemp("", "replay-*.db")
	if err != nil {
		fmt.Fprintf(os.Stderr, "scratch db: %v\n", err)
		return 2
	}
	scratch.Close()
	defer os.Remove(scratch.Name())

	store, err := ledger.NewStore(scratch.Name())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open ledger: %v\n", err)
		return 2
	}
	defer store.Close()

	a := agent.New(agent.DefaultConfig(), refdata.Chennai(), store, nil, nil, nil)
	ctx := context.Background()

	for i, st := range steps {
		sc, err := scenario.Normalize(st.Scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "step %d: %v\n", i+1, err)
			return 1
		}

		decision, err := a.Decide(ctx, sc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "step %d: decide: %v\n", i+1, err)
			return 1
		}

		if st.Action != "" {
			decision, err = a.RecordFeedback(decision.ID, st.Action)
			if err != nil {
				fmt.Fprintf(os.Stderr, "step %d: feedback %q: %v\n", i+1, st.Action, err)
				return 1
			}
		}

		if jsonOut {
			if err := json.NewEncoder(os.Stdout).Encode(decision); err != nil {
				fmt.Fprintf(os.Stderr, "step %d: encode: %v\n", i+1, err)
				return 1
			}
			continue
		}

		fmt.Printf("step %d: %s\n", i+1, decision.Summary)
		fmt.Printf("  id=%s risk=%s status=%s gap=%d coverage=%.1f%% routes=%d\n",
			decision.ID, decision.RiskLevel, decision.Status,
			decision.SupplyGap, decision.Coverage, len(decision.Routes))
	}

	if !jsonOut {
		weights, err := store.Weights()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read weights: %v\n", err)
			return 1
		}
		fmt.Printf("\nfinal weights: medical=%.4f evacuation=%.4f infrastructure=%.4f (sum=%.4f)\n",
			weights.Medical, weights.Evacuation, weights.Infrastructure, weights.Sum())
	}
	return 0
}

// #endregion run
