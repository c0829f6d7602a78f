package main

import (
	"flag"
	"log"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/refdata"
)

// #region main

// seed-refdata writes the built-in Chennai reference dataset (road
// network, depots, zones, historical corpus) into a sqlite database that
// agentd can load via REFDATA_DB.
func main() {
	dbPath := flag.String("db", "refdata.db", "path to the refdata sqlite database")
	flag.Parse()

	store, err := refdata.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open refdata store: %v", err)
	}
	defer store.Close()

	bundle := refdata.Chennai()
	if err := store.Seed(bundle); err != nil {
		log.Fatalf("failed to seed refdata: %v", err)
	}

	log.Printf("[SEED] %s: %d nodes, %d edges, %d depots, %d zones, %d historical scenarios",
		*dbPath, len(bundle.Network.Nodes), len(bundle.Network.Edges),
		len(bundle.Depots), len(bundle.Zones), len(bundle.Corpus))
}

// #endregion main
