package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/danielpatrickdp/reliefroute/go-agent/internal/agent"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/estimator"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/ledger"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/predictor"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/refdata"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/risk"
	"github.com/danielpatrickdp/reliefroute/go-agent/internal/server"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
)

// #region main
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] no .env file, using environment as-is")
	}

	ledgerPath := envOr("RELIEF_DB", "relief_agent.db")
	refdataPath := envOr("REFDATA_DB", "")
	predictorAddr := envOr("PREDICTOR_ADDR", "")
	port := envOr("PORT", "8000")

	// Reference data: a seeded sqlite db when configured, otherwise the
	// built-in Chennai dataset.
	bundle := refdata.Chennai()
	if refdataPath != "" {
		refStore, err := refdata.NewStore(refdataPath)
		if err != nil {
			log.Fatalf("failed to open refdata store: %v", err)
		}
		bundle, err = refStore.Load()
		refStore.Close()
		if err != nil {
			log.Fatalf("failed to load refdata: %v", err)
		}
		log.Printf("[MAIN] refdata loaded from %s (%d zones, %d historical)",
			refdataPath, len(bundle.Zones), len(bundle.Corpus))
	}

	store, err := ledger.NewStore(ledgerPath)
	if err != nil {
		log.Fatalf("failed to open ledger store: %v", err)
	}
	defer store.Close()

	// Model service is optional; without it the pipeline is rule-based.
	var demandPredictor estimator.DemandPredictor
	var riskModel risk.Predictor
	var insights agent.InsightProvider
	if predictorAddr != "" {
		client, err := predictor.NewClient(predictorAddr, 3*time.Second)
		if err != nil {
			log.Fatalf("failed to connect to predictor at %s: %v", predictorAddr, err)
		}
		defer client.Close()
		demandPredictor, riskModel, insights = client, client, client
		log.Printf("[MAIN] predictor connected at %s", predictorAddr)
	} else {
		log.Println("[MAIN] no predictor configured, running rule-based")
	}

	a := agent.New(agent.DefaultConfig(), bundle, store, demandPredictor, riskModel, insights)
	srv := server.New(a, store)

	logged := handlers.LoggingHandler(os.Stdout, srv.Router())
	log.Printf("[MAIN] relief agent listening on :%s (ledger: %s)", port, ledgerPath)
	log.Fatal(http.ListenAndServe(":"+port, logged))
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
