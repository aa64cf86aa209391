package main

import (
	"log"
	"net/http"

	"salimas-planner/internal/api"
	"salimas-planner/internal/config"
	"salimas-planner/internal/db"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(database, cfg.APIKey))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	log.Printf("Planner API listening on %s (database %s)", cfg.ListenAddr, cfg.DBPath)
	if err := http.ListenAndServe(cfg.ListenAddr, api.LoggingMiddleware(mux)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
