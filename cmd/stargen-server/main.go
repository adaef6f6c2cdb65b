package main

import (
	"net/http"

	"github.com/keldric/stargen/internal/stargen"
)

func main() {
	cfg := loadServerConfig()
	logger := NewLogger(cfg.LogLevel)

	tables := stargen.DefaultTables()
	if cfg.TuningFile != "" {
		tuned, err := loadTablesFromFile(cfg.TuningFile)
		if err != nil {
			logger.Fatalf("Cannot load tuning file %s: %v", cfg.TuningFile, err)
		}
		tables = tuned
		logger.Infof("Tuning applied from %s", cfg.TuningFile)
	}

	srv := NewServer(tables, logger)
	defer srv.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", srv.handleHealth)
	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		srv.handleGenerate(w, r)
	})
	mux.HandleFunc("/watch", srv.handleWatch)

	limiter := NewRateLimiter(cfg.RateLimitOn, cfg.RateLimitRPS, cfg.RateLimitBurst, logger)

	logger.Infof("stargen-server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, limiter.Middleware(mux)); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
