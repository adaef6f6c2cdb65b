package main

import (
	"encoding/json"
	"net/http"

	"github.com/keldric/stargen/internal/stargen"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// POST /generate
// Body: { "seed": 42, "seed_text": "...", "open_cluster": false, "garden_world": false }
// All fields optional; an integer seed wins over a text seed.
type generateRequest struct {
	Seed        *int64 `json:"seed,omitempty"`
	SeedText    string `json:"seed_text,omitempty"`
	OpenCluster bool   `json:"open_cluster,omitempty"`
	GardenWorld bool   `json:"garden_world,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req generateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	sys, err := stargen.Generate(stargen.Options{
		Seed:                 req.Seed,
		SeedText:             req.SeedText,
		IsInOpenCluster:      req.OpenCluster,
		GuaranteeGardenWorld: req.GardenWorld,
		Tables:               s.tables,
		Logger:               s.genLogger(),
	})
	if err != nil {
		s.logger.Errorf("Generation failed: error=%v", err)
		http.Error(w, "generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.logger.Infof("System generated: id=%s stars=%d", sys.ID, sys.NumberOfStars)

	if err := s.broadcaster.Broadcast(r.Context(), sys); err != nil {
		// Watchers missing an event is not worth failing the request.
		s.logger.Warnf("Broadcast skipped: id=%s error=%v", sys.ID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sys); err != nil {
		http.Error(w, "cannot encode: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// GET /watch
// Upgrades to a WebSocket; every system generated through /generate is
// pushed to the connection as a JSON message.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	upgrader := s.broadcaster.Upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("WebSocket upgrade failed: error=%v", err)
		return
	}

	s.broadcaster.RegisterClient(conn)
	s.logger.Debugf("Watcher connected: remote=%s", conn.RemoteAddr())

	// Drain the read side so close frames are processed; the broadcaster
	// owns all writes.
	go func() {
		defer s.broadcaster.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
