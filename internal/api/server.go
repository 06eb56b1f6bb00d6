// Package api provides the HTTP API for the city simulation.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (the control plane).
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/websocket"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/engine"
	"github.com/talgya/pixel-city/internal/persistence"
	"github.com/talgya/pixel-city/internal/world"
)

// Server serves the city state over HTTP and WebSocket.
type Server struct {
	Sim         *engine.Simulation
	Runner      *engine.Runner
	DB          *persistence.DB
	Port        int
	AdminKey    string // Bearer token for POST endpoints. Empty = POST disabled.
	ActionLimit int    // Action cost units per client per minute. 0 = default.

	actions  *ActionLimiter
	upgrader websocket.Upgrader
}

const defaultActionLimit = 120

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	limit := s.ActionLimit
	if limit <= 0 {
		limit = defaultActionLimit
	}
	s.actions = NewActionLimiter(limit, time.Minute)

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/state", s.handleState)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/api/v1/stats/history", s.handleStatsHistory)
	mux.HandleFunc("/api/v1/journal", s.handleJournal)
	mux.HandleFunc("/api/v1/event", s.handleEvent)
	mux.HandleFunc("/api/v1/catalog", s.handleCatalog)
	mux.HandleFunc("/api/v1/slots", s.handleSlots)

	// WebSocket state stream.
	mux.HandleFunc("/api/v1/stream", s.handleStream)

	// Control endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/action", s.adminOnly(s.handleAction))
	mux.HandleFunc("/api/v1/save", s.adminOnly(s.handleSave))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "control endpoints disabled (no CITYSIM_ADMIN_KEY set)", http.StatusForbidden)
			return
		}
		if !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Sim.Snapshot()

	status := map[string]any{
		"name":            "Pixel City",
		"tick":            snap.Stats.PlayTimeSeconds,
		"city_level":      snap.CityLevel,
		"city_level_name": s.Sim.CityLevelName(),
		"population":      int(snap.Population),
		"happiness":       snap.Happiness,
		"prestige_stars":  snap.PrestigeStars,
		"prestige_count":  snap.PrestigeCount,
		"coins":           humanize.CommafWithDigits(snap.Resources[economy.Coins], 1),
		"issues":          s.Sim.IssueCount(),
		"buildings":       countBuildings(snap.Grid),
		"wins":            snap.Wins,
	}
	if s.Runner != nil {
		status["speed"] = s.Runner.Speed
		status["running"] = s.Runner.Running
	}
	writeJSON(w, status)
}

func countBuildings(grid [][]*world.Cell) int {
	n := 0
	for _, row := range grid {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// handleState returns the full snapshot, the same shape the save files use.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Snapshot())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := s.Sim.Snapshot()
	writeJSON(w, map[string]any{
		"total_coins_earned":     humanize.CommafWithDigits(snap.Stats.TotalCoinsEarned, 0),
		"total_food_produced":    humanize.CommafWithDigits(snap.Stats.TotalFoodProduced, 0),
		"total_buildings_placed": snap.Stats.TotalBuildingsPlaced,
		"total_upgrades_done":    snap.Stats.TotalUpgradesDone,
		"play_time":              humanizeDuration(snap.Stats.PlayTimeSeconds),
		"play_time_seconds":      snap.Stats.PlayTimeSeconds,
	})
}

func humanizeDuration(seconds uint64) string {
	return humanize.RelTime(time.Now().Add(-time.Duration(seconds)*time.Second), time.Now(), "", "")
}

func (s *Server) handleStatsHistory(w http.ResponseWriter, r *http.Request) {
	snap := s.Sim.Snapshot()
	writeJSON(w, snap.Stats.History)
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.RecentJournal(100))
}

// handleEvent returns the pending event offer, if any.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.Sim.ActiveEvent()
	if !ok {
		writeJSON(w, map[string]any{"active": false})
		return
	}
	writeJSON(w, map[string]any{
		"active":        true,
		"id":            ev.ID,
		"title":         ev.Title,
		"body":          ev.Body,
		"accept_label":  ev.AcceptLabel,
		"decline_label": ev.DeclineLabel,
		"accept_cost":   ev.AcceptCost,
	})
}

// handleCatalog returns the building definitions the client needs to render
// a build menu.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Type         world.BuildingType `json:"type"`
		Label        string             `json:"label"`
		Category     string             `json:"category"`
		UnlockLevel  int                `json:"unlockLevel"`
		BuildCost    economy.Bundle     `json:"buildCost"`
		RequiresRoad bool               `json:"requiresRoad"`
		MaxLevel     int                `json:"maxLevel"`
	}

	var result []entry
	for t, def := range catalog.Buildings {
		result = append(result, entry{
			Type:         t,
			Label:        def.Label,
			Category:     def.Category,
			UnlockLevel:  def.UnlockLevel,
			BuildCost:    def.BuildCost,
			RequiresRoad: def.RequiresRoad,
			MaxLevel:     catalog.MaxLevel(t),
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeJSON(w, []persistence.SlotInfo{})
		return
	}
	slots, err := s.DB.Slots()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, slots)
}

// handleStream upgrades to WebSocket and pushes a full snapshot about once
// a second until the client goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	slog.Info("stream client connected", "remote", conn.RemoteAddr())

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(s.Sim.Snapshot()); err != nil {
				slog.Info("stream client disconnected", "remote", conn.RemoteAddr())
				return
			}
		}
	}
}

// actionRequest is the body of POST /api/v1/action.
type actionRequest struct {
	Op     string   `json:"op"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Type   string   `json:"type"`
	Accept bool     `json:"accept"`
	Ticks  int      `json:"ticks"`
	Speed  *float64 `json:"speed"`
}

// actionCost weighs an action by the engine time it consumes. Ordinary
// commands cost one unit; advance charges an extra unit per simulated
// minute, so an hour-long fast-forward draws 61 units from the budget.
func actionCost(req actionRequest) int {
	if req.Op == "advance" {
		return 1 + req.Ticks/60
	}
	return 1
}

// handleAction dispatches one player command against the simulation.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	if req.Op == "advance" {
		if req.Ticks < 1 {
			req.Ticks = 1
		}
		if req.Ticks > 3600 {
			req.Ticks = 3600
		}
	}

	if s.actions != nil {
		ip := clientIP(r)
		if !s.actions.Allow(ip, actionCost(req)) {
			w.Header().Set("Retry-After", strconv.Itoa(s.actions.RetryAfter(ip)))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
	}

	var err error
	result := map[string]any{"op": req.Op}

	switch req.Op {
	case "place":
		err = s.Sim.Place(world.BuildingType(req.Type), req.X, req.Y)
	case "bulldoze":
		err = s.Sim.Bulldoze(req.X, req.Y)
	case "select":
		s.Sim.Select(req.X, req.Y)
	case "upgrade":
		err = s.Sim.Upgrade(req.X, req.Y)
	case "repair":
		err = s.Sim.Repair(req.X, req.Y)
	case "levelup":
		err = s.Sim.LevelUp()
	case "prestige":
		var gain int
		gain, err = s.Sim.Prestige()
		result["stars_gained"] = gain
	case "event":
		err = s.Sim.ResolveEvent(req.Accept)
	case "advance":
		s.Sim.AdvanceTicks(req.Ticks)
		result["ticks"] = req.Ticks
	case "speed":
		if s.Runner == nil || req.Speed == nil {
			http.Error(w, "speed control unavailable", http.StatusBadRequest)
			return
		}
		sp := *req.Speed
		if sp < 0 {
			sp = 0
		}
		if sp > 60 {
			sp = 60
		}
		s.Runner.Speed = sp
		result["speed"] = sp
	default:
		http.Error(w, "unknown op: "+req.Op, http.StatusBadRequest)
		return
	}

	if err != nil {
		slog.Info("action rejected", "op", req.Op, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rejectionStatus(err))
		json.NewEncoder(w).Encode(map[string]any{"op": req.Op, "error": err.Error()})
		return
	}

	result["ok"] = true
	writeJSON(w, result)
}

// rejectionStatus maps simulation rejections onto HTTP codes. Everything a
// player could trigger by clicking wrong is a 409, not a 500.
func rejectionStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrOutOfBounds),
		errors.Is(err, engine.ErrUnknownBuilding):
		return http.StatusBadRequest
	default:
		return http.StatusConflict
	}
}

// handleSave persists the current city into a slot.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "persistence disabled", http.StatusServiceUnavailable)
		return
	}
	var req struct {
		Slot int `json:"slot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	if err := s.DB.SaveSlot(req.Slot, s.Sim.Snapshot()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "slot": req.Slot})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
