package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/talgya/pixel-city/internal/engine"
	"github.com/talgya/pixel-city/internal/tuning"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := tuning.Default()
	cfg.GridSize = 16
	return &Server{
		Sim:      engine.NewSimulation(cfg, 5),
		Port:     0,
		AdminKey: "secret",
	}
}

func TestStatusEndpoint(t *testing.T) {
	s := testServer(t)
	w := httptest.NewRecorder()
	s.handleStatus(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["city_level"] != float64(1) {
		t.Errorf("city_level = %v, want 1", body["city_level"])
	}
	if body["city_level_name"] != "Settlement" {
		t.Errorf("city_level_name = %v, want Settlement", body["city_level_name"])
	}
}

func TestActionRequiresBearerToken(t *testing.T) {
	s := testServer(t)
	handler := s.adminOnly(s.handleAction)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/action", strings.NewReader(`{"op":"levelup"}`))
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/action", nil)
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET: status = %d, want 405", w.Code)
	}
}

func TestActionDispatch(t *testing.T) {
	s := testServer(t)

	// Terrain is generated; pick the guaranteed-clear center.
	body := `{"op":"place","type":"farm","x":8,"y":8}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/action", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.handleAction(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("place: status = %d, body %s", w.Code, w.Body.String())
	}
	if s.Sim.Snapshot().Grid[8][8] == nil {
		t.Error("farm should be placed")
	}

	// Rejections surface as conflicts, not server errors.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/action", strings.NewReader(body))
	w = httptest.NewRecorder()
	s.handleAction(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("occupied place: status = %d, want 409", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/action", strings.NewReader(`{"op":"frobnicate"}`))
	w = httptest.NewRecorder()
	s.handleAction(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown op: status = %d, want 400", w.Code)
	}
}

func TestActionLimiterBudget(t *testing.T) {
	al := NewActionLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !al.Allow("1.2.3.4", 1) {
			t.Fatalf("action %d should be allowed", i+1)
		}
	}
	if al.Allow("1.2.3.4", 1) {
		t.Error("fourth action should be limited")
	}
	if !al.Allow("5.6.7.8", 1) {
		t.Error("budgets are per ip")
	}
}

func TestActionCostWeighsFastForward(t *testing.T) {
	if got := actionCost(actionRequest{Op: "place"}); got != 1 {
		t.Errorf("place cost = %d, want 1", got)
	}
	if got := actionCost(actionRequest{Op: "advance", Ticks: 3600}); got != 61 {
		t.Errorf("hour advance cost = %d, want 61", got)
	}

	al := NewActionLimiter(120, time.Minute)
	if !al.Allow("1.2.3.4", 61) {
		t.Fatal("one hour-long fast-forward fits the budget")
	}
	if al.Allow("1.2.3.4", 61) {
		t.Error("a second fast-forward should overdraw the budget")
	}
	if !al.Allow("1.2.3.4", 1) {
		t.Error("a cheap action still fits the remaining budget")
	}
}

func TestActionEndpointRateLimited(t *testing.T) {
	s := testServer(t)
	s.actions = NewActionLimiter(1, time.Minute)

	body := `{"op":"select","x":1,"y":1}`
	w := httptest.NewRecorder()
	s.handleAction(w, httptest.NewRequest(http.MethodPost, "/api/v1/action", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("first action: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	s.handleAction(w, httptest.NewRequest(http.MethodPost, "/api/v1/action", strings.NewReader(body)))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second action: status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 responses carry a Retry-After header")
	}
}
