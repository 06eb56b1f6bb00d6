// Per-client budget for control-plane actions over a sliding window.
// Actions are not all equal: fast-forwarding the simulation consumes far
// more engine time than placing one building, so each action draws a
// weighted cost from the budget rather than counting as one request.
package api

import (
	"net/http"
	"sync"
	"time"
)

// ActionLimiter meters weighted action costs per client IP.
type ActionLimiter struct {
	mu      sync.Mutex
	clients map[string]*actionWindow
	budget  int
	window  time.Duration
}

type actionWindow struct {
	spent   int
	started time.Time
}

// NewActionLimiter creates a limiter granting each client budget cost units
// per window.
func NewActionLimiter(budget int, window time.Duration) *ActionLimiter {
	al := &ActionLimiter{
		clients: make(map[string]*actionWindow),
		budget:  budget,
		window:  window,
	}
	// Periodic cleanup of stale entries.
	go func() {
		for {
			time.Sleep(time.Hour)
			al.cleanup()
		}
	}()
	return al
}

// Allow charges cost against the client's current window. It reports false
// when the charge would overdraw the budget; the window is left unchanged
// so a cheaper action may still pass.
func (al *ActionLimiter) Allow(ip string, cost int) bool {
	al.mu.Lock()
	defer al.mu.Unlock()

	if cost > al.budget {
		cost = al.budget
	}

	w, ok := al.clients[ip]
	now := time.Now()
	if !ok || now.Sub(w.started) >= al.window {
		al.clients[ip] = &actionWindow{spent: cost, started: now}
		return true
	}
	if w.spent+cost > al.budget {
		return false
	}
	w.spent += cost
	return true
}

// RetryAfter returns how many seconds until the window resets for this IP.
func (al *ActionLimiter) RetryAfter(ip string) int {
	al.mu.Lock()
	defer al.mu.Unlock()

	w, ok := al.clients[ip]
	if !ok {
		return 0
	}
	remaining := al.window - time.Since(w.started)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

func (al *ActionLimiter) cleanup() {
	al.mu.Lock()
	defer al.mu.Unlock()

	now := time.Now()
	for ip, w := range al.clients {
		if now.Sub(w.started) > 2*al.window {
			delete(al.clients, ip)
		}
	}
}

// clientIP extracts the caller's address, preferring X-Forwarded-For when a
// proxy sits in front.
func clientIP(r *http.Request) string {
	ip := r.RemoteAddr
	// Strip port from IP.
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == ':' {
			ip = ip[:i]
			break
		}
	}
	// Check X-Forwarded-For for proxied requests.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip = xff
		// Take first IP if comma-separated.
		for i, c := range xff {
			if c == ',' {
				ip = xff[:i]
				break
			}
		}
	}
	return ip
}
