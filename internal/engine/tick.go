// The tick state machine: one discrete simulated second, resolved in a
// fixed phase order so runs are reproducible and each phase is testable on
// its own.
package engine

import (
	"log/slog"
	"time"

	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/world"
)

// minOfflineSeconds is the smallest gap worth reconciling on load.
const minOfflineSeconds = 15

// tick advances the simulation by one second. Phase order:
//
//	1. capacity recomputation   (storage-dependent)
//	2. per-cell production      (all-or-nothing consumption gating)
//	3. food autosell overflow
//	4. buff decay
//	5. passive stats            (population cap, happiness)
//	6. population drift
//	7. issue generation         (suppressed during offline catch-up)
//	8. event timer / offers
//	9. win-condition evaluation
//
// Callers hold s.mu.
func (s *Simulation) tick(allowIssues bool) {
	s.updateCaps()

	s.Grid.Each(func(c *world.Cell, x, y int) {
		s.applyProduction(c, x, y)
	})

	s.resolveAutoSellFood()
	s.decayBuffs()

	popCap, happiness, _ := s.passiveStats()
	s.PopulationCap = popCap
	s.Happiness = happiness

	// Population drifts toward capacity: growth needs food on hand and
	// scales with happiness; overshoot bleeds off at a flat rate.
	if s.Population < float64(popCap) && s.Ledger.Get(economy.Food) > 0 {
		growth := economy.Clamp(float64(s.Happiness)/260, 0.05, 0.8)
		s.Population = min(float64(popCap), s.Population+growth)
	}
	if s.Population > float64(popCap) {
		s.Population = max(float64(popCap), s.Population-0.2)
	}

	if s.HappinessPenaltyTicks > 0 {
		s.HappinessPenaltyTicks--
	}

	if allowIssues {
		s.maybeCreateIssue()
	}

	s.processEventsTick()
	s.evaluateWinConditions()

	s.Stats.PlayTimeSeconds++
	if s.Stats.PlayTimeSeconds%historyEvery == 0 {
		s.Stats.History = append(s.Stats.History, StatSample{
			T:     s.Stats.PlayTimeSeconds,
			Pop:   int(s.Population),
			Happy: s.Happiness,
			Coins: int(s.Ledger.Get(economy.Coins)),
			Food:  int(s.Ledger.Get(economy.Food)),
		})
		if len(s.Stats.History) > historyMax {
			s.Stats.History = s.Stats.History[len(s.Stats.History)-historyMax:]
		}
	}
}

// decayBuffs ages every active buff one tick and drops expired ones.
func (s *Simulation) decayBuffs() {
	kept := s.Buffs[:0]
	for _, b := range s.Buffs {
		b.Remaining--
		if b.Remaining > 0 {
			kept = append(kept, b)
		}
	}
	s.Buffs = kept
}

// ApplyOffline reconciles elapsed real time since lastSavedAt: runs one
// tick per whole second, capped, with issue generation suppressed so a
// returning player is not greeted by an issue storm. Returns the number of
// ticks applied.
func (s *Simulation) ApplyOffline(lastSavedAt time.Time, now time.Time) int {
	elapsed := int(now.Sub(lastSavedAt).Seconds())
	if elapsed <= minOfflineSeconds {
		return 0
	}
	capped := elapsed
	if capped > s.cfg.MaxOfflineSeconds {
		capped = s.cfg.MaxOfflineSeconds
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < capped; i++ {
		s.tick(false)
	}
	slog.Info("offline progress applied", "seconds", capped, "elapsed", elapsed)
	return capped
}

// Runner drives a simulation in real time with a fixed-step accumulator:
// elapsed wall time accrues into a counter, and each whole simulated second
// executes exactly one tick, sub-second remainder carrying over.
type Runner struct {
	Sim      *Simulation
	Interval time.Duration // duration of one simulated second
	Speed    float64       // multiplier: 1.0 = real time, 0 = paused
	Running  bool

	// OnTick fires after every executed tick (autosave hooks, streaming).
	OnTick func(tick uint64)
}

// NewRunner creates a runner at real-time speed.
func NewRunner(sim *Simulation, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{Sim: sim, Interval: interval, Speed: 1.0}
}

// Run blocks, ticking the simulation until Stop is called.
func (r *Runner) Run() {
	r.Running = true
	slog.Info("simulation loop started", "interval", r.Interval, "speed", r.Speed)

	last := time.Now()
	var acc float64

	for r.Running {
		now := time.Now()
		acc += now.Sub(last).Seconds() * r.Speed
		last = now

		step := r.Interval.Seconds()
		for acc >= step {
			acc -= step
			r.Sim.Tick()
			if r.OnTick != nil {
				r.OnTick(r.Sim.PlayTime())
			}
		}

		time.Sleep(50 * time.Millisecond)
	}

	slog.Info("simulation loop stopped", "tick", r.Sim.PlayTime())
}

// Stop halts the loop after the current iteration.
func (r *Runner) Stop() {
	r.Running = false
}

// PlayTime returns the number of ticks processed over the city's lifetime.
func (s *Simulation) PlayTime() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Stats.PlayTimeSeconds
}
