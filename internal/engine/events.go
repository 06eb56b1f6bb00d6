package engine

import (
	"errors"
	"fmt"

	"github.com/talgya/pixel-city/internal/catalog"
)

var (
	ErrNoActiveEvent = errors.New("no active event")
	ErrCannotAccept  = errors.New("cannot afford event acceptance")
	ErrUnknownEvent  = errors.New("unknown event")
)

// processEventsTick counts the offer timer down and, when it elapses with
// no offer pending, draws a random eligible event. Timers while an offer
// sits unresolved simply stay put.
func (s *Simulation) processEventsTick() {
	if s.ActiveEventID != "" {
		return
	}
	s.EventTimer--
	if s.EventTimer > 0 {
		return
	}

	var pool []catalog.EventDef
	for _, ev := range catalog.Events {
		if ev.MinLevel <= s.CityLevel {
			pool = append(pool, ev)
		}
	}
	if len(pool) == 0 {
		s.EventTimer = 60
		return
	}

	ev := pool[s.rng.IntN(len(pool))]
	s.ActiveEventID = ev.ID
	s.EventTimer = 90 + s.rng.IntN(60)
	s.record("event", fmt.Sprintf("Event offered: %s", ev.Title))
}

// ActiveEvent returns the pending offer, if any.
func (s *Simulation) ActiveEvent() (catalog.EventDef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ActiveEventID == "" {
		return catalog.EventDef{}, false
	}
	ev := catalog.EventByID(s.ActiveEventID)
	if ev == nil {
		return catalog.EventDef{}, false
	}
	return *ev, true
}

// ResolveEvent accepts or declines the pending offer. An acceptance the
// city cannot afford is rejected and the offer stays pending.
func (s *Simulation) ResolveEvent(accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ActiveEventID == "" {
		return ErrNoActiveEvent
	}
	ev := catalog.EventByID(s.ActiveEventID)
	if ev == nil {
		s.ActiveEventID = ""
		return ErrUnknownEvent
	}

	if accept {
		if len(ev.AcceptCost) > 0 && !s.Ledger.Has(ev.AcceptCost) {
			return fmt.Errorf("%w: need %s", ErrCannotAccept, ev.AcceptCost)
		}
		s.applyEffects(ev.Accept)
		s.record("event", fmt.Sprintf("Accepted: %s", ev.Title))
	} else {
		s.applyEffects(ev.Decline)
		s.record("event", fmt.Sprintf("Declined: %s", ev.Title))
	}

	s.ActiveEventID = ""
	return nil
}

// applyEffects interprets an event outcome in order. Each effect applies
// resource deltas, then timed buffs, then forced issues and penalties.
func (s *Simulation) applyEffects(effects []catalog.Effect) {
	for _, e := range effects {
		s.applyEffect(e)
	}
}

func (s *Simulation) applyEffect(e catalog.Effect) {
	if len(e.Spend) > 0 {
		s.Ledger.Spend(e.Spend)
	}
	if len(e.Add) > 0 {
		s.Ledger.Add(e.Add)
	}
	if e.Buff != nil {
		s.Buffs = append(s.Buffs, Buff{
			ID:             e.Buff.ID,
			Name:           e.Buff.Name,
			Remaining:      e.Buff.Duration,
			ProductionMult: e.Buff.ProductionMult,
			HappinessAdd:   e.Buff.HappinessAdd,
		})
	}
	if e.ForceIssues > 0 {
		s.forceIssues(e.ForceIssues)
	}
	if e.HappinessPenaltyTicks > 0 {
		s.HappinessPenaltyTicks += e.HappinessPenaltyTicks
	}
}
