package catalog

import "github.com/talgya/pixel-city/internal/economy"

// BuffSpec describes a time-limited global modifier granted by an event.
type BuffSpec struct {
	ID             string
	Name           string
	Duration       int // ticks
	ProductionMult float64
	HappinessAdd   float64
}

// Effect is one operation an event branch performs. Events are pure data;
// the engine interprets effect lists, which keeps definitions serializable
// and testable. Zero-valued fields are skipped.
type Effect struct {
	Add                   economy.Bundle // ledger deltas (may be negative)
	Spend                 economy.Bundle // unchecked spend, floored at zero
	Buff                  *BuffSpec
	ForceIssues           int // inject issues on this many random buildings
	HappinessPenaltyTicks int // extend the temporary happiness penalty
}

// EventDef is a timed offer with accept/decline branches.
type EventDef struct {
	ID           string
	MinLevel     int
	Title        string
	Body         string
	AcceptLabel  string
	DeclineLabel string
	AcceptCost   economy.Bundle // precondition: accepting requires this on hand
	Accept       []Effect
	Decline      []Effect
}

// Events is the full offer catalog in draw order.
var Events = []EventDef{
	{
		ID: "wanderer", MinLevel: 1,
		Title: "Wandering Trader", Body: "A wandering trader offers a small supply of materials.",
		AcceptLabel: "Trade", DeclineLabel: "Pass",
		Accept: []Effect{{Add: economy.Bundle{economy.Wood: 30, economy.Stone: 20, economy.Food: 15}}},
	},
	{
		ID: "settlers", MinLevel: 1,
		Title: "Settlers Arrive", Body: "A group of settlers wants to join your settlement. Accept for extra coins!",
		AcceptLabel: "Welcome!", DeclineLabel: "Turn Away",
		Accept: []Effect{{Add: economy.Bundle{economy.Coins: 80}}},
	},
	{
		ID: "caravan", MinLevel: 2,
		Title: "Trade Caravan", Body: "A caravan offers supplies for cash flow.",
		AcceptLabel: "Take Deal", DeclineLabel: "Ignore",
		Accept: []Effect{{Add: economy.Bundle{economy.Coins: 400, economy.Wood: 120, economy.Stone: 120}}},
	},
	{
		ID: "festival", MinLevel: 3,
		Title: "City Festival", Body: "Hold a festival to boost morale and production for 3 minutes.",
		AcceptLabel: "Fund Festival", DeclineLabel: "Skip",
		AcceptCost:  economy.Bundle{economy.Coins: 300, economy.Food: 150},
		Accept: []Effect{
			{Spend: economy.Bundle{economy.Coins: 300, economy.Food: 150}},
			{Buff: &BuffSpec{ID: "festival-buff", Name: "Festival", Duration: 180, ProductionMult: 0.2, HappinessAdd: 15}},
		},
		Decline: []Effect{{HappinessPenaltyTicks: 60}},
	},
	{
		ID: "storm", MinLevel: 4,
		Title: "Storm Warning", Body: "Bad weather incoming. Protect infrastructure or risk widespread issues.",
		AcceptLabel: "Mitigate", DeclineLabel: "Risk It",
		AcceptCost:  economy.Bundle{economy.Coins: 400, economy.Tools: 40},
		Accept: []Effect{
			{Spend: economy.Bundle{economy.Coins: 400, economy.Tools: 40}},
			{Buff: &BuffSpec{ID: "storm-shield", Name: "Protected Grid", Duration: 120, ProductionMult: 0.1, HappinessAdd: 5}},
		},
		Decline: []Effect{
			{ForceIssues: 6},
			{Add: economy.Bundle{economy.Wood: -100, economy.Stone: -100, economy.Food: -80}},
		},
	},
	{
		ID: "innovation", MinLevel: 5,
		Title: "Innovation Grant", Body: "A grant can accelerate high-tech growth.",
		AcceptLabel: "Accept Grant", DeclineLabel: "Pass",
		Accept: []Effect{{Add: economy.Bundle{economy.Science: 180, economy.Energy: 200, economy.Coins: 600}}},
	},
	{
		ID: "drought", MinLevel: 3,
		Title: "Drought", Body: "Water supply is dwindling. Invest in reserves or farms suffer.",
		AcceptLabel: "Emergency Supply", DeclineLabel: "Wait It Out",
		AcceptCost:  economy.Bundle{economy.Coins: 200, economy.Water: 10},
		Accept: []Effect{
			{Spend: economy.Bundle{economy.Coins: 200}},
			{Buff: &BuffSpec{ID: "drought-shield", Name: "Water Reserves", Duration: 90, ProductionMult: 0.05, HappinessAdd: 3}},
		},
		Decline: []Effect{
			{Buff: &BuffSpec{ID: "drought-debuff", Name: "Drought", Duration: 120, ProductionMult: -0.15}},
		},
	},
}

// EventByID returns the catalog entry with the given id, nil if unknown.
func EventByID(id string) *EventDef {
	for i := range Events {
		if Events[i].ID == id {
			return &Events[i]
		}
	}
	return nil
}
