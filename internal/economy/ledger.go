package economy

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Bundle maps resources to quantities. Used for costs, production outputs,
// consumption inputs, and rewards. A nil Bundle means "nothing".
type Bundle map[ResourceID]float64

// Ledger tracks current resource amounts and their active capacities.
// Amounts never go negative and never exceed capacity; only Spend, Add,
// and SetCaps mutate them.
type Ledger struct {
	Amounts Bundle `json:"amounts"`
	Caps    Bundle `json:"caps"`
}

// NewLedger creates a ledger with the starting stock and base capacities.
func NewLedger() *Ledger {
	return &Ledger{
		Amounts: StartingResources(),
		Caps:    BaseCaps(),
	}
}

// Get returns the current amount of a resource (0 for unknown).
func (l *Ledger) Get(id ResourceID) float64 {
	return l.Amounts[id]
}

// Cap returns the active capacity for a resource, Unbounded if none is set.
func (l *Ledger) Cap(id ResourceID) float64 {
	if c, ok := l.Caps[id]; ok {
		return c
	}
	return Unbounded
}

// Has reports whether every entry of cost is covered by the current amounts.
// A nil or empty cost is always affordable.
func (l *Ledger) Has(cost Bundle) bool {
	for id, v := range cost {
		if l.Amounts[id] < v {
			return false
		}
	}
	return true
}

// Spend decreases amounts by cost, flooring each resource at zero. It does
// not reject unaffordable costs; callers check Has first. Spending more than
// is held simply empties the resource.
func (l *Ledger) Spend(cost Bundle) {
	for id, v := range cost {
		l.Amounts[id] = math.Max(0, l.Amounts[id]-v)
	}
}

// Add applies a bundle of deltas, clamping each resource into [0, cap].
// Excess above capacity is silently discarded. Deltas may be negative
// (event penalties use this), in which case the floor of zero applies.
func (l *Ledger) Add(bundle Bundle) {
	for id, v := range bundle {
		l.Amounts[id] = Clamp(l.Amounts[id]+v, 0, l.Cap(id))
	}
}

// SetCaps replaces the active capacity table and re-clamps every amount to
// its new capacity.
func (l *Ledger) SetCaps(caps map[ResourceID]float64) {
	l.Caps = caps
	for id := range l.Amounts {
		if l.Amounts[id] > l.Cap(id) {
			l.Amounts[id] = l.Cap(id)
		}
	}
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// Round1 rounds to one decimal place, the precision used for displayed
// resource quantities and discounted upgrade costs.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// String renders a bundle as "10 wood, 5 stone" with zero entries dropped,
// in stable resource order. Empty and nil bundles render as "None".
func (b Bundle) String() string {
	var parts []string
	keys := make([]string, 0, len(b))
	for id := range b {
		keys = append(keys, string(id))
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := b[ResourceID(k)]
		if v == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%g %s", Round1(v), k))
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// Clone returns a copy of the bundle. Nil stays nil.
func (b Bundle) Clone() Bundle {
	if b == nil {
		return nil
	}
	out := make(Bundle, len(b))
	for id, v := range b {
		out[id] = v
	}
	return out
}

// Scale returns a copy of the bundle with every value multiplied by f and
// rounded up to a whole number. Used for terrain-adjusted build costs.
func (b Bundle) Scale(f float64) Bundle {
	out := make(Bundle, len(b))
	for id, v := range b {
		out[id] = math.Ceil(v * f)
	}
	return out
}
