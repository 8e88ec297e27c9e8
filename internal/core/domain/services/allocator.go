package services

import (
	"fmt"
	"sort"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"
)

// UnmetLine describes one order line the stock on hand cannot cover.
type UnmetLine struct {
	LineID    kernel.UUID
	SKU       string
	Requested int
	Available int
}

// Missing returns the unit count the warehouse is short by.
func (u UnmetLine) Missing() int {
	return u.Requested - u.Available
}

// AllocationInfeasibleError is returned when at least one order line cannot
// be covered by available stock. It names every failing line so the caller
// can surface the full picture instead of the first failure.
type AllocationInfeasibleError struct {
	OrderID kernel.UUID
	Unmet   []UnmetLine
}

func (e *AllocationInfeasibleError) Error() string {
	parts := make([]string, 0, len(e.Unmet))
	for _, u := range e.Unmet {
		parts = append(parts, fmt.Sprintf("%s requested %d available %d", u.SKU, u.Requested, u.Available))
	}
	return fmt.Sprintf("cannot allocate order %s: %s", e.OrderID, strings.Join(parts, "; "))
}

// AllocationStrategy decides which containers an order's lines draw stock
// from. A strategy inspects the candidate entries, reserves stock on them
// and returns the resulting reservations. On error no entry is mutated.
type AllocationStrategy interface {
	Name() string
	Allocate(o *order.Order, entries []*warehouse.InventoryEntry) ([]*warehouse.Reservation, error)
}

// AffinityStrategyName selects the affinity strategy, also the default.
const AffinityStrategyName = "affinity"

// StrategyByName resolves a strategy by its wire name. An empty name means
// the default affinity strategy.
func StrategyByName(name string) (AllocationStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AffinityStrategyName:
		return NewAffinityStrategy(), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("allocation strategy",
			fmt.Errorf("unknown strategy %q", name))
	}
}

// AffinityStrategy keeps an order's picks physically close together. It
// prefers a single container that covers the whole order; failing that it
// ranks candidate containers per line by how many of the order's products
// they hold, then by available quantity, splitting a line across containers
// only when no single one can cover it.
type AffinityStrategy struct{}

// NewAffinityStrategy creates the strategy. It is stateless.
func NewAffinityStrategy() AffinityStrategy {
	return AffinityStrategy{}
}

// Name returns the strategy's wire name.
func (AffinityStrategy) Name() string {
	return AffinityStrategyName
}

// piece is one planned draw of quantity from an entry, buffered so nothing
// mutates until the whole order is known to be coverable.
type piece struct {
	lineID kernel.UUID
	entry  *warehouse.InventoryEntry
	qty    int
}

// Allocate plans reservations for every line of the order, then applies
// them. When stock cannot cover the order it returns
// *AllocationInfeasibleError listing every unmet line and leaves the
// entries untouched.
func (s AffinityStrategy) Allocate(
	o *order.Order,
	entries []*warehouse.InventoryEntry,
) ([]*warehouse.Reservation, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	candidates := candidatesBySKU(o.SKUs(), entries)

	// Remaining availability per entry, so two lines with the same SKU do
	// not both count the same units.
	avail := make(map[*warehouse.InventoryEntry]int, len(entries))
	for _, e := range entries {
		avail[e] = e.Available()
	}

	plan, unmet := s.planWholeContainer(o, candidates, avail)
	if plan == nil {
		plan, unmet = s.planGreedy(o, candidates, avail)
	}
	if len(unmet) > 0 {
		return nil, &AllocationInfeasibleError{OrderID: o.ID(), Unmet: unmet}
	}

	return applyPlan(o, plan)
}

// planWholeContainer looks for one container holding enough of every
// product to cover the order outright. Returns a nil plan when none exists.
func (s AffinityStrategy) planWholeContainer(
	o *order.Order,
	candidates map[string][]*warehouse.InventoryEntry,
	avail map[*warehouse.InventoryEntry]int,
) ([]piece, []UnmetLine) {
	byContainer := make(map[kernel.UUID]map[string]*warehouse.InventoryEntry)
	var containerIDs []kernel.UUID
	for _, entries := range candidates {
		for _, e := range entries {
			skus, ok := byContainer[e.ContainerID()]
			if !ok {
				skus = make(map[string]*warehouse.InventoryEntry)
				byContainer[e.ContainerID()] = skus
				containerIDs = append(containerIDs, e.ContainerID())
			}
			skus[e.SKU()] = e
		}
	}
	sort.Slice(containerIDs, func(i, j int) bool {
		return containerIDs[i].String() < containerIDs[j].String()
	})

	for _, containerID := range containerIDs {
		skus := byContainer[containerID]
		remaining := make(map[*warehouse.InventoryEntry]int)
		plan := make([]piece, 0, len(o.Lines()))
		covers := true
		for _, line := range o.Lines() {
			entry, ok := skus[line.SKU()]
			if !ok {
				covers = false
				break
			}
			left, tracked := remaining[entry]
			if !tracked {
				left = avail[entry]
			}
			if left < line.RequestedQty() {
				covers = false
				break
			}
			remaining[entry] = left - line.RequestedQty()
			plan = append(plan, piece{lineID: line.ID(), entry: entry, qty: line.RequestedQty()})
		}
		if covers {
			return plan, nil
		}
	}
	return nil, nil
}

// planGreedy covers each line from the ranked candidate list, splitting
// across containers when necessary. Collects every unmet line instead of
// stopping at the first.
func (s AffinityStrategy) planGreedy(
	o *order.Order,
	candidates map[string][]*warehouse.InventoryEntry,
	avail map[*warehouse.InventoryEntry]int,
) ([]piece, []UnmetLine) {
	affinity := containerAffinity(candidates)

	var (
		plan  []piece
		unmet []UnmetLine
	)
	for _, line := range o.Lines() {
		ranked := append([]*warehouse.InventoryEntry(nil), candidates[line.SKU()]...)
		sort.SliceStable(ranked, func(i, j int) bool {
			ai, aj := affinity[ranked[i].ContainerID()], affinity[ranked[j].ContainerID()]
			if ai != aj {
				return ai > aj
			}
			if avail[ranked[i]] != avail[ranked[j]] {
				return avail[ranked[i]] > avail[ranked[j]]
			}
			return ranked[i].ContainerID().String() < ranked[j].ContainerID().String()
		})

		remaining := line.RequestedQty()
		lineTotal := 0
		for _, e := range ranked {
			lineTotal += avail[e]
		}
		if lineTotal < remaining {
			unmet = append(unmet, UnmetLine{
				LineID:    line.ID(),
				SKU:       line.SKU(),
				Requested: line.RequestedQty(),
				Available: lineTotal,
			})
			continue
		}

		for _, e := range ranked {
			if remaining == 0 {
				break
			}
			take := min(remaining, avail[e])
			if take == 0 {
				continue
			}
			avail[e] -= take
			remaining -= take
			plan = append(plan, piece{lineID: line.ID(), entry: e, qty: take})
		}
	}
	return plan, unmet
}

// applyPlan reserves the planned stock and builds the reservation records.
func applyPlan(o *order.Order, plan []piece) ([]*warehouse.Reservation, error) {
	reservations := make([]*warehouse.Reservation, 0, len(plan))
	for _, p := range plan {
		if err := p.entry.Reserve(p.qty); err != nil {
			return nil, err
		}
		reservation, err := warehouse.NewReservation(
			kernel.NewUUID(), o.ID(), p.lineID, p.entry.ContainerID(), p.entry.SKU(), p.qty)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

// candidatesBySKU filters entries down to the order's products, dropping
// entries with nothing available.
func candidatesBySKU(skus []string, entries []*warehouse.InventoryEntry) map[string][]*warehouse.InventoryEntry {
	wanted := make(map[string]struct{}, len(skus))
	for _, sku := range skus {
		wanted[sku] = struct{}{}
	}

	candidates := make(map[string][]*warehouse.InventoryEntry, len(skus))
	for _, e := range entries {
		if _, ok := wanted[e.SKU()]; !ok {
			continue
		}
		if e.Available() == 0 {
			continue
		}
		candidates[e.SKU()] = append(candidates[e.SKU()], e)
	}
	return candidates
}

// containerAffinity counts, per container, how many of the order's products
// it can contribute to. Containers serving more of the order rank higher.
func containerAffinity(candidates map[string][]*warehouse.InventoryEntry) map[kernel.UUID]int {
	affinity := make(map[kernel.UUID]int)
	for _, entries := range candidates {
		for _, e := range entries {
			affinity[e.ContainerID()]++
		}
	}
	return affinity
}
