package services_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, quantities map[string]int) *order.Order {
	t.Helper()
	lines := make([]*order.Line, 0, len(quantities))
	for _, sku := range sortedKeys(quantities) {
		line, err := order.NewLine(kernel.NewUUID(), sku, quantities[sku], 100)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	o, err := order.NewOrder(kernel.NewUUID(), order.KindSale, order.ModeByItem, lines, totalFor(lines))
	require.NoError(t, err)
	return o
}

func totalFor(lines []*order.Line) int64 {
	var total int64
	for _, l := range lines {
		total += int64(l.RequestedQty()) * l.UnitPrice()
	}
	return total
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

func makeStockEntry(t *testing.T, containerID kernel.UUID, sku string, onHand int) *warehouse.InventoryEntry {
	t.Helper()
	entry, err := warehouse.NewInventoryEntry(kernel.NewUUID(), containerID, sku, onHand)
	require.NoError(t, err)
	return entry
}

func TestAffinityStrategy_Allocate(t *testing.T) {
	strategy := services.NewAffinityStrategy()

	t.Run("prefers one container covering the whole order", func(t *testing.T) {
		o := makeOrder(t, map[string]int{"SKU-A": 3, "SKU-B": 2})

		full := kernel.NewUUID()
		partial := kernel.NewUUID()
		entries := []*warehouse.InventoryEntry{
			makeStockEntry(t, partial, "SKU-A", 50),
			makeStockEntry(t, full, "SKU-A", 3),
			makeStockEntry(t, full, "SKU-B", 2),
		}

		reservations, err := strategy.Allocate(o, entries)
		require.NoError(t, err)

		require.Len(t, reservations, 2)
		for _, r := range reservations {
			assert.True(t, r.ContainerID().IsEqual(full))
		}
		assert.Equal(t, 3, entries[1].Reserved())
		assert.Equal(t, 2, entries[2].Reserved())
		assert.Equal(t, 0, entries[0].Reserved(), "larger container must stay untouched")
	})

	t.Run("splits a line across containers when none covers it", func(t *testing.T) {
		o := makeOrder(t, map[string]int{"SKU-A": 8})

		first := kernel.NewUUID()
		second := kernel.NewUUID()
		entries := []*warehouse.InventoryEntry{
			makeStockEntry(t, first, "SKU-A", 5),
			makeStockEntry(t, second, "SKU-A", 5),
		}

		reservations, err := strategy.Allocate(o, entries)
		require.NoError(t, err)

		require.Len(t, reservations, 2)
		total := reservations[0].Quantity() + reservations[1].Quantity()
		assert.Equal(t, 8, total)
		assert.False(t, reservations[0].ContainerID().IsEqual(reservations[1].ContainerID()))
	})

	t.Run("ranks containers holding more of the order first", func(t *testing.T) {
		o := makeOrder(t, map[string]int{"SKU-A": 2, "SKU-B": 10})

		mixed := kernel.NewUUID()
		aOnly := kernel.NewUUID()
		bOnly := kernel.NewUUID()
		entries := []*warehouse.InventoryEntry{
			makeStockEntry(t, aOnly, "SKU-A", 100),
			makeStockEntry(t, mixed, "SKU-A", 2),
			makeStockEntry(t, mixed, "SKU-B", 4),
			makeStockEntry(t, bOnly, "SKU-B", 100),
		}

		reservations, err := strategy.Allocate(o, entries)
		require.NoError(t, err)

		var fromMixed int
		for _, r := range reservations {
			if r.ContainerID().IsEqual(mixed) {
				fromMixed += r.Quantity()
			}
		}
		assert.Equal(t, 6, fromMixed, "the two-product container should be drained first")
	})

	t.Run("reports every unmet line", func(t *testing.T) {
		o := makeOrder(t, map[string]int{"SKU-A": 5, "SKU-B": 3, "SKU-C": 1})

		containerID := kernel.NewUUID()
		entries := []*warehouse.InventoryEntry{
			makeStockEntry(t, containerID, "SKU-A", 2),
			makeStockEntry(t, containerID, "SKU-C", 1),
		}

		_, err := strategy.Allocate(o, entries)

		var infeasible *services.AllocationInfeasibleError
		require.ErrorAs(t, err, &infeasible)
		require.Len(t, infeasible.Unmet, 2)
		assert.Equal(t, "SKU-A", infeasible.Unmet[0].SKU)
		assert.Equal(t, 3, infeasible.Unmet[0].Missing())
		assert.Equal(t, "SKU-B", infeasible.Unmet[1].SKU)
		assert.Equal(t, 3, infeasible.Unmet[1].Missing())
	})

	t.Run("leaves stock untouched on failure", func(t *testing.T) {
		o := makeOrder(t, map[string]int{"SKU-A": 5, "SKU-B": 3})

		entry := makeStockEntry(t, kernel.NewUUID(), "SKU-A", 50)

		_, err := strategy.Allocate(o, []*warehouse.InventoryEntry{entry})

		require.Error(t, err)
		assert.Equal(t, 0, entry.Reserved())
	})

	t.Run("respects existing reservations", func(t *testing.T) {
		o := makeOrder(t, map[string]int{"SKU-A": 3})

		entry := makeStockEntry(t, kernel.NewUUID(), "SKU-A", 4)
		require.NoError(t, entry.Reserve(2))

		_, err := strategy.Allocate(o, []*warehouse.InventoryEntry{entry})

		var infeasible *services.AllocationInfeasibleError
		require.ErrorAs(t, err, &infeasible)
		assert.Equal(t, 2, infeasible.Unmet[0].Available)
	})

	t.Run("two lines of one product do not double count stock", func(t *testing.T) {
		lineA, err := order.NewLine(kernel.NewUUID(), "SKU-A", 3, 100)
		require.NoError(t, err)
		lineB, err := order.NewLine(kernel.NewUUID(), "SKU-A", 3, 100)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), order.KindSale, order.ModeByItem,
			[]*order.Line{lineA, lineB}, 600)
		require.NoError(t, err)

		entry := makeStockEntry(t, kernel.NewUUID(), "SKU-A", 4)

		_, err = strategy.Allocate(o, []*warehouse.InventoryEntry{entry})

		var infeasible *services.AllocationInfeasibleError
		require.ErrorAs(t, err, &infeasible)
	})
}

func TestStrategyByName(t *testing.T) {
	strategy, err := services.StrategyByName("")
	require.NoError(t, err)
	assert.Equal(t, services.AffinityStrategyName, strategy.Name())

	strategy, err = services.StrategyByName("Affinity")
	require.NoError(t, err)
	assert.Equal(t, services.AffinityStrategyName, strategy.Name())

	_, err = services.StrategyByName("round-robin")
	require.Error(t, err)
	assert.False(t, errors.Is(err, nil))
}
