package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapAndPickCommandHandler_Handle(t *testing.T) {
	newSwapFixture := func(t *testing.T, alternateStock int) *pickFixture {
		t.Helper()
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 4},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})
		if alternateStock > 0 {
			seedContainer(t, f.store, "BOX-9", "B-02", map[string]int{"SKU-X": alternateStock})
		} else {
			seedContainer(t, f.store, "BOX-9", "B-02", nil)
		}
		return f
	}

	swap := func(t *testing.T, f *pickFixture, alternateCode string) error {
		t.Helper()
		handler := commands.NewSwapAndPickCommandHandler(exceptionUoWFactory{f.store})
		consolidation := f.consolidation
		cmd, err := commands.NewSwapAndPickCommand(
			f.job.Tasks()[0].ID(), alternateCode, &consolidation, "operator-7")
		require.NoError(t, err)
		return handler.Handle(t.Context(), cmd)
	}

	t.Run("picks from the alternate and releases the original claim", func(t *testing.T) {
		f := newSwapFixture(t, 6)

		require.NoError(t, swap(t, f, "BOX-9"))

		task := f.job.Tasks()[0]
		assert.Equal(t, picking.TaskCompleted, task.Status())
		assert.Equal(t, 4, task.PickedQty())
		assert.Equal(t, 4, f.aggregate.Lines()[0].PickedQty())
		assert.True(t, f.aggregate.IsFullyPicked())

		alternate, err := f.store.containerByCode("BOX-9")
		require.NoError(t, err)
		swapped := entryFor(t, f.store, alternate.ID(), "SKU-X")
		assert.Equal(t, 2, swapped.OnHand())
		assert.Equal(t, 0, swapped.Reserved())

		// The assigned shelf keeps its stock; only the claim is gone.
		original := entryFor(t, f.store, task.ContainerID(), "SKU-X")
		assert.Equal(t, 5, original.OnHand())
		assert.Equal(t, 0, original.Reserved())
		assert.Empty(t, f.store.reservations)
	})

	t.Run("rejects an alternate that cannot cover the quantity", func(t *testing.T) {
		f := newSwapFixture(t, 3)

		err := swap(t, f, "BOX-9")

		var shortErr *commands.AlternateInsufficientStockError
		require.ErrorAs(t, err, &shortErr)
		assert.Equal(t, "BOX-9", shortErr.Code)
		assert.Equal(t, "SKU-X", shortErr.SKU)
		assert.Equal(t, 4, shortErr.Required)
		assert.Equal(t, 3, shortErr.Available)

		assert.Equal(t, picking.TaskPending, f.job.Tasks()[0].Status())
		assert.Len(t, f.store.reservations, 1)
	})

	t.Run("treats a container without the product as empty", func(t *testing.T) {
		f := newSwapFixture(t, 0)

		err := swap(t, f, "BOX-9")

		var shortErr *commands.AlternateInsufficientStockError
		require.ErrorAs(t, err, &shortErr)
		assert.Equal(t, 0, shortErr.Available)
	})

	t.Run("only counts unreserved stock in the alternate", func(t *testing.T) {
		f := newSwapFixture(t, 6)
		alternate, err := f.store.containerByCode("BOX-9")
		require.NoError(t, err)
		entry := entryFor(t, f.store, alternate.ID(), "SKU-X")
		require.NoError(t, entry.Reserve(3)) // someone else's claim

		err = swap(t, f, "BOX-9")

		var shortErr *commands.AlternateInsufficientStockError
		require.ErrorAs(t, err, &shortErr)
		assert.Equal(t, 3, shortErr.Available)
	})

	t.Run("rejects swapping into the assigned container", func(t *testing.T) {
		f := newSwapFixture(t, 6)

		err := swap(t, f, "BOX-1")

		require.Error(t, err)
		assert.Equal(t, picking.TaskPending, f.job.Tasks()[0].Status())
	})

	t.Run("item mode requires a consolidation container", func(t *testing.T) {
		f := newSwapFixture(t, 6)
		handler := commands.NewSwapAndPickCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewSwapAndPickCommand(
			f.job.Tasks()[0].ID(), "BOX-9", nil, "operator-7")
		require.NoError(t, err)

		err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, picking.ErrConsolidationNotBound)
	})
}
