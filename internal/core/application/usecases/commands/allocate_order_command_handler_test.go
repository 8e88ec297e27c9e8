package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("reserves stock and moves the order to Allocated", func(t *testing.T) {
		store := newFakeStore()
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-A": 4})
		container := seedContainer(t, store, "BOX-1", "A-01", map[string]int{"SKU-A": 10})
		require.NoError(t, aggregate.Approve(time.Now()))

		handler := commands.NewAllocateOrderCommandHandler(allocationUoWFactory{store}, nil)
		cmd, err := commands.NewAllocateOrderCommand(aggregate.ID(), "affinity")
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))

		assert.Equal(t, order.StatusAllocated, aggregate.Status())
		require.Len(t, store.reservations, 1)
		assert.Equal(t, 4, store.reservations[0].Quantity())
		assert.Equal(t, 4, entryFor(t, store, container.ID(), "SKU-A").Reserved())
	})

	t.Run("requires approval", func(t *testing.T) {
		store := newFakeStore()
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-A": 4})
		seedContainer(t, store, "BOX-1", "A-01", map[string]int{"SKU-A": 10})

		handler := commands.NewAllocateOrderCommandHandler(allocationUoWFactory{store}, nil)
		cmd, err := commands.NewAllocateOrderCommand(aggregate.ID(), "")
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(t.Context(), cmd), order.ErrOrderNotApproved)
		assert.Empty(t, store.reservations)
	})

	t.Run("rejects unknown strategy names", func(t *testing.T) {
		store := newFakeStore()
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-A": 4})

		handler := commands.NewAllocateOrderCommandHandler(allocationUoWFactory{store}, nil)
		cmd, err := commands.NewAllocateOrderCommand(aggregate.ID(), "round-robin")
		require.NoError(t, err)

		require.Error(t, handler.Handle(t.Context(), cmd))
	})

	t.Run("detects the race against a concurrent reservation", func(t *testing.T) {
		// Approval saw enough stock, but another order reserved it in
		// between. Allocation must fail whole, never partially hold.
		store := newFakeStore()
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-A": 4})
		container := seedContainer(t, store, "BOX-1", "A-01", map[string]int{"SKU-A": 5})
		require.NoError(t, aggregate.Approve(time.Now()))
		require.NoError(t, entryFor(t, store, container.ID(), "SKU-A").Reserve(3))

		handler := commands.NewAllocateOrderCommandHandler(allocationUoWFactory{store}, nil)
		cmd, err := commands.NewAllocateOrderCommand(aggregate.ID(), "")
		require.NoError(t, err)

		err = handler.Handle(t.Context(), cmd)

		var infeasible *services.AllocationInfeasibleError
		require.ErrorAs(t, err, &infeasible)
		assert.Empty(t, store.reservations)
		assert.Equal(t, 0, store.commits)
	})
}

func TestDeallocateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("allocate then deallocate restores availability", func(t *testing.T) {
		store := newFakeStore()
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-A": 6, "SKU-B": 2})
		container := seedContainer(t, store, "BOX-1", "A-01", map[string]int{"SKU-A": 9, "SKU-B": 3})

		before := map[string]int{
			"SKU-A": entryFor(t, store, container.ID(), "SKU-A").Available(),
			"SKU-B": entryFor(t, store, container.ID(), "SKU-B").Available(),
		}

		approveAndAllocate(t, store, aggregate)
		require.NotEmpty(t, store.reservations)

		handler := commands.NewDeallocateOrderCommandHandler(allocationUoWFactory{store}, nil)
		cmd, err := commands.NewDeallocateOrderCommand(aggregate.ID())
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		assert.Equal(t, order.StatusPending, aggregate.Status())
		assert.True(t, aggregate.IsApproved(), "approval survives deallocation")
		assert.Empty(t, store.reservations)
		assert.Equal(t, before["SKU-A"], entryFor(t, store, container.ID(), "SKU-A").Available())
		assert.Equal(t, before["SKU-B"], entryFor(t, store, container.ID(), "SKU-B").Available())
	})

	t.Run("rejects orders that are not Allocated", func(t *testing.T) {
		store := newFakeStore()
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-A": 1})

		handler := commands.NewDeallocateOrderCommandHandler(allocationUoWFactory{store}, nil)
		cmd, err := commands.NewDeallocateOrderCommand(aggregate.ID())
		require.NoError(t, err)

		require.Error(t, handler.Handle(t.Context(), cmd))
	})
}
