package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickFixture drives an item-mode order to a ready job with unlocked
// containers and a bound consolidation cart.
type pickFixture struct {
	store         *fakeStore
	sessions      *fakeSessions
	aggregate     *order.Order
	job           *picking.Job
	consolidation kernel.UUID
}

func newPickFixture(t *testing.T, mode order.FulfillmentMode, quantities map[string]int, stock map[string]map[string]int) *pickFixture {
	t.Helper()
	store := newFakeStore()
	aggregate := seedOrder(t, store, mode, quantities)
	for _, code := range sortedStockCodes(stock) {
		seedContainer(t, store, code, "A-01", stock[code])
	}
	cart := seedContainer(t, store, "CART-1", "STAGE", nil)

	approveAndAllocate(t, store, aggregate)
	job := buildJob(t, store, aggregate)

	sessions := newFakeSessions()
	session, err := sessions.GetOrCreate(job.ID(), "operator-7")
	require.NoError(t, err)
	for _, task := range job.Tasks() {
		require.NoError(t, session.UnlockContainer(task.ContainerCode(), task.ContainerCode()))
	}
	if mode.RequiresConsolidation() {
		require.NoError(t, session.BindConsolidation(cart.ID()))
	}

	return &pickFixture{
		store:         store,
		sessions:      sessions,
		aggregate:     aggregate,
		job:           job,
		consolidation: cart.ID(),
	}
}

func sortedStockCodes(stock map[string]map[string]int) []string {
	codes := make([]string, 0, len(stock))
	for code := range stock {
		codes = append(codes, code)
	}
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && codes[j] < codes[j-1]; j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	return codes
}

func (f *pickFixture) confirmAll(t *testing.T) int {
	t.Helper()
	ids := make([]kernel.UUID, 0, len(f.job.Tasks()))
	for _, task := range f.job.Tasks() {
		ids = append(ids, task.ID())
	}
	return f.confirm(t, ids)
}

func (f *pickFixture) confirm(t *testing.T, ids []kernel.UUID) int {
	t.Helper()
	handler := commands.NewConfirmTasksCommandHandler(pickingUoWFactory{f.store}, f.sessions)
	cmd, err := commands.NewConfirmTasksCommand(f.job.ID(), ids, f.consolidation, "operator-7")
	require.NoError(t, err)
	processed, err := handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return processed
}

func TestConfirmTasksCommandHandler_Handle(t *testing.T) {
	t.Run("split line picks to full quantity", func(t *testing.T) {
		// 10 units of SKU-X from 6 in BOX-1 and 4 in BOX-2.
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 10},
			map[string]map[string]int{"BOX-1": {"SKU-X": 6}, "BOX-2": {"SKU-X": 4}})

		processed := f.confirmAll(t)

		assert.Equal(t, 2, processed)
		line := f.aggregate.Lines()[0]
		assert.Equal(t, 10, line.PickedQty())
		assert.True(t, f.aggregate.IsFullyPicked())
		assert.Equal(t, picking.JobInProgress, f.job.Status())
		assert.Equal(t, order.StatusPicking, f.aggregate.Status())
		assert.Empty(t, f.store.reservations)
	})

	t.Run("confirmation decrements on hand and reserved together", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 4},
			map[string]map[string]int{"BOX-1": {"SKU-X": 9}})

		task := f.job.Tasks()[0]
		entry := entryFor(t, f.store, task.ContainerID(), "SKU-X")
		require.Equal(t, 9, entry.OnHand())
		require.Equal(t, 4, entry.Reserved())

		f.confirmAll(t)

		assert.Equal(t, 5, entry.OnHand())
		assert.Equal(t, 0, entry.Reserved())
		assert.Equal(t, 5, entry.Available())
	})

	t.Run("retry is a benign no-op", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 4},
			map[string]map[string]int{"BOX-1": {"SKU-X": 9}})

		require.Equal(t, 1, f.confirmAll(t))
		entry := entryFor(t, f.store, f.job.Tasks()[0].ContainerID(), "SKU-X")
		onHandAfterFirst := entry.OnHand()

		processed := f.confirmAll(t)

		assert.Equal(t, 0, processed, "completed tasks must be skipped")
		assert.Equal(t, onHandAfterFirst, entry.OnHand(), "no second decrement")
		assert.Equal(t, 4, f.aggregate.Lines()[0].PickedQty())
	})

	t.Run("locked container blocks confirmation", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 4},
			map[string]map[string]int{"BOX-1": {"SKU-X": 9}})

		// Fresh session without unlocks.
		f.sessions = newFakeSessions()
		session, err := f.sessions.GetOrCreate(f.job.ID(), "operator-7")
		require.NoError(t, err)
		require.NoError(t, session.BindConsolidation(f.consolidation))

		handler := commands.NewConfirmTasksCommandHandler(pickingUoWFactory{f.store}, f.sessions)
		cmd, err := commands.NewConfirmTasksCommand(
			f.job.ID(), []kernel.UUID{f.job.Tasks()[0].ID()}, f.consolidation, "operator-7")
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, picking.ErrContainerStillLocked)
		assert.Equal(t, 0, f.aggregate.Lines()[0].PickedQty())
	})

	t.Run("rejects container-mode jobs", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByContainer,
			map[string]int{"SKU-X": 4},
			map[string]map[string]int{"BOX-1": {"SKU-X": 9}})

		handler := commands.NewConfirmTasksCommandHandler(pickingUoWFactory{f.store}, f.sessions)
		cmd, err := commands.NewConfirmTasksCommand(
			f.job.ID(), []kernel.UUID{f.job.Tasks()[0].ID()}, f.consolidation, "operator-7")
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrRequiresItemMode)
	})

	t.Run("records the consolidation container on each task", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 4},
			map[string]map[string]int{"BOX-1": {"SKU-X": 9}})

		f.confirmAll(t)

		task := f.job.Tasks()[0]
		require.NotNil(t, task.Consolidation())
		assert.True(t, task.Consolidation().IsEqual(f.consolidation))
	})
}

func TestConfirmContainerCommandHandler_Handle(t *testing.T) {
	t.Run("completes every pending task of the container", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByContainer,
			map[string]int{"SKU-A": 2, "SKU-B": 3},
			map[string]map[string]int{"BOX-1": {"SKU-A": 2, "SKU-B": 3}})

		containerID := f.job.Tasks()[0].ContainerID()
		handler := commands.NewConfirmContainerCommandHandler(pickingUoWFactory{f.store}, f.sessions)
		cmd, err := commands.NewConfirmContainerCommand(f.job.ID(), containerID, "operator-7")
		require.NoError(t, err)

		processed, err := handler.Handle(t.Context(), cmd)
		require.NoError(t, err)

		assert.Equal(t, 2, processed)
		assert.True(t, f.aggregate.IsFullyPicked())

		// Retry finds nothing pending.
		processed, err = handler.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, 0, processed)
	})

	t.Run("rejects item-mode jobs", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-A": 2},
			map[string]map[string]int{"BOX-1": {"SKU-A": 2}})

		handler := commands.NewConfirmContainerCommandHandler(pickingUoWFactory{f.store}, f.sessions)
		cmd, err := commands.NewConfirmContainerCommand(
			f.job.ID(), f.job.Tasks()[0].ContainerID(), "operator-7")
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrRequiresContainerMode)
	})
}
