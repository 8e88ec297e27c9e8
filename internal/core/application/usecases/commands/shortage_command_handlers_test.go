package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportShortage files a shortage against the fixture's single task and
// returns the request identifier.
func reportShortage(t *testing.T, f *pickFixture, actualQty int) kernel.UUID {
	t.Helper()
	handler := commands.NewReportShortageCommandHandler(exceptionUoWFactory{f.store})
	cmd, err := commands.NewReportShortageCommand(
		f.job.Tasks()[0].ID(), actualQty, "shelf empty behind the label", "operator-7")
	require.NoError(t, err)
	requestID, err := handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return requestID
}

func TestReportShortageCommandHandler_Handle(t *testing.T) {
	t.Run("blocks the task until a supervisor decides", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})

		requestID := reportShortage(t, f, 3)

		task := f.job.Tasks()[0]
		assert.Equal(t, picking.TaskPendingApproval, task.Status())

		request := f.store.requests[requestID]
		require.NotNil(t, request)
		assert.Equal(t, approval.RequestPending, request.Status())
		assert.Equal(t, 5, request.RequestedQty())
		assert.Equal(t, 3, request.ActualQty())
		assert.Equal(t, 2, request.Delta())

		// A blocked task cannot be confirmed the normal way.
		handler := commands.NewConfirmTasksCommandHandler(pickingUoWFactory{f.store}, f.sessions)
		cmd, err := commands.NewConfirmTasksCommand(
			f.job.ID(), []kernel.UUID{task.ID()}, f.consolidation, "operator-7")
		require.NoError(t, err)
		_, err = handler.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, picking.ErrTaskAwaitingApproval)
	})

	t.Run("rejects a second report while one is pending", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})

		reportShortage(t, f, 3)

		handler := commands.NewReportShortageCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewReportShortageCommand(
			f.job.Tasks()[0].ID(), 2, "still short", "operator-7")
		require.NoError(t, err)
		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrShortageAlreadyReported)
	})

	t.Run("rejects actual quantity at or above the task quantity", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})

		handler := commands.NewReportShortageCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewReportShortageCommand(
			f.job.Tasks()[0].ID(), 5, "nothing missing actually", "operator-7")
		require.NoError(t, err)
		_, err = handler.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.Equal(t, picking.TaskPending, f.job.Tasks()[0].Status())
	})
}

func TestApproveShortageCommandHandler_Handle(t *testing.T) {
	t.Run("settles stock at the actual quantity", func(t *testing.T) {
		// 5 requested, 3 found on the shelf.
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})
		requestID := reportShortage(t, f, 3)

		handler := commands.NewApproveShortageCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewApproveShortageCommand(requestID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		task := f.job.Tasks()[0]
		assert.Equal(t, picking.TaskCompleted, task.Status())
		assert.Equal(t, 3, task.PickedQty())

		entry := entryFor(t, f.store, task.ContainerID(), "SKU-X")
		assert.Equal(t, 2, entry.OnHand(), "only the picked units leave the ledger")
		assert.Equal(t, 0, entry.Reserved(), "the delta claim is released")

		assert.Equal(t, 3, f.aggregate.Lines()[0].PickedQty())
		assert.False(t, f.aggregate.IsFullyPicked())
		assert.Empty(t, f.store.reservations)
		assert.Equal(t, approval.RequestApproved, f.store.requests[requestID].Status())
	})

	t.Run("zero actual completes the task without movement", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})
		requestID := reportShortage(t, f, 0)

		handler := commands.NewApproveShortageCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewApproveShortageCommand(requestID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		task := f.job.Tasks()[0]
		assert.Equal(t, picking.TaskCompleted, task.Status())
		assert.Equal(t, 0, task.PickedQty())

		entry := entryFor(t, f.store, task.ContainerID(), "SKU-X")
		assert.Equal(t, 5, entry.OnHand())
		assert.Equal(t, 0, entry.Reserved())
		assert.Equal(t, 0, f.aggregate.Lines()[0].PickedQty())
	})

	t.Run("cannot approve a resolved request twice", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})
		requestID := reportShortage(t, f, 3)

		handler := commands.NewApproveShortageCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewApproveShortageCommand(requestID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, approval.ErrShortageAlreadyResolved)
	})
}

func TestRejectShortageCommandHandler_Handle(t *testing.T) {
	t.Run("reopens the task with stock untouched", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})
		requestID := reportShortage(t, f, 3)

		handler := commands.NewRejectShortageCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewRejectShortageCommand(requestID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		task := f.job.Tasks()[0]
		assert.Equal(t, picking.TaskPending, task.Status())
		assert.Equal(t, approval.RequestRejected, f.store.requests[requestID].Status())

		entry := entryFor(t, f.store, task.ContainerID(), "SKU-X")
		assert.Equal(t, 5, entry.OnHand())
		assert.Equal(t, 5, entry.Reserved())
		assert.Len(t, f.store.reservations, 1, "reservation survives a rejection")

		// The operator can now pick normally.
		assert.Equal(t, 1, f.confirm(t, []kernel.UUID{task.ID()}))
		assert.True(t, f.aggregate.IsFullyPicked())
	})

	t.Run("allows a fresh report after rejection", func(t *testing.T) {
		f := newPickFixture(t, order.ModeByItem,
			map[string]int{"SKU-X": 5},
			map[string]map[string]int{"BOX-1": {"SKU-X": 5}})
		requestID := reportShortage(t, f, 3)

		handler := commands.NewRejectShortageCommandHandler(exceptionUoWFactory{f.store})
		cmd, err := commands.NewRejectShortageCommand(requestID)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		second := reportShortage(t, f, 4)
		assert.False(t, second.IsEqual(requestID))
		assert.Equal(t, picking.TaskPendingApproval, f.job.Tasks()[0].Status())
	})
}
