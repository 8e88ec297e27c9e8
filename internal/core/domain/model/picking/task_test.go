package picking_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTask(t *testing.T, qty int) *picking.Task {
	t.Helper()
	task, err := picking.NewTask(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"BOX-1", "A-01-01", "SKU-X", qty)
	require.NoError(t, err)
	return task
}

func TestNewTask(t *testing.T) {
	task := makeTask(t, 5)

	assert.Equal(t, picking.TaskPending, task.Status())
	assert.Equal(t, 5, task.Quantity())
	assert.Equal(t, 0, task.PickedQty())
	assert.Nil(t, task.Consolidation())

	_, err := picking.NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"BOX-1", "A-01-01", "SKU-X", 0)
	require.Error(t, err)

	_, err = picking.NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", "A-01-01", "SKU-X", 5)
	require.Error(t, err)
}

func TestTask_Confirm(t *testing.T) {
	t.Run("completes at full quantity", func(t *testing.T) {
		task := makeTask(t, 5)
		cartID := kernel.NewUUID()

		require.NoError(t, task.Confirm(&cartID))

		assert.Equal(t, picking.TaskCompleted, task.Status())
		assert.Equal(t, 5, task.PickedQty())
		require.NotNil(t, task.Consolidation())
		assert.True(t, task.Consolidation().IsEqual(cartID))
	})

	t.Run("second confirm is rejected as already confirmed", func(t *testing.T) {
		task := makeTask(t, 5)
		require.NoError(t, task.Confirm(nil))

		err := task.Confirm(nil)

		require.ErrorIs(t, err, picking.ErrAlreadyConfirmed)
		assert.Equal(t, 5, task.PickedQty())
	})

	t.Run("blocked while awaiting shortage approval", func(t *testing.T) {
		task := makeTask(t, 5)
		require.NoError(t, task.MarkAwaitingApproval())

		require.ErrorIs(t, task.Confirm(nil), picking.ErrTaskAwaitingApproval)
	})
}

func TestTask_ShortagePath(t *testing.T) {
	t.Run("reopen restores pending", func(t *testing.T) {
		task := makeTask(t, 5)
		require.NoError(t, task.MarkAwaitingApproval())

		require.NoError(t, task.Reopen())

		assert.Equal(t, picking.TaskPending, task.Status())
		require.NoError(t, task.Confirm(nil))
	})

	t.Run("complete with shortage records actual quantity", func(t *testing.T) {
		task := makeTask(t, 5)
		require.NoError(t, task.MarkAwaitingApproval())

		require.NoError(t, task.CompleteWithShortage(3))

		assert.Equal(t, picking.TaskCompleted, task.Status())
		assert.Equal(t, 3, task.PickedQty())
	})

	t.Run("shortage quantity must be below required", func(t *testing.T) {
		task := makeTask(t, 5)
		require.NoError(t, task.MarkAwaitingApproval())

		require.Error(t, task.CompleteWithShortage(5))
		require.Error(t, task.CompleteWithShortage(-1))
	})

	t.Run("cannot mark a completed task", func(t *testing.T) {
		task := makeTask(t, 5)
		require.NoError(t, task.Confirm(nil))

		require.ErrorIs(t, task.MarkAwaitingApproval(), picking.ErrAlreadyConfirmed)
	})
}
