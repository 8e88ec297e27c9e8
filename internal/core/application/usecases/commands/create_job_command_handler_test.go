package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobCommandHandler_Handle(t *testing.T) {
	t.Run("builds one task per reservation in traversal order", func(t *testing.T) {
		store := newFakeStore()
		// 10 units of SKU-X split 6/4 across two containers.
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-X": 10})
		seedContainer(t, store, "BOX-2", "A-05", map[string]int{"SKU-X": 6})
		seedContainer(t, store, "BOX-10", "A-05", map[string]int{"SKU-X": 4})
		approveAndAllocate(t, store, aggregate)

		job := buildJob(t, store, aggregate)

		assert.Equal(t, order.StatusReady, aggregate.Status())
		assert.Equal(t, picking.JobOpen, job.Status())
		require.Len(t, job.Tasks(), 2)

		quantities := map[string]int{}
		for _, task := range job.Tasks() {
			quantities[task.ContainerCode()] = task.Quantity()
		}
		assert.Equal(t, map[string]int{"BOX-2": 6, "BOX-10": 4}, quantities)

		// Natural compare puts BOX-2 before BOX-10 on the same location.
		assert.Equal(t, "BOX-2", job.Tasks()[0].ContainerCode())
		assert.Equal(t, "BOX-10", job.Tasks()[1].ContainerCode())
	})

	t.Run("requires an Allocated order", func(t *testing.T) {
		store := newFakeStore()
		aggregate := seedOrder(t, store, order.ModeByItem, map[string]int{"SKU-A": 1})

		handler := commands.NewCreateJobCommandHandler(pickingUoWFactory{store}, nil)
		cmd, err := commands.NewCreateJobCommand(aggregate.ID())
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.Empty(t, store.jobs)
	})
}
