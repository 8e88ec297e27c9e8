package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTraversalTask(t *testing.T, containerCode, locationCode, sku string) *picking.Task {
	t.Helper()
	task, err := picking.NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		containerCode, locationCode, sku, 1)
	require.NoError(t, err)
	return task
}

func TestOrderTasksForTraversal(t *testing.T) {
	tasks := []*picking.Task{
		makeTraversalTask(t, "BOX-10", "A-02", "SKU-X"),
		makeTraversalTask(t, "BOX-2", "A-02", "SKU-X"),
		makeTraversalTask(t, "BOX-1", "A-10", "SKU-X"),
		makeTraversalTask(t, "BOX-1", "A-02", "SKU-B"),
		makeTraversalTask(t, "BOX-1", "A-02", "SKU-A"),
	}

	services.OrderTasksForTraversal(tasks)

	got := make([][3]string, 0, len(tasks))
	for _, task := range tasks {
		got = append(got, [3]string{task.LocationCode(), task.ContainerCode(), task.SKU()})
	}
	assert.Equal(t, [][3]string{
		{"A-02", "BOX-1", "SKU-A"},
		{"A-02", "BOX-1", "SKU-B"},
		{"A-02", "BOX-2", "SKU-X"},
		{"A-02", "BOX-10", "SKU-X"},
		{"A-10", "BOX-1", "SKU-X"},
	}, got)
}

func TestNaturalOrdering(t *testing.T) {
	tasks := []*picking.Task{
		makeTraversalTask(t, "R12", "Z-1", "S"),
		makeTraversalTask(t, "r2", "Z-1", "S"),
		makeTraversalTask(t, "R2A", "Z-1", "S"),
	}

	services.OrderTasksForTraversal(tasks)

	assert.Equal(t, "r2", tasks[0].ContainerCode())
	assert.Equal(t, "R2A", tasks[1].ContainerCode())
	assert.Equal(t, "R12", tasks[2].ContainerCode())
}
