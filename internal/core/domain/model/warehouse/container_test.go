package warehouse_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	t.Run("creates open container", func(t *testing.T) {
		c, err := warehouse.NewContainer(kernel.NewUUID(), "BOX-12", "A-01-03")

		require.NoError(t, err)
		assert.Equal(t, warehouse.ContainerOpen, c.Status())
		assert.True(t, c.IsUsable())
		require.NoError(t, c.EnsureUsable())
	})

	t.Run("trims the code", func(t *testing.T) {
		c, err := warehouse.NewContainer(kernel.NewUUID(), "  BOX-12 ", "A-01-03")

		require.NoError(t, err)
		assert.Equal(t, "BOX-12", c.Code())
	})

	t.Run("rejects empty code or location", func(t *testing.T) {
		_, err := warehouse.NewContainer(kernel.NewUUID(), "", "A-01-03")
		require.Error(t, err)

		_, err = warehouse.NewContainer(kernel.NewUUID(), "BOX-12", "  ")
		require.Error(t, err)
	})
}

func TestContainer_MatchesScan(t *testing.T) {
	c, err := warehouse.NewContainer(kernel.NewUUID(), "BOX-12", "A-01-03")
	require.NoError(t, err)

	assert.True(t, c.MatchesScan("BOX-12"))
	assert.True(t, c.MatchesScan("  box-12\n"))
	assert.False(t, c.MatchesScan("BOX-13"))
	assert.False(t, c.MatchesScan(""))
}

func TestContainer_EnsureUsable(t *testing.T) {
	closed, err := warehouse.RestoreContainer(kernel.NewUUID(), "BOX-1", "A-01", warehouse.ContainerClosed)
	require.NoError(t, err)
	require.ErrorIs(t, closed.EnsureUsable(), warehouse.ErrContainerNotUsable)

	locked, err := warehouse.RestoreContainer(kernel.NewUUID(), "BOX-2", "A-02", warehouse.ContainerLocked)
	require.NoError(t, err)
	require.ErrorIs(t, locked.EnsureUsable(), warehouse.ErrContainerNotUsable)
}

func TestNewReservation(t *testing.T) {
	r, err := warehouse.NewReservation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "SKU-X", 5)

	require.NoError(t, err)
	assert.Equal(t, 5, r.Quantity())
	assert.Equal(t, "SKU-X", r.SKU())

	_, err = warehouse.NewReservation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "SKU-X", 0)
	require.Error(t, err)

	var zeroID kernel.UUID
	_, err = warehouse.NewReservation(
		zeroID, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "SKU-X", 1)
	require.Error(t, err)
}
