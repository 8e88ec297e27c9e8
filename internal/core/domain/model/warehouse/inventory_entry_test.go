package warehouse_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntry(t *testing.T, onHand int) *warehouse.InventoryEntry {
	t.Helper()
	e, err := warehouse.NewInventoryEntry(kernel.NewUUID(), kernel.NewUUID(), "SKU-X", onHand)
	require.NoError(t, err)
	return e
}

func TestNewInventoryEntry(t *testing.T) {
	e := makeEntry(t, 10)

	assert.Equal(t, 10, e.OnHand())
	assert.Equal(t, 0, e.Reserved())
	assert.Equal(t, 10, e.Available())

	_, err := warehouse.NewInventoryEntry(kernel.NewUUID(), kernel.NewUUID(), "", 1)
	require.Error(t, err)

	_, err = warehouse.NewInventoryEntry(kernel.NewUUID(), kernel.NewUUID(), "SKU-X", -1)
	require.Error(t, err)
}

func TestInventoryEntry_Reserve(t *testing.T) {
	t.Run("reserve reduces available not on hand", func(t *testing.T) {
		e := makeEntry(t, 10)

		require.NoError(t, e.Reserve(6))

		assert.Equal(t, 10, e.OnHand())
		assert.Equal(t, 6, e.Reserved())
		assert.Equal(t, 4, e.Available())
	})

	t.Run("cannot reserve past available", func(t *testing.T) {
		e := makeEntry(t, 10)
		require.NoError(t, e.Reserve(7))

		err := e.Reserve(4)

		require.ErrorIs(t, err, warehouse.ErrInsufficientStock)
		assert.Equal(t, 7, e.Reserved())
	})

	t.Run("reserve then release round-trips", func(t *testing.T) {
		e := makeEntry(t, 10)

		require.NoError(t, e.Reserve(6))
		require.NoError(t, e.Release(6))

		assert.Equal(t, 10, e.Available())
		assert.Equal(t, 0, e.Reserved())
	})

	t.Run("release underflow rejected", func(t *testing.T) {
		e := makeEntry(t, 10)
		require.NoError(t, e.Reserve(2))

		require.ErrorIs(t, e.Release(3), warehouse.ErrReservationUnderflow)
	})
}

func TestInventoryEntry_Consume(t *testing.T) {
	t.Run("consume reserved drops both balances", func(t *testing.T) {
		e := makeEntry(t, 10)
		require.NoError(t, e.Reserve(6))

		require.NoError(t, e.ConsumeReserved(6))

		assert.Equal(t, 4, e.OnHand())
		assert.Equal(t, 0, e.Reserved())
		assert.Equal(t, 4, e.Available())
	})

	t.Run("consume reserved cannot exceed reservation", func(t *testing.T) {
		e := makeEntry(t, 10)
		require.NoError(t, e.Reserve(2))

		require.ErrorIs(t, e.ConsumeReserved(3), warehouse.ErrReservationUnderflow)
		assert.Equal(t, 10, e.OnHand())
	})

	t.Run("consume available skips reservations", func(t *testing.T) {
		e := makeEntry(t, 10)
		require.NoError(t, e.Reserve(6))

		require.NoError(t, e.ConsumeAvailable(4))

		assert.Equal(t, 6, e.OnHand())
		assert.Equal(t, 6, e.Reserved())
		assert.Equal(t, 0, e.Available())
	})

	t.Run("consume available cannot take reserved stock", func(t *testing.T) {
		e := makeEntry(t, 10)
		require.NoError(t, e.Reserve(6))

		require.ErrorIs(t, e.ConsumeAvailable(5), warehouse.ErrInsufficientStock)
		assert.Equal(t, 10, e.OnHand())
	})

	t.Run("non-positive quantities rejected", func(t *testing.T) {
		e := makeEntry(t, 10)

		require.Error(t, e.Reserve(0))
		require.Error(t, e.ConsumeAvailable(-1))
	})
}

func TestRestoreInventoryEntry(t *testing.T) {
	e, err := warehouse.RestoreInventoryEntry(kernel.NewUUID(), kernel.NewUUID(), "SKU-X", 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, e.Available())

	_, err = warehouse.RestoreInventoryEntry(kernel.NewUUID(), kernel.NewUUID(), "SKU-X", 10, 11)
	require.Error(t, err)
}
