package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		l, err := order.NewLine(kernel.NewUUID(), "SKU-X", 10, 250)

		require.NoError(t, err)
		assert.Equal(t, "SKU-X", l.SKU())
		assert.Equal(t, 10, l.RequestedQty())
		assert.Equal(t, 0, l.PickedQty())
		assert.Equal(t, 10, l.Remaining())
		assert.Nil(t, l.SourceContainer())
	})

	t.Run("rejects empty sku", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "", 10, 250)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sku")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "SKU-X", 0, 250)

		require.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "SKU-X", 1, -1)

		require.Error(t, err)
	})
}

func TestLine_AddPicked(t *testing.T) {
	t.Run("accumulates up to requested", func(t *testing.T) {
		l, _ := order.NewLine(kernel.NewUUID(), "SKU-X", 10, 0)

		require.NoError(t, l.AddPicked(6))
		require.NoError(t, l.AddPicked(4))

		assert.Equal(t, 10, l.PickedQty())
		assert.True(t, l.IsFullyPicked())
	})

	t.Run("rejects overshoot", func(t *testing.T) {
		l, _ := order.NewLine(kernel.NewUUID(), "SKU-X", 5, 0)
		require.NoError(t, l.AddPicked(3))

		err := l.AddPicked(3)

		require.ErrorIs(t, err, order.ErrPickExceedsRequested)
		assert.Equal(t, 3, l.PickedQty())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		l, _ := order.NewLine(kernel.NewUUID(), "SKU-X", 5, 0)

		require.Error(t, l.AddPicked(0))
		require.Error(t, l.AddPicked(-2))
	})
}

func TestRestoreLine(t *testing.T) {
	containerID := kernel.NewUUID()

	t.Run("restores progress and binding", func(t *testing.T) {
		l, err := order.RestoreLine(kernel.NewUUID(), "SKU-X", 10, 4, 100, &containerID)

		require.NoError(t, err)
		assert.Equal(t, 4, l.PickedQty())
		require.NotNil(t, l.SourceContainer())
		assert.True(t, l.SourceContainer().IsEqual(containerID))
	})

	t.Run("rejects picked over requested", func(t *testing.T) {
		_, err := order.RestoreLine(kernel.NewUUID(), "SKU-X", 5, 6, 100, nil)

		require.Error(t, err)
	})
}
