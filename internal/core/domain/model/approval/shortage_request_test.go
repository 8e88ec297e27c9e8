package approval_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRequest(t *testing.T, requested, actual int) *approval.ShortageRequest {
	t.Helper()
	request, err := approval.NewShortageRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		requested, actual, "shelf damaged", "operator-7")
	require.NoError(t, err)
	return request
}

func TestNewShortageRequest(t *testing.T) {
	t.Run("records both quantities and the delta", func(t *testing.T) {
		request := makeRequest(t, 5, 3)

		assert.Equal(t, approval.RequestPending, request.Status())
		assert.Equal(t, 5, request.RequestedQty())
		assert.Equal(t, 3, request.ActualQty())
		assert.Equal(t, 2, request.Delta())
	})

	t.Run("actual must be strictly below requested", func(t *testing.T) {
		_, err := approval.NewShortageRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			5, 5, "", "operator-7")
		require.Error(t, err)

		_, err = approval.NewShortageRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			5, -1, "", "operator-7")
		require.Error(t, err)
	})

	t.Run("zero on the shelf is a valid report", func(t *testing.T) {
		request := makeRequest(t, 5, 0)
		assert.Equal(t, 5, request.Delta())
	})

	t.Run("requires a requesting operator", func(t *testing.T) {
		_, err := approval.NewShortageRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			5, 3, "", "")
		require.Error(t, err)
	})
}

func TestShortageRequest_Resolve(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		request := makeRequest(t, 5, 3)

		require.NoError(t, request.Approve())

		assert.Equal(t, approval.RequestApproved, request.Status())
		assert.True(t, request.Status().IsResolved())
	})

	t.Run("reject", func(t *testing.T) {
		request := makeRequest(t, 5, 3)

		require.NoError(t, request.Reject())

		assert.Equal(t, approval.RequestRejected, request.Status())
	})

	t.Run("resolving twice fails", func(t *testing.T) {
		request := makeRequest(t, 5, 3)
		require.NoError(t, request.Approve())

		require.ErrorIs(t, request.Approve(), approval.ErrShortageAlreadyResolved)
		require.ErrorIs(t, request.Reject(), approval.ErrShortageAlreadyResolved)
		assert.Equal(t, approval.RequestApproved, request.Status())
	})
}

func TestRequestStatusFromString(t *testing.T) {
	status, err := approval.RequestStatusFromString("approved")
	require.NoError(t, err)
	assert.Equal(t, approval.RequestApproved, status)

	_, err = approval.RequestStatusFromString("bogus")
	require.Error(t, err)
}
