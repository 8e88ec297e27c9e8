package sessionstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
)

func TestInMemorySessionStore_GetOrCreate(t *testing.T) {
	store := NewInMemorySessionStore()
	jobID := kernel.NewUUID()

	first, err := store.GetOrCreate(jobID, "alice")
	require.NoError(t, err)
	require.NotNil(t, first)

	again, err := store.GetOrCreate(jobID, "alice")
	require.NoError(t, err)
	assert.Same(t, first, again)

	// A second operator on the same job must not inherit the first
	// operator's unlocked containers and cart.
	second, err := store.GetOrCreate(jobID, "bob")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "bob", second.Operator())

	other, err := store.GetOrCreate(kernel.NewUUID(), "alice")
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestInMemorySessionStore_GetOrCreateInvalid(t *testing.T) {
	store := NewInMemorySessionStore()

	_, err := store.GetOrCreate(kernel.UUID{}, "alice")
	assert.Error(t, err)

	_, err = store.GetOrCreate(kernel.NewUUID(), "")
	assert.Error(t, err)
}

func TestInMemorySessionStore_Drop(t *testing.T) {
	store := NewInMemorySessionStore()
	jobID := kernel.NewUUID()

	first, err := store.GetOrCreate(jobID, "alice")
	require.NoError(t, err)
	second, err := store.GetOrCreate(jobID, "bob")
	require.NoError(t, err)

	// Drop clears the whole job, every operator's session included.
	store.Drop(jobID)

	recreated, err := store.GetOrCreate(jobID, "alice")
	require.NoError(t, err)
	assert.NotSame(t, first, recreated)

	recreatedSecond, err := store.GetOrCreate(jobID, "bob")
	require.NoError(t, err)
	assert.NotSame(t, second, recreatedSecond)
}
