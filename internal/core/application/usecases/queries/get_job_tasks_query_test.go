package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetJobTasksQuery(t *testing.T) {
	t.Run("valid job id", func(t *testing.T) {
		jobID := kernel.NewUUID()

		query, err := queries.NewGetJobTasksQuery(jobID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.JobID().IsEqual(jobID))
	})

	t.Run("zero job id", func(t *testing.T) {
		_, err := queries.NewGetJobTasksQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetJobTasksQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetJobTasksQueryIsNotConstructed)
	})
}

func TestNewGetOutstandingOrdersQuery(t *testing.T) {
	t.Run("constructed query validates", func(t *testing.T) {
		query := queries.NewGetOutstandingOrdersQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOutstandingOrdersQuery

		require.ErrorIs(t, query.Validate(),
			queries.ErrGetOutstandingOrdersQueryIsNotConstructed)
	})
}
