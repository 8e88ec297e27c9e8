package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetJobTasksQueryIsNotConstructed = errors.New(
	"GetJobTasksQuery must be created via NewGetJobTasksQuery constructor",
)

// GetJobTasksQuery retrieves the pick list of one job: every task in the
// traversal order the floor is walked, with its live status and progress.
// The operator's device renders this list directly.
type GetJobTasksQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobTasksQuery creates a query for a job's pick list.
func NewGetJobTasksQuery(jobID kernel.UUID) (GetJobTasksQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobTasksQuery{}, err
	}

	return GetJobTasksQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetJobTasksQueryIsNotConstructed)
}

// JobID returns the job whose pick list is requested.
func (q GetJobTasksQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetJobTasksQueryResponse represents one row of the pick list.
type GetJobTasksQueryResponse struct {
	TaskID        kernel.UUID
	Sequence      int
	LocationCode  string
	ContainerCode string
	SKU           string
	Quantity      int
	PickedQty     int
	Status        string
}
