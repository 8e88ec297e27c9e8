package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobTasksQueryHandler reads a job's pick list straight from the task
// table. Reads bypass the aggregate and its mapping layer; the list is
// already stored in traversal order via the sequence column.
type GetJobTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetJobTasksQueryHandler creates a handler for pick list queries.
func NewGetJobTasksQueryHandler(db *gorm.DB) GetJobTasksQueryHandler {
	return GetJobTasksQueryHandler{db: db}
}

// Handle executes the query. Tasks come back sorted by sequence, the order
// the warehouse floor is walked.
func (h GetJobTasksQueryHandler) Handle(
	ctx context.Context,
	query GetJobTasksQuery,
) ([]GetJobTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetJobTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence,
			location_code,
			container_code,
			sku,
			quantity,
			picked_qty,
			status
		FROM pick_tasks
		WHERE job_id = ?
		ORDER BY sequence
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task GetJobTasksQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&task.Sequence,
			&task.LocationCode,
			&task.ContainerCode,
			&task.SKU,
			&task.Quantity,
			&task.PickedQty,
			&status,
		)
		if err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		task.TaskID = taskID
		task.Status = picking.TaskStatus(status).String()

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
