// Package jobrepo provides data transfer objects and mapping functions for
// pick job persistence. A job is always read and written together with its
// full task list.
package jobrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting pick jobs.
type JobDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      int       `gorm:"type:int;not null"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	Tasks       []TaskDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for pick jobs.
func (JobDTO) TableName() string {
	return "pick_jobs"
}

// TaskDTO represents one pick instruction. Sequence preserves the walking
// order the tasks were generated in; loading sorts on it so the device
// shows the list the way the floor is walked.
type TaskDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID           uuid.UUID `gorm:"type:uuid;not null;index"`
	LineID          uuid.UUID `gorm:"type:uuid;not null"`
	ContainerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ContainerCode   string    `gorm:"type:varchar(64);not null"`
	LocationCode    string    `gorm:"type:varchar(64);not null"`
	SKU             string    `gorm:"type:varchar(64);not null"`
	Quantity        int       `gorm:"type:int;not null"`
	PickedQty       int       `gorm:"type:int;not null"`
	Sequence        int       `gorm:"type:int;not null"`
	Status          int       `gorm:"type:int;not null"`
	ConsolidationID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for pick tasks.
func (TaskDTO) TableName() string {
	return "pick_tasks"
}

// fromDomain converts a job aggregate to its database representation.
func fromDomain(aggregate *picking.Job) JobDTO {
	jobID := aggregate.ID().Bytes()
	tasks := make([]TaskDTO, 0, len(aggregate.Tasks()))

	for _, task := range aggregate.Tasks() {
		var consolidationID *uuid.UUID
		if id := task.Consolidation(); id != nil {
			raw := id.Bytes()
			consolidationID = &raw
		}

		tasks = append(tasks, TaskDTO{
			ID:              task.ID().Bytes(),
			JobID:           jobID,
			LineID:          task.LineID().Bytes(),
			ContainerID:     task.ContainerID().Bytes(),
			ContainerCode:   task.ContainerCode(),
			LocationCode:    task.LocationCode(),
			SKU:             task.SKU(),
			Quantity:        task.Quantity(),
			PickedQty:       task.PickedQty(),
			Sequence:        task.Sequence(),
			Status:          int(task.Status()),
			ConsolidationID: consolidationID,
		})
	}

	return JobDTO{
		ID:          jobID,
		OrderID:     aggregate.OrderID().Bytes(),
		Status:      int(aggregate.Status()),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Tasks:       tasks,
	}
}

// toDomain converts a database DTO to a job aggregate using RestoreJob.
func toDomain(dto JobDTO) (*picking.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	tasks := make([]*picking.Task, 0, len(dto.Tasks))
	for _, taskDto := range dto.Tasks {
		task, taskErr := taskToDomain(id, taskDto)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	return picking.RestoreJob(id, orderID, picking.JobStatus(dto.Status), tasks,
		dto.StartedAt, dto.CompletedAt)
}

func taskToDomain(jobID kernel.UUID, dto TaskDTO) (*picking.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}
	containerID, err := kernel.UUIDFromBytes(dto.ContainerID[:])
	if err != nil {
		return nil, err
	}

	var consolidationID *kernel.UUID
	if dto.ConsolidationID != nil {
		cID, consErr := kernel.UUIDFromBytes((*dto.ConsolidationID)[:])
		if consErr != nil {
			return nil, consErr
		}
		consolidationID = &cID
	}

	return picking.RestoreTask(
		id, jobID, lineID, containerID,
		dto.ContainerCode, dto.LocationCode, dto.SKU,
		dto.Quantity, dto.PickedQty, dto.Sequence,
		picking.TaskStatus(dto.Status),
		consolidationID,
	)
}
