// Package approvalrepo provides data transfer objects and mapping
// functions for shortage request persistence. Resolved requests are kept
// as the audit trail of every shortage decision.
package approvalrepo

import (
	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ShortageRequestDTO represents the database structure for persisting
// shortage requests.
type ShortageRequestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index"`
	JobID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RequestedQty int       `gorm:"type:int;not null"`
	ActualQty    int       `gorm:"type:int;not null"`
	Reason       string    `gorm:"type:varchar(512)"`
	RequestedBy  string    `gorm:"type:varchar(255);not null"`
	Status       int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for shortage requests.
func (ShortageRequestDTO) TableName() string {
	return "shortage_requests"
}

func fromDomain(request *approval.ShortageRequest) ShortageRequestDTO {
	return ShortageRequestDTO{
		ID:           request.ID().Bytes(),
		TaskID:       request.TaskID().Bytes(),
		JobID:        request.JobID().Bytes(),
		RequestedQty: request.RequestedQty(),
		ActualQty:    request.ActualQty(),
		Reason:       request.Reason(),
		RequestedBy:  request.RequestedBy(),
		Status:       int(request.Status()),
	}
}

func toDomain(dto ShortageRequestDTO) (*approval.ShortageRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return approval.RestoreShortageRequest(
		id, taskID, jobID,
		dto.RequestedQty, dto.ActualQty,
		dto.Reason, dto.RequestedBy,
		approval.RequestStatus(dto.Status),
	)
}
