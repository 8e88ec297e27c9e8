package approvalrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApprovalRepository implements ApprovalRepository using GORM.
type GormApprovalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormApprovalRepository creates a new GORM approval repository.
func NewGormApprovalRepository(db *gorm.DB, tracker aggregateTracker) *GormApprovalRepository {
	return &GormApprovalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new shortage request.
func (r *GormApprovalRepository) Add(ctx context.Context, request *approval.ShortageRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Update persists the resolution of a request.
func (r *GormApprovalRepository) Update(ctx context.Context, request *approval.ShortageRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).Model(&ShortageRequestDTO{}).
		Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Get retrieves a shortage request by ID.
func (r *GormApprovalRepository) Get(ctx context.Context, id kernel.UUID) (*approval.ShortageRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShortageRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shortage request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByTask retrieves the unresolved request blocking a task.
// Returns (nil, nil) when the task has no pending request.
func (r *GormApprovalRepository) GetPendingByTask(ctx context.Context, taskID kernel.UUID) (*approval.ShortageRequest, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dto ShortageRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "task_id = ? AND status = ?", taskID.Bytes(), int(approval.RequestPending)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
