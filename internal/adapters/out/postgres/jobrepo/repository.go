package jobrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job with all its tasks to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *picking.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job and its tasks.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *picking.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job with its tasks in traversal order. The job row is
// read with SELECT ... FOR UPDATE; every mutation path loads the job first,
// so two workers confirming tasks of the same job serialize here and the
// second one re-reads the committed task state instead of a stale copy.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*picking.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTask retrieves the job owning the given task.
func (r *GormJobRepository) GetByTask(ctx context.Context, taskID kernel.UUID) (*picking.Job, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var taskDto TaskDTO
	err := r.db.WithContext(ctx).
		Select("job_id").
		First(&taskDto, "id = ?", taskID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", taskID.String())
		}
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(taskDto.JobID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, jobID)
}
