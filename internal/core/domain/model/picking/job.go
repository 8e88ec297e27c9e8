package picking

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job bypassed its constructor.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrJobIncomplete indicates completion was requested while tasks are
	// still Pending or PendingApproval.
	ErrJobIncomplete = errors.New("job has unfinished tasks")

	// ErrJobHasNoTasks indicates a job without a single task.
	ErrJobHasNoTasks = errors.New("job must have at least one task")
)

// JobStatus is the lifecycle state of a picking job.
type JobStatus int

const (
	// JobUnknown is the invalid zero value.
	JobUnknown JobStatus = iota

	// JobOpen means the job is built but no task has been confirmed.
	JobOpen

	// JobInProgress means at least one task was confirmed.
	JobInProgress

	// JobCompleted means every task completed; terminal.
	JobCompleted

	// JobCancelled means the job was abandoned before any pick; terminal.
	JobCancelled
)

func jobStatusStrings() map[JobStatus]string {
	return map[JobStatus]string{
		JobUnknown:    "Unknown",
		JobOpen:       "Open",
		JobInProgress: "InProgress",
		JobCompleted:  "Completed",
		JobCancelled:  "Cancelled",
	}
}

// Validate rejects JobUnknown and out-of-range values.
func (s JobStatus) Validate() error {
	switch s {
	case JobOpen, JobInProgress, JobCompleted, JobCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("job status is invalid",
			fmt.Errorf("%d is not a valid job status", s))
	}
}

// String implements fmt.Stringer.
func (s JobStatus) String() string {
	if str, ok := jobStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Job is the executable work unit derived from an allocated order: one task
// per (line, source container) binding, ordered for physical traversal.
// Jobs and tasks are disposable artifacts; deallocating the order before
// the job is built regenerates them from scratch.
type Job struct {
	id      kernel.UUID
	orderID kernel.UUID
	status  JobStatus
	tasks   []*Task

	startedAt   *time.Time
	completedAt *time.Time

	guard kernel.ConstructorGuard
}

// NewJob creates an open job and attaches the tasks to it, assigning each
// task its traversal sequence from the slice order.
func NewJob(id, orderID kernel.UUID, tasks []*Task) (*Job, error) {
	j := &Job{
		status: JobOpen,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(j.setIDs(id, orderID), j.setTasks(tasks)); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a job from persistence. Tasks must already carry
// their job id and sequence.
func RestoreJob(
	id, orderID kernel.UUID,
	status JobStatus,
	tasks []*Task,
	startedAt, completedAt *time.Time,
) (*Job, error) {
	j := &Job{guard: kernel.NewConstructorGuard()}

	if err := errors.Join(j.setIDs(id, orderID), status.Validate()); err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return nil, ErrJobHasNoTasks
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	j.status = status
	j.tasks = tasks
	j.startedAt = startedAt
	j.completedAt = completedAt
	return j, nil
}

// Validate ensures the job came from a constructor.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// OrderID returns the order this job fulfills.
func (j *Job) OrderID() kernel.UUID {
	return j.orderID
}

// Status returns the job's lifecycle state.
func (j *Job) Status() JobStatus {
	return j.status
}

// Tasks returns the tasks in traversal order. Callers must not modify the slice.
func (j *Job) Tasks() []*Task {
	return j.tasks
}

// StartedAt returns when the first task confirmed, nil while open.
func (j *Job) StartedAt() *time.Time {
	return j.startedAt
}

// CompletedAt returns when the job completed, nil before that.
func (j *Job) CompletedAt() *time.Time {
	return j.completedAt
}

// Task finds a task by id.
func (j *Job) Task(taskID kernel.UUID) (*Task, error) {
	for _, t := range j.tasks {
		if t.ID().IsEqual(taskID) {
			return t, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("task", taskID.String())
}

// PendingTasksForContainer returns the pending tasks assigned to one source
// container, in traversal order. Container-mode confirmation operates on
// this whole set at once.
func (j *Job) PendingTasksForContainer(containerID kernel.UUID) []*Task {
	var tasks []*Task
	for _, t := range j.tasks {
		if t.ContainerID().IsEqual(containerID) && t.IsPending() {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Start moves the job to InProgress on the first confirmation. Calling it
// on a job already in progress is a no-op, so every confirmation may call it.
func (j *Job) Start(at time.Time) error {
	switch j.status {
	case JobInProgress:
		return nil
	case JobOpen:
		j.status = JobInProgress
		t := at.UTC()
		j.startedAt = &t
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("job status is invalid",
			fmt.Errorf("%s is not a valid status to start", j.status))
	}
}

// Complete finalizes the job. Every task must be Completed; a single
// Pending or PendingApproval task fails the call with ErrJobIncomplete
// naming the outstanding count.
func (j *Job) Complete(at time.Time) error {
	if j.status != JobOpen && j.status != JobInProgress {
		return errs.NewValueIsInvalidErrorWithCause("job status is invalid",
			fmt.Errorf("%s is not a valid status to complete", j.status))
	}

	outstanding := 0
	for _, t := range j.tasks {
		if t.Status() != TaskCompleted {
			outstanding++
		}
	}
	if outstanding > 0 {
		return fmt.Errorf("%w: %d of %d tasks outstanding", ErrJobIncomplete, outstanding, len(j.tasks))
	}

	j.status = JobCompleted
	t := at.UTC()
	j.completedAt = &t
	return nil
}

// Cancel abandons a job on which nothing was picked yet.
func (j *Job) Cancel() error {
	if j.status != JobOpen {
		return errs.NewValueIsInvalidErrorWithCause("job status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", j.status))
	}

	j.status = JobCancelled
	return nil
}

func (j *Job) setIDs(id, orderID kernel.UUID) error {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return err
	}

	j.id = id
	j.orderID = orderID
	return nil
}

func (j *Job) setTasks(tasks []*Task) error {
	if len(tasks) == 0 {
		return ErrJobHasNoTasks
	}

	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		t.jobID = j.id
		t.sequence = i
	}

	j.tasks = tasks
	return nil
}
