package picking

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task bypassed its constructor.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

	// ErrAlreadyConfirmed is the idempotence guard: the task has completed
	// before. Callers treat it as a benign no-op so retried confirmation
	// calls stay safe.
	ErrAlreadyConfirmed = errors.New("task is already confirmed")

	// ErrTaskAwaitingApproval indicates the task is blocked by a shortage
	// request and cannot confirm until a supervisor resolves it.
	ErrTaskAwaitingApproval = errors.New("task is awaiting shortage approval")
)

// TaskStatus is the lifecycle state of a picking task.
type TaskStatus int

const (
	// TaskUnknown is the invalid zero value.
	TaskUnknown TaskStatus = iota

	// TaskPending means the pick has not happened yet.
	TaskPending

	// TaskPendingApproval means a shortage was reported and a supervisor
	// decision is outstanding; normal confirmation is blocked.
	TaskPendingApproval

	// TaskCompleted is terminal; a task completes at most once.
	TaskCompleted
)

func taskStatusStrings() map[TaskStatus]string {
	return map[TaskStatus]string{
		TaskUnknown:         "Unknown",
		TaskPending:         "Pending",
		TaskPendingApproval: "PendingApproval",
		TaskCompleted:       "Completed",
	}
}

// Validate rejects TaskUnknown and out-of-range values.
func (s TaskStatus) Validate() error {
	switch s {
	case TaskPending, TaskPendingApproval, TaskCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("task status is invalid",
			fmt.Errorf("%d is not a valid task status", s))
	}
}

// String implements fmt.Stringer.
func (s TaskStatus) String() string {
	if str, ok := taskStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Task is one pick action: take quantity units of sku from the assigned
// source container for one order line. Tasks transition to Completed at
// most once, through Confirm (normal path), CompleteWithShortage
// (supervisor-approved partial pick) or a swap (alternate source, still
// Confirm on the original task).
type Task struct {
	id          kernel.UUID
	jobID       kernel.UUID
	lineID      kernel.UUID
	containerID kernel.UUID

	// containerCode and locationCode are denormalized from the container
	// so pick lists sort and render without extra lookups.
	containerCode string
	locationCode  string

	sku      string
	quantity int

	// pickedQty is what actually left the shelf: quantity on a normal
	// confirm, the approved actual on a shortage.
	pickedQty int

	// sequence is the traversal position assigned by the job builder.
	sequence int

	status TaskStatus

	// consolidationID records which outbox/cart collected the picked
	// units; nil for container-mode picks.
	consolidationID *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewTask creates a pending task. The job id is attached by NewJob.
func NewTask(
	id, lineID, containerID kernel.UUID,
	containerCode, locationCode, sku string,
	quantity int,
) (*Task, error) {
	t := &Task{
		status: TaskPending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setIDs(id, lineID, containerID),
		t.setCodes(containerCode, locationCode, sku),
		t.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(
	id, jobID, lineID, containerID kernel.UUID,
	containerCode, locationCode, sku string,
	quantity, pickedQty, sequence int,
	status TaskStatus,
	consolidationID *kernel.UUID,
) (*Task, error) {
	t, err := NewTask(id, lineID, containerID, containerCode, locationCode, sku, quantity)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(jobID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if pickedQty < 0 || pickedQty > quantity {
		return nil, errs.NewValueIsOutOfRangeError("pickedQty", pickedQty, 0, quantity)
	}
	if consolidationID != nil {
		if err = consolidationID.Validate(); err != nil {
			return nil, err
		}
	}

	t.jobID = jobID
	t.pickedQty = pickedQty
	t.sequence = sequence
	t.status = status
	t.consolidationID = consolidationID
	return t, nil
}

// Validate ensures the task came from a constructor.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// JobID returns the owning job.
func (t *Task) JobID() kernel.UUID {
	return t.jobID
}

// LineID returns the order line this task feeds.
func (t *Task) LineID() kernel.UUID {
	return t.lineID
}

// ContainerID returns the assigned source container.
func (t *Task) ContainerID() kernel.UUID {
	return t.containerID
}

// ContainerCode returns the scannable code of the source container.
func (t *Task) ContainerCode() string {
	return t.containerCode
}

// LocationCode returns the source container's storage location.
func (t *Task) LocationCode() string {
	return t.locationCode
}

// SKU returns the product to pick.
func (t *Task) SKU() string {
	return t.sku
}

// Quantity returns the required pick quantity.
func (t *Task) Quantity() int {
	return t.quantity
}

// PickedQty returns what actually left the shelf; zero until completion.
func (t *Task) PickedQty() int {
	return t.pickedQty
}

// Sequence returns the traversal position within the job's pick list.
func (t *Task) Sequence() int {
	return t.sequence
}

// Status returns the task's lifecycle state.
func (t *Task) Status() TaskStatus {
	return t.status
}

// Consolidation returns the outbox/cart that collected the pick, nil for
// container-mode picks or incomplete tasks.
func (t *Task) Consolidation() *kernel.UUID {
	return t.consolidationID
}

// IsPending reports whether the task can still confirm normally.
func (t *Task) IsPending() bool {
	return t.status == TaskPending
}

// Confirm completes the task at full quantity. Completed tasks return
// ErrAlreadyConfirmed; tasks blocked by a shortage request return
// ErrTaskAwaitingApproval.
func (t *Task) Confirm(consolidationID *kernel.UUID) error {
	switch t.status {
	case TaskCompleted:
		return fmt.Errorf("%w: %s", ErrAlreadyConfirmed, t.id)
	case TaskPendingApproval:
		return fmt.Errorf("%w: %s", ErrTaskAwaitingApproval, t.id)
	case TaskPending:
	default:
		return t.status.Validate()
	}

	if consolidationID != nil {
		if err := consolidationID.Validate(); err != nil {
			return err
		}
	}

	t.status = TaskCompleted
	t.pickedQty = t.quantity
	t.consolidationID = consolidationID
	return nil
}

// MarkAwaitingApproval blocks the task behind a shortage request.
func (t *Task) MarkAwaitingApproval() error {
	switch t.status {
	case TaskCompleted:
		return fmt.Errorf("%w: %s", ErrAlreadyConfirmed, t.id)
	case TaskPendingApproval:
		return fmt.Errorf("%w: %s", ErrTaskAwaitingApproval, t.id)
	}

	t.status = TaskPendingApproval
	return nil
}

// Reopen returns a shortage-blocked task to Pending after a supervisor
// rejects the request. No inventory moved, so nothing else changes.
func (t *Task) Reopen() error {
	if t.status != TaskPendingApproval {
		return errs.NewValueIsInvalidErrorWithCause("task status is invalid",
			fmt.Errorf("%s is not awaiting approval", t.status))
	}

	t.status = TaskPending
	return nil
}

// CompleteWithShortage completes the task at the supervisor-approved
// actual quantity, which must be strictly less than the required quantity.
func (t *Task) CompleteWithShortage(actualQty int) error {
	if t.status != TaskPendingApproval {
		return errs.NewValueIsInvalidErrorWithCause("task status is invalid",
			fmt.Errorf("%s is not awaiting approval", t.status))
	}
	if actualQty < 0 || actualQty >= t.quantity {
		return errs.NewValueIsOutOfRangeError("actualQty", actualQty, 0, t.quantity-1)
	}

	t.status = TaskCompleted
	t.pickedQty = actualQty
	return nil
}

func (t *Task) setIDs(id, lineID, containerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), lineID.Validate(), containerID.Validate()); err != nil {
		return err
	}

	t.id = id
	t.lineID = lineID
	t.containerID = containerID
	return nil
}

func (t *Task) setCodes(containerCode, locationCode, sku string) error {
	if containerCode == "" {
		return errs.NewValueIsRequiredError("containerCode")
	}
	if locationCode == "" {
		return errs.NewValueIsRequiredError("locationCode")
	}
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	t.containerCode = containerCode
	t.locationCode = locationCode
	t.sku = sku
	return nil
}

func (t *Task) setQuantity(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	t.quantity = qty
	return nil
}
