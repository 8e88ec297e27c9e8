package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmTasksCommandIsNotConstructed = errors.New(
	"ConfirmTasksCommand must be created via NewConfirmTasksCommand constructor",
)

// ConfirmTasksCommand represents an item-mode operator confirming a
// selected subset of pending tasks from an unlocked container into the
// bound consolidation container.
//
// Confirmation is idempotent per task: a retried call that includes an
// already-completed task skips it instead of failing, so network retries
// are safe.
type ConfirmTasksCommand struct { //nolint:recvcheck //using for validation
	jobID           kernel.UUID
	taskIDs         []kernel.UUID
	consolidationID kernel.UUID
	operator        string

	guard guard.ConstructorGuard
}

// NewConfirmTasksCommand creates a command to confirm tasks.
func NewConfirmTasksCommand(
	jobID kernel.UUID,
	taskIDs []kernel.UUID,
	consolidationID kernel.UUID,
	operator string,
) (ConfirmTasksCommand, error) {
	cmd := ConfirmTasksCommand{
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setTaskIDs(taskIDs),
		cmd.setConsolidationID(consolidationID),
	); err != nil {
		return ConfirmTasksCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmTasksCommand) Validate() error {
	return c.guard.Validate(ErrConfirmTasksCommandIsNotConstructed)
}

// JobID returns the job being worked.
func (c ConfirmTasksCommand) JobID() kernel.UUID {
	return c.jobID
}

// TaskIDs returns the tasks the operator selected.
func (c ConfirmTasksCommand) TaskIDs() []kernel.UUID {
	return c.taskIDs
}

// ConsolidationID returns the consolidation container collecting the picks.
func (c ConfirmTasksCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// Operator returns the resolved caller identity.
func (c ConfirmTasksCommand) Operator() string {
	return c.operator
}

func (c *ConfirmTasksCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ConfirmTasksCommand) setTaskIDs(taskIDs []kernel.UUID) error {
	if len(taskIDs) == 0 {
		return errs.NewValueIsRequiredError("taskIDs")
	}
	for _, id := range taskIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.taskIDs = taskIDs
	return nil
}

func (c *ConfirmTasksCommand) setConsolidationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.consolidationID = id
	return nil
}
