package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmContainerCommandIsNotConstructed = errors.New(
	"ConfirmContainerCommand must be created via NewConfirmContainerCommand constructor",
)

// ConfirmContainerCommand represents a container-mode operator confirming
// one source container: all of its pending tasks complete at once, since
// the whole container moves as a unit with no per-product scan.
type ConfirmContainerCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	containerID kernel.UUID
	operator    string

	guard guard.ConstructorGuard
}

// NewConfirmContainerCommand creates a command to confirm a container.
func NewConfirmContainerCommand(
	jobID, containerID kernel.UUID,
	operator string,
) (ConfirmContainerCommand, error) {
	cmd := ConfirmContainerCommand{
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setIDs(jobID, containerID); err != nil {
		return ConfirmContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmContainerCommand) Validate() error {
	return c.guard.Validate(ErrConfirmContainerCommandIsNotConstructed)
}

// JobID returns the job being worked.
func (c ConfirmContainerCommand) JobID() kernel.UUID {
	return c.jobID
}

// ContainerID returns the source container whose tasks confirm.
func (c ConfirmContainerCommand) ContainerID() kernel.UUID {
	return c.containerID
}

// Operator returns the resolved caller identity.
func (c ConfirmContainerCommand) Operator() string {
	return c.operator
}

func (c *ConfirmContainerCommand) setIDs(jobID, containerID kernel.UUID) error {
	if err := errors.Join(jobID.Validate(), containerID.Validate()); err != nil {
		return err
	}

	c.jobID = jobID
	c.containerID = containerID
	return nil
}
