package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUnlockContainerCommandIsNotConstructed = errors.New(
	"UnlockContainerCommand must be created via NewUnlockContainerCommand constructor",
)

// UnlockContainerCommand represents an operator scanning a source
// container to prove they are standing in front of the right box before
// any of its tasks can confirm.
type UnlockContainerCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	containerID kernel.UUID
	scannedCode string
	operator    string

	guard guard.ConstructorGuard
}

// NewUnlockContainerCommand creates a command to unlock a container within
// a job's pick session.
func NewUnlockContainerCommand(
	jobID, containerID kernel.UUID,
	scannedCode, operator string,
) (UnlockContainerCommand, error) {
	cmd := UnlockContainerCommand{
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(jobID, containerID),
		cmd.setScannedCode(scannedCode),
	); err != nil {
		return UnlockContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnlockContainerCommand) Validate() error {
	return c.guard.Validate(ErrUnlockContainerCommandIsNotConstructed)
}

// JobID returns the job being worked.
func (c UnlockContainerCommand) JobID() kernel.UUID {
	return c.jobID
}

// ContainerID returns the assigned source container to unlock.
func (c UnlockContainerCommand) ContainerID() kernel.UUID {
	return c.containerID
}

// ScannedCode returns what the operator actually scanned.
func (c UnlockContainerCommand) ScannedCode() string {
	return c.scannedCode
}

// Operator returns the resolved caller identity.
func (c UnlockContainerCommand) Operator() string {
	return c.operator
}

func (c *UnlockContainerCommand) setIDs(jobID, containerID kernel.UUID) error {
	if err := errors.Join(jobID.Validate(), containerID.Validate()); err != nil {
		return err
	}

	c.jobID = jobID
	c.containerID = containerID
	return nil
}

func (c *UnlockContainerCommand) setScannedCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("scannedCode")
	}

	c.scannedCode = code
	return nil
}
