package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveShortageCommandIsNotConstructed = errors.New(
	"ApproveShortageCommand must be created via NewApproveShortageCommand constructor",
)

// ApproveShortageCommand represents a supervisor accepting a shortage
// claim: the task completes at the reported actual quantity and the
// missing units are released back to available stock.
type ApproveShortageCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveShortageCommand creates a command to approve a shortage request.
func NewApproveShortageCommand(requestID kernel.UUID) (ApproveShortageCommand, error) {
	cmd := ApproveShortageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return ApproveShortageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveShortageCommand) Validate() error {
	return c.guard.Validate(ErrApproveShortageCommandIsNotConstructed)
}

// RequestID returns the shortage request to approve.
func (c ApproveShortageCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *ApproveShortageCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
