package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectShortageCommandIsNotConstructed = errors.New(
	"RejectShortageCommand must be created via NewRejectShortageCommand constructor",
)

// RejectShortageCommand represents a supervisor turning down a shortage
// claim. The task returns to Pending for a normal full-quantity pick; no
// inventory moves.
type RejectShortageCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectShortageCommand creates a command to reject a shortage request.
func NewRejectShortageCommand(requestID kernel.UUID) (RejectShortageCommand, error) {
	cmd := RejectShortageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return RejectShortageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectShortageCommand) Validate() error {
	return c.guard.Validate(ErrRejectShortageCommandIsNotConstructed)
}

// RequestID returns the shortage request to reject.
func (c RejectShortageCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *RejectShortageCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
