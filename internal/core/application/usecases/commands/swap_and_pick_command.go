package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSwapAndPickCommandIsNotConstructed = errors.New(
	"SwapAndPickCommand must be created via NewSwapAndPickCommand constructor",
)

// SwapAndPickCommand represents an operator sourcing a task from an
// alternate container because the assigned one cannot supply it (empty,
// damaged, blocked). The original task completes; its assigned container's
// stock stays untouched.
type SwapAndPickCommand struct { //nolint:recvcheck //using for validation
	taskID          kernel.UUID
	alternateCode   string
	consolidationID *kernel.UUID
	operator        string

	guard guard.ConstructorGuard
}

// NewSwapAndPickCommand creates a command to swap a task's source
// container. The consolidation id is required for item-mode jobs and nil
// for container-mode ones.
func NewSwapAndPickCommand(
	taskID kernel.UUID,
	alternateCode string,
	consolidationID *kernel.UUID,
	operator string,
) (SwapAndPickCommand, error) {
	cmd := SwapAndPickCommand{
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setAlternateCode(alternateCode),
		cmd.setConsolidationID(consolidationID),
	); err != nil {
		return SwapAndPickCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SwapAndPickCommand) Validate() error {
	return c.guard.Validate(ErrSwapAndPickCommandIsNotConstructed)
}

// TaskID returns the task to satisfy from the alternate container.
func (c SwapAndPickCommand) TaskID() kernel.UUID {
	return c.taskID
}

// AlternateCode returns the scanned code of the replacement container.
func (c SwapAndPickCommand) AlternateCode() string {
	return c.alternateCode
}

// ConsolidationID returns the consolidation container, nil for
// container-mode jobs.
func (c SwapAndPickCommand) ConsolidationID() *kernel.UUID {
	return c.consolidationID
}

// Operator returns the resolved caller identity.
func (c SwapAndPickCommand) Operator() string {
	return c.operator
}

func (c *SwapAndPickCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *SwapAndPickCommand) setAlternateCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("alternateContainerCode")
	}

	c.alternateCode = code
	return nil
}

func (c *SwapAndPickCommand) setConsolidationID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.consolidationID = id
	return nil
}
