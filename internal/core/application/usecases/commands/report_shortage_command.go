package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReportShortageCommandIsNotConstructed = errors.New(
	"ReportShortageCommand must be created via NewReportShortageCommand constructor",
)

// ReportShortageCommand represents an operator reporting that the shelf
// holds fewer units than the task requires. The task blocks until a
// supervisor resolves the claim; nothing is picked yet.
type ReportShortageCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	actualQty int
	reason    string
	operator  string

	guard guard.ConstructorGuard
}

// NewReportShortageCommand creates a command to report a shortage. The
// actual quantity must be non-negative; the upper bound is checked against
// the task by the handler.
func NewReportShortageCommand(
	taskID kernel.UUID,
	actualQty int,
	reason, operator string,
) (ReportShortageCommand, error) {
	cmd := ReportShortageCommand{
		reason:   reason,
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setActualQty(actualQty),
		cmd.setOperator(operator),
	); err != nil {
		return ReportShortageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportShortageCommand) Validate() error {
	return c.guard.Validate(ErrReportShortageCommandIsNotConstructed)
}

// TaskID returns the task the shortage is reported against.
func (c ReportShortageCommand) TaskID() kernel.UUID {
	return c.taskID
}

// ActualQty returns what the operator found on the shelf.
func (c ReportShortageCommand) ActualQty() int {
	return c.actualQty
}

// Reason returns the operator's free-text explanation.
func (c ReportShortageCommand) Reason() string {
	return c.reason
}

// Operator returns the resolved caller identity.
func (c ReportShortageCommand) Operator() string {
	return c.operator
}

func (c *ReportShortageCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ReportShortageCommand) setActualQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("actualQty is invalid",
			fmt.Errorf("%d is negative", qty))
	}

	c.actualQty = qty
	return nil
}

func (c *ReportShortageCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}
