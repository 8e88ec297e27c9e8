package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrScanConsolidationContainerCommandIsNotConstructed = errors.New(
	"ScanConsolidationContainerCommand must be created via NewScanConsolidationContainerCommand constructor",
)

// ScanConsolidationContainerCommand represents an operator scanning the
// outbox/cart that will collect picked units for an item-mode job.
type ScanConsolidationContainerCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	code     string
	operator string

	guard guard.ConstructorGuard
}

// NewScanConsolidationContainerCommand creates a command to bind a
// consolidation container to a job's pick session.
func NewScanConsolidationContainerCommand(
	jobID kernel.UUID,
	code, operator string,
) (ScanConsolidationContainerCommand, error) {
	cmd := ScanConsolidationContainerCommand{
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setJobID(jobID), cmd.setCode(code)); err != nil {
		return ScanConsolidationContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanConsolidationContainerCommand) Validate() error {
	return c.guard.Validate(ErrScanConsolidationContainerCommandIsNotConstructed)
}

// JobID returns the job whose session binds the container.
func (c ScanConsolidationContainerCommand) JobID() kernel.UUID {
	return c.jobID
}

// Code returns the scanned container code.
func (c ScanConsolidationContainerCommand) Code() string {
	return c.code
}

// Operator returns the resolved caller identity.
func (c ScanConsolidationContainerCommand) Operator() string {
	return c.operator
}

func (c *ScanConsolidationContainerCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ScanConsolidationContainerCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
