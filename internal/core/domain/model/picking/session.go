package picking

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session bypassed its
	// constructor.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrContainerMismatch indicates the scanned code does not identify
	// the assigned container. The container stays locked; the operator
	// rescans.
	ErrContainerMismatch = errors.New("scanned code does not match the assigned container")

	// ErrContainerStillLocked indicates a confirmation was attempted
	// against a container the session has not unlocked.
	ErrContainerStillLocked = errors.New("container has not been unlocked in this session")

	// ErrConsolidationNotBound indicates an item-mode confirmation before
	// a consolidation container was bound to the session.
	ErrConsolidationNotBound = errors.New("no consolidation container bound to this session")
)

// Session is one operator's pick run against one job. It holds what used to
// be device-local state (which containers the operator has unlocked by
// scanning, and which consolidation container collects the picks) as an
// explicit object passed through the task executor.
//
// A session is process-local and disposable: the authoritative pick state
// lives in the store, and a session rebuilt after a device restart simply
// re-unlocks containers by scanning them again.
type Session struct {
	jobID    kernel.UUID
	operator string

	unlocked        map[string]struct{}
	consolidationID *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewSession starts a pick session for one job.
func NewSession(jobID kernel.UUID, operator string) (*Session, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}
	if operator == "" {
		return nil, errs.NewValueIsRequiredError("operator")
	}

	return &Session{
		jobID:    jobID,
		operator: operator,
		unlocked: make(map[string]struct{}),
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the session came from a constructor.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// JobID returns the job this session works.
func (s *Session) JobID() kernel.UUID {
	return s.jobID
}

// Operator returns the operator identity the caller resolved.
func (s *Session) Operator() string {
	return s.operator
}

// Consolidation returns the bound consolidation container, nil if none.
func (s *Session) Consolidation() *kernel.UUID {
	return s.consolidationID
}

// UnlockContainer verifies a scan against the assigned container code and
// marks the container unlocked for this session. Codes compare
// case-insensitively with whitespace trimmed. A mismatch leaves the
// container locked and returns ErrContainerMismatch.
func (s *Session) UnlockContainer(assignedCode, scannedCode string) error {
	if assignedCode == "" {
		return errs.NewValueIsRequiredError("assignedCode")
	}

	if !strings.EqualFold(strings.TrimSpace(scannedCode), strings.TrimSpace(assignedCode)) {
		return fmt.Errorf("%w: scanned %q, assigned %q", ErrContainerMismatch,
			strings.TrimSpace(scannedCode), assignedCode)
	}

	s.unlocked[normalizeCode(assignedCode)] = struct{}{}
	return nil
}

// IsUnlocked reports whether the container was unlocked in this session.
func (s *Session) IsUnlocked(containerCode string) bool {
	_, ok := s.unlocked[normalizeCode(containerCode)]
	return ok
}

// BindConsolidation attaches the outbox/cart that will collect picked
// units. Rebinding to a different container is allowed between confirms;
// operators switch carts when one fills up.
func (s *Session) BindConsolidation(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	s.consolidationID = &containerID
	return nil
}

// EnsureCanConfirm checks the session protocol ahead of a confirmation:
// the task's container must be unlocked, and item-mode jobs need a bound
// consolidation container. Container-mode jobs skip the consolidation
// requirement because the whole container moves as a unit.
func (s *Session) EnsureCanConfirm(mode order.FulfillmentMode, containerCode string) error {
	if !s.IsUnlocked(containerCode) {
		return fmt.Errorf("%w: %s", ErrContainerStillLocked, containerCode)
	}

	if mode.RequiresConsolidation() && s.consolidationID == nil {
		return ErrConsolidationNotBound
	}

	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
